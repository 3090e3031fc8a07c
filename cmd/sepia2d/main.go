// Command sepia2d owns the Sepia II mainframes attached to this host and
// serves the control API over gRPC.
//
// Usage:
//
//	sepia2d [flags]
//
// Flags:
//
//	-listen     listen address (env SEPIA2D_LISTEN, default localhost:50061)
//	-fake-spec  serve a simulated bus from this YAML file and reload it on
//	            change (env SEPIA2_FAKE_SPEC_FILE)
//	-verbose    log every library call
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"github.com/sepiawrapper/sepia2-go/internal/controlsvc"
	"github.com/sepiawrapper/sepia2-go/sepia2"
)

const defaultListen = "localhost:50061"

type config struct {
	listen   string
	fakeSpec string
	verbose  bool
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseFlags(fs *flag.FlagSet, args []string) (config, error) {
	var cfg config
	fs.StringVar(&cfg.listen, "listen", envOr("SEPIA2D_LISTEN", defaultListen), "listen address")
	fs.StringVar(&cfg.fakeSpec, "fake-spec", os.Getenv("SEPIA2_FAKE_SPEC_FILE"), "simulated bus YAML file")
	fs.BoolVar(&cfg.verbose, "verbose", false, "log every library call")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 0 {
		return cfg, fmt.Errorf("unexpected arguments %v", fs.Args())
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("sepia2d failed", "error", err)
		os.Exit(1)
	}
}

// buildOptions returns the session options for cfg. With a fake spec file
// the simulated bus is reloaded whenever the file changes until ctx is done.
func buildOptions(ctx context.Context, cfg config, log *slog.Logger) ([]sepia2.Option, error) {
	opts := []sepia2.Option{sepia2.WithVerbose(cfg.verbose)}
	if cfg.fakeSpec == "" {
		return opts, nil
	}
	data, err := os.ReadFile(cfg.fakeSpec)
	if err != nil {
		return nil, fmt.Errorf("read fake spec: %w", err)
	}
	fake, err := sepia2.NewFakeLibFromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("fake spec %s: %w", cfg.fakeSpec, err)
	}
	go func() {
		if err := sepia2.WatchFakeSpec(ctx, cfg.fakeSpec, fake, log); err != nil {
			log.Error("Fake spec watcher stopped", "path", cfg.fakeSpec, "error", err)
		}
	}()
	log.Info("Serving simulated bus", "path", cfg.fakeSpec)
	return append(opts, sepia2.WithLib(fake)), nil
}

func run(ctx context.Context, cfg config, log *slog.Logger) error {
	opts, err := buildOptions(ctx, cfg, log)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", cfg.listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.listen, err)
	}
	return serve(ctx, lis, controlsvc.NewServer(log, opts...), log)
}

// serve runs the gRPC server on lis until ctx is done, then closes every open
// session so the lasers are left soft-locked.
func serve(ctx context.Context, lis net.Listener, srv *controlsvc.Server, log *slog.Logger) error {
	gs := grpc.NewServer()
	srv.Register(gs)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Control service listening", "addr", lis.Addr().String())
		errCh <- gs.Serve(lis)
	}()

	select {
	case err := <-errCh:
		_ = srv.CloseAll()
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down", "sessions", srv.Sessions())
	gs.GracefulStop()
	if err := srv.CloseAll(); err != nil {
		return fmt.Errorf("close sessions: %w", err)
	}
	return nil
}
