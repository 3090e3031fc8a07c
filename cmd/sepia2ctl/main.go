// Command sepia2ctl drives a PicoQuant Sepia II (PDL 828) laser driver,
// either through the local vendor library or through a sepia2d daemon.
//
// Usage:
//
//	sepia2ctl [flags] <command> [args]
//
// Flags:
//
//	-remote   sepia2d address; empty uses the local library (env SEPIA2_REMOTE)
//	-device   mainframe index (env SEPIA2_DEVICE, default 0)
//	-restart  reinitialise the firmware when opening
//	-verbose  log every library call
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sepiawrapper/sepia2-go/internal/controlsvc"
	"github.com/sepiawrapper/sepia2-go/internal/controlsvc/pb"
	"github.com/sepiawrapper/sepia2-go/sepia2"
)

type config struct {
	remote  string
	device  int
	restart bool
	verbose bool
	args    []string
}

func parseFlags(fs *flag.FlagSet, args []string) (config, error) {
	var cfg config
	device := 0
	if env := os.Getenv("SEPIA2_DEVICE"); env != "" {
		v, err := strconv.Atoi(env)
		if err != nil {
			return cfg, fmt.Errorf("SEPIA2_DEVICE %q: not an integer", env)
		}
		device = v
	}
	fs.StringVar(&cfg.remote, "remote", os.Getenv("SEPIA2_REMOTE"), "sepia2d address, empty for the local library")
	fs.IntVar(&cfg.device, "device", device, "mainframe index")
	fs.BoolVar(&cfg.restart, "restart", false, "reinitialise the firmware when opening")
	fs.BoolVar(&cfg.verbose, "verbose", false, "log every library call")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.args = fs.Args()
	return cfg, nil
}

func main() {
	fs := flag.NewFlagSet("sepia2ctl", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: sepia2ctl [flags] <command> [args]\n\nflags:\n")
		fs.PrintDefaults()
		fmt.Fprint(fs.Output(), "\n"+usage)
	}
	cfg, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cmd, err := parseCommand(cfg.args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, cmd, log, os.Stdout); err != nil {
		log.Error("Command failed", "command", cmd.name, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, cmd command, log *slog.Logger, w io.Writer) error {
	var ctrl pb.ControlClient
	if cfg.remote != "" {
		conn, client, err := controlsvc.Dial(cfg.remote)
		if err != nil {
			return fmt.Errorf("dial %s: %w", cfg.remote, err)
		}
		defer conn.Close()
		ctrl = client
	} else {
		srv := controlsvc.NewServer(log, sepia2.WithVerbose(cfg.verbose))
		defer func() {
			if err := srv.CloseAll(); err != nil {
				log.Error("Closing sessions failed", "error", err)
			}
		}()
		ctrl = controlsvc.NewLocalClient(srv)
	}
	return runWith(ctx, ctrl, cfg, cmd, w)
}

func runWith(ctx context.Context, ctrl pb.ControlClient, cfg config, cmd command, w io.Writer) (err error) {
	switch cmd.name {
	case "help":
		_, err := fmt.Fprint(w, usage)
		return err
	case "list":
		return printDevices(ctx, ctrl, w)
	}

	open, err := ctrl.Open(ctx, &pb.OpenRequest{Index: int32(cfg.device), Restart: cfg.restart})
	if err != nil {
		return err
	}
	defer func() {
		_, cerr := ctrl.Close(context.WithoutCancel(ctx), &pb.SessionRequest{SessionId: open.GetSessionId()})
		err = errors.Join(err, cerr)
	}()

	if cmd.name == "shell" {
		sh, err := newShell(ctrl, open)
		if err != nil {
			return err
		}
		sh.Run(ctx)
		return nil
	}
	return execute(ctx, ctrl, open, cmd, w)
}
