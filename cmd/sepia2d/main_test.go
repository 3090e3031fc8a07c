package main

import (
	"context"
	"flag"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/sepiawrapper/sepia2-go/internal/controlsvc"
	"github.com/sepiawrapper/sepia2-go/internal/controlsvc/pb"
	"github.com/sepiawrapper/sepia2-go/sepia2"
)

var quietLog = slog.New(slog.DiscardHandler)

func TestParseFlags(t *testing.T) {
	t.Setenv("SEPIA2D_LISTEN", "")
	t.Setenv("SEPIA2_FAKE_SPEC_FILE", "")
	cfg, err := parseFlags(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	require.NoError(t, err)
	assert.Equal(t, config{listen: defaultListen}, cfg)

	t.Setenv("SEPIA2D_LISTEN", ":7000")
	t.Setenv("SEPIA2_FAKE_SPEC_FILE", "/etc/sepia2/bus.yaml")
	cfg, err = parseFlags(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-verbose"})
	require.NoError(t, err)
	assert.Equal(t, config{listen: ":7000", fakeSpec: "/etc/sepia2/bus.yaml", verbose: true}, cfg)

	_, err = parseFlags(flag.NewFlagSet("test", flag.ContinueOnError), []string{"extra"})
	assert.Error(t, err)
}

func TestBuildOptionsFakeSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sepia2.DefaultFakeSpec), 0o600))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts, err := buildOptions(ctx, config{fakeSpec: path}, quietLog)
	require.NoError(t, err)
	devs, err := sepia2.ListDevices(append(opts, sepia2.WithLogger(quietLog))...)
	require.NoError(t, err)
	assert.Equal(t, "1030427", devs[0].Serial)

	_, err = buildOptions(ctx, config{fakeSpec: filepath.Join(t.TempDir(), "missing.yaml")}, quietLog)
	assert.Error(t, err)
}

func TestServeClosesSessionsOnShutdown(t *testing.T) {
	fake, err := sepia2.NewFakeLibFromYAML([]byte(sepia2.DefaultFakeSpec))
	require.NoError(t, err)
	srv := controlsvc.NewServer(quietLog, sepia2.WithLib(fake))

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, lis, srv, quietLog) }()

	conn, client, err := controlsvc.Dial("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)
	defer conn.Close()

	open, err := client.Open(context.Background(), &pb.OpenRequest{})
	require.NoError(t, err)
	_, err = client.StartLaserSimple(context.Background(), &pb.StartLaserRequest{
		SessionId: open.GetSessionId(), RateMhz: 40, Intensity: 20,
	})
	require.NoError(t, err)
	require.False(t, fake.SoftLocked(0))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return")
	}
	assert.False(t, fake.IsOpen(0))
	assert.True(t, fake.SoftLocked(0))
}
