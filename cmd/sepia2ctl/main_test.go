package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sepiawrapper/sepia2-go/internal/controlsvc"
	"github.com/sepiawrapper/sepia2-go/internal/controlsvc/pb"
	"github.com/sepiawrapper/sepia2-go/sepia2"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		args []string
		want command
	}{
		{[]string{"list"}, command{name: "list"}},
		{[]string{"STATUS"}, command{name: "status", all: true}},
		{[]string{"status", "1"}, command{name: "status", laser: 1}},
		{[]string{"start", "0", "20", "55.5"}, command{name: "start", rateMHz: 20, intensity: 55.5}},
		{[]string{"start", "1", "40", "10", "2.5"}, command{name: "start", laser: 1, rateMHz: 40, intensity: 10, delayNs: 2.5}},
		{[]string{"clock", "13.33"}, command{name: "clock", rateMHz: 13.33}},
		{[]string{"intensity", "1", "80"}, command{name: "intensity", laser: 1, intensity: 80}},
		{[]string{"unlock"}, command{name: "unlock"}},
	}
	for _, tt := range tests {
		got, err := parseCommand(tt.args)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, got, tt.args)
	}
}

func TestParseCommandErrors(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"fire"},
		{"stop", "now"},
		{"start", "0", "20"},
		{"start", "x", "20", "50"},
		{"clock"},
		{"intensity", "0", "lots"},
	} {
		_, err := parseCommand(args)
		assert.Error(t, err, args)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("SEPIA2_REMOTE", "lab-pc:50061")
	t.Setenv("SEPIA2_DEVICE", "2")

	cfg, err := parseFlags(flag.NewFlagSet("test", flag.ContinueOnError), []string{"status"})
	require.NoError(t, err)
	assert.Equal(t, "lab-pc:50061", cfg.remote)
	assert.Equal(t, 2, cfg.device)
	assert.Equal(t, []string{"status"}, cfg.args)

	cfg, err = parseFlags(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-remote", "", "-device", "1", "-verbose", "list"})
	require.NoError(t, err)
	assert.Empty(t, cfg.remote)
	assert.Equal(t, 1, cfg.device)
	assert.True(t, cfg.verbose)

	t.Setenv("SEPIA2_DEVICE", "first")
	_, err = parseFlags(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	assert.Error(t, err)
}

func localServer(t *testing.T) (*controlsvc.Server, *sepia2.FakeLib) {
	t.Helper()
	return localServerWithSpec(t, sepia2.DefaultFakeSpec)
}

func localServerWithSpec(t *testing.T, spec string) (*controlsvc.Server, *sepia2.FakeLib) {
	t.Helper()
	fake, err := sepia2.NewFakeLibFromYAML([]byte(spec))
	require.NoError(t, err)
	srv := controlsvc.NewServer(slog.New(slog.DiscardHandler), sepia2.WithLib(fake))
	t.Cleanup(func() { _ = srv.CloseAll() })
	return srv, fake
}

func TestRunWithList(t *testing.T) {
	srv, _ := localServer(t)
	var out bytes.Buffer

	require.NoError(t, runWith(context.Background(), controlsvc.NewLocalClient(srv), config{}, command{name: "list"}, &out))
	assert.Equal(t, "0  PDL 828  1030427\n", out.String())
}

func TestRunWithClosesSession(t *testing.T) {
	srv, fake := localServer(t)
	var out bytes.Buffer

	cmd := command{name: "start", laser: 1, rateMHz: 20, intensity: 50}
	require.NoError(t, runWith(context.Background(), controlsvc.NewLocalClient(srv), config{}, cmd, &out))
	assert.Contains(t, out.String(), "laser 1 running at 20.000 MHz")
	assert.Zero(t, srv.Sessions())
	assert.False(t, fake.IsOpen(0))
	assert.True(t, fake.SoftLocked(0))
}

func TestRunWithStatus(t *testing.T) {
	srv, _ := localServer(t)
	var out bytes.Buffer

	require.NoError(t, runWith(context.Background(), controlsvc.NewLocalClient(srv), config{}, command{name: "status", all: true}, &out))
	assert.Contains(t, out.String(), "PDL 828  serial 1030427")
	assert.Contains(t, out.String(), "SOMD  slot 100")
	assert.Contains(t, out.String(), "laser 0  SLM  slot 200")
	assert.Contains(t, out.String(), "laser 1  SLM  slot 300")

	err := runWith(context.Background(), controlsvc.NewLocalClient(srv), config{}, command{name: "status", laser: 4}, io.Discard)
	assert.Error(t, err)
}

func TestShellRunLine(t *testing.T) {
	srv, fake := localServer(t)
	ctx := context.Background()
	ctrl := controlsvc.NewLocalClient(srv)
	open, err := ctrl.Open(ctx, &pb.OpenRequest{})
	require.NoError(t, err)
	sh := &shell{ctrl: ctrl, open: open}

	var out bytes.Buffer
	assert.False(t, sh.runLine(ctx, "unlock", &out))
	assert.False(t, fake.SoftLocked(0))
	assert.False(t, sh.runLine(ctx, "start 0 20 40", &out))
	assert.False(t, sh.runLine(ctx, "intensity 0 150", &out))
	assert.False(t, sh.runLine(ctx, "bogus", &out))
	assert.False(t, sh.runLine(ctx, "   ", &out))
	assert.True(t, sh.runLine(ctx, "exit", &out))

	assert.Contains(t, out.String(), "laser 0 running at 20.000 MHz")
	assert.Contains(t, out.String(), "code = InvalidArgument")
	assert.Contains(t, out.String(), `error: unknown command "bogus"`)
	assert.True(t, fake.IsOpen(0))
	assert.False(t, fake.SoftLocked(0))
}

func TestRunWithPrimaStatus(t *testing.T) {
	srv, _ := localServerWithSpec(t, `
Devices:
  - Product: "PDL 828"
    Serial: "1030501"
    Modules:
      - { Slot: 0, Type: SCM }
      - { Slot: 200, Type: PRI, Wavelengths: [450, 520, 640] }
`)
	var out bytes.Buffer

	require.NoError(t, runWith(context.Background(), controlsvc.NewLocalClient(srv), config{}, command{name: "status", laser: 0}, &out))
	assert.Contains(t, out.String(), "laser 0  PRI  slot 200")
	assert.Contains(t, out.String(), "450 nm  off")
	assert.Contains(t, out.String(), "trigger 0 mV  gate 10 ns x1 enabled=false")
}
