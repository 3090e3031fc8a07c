package controlsvc

import (
	"context"
	"log/slog"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/sepiawrapper/sepia2-go/internal/controlsvc/pb"
	"github.com/sepiawrapper/sepia2-go/sepia2"
)

const primaSpec = `
Devices:
  - Product: "PDL 828"
    Serial: "1030501"
    Modules:
      - { Slot: 0, Type: SCM }
      - { Slot: 200, Type: PRI, Wavelengths: [450, 520, 640] }
`

func startServer(t *testing.T) (pb.ControlClient, *Server, *sepia2.FakeLib) {
	return startServerWithSpec(t, sepia2.DefaultFakeSpec)
}

func startServerWithSpec(t *testing.T, spec string) (pb.ControlClient, *Server, *sepia2.FakeLib) {
	t.Helper()
	fake, err := sepia2.NewFakeLibFromYAML([]byte(spec))
	require.NoError(t, err)

	log := slog.New(slog.DiscardHandler)
	srv := NewServer(log, sepia2.WithLib(fake))
	gs := grpc.NewServer()
	srv.Register(gs)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = gs.Serve(lis) }()

	conn, client, err := Dial("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
		_ = srv.CloseAll()
		gs.Stop()
	})
	return client, srv, fake
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, status.Code(err), err.Error())
}

func TestListDevices(t *testing.T) {
	client, _, _ := startServer(t)

	resp, err := client.ListDevices(context.Background(), &pb.ListDevicesRequest{})
	require.NoError(t, err)
	want := []*pb.Device{{Index: 0, Model: "PDL 828", Serial: "1030427"}}
	if diff := cmp.Diff(want, resp.GetDevices(), protocmp.Transform()); diff != "" {
		t.Errorf("devices mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenStartClose(t *testing.T) {
	ctx := context.Background()
	client, srv, fake := startServer(t)

	open, err := client.Open(ctx, &pb.OpenRequest{Index: 0})
	require.NoError(t, err)
	assert.NotEmpty(t, open.GetSessionId())
	assert.Equal(t, "1030427", open.GetSerial())
	wantLasers := []*pb.Module{{Slot: 200, Type: "SLM"}, {Slot: 300, Type: "SLM"}}
	if diff := cmp.Diff(wantLasers, open.GetLasers(), protocmp.Transform()); diff != "" {
		t.Errorf("lasers mismatch (-want +got):\n%s", diff)
	}
	require.NotNil(t, open.GetOscillator())
	assert.Equal(t, "SOMD", open.GetOscillator().GetType())
	assert.Equal(t, 1, srv.Sessions())

	started, err := client.StartLaserSimple(ctx, &pb.StartLaserRequest{
		SessionId: open.GetSessionId(), Laser: 1, RateMhz: 20, Intensity: 50, DelayNs: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, started.GetFrequencyMhz())
	assert.InDelta(t, 9.375, started.GetDelayNs(), 1e-9)

	ls, err := client.GetLaserStatus(ctx, &pb.LaserRequest{SessionId: open.GetSessionId(), Laser: 1})
	require.NoError(t, err)
	assert.Equal(t, int32(300), ls.GetSlotId())
	assert.InDelta(t, 50, ls.GetIntensity(), 0.1)

	osc, err := client.GetOscillatorStatus(ctx, &pb.SessionRequest{SessionId: open.GetSessionId()})
	require.NoError(t, err)
	assert.Equal(t, []int32{1}, osc.GetOutputEnabled())
	assert.Equal(t, []int32{0}, osc.GetSyncEnabled())
	require.Len(t, osc.GetChannels(), sepia2.Channels)
	assert.True(t, osc.GetChannels()[1].GetDelayed())
	assert.InDelta(t, 9.375, osc.GetChannels()[1].GetDelayNs(), 1e-9)
	assert.False(t, osc.GetChannels()[2].GetDelayed())
	assert.Equal(t, []int32{2}, osc.GetChannels()[2].GetCombines())

	_, err = client.StopLasers(ctx, &pb.SessionRequest{SessionId: open.GetSessionId()})
	require.NoError(t, err)
	_, err = client.Close(ctx, &pb.SessionRequest{SessionId: open.GetSessionId()})
	require.NoError(t, err)
	assert.Zero(t, srv.Sessions())
	assert.False(t, fake.IsOpen(0))
	assert.True(t, fake.SoftLocked(0))

	_, err = client.Close(ctx, &pb.SessionRequest{SessionId: open.GetSessionId()})
	requireCode(t, err, codes.NotFound)
}

func TestPrimaLaserStatus(t *testing.T) {
	ctx := context.Background()
	client, _, _ := startServerWithSpec(t, primaSpec)

	open, err := client.Open(ctx, &pb.OpenRequest{Index: 0})
	require.NoError(t, err)
	_, err = client.StartLaserSimple(ctx, &pb.StartLaserRequest{SessionId: open.GetSessionId(), RateMhz: 40, Intensity: 25})
	require.NoError(t, err)

	ls, err := client.GetLaserStatus(ctx, &pb.LaserRequest{SessionId: open.GetSessionId()})
	require.NoError(t, err)
	assert.Equal(t, "PRI", ls.GetType())
	assert.Equal(t, 40.0, ls.GetOperationFrequencyMhz())
	assert.Equal(t, int32(450), ls.GetWavelengthNm())
	assert.Equal(t, 200.0, ls.GetMaxFrequencyMhz())
	assert.Equal(t, int32(10), ls.GetTriggerLevelResolutionMv())
	assert.Equal(t, int32(10), ls.GetGatingOnTimeNs())
	assert.Equal(t, int32(5000), ls.GetGatingMaxOnTimeNs())
	assert.False(t, ls.GetGatingEnabled())
}

func TestErrorCodes(t *testing.T) {
	ctx := context.Background()
	client, _, fake := startServer(t)

	_, err := client.GetLaserStatus(ctx, &pb.LaserRequest{SessionId: "no-such-session"})
	requireCode(t, err, codes.NotFound)

	_, err = client.Open(ctx, &pb.OpenRequest{Index: 3})
	requireCode(t, err, codes.Unavailable)

	open, err := client.Open(ctx, &pb.OpenRequest{Index: 0})
	require.NoError(t, err)

	_, err = client.StartLaserSimple(ctx, &pb.StartLaserRequest{SessionId: open.GetSessionId(), RateMhz: 20, Intensity: 150})
	requireCode(t, err, codes.InvalidArgument)

	_, err = client.GetLaserStatus(ctx, &pb.LaserRequest{SessionId: open.GetSessionId(), Laser: 7})
	requireCode(t, err, codes.NotFound)

	fake.FailNext("SLM_SetIntensityFineStep", sepia2.SEPIA2_ERR_FW_MEMORY_ALLOCATION_ERROR)
	_, err = client.SetIntensity(ctx, &pb.SetIntensityRequest{SessionId: open.GetSessionId(), Intensity: 40})
	requireCode(t, err, codes.Internal)
}

func TestLockUnlock(t *testing.T) {
	ctx := context.Background()
	client, _, fake := startServer(t)

	open, err := client.Open(ctx, &pb.OpenRequest{Index: 0})
	require.NoError(t, err)

	st, err := client.Unlock(ctx, &pb.SessionRequest{SessionId: open.GetSessionId()})
	require.NoError(t, err)
	assert.False(t, st.GetSoftLocked())
	assert.False(t, fake.SoftLocked(0))

	st, err = client.Lock(ctx, &pb.SessionRequest{SessionId: open.GetSessionId()})
	require.NoError(t, err)
	assert.True(t, st.GetSoftLocked())
	assert.True(t, st.GetLocked())
}

func TestSetClock(t *testing.T) {
	ctx := context.Background()
	client, _, _ := startServer(t)

	open, err := client.Open(ctx, &pb.OpenRequest{Index: 0})
	require.NoError(t, err)

	clock, err := client.SetClock(ctx, &pb.SetClockRequest{SessionId: open.GetSessionId(), FrequencyMhz: 19})
	require.NoError(t, err)
	assert.Equal(t, 20.0, clock.GetFrequencyMhz())

	_, err = client.SetClock(ctx, &pb.SetClockRequest{SessionId: open.GetSessionId(), FrequencyMhz: 120})
	requireCode(t, err, codes.InvalidArgument)
}

func TestCloseAll(t *testing.T) {
	ctx := context.Background()
	client, srv, fake := startServer(t)

	_, err := client.Open(ctx, &pb.OpenRequest{Index: 0})
	require.NoError(t, err)
	require.True(t, fake.IsOpen(0))

	require.NoError(t, srv.CloseAll())
	assert.Zero(t, srv.Sessions())
	assert.False(t, fake.IsOpen(0))
}

func TestLocalClient(t *testing.T) {
	ctx := context.Background()
	fake, err := sepia2.NewFakeLibFromYAML([]byte(sepia2.DefaultFakeSpec))
	require.NoError(t, err)
	srv := NewServer(slog.New(slog.DiscardHandler), sepia2.WithLib(fake))
	t.Cleanup(func() { _ = srv.CloseAll() })
	client := NewLocalClient(srv)

	open, err := client.Open(ctx, &pb.OpenRequest{})
	require.NoError(t, err)
	st, err := client.Unlock(ctx, &pb.SessionRequest{SessionId: open.GetSessionId()})
	require.NoError(t, err)
	assert.False(t, st.GetSoftLocked())

	_, err = client.GetLaserStatus(ctx, &pb.LaserRequest{SessionId: open.GetSessionId(), Laser: 9})
	requireCode(t, err, codes.NotFound)

	_, err = client.Close(ctx, &pb.SessionRequest{SessionId: open.GetSessionId()})
	require.NoError(t, err)
	assert.True(t, fake.SoftLocked(0))
}
