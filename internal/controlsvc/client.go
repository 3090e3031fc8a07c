package controlsvc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/sepiawrapper/sepia2-go/internal/controlsvc/pb"
)

// Dial connects to a sepia2d control service. Without options the
// connection is plaintext.
func Dial(target string, opts ...grpc.DialOption) (*grpc.ClientConn, pb.ControlClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, nil, err
	}
	return conn, pb.NewControlClient(conn), nil
}

// localClient calls a ControlServer in the same process. Call options are
// ignored.
type localClient struct {
	srv pb.ControlServer
}

var _ pb.ControlClient = localClient{}

// NewLocalClient serves the control API from srv without a network hop, so
// callers can use the same client for a local library and a remote daemon.
func NewLocalClient(srv pb.ControlServer) pb.ControlClient {
	return localClient{srv: srv}
}

func (c localClient) ListDevices(ctx context.Context, in *pb.ListDevicesRequest, _ ...grpc.CallOption) (*pb.ListDevicesResponse, error) {
	return c.srv.ListDevices(ctx, in)
}

func (c localClient) Open(ctx context.Context, in *pb.OpenRequest, _ ...grpc.CallOption) (*pb.OpenResponse, error) {
	return c.srv.Open(ctx, in)
}

func (c localClient) Close(ctx context.Context, in *pb.SessionRequest, _ ...grpc.CallOption) (*pb.Empty, error) {
	return c.srv.Close(ctx, in)
}

func (c localClient) GetLaserStatus(ctx context.Context, in *pb.LaserRequest, _ ...grpc.CallOption) (*pb.LaserStatus, error) {
	return c.srv.GetLaserStatus(ctx, in)
}

func (c localClient) GetOscillatorStatus(ctx context.Context, in *pb.SessionRequest, _ ...grpc.CallOption) (*pb.OscillatorStatus, error) {
	return c.srv.GetOscillatorStatus(ctx, in)
}

func (c localClient) StartLaserSimple(ctx context.Context, in *pb.StartLaserRequest, _ ...grpc.CallOption) (*pb.StartLaserResponse, error) {
	return c.srv.StartLaserSimple(ctx, in)
}

func (c localClient) StopLasers(ctx context.Context, in *pb.SessionRequest, _ ...grpc.CallOption) (*pb.Empty, error) {
	return c.srv.StopLasers(ctx, in)
}

func (c localClient) SetIntensity(ctx context.Context, in *pb.SetIntensityRequest, _ ...grpc.CallOption) (*pb.Empty, error) {
	return c.srv.SetIntensity(ctx, in)
}

func (c localClient) SetClock(ctx context.Context, in *pb.SetClockRequest, _ ...grpc.CallOption) (*pb.SetClockResponse, error) {
	return c.srv.SetClock(ctx, in)
}

func (c localClient) Lock(ctx context.Context, in *pb.SessionRequest, _ ...grpc.CallOption) (*pb.LockResponse, error) {
	return c.srv.Lock(ctx, in)
}

func (c localClient) Unlock(ctx context.Context, in *pb.SessionRequest, _ ...grpc.CallOption) (*pb.LockResponse, error) {
	return c.srv.Unlock(ctx, in)
}
