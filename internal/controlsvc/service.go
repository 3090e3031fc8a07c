// Package controlsvc exposes open Sepia2 sessions over gRPC so that one
// process owns the USB handles and several clients can drive the lasers.
package controlsvc

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sepiawrapper/sepia2-go/internal/controlsvc/pb"
	"github.com/sepiawrapper/sepia2-go/sepia2"
)

var errUnknownSession = errors.New("unknown session")

// Server holds the sessions opened by clients. Calls on one session are
// serialised; different sessions proceed in parallel.
type Server struct {
	pb.UnimplementedControlServer

	log  *slog.Logger
	opts []sepia2.Option

	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	mu sync.Mutex
	s  *sepia2.Session
}

var _ pb.ControlServer = (*Server)(nil)

// NewServer creates a control server. opts are passed to every
// sepia2.ListDevices and sepia2.Open call.
func NewServer(log *slog.Logger, opts ...sepia2.Option) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		log:      log,
		opts:     append([]sepia2.Option{sepia2.WithLogger(log)}, opts...),
		sessions: map[string]*entry{},
	}
}

// Register adds the control service to a gRPC server.
func (s *Server) Register(r grpc.ServiceRegistrar) {
	pb.RegisterControlServer(r, s)
}

// CloseAll closes every open session, soft-locking their lasers.
func (s *Server) CloseAll() error {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = map[string]*entry{}
	s.mu.Unlock()

	var errs []error
	for id, e := range sessions {
		e.mu.Lock()
		err := e.s.Close()
		e.mu.Unlock()
		if err != nil {
			s.log.Error("Closing session failed", "session", id, "error", err)
			errs = append(errs, err)
			continue
		}
		s.log.Info("Session closed", "session", id, "device", e.s.Index())
	}
	return errors.Join(errs...)
}

// Sessions returns the number of open sessions.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) with(id string, fn func(*sepia2.Session) error) error {
	s.mu.Lock()
	e, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return toStatus(errUnknownSession)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return toStatus(fn(e.s))
}

func (s *Server) ListDevices(ctx context.Context, req *pb.ListDevicesRequest) (*pb.ListDevicesResponse, error) {
	devs, err := sepia2.ListDevices(s.opts...)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.ListDevicesResponse{Devices: make([]*pb.Device, 0, len(devs))}
	for _, d := range devs {
		resp.Devices = append(resp.Devices, &pb.Device{Index: int32(d.Index), Model: d.Model, Serial: d.Serial})
	}
	sort.Slice(resp.Devices, func(i, j int) bool { return resp.Devices[i].Index < resp.Devices[j].Index })
	return resp, nil
}

func (s *Server) Open(ctx context.Context, req *pb.OpenRequest) (*pb.OpenResponse, error) {
	opts := append(append([]sepia2.Option(nil), s.opts...), sepia2.WithRestart(req.GetRestart()))
	index := int(req.GetIndex())
	sess, err := sepia2.Open(index, opts...)
	if err != nil {
		return nil, toStatus(err)
	}
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = &entry{s: sess}
	s.mu.Unlock()
	s.log.Info("Session opened", "session", id, "device", index, "serial", sess.Serial())

	resp := &pb.OpenResponse{
		SessionId: id,
		Model:     sess.Product(),
		Serial:    sess.Serial(),
		Firmware:  sess.Firmware(),
	}
	for _, l := range sess.Lasers() {
		resp.Lasers = append(resp.Lasers, &pb.Module{Slot: int32(l.SlotID), Type: string(l.Type)})
	}
	if osc := sess.Oscillator(); osc != nil {
		resp.Oscillator = &pb.Module{Slot: int32(osc.SlotID), Type: string(osc.Type)}
	}
	for _, u := range sess.Unsupported() {
		resp.Unsupported = append(resp.Unsupported, &pb.Module{Slot: int32(u.SlotID), Type: string(u.ModuleType)})
	}
	return resp, nil
}

func (s *Server) Close(ctx context.Context, req *pb.SessionRequest) (*pb.Empty, error) {
	id := req.GetSessionId()
	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return nil, toStatus(errUnknownSession)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.s.Close(); err != nil {
		return nil, toStatus(err)
	}
	s.log.Info("Session closed", "session", id, "device", e.s.Index())
	return &pb.Empty{}, nil
}

func (s *Server) GetLaserStatus(ctx context.Context, req *pb.LaserRequest) (*pb.LaserStatus, error) {
	var st sepia2.LaserStatus
	err := s.with(req.GetSessionId(), func(sess *sepia2.Session) error {
		l, err := sess.Laser(int(req.GetLaser()))
		if err != nil {
			return err
		}
		st, err = l.GetCurrentStatus()
		return err
	})
	if err != nil {
		return nil, err
	}
	return laserStatusToProto(st), nil
}

func (s *Server) GetOscillatorStatus(ctx context.Context, req *pb.SessionRequest) (*pb.OscillatorStatus, error) {
	var st sepia2.OscillatorStatus
	err := s.with(req.GetSessionId(), func(sess *sepia2.Session) error {
		osc := sess.Oscillator()
		if osc == nil {
			return sepia2.ErrNoOscillator
		}
		var err error
		st, err = osc.GetCurrentStatus()
		return err
	})
	if err != nil {
		return nil, err
	}
	return oscillatorStatusToProto(st), nil
}

func (s *Server) StartLaserSimple(ctx context.Context, req *pb.StartLaserRequest) (*pb.StartLaserResponse, error) {
	resp := &pb.StartLaserResponse{}
	err := s.with(req.GetSessionId(), func(sess *sepia2.Session) error {
		var err error
		resp.DelayNs, resp.FrequencyMhz, err = sess.StartLaserSimple(int(req.GetLaser()),
			req.GetRateMhz(), req.GetIntensity(), req.GetDelayNs())
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Laser started", "session", req.GetSessionId(), "laser", req.GetLaser(),
		"frequency_mhz", resp.FrequencyMhz, "delay_ns", resp.DelayNs, "intensity", req.GetIntensity())
	return resp, nil
}

func (s *Server) StopLasers(ctx context.Context, req *pb.SessionRequest) (*pb.Empty, error) {
	if err := s.with(req.GetSessionId(), (*sepia2.Session).StopLasers); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *Server) SetIntensity(ctx context.Context, req *pb.SetIntensityRequest) (*pb.Empty, error) {
	err := s.with(req.GetSessionId(), func(sess *sepia2.Session) error {
		l, err := sess.Laser(int(req.GetLaser()))
		if err != nil {
			return err
		}
		return l.SetIntensity(req.GetIntensity())
	})
	if err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *Server) SetClock(ctx context.Context, req *pb.SetClockRequest) (*pb.SetClockResponse, error) {
	resp := &pb.SetClockResponse{}
	err := s.with(req.GetSessionId(), func(sess *sepia2.Session) error {
		osc := sess.Oscillator()
		if osc == nil {
			return sepia2.ErrNoOscillator
		}
		var err error
		resp.FrequencyMhz, err = osc.SetClockInternal(req.GetFrequencyMhz())
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *Server) Lock(ctx context.Context, req *pb.SessionRequest) (*pb.LockResponse, error) {
	return s.setLock(req.GetSessionId(), (*sepia2.Session).Lock)
}

func (s *Server) Unlock(ctx context.Context, req *pb.SessionRequest) (*pb.LockResponse, error) {
	return s.setLock(req.GetSessionId(), (*sepia2.Session).Unlock)
}

func (s *Server) setLock(id string, set func(*sepia2.Session) error) (*pb.LockResponse, error) {
	resp := &pb.LockResponse{}
	err := s.with(id, func(sess *sepia2.Session) error {
		if err := set(sess); err != nil {
			return err
		}
		st, err := sess.LockState()
		resp.Locked, resp.SoftLocked = st.Locked, st.SoftLocked
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// toStatus maps sepia2 errors onto gRPC status codes.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	var (
		pe *sepia2.InvalidParameterError
		ce *sepia2.InvalidChannelError
		oe *sepia2.DeviceOpenError
		le *sepia2.NativeLibraryError
		se *sepia2.NativeStatusError
	)
	switch {
	case errors.As(err, &pe), errors.As(err, &ce):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.As(err, &oe):
		return status.Error(codes.Unavailable, err.Error())
	case errors.As(err, &le):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, errUnknownSession), errors.Is(err, sepia2.ErrSessionClosed), errors.Is(err, sepia2.ErrNoSuchLaser):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, sepia2.ErrNotSupported), errors.Is(err, sepia2.ErrNoOscillator):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.As(err, &se):
		return status.Error(codes.Internal, err.Error())
	}
	return status.Error(codes.Unknown, err.Error())
}
