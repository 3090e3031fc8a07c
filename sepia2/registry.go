package sepia2

import (
	"errors"
	"fmt"
	"log/slog"
)

// DeviceDescriptor identifies a mainframe found on the USB bus.
type DeviceDescriptor struct {
	Index  int
	Model  string
	Serial string
}

// Option configures ListDevices and Open.
type Option func(*options)

type options struct {
	lib     Lib
	log     *slog.Logger
	verbose bool
	restart bool
}

// WithLib selects the library binding instead of the build default.
func WithLib(lib Lib) Option {
	return func(o *options) { o.lib = lib }
}

// WithLogger sets the logger used for discovery and session events.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithVerbose logs the connection and each module found at Open, and traces
// every library call at debug level.
func WithVerbose(verbose bool) Option {
	return func(o *options) { o.verbose = verbose }
}

// WithRestart asks the firmware for a fresh module map scan at Open.
func WithRestart(restart bool) Option {
	return func(o *options) { o.restart = restart }
}

func buildOptions(opts []Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	if o.lib == nil {
		lib, err := defaultLib()
		if err != nil {
			return nil, &NativeLibraryError{Err: err}
		}
		o.lib = lib
	}
	if o.verbose {
		o.lib = NewVerboseLib(o.lib, o.log)
	}
	return o, nil
}

// ListDevices enumerates the attached mainframes keyed by device index. An
// empty bus yields an empty map.
func ListDevices(opts ...Option) (map[int]DeviceDescriptor, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	version, err := o.lib.LibVersion()
	if err != nil {
		return nil, &NativeLibraryError{Err: err}
	}

	devs := map[int]DeviceDescriptor{}

	o.log.Info("Discovering devices...", "lib_version", version)
	for i := 0; i < MaxDevices; i++ {
		model, serial, err := o.lib.OpenGetSerNumAndClose(i)
		if err != nil {
			var se *NativeStatusError
			if !errors.As(err, &se) {
				return nil, fmt.Errorf("query device %d: %w", i, err)
			}
			if se.Code.noDevice() {
				break
			}
			if se.Code.busy() {
				o.log.Warn("Device busy, skipping", "index", i, "code", int(se.Code))
				continue
			}
			return nil, fmt.Errorf("query device %d: %w", i, err)
		}
		o.log.Info("Device found", "index", i, "model", model, "serial", serial)
		devs[i] = DeviceDescriptor{Index: i, Model: model, Serial: serial}
	}
	return devs, nil
}
