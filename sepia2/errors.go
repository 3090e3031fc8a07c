package sepia2

import (
	"errors"
	"fmt"
)

var (
	ErrSessionClosed = errors.New("sepia2: session closed")
	ErrNotSupported  = errors.New("sepia2: not supported by module")
	ErrNoOscillator  = errors.New("sepia2: no oscillator module installed")
	ErrNoSuchLaser   = errors.New("sepia2: no laser module at index")
)

// NativeLibraryError means the vendor library could not be loaded or does
// not answer. It is fatal for the process.
type NativeLibraryError struct {
	Err error
}

func (e *NativeLibraryError) Error() string {
	return fmt.Sprintf("sepia2 library unavailable: %v", e.Err)
}

func (e *NativeLibraryError) Unwrap() error { return e.Err }

// DeviceOpenError is returned by Open when the USB device cannot be claimed.
type DeviceOpenError struct {
	Index int
	Code  Status
}

func (e *DeviceOpenError) Error() string {
	return fmt.Sprintf("open device %d: %s (%d)", e.Index, e.Code, int(e.Code))
}

// NativeStatusError carries a nonzero vendor status code verbatim.
type NativeStatusError struct {
	Op   string
	Code Status
	Text string
}

func (e *NativeStatusError) Error() string {
	return fmt.Sprintf("%s: %s (%d)", e.Op, e.Text, int(e.Code))
}

// InvalidParameterError rejects a caller value before it reaches the device.
type InvalidParameterError struct {
	Param  string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

// InvalidChannelError rejects an oscillator channel outside [0, Channels).
type InvalidChannelError struct {
	Channel int
}

func (e *InvalidChannelError) Error() string {
	return fmt.Sprintf("invalid channel %d: must be in [0,%d]", e.Channel, Channels-1)
}

// UnsupportedModuleError describes a slot that Open skipped.
type UnsupportedModuleError struct {
	SlotID     int
	ModuleType ModuleType
}

func (e *UnsupportedModuleError) Error() string {
	return fmt.Sprintf("slot %03d: module type %q not supported", e.SlotID, string(e.ModuleType))
}

// StatusCode extracts the vendor code from err, if any.
func StatusCode(err error) (Status, bool) {
	var se *NativeStatusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	var oe *DeviceOpenError
	if errors.As(err, &oe) {
		return oe.Code, true
	}
	return SEPIA2_ERR_NO_ERROR, false
}

func invalidParam(param string, value any, reason string) error {
	return &InvalidParameterError{Param: param, Value: value, Reason: reason}
}
