package sepia2

import "fmt"

// Status is the integer return code of every Sepia2_Lib entry point.
type Status int

// Subset of the vendor error table that this package reacts to. Every other
// nonzero code is passed through verbatim inside a NativeStatusError.
const (
	SEPIA2_ERR_NO_ERROR                          Status = 0
	SEPIA2_ERR_FW_MEMORY_ALLOCATION_ERROR        Status = -1001
	SEPIA2_ERR_USB_WRONG_DRIVER                  Status = -2001
	SEPIA2_ERR_USB_OPEN_DEVICE_ERROR             Status = -2002
	SEPIA2_ERR_USB_DEVICE_BUSY                   Status = -2003
	SEPIA2_ERR_USB_CLOSE_DEVICE_ERROR            Status = -2005
	SEPIA2_ERR_USB_DEVICE_GONE                   Status = -2006
	SEPIA2_ERR_USB_NO_DEVICE_FOUND               Status = -2010
	SEPIA2_ERR_SCM_NO_SAFETY_MODULE              Status = -4001
	SEPIA2_ERR_SOMD_FEATURE_NOT_AVAILABLE        Status = -5004
	SEPIA2_ERR_LIB_TOO_MANY_USB_HANDLES          Status = -9001
	SEPIA2_ERR_LIB_ILLEGAL_DEVICE_INDEX          Status = -9002
	SEPIA2_ERR_LIB_USB_DEVICE_OPEN_ERROR         Status = -9003
	SEPIA2_ERR_LIB_USB_DEVICE_BUSY_OR_BLOCKED    Status = -9004
	SEPIA2_ERR_LIB_USB_DEVICE_ALREADY_CLOSED     Status = -9005
	SEPIA2_ERR_LIB_USB_DEVICE_ALREADY_OPENED     Status = -9006
	SEPIA2_ERR_LIB_INVALID_SLOT_NUMBER           Status = -9010
	SEPIA2_ERR_LIB_NO_MAP_FOUND                  Status = -9011
	SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION Status = -9020
	SEPIA2_ERR_LIB_UNKNOWN_FUNCTION              Status = -9900
	SEPIA2_ERR_LIB_UNKNOWN_ERROR_CODE            Status = -9999
)

// MaxDevices is the number of USB device indices the library can address.
const MaxDevices = 8

var statusText = map[Status]string{
	SEPIA2_ERR_NO_ERROR:                          "no error",
	SEPIA2_ERR_FW_MEMORY_ALLOCATION_ERROR:        "FW: memory allocation error",
	SEPIA2_ERR_USB_WRONG_DRIVER:                  "USB: wrong driver",
	SEPIA2_ERR_USB_OPEN_DEVICE_ERROR:             "USB: open device error",
	SEPIA2_ERR_USB_DEVICE_BUSY:                   "USB: device busy",
	SEPIA2_ERR_USB_CLOSE_DEVICE_ERROR:            "USB: close device error",
	SEPIA2_ERR_USB_DEVICE_GONE:                   "USB: device gone",
	SEPIA2_ERR_USB_NO_DEVICE_FOUND:               "USB: no device found",
	SEPIA2_ERR_SCM_NO_SAFETY_MODULE:              "SCM: no safety module",
	SEPIA2_ERR_SOMD_FEATURE_NOT_AVAILABLE:        "SOMD: feature not available",
	SEPIA2_ERR_LIB_TOO_MANY_USB_HANDLES:          "LIB: too many USB handles",
	SEPIA2_ERR_LIB_ILLEGAL_DEVICE_INDEX:          "LIB: illegal device index",
	SEPIA2_ERR_LIB_USB_DEVICE_OPEN_ERROR:         "LIB: USB device open error",
	SEPIA2_ERR_LIB_USB_DEVICE_BUSY_OR_BLOCKED:    "LIB: USB device busy or blocked",
	SEPIA2_ERR_LIB_USB_DEVICE_ALREADY_CLOSED:     "LIB: USB device already closed",
	SEPIA2_ERR_LIB_USB_DEVICE_ALREADY_OPENED:     "LIB: USB device already opened",
	SEPIA2_ERR_LIB_INVALID_SLOT_NUMBER:           "LIB: invalid slot number",
	SEPIA2_ERR_LIB_NO_MAP_FOUND:                  "LIB: no module map found",
	SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION: "LIB: illegal parameter on function call",
	SEPIA2_ERR_LIB_UNKNOWN_FUNCTION:              "LIB: unknown function",
	SEPIA2_ERR_LIB_UNKNOWN_ERROR_CODE:            "LIB: unknown error code",
}

// String returns the text from the built-in table. Errors built by the cgo
// binding resolve codes outside of it through SEPIA2_LIB_DecodeError.
func (s Status) String() string {
	if txt, ok := statusText[s]; ok {
		return txt
	}
	return fmt.Sprintf("sepia2 status %d", int(s))
}

// noDevice reports whether a status means "nothing is plugged in at this index".
func (s Status) noDevice() bool {
	switch s {
	case SEPIA2_ERR_USB_NO_DEVICE_FOUND,
		SEPIA2_ERR_LIB_ILLEGAL_DEVICE_INDEX,
		SEPIA2_ERR_USB_OPEN_DEVICE_ERROR,
		SEPIA2_ERR_LIB_USB_DEVICE_OPEN_ERROR:
		return true
	}
	return false
}

func (s Status) busy() bool {
	return s == SEPIA2_ERR_USB_DEVICE_BUSY || s == SEPIA2_ERR_LIB_USB_DEVICE_BUSY_OR_BLOCKED ||
		s == SEPIA2_ERR_LIB_USB_DEVICE_ALREADY_OPENED
}

// errorString translates a status code into a Go error. op names the entry
// point for the error message.
func errorString(op string, ret Status) error {
	return decodeStatus(op, ret, nil)
}

// decodeStatus is errorString with a fallback for codes missing from the
// built-in table. A failing decode keeps the generic text.
func decodeStatus(op string, ret Status, decode func(Status) (string, error)) error {
	if ret == SEPIA2_ERR_NO_ERROR {
		return nil
	}
	text, ok := statusText[ret]
	if !ok && decode != nil {
		if t, err := decode(ret); err == nil && t != "" {
			text, ok = t, true
		}
	}
	if !ok {
		text = ret.String()
	}
	return &NativeStatusError{Op: op, Code: ret, Text: text}
}
