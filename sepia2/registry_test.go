package sepia2

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quietLog = slog.New(slog.DiscardHandler)

func newFake(t *testing.T, spec string) *FakeLib {
	t.Helper()
	fake, err := NewFakeLibFromYAML([]byte(spec))
	require.NoError(t, err)
	return fake
}

func TestListDevicesEmptyBus(t *testing.T) {
	fake := newFake(t, `Devices: []`)

	devs, err := ListDevices(WithLib(fake), WithLogger(quietLog))
	require.NoError(t, err)
	assert.NotNil(t, devs)
	assert.Empty(t, devs)
}

func TestListDevices(t *testing.T) {
	fake := newFake(t, `
Devices:
  - { Product: "PDL 828", Serial: "1030427" }
  - { Product: "PDL 828", Serial: "1030428", Busy: true }
  - { Product: "PDL 828", Serial: "1030429" }
`)

	devs, err := ListDevices(WithLib(fake), WithLogger(quietLog))
	require.NoError(t, err)
	assert.Equal(t, map[int]DeviceDescriptor{
		0: {Index: 0, Model: "PDL 828", Serial: "1030427"},
		2: {Index: 2, Model: "PDL 828", Serial: "1030429"},
	}, devs)
}

func TestListDevicesStopsAtMaxDevices(t *testing.T) {
	spec := "Devices:\n"
	for i := 0; i < MaxDevices; i++ {
		spec += "  - { Product: \"PDL 828\" }\n"
	}
	fake := newFake(t, spec)

	devs, err := ListDevices(WithLib(fake), WithLogger(quietLog))
	require.NoError(t, err)
	assert.Len(t, devs, MaxDevices)
	queries := 0
	for _, c := range fake.Calls() {
		if c == "USB_OpenGetSerNumAndClose" {
			queries++
		}
	}
	assert.Equal(t, MaxDevices, queries)
}

func TestListDevicesLibraryUnavailable(t *testing.T) {
	fake := newFake(t, `Unavailable: true`)

	_, err := ListDevices(WithLib(fake), WithLogger(quietLog))
	var le *NativeLibraryError
	require.ErrorAs(t, err, &le)
}

func TestListDevicesNativeFailure(t *testing.T) {
	fake := newFake(t, DefaultFakeSpec)
	fake.FailNext("USB_OpenGetSerNumAndClose", SEPIA2_ERR_USB_WRONG_DRIVER)

	_, err := ListDevices(WithLib(fake), WithLogger(quietLog))
	var se *NativeStatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, SEPIA2_ERR_USB_WRONG_DRIVER, se.Code)
}

func TestFakeSpecRejectsTooManyDevices(t *testing.T) {
	spec := "Devices:\n"
	for i := 0; i <= MaxDevices; i++ {
		spec += "  - { Product: \"PDL 828\" }\n"
	}
	_, err := NewFakeLibFromYAML([]byte(spec))
	assert.Error(t, err)
}
