package sepia2

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerboseLibLogsCalls(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	fake := newFake(t, DefaultFakeSpec)

	s, err := Open(0, WithLib(fake), WithLogger(log), WithVerbose(true))
	require.NoError(t, err)
	err = s.Lasers()[0].SetIntensity(150)
	require.Error(t, err)
	_, err = s.Oscillator().SetClockInternal(20)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	var ops []string
	var connected bool
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		if op, ok := rec["op"].(string); ok {
			ops = append(ops, op)
		}
		if rec["msg"] == "Connected" {
			connected = true
			assert.Equal(t, "1030427", rec["serial"])
		}
	}
	assert.True(t, connected)
	assert.Equal(t, "USB_OpenDevice", ops[0])
	assert.Contains(t, ops, "SOMD_SetBurstValues")
	assert.NotContains(t, ops, "SLM_SetIntensityFineStep")
	assert.Equal(t, "USB_CloseDevice", ops[len(ops)-1])
}

func TestVerboseLibLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	fake := newFake(t, DefaultFakeSpec)
	fake.FailNext("USB_OpenDevice", SEPIA2_ERR_USB_DEVICE_BUSY)

	_, err := Open(0, WithLib(fake), WithLogger(log), WithVerbose(true))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"msg":"sepia2 call failed"`)
	assert.Contains(t, buf.String(), "USB: device busy")
}
