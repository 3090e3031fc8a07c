package sepia2

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestDivider(t *testing.T) {
	tests := []struct {
		name    string
		mhz     float64
		max     int
		divider int
		wantErr bool
	}{
		{"exact 20 MHz", 20, MaxDividerSOMD, 4, false},
		{"26.666 rounds to 3", 26.666, MaxDividerSOMD, 3, false},
		{"80 MHz", 80, MaxDividerSOM, 1, false},
		{"84 MHz within tolerance", 84, MaxDividerSOM, 1, false},
		{"19 MHz within tolerance", 19, MaxDividerSOM, 4, false},
		{"100 MHz too far from 80", 100, MaxDividerSOM, 0, true},
		{"120 MHz too far from 80", 120, MaxDividerSOM, 0, true},
		{"60 MHz between dividers", 60, MaxDividerSOM, 0, true},
		{"above base clock", 200, MaxDividerSOM, 0, true},
		{"SOMD reaches 100 kHz", 0.1, MaxDividerSOMD, 800, false},
		{"SOM cannot reach 100 kHz", 0.1, MaxDividerSOM, 0, true},
		{"zero", 0, MaxDividerSOM, 0, true},
		{"negative", -5, MaxDividerSOM, 0, true},
		{"NaN", math.NaN(), MaxDividerSOM, 0, true},
		{"Inf", math.Inf(1), MaxDividerSOM, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			divider, err := NearestDivider(tc.mhz, tc.max)
			if tc.wantErr {
				var pe *InvalidParameterError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, "frequency", pe.Param)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.divider, divider)
		})
	}
}

func TestFrequencyFromDivider(t *testing.T) {
	assert.Equal(t, 20.0, FrequencyFromDivider(4))
	assert.InDelta(t, 26.6667, FrequencyFromDivider(3), 1e-4)
	assert.Equal(t, 80.0, FrequencyFromDivider(1))
	assert.Zero(t, FrequencyFromDivider(0))
}

func TestMaxDivider(t *testing.T) {
	assert.Equal(t, 255, MaxDivider(ModuleSOM))
	assert.Equal(t, 65535, MaxDivider(ModuleSOMD))
}

func TestIntensityConversion(t *testing.T) {
	perMille, err := IntensityToPerMille(42.37)
	require.NoError(t, err)
	assert.Equal(t, 424, perMille)
	assert.Equal(t, 42.4, PerMilleToIntensity(perMille))

	for _, pct := range []float64{0, 100} {
		_, err := IntensityToPerMille(pct)
		assert.NoError(t, err, pct)
	}
	for _, pct := range []float64{-0.1, 100.1, 150, math.NaN()} {
		_, err := IntensityToPerMille(pct)
		var pe *InvalidParameterError
		assert.ErrorAs(t, err, &pe, pct)
	}
}

func TestCoarseSteps(t *testing.T) {
	steps, err := CoarseSteps(10, 0.78125)
	require.NoError(t, err)
	assert.Equal(t, 12, steps)
	assert.Equal(t, 9.375, DelayFromSteps(steps, 0.78125))

	steps, err = CoarseSteps(7.8125, 0.78125)
	require.NoError(t, err)
	assert.Equal(t, 10, steps, "exact multiples are not floored away")

	_, err = CoarseSteps(-1, 0.78125)
	var pe *InvalidParameterError
	assert.ErrorAs(t, err, &pe)

	_, err = CoarseSteps(1, 0)
	assert.Error(t, err)
}

func TestChannelMask(t *testing.T) {
	mask, err := ChannelMask([]int{0, 3, 7})
	require.NoError(t, err)
	assert.Equal(t, uint8(0x89), mask)
	assert.Equal(t, []int{0, 3, 7}, MaskChannels(mask))

	mask, err = ChannelMask(nil)
	require.NoError(t, err)
	assert.Zero(t, mask)
	assert.Equal(t, []int{}, MaskChannels(0))

	_, err = ChannelMask([]int{1, 8})
	var ce *InvalidChannelError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 8, ce.Channel)
}

func TestSLMTriggers(t *testing.T) {
	name, err := SLMTriggerName(SLMTriggerFalling)
	require.NoError(t, err)
	assert.Equal(t, "falling edge (ext.)", name)

	_, err = SLMTriggerName(8)
	assert.Error(t, err)

	f, ok := SLMInternalFrequency(2)
	assert.True(t, ok)
	assert.Equal(t, 20.0, f)
	_, ok = SLMInternalFrequency(SLMTriggerRising)
	assert.False(t, ok)

	code, f, err := NearestSLMTrigger(11)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Equal(t, 10.0, f)

	code, f, err = NearestSLMTrigger(0.5)
	require.NoError(t, err)
	assert.Equal(t, 5, code)
	assert.Equal(t, 2.5, f)
}

func TestSequencerName(t *testing.T) {
	name, err := SequencerName(SequencerOnAuxLow)
	require.NoError(t, err)
	assert.Equal(t, "running on AUX IN low", name)
	_, err = SequencerName(4)
	assert.Error(t, err)
}

func TestStatusCode(t *testing.T) {
	err := errorString("SLM_SetPulseParameters", SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	code, ok := StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION, code)
	assert.Contains(t, err.Error(), "SLM_SetPulseParameters")

	_, ok = StatusCode(errors.New("plain"))
	assert.False(t, ok)
	assert.NoError(t, errorString("X", SEPIA2_ERR_NO_ERROR))
	assert.Equal(t, "sepia2 status -1", Status(-1).String())
}

func TestDecodeStatusFallback(t *testing.T) {
	decoded := func(Status) (string, error) { return "PRI: gating not supported", nil }
	failing := func(Status) (string, error) {
		return "", errorString("LIB_DecodeError", SEPIA2_ERR_LIB_UNKNOWN_ERROR_CODE)
	}

	var se *NativeStatusError
	require.ErrorAs(t, decodeStatus("PRI_SetGatingData", -7010, decoded), &se)
	assert.Equal(t, "PRI: gating not supported", se.Text)
	assert.Equal(t, Status(-7010), se.Code)

	require.ErrorAs(t, decodeStatus("PRI_SetGatingData", -7010, failing), &se)
	assert.Equal(t, "sepia2 status -7010", se.Text)

	require.ErrorAs(t, decodeStatus("USB_OpenDevice", SEPIA2_ERR_USB_DEVICE_GONE, decoded), &se)
	assert.Equal(t, "USB: device gone", se.Text)
	assert.NoError(t, decodeStatus("X", SEPIA2_ERR_NO_ERROR, decoded))
}
