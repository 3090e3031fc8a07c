package sepia2

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const primaSpec = `
Devices:
  - Product: "PDL 828"
    Modules:
      - { Slot: 0, Type: SCM }
      - { Slot: 200, Type: PRI, Wavelengths: [405, 510, 635], MinFreqHz: 1000, MaxFreqHz: 200000000, DeviceID: "PRI-1041" }
`

func ptr[T any](v T) *T { return &v }

func TestLaserStatus(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)
	l := s.Lasers()[0]

	st, err := l.GetCurrentStatus()
	require.NoError(t, err)
	assert.Equal(t, LaserStatus{
		SlotID:      200,
		Type:        ModuleSLM,
		TriggerCode: SLMTriggerFalling,
		TriggerMode: "falling edge (ext.)",
		HeadType:    "LD",
	}, st)
	assert.Equal(t, st, l.Status())
}

func TestSetIntensityOutOfRangeMakesNoCall(t *testing.T) {
	s, fake := openFake(t, DefaultFakeSpec)
	fake.ResetCalls()

	err := s.Lasers()[0].SetIntensity(150)
	var pe *InvalidParameterError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "intensity", pe.Param)
	assert.Empty(t, fake.Calls())
}

func TestSetIntensity(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)
	l := s.Lasers()[1]

	require.NoError(t, l.SetIntensity(66.6))
	st, err := l.GetCurrentStatus()
	require.NoError(t, err)
	assert.Equal(t, 66.6, st.Intensity)
}

func TestSetLaserParametersKeepsUnsetFields(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)
	l := s.Lasers()[0]

	require.NoError(t, l.SetLaserParameters(2, LaserParams{Pulsed: ptr(true), Intensity: ptr(40.0)}))
	require.NoError(t, l.SetLaserParameters(4, LaserParams{}))

	st, err := l.GetCurrentStatus()
	require.NoError(t, err)
	assert.Equal(t, 4, st.TriggerCode)
	assert.Equal(t, "5 MHz (int.)", st.TriggerMode)
	assert.True(t, st.Pulsed)
	assert.Equal(t, 40.0, st.Intensity)
}

func TestSetLaserParametersValidation(t *testing.T) {
	s, fake := openFake(t, DefaultFakeSpec)
	l := s.Lasers()[0]
	fake.ResetCalls()

	var pe *InvalidParameterError
	assert.ErrorAs(t, l.SetLaserParameters(8, LaserParams{}), &pe)
	assert.ErrorAs(t, l.SetLaserParameters(-1, LaserParams{}), &pe)
	assert.ErrorAs(t, l.SetLaserParameters(0, LaserParams{OperationFrequencyMHz: ptr(40.0)}), &pe)
	assert.ErrorAs(t, l.SetLaserParameters(0, LaserParams{Intensity: ptr(-1.0)}), &pe)
	assert.Empty(t, fake.Calls())
}

func TestSetPulseParameters(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)
	l := s.Lasers()[0]

	require.NoError(t, l.SetPulseParameters(SLMTriggerRising, false))
	st, err := l.GetCurrentStatus()
	require.NoError(t, err)
	assert.Equal(t, "rising edge (ext.)", st.TriggerMode)
	assert.False(t, st.Pulsed)
}

func TestSetWavelengthNeedsPrima(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)
	assert.ErrorIs(t, s.Lasers()[0].SetWavelength(1), ErrNotSupported)
}

func TestPrimaParameters(t *testing.T) {
	s, _ := openFake(t, primaSpec)
	require.Len(t, s.Lasers(), 1)
	l := s.Lasers()[0]
	assert.Equal(t, ModulePRI, l.Type)

	require.NoError(t, l.SetWavelength(2))
	require.NoError(t, l.SetLaserParameters(0, LaserParams{
		OperationFrequencyMHz: ptr(20.0),
		Pulsed:                ptr(true),
		Intensity:             ptr(30.0),
	}))

	st, err := l.GetCurrentStatus()
	require.NoError(t, err)
	assert.Equal(t, "narrow pulse", st.OperationMode)
	assert.Equal(t, "internal", st.TriggerMode)
	assert.True(t, st.Pulsed)
	assert.Equal(t, 20.0, st.OperationFrequencyMHz)
	assert.Equal(t, 2, st.WavelengthIndex)
	assert.Equal(t, 635, st.WavelengthNm)
	assert.Equal(t, 30.0, st.Intensity)

	require.NoError(t, l.SetLaserParameters(0, LaserParams{Pulsed: ptr(false)}))
	st, err = l.GetCurrentStatus()
	require.NoError(t, err)
	assert.Equal(t, "CW", st.OperationMode)
	assert.False(t, st.Pulsed)
	assert.Equal(t, 20.0, st.OperationFrequencyMHz)
}

func TestPrimaValidation(t *testing.T) {
	s, _ := openFake(t, primaSpec)
	l := s.Lasers()[0]

	var pe *InvalidParameterError
	assert.ErrorAs(t, l.SetLaserParameters(5, LaserParams{}), &pe)
	assert.ErrorAs(t, l.SetLaserParameters(0, LaserParams{OperationFrequencyMHz: ptr(500.0)}), &pe)
	assert.ErrorAs(t, l.SetWavelength(3), &pe)
}

func TestPrimaStartSimple(t *testing.T) {
	s, fake := openFake(t, primaSpec)

	delay, freq, err := s.StartLaserSimple(0, 40, 25, 0)
	require.NoError(t, err)
	assert.Zero(t, delay)
	assert.Equal(t, 40.0, freq)
	assert.False(t, fake.SoftLocked(0))

	_, _, err = s.StartLaserSimple(0, 40, 25, 3)
	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestPrimaDecodeFailuresAreNotCallerErrors(t *testing.T) {
	s, fake := openFake(t, primaSpec)
	l := s.Lasers()[0]

	var se *NativeStatusError
	var pe *InvalidParameterError
	fake.FailNext("PRI_DecodeTriggerSource", SEPIA2_ERR_USB_DEVICE_GONE)
	err := l.SetLaserParameters(0, LaserParams{})
	require.ErrorAs(t, err, &se)
	assert.Equal(t, SEPIA2_ERR_USB_DEVICE_GONE, se.Code)
	assert.False(t, errors.As(err, &pe))

	fake.FailNext("PRI_DecodeWavelength", SEPIA2_ERR_USB_DEVICE_GONE)
	err = l.SetWavelength(0)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, SEPIA2_ERR_USB_DEVICE_GONE, se.Code)
	assert.False(t, errors.As(err, &pe))
}

func TestPrimaDeviceInfo(t *testing.T) {
	s, _ := openFake(t, primaSpec)

	info, err := s.Lasers()[0].DeviceInfo()
	require.NoError(t, err)
	assert.Equal(t, PrimaDeviceInfo{DeviceID: "PRI-1041", DeviceType: "Prima", Firmware: "1.00.17", WavelengthCount: 3}, info)

	_, err = openLaser(t).DeviceInfo()
	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestPrimaGating(t *testing.T) {
	s, fake := openFake(t, primaSpec)
	l := s.Lasers()[0]

	require.NoError(t, l.SetGating(Gating{OnTimeNs: 200, OffTimeFactor: 4, Enabled: true}))
	require.NoError(t, l.SetGateHighImpedance(true))
	st, err := l.GetCurrentStatus()
	require.NoError(t, err)
	assert.Equal(t, Gating{OnTimeNs: 200, OffTimeFactor: 4, Enabled: true}, st.Gating)
	assert.Equal(t, fakePRIGatingLimits, st.GatingLimits)
	assert.True(t, st.GateHighImpedance)
	assert.Equal(t, 0.001, st.MinFrequencyMHz)
	assert.Equal(t, 200.0, st.MaxFrequencyMHz)

	fake.ResetCalls()
	var pe *InvalidParameterError
	require.ErrorAs(t, l.SetGating(Gating{OnTimeNs: 1, OffTimeFactor: 4}), &pe)
	assert.Equal(t, "gating on time", pe.Param)
	require.ErrorAs(t, l.SetGating(Gating{OnTimeNs: 200, OffTimeFactor: 1000}), &pe)
	assert.Equal(t, "gating off time factor", pe.Param)
	assert.Equal(t, []string{"PRI_GetGatingLimits", "PRI_GetGatingLimits"}, fake.Calls())

	require.NoError(t, l.SetGating(Gating{OnTimeNs: 200, OffTimeFactor: 4}))
	st, err = l.GetCurrentStatus()
	require.NoError(t, err)
	assert.False(t, st.Gating.Enabled)

	assert.ErrorIs(t, openLaser(t).SetGating(Gating{OnTimeNs: 200, OffTimeFactor: 4}), ErrNotSupported)
}

func TestPrimaTriggerLevel(t *testing.T) {
	s, _ := openFake(t, primaSpec)
	l := s.Lasers()[0]

	require.NoError(t, l.SetTriggerLevel(-250))
	st, err := l.GetCurrentStatus()
	require.NoError(t, err)
	assert.Equal(t, -250, st.TriggerLevelMV)
	assert.Equal(t, TriggerLevelLimits{MinMV: -1000, MaxMV: 1000, ResolutionMV: 10}, st.TriggerLevelLimits)

	var pe *InvalidParameterError
	assert.ErrorAs(t, l.SetTriggerLevel(1500), &pe)
	assert.ErrorIs(t, openLaser(t).SetTriggerLevel(0), ErrNotSupported)
}

// openLaser returns an SLM laser of the default bus.
func openLaser(t *testing.T) *LaserModule {
	t.Helper()
	s, _ := openFake(t, DefaultFakeSpec)
	return s.Lasers()[0]
}
