package sepia2

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOscillatorDefaultStatus(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)

	st, err := s.Oscillator().GetCurrentStatus()
	require.NoError(t, err)

	want := OscillatorStatus{
		SlotID:            100,
		Type:              ModuleSOMD,
		TriggerCode:       FreqTrigInternal,
		TriggerMode:       "int. 80.00 MHz",
		Divider:           4,
		ClockFrequencyMHz: 20,
		BurstArray:        [Channels]int{1, 1, 1, 1, 1, 1, 1, 1},
		OutputEnabled:     []int{},
		SyncEnabled:       []int{},
		SequencerModeName: "free running",
		Channels: []ChannelConfig{
			{Combines: []int{0}}, {Combines: []int{1}}, {Combines: []int{2}}, {Combines: []int{3}},
			{Combines: []int{4}}, {Combines: []int{5}}, {Combines: []int{6}}, {Combines: []int{7}},
		},
	}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}
}

func TestSetClockInternalRoundTrip(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)
	osc := s.Oscillator()
	require.NoError(t, osc.SetPresync(2, 1))

	freq, err := osc.SetClockInternal(26.666666)
	require.NoError(t, err)
	assert.InDelta(t, 26.6667, freq, 1e-4)

	st, err := osc.GetCurrentStatus()
	require.NoError(t, err)
	assert.Equal(t, 3, st.Divider)
	assert.InDelta(t, 26.6667, st.ClockFrequencyMHz, 1e-4)
	assert.Equal(t, 2, st.Presync)
	assert.Equal(t, 1, st.MaskSync)
}

func TestSetClockInternalLimits(t *testing.T) {
	s, fake := openFake(t, somSpec)
	osc := s.Oscillator()
	fake.ResetCalls()

	var pe *InvalidParameterError
	_, err := osc.SetClockInternal(0.1)
	assert.ErrorAs(t, err, &pe)
	_, err = osc.SetClockInternal(200)
	assert.ErrorAs(t, err, &pe)
	assert.Empty(t, fake.Calls())

	freq, err := osc.SetClockInternal(0.314)
	require.NoError(t, err)
	assert.Equal(t, 80.0/255, freq)
}

func TestDelayThenCombinerClearsDelay(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)
	osc := s.Oscillator()

	cfg, err := osc.SetDelay(3, 10, 5)
	require.NoError(t, err)
	assert.True(t, cfg.Delayed())
	assert.InDelta(t, 7.8125, cfg.DelayNs, 1e-9)
	assert.Equal(t, 5, cfg.AmplitudeAU)

	require.NoError(t, osc.SetCombiner(3, []int{0, 1}, false))

	st, err := osc.GetCurrentStatus()
	require.NoError(t, err)
	got := st.Channels[3]
	assert.False(t, got.Delayed())
	assert.Equal(t, []int{0, 1}, got.Combines)
	assert.Zero(t, got.DelayNs)
	assert.Zero(t, got.AmplitudeAU)
}

func TestCombinerThenDelayClearsCombiner(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)
	osc := s.Oscillator()

	require.NoError(t, osc.SetCombiner(2, []int{4, 5}, true))
	cfg, err := osc.SetDelayNs(2, 2.0, 0)
	require.NoError(t, err)
	assert.True(t, cfg.Delayed())
	assert.Nil(t, cfg.Combines)
	assert.False(t, cfg.Masked)
	assert.InDelta(t, 1.5625, cfg.DelayNs, 1e-9)
}

func TestSetDelayClampsFineSteps(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)

	cfg, err := s.Oscillator().SetDelay(0, 0, 99)
	require.NoError(t, err)
	assert.Equal(t, 31, cfg.AmplitudeAU)
}

func TestInvalidChannelMakesNoCall(t *testing.T) {
	s, fake := openFake(t, DefaultFakeSpec)
	osc := s.Oscillator()
	fake.ResetCalls()

	var ce *InvalidChannelError
	_, err := osc.SetDelay(8, 1, 0)
	assert.ErrorAs(t, err, &ce)
	_, err = osc.SetDelayNs(-1, 1, 0)
	assert.ErrorAs(t, err, &ce)
	assert.ErrorAs(t, osc.SetCombiner(9, []int{0}, false), &ce)
	assert.ErrorAs(t, osc.SetCombiner(0, []int{8}, false), &ce)
	assert.ErrorAs(t, osc.SetOutput([]int{0, 8}), &ce)
	assert.ErrorAs(t, osc.SetSync([]int{12}), &ce)

	var pe *InvalidParameterError
	_, err = osc.SetDelay(0, -1, 0)
	assert.ErrorAs(t, err, &pe)
	assert.ErrorAs(t, osc.SetCombiner(0, nil, false), &pe)
	assert.ErrorAs(t, osc.SetSequencer(false, 4), &pe)
	assert.ErrorAs(t, osc.SetBurstArray([Channels]int{MaxBurstLength + 1}), &pe)
	assert.ErrorAs(t, osc.SetPresync(256, 0), &pe)

	assert.Empty(t, fake.Calls())
}

func TestSetOutputAndSyncReplace(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)
	osc := s.Oscillator()

	require.NoError(t, osc.SetOutput([]int{1, 2}))
	require.NoError(t, osc.SetSync([]int{5}))
	require.NoError(t, osc.SetOutput([]int{3}))
	require.NoError(t, osc.SetSyncInverted(true))

	st, err := osc.GetCurrentStatus()
	require.NoError(t, err)
	assert.Equal(t, []int{3}, st.OutputEnabled)
	assert.Equal(t, []int{5}, st.SyncEnabled)
	assert.True(t, st.SyncMaskInverted)
}

func TestSetSequencerAndBursts(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)
	osc := s.Oscillator()

	require.NoError(t, osc.SetSequencer(true, SequencerOnAuxLow))
	require.NoError(t, osc.SetBurstArray([Channels]int{3, 0, 0, 0, 0, 0, 0, 2}))

	st, err := osc.GetCurrentStatus()
	require.NoError(t, err)
	assert.True(t, st.AuxOut)
	assert.Equal(t, SequencerOnAuxLow, st.SequencerMode)
	assert.Equal(t, "running on AUX IN low", st.SequencerModeName)
	assert.Equal(t, [Channels]int{3, 0, 0, 0, 0, 0, 0, 2}, st.BurstArray)
}

func TestSOMHasNoChannelDelays(t *testing.T) {
	s, _ := openFake(t, somSpec)
	osc := s.Oscillator()
	require.Equal(t, ModuleSOM, osc.Type)

	_, err := osc.SetDelay(0, 1, 0)
	assert.ErrorIs(t, err, ErrNotSupported)
	assert.ErrorIs(t, osc.SetCombiner(0, []int{1}, false), ErrNotSupported)

	st, err := osc.GetCurrentStatus()
	require.NoError(t, err)
	assert.Nil(t, st.Channels)
	assert.Equal(t, 20.0, st.ClockFrequencyMHz)
	if diff := cmp.Diff(st, osc.Status(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("held snapshot differs (-got +held):\n%s", diff)
	}
}
