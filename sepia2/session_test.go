package sepia2

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noOscillatorSpec = `
Devices:
  - Product: "PDL 828"
    Serial: "1030500"
    Modules:
      - { Slot: 0, Type: SCM }
      - { Slot: 200, Type: SLM }
`

const somSpec = `
Devices:
  - Product: "PDL 828"
    Modules:
      - { Slot: 0, Type: SCM }
      - { Slot: 100, Type: SOM }
      - { Slot: 200, Type: SLM }
`

func openFake(t *testing.T, spec string) (*Session, *FakeLib) {
	t.Helper()
	fake := newFake(t, spec)
	s, err := Open(0, WithLib(fake), WithLogger(quietLog))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, fake
}

func TestOpenBuildsModules(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)

	assert.Equal(t, "PDL 828", s.Product())
	assert.Equal(t, "1030427", s.Serial())
	assert.Equal(t, "1.05.420", s.Firmware())
	assert.True(t, s.IsOpen())

	osc := s.Oscillator()
	require.NotNil(t, osc)
	assert.Equal(t, 100, osc.SlotID)
	assert.Equal(t, ModuleSOMD, osc.Type)

	lasers := s.Lasers()
	require.Len(t, lasers, 2)
	assert.Equal(t, 200, lasers[0].SlotID)
	assert.Equal(t, 300, lasers[1].SlotID)
	assert.Empty(t, s.Unsupported())

	types := []ModuleType{}
	for _, m := range s.Modules() {
		types = append(types, m.Type)
	}
	assert.Equal(t, []ModuleType{ModuleFRM, ModuleSCM, ModuleSOMD, ModuleSLM, ModuleSLM}, types)
}

func TestOpenSkipsUnsupportedModules(t *testing.T) {
	s, _ := openFake(t, `
Devices:
  - Product: "PDL 828"
    Modules:
      - { Slot: 0, Type: SCM }
      - { Slot: 100, Type: SOMD }
      - { Slot: 200, Type: SLM }
      - { Slot: 400, Type: SWM }
`)

	skipped := s.Unsupported()
	require.Len(t, skipped, 1)
	assert.Equal(t, 400, skipped[0].SlotID)
	assert.Equal(t, ModuleType("SWM"), skipped[0].ModuleType)

	require.Len(t, s.Lasers(), 1)
	_, err := s.Lasers()[0].GetCurrentStatus()
	assert.NoError(t, err)
}

func TestOpenBusyDevice(t *testing.T) {
	fake := newFake(t, `
Devices:
  - { Product: "PDL 828", Busy: true }
`)
	_, err := Open(0, WithLib(fake), WithLogger(quietLog))
	var oe *DeviceOpenError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, 0, oe.Index)
	assert.Equal(t, SEPIA2_ERR_LIB_USB_DEVICE_BUSY_OR_BLOCKED, oe.Code)

	_, err = Open(5, WithLib(fake), WithLogger(quietLog))
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, SEPIA2_ERR_USB_NO_DEVICE_FOUND, oe.Code)
}

func TestOpenFailureReleasesDevice(t *testing.T) {
	fake := newFake(t, DefaultFakeSpec)
	fake.FailNext("COM_GetModuleType", SEPIA2_ERR_LIB_INVALID_SLOT_NUMBER)

	_, err := Open(0, WithLib(fake), WithLogger(quietLog))
	code, ok := StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, SEPIA2_ERR_LIB_INVALID_SLOT_NUMBER, code)
	assert.False(t, fake.IsOpen(0))
}

func TestCloseIsIdempotent(t *testing.T) {
	s, fake := openFake(t, DefaultFakeSpec)
	require.NoError(t, s.Unlock())
	require.False(t, fake.SoftLocked(0))

	require.NoError(t, s.Close())
	assert.False(t, fake.IsOpen(0))
	assert.True(t, fake.SoftLocked(0))
	assert.False(t, s.IsOpen())

	fake.ResetCalls()
	assert.NoError(t, s.Close())
	assert.Empty(t, fake.Calls())
}

func TestCloseCallOrder(t *testing.T) {
	s, fake := openFake(t, DefaultFakeSpec)
	fake.ResetCalls()

	require.NoError(t, s.Close())
	assert.Equal(t, []string{"SCM_SetLaserSoftLock", "FWR_FreeModuleMap", "USB_CloseDevice"}, fake.Calls())
}

func TestClosedSessionRejectsCalls(t *testing.T) {
	s, fake := openFake(t, DefaultFakeSpec)
	laser := s.Lasers()[0]
	osc := s.Oscillator()
	require.NoError(t, s.Close())
	fake.ResetCalls()

	assert.ErrorIs(t, s.Lock(), ErrSessionClosed)
	assert.ErrorIs(t, s.StopLasers(), ErrSessionClosed)
	_, err := laser.GetCurrentStatus()
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.ErrorIs(t, laser.SetIntensity(10), ErrSessionClosed)
	_, err = osc.SetClockInternal(20)
	assert.ErrorIs(t, err, ErrSessionClosed)
	_, _, err = s.StartLaserSimple(0, 20, 50, 0)
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.Empty(t, fake.Calls())
}

func TestWithSessionClosesOnError(t *testing.T) {
	fake := newFake(t, DefaultFakeSpec)
	boom := errors.New("boom")

	err := WithSession(0, func(s *Session) error {
		assert.True(t, fake.IsOpen(0))
		return boom
	}, WithLib(fake), WithLogger(quietLog))
	assert.ErrorIs(t, err, boom)
	assert.False(t, fake.IsOpen(0))
	assert.True(t, fake.SoftLocked(0))
}

func TestAbandonedSessionIsClosed(t *testing.T) {
	fake := newFake(t, DefaultFakeSpec)
	func() {
		s, err := Open(0, WithLib(fake), WithLogger(quietLog))
		require.NoError(t, err)
		require.NoError(t, s.Unlock())
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return !fake.IsOpen(0)
	}, 5*time.Second, 10*time.Millisecond)
	assert.True(t, fake.SoftLocked(0))
}

func TestModuleOfAbandonedSessionIsClosed(t *testing.T) {
	fake := newFake(t, DefaultFakeSpec)
	l := func() *LaserModule {
		s, err := Open(0, WithLib(fake), WithLogger(quietLog))
		require.NoError(t, err)
		return s.Lasers()[0]
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return !fake.IsOpen(0)
	}, 5*time.Second, 10*time.Millisecond)
	assert.ErrorIs(t, l.SetIntensity(10), ErrSessionClosed)
	_, err := l.GetCurrentStatus()
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestLockState(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)

	st, err := s.LockState()
	require.NoError(t, err)
	assert.Equal(t, LockStatus{Locked: true, SoftLocked: true}, st)

	require.NoError(t, s.Unlock())
	st, err = s.LockState()
	require.NoError(t, err)
	assert.Equal(t, LockStatus{}, st)

	require.NoError(t, s.Lock())
	st, err = s.LockState()
	require.NoError(t, err)
	assert.True(t, st.SoftLocked)
}

func TestLockWithoutSafetyModule(t *testing.T) {
	s, _ := openFake(t, `
Devices:
  - Product: "PDL 828"
    Modules:
      - { Slot: 200, Type: SLM }
`)
	code, ok := StatusCode(s.Lock())
	require.True(t, ok)
	assert.Equal(t, SEPIA2_ERR_SCM_NO_SAFETY_MODULE, code)
}

func TestStartLaserSimple(t *testing.T) {
	s, fake := openFake(t, DefaultFakeSpec)

	delay, freq, err := s.StartLaserSimple(1, 20, 50, 10)
	require.NoError(t, err)
	assert.Equal(t, 20.0, freq)
	assert.InDelta(t, 9.375, delay, 1e-9)
	assert.False(t, fake.SoftLocked(0))

	st, err := s.Oscillator().GetCurrentStatus()
	require.NoError(t, err)
	assert.Equal(t, 4, st.Divider)
	assert.Equal(t, FreqTrigInternal, st.TriggerCode)
	assert.Equal(t, [Channels]int{1}, st.BurstArray)
	assert.Equal(t, []int{1}, st.OutputEnabled)
	assert.True(t, st.Channels[1].Delayed())
	assert.InDelta(t, 9.375, st.Channels[1].DelayNs, 1e-9)

	ls, err := s.Lasers()[1].GetCurrentStatus()
	require.NoError(t, err)
	assert.Equal(t, SLMTriggerFalling, ls.TriggerCode)
	assert.True(t, ls.Pulsed)
	assert.Equal(t, 50.0, ls.Intensity)
}

func TestStartLaserSimpleResetsSync(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)
	osc := s.Oscillator()
	require.NoError(t, osc.SetSync([]int{3, 5}))
	require.NoError(t, osc.SetSyncInverted(true))

	_, _, err := s.StartLaserSimple(1, 20, 50, 0)
	require.NoError(t, err)
	st, err := osc.GetCurrentStatus()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, st.OutputEnabled)
	assert.Equal(t, []int{0}, st.SyncEnabled)
	assert.False(t, st.SyncMaskInverted)
}

func TestStartLaserSimpleNearestDivider(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)

	_, freq, err := s.Lasers()[0].StartSimple(7.639, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 80.0/10, freq)
}

func TestStartLaserSimpleValidatesFirst(t *testing.T) {
	s, fake := openFake(t, DefaultFakeSpec)
	fake.ResetCalls()

	_, _, err := s.StartLaserSimple(0, 20, 150, 0)
	var pe *InvalidParameterError
	require.ErrorAs(t, err, &pe)

	_, _, err = s.StartLaserSimple(0, 200, 50, 0)
	require.ErrorAs(t, err, &pe)

	_, _, err = s.StartLaserSimple(0, 20, 50, -1)
	require.ErrorAs(t, err, &pe)

	_, _, err = s.StartLaserSimple(5, 20, 50, 0)
	assert.ErrorIs(t, err, ErrNoSuchLaser)

	assert.Empty(t, fake.Calls())
}

func TestStartLaserSimpleWithoutOscillator(t *testing.T) {
	s, _ := openFake(t, noOscillatorSpec)
	require.Nil(t, s.Oscillator())

	delay, freq, err := s.StartLaserSimple(0, 11, 30, 0)
	require.NoError(t, err)
	assert.Zero(t, delay)
	assert.Equal(t, 10.0, freq)

	ls, err := s.Lasers()[0].GetCurrentStatus()
	require.NoError(t, err)
	assert.Equal(t, 3, ls.TriggerCode)
	assert.Equal(t, "10 MHz (int.)", ls.TriggerMode)

	_, _, err = s.StartLaserSimple(0, 11, 30, 5)
	assert.ErrorIs(t, err, ErrNoOscillator)
}

func TestStartLaserSimpleDelayNeedsSOMD(t *testing.T) {
	s, _ := openFake(t, somSpec)

	_, _, err := s.StartLaserSimple(0, 20, 30, 5)
	assert.ErrorIs(t, err, ErrNotSupported)

	delay, freq, err := s.StartLaserSimple(0, 20, 30, 0)
	require.NoError(t, err)
	assert.Zero(t, delay)
	assert.Equal(t, 20.0, freq)
}

func TestStopLasers(t *testing.T) {
	s, _ := openFake(t, DefaultFakeSpec)
	_, _, err := s.StartLaserSimple(0, 20, 50, 0)
	require.NoError(t, err)

	require.NoError(t, s.StopLasers())
	st, err := s.Oscillator().GetCurrentStatus()
	require.NoError(t, err)
	assert.Empty(t, st.OutputEnabled)
}

func TestStopLasersWithoutOscillatorLocks(t *testing.T) {
	s, fake := openFake(t, noOscillatorSpec)
	require.NoError(t, s.Unlock())

	require.NoError(t, s.StopLasers())
	assert.True(t, fake.SoftLocked(0))
}
