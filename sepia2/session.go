package sepia2

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sort"
	"sync/atomic"
)

// moduleKind is the closed set of slot roles a session knows how to drive.
type moduleKind int

const (
	kindUnsupported moduleKind = iota
	kindBackplane
	kindSafety
	kindLaser
	kindOscillator
)

func kindOf(info ModuleInfo) moduleKind {
	if info.Backplane || info.Type == ModuleFRM {
		return kindBackplane
	}
	switch info.Type {
	case ModuleSCM:
		return kindSafety
	case ModuleSLM, ModulePRI:
		return kindLaser
	case ModuleSOM, ModuleSOMD:
		return kindOscillator
	}
	return kindUnsupported
}

// Session is an open connection to one mainframe. It owns the USB handle
// until Close. A Session is not safe for concurrent use.
//
// Close must be called on every path; WithSession does this for scoped use.
// A Session that becomes unreachable while still open is closed by a runtime
// cleanup as a last resort, with a warning logged. The timing of that cleanup
// is up to the garbage collector.
type Session struct {
	*device
}

// device holds the session state. Modules point at the device, never at the
// Session, so an abandoned Session stays collectable.
type device struct {
	lib      Lib
	log      *slog.Logger
	verbose  bool
	index    int
	product  string
	serial   string
	firmware string

	modules     []ModuleInfo
	lasers      []*LaserModule
	oscillator  *OscillatorModule
	safety      *ModuleInfo
	unsupported []*UnsupportedModuleError

	closed  atomic.Bool
	cleanup runtime.Cleanup
}

// LockStatus is the state of the SCM safety module.
type LockStatus struct {
	// Locked is true while the laser outputs are disabled for any reason,
	// including the front panel key.
	Locked     bool
	SoftLocked bool
}

// Open connects to the mainframe at index and builds one module object per
// populated slot.
func Open(index int, opts ...Option) (*Session, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	product, serial, err := o.lib.OpenDevice(index)
	if err != nil {
		var se *NativeStatusError
		if errors.As(err, &se) {
			return nil, &DeviceOpenError{Index: index, Code: se.Code}
		}
		return nil, fmt.Errorf("open device %d: %w", index, err)
	}

	d := &device{
		lib:     o.lib,
		log:     o.log.With("device", index),
		verbose: o.verbose,
		index:   index,
		product: product,
		serial:  serial,
	}
	if err := d.discover(o.restart); err != nil {
		d.closed.Store(true)
		return nil, errors.Join(err, d.release())
	}

	if d.verbose {
		d.log.Info("Connected", "model", d.product, "serial", d.serial, "firmware", d.firmware)
		if d.oscillator != nil {
			d.log.Info("Oscillator module", "type", d.oscillator.Type, "slot", d.oscillator.SlotID)
		}
		for i, l := range d.lasers {
			d.log.Info("Laser module", "laser", i, "type", l.Type, "slot", l.SlotID)
		}
	}

	s := &Session{device: d}
	d.cleanup = runtime.AddCleanup(s, abandon, d)
	return s, nil
}

// WithSession opens the device at index, runs fn and closes the session on
// every path, returning fn's error joined with the close error.
func WithSession(index int, fn func(*Session) error, opts ...Option) (err error) {
	s, err := Open(index, opts...)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, s.Close())
	}()
	return fn(s)
}

func abandon(d *device) {
	if d.closed.Load() {
		return
	}
	d.log.Warn("Session abandoned without Close, closing device")
	if err := d.shutdown(); err != nil {
		d.log.Error("Closing abandoned session failed", "error", err)
	}
}

func (d *device) discover(restart bool) error {
	fw, err := d.lib.GetFWVersion(d.index)
	if err != nil {
		return err
	}
	d.firmware = fw

	count, err := d.lib.GetModuleMap(d.index, restart)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		info, err := d.lib.GetModuleInfoByMapIdx(d.index, i)
		if err != nil {
			return err
		}
		code, err := d.lib.GetModuleType(d.index, info.SlotID, info.Primary)
		if err != nil {
			return err
		}
		abbr, err := d.lib.DecodeModuleTypeAbbr(code)
		if err != nil {
			return err
		}
		info.Type = ModuleType(abbr)
		d.modules = append(d.modules, info)

		switch kindOf(info) {
		case kindBackplane:
		case kindSafety:
			scm := info
			d.safety = &scm
		case kindLaser:
			d.lasers = append(d.lasers, &LaserModule{SlotID: info.SlotID, Type: info.Type, dev: d})
		case kindOscillator:
			if d.oscillator != nil {
				d.skip(info)
				continue
			}
			d.oscillator = &OscillatorModule{SlotID: info.SlotID, Type: info.Type, dev: d}
		default:
			d.skip(info)
		}
	}
	sort.SliceStable(d.lasers, func(a, b int) bool { return d.lasers[a].SlotID < d.lasers[b].SlotID })
	return nil
}

func (d *device) skip(info ModuleInfo) {
	um := &UnsupportedModuleError{SlotID: info.SlotID, ModuleType: info.Type}
	d.log.Warn("Skipping module", "slot", info.SlotID, "type", info.Type, "error", um)
	d.unsupported = append(d.unsupported, um)
}

// Close soft-locks the laser outputs when a safety module is present, frees
// the module map and releases the USB handle. Calls after the first are
// no-ops.
func (s *Session) Close() error {
	if s.closed.Load() {
		return nil
	}
	s.cleanup.Stop()
	return s.shutdown()
}

func (d *device) shutdown() error {
	d.closed.Store(true)
	var lockErr error
	if d.safety != nil {
		lockErr = d.lib.SetLaserSoftLock(d.index, d.safety.SlotID, true)
	}
	return errors.Join(lockErr, d.release())
}

func (d *device) release() error {
	freeErr := d.lib.FreeModuleMap(d.index)
	if err := d.lib.CloseDevice(d.index); err != nil {
		return fmt.Errorf("close device %d: %w", d.index, errors.Join(freeErr, err))
	}
	if freeErr != nil {
		return fmt.Errorf("close device %d: %w", d.index, freeErr)
	}
	return nil
}

func (d *device) checkOpen() error {
	if d.closed.Load() {
		return ErrSessionClosed
	}
	return nil
}

// Index is the USB device index the session was opened on.
func (s *Session) Index() int { return s.index }

func (s *Session) Product() string  { return s.product }
func (s *Session) Serial() string   { return s.serial }
func (s *Session) Firmware() string { return s.firmware }

// IsOpen reports whether Close has not been called yet.
func (s *Session) IsOpen() bool { return !s.closed.Load() }

// Modules returns the module map read at Open, in map order.
func (s *Session) Modules() []ModuleInfo {
	return append([]ModuleInfo(nil), s.modules...)
}

// Lasers returns the laser modules in ascending slot order.
//
// A module does not keep its Session reachable. Once the caller drops the
// Session without calling Close, the runtime cleanup may soft-lock and close
// the device while a module is still in use, after which every module call
// returns ErrSessionClosed. Keep the Session until the last module call.
func (s *Session) Lasers() []*LaserModule {
	return append([]*LaserModule(nil), s.lasers...)
}

// Laser returns the laser at position i of Lasers.
func (s *Session) Laser(i int) (*LaserModule, error) {
	return s.laser(i)
}

func (d *device) laser(i int) (*LaserModule, error) {
	if i < 0 || i >= len(d.lasers) {
		return nil, fmt.Errorf("laser %d: %w", i, ErrNoSuchLaser)
	}
	return d.lasers[i], nil
}

// Oscillator returns the SOM or SOMD module, or nil. Like the lasers, it does
// not keep the Session open.
func (s *Session) Oscillator() *OscillatorModule { return s.oscillator }

// Unsupported lists the slots skipped at Open.
func (s *Session) Unsupported() []*UnsupportedModuleError {
	return append([]*UnsupportedModuleError(nil), s.unsupported...)
}

// Lock sets the SCM soft lock, disabling all laser outputs.
func (s *Session) Lock() error {
	return s.setSoftLock(true)
}

// Unlock clears the SCM soft lock.
func (s *Session) Unlock() error {
	return s.setSoftLock(false)
}

func (d *device) setSoftLock(locked bool) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	if d.safety == nil {
		return errorString("SCM_SetLaserSoftLock", SEPIA2_ERR_SCM_NO_SAFETY_MODULE)
	}
	return d.lib.SetLaserSoftLock(d.index, d.safety.SlotID, locked)
}

// LockState reads the SCM lock flags.
func (s *Session) LockState() (LockStatus, error) {
	if err := s.checkOpen(); err != nil {
		return LockStatus{}, err
	}
	if s.safety == nil {
		return LockStatus{}, errorString("SCM_GetLaserLocked", SEPIA2_ERR_SCM_NO_SAFETY_MODULE)
	}
	locked, err := s.lib.GetLaserLocked(s.index, s.safety.SlotID)
	if err != nil {
		return LockStatus{}, err
	}
	soft, err := s.lib.GetLaserSoftLock(s.index, s.safety.SlotID)
	if err != nil {
		return LockStatus{}, err
	}
	return LockStatus{Locked: locked, SoftLocked: soft}, nil
}

// StopLasers disables every oscillator output. Without an oscillator the
// soft lock is set instead.
func (s *Session) StopLasers() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.oscillator != nil {
		return s.oscillator.SetOutput(nil)
	}
	if s.safety != nil {
		return s.Lock()
	}
	return ErrNoOscillator
}

// StartLaserSimple runs a single laser at roughly rateMHz and turns every
// other output off. It returns the delay and frequency actually set.
//
// With an oscillator the clock divider nearest to rateMHz is programmed, the
// sequencer fires one pulse per cycle, only the laser's channel is enabled
// and the laser is triggered externally on the falling edge. A nonzero delay
// needs a SOMD. Without an oscillator an SLM uses its internal trigger code
// nearest to rateMHz. Prima lasers always use their own internal trigger.
func (s *Session) StartLaserSimple(laserIndex int, rateMHz, intensity, delayNs float64) (float64, float64, error) {
	return s.startLaserSimple(laserIndex, rateMHz, intensity, delayNs)
}

func (d *device) startLaserSimple(laserIndex int, rateMHz, intensity, delayNs float64) (float64, float64, error) {
	if err := d.checkOpen(); err != nil {
		return 0, 0, err
	}
	l, err := d.laser(laserIndex)
	if err != nil {
		return 0, 0, err
	}
	perMille, err := IntensityToPerMille(intensity)
	if err != nil {
		return 0, 0, err
	}
	if !finitePositive(rateMHz) {
		return 0, 0, invalidParam("repetition rate", rateMHz, "must be a positive number of MHz")
	}
	if math.IsNaN(delayNs) || math.IsInf(delayNs, 0) || delayNs < 0 {
		return 0, 0, invalidParam("delay", delayNs, "must be a non-negative number of ns")
	}

	if l.Type == ModulePRI {
		return d.startPrima(l, rateMHz, perMille, delayNs)
	}

	osc := d.oscillator
	if osc == nil {
		code, freq, err := NearestSLMTrigger(rateMHz)
		if err != nil {
			return 0, 0, err
		}
		if delayNs != 0 {
			return 0, 0, fmt.Errorf("delay without oscillator: %w", ErrNoOscillator)
		}
		if err := d.unlockIfPresent(); err != nil {
			return 0, 0, err
		}
		if err := l.SetPulseParameters(code, true); err != nil {
			return 0, 0, err
		}
		if err := l.setPerMille(perMille); err != nil {
			return 0, 0, err
		}
		return 0, freq, nil
	}

	channel := laserIndex
	if err := checkChannel(channel); err != nil {
		return 0, 0, err
	}
	if _, err := NearestDivider(rateMHz, MaxDivider(osc.Type)); err != nil {
		return 0, 0, err
	}
	if delayNs != 0 && osc.Type != ModuleSOMD {
		return 0, 0, fmt.Errorf("delay on %s: %w", osc.Type, ErrNotSupported)
	}

	if err := d.unlockIfPresent(); err != nil {
		return 0, 0, err
	}
	freq, err := osc.SetClockInternal(rateMHz)
	if err != nil {
		return 0, 0, err
	}
	if err := osc.SetBurstArray([Channels]int{1}); err != nil {
		return 0, 0, err
	}
	// sync follows channel 0, uninverted
	err = osc.updateOutNSync(func(out, sync *uint8, inverse *bool) error {
		*out, *sync, *inverse = 1<<uint(channel), 1, false
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	delayOut := 0.0
	if osc.Type == ModuleSOMD {
		cfg, err := osc.SetDelayNs(channel, delayNs, 0)
		if err != nil {
			return 0, 0, err
		}
		delayOut = cfg.DelayNs
	}
	if err := l.SetPulseParameters(SLMTriggerFalling, true); err != nil {
		return 0, 0, err
	}
	if err := l.setPerMille(perMille); err != nil {
		return 0, 0, err
	}
	return delayOut, freq, nil
}

func (d *device) startPrima(l *LaserModule, rateMHz float64, perMille int, delayNs float64) (float64, float64, error) {
	if delayNs != 0 {
		return 0, 0, fmt.Errorf("delay on %s: %w", l.Type, ErrNotSupported)
	}
	hz := MHzToHz(rateMHz)
	if err := l.checkPrimaFrequency(hz); err != nil {
		return 0, 0, err
	}
	if err := d.unlockIfPresent(); err != nil {
		return 0, 0, err
	}
	if err := d.lib.PRISetTriggerSource(d.index, l.SlotID, priTriggerInternal); err != nil {
		return 0, 0, err
	}
	if err := d.lib.PRISetFrequency(d.index, l.SlotID, hz); err != nil {
		return 0, 0, err
	}
	if err := d.lib.PRISetOperationMode(d.index, l.SlotID, PRIModeNarrowPulse); err != nil {
		return 0, 0, err
	}
	if err := l.setPerMille(perMille); err != nil {
		return 0, 0, err
	}
	return 0, HzToMHz(hz), nil
}

func (d *device) unlockIfPresent() error {
	if d.safety == nil {
		return nil
	}
	return d.setSoftLock(false)
}
