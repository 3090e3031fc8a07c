package sepia2

import "fmt"

// priTriggerInternal is the Prima trigger source index of its own oscillator.
const priTriggerInternal = 0

// LaserModule drives one SLM 828 or Prima slot.
type LaserModule struct {
	SlotID int
	Type   ModuleType

	dev    *device
	status LaserStatus
}

// LaserStatus is a snapshot of the laser registers in physical units.
// Every field after Intensity is only filled for Prima modules.
type LaserStatus struct {
	SlotID                int
	Type                  ModuleType
	TriggerCode           int
	TriggerMode           string
	Pulsed                bool
	HeadType              string
	Intensity             float64
	OperationMode         string
	OperationFrequencyMHz float64
	MinFrequencyMHz       float64
	MaxFrequencyMHz       float64
	WavelengthIndex       int
	WavelengthNm          int
	TriggerLevelMV        int
	TriggerLevelLimits    TriggerLevelLimits
	Gating                Gating
	GatingLimits          GatingLimits
	GateHighImpedance     bool
}

// Gating is the Prima gate generator setting. The gate is open for OnTimeNs
// and closed for OffTimeFactor times that.
type Gating struct {
	OnTimeNs      int
	OffTimeFactor int
	Enabled       bool
}

// LaserParams holds the optional parts of SetLaserParameters. A nil field
// keeps the value currently programmed in the module.
type LaserParams struct {
	OperationFrequencyMHz *float64
	Pulsed                *bool
	Intensity             *float64
}

// Status returns the snapshot taken by the last GetCurrentStatus.
func (l *LaserModule) Status() LaserStatus { return l.status }

// GetCurrentStatus reads the module and refreshes the held snapshot.
func (l *LaserModule) GetCurrentStatus() (LaserStatus, error) {
	if err := l.dev.checkOpen(); err != nil {
		return LaserStatus{}, err
	}
	var (
		st  LaserStatus
		err error
	)
	if l.Type == ModulePRI {
		st, err = l.primaStatus()
	} else {
		st, err = l.slmStatus()
	}
	if err != nil {
		return LaserStatus{}, err
	}
	st.SlotID, st.Type = l.SlotID, l.Type
	l.status = st
	return st, nil
}

func (l *LaserModule) slmStatus() (LaserStatus, error) {
	d := l.dev
	trigger, pulsed, head, err := d.lib.SLMGetPulseParameters(d.index, l.SlotID)
	if err != nil {
		return LaserStatus{}, err
	}
	mode, err := SLMTriggerName(trigger)
	if err != nil {
		mode = fmt.Sprintf("unknown (%d)", trigger)
	}
	headType, err := d.lib.SLMDecodeHeadType(head)
	if err != nil {
		return LaserStatus{}, err
	}
	perMille, err := d.lib.SLMGetIntensityFineStep(d.index, l.SlotID)
	if err != nil {
		return LaserStatus{}, err
	}
	return LaserStatus{
		TriggerCode: trigger,
		TriggerMode: mode,
		Pulsed:      pulsed,
		HeadType:    headType,
		Intensity:   PerMilleToIntensity(perMille),
	}, nil
}

func (l *LaserModule) primaStatus() (LaserStatus, error) {
	d := l.dev
	opMode, err := d.lib.PRIGetOperationMode(d.index, l.SlotID)
	if err != nil {
		return LaserStatus{}, err
	}
	opName, err := d.lib.PRIDecodeOperationMode(d.index, l.SlotID, opMode)
	if err != nil {
		return LaserStatus{}, err
	}
	source, err := d.lib.PRIGetTriggerSource(d.index, l.SlotID)
	if err != nil {
		return LaserStatus{}, err
	}
	sourceName, err := d.lib.PRIDecodeTriggerSource(d.index, l.SlotID, source)
	if err != nil {
		return LaserStatus{}, err
	}
	hz, err := d.lib.PRIGetFrequency(d.index, l.SlotID)
	if err != nil {
		return LaserStatus{}, err
	}
	wl, err := d.lib.PRIGetWavelengthIdx(d.index, l.SlotID)
	if err != nil {
		return LaserStatus{}, err
	}
	nm, err := d.lib.PRIDecodeWavelength(d.index, l.SlotID, wl)
	if err != nil {
		return LaserStatus{}, err
	}
	perMille, err := d.lib.PRIGetIntensity(d.index, l.SlotID, wl)
	if err != nil {
		return LaserStatus{}, err
	}
	st := LaserStatus{
		TriggerCode:           source,
		TriggerMode:           sourceName,
		Pulsed:                opMode == PRIModeNarrowPulse || opMode == PRIModeBroadPulse,
		Intensity:             PerMilleToIntensity(perMille),
		OperationMode:         opName,
		OperationFrequencyMHz: HzToMHz(hz),
		WavelengthIndex:       wl,
		WavelengthNm:          nm,
	}
	if err := l.primaGateStatus(&st); err != nil {
		return LaserStatus{}, err
	}
	return st, nil
}

func (l *LaserModule) primaGateStatus(st *LaserStatus) error {
	d := l.dev
	minHz, maxHz, err := d.lib.PRIGetFrequencyLimits(d.index, l.SlotID)
	if err != nil {
		return err
	}
	st.MinFrequencyMHz, st.MaxFrequencyMHz = HzToMHz(minHz), HzToMHz(maxHz)
	if st.TriggerLevelMV, err = d.lib.PRIGetTriggerLevel(d.index, l.SlotID); err != nil {
		return err
	}
	if st.TriggerLevelLimits, err = d.lib.PRIGetTriggerLevelLimits(d.index, l.SlotID); err != nil {
		return err
	}
	if st.Gating.OnTimeNs, st.Gating.OffTimeFactor, err = d.lib.PRIGetGatingData(d.index, l.SlotID); err != nil {
		return err
	}
	if st.Gating.Enabled, err = d.lib.PRIGetGatingEnabled(d.index, l.SlotID); err != nil {
		return err
	}
	if st.GatingLimits, err = d.lib.PRIGetGatingLimits(d.index, l.SlotID); err != nil {
		return err
	}
	st.GateHighImpedance, err = d.lib.PRIGetGateHighImpedance(d.index, l.SlotID)
	return err
}

// SetLaserParameters programs the trigger and the optional fields of p.
//
// For an SLM triggerCode is 0..7 (see SLMTriggerName) and the operation
// frequency is fixed by the trigger code, so p.OperationFrequencyMHz must be
// nil. For a Prima triggerCode is a trigger source index, pulsed selects
// narrow pulse versus CW operation and the frequency must lie within the
// module limits.
func (l *LaserModule) SetLaserParameters(triggerCode int, p LaserParams) error {
	if err := l.dev.checkOpen(); err != nil {
		return err
	}
	perMille := -1
	if p.Intensity != nil {
		v, err := IntensityToPerMille(*p.Intensity)
		if err != nil {
			return err
		}
		perMille = v
	}
	if l.Type == ModulePRI {
		return l.setPrimaParameters(triggerCode, p, perMille)
	}

	if _, err := SLMTriggerName(triggerCode); err != nil {
		return err
	}
	if p.OperationFrequencyMHz != nil {
		return invalidParam("operation frequency", *p.OperationFrequencyMHz, "SLM rate is set by the trigger code")
	}
	d := l.dev
	var pulsed bool
	if p.Pulsed != nil {
		pulsed = *p.Pulsed
	} else {
		_, cur, _, err := d.lib.SLMGetPulseParameters(d.index, l.SlotID)
		if err != nil {
			return err
		}
		pulsed = cur
	}
	if err := d.lib.SLMSetPulseParameters(d.index, l.SlotID, triggerCode, pulsed); err != nil {
		return err
	}
	if perMille >= 0 {
		return l.setPerMille(perMille)
	}
	return nil
}

func (l *LaserModule) setPrimaParameters(source int, p LaserParams, perMille int) error {
	d := l.dev
	if _, err := d.lib.PRIDecodeTriggerSource(d.index, l.SlotID, source); err != nil {
		if rejected(err) {
			return invalidParam("trigger source", source, "not offered by this module")
		}
		return err
	}
	hz := -1
	if p.OperationFrequencyMHz != nil {
		if !finitePositive(*p.OperationFrequencyMHz) {
			return invalidParam("operation frequency", *p.OperationFrequencyMHz, "must be a positive number of MHz")
		}
		hz = MHzToHz(*p.OperationFrequencyMHz)
		if err := l.checkPrimaFrequency(hz); err != nil {
			return err
		}
	}

	if err := d.lib.PRISetTriggerSource(d.index, l.SlotID, source); err != nil {
		return err
	}
	if hz >= 0 {
		if err := d.lib.PRISetFrequency(d.index, l.SlotID, hz); err != nil {
			return err
		}
	}
	if p.Pulsed != nil {
		mode := PRIModeCW
		if *p.Pulsed {
			mode = PRIModeNarrowPulse
		}
		if err := d.lib.PRISetOperationMode(d.index, l.SlotID, mode); err != nil {
			return err
		}
	}
	if perMille >= 0 {
		return l.setPerMille(perMille)
	}
	return nil
}

func (l *LaserModule) checkPrimaFrequency(hz int) error {
	d := l.dev
	minHz, maxHz, err := d.lib.PRIGetFrequencyLimits(d.index, l.SlotID)
	if err != nil {
		return err
	}
	if hz < minHz || hz > maxHz {
		return invalidParam("operation frequency", HzToMHz(hz),
			fmt.Sprintf("must be within [%g,%g] MHz", HzToMHz(minHz), HzToMHz(maxHz)))
	}
	return nil
}

// SetPulseParameters sets the trigger code and pulsed (true) or continuous
// (false) operation.
func (l *LaserModule) SetPulseParameters(triggerCode int, pulsed bool) error {
	return l.SetLaserParameters(triggerCode, LaserParams{Pulsed: &pulsed})
}

// SetIntensity sets the output power in percent of the head maximum.
func (l *LaserModule) SetIntensity(percent float64) error {
	if err := l.dev.checkOpen(); err != nil {
		return err
	}
	perMille, err := IntensityToPerMille(percent)
	if err != nil {
		return err
	}
	return l.setPerMille(perMille)
}

func (l *LaserModule) setPerMille(perMille int) error {
	d := l.dev
	if l.Type != ModulePRI {
		return d.lib.SLMSetIntensityFineStep(d.index, l.SlotID, perMille)
	}
	wl, err := d.lib.PRIGetWavelengthIdx(d.index, l.SlotID)
	if err != nil {
		return err
	}
	return d.lib.PRISetIntensity(d.index, l.SlotID, wl, perMille)
}

// SetWavelength selects the active Prima wavelength by index.
func (l *LaserModule) SetWavelength(index int) error {
	if err := l.dev.checkOpen(); err != nil {
		return err
	}
	if l.Type != ModulePRI {
		return fmt.Errorf("wavelength on %s: %w", l.Type, ErrNotSupported)
	}
	d := l.dev
	if _, err := d.lib.PRIDecodeWavelength(d.index, l.SlotID, index); err != nil {
		if rejected(err) {
			return invalidParam("wavelength index", index, "not offered by this module")
		}
		return err
	}
	return d.lib.PRISetWavelengthIdx(d.index, l.SlotID, index)
}

// rejected reports whether the library refused an argument, as opposed to
// failing to reach the module.
func rejected(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION
}

func (l *LaserModule) prima(what string) error {
	if err := l.dev.checkOpen(); err != nil {
		return err
	}
	if l.Type != ModulePRI {
		return fmt.Errorf("%s on %s: %w", what, l.Type, ErrNotSupported)
	}
	return nil
}

// DeviceInfo reads the Prima identification block.
func (l *LaserModule) DeviceInfo() (PrimaDeviceInfo, error) {
	if err := l.prima("device info"); err != nil {
		return PrimaDeviceInfo{}, err
	}
	return l.dev.lib.PRIGetDeviceInfo(l.dev.index, l.SlotID)
}

// SetGating programs the Prima gate generator and then enables or disables
// it. Both values are checked against the module limits first.
func (l *LaserModule) SetGating(g Gating) error {
	if err := l.prima("gating"); err != nil {
		return err
	}
	d := l.dev
	lim, err := d.lib.PRIGetGatingLimits(d.index, l.SlotID)
	if err != nil {
		return err
	}
	if g.OnTimeNs < lim.MinOnTimeNs || g.OnTimeNs > lim.MaxOnTimeNs {
		return invalidParam("gating on time", g.OnTimeNs,
			fmt.Sprintf("must be within [%d,%d] ns", lim.MinOnTimeNs, lim.MaxOnTimeNs))
	}
	if g.OffTimeFactor < lim.MinOffTimeFactor || g.OffTimeFactor > lim.MaxOffTimeFactor {
		return invalidParam("gating off time factor", g.OffTimeFactor,
			fmt.Sprintf("must be within [%d,%d]", lim.MinOffTimeFactor, lim.MaxOffTimeFactor))
	}
	if err := d.lib.PRISetGatingData(d.index, l.SlotID, g.OnTimeNs, g.OffTimeFactor); err != nil {
		return err
	}
	return d.lib.PRISetGatingEnabled(d.index, l.SlotID, g.Enabled)
}

// SetGateHighImpedance selects a high impedance Prima gate input.
func (l *LaserModule) SetGateHighImpedance(high bool) error {
	if err := l.prima("gate impedance"); err != nil {
		return err
	}
	return l.dev.lib.PRISetGateHighImpedance(l.dev.index, l.SlotID, high)
}

// SetTriggerLevel sets the Prima external trigger threshold in mV.
func (l *LaserModule) SetTriggerLevel(mV int) error {
	if err := l.prima("trigger level"); err != nil {
		return err
	}
	d := l.dev
	lim, err := d.lib.PRIGetTriggerLevelLimits(d.index, l.SlotID)
	if err != nil {
		return err
	}
	if mV < lim.MinMV || mV > lim.MaxMV {
		return invalidParam("trigger level", mV, fmt.Sprintf("must be within [%d,%d] mV", lim.MinMV, lim.MaxMV))
	}
	return d.lib.PRISetTriggerLevel(d.index, l.SlotID, mV)
}

// StartSimple is Session.StartLaserSimple for this laser.
func (l *LaserModule) StartSimple(rateMHz, intensity, delayNs float64) (float64, float64, error) {
	for i, other := range l.dev.lasers {
		if other == l {
			return l.dev.startLaserSimple(i, rateMHz, intensity, delayNs)
		}
	}
	return 0, 0, ErrNoSuchLaser
}
