package sepia2

import (
	"log/slog"
	"time"
)

// VerboseLib wraps a Lib and logs every entry point with its arguments,
// result and latency at debug level.
type VerboseLib struct {
	impl Lib
	log  *slog.Logger
}

// NewVerboseLib creates a tracing wrapper around an existing Lib.
func NewVerboseLib(impl Lib, log *slog.Logger) *VerboseLib {
	if log == nil {
		log = slog.Default()
	}
	return &VerboseLib{impl: impl, log: log}
}

// done logs the outcome of one call started at start.
func (v *VerboseLib) done(op string, start time.Time, err error, attrs ...any) {
	attrs = append(attrs, "op", op, "elapsed", time.Since(start))
	if err != nil {
		v.log.Debug("sepia2 call failed", append(attrs, "error", err)...)
		return
	}
	v.log.Debug("sepia2 call", attrs...)
}

func (v *VerboseLib) LibVersion() (string, error) {
	start := time.Now()
	version, err := v.impl.LibVersion()
	v.done("LIB_GetVersion", start, err, "version", version)
	return version, err
}

func (v *VerboseLib) DecodeError(code Status) (string, error) {
	start := time.Now()
	text, err := v.impl.DecodeError(code)
	v.done("LIB_DecodeError", start, err, "code", int(code), "text", text)
	return text, err
}

func (v *VerboseLib) OpenDevice(dev int) (string, string, error) {
	start := time.Now()
	product, serial, err := v.impl.OpenDevice(dev)
	v.done("USB_OpenDevice", start, err, "dev", dev, "product", product, "serial", serial)
	return product, serial, err
}

func (v *VerboseLib) OpenGetSerNumAndClose(dev int) (string, string, error) {
	start := time.Now()
	product, serial, err := v.impl.OpenGetSerNumAndClose(dev)
	v.done("USB_OpenGetSerNumAndClose", start, err, "dev", dev, "product", product, "serial", serial)
	return product, serial, err
}

func (v *VerboseLib) CloseDevice(dev int) error {
	start := time.Now()
	err := v.impl.CloseDevice(dev)
	v.done("USB_CloseDevice", start, err, "dev", dev)
	return err
}

func (v *VerboseLib) GetFWVersion(dev int) (string, error) {
	start := time.Now()
	version, err := v.impl.GetFWVersion(dev)
	v.done("FWR_GetVersion", start, err, "dev", dev, "version", version)
	return version, err
}

func (v *VerboseLib) GetModuleMap(dev int, restart bool) (int, error) {
	start := time.Now()
	count, err := v.impl.GetModuleMap(dev, restart)
	v.done("FWR_GetModuleMap", start, err, "dev", dev, "restart", restart, "count", count)
	return count, err
}

func (v *VerboseLib) GetModuleInfoByMapIdx(dev, mapIdx int) (ModuleInfo, error) {
	start := time.Now()
	info, err := v.impl.GetModuleInfoByMapIdx(dev, mapIdx)
	v.done("FWR_GetModuleInfoByMapIdx", start, err, "dev", dev, "map_idx", mapIdx, "slot", info.SlotID,
		"primary", info.Primary, "backplane", info.Backplane)
	return info, err
}

func (v *VerboseLib) FreeModuleMap(dev int) error {
	start := time.Now()
	err := v.impl.FreeModuleMap(dev)
	v.done("FWR_FreeModuleMap", start, err, "dev", dev)
	return err
}

func (v *VerboseLib) GetModuleType(dev, slot int, primary bool) (int, error) {
	start := time.Now()
	code, err := v.impl.GetModuleType(dev, slot, primary)
	v.done("COM_GetModuleType", start, err, "dev", dev, "slot", slot, "primary", primary, "type", code)
	return code, err
}

func (v *VerboseLib) DecodeModuleTypeAbbr(code int) (string, error) {
	start := time.Now()
	abbr, err := v.impl.DecodeModuleTypeAbbr(code)
	v.done("COM_DecodeModuleTypeAbbr", start, err, "type", code, "abbr", abbr)
	return abbr, err
}

func (v *VerboseLib) GetLaserLocked(dev, slot int) (bool, error) {
	start := time.Now()
	locked, err := v.impl.GetLaserLocked(dev, slot)
	v.done("SCM_GetLaserLocked", start, err, "dev", dev, "slot", slot, "locked", locked)
	return locked, err
}

func (v *VerboseLib) GetLaserSoftLock(dev, slot int) (bool, error) {
	start := time.Now()
	locked, err := v.impl.GetLaserSoftLock(dev, slot)
	v.done("SCM_GetLaserSoftLock", start, err, "dev", dev, "slot", slot, "soft_locked", locked)
	return locked, err
}

func (v *VerboseLib) SetLaserSoftLock(dev, slot int, locked bool) error {
	start := time.Now()
	err := v.impl.SetLaserSoftLock(dev, slot, locked)
	v.done("SCM_SetLaserSoftLock", start, err, "dev", dev, "slot", slot, "soft_locked", locked)
	return err
}

func (v *VerboseLib) SLMGetIntensityFineStep(dev, slot int) (int, error) {
	start := time.Now()
	perMille, err := v.impl.SLMGetIntensityFineStep(dev, slot)
	v.done("SLM_GetIntensityFineStep", start, err, "dev", dev, "slot", slot, "per_mille", perMille)
	return perMille, err
}

func (v *VerboseLib) SLMSetIntensityFineStep(dev, slot, perMille int) error {
	start := time.Now()
	err := v.impl.SLMSetIntensityFineStep(dev, slot, perMille)
	v.done("SLM_SetIntensityFineStep", start, err, "dev", dev, "slot", slot, "per_mille", perMille)
	return err
}

func (v *VerboseLib) SLMGetPulseParameters(dev, slot int) (int, bool, int, error) {
	start := time.Now()
	trigger, pulsed, head, err := v.impl.SLMGetPulseParameters(dev, slot)
	v.done("SLM_GetPulseParameters", start, err, "dev", dev, "slot", slot, "trigger", trigger, "pulsed", pulsed, "head", head)
	return trigger, pulsed, head, err
}

func (v *VerboseLib) SLMSetPulseParameters(dev, slot, trigger int, pulsed bool) error {
	start := time.Now()
	err := v.impl.SLMSetPulseParameters(dev, slot, trigger, pulsed)
	v.done("SLM_SetPulseParameters", start, err, "dev", dev, "slot", slot, "trigger", trigger, "pulsed", pulsed)
	return err
}

func (v *VerboseLib) SLMDecodeHeadType(head int) (string, error) {
	start := time.Now()
	name, err := v.impl.SLMDecodeHeadType(head)
	v.done("SLM_DecodeHeadType", start, err, "head", head, "name", name)
	return name, err
}

func (v *VerboseLib) GetFreqTrigMode(dev, slot int, t ModuleType) (int, error) {
	start := time.Now()
	mode, err := v.impl.GetFreqTrigMode(dev, slot, t)
	v.done(oscOp(t, "GetFreqTrigMode"), start, err, "dev", dev, "slot", slot, "mode", mode)
	return mode, err
}

func (v *VerboseLib) SetFreqTrigMode(dev, slot int, t ModuleType, mode int) error {
	start := time.Now()
	err := v.impl.SetFreqTrigMode(dev, slot, t, mode)
	v.done(oscOp(t, "SetFreqTrigMode"), start, err, "dev", dev, "slot", slot, "mode", mode)
	return err
}

func (v *VerboseLib) DecodeFreqTrigMode(dev, slot int, t ModuleType, mode int) (string, error) {
	start := time.Now()
	name, err := v.impl.DecodeFreqTrigMode(dev, slot, t, mode)
	v.done(oscOp(t, "DecodeFreqTrigMode"), start, err, "dev", dev, "slot", slot, "mode", mode, "name", name)
	return name, err
}

func (v *VerboseLib) GetBurstValues(dev, slot int, t ModuleType) (BurstValues, error) {
	start := time.Now()
	bv, err := v.impl.GetBurstValues(dev, slot, t)
	v.done(oscOp(t, "GetBurstValues"), start, err, "dev", dev, "slot", slot,
		"divider", bv.Divider, "presync", bv.Presync, "mask_sync", bv.MaskSync)
	return bv, err
}

func (v *VerboseLib) SetBurstValues(dev, slot int, t ModuleType, bv BurstValues) error {
	start := time.Now()
	err := v.impl.SetBurstValues(dev, slot, t, bv)
	v.done(oscOp(t, "SetBurstValues"), start, err, "dev", dev, "slot", slot,
		"divider", bv.Divider, "presync", bv.Presync, "mask_sync", bv.MaskSync)
	return err
}

func (v *VerboseLib) GetBurstLengthArray(dev, slot int, t ModuleType) ([Channels]int, error) {
	start := time.Now()
	lengths, err := v.impl.GetBurstLengthArray(dev, slot, t)
	v.done(oscOp(t, "GetBurstLengthArray"), start, err, "dev", dev, "slot", slot, "lengths", lengths)
	return lengths, err
}

func (v *VerboseLib) SetBurstLengthArray(dev, slot int, t ModuleType, lengths [Channels]int) error {
	start := time.Now()
	err := v.impl.SetBurstLengthArray(dev, slot, t, lengths)
	v.done(oscOp(t, "SetBurstLengthArray"), start, err, "dev", dev, "slot", slot, "lengths", lengths)
	return err
}

func (v *VerboseLib) GetOutNSyncEnable(dev, slot int, t ModuleType) (uint8, uint8, bool, error) {
	start := time.Now()
	out, sync, inverse, err := v.impl.GetOutNSyncEnable(dev, slot, t)
	v.done(oscOp(t, "GetOutNSyncEnable"), start, err, "dev", dev, "slot", slot,
		"out", out, "sync", sync, "inverse", inverse)
	return out, sync, inverse, err
}

func (v *VerboseLib) SetOutNSyncEnable(dev, slot int, t ModuleType, out, sync uint8, inverse bool) error {
	start := time.Now()
	err := v.impl.SetOutNSyncEnable(dev, slot, t, out, sync, inverse)
	v.done(oscOp(t, "SetOutNSyncEnable"), start, err, "dev", dev, "slot", slot,
		"out", out, "sync", sync, "inverse", inverse)
	return err
}

func (v *VerboseLib) GetAUXIOSequencerCtrl(dev, slot int, t ModuleType) (bool, int, error) {
	start := time.Now()
	auxOut, auxIn, err := v.impl.GetAUXIOSequencerCtrl(dev, slot, t)
	v.done(oscOp(t, "GetAUXIOSequencerCtrl"), start, err, "dev", dev, "slot", slot, "aux_out", auxOut, "aux_in", auxIn)
	return auxOut, auxIn, err
}

func (v *VerboseLib) SetAUXIOSequencerCtrl(dev, slot int, t ModuleType, auxOut bool, auxIn int) error {
	start := time.Now()
	err := v.impl.SetAUXIOSequencerCtrl(dev, slot, t, auxOut, auxIn)
	v.done(oscOp(t, "SetAUXIOSequencerCtrl"), start, err, "dev", dev, "slot", slot, "aux_out", auxOut, "aux_in", auxIn)
	return err
}

func (v *VerboseLib) DecodeAUXINSequencerCtrl(t ModuleType, auxIn int) (string, error) {
	start := time.Now()
	name, err := v.impl.DecodeAUXINSequencerCtrl(t, auxIn)
	v.done(oscOp(t, "DecodeAUXINSequencerCtrl"), start, err, "aux_in", auxIn, "name", name)
	return name, err
}

func (v *VerboseLib) SOMDGetSeqOutputInfos(dev, slot, channel int) (SeqOutputInfo, error) {
	start := time.Now()
	info, err := v.impl.SOMDGetSeqOutputInfos(dev, slot, channel)
	v.done("SOMD_GetSeqOutputInfos", start, err, "dev", dev, "slot", slot, "channel", channel, "info", info)
	return info, err
}

func (v *VerboseLib) SOMDSetSeqOutputInfos(dev, slot, channel int, info SeqOutputInfo) error {
	start := time.Now()
	err := v.impl.SOMDSetSeqOutputInfos(dev, slot, channel, info)
	v.done("SOMD_SetSeqOutputInfos", start, err, "dev", dev, "slot", slot, "channel", channel, "info", info)
	return err
}

func (v *VerboseLib) SOMDGetDelayUnits(dev, slot int) (float64, int, error) {
	start := time.Now()
	step, fineMax, err := v.impl.SOMDGetDelayUnits(dev, slot)
	v.done("SOMD_GetDelayUnits", start, err, "dev", dev, "slot", slot, "coarse_step_s", step, "fine_max", fineMax)
	return step, fineMax, err
}

func (v *VerboseLib) PRIGetOperationMode(dev, slot int) (int, error) {
	start := time.Now()
	mode, err := v.impl.PRIGetOperationMode(dev, slot)
	v.done("PRI_GetOperationMode", start, err, "dev", dev, "slot", slot, "mode", mode)
	return mode, err
}

func (v *VerboseLib) PRISetOperationMode(dev, slot, mode int) error {
	start := time.Now()
	err := v.impl.PRISetOperationMode(dev, slot, mode)
	v.done("PRI_SetOperationMode", start, err, "dev", dev, "slot", slot, "mode", mode)
	return err
}

func (v *VerboseLib) PRIDecodeOperationMode(dev, slot, mode int) (string, error) {
	start := time.Now()
	name, err := v.impl.PRIDecodeOperationMode(dev, slot, mode)
	v.done("PRI_DecodeOperationMode", start, err, "dev", dev, "slot", slot, "mode", mode, "name", name)
	return name, err
}

func (v *VerboseLib) PRIGetTriggerSource(dev, slot int) (int, error) {
	start := time.Now()
	source, err := v.impl.PRIGetTriggerSource(dev, slot)
	v.done("PRI_GetTriggerSource", start, err, "dev", dev, "slot", slot, "source", source)
	return source, err
}

func (v *VerboseLib) PRISetTriggerSource(dev, slot, source int) error {
	start := time.Now()
	err := v.impl.PRISetTriggerSource(dev, slot, source)
	v.done("PRI_SetTriggerSource", start, err, "dev", dev, "slot", slot, "source", source)
	return err
}

func (v *VerboseLib) PRIDecodeTriggerSource(dev, slot, source int) (string, error) {
	start := time.Now()
	name, err := v.impl.PRIDecodeTriggerSource(dev, slot, source)
	v.done("PRI_DecodeTriggerSource", start, err, "dev", dev, "slot", slot, "source", source, "name", name)
	return name, err
}

func (v *VerboseLib) PRIGetFrequencyLimits(dev, slot int) (int, int, error) {
	start := time.Now()
	minHz, maxHz, err := v.impl.PRIGetFrequencyLimits(dev, slot)
	v.done("PRI_GetFrequencyLimits", start, err, "dev", dev, "slot", slot, "min_hz", minHz, "max_hz", maxHz)
	return minHz, maxHz, err
}

func (v *VerboseLib) PRIGetFrequency(dev, slot int) (int, error) {
	start := time.Now()
	hz, err := v.impl.PRIGetFrequency(dev, slot)
	v.done("PRI_GetFrequency", start, err, "dev", dev, "slot", slot, "hz", hz)
	return hz, err
}

func (v *VerboseLib) PRISetFrequency(dev, slot, hz int) error {
	start := time.Now()
	err := v.impl.PRISetFrequency(dev, slot, hz)
	v.done("PRI_SetFrequency", start, err, "dev", dev, "slot", slot, "hz", hz)
	return err
}

func (v *VerboseLib) PRIGetWavelengthIdx(dev, slot int) (int, error) {
	start := time.Now()
	idx, err := v.impl.PRIGetWavelengthIdx(dev, slot)
	v.done("PRI_GetWavelengthIdx", start, err, "dev", dev, "slot", slot, "idx", idx)
	return idx, err
}

func (v *VerboseLib) PRISetWavelengthIdx(dev, slot, idx int) error {
	start := time.Now()
	err := v.impl.PRISetWavelengthIdx(dev, slot, idx)
	v.done("PRI_SetWavelengthIdx", start, err, "dev", dev, "slot", slot, "idx", idx)
	return err
}

func (v *VerboseLib) PRIDecodeWavelength(dev, slot, idx int) (int, error) {
	start := time.Now()
	nm, err := v.impl.PRIDecodeWavelength(dev, slot, idx)
	v.done("PRI_DecodeWavelength", start, err, "dev", dev, "slot", slot, "idx", idx, "nm", nm)
	return nm, err
}

func (v *VerboseLib) PRIGetIntensity(dev, slot, wavelengthIdx int) (int, error) {
	start := time.Now()
	perMille, err := v.impl.PRIGetIntensity(dev, slot, wavelengthIdx)
	v.done("PRI_GetIntensity", start, err, "dev", dev, "slot", slot, "wl_idx", wavelengthIdx, "per_mille", perMille)
	return perMille, err
}

func (v *VerboseLib) PRISetIntensity(dev, slot, wavelengthIdx, perMille int) error {
	start := time.Now()
	err := v.impl.PRISetIntensity(dev, slot, wavelengthIdx, perMille)
	v.done("PRI_SetIntensity", start, err, "dev", dev, "slot", slot, "wl_idx", wavelengthIdx, "per_mille", perMille)
	return err
}

func (v *VerboseLib) PRIGetDeviceInfo(dev, slot int) (PrimaDeviceInfo, error) {
	start := time.Now()
	info, err := v.impl.PRIGetDeviceInfo(dev, slot)
	v.done("PRI_GetDeviceInfo", start, err, "dev", dev, "slot", slot, "device_id", info.DeviceID,
		"device_type", info.DeviceType, "firmware", info.Firmware, "wavelengths", info.WavelengthCount)
	return info, err
}

func (v *VerboseLib) PRIGetTriggerLevelLimits(dev, slot int) (TriggerLevelLimits, error) {
	start := time.Now()
	lim, err := v.impl.PRIGetTriggerLevelLimits(dev, slot)
	v.done("PRI_GetTriggerLevelLimits", start, err, "dev", dev, "slot", slot,
		"min_mv", lim.MinMV, "max_mv", lim.MaxMV, "res_mv", lim.ResolutionMV)
	return lim, err
}

func (v *VerboseLib) PRIGetTriggerLevel(dev, slot int) (int, error) {
	start := time.Now()
	mV, err := v.impl.PRIGetTriggerLevel(dev, slot)
	v.done("PRI_GetTriggerLevel", start, err, "dev", dev, "slot", slot, "mv", mV)
	return mV, err
}

func (v *VerboseLib) PRISetTriggerLevel(dev, slot, mV int) error {
	start := time.Now()
	err := v.impl.PRISetTriggerLevel(dev, slot, mV)
	v.done("PRI_SetTriggerLevel", start, err, "dev", dev, "slot", slot, "mv", mV)
	return err
}

func (v *VerboseLib) PRIGetGatingLimits(dev, slot int) (GatingLimits, error) {
	start := time.Now()
	lim, err := v.impl.PRIGetGatingLimits(dev, slot)
	v.done("PRI_GetGatingLimits", start, err, "dev", dev, "slot", slot,
		"min_on_ns", lim.MinOnTimeNs, "max_on_ns", lim.MaxOnTimeNs,
		"min_off_factor", lim.MinOffTimeFactor, "max_off_factor", lim.MaxOffTimeFactor)
	return lim, err
}

func (v *VerboseLib) PRIGetGatingData(dev, slot int) (int, int, error) {
	start := time.Now()
	on, off, err := v.impl.PRIGetGatingData(dev, slot)
	v.done("PRI_GetGatingData", start, err, "dev", dev, "slot", slot, "on_ns", on, "off_factor", off)
	return on, off, err
}

func (v *VerboseLib) PRISetGatingData(dev, slot, onTimeNs, offTimeFactor int) error {
	start := time.Now()
	err := v.impl.PRISetGatingData(dev, slot, onTimeNs, offTimeFactor)
	v.done("PRI_SetGatingData", start, err, "dev", dev, "slot", slot, "on_ns", onTimeNs, "off_factor", offTimeFactor)
	return err
}

func (v *VerboseLib) PRIGetGatingEnabled(dev, slot int) (bool, error) {
	start := time.Now()
	enabled, err := v.impl.PRIGetGatingEnabled(dev, slot)
	v.done("PRI_GetGatingEnabled", start, err, "dev", dev, "slot", slot, "enabled", enabled)
	return enabled, err
}

func (v *VerboseLib) PRISetGatingEnabled(dev, slot int, enabled bool) error {
	start := time.Now()
	err := v.impl.PRISetGatingEnabled(dev, slot, enabled)
	v.done("PRI_SetGatingEnabled", start, err, "dev", dev, "slot", slot, "enabled", enabled)
	return err
}

func (v *VerboseLib) PRIGetGateHighImpedance(dev, slot int) (bool, error) {
	start := time.Now()
	high, err := v.impl.PRIGetGateHighImpedance(dev, slot)
	v.done("PRI_GetGateHighImpedance", start, err, "dev", dev, "slot", slot, "high_impedance", high)
	return high, err
}

func (v *VerboseLib) PRISetGateHighImpedance(dev, slot int, high bool) error {
	start := time.Now()
	err := v.impl.PRISetGateHighImpedance(dev, slot, high)
	v.done("PRI_SetGateHighImpedance", start, err, "dev", dev, "slot", slot, "high_impedance", high)
	return err
}
