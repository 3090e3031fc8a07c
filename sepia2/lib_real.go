//go:build sepia2
// +build sepia2

package sepia2

/*
#cgo CFLAGS: -I/usr/local/include/sepia2
#cgo LDFLAGS: -L/usr/local/lib -lSepia2_Lib
#include <stdlib.h>
#include "Sepia2_Lib.h"
*/
import "C"

// RealLib calls the vendor shared library through cgo.
type RealLib struct{}

const strBufLen = 256

type strBuf [strBufLen]C.char

func (b *strBuf) ptr() *C.char { return &b[0] }

func (b *strBuf) String() string { return C.GoString(&b[0]) }

// defaultLib returns the cgo binding when built with the `sepia2` tag.
func defaultLib() (Lib, error) {
	return &RealLib{}, nil
}

func check(op string, ret C.int) error {
	return decodeStatus(op, Status(ret), decodeNative)
}

// decodeNative calls SEPIA2_LIB_DecodeError without going through check.
func decodeNative(code Status) (string, error) {
	var buf strBuf
	if ret := C.SEPIA2_LIB_DecodeError(C.int(code), buf.ptr()); ret != 0 {
		return "", errorString("LIB_DecodeError", Status(ret))
	}
	return buf.String(), nil
}

func cbool(b bool) C.uchar {
	if b {
		return 1
	}
	return 0
}

func (r *RealLib) LibVersion() (string, error) {
	var buf strBuf
	err := check("LIB_GetVersion", C.SEPIA2_LIB_GetVersion(buf.ptr()))
	return buf.String(), err
}

func (r *RealLib) DecodeError(code Status) (string, error) {
	return decodeNative(code)
}

func (r *RealLib) OpenDevice(dev int) (string, string, error) {
	var product, serial strBuf
	err := check("USB_OpenDevice", C.SEPIA2_USB_OpenDevice(C.int(dev), product.ptr(), serial.ptr()))
	return product.String(), serial.String(), err
}

func (r *RealLib) OpenGetSerNumAndClose(dev int) (string, string, error) {
	var product, serial strBuf
	err := check("USB_OpenGetSerNumAndClose", C.SEPIA2_USB_OpenGetSerNumAndClose(C.int(dev), product.ptr(), serial.ptr()))
	return product.String(), serial.String(), err
}

func (r *RealLib) CloseDevice(dev int) error {
	return check("USB_CloseDevice", C.SEPIA2_USB_CloseDevice(C.int(dev)))
}

func (r *RealLib) GetFWVersion(dev int) (string, error) {
	var buf strBuf
	err := check("FWR_GetVersion", C.SEPIA2_FWR_GetVersion(C.int(dev), buf.ptr()))
	return buf.String(), err
}

func (r *RealLib) GetModuleMap(dev int, restart bool) (int, error) {
	var count C.int
	restartFlag := C.int(0)
	if restart {
		restartFlag = 1
	}
	err := check("FWR_GetModuleMap", C.SEPIA2_FWR_GetModuleMap(C.int(dev), restartFlag, &count))
	return int(count), err
}

func (r *RealLib) GetModuleInfoByMapIdx(dev, mapIdx int) (ModuleInfo, error) {
	var slot C.int
	var primary, backplane, uptime C.uchar
	err := check("FWR_GetModuleInfoByMapIdx",
		C.SEPIA2_FWR_GetModuleInfoByMapIdx(C.int(dev), C.int(mapIdx), &slot, &primary, &backplane, &uptime))
	return ModuleInfo{
		MapIndex:      mapIdx,
		SlotID:        int(slot),
		Primary:       primary != 0,
		Backplane:     backplane != 0,
		UptimeCounter: uptime != 0,
	}, err
}

func (r *RealLib) FreeModuleMap(dev int) error {
	return check("FWR_FreeModuleMap", C.SEPIA2_FWR_FreeModuleMap(C.int(dev)))
}

func (r *RealLib) GetModuleType(dev, slot int, primary bool) (int, error) {
	var code C.int
	getPrimary := C.int(0)
	if primary {
		getPrimary = 1
	}
	err := check("COM_GetModuleType", C.SEPIA2_COM_GetModuleType(C.int(dev), C.int(slot), getPrimary, &code))
	return int(code), err
}

func (r *RealLib) DecodeModuleTypeAbbr(code int) (string, error) {
	var buf strBuf
	err := check("COM_DecodeModuleTypeAbbr", C.SEPIA2_COM_DecodeModuleTypeAbbr(C.int(code), buf.ptr()))
	return buf.String(), err
}

func (r *RealLib) GetLaserLocked(dev, slot int) (bool, error) {
	var locked C.uchar
	err := check("SCM_GetLaserLocked", C.SEPIA2_SCM_GetLaserLocked(C.int(dev), C.int(slot), &locked))
	return locked != 0, err
}

func (r *RealLib) GetLaserSoftLock(dev, slot int) (bool, error) {
	var locked C.uchar
	err := check("SCM_GetLaserSoftLock", C.SEPIA2_SCM_GetLaserSoftLock(C.int(dev), C.int(slot), &locked))
	return locked != 0, err
}

func (r *RealLib) SetLaserSoftLock(dev, slot int, locked bool) error {
	return check("SCM_SetLaserSoftLock", C.SEPIA2_SCM_SetLaserSoftLock(C.int(dev), C.int(slot), cbool(locked)))
}

func (r *RealLib) SLMGetIntensityFineStep(dev, slot int) (int, error) {
	var intensity C.ushort
	err := check("SLM_GetIntensityFineStep", C.SEPIA2_SLM_GetIntensityFineStep(C.int(dev), C.int(slot), &intensity))
	return int(intensity), err
}

func (r *RealLib) SLMSetIntensityFineStep(dev, slot, perMille int) error {
	return check("SLM_SetIntensityFineStep", C.SEPIA2_SLM_SetIntensityFineStep(C.int(dev), C.int(slot), C.ushort(perMille)))
}

func (r *RealLib) SLMGetPulseParameters(dev, slot int) (int, bool, int, error) {
	var freq, head C.int
	var pulsed C.uchar
	err := check("SLM_GetPulseParameters", C.SEPIA2_SLM_GetPulseParameters(C.int(dev), C.int(slot), &freq, &pulsed, &head))
	return int(freq), pulsed != 0, int(head), err
}

func (r *RealLib) SLMSetPulseParameters(dev, slot, trigger int, pulsed bool) error {
	return check("SLM_SetPulseParameters", C.SEPIA2_SLM_SetPulseParameters(C.int(dev), C.int(slot), C.int(trigger), cbool(pulsed)))
}

func (r *RealLib) SLMDecodeHeadType(head int) (string, error) {
	var buf strBuf
	err := check("SLM_DecodeHeadType", C.SEPIA2_SLM_DecodeHeadType(C.int(head), buf.ptr()))
	return buf.String(), err
}

func (r *RealLib) GetFreqTrigMode(dev, slot int, t ModuleType) (int, error) {
	var mode C.int
	if t == ModuleSOMD {
		var synchronize C.uchar
		err := check("SOMD_GetFreqTrigMode", C.SEPIA2_SOMD_GetFreqTrigMode(C.int(dev), C.int(slot), &mode, &synchronize))
		return int(mode), err
	}
	err := check("SOM_GetFreqTrigMode", C.SEPIA2_SOM_GetFreqTrigMode(C.int(dev), C.int(slot), &mode))
	return int(mode), err
}

func (r *RealLib) SetFreqTrigMode(dev, slot int, t ModuleType, mode int) error {
	if t == ModuleSOMD {
		return check("SOMD_SetFreqTrigMode", C.SEPIA2_SOMD_SetFreqTrigMode(C.int(dev), C.int(slot), C.int(mode), 0))
	}
	return check("SOM_SetFreqTrigMode", C.SEPIA2_SOM_SetFreqTrigMode(C.int(dev), C.int(slot), C.int(mode)))
}

func (r *RealLib) DecodeFreqTrigMode(dev, slot int, t ModuleType, mode int) (string, error) {
	var buf strBuf
	if t == ModuleSOMD {
		err := check("SOMD_DecodeFreqTrigMode", C.SEPIA2_SOMD_DecodeFreqTrigMode(C.int(dev), C.int(slot), C.int(mode), buf.ptr()))
		return buf.String(), err
	}
	err := check("SOM_DecodeFreqTrigMode", C.SEPIA2_SOM_DecodeFreqTrigMode(C.int(dev), C.int(slot), C.int(mode), buf.ptr()))
	return buf.String(), err
}

func (r *RealLib) GetBurstValues(dev, slot int, t ModuleType) (BurstValues, error) {
	var presync, mask C.uchar
	if t == ModuleSOMD {
		var divider C.ushort
		err := check("SOMD_GetBurstValues", C.SEPIA2_SOMD_GetBurstValues(C.int(dev), C.int(slot), &divider, &presync, &mask))
		return BurstValues{Divider: int(divider), Presync: int(presync), MaskSync: int(mask)}, err
	}
	var divider C.uchar
	err := check("SOM_GetBurstValues", C.SEPIA2_SOM_GetBurstValues(C.int(dev), C.int(slot), &divider, &presync, &mask))
	return BurstValues{Divider: int(divider), Presync: int(presync), MaskSync: int(mask)}, err
}

func (r *RealLib) SetBurstValues(dev, slot int, t ModuleType, v BurstValues) error {
	if t == ModuleSOMD {
		return check("SOMD_SetBurstValues", C.SEPIA2_SOMD_SetBurstValues(C.int(dev), C.int(slot),
			C.ushort(v.Divider), C.uchar(v.Presync), C.uchar(v.MaskSync)))
	}
	return check("SOM_SetBurstValues", C.SEPIA2_SOM_SetBurstValues(C.int(dev), C.int(slot),
		C.uchar(v.Divider), C.uchar(v.Presync), C.uchar(v.MaskSync)))
}

func (r *RealLib) GetBurstLengthArray(dev, slot int, t ModuleType) ([Channels]int, error) {
	var l [Channels]C.long
	var ret C.int
	if t == ModuleSOMD {
		ret = C.SEPIA2_SOMD_GetBurstLengthArray(C.int(dev), C.int(slot),
			&l[0], &l[1], &l[2], &l[3], &l[4], &l[5], &l[6], &l[7])
	} else {
		ret = C.SEPIA2_SOM_GetBurstLengthArray(C.int(dev), C.int(slot),
			&l[0], &l[1], &l[2], &l[3], &l[4], &l[5], &l[6], &l[7])
	}
	var lengths [Channels]int
	for i := range l {
		lengths[i] = int(l[i])
	}
	return lengths, check(oscOp(t, "GetBurstLengthArray"), ret)
}

func (r *RealLib) SetBurstLengthArray(dev, slot int, t ModuleType, lengths [Channels]int) error {
	var l [Channels]C.long
	for i, v := range lengths {
		l[i] = C.long(v)
	}
	if t == ModuleSOMD {
		return check("SOMD_SetBurstLengthArray", C.SEPIA2_SOMD_SetBurstLengthArray(C.int(dev), C.int(slot),
			l[0], l[1], l[2], l[3], l[4], l[5], l[6], l[7]))
	}
	return check("SOM_SetBurstLengthArray", C.SEPIA2_SOM_SetBurstLengthArray(C.int(dev), C.int(slot),
		l[0], l[1], l[2], l[3], l[4], l[5], l[6], l[7]))
}

func (r *RealLib) GetOutNSyncEnable(dev, slot int, t ModuleType) (uint8, uint8, bool, error) {
	var out, sync, inverse C.uchar
	var ret C.int
	if t == ModuleSOMD {
		ret = C.SEPIA2_SOMD_GetOutNSyncEnable(C.int(dev), C.int(slot), &out, &sync, &inverse)
	} else {
		ret = C.SEPIA2_SOM_GetOutNSyncEnable(C.int(dev), C.int(slot), &out, &sync, &inverse)
	}
	return uint8(out), uint8(sync), inverse != 0, check(oscOp(t, "GetOutNSyncEnable"), ret)
}

func (r *RealLib) SetOutNSyncEnable(dev, slot int, t ModuleType, out, sync uint8, inverse bool) error {
	if t == ModuleSOMD {
		return check("SOMD_SetOutNSyncEnable", C.SEPIA2_SOMD_SetOutNSyncEnable(C.int(dev), C.int(slot),
			C.uchar(out), C.uchar(sync), cbool(inverse)))
	}
	return check("SOM_SetOutNSyncEnable", C.SEPIA2_SOM_SetOutNSyncEnable(C.int(dev), C.int(slot),
		C.uchar(out), C.uchar(sync), cbool(inverse)))
}

func (r *RealLib) GetAUXIOSequencerCtrl(dev, slot int, t ModuleType) (bool, int, error) {
	var auxOut, auxIn C.uchar
	var ret C.int
	if t == ModuleSOMD {
		ret = C.SEPIA2_SOMD_GetAUXIOSequencerCtrl(C.int(dev), C.int(slot), &auxOut, &auxIn)
	} else {
		ret = C.SEPIA2_SOM_GetAUXIOSequencerCtrl(C.int(dev), C.int(slot), &auxOut, &auxIn)
	}
	return auxOut != 0, int(auxIn), check(oscOp(t, "GetAUXIOSequencerCtrl"), ret)
}

func (r *RealLib) SetAUXIOSequencerCtrl(dev, slot int, t ModuleType, auxOut bool, auxIn int) error {
	if t == ModuleSOMD {
		return check("SOMD_SetAUXIOSequencerCtrl", C.SEPIA2_SOMD_SetAUXIOSequencerCtrl(C.int(dev), C.int(slot),
			cbool(auxOut), C.uchar(auxIn)))
	}
	return check("SOM_SetAUXIOSequencerCtrl", C.SEPIA2_SOM_SetAUXIOSequencerCtrl(C.int(dev), C.int(slot),
		cbool(auxOut), C.uchar(auxIn)))
}

func (r *RealLib) DecodeAUXINSequencerCtrl(t ModuleType, auxIn int) (string, error) {
	var buf strBuf
	if t == ModuleSOMD {
		err := check("SOMD_DecodeAUXINSequencerCtrl", C.SEPIA2_SOMD_DecodeAUXINSequencerCtrl(C.int(auxIn), buf.ptr()))
		return buf.String(), err
	}
	err := check("SOM_DecodeAUXINSequencerCtrl", C.SEPIA2_SOM_DecodeAUXINSequencerCtrl(C.int(auxIn), buf.ptr()))
	return buf.String(), err
}

func (r *RealLib) SOMDGetSeqOutputInfos(dev, slot, channel int) (SeqOutputInfo, error) {
	var delayed, forced, combi, masked, fine C.uchar
	var coarse C.double
	err := check("SOMD_GetSeqOutputInfos", C.SEPIA2_SOMD_GetSeqOutputInfos(C.int(dev), C.int(slot), C.uchar(channel),
		&delayed, &forced, &combi, &masked, &coarse, &fine))
	return SeqOutputInfo{
		Delayed:        delayed != 0,
		ForceUndelayed: forced != 0,
		Combi:          uint8(combi),
		Masked:         masked != 0,
		CoarseDelayNs:  float64(coarse),
		FineDelay:      int(fine),
	}, err
}

func (r *RealLib) SOMDSetSeqOutputInfos(dev, slot, channel int, info SeqOutputInfo) error {
	return check("SOMD_SetSeqOutputInfos", C.SEPIA2_SOMD_SetSeqOutputInfos(C.int(dev), C.int(slot), C.uchar(channel),
		cbool(info.Delayed), C.uchar(info.Combi), cbool(info.Masked), C.double(info.CoarseDelayNs), C.uchar(info.FineDelay)))
}

func (r *RealLib) SOMDGetDelayUnits(dev, slot int) (float64, int, error) {
	var step C.double
	var fine C.uchar
	err := check("SOMD_GetDelayUnits", C.SEPIA2_SOMD_GetDelayUnits(C.int(dev), C.int(slot), &step, &fine))
	return float64(step), int(fine), err
}

func (r *RealLib) PRIGetOperationMode(dev, slot int) (int, error) {
	var mode C.int
	err := check("PRI_GetOperationMode", C.SEPIA2_PRI_GetOperationMode(C.int(dev), C.int(slot), &mode))
	return int(mode), err
}

func (r *RealLib) PRISetOperationMode(dev, slot, mode int) error {
	return check("PRI_SetOperationMode", C.SEPIA2_PRI_SetOperationMode(C.int(dev), C.int(slot), C.int(mode)))
}

func (r *RealLib) PRIDecodeOperationMode(dev, slot, mode int) (string, error) {
	var buf strBuf
	err := check("PRI_DecodeOperationMode", C.SEPIA2_PRI_DecodeOperationMode(C.int(dev), C.int(slot), C.int(mode), buf.ptr()))
	return buf.String(), err
}

func (r *RealLib) PRIGetTriggerSource(dev, slot int) (int, error) {
	var source C.int
	err := check("PRI_GetTriggerSource", C.SEPIA2_PRI_GetTriggerSource(C.int(dev), C.int(slot), &source))
	return int(source), err
}

func (r *RealLib) PRISetTriggerSource(dev, slot, source int) error {
	return check("PRI_SetTriggerSource", C.SEPIA2_PRI_SetTriggerSource(C.int(dev), C.int(slot), C.int(source)))
}

func (r *RealLib) PRIDecodeTriggerSource(dev, slot, source int) (string, error) {
	var buf strBuf
	var freqEnabled, levelEnabled C.uchar
	err := check("PRI_DecodeTriggerSource", C.SEPIA2_PRI_DecodeTriggerSource(C.int(dev), C.int(slot), C.int(source),
		buf.ptr(), &freqEnabled, &levelEnabled))
	return buf.String(), err
}

func (r *RealLib) PRIGetFrequencyLimits(dev, slot int) (int, int, error) {
	var minHz, maxHz C.int
	err := check("PRI_GetFrequencyLimits", C.SEPIA2_PRI_GetFrequencyLimits(C.int(dev), C.int(slot), &minHz, &maxHz))
	return int(minHz), int(maxHz), err
}

func (r *RealLib) PRIGetFrequency(dev, slot int) (int, error) {
	var hz C.int
	err := check("PRI_GetFrequency", C.SEPIA2_PRI_GetFrequency(C.int(dev), C.int(slot), &hz))
	return int(hz), err
}

func (r *RealLib) PRISetFrequency(dev, slot, hz int) error {
	return check("PRI_SetFrequency", C.SEPIA2_PRI_SetFrequency(C.int(dev), C.int(slot), C.int(hz)))
}

func (r *RealLib) PRIGetWavelengthIdx(dev, slot int) (int, error) {
	var idx C.int
	err := check("PRI_GetWavelengthIdx", C.SEPIA2_PRI_GetWavelengthIdx(C.int(dev), C.int(slot), &idx))
	return int(idx), err
}

func (r *RealLib) PRISetWavelengthIdx(dev, slot, idx int) error {
	return check("PRI_SetWavelengthIdx", C.SEPIA2_PRI_SetWavelengthIdx(C.int(dev), C.int(slot), C.int(idx)))
}

func (r *RealLib) PRIDecodeWavelength(dev, slot, idx int) (int, error) {
	var nm C.int
	err := check("PRI_DecodeWavelength", C.SEPIA2_PRI_DecodeWavelength(C.int(dev), C.int(slot), C.int(idx), &nm))
	return int(nm), err
}

func (r *RealLib) PRIGetIntensity(dev, slot, wavelengthIdx int) (int, error) {
	var intensity C.ushort
	err := check("PRI_GetIntensity", C.SEPIA2_PRI_GetIntensity(C.int(dev), C.int(slot), C.int(wavelengthIdx), &intensity))
	return int(intensity), err
}

func (r *RealLib) PRISetIntensity(dev, slot, wavelengthIdx, perMille int) error {
	return check("PRI_SetIntensity", C.SEPIA2_PRI_SetIntensity(C.int(dev), C.int(slot), C.int(wavelengthIdx), C.ushort(perMille)))
}

func (r *RealLib) PRIGetDeviceInfo(dev, slot int) (PrimaDeviceInfo, error) {
	var id, typ, fw strBuf
	var count C.int
	err := check("PRI_GetDeviceInfo", C.SEPIA2_PRI_GetDeviceInfo(C.int(dev), C.int(slot), id.ptr(), typ.ptr(), fw.ptr(), &count))
	return PrimaDeviceInfo{DeviceID: id.String(), DeviceType: typ.String(), Firmware: fw.String(), WavelengthCount: int(count)}, err
}

func (r *RealLib) PRIGetTriggerLevelLimits(dev, slot int) (TriggerLevelLimits, error) {
	var lo, hi, res C.int
	err := check("PRI_GetTriggerLevelLimits", C.SEPIA2_PRI_GetTriggerLevelLimits(C.int(dev), C.int(slot), &lo, &hi, &res))
	return TriggerLevelLimits{MinMV: int(lo), MaxMV: int(hi), ResolutionMV: int(res)}, err
}

func (r *RealLib) PRIGetTriggerLevel(dev, slot int) (int, error) {
	var mV C.int
	err := check("PRI_GetTriggerLevel", C.SEPIA2_PRI_GetTriggerLevel(C.int(dev), C.int(slot), &mV))
	return int(mV), err
}

func (r *RealLib) PRISetTriggerLevel(dev, slot, mV int) error {
	return check("PRI_SetTriggerLevel", C.SEPIA2_PRI_SetTriggerLevel(C.int(dev), C.int(slot), C.int(mV)))
}

func (r *RealLib) PRIGetGatingLimits(dev, slot int) (GatingLimits, error) {
	var minOn, maxOn, minOff, maxOff C.int
	err := check("PRI_GetGatingLimits", C.SEPIA2_PRI_GetGatingLimits(C.int(dev), C.int(slot), &minOn, &maxOn, &minOff, &maxOff))
	return GatingLimits{
		MinOnTimeNs:      int(minOn),
		MaxOnTimeNs:      int(maxOn),
		MinOffTimeFactor: int(minOff),
		MaxOffTimeFactor: int(maxOff),
	}, err
}

func (r *RealLib) PRIGetGatingData(dev, slot int) (int, int, error) {
	var on, off C.int
	err := check("PRI_GetGatingData", C.SEPIA2_PRI_GetGatingData(C.int(dev), C.int(slot), &on, &off))
	return int(on), int(off), err
}

func (r *RealLib) PRISetGatingData(dev, slot, onTimeNs, offTimeFactor int) error {
	return check("PRI_SetGatingData", C.SEPIA2_PRI_SetGatingData(C.int(dev), C.int(slot), C.int(onTimeNs), C.int(offTimeFactor)))
}

func (r *RealLib) PRIGetGatingEnabled(dev, slot int) (bool, error) {
	var enabled C.uchar
	err := check("PRI_GetGatingEnabled", C.SEPIA2_PRI_GetGatingEnabled(C.int(dev), C.int(slot), &enabled))
	return enabled != 0, err
}

func (r *RealLib) PRISetGatingEnabled(dev, slot int, enabled bool) error {
	return check("PRI_SetGatingEnabled", C.SEPIA2_PRI_SetGatingEnabled(C.int(dev), C.int(slot), cbool(enabled)))
}

func (r *RealLib) PRIGetGateHighImpedance(dev, slot int) (bool, error) {
	var high C.uchar
	err := check("PRI_GetGateHighImpedance", C.SEPIA2_PRI_GetGateHighImpedance(C.int(dev), C.int(slot), &high))
	return high != 0, err
}

func (r *RealLib) PRISetGateHighImpedance(dev, slot int, high bool) error {
	return check("PRI_SetGateHighImpedance", C.SEPIA2_PRI_SetGateHighImpedance(C.int(dev), C.int(slot), cbool(high)))
}
