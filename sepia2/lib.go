/*
 * Copyright (c) 2026, The sepia2-go Authors.  All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sepia2

// ModuleType is the abbreviated module name reported by
// SEPIA2_COM_DecodeModuleTypeAbbr, e.g. "SOMD" or "SLM".
type ModuleType string

const (
	ModuleSCM  ModuleType = "SCM"
	ModuleSLM  ModuleType = "SLM"
	ModuleSOM  ModuleType = "SOM"
	ModuleSOMD ModuleType = "SOMD"
	ModulePRI  ModuleType = "PRI"
	ModuleFRM  ModuleType = "FRM"
)

// ModuleInfo is one entry of the firmware module map.
type ModuleInfo struct {
	MapIndex      int
	SlotID        int
	Primary       bool
	Backplane     bool
	UptimeCounter bool
	Type          ModuleType
}

// BurstValues are the base oscillator pre-divider settings.
type BurstValues struct {
	Divider  int
	Presync  int
	MaskSync int
}

// SeqOutputInfo is the raw SOMD sequencer output state of one channel.
// CoarseDelayNs is reported by the library in nanoseconds.
type SeqOutputInfo struct {
	Delayed        bool
	ForceUndelayed bool
	Combi          uint8
	Masked         bool
	CoarseDelayNs  float64
	FineDelay      int
}

// PrimaDeviceInfo is what SEPIA2_PRI_GetDeviceInfo reports.
type PrimaDeviceInfo struct {
	DeviceID        string
	DeviceType      string
	Firmware        string
	WavelengthCount int
}

// TriggerLevelLimits is the Prima external trigger level range in mV.
type TriggerLevelLimits struct {
	MinMV        int
	MaxMV        int
	ResolutionMV int
}

// GatingLimits bounds the Prima gate generator. The off time is a multiple of
// the on time.
type GatingLimits struct {
	MinOnTimeNs      int
	MaxOnTimeNs      int
	MinOffTimeFactor int
	MaxOffTimeFactor int
}

// Lib is the Sepia2_Lib entry point surface (real or fake). Every method
// returns a *NativeStatusError for a nonzero vendor status.
type Lib interface {
	LibVersion() (string, error)
	DecodeError(code Status) (string, error)

	OpenDevice(dev int) (product, serial string, err error)
	OpenGetSerNumAndClose(dev int) (product, serial string, err error)
	CloseDevice(dev int) error

	GetFWVersion(dev int) (string, error)
	GetModuleMap(dev int, restart bool) (int, error)
	GetModuleInfoByMapIdx(dev, mapIdx int) (ModuleInfo, error)
	FreeModuleMap(dev int) error

	GetModuleType(dev, slot int, primary bool) (int, error)
	DecodeModuleTypeAbbr(code int) (string, error)

	GetLaserLocked(dev, slot int) (bool, error)
	GetLaserSoftLock(dev, slot int) (bool, error)
	SetLaserSoftLock(dev, slot int, locked bool) error

	SLMGetIntensityFineStep(dev, slot int) (int, error)
	SLMSetIntensityFineStep(dev, slot, perMille int) error
	SLMGetPulseParameters(dev, slot int) (trigger int, pulsed bool, head int, err error)
	SLMSetPulseParameters(dev, slot, trigger int, pulsed bool) error
	SLMDecodeHeadType(head int) (string, error)

	GetFreqTrigMode(dev, slot int, t ModuleType) (int, error)
	SetFreqTrigMode(dev, slot int, t ModuleType, mode int) error
	DecodeFreqTrigMode(dev, slot int, t ModuleType, mode int) (string, error)
	GetBurstValues(dev, slot int, t ModuleType) (BurstValues, error)
	SetBurstValues(dev, slot int, t ModuleType, v BurstValues) error
	GetBurstLengthArray(dev, slot int, t ModuleType) ([Channels]int, error)
	SetBurstLengthArray(dev, slot int, t ModuleType, lengths [Channels]int) error
	GetOutNSyncEnable(dev, slot int, t ModuleType) (out, sync uint8, inverse bool, err error)
	SetOutNSyncEnable(dev, slot int, t ModuleType, out, sync uint8, inverse bool) error
	GetAUXIOSequencerCtrl(dev, slot int, t ModuleType) (auxOut bool, auxIn int, err error)
	SetAUXIOSequencerCtrl(dev, slot int, t ModuleType, auxOut bool, auxIn int) error
	DecodeAUXINSequencerCtrl(t ModuleType, auxIn int) (string, error)

	SOMDGetSeqOutputInfos(dev, slot, channel int) (SeqOutputInfo, error)
	SOMDSetSeqOutputInfos(dev, slot, channel int, info SeqOutputInfo) error
	SOMDGetDelayUnits(dev, slot int) (coarseStepSec float64, fineMax int, err error)

	PRIGetOperationMode(dev, slot int) (int, error)
	PRISetOperationMode(dev, slot, mode int) error
	PRIDecodeOperationMode(dev, slot, mode int) (string, error)
	PRIGetTriggerSource(dev, slot int) (int, error)
	PRISetTriggerSource(dev, slot, source int) error
	PRIDecodeTriggerSource(dev, slot, source int) (string, error)
	PRIGetFrequencyLimits(dev, slot int) (minHz, maxHz int, err error)
	PRIGetFrequency(dev, slot int) (int, error)
	PRISetFrequency(dev, slot, hz int) error
	PRIGetWavelengthIdx(dev, slot int) (int, error)
	PRISetWavelengthIdx(dev, slot, idx int) error
	PRIDecodeWavelength(dev, slot, idx int) (int, error)
	PRIGetIntensity(dev, slot, wavelengthIdx int) (int, error)
	PRISetIntensity(dev, slot, wavelengthIdx, perMille int) error
	PRIGetDeviceInfo(dev, slot int) (PrimaDeviceInfo, error)
	PRIGetTriggerLevelLimits(dev, slot int) (TriggerLevelLimits, error)
	PRIGetTriggerLevel(dev, slot int) (int, error)
	PRISetTriggerLevel(dev, slot, mV int) error
	PRIGetGatingLimits(dev, slot int) (GatingLimits, error)
	PRIGetGatingData(dev, slot int) (onTimeNs, offTimeFactor int, err error)
	PRISetGatingData(dev, slot, onTimeNs, offTimeFactor int) error
	PRIGetGatingEnabled(dev, slot int) (bool, error)
	PRISetGatingEnabled(dev, slot int, enabled bool) error
	PRIGetGateHighImpedance(dev, slot int) (bool, error)
	PRISetGateHighImpedance(dev, slot int, high bool) error
}
