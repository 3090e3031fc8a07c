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

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v2"
)

// DefaultFakeSpec describes a PDL 828 with a safety module, a SOM 828-D
// oscillator and two SLM 828 laser drivers.
const DefaultFakeSpec = `
Version: "1.2.64.753"
Devices:
  - Product: "PDL 828"
    Serial: "1030427"
    Firmware: "1.05.420"
    Modules:
      - { Slot: -1, Type: FRM }
      - { Slot: 0, Type: SCM }
      - { Slot: 100, Type: SOMD }
      - { Slot: 200, Type: SLM, Head: LD }
      - { Slot: 300, Type: SLM, Head: LD }
`

// FakeSpec is the YAML description of the simulated USB bus.
type FakeSpec struct {
	Unavailable bool             `yaml:"Unavailable"`
	Version     string           `yaml:"Version"`
	Devices     []FakeDeviceSpec `yaml:"Devices"`
}

// FakeDeviceSpec describes one simulated mainframe.
type FakeDeviceSpec struct {
	Product  string           `yaml:"Product"`
	Serial   string           `yaml:"Serial"`
	Firmware string           `yaml:"Firmware"`
	Busy     bool             `yaml:"Busy"`
	Modules  []FakeModuleSpec `yaml:"Modules"`
}

// FakeModuleSpec describes one slot. Zero values get module defaults.
type FakeModuleSpec struct {
	Slot        int     `yaml:"Slot"`
	Type        string  `yaml:"Type"`
	Head        string  `yaml:"Head"`
	KeyLocked   bool    `yaml:"KeyLocked"`
	CoarseStep  float64 `yaml:"CoarseStepNs"`
	FineMax     int     `yaml:"FineMax"`
	Wavelengths []int   `yaml:"Wavelengths"`
	MinFreqHz   int     `yaml:"MinFreqHz"`
	MaxFreqHz   int     `yaml:"MaxFreqHz"`
	DeviceID    string  `yaml:"DeviceID"`
}

var fakeModuleCodes = map[ModuleType]int{
	ModuleFRM:  0x01,
	ModuleSCM:  0x10,
	ModuleSOM:  0x30,
	ModuleSOMD: 0x31,
	ModuleSLM:  0x40,
	"SML":      0x41,
	ModulePRI:  0x50,
	"SWM":      0x60,
	"VCL":      0x70,
	"SPM":      0x80,
}

var fakeHeadTypes = []string{"N/A", "LD", "LED", "LD (high power)"}

var fakeFreqTrigModes = []string{"ext. rising edge", "ext. falling edge", "int. 80.00 MHz"}

var fakePRIOperationModes = []string{"off", "narrow pulse", "broad pulse", "CW"}

var fakePRITriggerSources = []string{"internal", "ext. rising edge", "ext. falling edge"}

var (
	fakePRITriggerLimits = TriggerLevelLimits{MinMV: -1000, MaxMV: 1000, ResolutionMV: 10}
	fakePRIGatingLimits  = GatingLimits{MinOnTimeNs: 10, MaxOnTimeNs: 5000, MinOffTimeFactor: 1, MaxOffTimeFactor: 100}
)

// FakeLib simulates Sepia2_Lib in memory. It records every entry point
// name it serves and can be told to fail a given call.
type FakeLib struct {
	mu       sync.Mutex
	version  string
	down     bool
	devices  []*fakeDevice
	codes    map[int]ModuleType
	calls    []string
	failures map[string]Status
}

type fakeDevice struct {
	spec    FakeDeviceSpec
	open    bool
	mapped  bool
	modules []*fakeModule
}

type fakeModule struct {
	info ModuleInfo
	code int

	keyLocked  bool
	softLocked bool

	trigger  int
	pulsed   bool
	head     int
	perMille int

	freqTrig   int
	burst      BurstValues
	lengths    [Channels]int
	out, sync  uint8
	inverse    bool
	auxOut     bool
	auxIn      int
	seq        [Channels]SeqOutputInfo
	coarseStep float64
	fineMax    int

	opMode      int
	trigSrc     int
	freqHz      int
	minHz       int
	maxHz       int
	wlIdx       int
	wavelengths []int
	intensity   []int
	deviceID    string
	trigLevel   int
	gateOn      int
	gateOff     int
	gateEnabled bool
	gateHighZ   bool
}

// NewFakeLib builds a simulated bus from spec.
func NewFakeLib(spec FakeSpec) (*FakeLib, error) {
	f := &FakeLib{failures: map[string]Status{}}
	if err := f.Reload(spec); err != nil {
		return nil, err
	}
	return f, nil
}

// NewFakeLibFromYAML parses a FakeSpec document.
func NewFakeLibFromYAML(data []byte) (*FakeLib, error) {
	spec, err := ParseFakeSpec(data)
	if err != nil {
		return nil, err
	}
	return NewFakeLib(spec)
}

// ParseFakeSpec parses a FakeSpec YAML document.
func ParseFakeSpec(data []byte) (FakeSpec, error) {
	var spec FakeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return FakeSpec{}, fmt.Errorf("error parsing fake spec: %v", err)
	}
	return spec, nil
}

// fakeLibFromEnv mirrors the daemon/CLI configuration: SEPIA2_FAKE_SPEC holds
// inline YAML ("default" or empty selects DefaultFakeSpec), SEPIA2_FAKE_SPEC_FILE
// a path to a YAML file.
func fakeLibFromEnv() (*FakeLib, error) {
	content := DefaultFakeSpec
	if path := os.Getenv("SEPIA2_FAKE_SPEC_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fake spec: %w", err)
		}
		content = string(data)
	} else if env := os.Getenv("SEPIA2_FAKE_SPEC"); env != "" && env != "default" {
		content = env
	}
	return NewFakeLibFromYAML([]byte(content))
}

// Reload replaces the simulated bus. Devices that are currently open keep
// their state so a live session is not pulled out from under its owner.
func (f *FakeLib) Reload(spec FakeSpec) error {
	if len(spec.Devices) > MaxDevices {
		return fmt.Errorf("fake spec lists %d devices, at most %d are addressable", len(spec.Devices), MaxDevices)
	}
	codes := map[int]ModuleType{}
	for t, c := range fakeModuleCodes {
		codes[c] = t
	}
	devices := make([]*fakeDevice, len(spec.Devices))
	for i, ds := range spec.Devices {
		d, err := newFakeDevice(ds, codes)
		if err != nil {
			return fmt.Errorf("device %d: %w", i, err)
		}
		devices[i] = d
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, old := range f.devices {
		if old.open && i < len(devices) {
			devices[i] = old
		}
	}
	f.version = spec.Version
	if f.version == "" {
		f.version = "1.2.64.753"
	}
	f.down = spec.Unavailable
	f.devices = devices
	f.codes = codes
	return nil
}

func newFakeDevice(spec FakeDeviceSpec, codes map[int]ModuleType) (*fakeDevice, error) {
	d := &fakeDevice{spec: spec}
	seen := map[int]bool{}
	for _, ms := range spec.Modules {
		if seen[ms.Slot] {
			return nil, fmt.Errorf("slot %d listed twice", ms.Slot)
		}
		seen[ms.Slot] = true
		t := ModuleType(strings.ToUpper(ms.Type))
		code, ok := fakeModuleCodes[t]
		if !ok {
			code = 0x100 + len(codes)
			codes[code] = t
		}
		m := &fakeModule{
			info: ModuleInfo{
				SlotID:        ms.Slot,
				Primary:       true,
				Backplane:     t == ModuleFRM,
				UptimeCounter: t != ModuleFRM,
				Type:          t,
			},
			code:      code,
			keyLocked: ms.KeyLocked,
		}
		switch t {
		case ModuleSCM:
			m.softLocked = true
		case ModuleSLM:
			m.trigger = SLMTriggerFalling
			m.head = fakeHeadCode(ms.Head)
		case ModuleSOM, ModuleSOMD:
			m.freqTrig = FreqTrigInternal
			m.burst = BurstValues{Divider: 4}
			m.lengths = [Channels]int{1, 1, 1, 1, 1, 1, 1, 1}
			m.coarseStep = ms.CoarseStep
			if m.coarseStep <= 0 {
				m.coarseStep = 0.78125
			}
			m.fineMax = ms.FineMax
			if m.fineMax <= 0 {
				m.fineMax = 31
			}
			for ch := range m.seq {
				m.seq[ch] = SeqOutputInfo{Combi: 1 << uint(ch)}
			}
		case ModulePRI:
			m.wavelengths = ms.Wavelengths
			if len(m.wavelengths) == 0 {
				m.wavelengths = []int{405, 510, 635}
			}
			m.intensity = make([]int, len(m.wavelengths))
			m.minHz, m.maxHz = ms.MinFreqHz, ms.MaxFreqHz
			if m.minHz <= 0 {
				m.minHz = 1000
			}
			if m.maxHz <= 0 {
				m.maxHz = 200000000
			}
			m.freqHz = m.minHz
			m.deviceID = ms.DeviceID
			if m.deviceID == "" {
				m.deviceID = fmt.Sprintf("%s-%d", spec.Serial, ms.Slot)
			}
			m.gateOn, m.gateOff = fakePRIGatingLimits.MinOnTimeNs, fakePRIGatingLimits.MinOffTimeFactor
		}
		d.modules = append(d.modules, m)
	}
	sort.SliceStable(d.modules, func(a, b int) bool { return d.modules[a].info.SlotID < d.modules[b].info.SlotID })
	for i, m := range d.modules {
		m.info.MapIndex = i
	}
	return d, nil
}

func fakeHeadCode(name string) int {
	if name == "" {
		return 1
	}
	for i, h := range fakeHeadTypes {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return 0
}

// Calls returns the entry points served so far, in order.
func (f *FakeLib) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// ResetCalls clears the call log.
func (f *FakeLib) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

// FailNext makes the next call of op return code.
func (f *FakeLib) FailNext(op string, code Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[op] = code
}

// IsOpen reports whether device dev holds an open USB handle.
func (f *FakeLib) IsOpen(dev int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return dev >= 0 && dev < len(f.devices) && f.devices[dev].open
}

// SoftLocked reports the SCM soft lock of device dev.
func (f *FakeLib) SoftLocked(dev int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if dev < 0 || dev >= len(f.devices) {
		return false
	}
	for _, m := range f.devices[dev].modules {
		if m.info.Type == ModuleSCM {
			return m.softLocked
		}
	}
	return false
}

// enter records op and returns an injected failure, if any. Callers hold f.mu.
func (f *FakeLib) enter(op string) error {
	f.calls = append(f.calls, op)
	if code, ok := f.failures[op]; ok {
		delete(f.failures, op)
		return errorString(op, code)
	}
	if f.down && op != "LIB_GetVersion" {
		return errorString(op, SEPIA2_ERR_LIB_UNKNOWN_FUNCTION)
	}
	return nil
}

func (f *FakeLib) device(op string, dev int) (*fakeDevice, error) {
	if dev < 0 || dev >= MaxDevices {
		return nil, errorString(op, SEPIA2_ERR_LIB_ILLEGAL_DEVICE_INDEX)
	}
	if dev >= len(f.devices) {
		return nil, errorString(op, SEPIA2_ERR_USB_NO_DEVICE_FOUND)
	}
	return f.devices[dev], nil
}

func (f *FakeLib) openDevice(op string, dev int) (*fakeDevice, error) {
	d, err := f.device(op, dev)
	if err != nil {
		return nil, err
	}
	if !d.open {
		return nil, errorString(op, SEPIA2_ERR_LIB_USB_DEVICE_ALREADY_CLOSED)
	}
	return d, nil
}

func (f *FakeLib) module(op string, dev, slot int, types ...ModuleType) (*fakeModule, error) {
	if err := f.enter(op); err != nil {
		return nil, err
	}
	d, err := f.openDevice(op, dev)
	if err != nil {
		return nil, err
	}
	if !d.mapped {
		return nil, errorString(op, SEPIA2_ERR_LIB_NO_MAP_FOUND)
	}
	for _, m := range d.modules {
		if m.info.SlotID != slot {
			continue
		}
		for _, t := range types {
			if m.info.Type == t {
				return m, nil
			}
		}
		if len(types) == 0 {
			return m, nil
		}
		if m.info.Type == ModuleSOM && len(types) == 1 && types[0] == ModuleSOMD {
			return nil, errorString(op, SEPIA2_ERR_SOMD_FEATURE_NOT_AVAILABLE)
		}
		break
	}
	return nil, errorString(op, SEPIA2_ERR_LIB_INVALID_SLOT_NUMBER)
}

func (f *FakeLib) LibVersion() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("LIB_GetVersion"); err != nil {
		return "", err
	}
	if f.down {
		return "", errorString("LIB_GetVersion", SEPIA2_ERR_LIB_UNKNOWN_FUNCTION)
	}
	return f.version, nil
}

func (f *FakeLib) DecodeError(code Status) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("LIB_DecodeError"); err != nil {
		return "", err
	}
	if txt, ok := statusText[code]; ok {
		return txt, nil
	}
	return "", errorString("LIB_DecodeError", SEPIA2_ERR_LIB_UNKNOWN_ERROR_CODE)
}

func (f *FakeLib) OpenDevice(dev int) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "USB_OpenDevice"
	if err := f.enter(op); err != nil {
		return "", "", err
	}
	d, err := f.device(op, dev)
	if err != nil {
		return "", "", err
	}
	if d.spec.Busy {
		return "", "", errorString(op, SEPIA2_ERR_LIB_USB_DEVICE_BUSY_OR_BLOCKED)
	}
	if d.open {
		return "", "", errorString(op, SEPIA2_ERR_LIB_USB_DEVICE_ALREADY_OPENED)
	}
	d.open = true
	return d.spec.Product, d.spec.Serial, nil
}

func (f *FakeLib) OpenGetSerNumAndClose(dev int) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "USB_OpenGetSerNumAndClose"
	if err := f.enter(op); err != nil {
		return "", "", err
	}
	d, err := f.device(op, dev)
	if err != nil {
		return "", "", err
	}
	if d.spec.Busy || d.open {
		return "", "", errorString(op, SEPIA2_ERR_LIB_USB_DEVICE_BUSY_OR_BLOCKED)
	}
	return d.spec.Product, d.spec.Serial, nil
}

func (f *FakeLib) CloseDevice(dev int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "USB_CloseDevice"
	if err := f.enter(op); err != nil {
		return err
	}
	d, err := f.openDevice(op, dev)
	if err != nil {
		return err
	}
	// the firmware soft-locks the laser when the host disconnects
	for _, m := range d.modules {
		if m.info.Type == ModuleSCM {
			m.softLocked = true
		}
	}
	d.open = false
	d.mapped = false
	return nil
}

func (f *FakeLib) GetFWVersion(dev int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "FWR_GetVersion"
	if err := f.enter(op); err != nil {
		return "", err
	}
	d, err := f.openDevice(op, dev)
	if err != nil {
		return "", err
	}
	if d.spec.Firmware == "" {
		return "1.05.420", nil
	}
	return d.spec.Firmware, nil
}

func (f *FakeLib) GetModuleMap(dev int, restart bool) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "FWR_GetModuleMap"
	if err := f.enter(op); err != nil {
		return 0, err
	}
	d, err := f.openDevice(op, dev)
	if err != nil {
		return 0, err
	}
	d.mapped = true
	return len(d.modules), nil
}

func (f *FakeLib) GetModuleInfoByMapIdx(dev, mapIdx int) (ModuleInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "FWR_GetModuleInfoByMapIdx"
	if err := f.enter(op); err != nil {
		return ModuleInfo{}, err
	}
	d, err := f.openDevice(op, dev)
	if err != nil {
		return ModuleInfo{}, err
	}
	if !d.mapped {
		return ModuleInfo{}, errorString(op, SEPIA2_ERR_LIB_NO_MAP_FOUND)
	}
	if mapIdx < 0 || mapIdx >= len(d.modules) {
		return ModuleInfo{}, errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	info := d.modules[mapIdx].info
	info.Type = ""
	return info, nil
}

func (f *FakeLib) FreeModuleMap(dev int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "FWR_FreeModuleMap"
	if err := f.enter(op); err != nil {
		return err
	}
	d, err := f.openDevice(op, dev)
	if err != nil {
		return err
	}
	d.mapped = false
	return nil
}

func (f *FakeLib) GetModuleType(dev, slot int, primary bool) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("COM_GetModuleType", dev, slot)
	if err != nil {
		return 0, err
	}
	return m.code, nil
}

func (f *FakeLib) DecodeModuleTypeAbbr(code int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "COM_DecodeModuleTypeAbbr"
	if err := f.enter(op); err != nil {
		return "", err
	}
	t, ok := f.codes[code]
	if !ok {
		return "", errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	return string(t), nil
}

func (f *FakeLib) GetLaserLocked(dev, slot int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("SCM_GetLaserLocked", dev, slot, ModuleSCM)
	if err != nil {
		return false, err
	}
	return m.keyLocked || m.softLocked, nil
}

func (f *FakeLib) GetLaserSoftLock(dev, slot int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("SCM_GetLaserSoftLock", dev, slot, ModuleSCM)
	if err != nil {
		return false, err
	}
	return m.softLocked, nil
}

func (f *FakeLib) SetLaserSoftLock(dev, slot int, locked bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("SCM_SetLaserSoftLock", dev, slot, ModuleSCM)
	if err != nil {
		return err
	}
	m.softLocked = locked
	return nil
}

func (f *FakeLib) SLMGetIntensityFineStep(dev, slot int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("SLM_GetIntensityFineStep", dev, slot, ModuleSLM)
	if err != nil {
		return 0, err
	}
	return m.perMille, nil
}

func (f *FakeLib) SLMSetIntensityFineStep(dev, slot, perMille int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "SLM_SetIntensityFineStep"
	m, err := f.module(op, dev, slot, ModuleSLM)
	if err != nil {
		return err
	}
	if perMille < 0 || perMille > 1000 {
		return errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	m.perMille = perMille
	return nil
}

func (f *FakeLib) SLMGetPulseParameters(dev, slot int) (int, bool, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("SLM_GetPulseParameters", dev, slot, ModuleSLM)
	if err != nil {
		return 0, false, 0, err
	}
	return m.trigger, m.pulsed, m.head, nil
}

func (f *FakeLib) SLMSetPulseParameters(dev, slot, trigger int, pulsed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "SLM_SetPulseParameters"
	m, err := f.module(op, dev, slot, ModuleSLM)
	if err != nil {
		return err
	}
	if trigger < 0 || trigger >= slmTriggerCodes {
		return errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	m.trigger, m.pulsed = trigger, pulsed
	return nil
}

func (f *FakeLib) SLMDecodeHeadType(head int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "SLM_DecodeHeadType"
	if err := f.enter(op); err != nil {
		return "", err
	}
	if head < 0 || head >= len(fakeHeadTypes) {
		return "", errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	return fakeHeadTypes[head], nil
}

func oscOp(t ModuleType, name string) string {
	return string(t) + "_" + name
}

func (f *FakeLib) GetFreqTrigMode(dev, slot int, t ModuleType) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module(oscOp(t, "GetFreqTrigMode"), dev, slot, t)
	if err != nil {
		return 0, err
	}
	return m.freqTrig, nil
}

func (f *FakeLib) SetFreqTrigMode(dev, slot int, t ModuleType, mode int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	op := oscOp(t, "SetFreqTrigMode")
	m, err := f.module(op, dev, slot, t)
	if err != nil {
		return err
	}
	if mode < 0 || mode >= len(fakeFreqTrigModes) {
		return errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	m.freqTrig = mode
	return nil
}

func (f *FakeLib) DecodeFreqTrigMode(dev, slot int, t ModuleType, mode int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	op := oscOp(t, "DecodeFreqTrigMode")
	if _, err := f.module(op, dev, slot, t); err != nil {
		return "", err
	}
	if mode < 0 || mode >= len(fakeFreqTrigModes) {
		return "", errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	return fakeFreqTrigModes[mode], nil
}

func (f *FakeLib) GetBurstValues(dev, slot int, t ModuleType) (BurstValues, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module(oscOp(t, "GetBurstValues"), dev, slot, t)
	if err != nil {
		return BurstValues{}, err
	}
	return m.burst, nil
}

func (f *FakeLib) SetBurstValues(dev, slot int, t ModuleType, v BurstValues) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	op := oscOp(t, "SetBurstValues")
	m, err := f.module(op, dev, slot, t)
	if err != nil {
		return err
	}
	if v.Divider < 1 || v.Divider > MaxDivider(t) || v.Presync < 0 || v.MaskSync < 0 {
		return errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	m.burst = v
	return nil
}

func (f *FakeLib) GetBurstLengthArray(dev, slot int, t ModuleType) ([Channels]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module(oscOp(t, "GetBurstLengthArray"), dev, slot, t)
	if err != nil {
		return [Channels]int{}, err
	}
	return m.lengths, nil
}

func (f *FakeLib) SetBurstLengthArray(dev, slot int, t ModuleType, lengths [Channels]int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	op := oscOp(t, "SetBurstLengthArray")
	m, err := f.module(op, dev, slot, t)
	if err != nil {
		return err
	}
	for _, l := range lengths {
		if l < 0 || l > MaxBurstLength {
			return errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
		}
	}
	m.lengths = lengths
	return nil
}

func (f *FakeLib) GetOutNSyncEnable(dev, slot int, t ModuleType) (uint8, uint8, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module(oscOp(t, "GetOutNSyncEnable"), dev, slot, t)
	if err != nil {
		return 0, 0, false, err
	}
	return m.out, m.sync, m.inverse, nil
}

func (f *FakeLib) SetOutNSyncEnable(dev, slot int, t ModuleType, out, sync uint8, inverse bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module(oscOp(t, "SetOutNSyncEnable"), dev, slot, t)
	if err != nil {
		return err
	}
	m.out, m.sync, m.inverse = out, sync, inverse
	return nil
}

func (f *FakeLib) GetAUXIOSequencerCtrl(dev, slot int, t ModuleType) (bool, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module(oscOp(t, "GetAUXIOSequencerCtrl"), dev, slot, t)
	if err != nil {
		return false, 0, err
	}
	return m.auxOut, m.auxIn, nil
}

func (f *FakeLib) SetAUXIOSequencerCtrl(dev, slot int, t ModuleType, auxOut bool, auxIn int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	op := oscOp(t, "SetAUXIOSequencerCtrl")
	m, err := f.module(op, dev, slot, t)
	if err != nil {
		return err
	}
	if auxIn < 0 || auxIn >= len(sequencerNames) {
		return errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	m.auxOut, m.auxIn = auxOut, auxIn
	return nil
}

func (f *FakeLib) DecodeAUXINSequencerCtrl(t ModuleType, auxIn int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	op := oscOp(t, "DecodeAUXINSequencerCtrl")
	if err := f.enter(op); err != nil {
		return "", err
	}
	name, err := SequencerName(auxIn)
	if err != nil {
		return "", errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	return name, nil
}

func (f *FakeLib) SOMDGetSeqOutputInfos(dev, slot, channel int) (SeqOutputInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "SOMD_GetSeqOutputInfos"
	m, err := f.module(op, dev, slot, ModuleSOMD)
	if err != nil {
		return SeqOutputInfo{}, err
	}
	if channel < 0 || channel >= Channels {
		return SeqOutputInfo{}, errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	return m.seq[channel], nil
}

func (f *FakeLib) SOMDSetSeqOutputInfos(dev, slot, channel int, info SeqOutputInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "SOMD_SetSeqOutputInfos"
	m, err := f.module(op, dev, slot, ModuleSOMD)
	if err != nil {
		return err
	}
	if channel < 0 || channel >= Channels || info.FineDelay < 0 || info.FineDelay > m.fineMax || info.CoarseDelayNs < 0 {
		return errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	steps, _ := CoarseSteps(info.CoarseDelayNs, m.coarseStep)
	info.CoarseDelayNs = DelayFromSteps(steps, m.coarseStep)
	m.seq[channel] = info
	return nil
}

func (f *FakeLib) SOMDGetDelayUnits(dev, slot int) (float64, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("SOMD_GetDelayUnits", dev, slot, ModuleSOMD)
	if err != nil {
		return 0, 0, err
	}
	return m.coarseStep * 1e-9, m.fineMax, nil
}

func (f *FakeLib) PRIGetOperationMode(dev, slot int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("PRI_GetOperationMode", dev, slot, ModulePRI)
	if err != nil {
		return 0, err
	}
	return m.opMode, nil
}

func (f *FakeLib) PRISetOperationMode(dev, slot, mode int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "PRI_SetOperationMode"
	m, err := f.module(op, dev, slot, ModulePRI)
	if err != nil {
		return err
	}
	if mode < 0 || mode >= len(fakePRIOperationModes) {
		return errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	m.opMode = mode
	return nil
}

func (f *FakeLib) PRIDecodeOperationMode(dev, slot, mode int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "PRI_DecodeOperationMode"
	if _, err := f.module(op, dev, slot, ModulePRI); err != nil {
		return "", err
	}
	if mode < 0 || mode >= len(fakePRIOperationModes) {
		return "", errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	return fakePRIOperationModes[mode], nil
}

func (f *FakeLib) PRIGetTriggerSource(dev, slot int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("PRI_GetTriggerSource", dev, slot, ModulePRI)
	if err != nil {
		return 0, err
	}
	return m.trigSrc, nil
}

func (f *FakeLib) PRISetTriggerSource(dev, slot, source int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "PRI_SetTriggerSource"
	m, err := f.module(op, dev, slot, ModulePRI)
	if err != nil {
		return err
	}
	if source < 0 || source >= len(fakePRITriggerSources) {
		return errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	m.trigSrc = source
	return nil
}

func (f *FakeLib) PRIDecodeTriggerSource(dev, slot, source int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "PRI_DecodeTriggerSource"
	if _, err := f.module(op, dev, slot, ModulePRI); err != nil {
		return "", err
	}
	if source < 0 || source >= len(fakePRITriggerSources) {
		return "", errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	return fakePRITriggerSources[source], nil
}

func (f *FakeLib) PRIGetFrequencyLimits(dev, slot int) (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("PRI_GetFrequencyLimits", dev, slot, ModulePRI)
	if err != nil {
		return 0, 0, err
	}
	return m.minHz, m.maxHz, nil
}

func (f *FakeLib) PRIGetFrequency(dev, slot int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("PRI_GetFrequency", dev, slot, ModulePRI)
	if err != nil {
		return 0, err
	}
	return m.freqHz, nil
}

func (f *FakeLib) PRISetFrequency(dev, slot, hz int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "PRI_SetFrequency"
	m, err := f.module(op, dev, slot, ModulePRI)
	if err != nil {
		return err
	}
	if hz < m.minHz || hz > m.maxHz {
		return errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	m.freqHz = hz
	return nil
}

func (f *FakeLib) PRIGetWavelengthIdx(dev, slot int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("PRI_GetWavelengthIdx", dev, slot, ModulePRI)
	if err != nil {
		return 0, err
	}
	return m.wlIdx, nil
}

func (f *FakeLib) PRISetWavelengthIdx(dev, slot, idx int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "PRI_SetWavelengthIdx"
	m, err := f.module(op, dev, slot, ModulePRI)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(m.wavelengths) {
		return errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	m.wlIdx = idx
	return nil
}

func (f *FakeLib) PRIDecodeWavelength(dev, slot, idx int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "PRI_DecodeWavelength"
	m, err := f.module(op, dev, slot, ModulePRI)
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(m.wavelengths) {
		return 0, errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	return m.wavelengths[idx], nil
}

func (f *FakeLib) PRIGetIntensity(dev, slot, wavelengthIdx int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "PRI_GetIntensity"
	m, err := f.module(op, dev, slot, ModulePRI)
	if err != nil {
		return 0, err
	}
	if wavelengthIdx < 0 || wavelengthIdx >= len(m.intensity) {
		return 0, errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	return m.intensity[wavelengthIdx], nil
}

func (f *FakeLib) PRISetIntensity(dev, slot, wavelengthIdx, perMille int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "PRI_SetIntensity"
	m, err := f.module(op, dev, slot, ModulePRI)
	if err != nil {
		return err
	}
	if wavelengthIdx < 0 || wavelengthIdx >= len(m.intensity) || perMille < 0 || perMille > 1000 {
		return errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	m.intensity[wavelengthIdx] = perMille
	return nil
}

func (f *FakeLib) PRIGetDeviceInfo(dev, slot int) (PrimaDeviceInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("PRI_GetDeviceInfo", dev, slot, ModulePRI)
	if err != nil {
		return PrimaDeviceInfo{}, err
	}
	return PrimaDeviceInfo{
		DeviceID:        m.deviceID,
		DeviceType:      "Prima",
		Firmware:        "1.00.17",
		WavelengthCount: len(m.wavelengths),
	}, nil
}

func (f *FakeLib) PRIGetTriggerLevelLimits(dev, slot int) (TriggerLevelLimits, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.module("PRI_GetTriggerLevelLimits", dev, slot, ModulePRI); err != nil {
		return TriggerLevelLimits{}, err
	}
	return fakePRITriggerLimits, nil
}

func (f *FakeLib) PRIGetTriggerLevel(dev, slot int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("PRI_GetTriggerLevel", dev, slot, ModulePRI)
	if err != nil {
		return 0, err
	}
	return m.trigLevel, nil
}

func (f *FakeLib) PRISetTriggerLevel(dev, slot, mV int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "PRI_SetTriggerLevel"
	m, err := f.module(op, dev, slot, ModulePRI)
	if err != nil {
		return err
	}
	lim := fakePRITriggerLimits
	if mV < lim.MinMV || mV > lim.MaxMV {
		return errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	m.trigLevel = lim.MinMV + (mV-lim.MinMV)/lim.ResolutionMV*lim.ResolutionMV
	return nil
}

func (f *FakeLib) PRIGetGatingLimits(dev, slot int) (GatingLimits, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.module("PRI_GetGatingLimits", dev, slot, ModulePRI); err != nil {
		return GatingLimits{}, err
	}
	return fakePRIGatingLimits, nil
}

func (f *FakeLib) PRIGetGatingData(dev, slot int) (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("PRI_GetGatingData", dev, slot, ModulePRI)
	if err != nil {
		return 0, 0, err
	}
	return m.gateOn, m.gateOff, nil
}

func (f *FakeLib) PRISetGatingData(dev, slot, onTimeNs, offTimeFactor int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	const op = "PRI_SetGatingData"
	m, err := f.module(op, dev, slot, ModulePRI)
	if err != nil {
		return err
	}
	lim := fakePRIGatingLimits
	if onTimeNs < lim.MinOnTimeNs || onTimeNs > lim.MaxOnTimeNs ||
		offTimeFactor < lim.MinOffTimeFactor || offTimeFactor > lim.MaxOffTimeFactor {
		return errorString(op, SEPIA2_ERR_LIB_ILLEGAL_PARAMETER_ON_FUNCTION)
	}
	m.gateOn, m.gateOff = onTimeNs, offTimeFactor
	return nil
}

func (f *FakeLib) PRIGetGatingEnabled(dev, slot int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("PRI_GetGatingEnabled", dev, slot, ModulePRI)
	if err != nil {
		return false, err
	}
	return m.gateEnabled, nil
}

func (f *FakeLib) PRISetGatingEnabled(dev, slot int, enabled bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("PRI_SetGatingEnabled", dev, slot, ModulePRI)
	if err != nil {
		return err
	}
	m.gateEnabled = enabled
	return nil
}

func (f *FakeLib) PRIGetGateHighImpedance(dev, slot int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("PRI_GetGateHighImpedance", dev, slot, ModulePRI)
	if err != nil {
		return false, err
	}
	return m.gateHighZ, nil
}

func (f *FakeLib) PRISetGateHighImpedance(dev, slot int, high bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.module("PRI_SetGateHighImpedance", dev, slot, ModulePRI)
	if err != nil {
		return err
	}
	m.gateHighZ = high
	return nil
}
