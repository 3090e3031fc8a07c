package sepia2

import (
	"fmt"
	"math"
)

// delayedSource is the sequencer channel a delayed output copies.
const delayedSource = 0x01

// OscillatorModule drives the SOM 828 or SOM 828-D slot.
type OscillatorModule struct {
	SlotID int
	Type   ModuleType

	dev    *device
	status OscillatorStatus
}

// OscillatorStatus is a snapshot of the oscillator registers.
// ClockFrequencyMHz is zero unless the internal base clock drives the module.
// Channels is only read from a SOMD and is nil otherwise.
type OscillatorStatus struct {
	SlotID            int
	Type              ModuleType
	TriggerCode       int
	TriggerMode       string
	Divider           int
	ClockFrequencyMHz float64
	Presync           int
	MaskSync          int
	BurstArray        [Channels]int
	OutputEnabled     []int
	SyncEnabled       []int
	SyncMaskInverted  bool
	SequencerMode     int
	SequencerModeName string
	AuxOut            bool
	Channels          []ChannelConfig
}

// ChannelConfig is one SOMD output. A channel is either delayed (DelayNs and
// AmplitudeAU, the fine delay steps) or combines the sequencer channels listed
// in Combines.
type ChannelConfig struct {
	DelayNs     float64
	AmplitudeAU int
	Combines    []int
	Masked      bool
}

// Delayed reports whether the channel runs in delayed mode.
func (c ChannelConfig) Delayed() bool { return c.Combines == nil }

func channelFromInfo(info SeqOutputInfo) ChannelConfig {
	if info.Delayed && !info.ForceUndelayed {
		return ChannelConfig{DelayNs: info.CoarseDelayNs, AmplitudeAU: info.FineDelay}
	}
	return ChannelConfig{Combines: MaskChannels(info.Combi), Masked: info.Masked}
}

// Status returns the snapshot taken by the last GetCurrentStatus.
func (o *OscillatorModule) Status() OscillatorStatus { return o.status }

// GetCurrentStatus reads the module and refreshes the held snapshot.
func (o *OscillatorModule) GetCurrentStatus() (OscillatorStatus, error) {
	d := o.dev
	if err := d.checkOpen(); err != nil {
		return OscillatorStatus{}, err
	}
	st := OscillatorStatus{SlotID: o.SlotID, Type: o.Type}

	trig, err := d.lib.GetFreqTrigMode(d.index, o.SlotID, o.Type)
	if err != nil {
		return OscillatorStatus{}, err
	}
	st.TriggerCode = trig
	if st.TriggerMode, err = d.lib.DecodeFreqTrigMode(d.index, o.SlotID, o.Type, trig); err != nil {
		return OscillatorStatus{}, err
	}

	burst, err := d.lib.GetBurstValues(d.index, o.SlotID, o.Type)
	if err != nil {
		return OscillatorStatus{}, err
	}
	st.Divider, st.Presync, st.MaskSync = burst.Divider, burst.Presync, burst.MaskSync
	if trig == FreqTrigInternal {
		st.ClockFrequencyMHz = FrequencyFromDivider(burst.Divider)
	}

	if st.BurstArray, err = d.lib.GetBurstLengthArray(d.index, o.SlotID, o.Type); err != nil {
		return OscillatorStatus{}, err
	}

	out, sync, inverse, err := d.lib.GetOutNSyncEnable(d.index, o.SlotID, o.Type)
	if err != nil {
		return OscillatorStatus{}, err
	}
	st.OutputEnabled, st.SyncEnabled, st.SyncMaskInverted = MaskChannels(out), MaskChannels(sync), inverse

	if st.AuxOut, st.SequencerMode, err = d.lib.GetAUXIOSequencerCtrl(d.index, o.SlotID, o.Type); err != nil {
		return OscillatorStatus{}, err
	}
	if st.SequencerModeName, err = d.lib.DecodeAUXINSequencerCtrl(o.Type, st.SequencerMode); err != nil {
		return OscillatorStatus{}, err
	}

	if o.Type == ModuleSOMD {
		st.Channels = make([]ChannelConfig, Channels)
		for ch := range st.Channels {
			info, err := d.lib.SOMDGetSeqOutputInfos(d.index, o.SlotID, ch)
			if err != nil {
				return OscillatorStatus{}, err
			}
			st.Channels[ch] = channelFromInfo(info)
		}
	}

	o.status = st
	return st, nil
}

// SetClockInternal switches to the internal 80 MHz base clock and programs
// the divider nearest to freqMHz. Presync and mask-sync are kept. It returns
// the frequency actually produced.
func (o *OscillatorModule) SetClockInternal(freqMHz float64) (float64, error) {
	d := o.dev
	if err := d.checkOpen(); err != nil {
		return 0, err
	}
	divider, err := NearestDivider(freqMHz, MaxDivider(o.Type))
	if err != nil {
		return 0, err
	}
	if err := d.lib.SetFreqTrigMode(d.index, o.SlotID, o.Type, FreqTrigInternal); err != nil {
		return 0, err
	}
	burst, err := d.lib.GetBurstValues(d.index, o.SlotID, o.Type)
	if err != nil {
		return 0, err
	}
	burst.Divider = divider
	if err := d.lib.SetBurstValues(d.index, o.SlotID, o.Type, burst); err != nil {
		return 0, err
	}
	return FrequencyFromDivider(divider), nil
}

// SetPresync sets the sync pre-trigger count and the sync mask, keeping the
// divider.
func (o *OscillatorModule) SetPresync(presync, maskSync int) error {
	d := o.dev
	if err := d.checkOpen(); err != nil {
		return err
	}
	if presync < 0 || presync > math.MaxUint8 {
		return invalidParam("presync", presync, "must be within [0,255]")
	}
	if maskSync < 0 || maskSync > math.MaxUint8 {
		return invalidParam("mask sync", maskSync, "must be within [0,255]")
	}
	burst, err := d.lib.GetBurstValues(d.index, o.SlotID, o.Type)
	if err != nil {
		return err
	}
	burst.Presync, burst.MaskSync = presync, maskSync
	return d.lib.SetBurstValues(d.index, o.SlotID, o.Type, burst)
}

func (o *OscillatorModule) requireSOMD(what string) error {
	if o.Type != ModuleSOMD {
		return fmt.Errorf("%s on %s: %w", what, o.Type, ErrNotSupported)
	}
	return nil
}

// SetDelay puts channel into delayed mode with coarseSteps coarse delay steps
// and fineSteps fine steps. fineSteps above the module maximum are clamped.
// Any combiner on the channel is cleared. It returns the channel as read back
// from the module.
func (o *OscillatorModule) SetDelay(channel, coarseSteps, fineSteps int) (ChannelConfig, error) {
	d := o.dev
	if err := d.checkOpen(); err != nil {
		return ChannelConfig{}, err
	}
	if err := o.requireSOMD("delay"); err != nil {
		return ChannelConfig{}, err
	}
	if err := checkChannel(channel); err != nil {
		return ChannelConfig{}, err
	}
	if coarseSteps < 0 {
		return ChannelConfig{}, invalidParam("coarse delay", coarseSteps, "must not be negative")
	}
	if fineSteps < 0 {
		return ChannelConfig{}, invalidParam("fine delay", fineSteps, "must not be negative")
	}
	stepNs, fineMax, err := o.delayUnits()
	if err != nil {
		return ChannelConfig{}, err
	}
	return o.writeDelay(channel, DelayFromSteps(coarseSteps, stepNs), fineSteps, fineMax)
}

// SetDelayNs is SetDelay with the coarse delay given in nanoseconds. The
// value is floored to the coarse step grid.
func (o *OscillatorModule) SetDelayNs(channel int, delayNs float64, fineSteps int) (ChannelConfig, error) {
	d := o.dev
	if err := d.checkOpen(); err != nil {
		return ChannelConfig{}, err
	}
	if err := o.requireSOMD("delay"); err != nil {
		return ChannelConfig{}, err
	}
	if err := checkChannel(channel); err != nil {
		return ChannelConfig{}, err
	}
	if math.IsNaN(delayNs) || math.IsInf(delayNs, 0) || delayNs < 0 {
		return ChannelConfig{}, invalidParam("delay", delayNs, "must be a non-negative number of ns")
	}
	if fineSteps < 0 {
		return ChannelConfig{}, invalidParam("fine delay", fineSteps, "must not be negative")
	}
	stepNs, fineMax, err := o.delayUnits()
	if err != nil {
		return ChannelConfig{}, err
	}
	steps, err := CoarseSteps(delayNs, stepNs)
	if err != nil {
		return ChannelConfig{}, err
	}
	return o.writeDelay(channel, DelayFromSteps(steps, stepNs), fineSteps, fineMax)
}

// delayUnits returns the coarse step in ns and the largest fine step.
func (o *OscillatorModule) delayUnits() (float64, int, error) {
	d := o.dev
	stepSec, fineMax, err := d.lib.SOMDGetDelayUnits(d.index, o.SlotID)
	if err != nil {
		return 0, 0, err
	}
	return stepSec * 1e9, fineMax, nil
}

func (o *OscillatorModule) writeDelay(channel int, coarseNs float64, fine, fineMax int) (ChannelConfig, error) {
	d := o.dev
	if fine > fineMax {
		fine = fineMax
	}
	info := SeqOutputInfo{
		Delayed:       true,
		Combi:         delayedSource,
		CoarseDelayNs: coarseNs,
		FineDelay:     fine,
	}
	if err := d.lib.SOMDSetSeqOutputInfos(d.index, o.SlotID, channel, info); err != nil {
		return ChannelConfig{}, err
	}
	got, err := d.lib.SOMDGetSeqOutputInfos(d.index, o.SlotID, channel)
	if err != nil {
		return ChannelConfig{}, err
	}
	return channelFromInfo(got), nil
}

// SetCombiner makes channel output the combination of the sequencer channels
// in sources, clearing any delay on it.
func (o *OscillatorModule) SetCombiner(channel int, sources []int, masked bool) error {
	d := o.dev
	if err := d.checkOpen(); err != nil {
		return err
	}
	if err := o.requireSOMD("combiner"); err != nil {
		return err
	}
	if err := checkChannel(channel); err != nil {
		return err
	}
	if len(sources) == 0 {
		return invalidParam("combiner sources", sources, "at least one channel is required")
	}
	mask, err := ChannelMask(sources)
	if err != nil {
		return err
	}
	return d.lib.SOMDSetSeqOutputInfos(d.index, o.SlotID, channel, SeqOutputInfo{Combi: mask, Masked: masked})
}

// SetOutput enables exactly the given output channels.
func (o *OscillatorModule) SetOutput(channels []int) error {
	return o.updateOutNSync(func(out, sync *uint8, _ *bool) error {
		mask, err := ChannelMask(channels)
		*out = mask
		return err
	})
}

// SetSync enables the sync signal for exactly the given channels.
func (o *OscillatorModule) SetSync(channels []int) error {
	return o.updateOutNSync(func(_, sync *uint8, _ *bool) error {
		mask, err := ChannelMask(channels)
		*sync = mask
		return err
	})
}

// SetSyncInverted selects whether the sync mask is inverted.
func (o *OscillatorModule) SetSyncInverted(inverted bool) error {
	return o.updateOutNSync(func(_, _ *uint8, inverse *bool) error {
		*inverse = inverted
		return nil
	})
}

func (o *OscillatorModule) updateOutNSync(update func(out, sync *uint8, inverse *bool) error) error {
	d := o.dev
	if err := d.checkOpen(); err != nil {
		return err
	}
	// validate against zero values first so a bad request makes no call
	var out, sync uint8
	var inverse bool
	if err := update(&out, &sync, &inverse); err != nil {
		return err
	}
	out, sync, inverse, err := d.lib.GetOutNSyncEnable(d.index, o.SlotID, o.Type)
	if err != nil {
		return err
	}
	_ = update(&out, &sync, &inverse)
	return d.lib.SetOutNSyncEnable(d.index, o.SlotID, o.Type, out, sync, inverse)
}

// SetSequencer sets the AUX OUT enable and the AUX IN sequencer mode, one of
// SequencerFreeRunning, SequencerOnAuxHigh, SequencerOnAuxLow or
// SequencerDisabled.
func (o *OscillatorModule) SetSequencer(auxOut bool, mode int) error {
	d := o.dev
	if err := d.checkOpen(); err != nil {
		return err
	}
	if _, err := SequencerName(mode); err != nil {
		return err
	}
	return d.lib.SetAUXIOSequencerCtrl(d.index, o.SlotID, o.Type, auxOut, mode)
}

// SetBurstArray sets the burst length of every sequencer channel.
func (o *OscillatorModule) SetBurstArray(lengths [Channels]int) error {
	d := o.dev
	if err := d.checkOpen(); err != nil {
		return err
	}
	for ch, l := range lengths {
		if l < 0 || l > MaxBurstLength {
			return invalidParam(fmt.Sprintf("burst length of channel %d", ch), l,
				fmt.Sprintf("must be within [0,%d]", MaxBurstLength))
		}
	}
	return d.lib.SetBurstLengthArray(d.index, o.SlotID, o.Type, lengths)
}
