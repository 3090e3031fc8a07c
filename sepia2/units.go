package sepia2

import (
	"fmt"
	"math"
)

const (
	// BaseClockMHz is the SOM/SOMD internal base oscillator.
	BaseClockMHz = 80.0

	// Channels is the number of oscillator outputs / sequencer channels.
	Channels = 8

	MaxDividerSOM  = 255
	MaxDividerSOMD = 65535

	MaxBurstLength = 16777215

	// FreqTrigInternal is the SOM/SOMD trigger source "internal 80 MHz".
	FreqTrigInternal = 2

	// SLM trigger codes 0..5 are internal frequencies, 6 and 7 external edges.
	SLMTriggerRising  = 6
	SLMTriggerFalling = 7
	slmTriggerCodes   = 8

	// PRI operation modes.
	PRIModeOff         = 0
	PRIModeNarrowPulse = 1
	PRIModeBroadPulse  = 2
	PRIModeCW          = 3

	// AUX IN sequencer control.
	SequencerFreeRunning = 0
	SequencerOnAuxHigh   = 1
	SequencerOnAuxLow    = 2
	SequencerDisabled    = 3
)

var slmTriggerNames = [slmTriggerCodes]string{
	"80 MHz (int.)",
	"40 MHz (int.)",
	"20 MHz (int.)",
	"10 MHz (int.)",
	"5 MHz (int.)",
	"2.5 MHz (int.)",
	"rising edge (ext.)",
	"falling edge (ext.)",
}

var sequencerNames = [...]string{
	SequencerFreeRunning: "free running",
	SequencerOnAuxHigh:   "running on AUX IN high",
	SequencerOnAuxLow:    "running on AUX IN low",
	SequencerDisabled:    "disabled",
}

// SLMTriggerName maps an SLM trigger code to its display name.
func SLMTriggerName(code int) (string, error) {
	if code < 0 || code >= slmTriggerCodes {
		return "", invalidParam("trigger mode", code, "SLM supports codes 0..7")
	}
	return slmTriggerNames[code], nil
}

// SLMInternalFrequency returns the repetition rate of an internal SLM
// trigger code; ok is false for the external edge modes.
func SLMInternalFrequency(code int) (mhz float64, ok bool) {
	if code < 0 || code >= SLMTriggerRising {
		return 0, false
	}
	return BaseClockMHz / math.Exp2(float64(code)), true
}

// NearestSLMTrigger picks the internal SLM trigger code closest to mhz.
func NearestSLMTrigger(mhz float64) (int, float64, error) {
	if !finitePositive(mhz) {
		return 0, 0, invalidParam("repetition rate", mhz, "must be a positive number of MHz")
	}
	best, bestDiff := 0, math.Inf(1)
	for code := 0; code < SLMTriggerRising; code++ {
		f, _ := SLMInternalFrequency(code)
		if d := math.Abs(f - mhz); d < bestDiff {
			best, bestDiff = code, d
		}
	}
	f, _ := SLMInternalFrequency(best)
	return best, f, nil
}

// SequencerName maps an AUX IN sequencer control code to text.
func SequencerName(mode int) (string, error) {
	if mode < 0 || mode >= len(sequencerNames) {
		return "", invalidParam("sequencer mode", mode, "must be 0..3")
	}
	return sequencerNames[mode], nil
}

// MaxDivider returns the largest divider a module accepts.
func MaxDivider(t ModuleType) int {
	if t == ModuleSOMD {
		return MaxDividerSOMD
	}
	return MaxDividerSOM
}

// FrequencyFromDivider is the clock produced by base/divider.
func FrequencyFromDivider(divider int) float64 {
	if divider <= 0 {
		return 0
	}
	return BaseClockMHz / float64(divider)
}

// ClockTolerance is the largest relative deviation of BaseClockMHz/divider
// from the requested clock that NearestDivider accepts.
const ClockTolerance = 0.1

// NearestDivider rounds BaseClockMHz/mhz to the nearest integer divider. It
// rejects requests whose divider falls outside [1, maxDivider] and those the
// resulting clock misses by more than ClockTolerance.
func NearestDivider(mhz float64, maxDivider int) (int, error) {
	if !finitePositive(mhz) {
		return 0, invalidParam("frequency", mhz, "must be a positive number of MHz")
	}
	divider := math.Round(BaseClockMHz / mhz)
	if divider < 1 {
		return 0, invalidParam("frequency", mhz, fmt.Sprintf("above base clock %.0f MHz", BaseClockMHz))
	}
	if divider > float64(maxDivider) {
		return 0, invalidParam("frequency", mhz,
			fmt.Sprintf("below %.6f MHz (divider %d)", BaseClockMHz/float64(maxDivider), maxDivider))
	}
	achieved := BaseClockMHz / divider
	if math.Abs(achieved-mhz) > ClockTolerance*mhz {
		return 0, invalidParam("frequency", mhz,
			fmt.Sprintf("nearest clock is %.6f MHz (divider %d), off by more than %.0f%%", achieved, int(divider), ClockTolerance*100))
	}
	return int(divider), nil
}

// IntensityToPerMille converts percent to the raw fine step unit.
func IntensityToPerMille(percent float64) (int, error) {
	if math.IsNaN(percent) || percent < 0 || percent > 100 {
		return 0, invalidParam("intensity", percent, "must be within [0,100] %")
	}
	return int(math.Round(percent * 10)), nil
}

// PerMilleToIntensity converts the raw fine step unit to percent.
func PerMilleToIntensity(perMille int) float64 {
	return float64(perMille) / 10
}

// CoarseSteps floors delayNs to whole coarse steps of stepNs.
func CoarseSteps(delayNs, stepNs float64) (int, error) {
	if math.IsNaN(delayNs) || math.IsInf(delayNs, 0) || delayNs < 0 {
		return 0, invalidParam("delay", delayNs, "must be a non-negative number of ns")
	}
	if !finitePositive(stepNs) {
		return 0, fmt.Errorf("coarse delay step %v ns is not usable", stepNs)
	}
	// tolerate float noise on exact multiples
	return int(math.Floor(delayNs/stepNs + 1e-9)), nil
}

// DelayFromSteps is the inverse of CoarseSteps.
func DelayFromSteps(steps int, stepNs float64) float64 {
	return float64(steps) * stepNs
}

// ChannelMask packs channel indices into the one-bit-per-channel byte used by
// the out/sync enable and combiner registers.
func ChannelMask(channels []int) (uint8, error) {
	var mask uint8
	for _, ch := range channels {
		if ch < 0 || ch >= Channels {
			return 0, &InvalidChannelError{Channel: ch}
		}
		mask |= 1 << uint(ch)
	}
	return mask, nil
}

// MaskChannels unpacks a channel mask in ascending order.
func MaskChannels(mask uint8) []int {
	channels := []int{}
	for ch := 0; ch < Channels; ch++ {
		if mask&(1<<uint(ch)) != 0 {
			channels = append(channels, ch)
		}
	}
	return channels
}

// MHzToHz converts for the PRI frequency registers.
func MHzToHz(mhz float64) int {
	return int(math.Round(mhz * 1e6))
}

// HzToMHz converts from the PRI frequency registers.
func HzToMHz(hz int) float64 {
	return float64(hz) / 1e6
}

func finitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func checkChannel(ch int) error {
	if ch < 0 || ch >= Channels {
		return &InvalidChannelError{Channel: ch}
	}
	return nil
}
