package controlsvc

import (
	"github.com/sepiawrapper/sepia2-go/internal/controlsvc/pb"
	"github.com/sepiawrapper/sepia2-go/sepia2"
)

func laserStatusToProto(st sepia2.LaserStatus) *pb.LaserStatus {
	return &pb.LaserStatus{
		SlotId:                   int32(st.SlotID),
		Type:                     string(st.Type),
		TriggerCode:              int32(st.TriggerCode),
		TriggerMode:              st.TriggerMode,
		Pulsed:                   st.Pulsed,
		HeadType:                 st.HeadType,
		Intensity:                st.Intensity,
		OperationMode:            st.OperationMode,
		OperationFrequencyMhz:    st.OperationFrequencyMHz,
		WavelengthIndex:          int32(st.WavelengthIndex),
		WavelengthNm:             int32(st.WavelengthNm),
		MinFrequencyMhz:          st.MinFrequencyMHz,
		MaxFrequencyMhz:          st.MaxFrequencyMHz,
		TriggerLevelMv:           int32(st.TriggerLevelMV),
		TriggerLevelMinMv:        int32(st.TriggerLevelLimits.MinMV),
		TriggerLevelMaxMv:        int32(st.TriggerLevelLimits.MaxMV),
		TriggerLevelResolutionMv: int32(st.TriggerLevelLimits.ResolutionMV),
		GatingOnTimeNs:           int32(st.Gating.OnTimeNs),
		GatingOffTimeFactor:      int32(st.Gating.OffTimeFactor),
		GatingEnabled:            st.Gating.Enabled,
		GatingMinOnTimeNs:        int32(st.GatingLimits.MinOnTimeNs),
		GatingMaxOnTimeNs:        int32(st.GatingLimits.MaxOnTimeNs),
		GatingMinOffTimeFactor:   int32(st.GatingLimits.MinOffTimeFactor),
		GatingMaxOffTimeFactor:   int32(st.GatingLimits.MaxOffTimeFactor),
		GateHighImpedance:        st.GateHighImpedance,
	}
}

func oscillatorStatusToProto(st sepia2.OscillatorStatus) *pb.OscillatorStatus {
	out := &pb.OscillatorStatus{
		SlotId:            int32(st.SlotID),
		Type:              string(st.Type),
		TriggerCode:       int32(st.TriggerCode),
		TriggerMode:       st.TriggerMode,
		Divider:           int32(st.Divider),
		ClockFrequencyMhz: st.ClockFrequencyMHz,
		Presync:           int32(st.Presync),
		MaskSync:          int32(st.MaskSync),
		BurstArray:        int32s(st.BurstArray[:]),
		OutputEnabled:     int32s(st.OutputEnabled),
		SyncEnabled:       int32s(st.SyncEnabled),
		SyncMaskInverted:  st.SyncMaskInverted,
		SequencerMode:     int32(st.SequencerMode),
		SequencerModeName: st.SequencerModeName,
		AuxOut:            st.AuxOut,
	}
	for _, c := range st.Channels {
		out.Channels = append(out.Channels, &pb.ChannelConfig{
			Delayed:     c.Delayed(),
			DelayNs:     c.DelayNs,
			AmplitudeAu: int32(c.AmplitudeAU),
			Combines:    int32s(c.Combines),
			Masked:      c.Masked,
		})
	}
	return out
}

func int32s(in []int) []int32 {
	if in == nil {
		return nil
	}
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}
	return out
}
