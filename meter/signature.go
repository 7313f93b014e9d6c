package meter

import "github.com/jsphweid/engrave/model"

// DefaultTimeSignature applies when a flow defines none. It is never drawn.
func DefaultTimeSignature() *model.TimeSignature {
	return &model.TimeSignature{
		Key:      "default-time-signature",
		Tick:     0,
		Beats:    4,
		BeatType: model.Quarter,
		DrawType: model.TimeDrawHidden,
	}
}

func TicksPerBeat(sig *model.TimeSignature, subdivisions uint32) model.Tick {
	return sig.BeatType.Ticks(subdivisions)
}

// TicksPerBar is zero for open time signatures.
func TicksPerBar(sig *model.TimeSignature, subdivisions uint32) model.Tick {
	return model.Tick(sig.Beats) * TicksPerBeat(sig, subdivisions)
}

// Groupings splits the beats of a bar into the groups that are felt
// together: 4 -> 2+2, 6 -> 3+3, 7 -> 3+2+2.
func Groupings(beats uint8) []uint8 {
	switch {
	case beats <= 3:
		res := make([]uint8, beats)
		for i := range res {
			res[i] = 1
		}
		return res
	case beats == 4:
		return []uint8{2, 2}
	case beats%3 == 0:
		res := make([]uint8, beats/3)
		for i := range res {
			res[i] = 3
		}
		return res
	}

	var res []uint8
	remaining := beats
	for remaining > 4 {
		res = append(res, 3)
		remaining -= 3
	}
	if remaining == 4 {
		return append(res, 2, 2)
	}
	return append(res, remaining)
}

// IsSimple reports 2, 3 or 4 beats to the bar.
func IsSimple(sig *model.TimeSignature) bool {
	return sig.Beats >= 2 && sig.Beats <= 4
}

// IsCompound reports a multiple of three beats greater than three.
func IsCompound(sig *model.TimeSignature) bool {
	return sig.Beats > 3 && sig.Beats%3 == 0
}

// GroupingOffsets returns the grouping boundaries of a full bar relative to
// its start, beginning with 0 and ending with the bar length.
func GroupingOffsets(sig *model.TimeSignature, subdivisions uint32) []model.Tick {
	beat := TicksPerBeat(sig, subdivisions)
	res := []model.Tick{0}
	var at model.Tick
	for _, g := range Groupings(sig.Beats) {
		at += model.Tick(g) * beat
		res = append(res, at)
	}
	return res
}
