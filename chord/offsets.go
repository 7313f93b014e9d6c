package chord

import (
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/pitch"
)

// Offsets maps tone keys to half-line offsets from the middle stave line,
// positive downwards.
type Offsets = map[string]int

// DefaultClef is used where a stave has no clef entry yet.
func DefaultClef() *model.Clef {
	return &model.Clef{
		Key:      "default-clef",
		Symbol:   model.ClefG,
		Pitch:    model.Pitch{Int: 67},
		Offset:   2,
		DrawType: model.ClefDrawNormal,
	}
}

// ClefAt returns the clef active on the stave at tick.
func ClefAt(master *model.Track, tick model.Tick) *model.Clef {
	if master != nil {
		if clef := master.ClefAtTick(tick); clef != nil {
			return clef
		}
	}
	return DefaultClef()
}

func ToneOffset(clef *model.Clef, p model.Pitch) int {
	return clef.Offset + pitch.StepsBetween(clef.Pitch, p)
}

// ToneVerticalOffsets places every tone on the stave against the clef
// active at its onset.
func ToneVerticalOffsets(stave *model.Stave, tracks map[string]*model.Track) (Offsets, error) {
	res := make(Offsets)
	master := tracks[stave.Master]
	for _, key := range stave.Tracks {
		track, ok := tracks[key]
		if !ok {
			return nil, model.Missing("track", key)
		}
		for _, tone := range track.Tones() {
			res[tone.Key] = ToneOffset(ClefAt(master, tone.Tick), tone.Pitch)
		}
	}
	return res, nil
}

// FlowOffsets merges the offsets of every stave of a flow.
func FlowOffsets(flow *model.Flow, tracks map[string]*model.Track) (Offsets, error) {
	res := make(Offsets)
	for _, stave := range flow.Staves {
		offsets, err := ToneVerticalOffsets(stave, tracks)
		if err != nil {
			return nil, err
		}
		for k, v := range offsets {
			res[k] = v
		}
	}
	return res, nil
}
