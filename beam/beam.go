package beam

import (
	"github.com/jsphweid/engrave/meter"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/notation"
	"github.com/jsphweid/engrave/util"
)

// Beam is a run of beamed fragments. Ticks are fragment starts ascending,
// Start and Stop are the first and last of them.
type Beam struct {
	Start model.Tick   `json:"start"`
	Stop  model.Tick   `json:"stop"`
	Ticks []model.Tick `json:"ticks"`
}

func (b *Beam) Contains(tick model.Tick) bool {
	for _, t := range b.Ticks {
		if t == tick {
			return true
		}
	}
	return false
}

// Beams are grouped by track key.
type Beams = map[string][]*Beam

// All beams every track of a flow.
func All(tracks map[string]*notation.Track, m *meter.Meter) Beams {
	res := make(Beams)
	for _, key := range util.SortedKeys(tracks) {
		res[key] = Track(tracks[key], m)
	}
	return res
}

// Track groups beamable fragments bar by bar. A beam never crosses a
// barline or one of the breaks returned by Breaks.
func Track(track *notation.Track, m *meter.Meter) []*Beam {
	var res []*Beam
	var current []model.Tick
	commit := func() {
		if len(current) > 1 {
			res = append(res, &Beam{
				Start: current[0],
				Stop:  current[len(current)-1],
				Ticks: current,
			})
		}
		current = nil
	}

	starts := m.BarStarts()
	for i, start := range starts {
		end := m.Length
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		breaks := Breaks(track, m.Bars[start], start, end)
		commit()
		for tick := start; tick < end; {
			n, ok := track.At(tick)
			if !ok {
				break
			}
			if breaks[tick] {
				commit()
			}
			if !n.IsRest() && notation.IsBeamable(n.Duration, track.Subdivisions) {
				current = append(current, tick)
			} else {
				commit()
			}
			tick += n.Duration
		}
	}
	commit()
	return res
}

// Breaks returns the ticks inside the bar [start, end) where a beam must
// restart.
func Breaks(track *notation.Track, sig *model.TimeSignature, start, end model.Tick) map[model.Tick]bool {
	res := make(map[model.Tick]bool)
	if sig.Beats == 0 {
		return res
	}
	beat := meter.TicksPerBeat(sig, track.Subdivisions)
	if beat == 0 {
		return res
	}

	var bounds []model.Tick
	for _, offset := range meter.GroupingOffsets(sig, track.Subdivisions) {
		if start+offset < end {
			bounds = append(bounds, start+offset)
		}
	}
	bounds = append(bounds, end)

	switch {
	case sig.BeatType == model.Quarter:
		for i := 0; i+1 < len(bounds); i++ {
			a, b := bounds[i], bounds[i+1]
			res[a] = true
			if breakable(track, a, b) {
				for at := a + beat; at < b; at += beat {
					res[at] = true
				}
			}
		}
	case sig.BeatType < model.Quarter:
		for at := start; at < end; at += beat {
			res[at] = true
		}
	default:
		for i := 1; i+1 < len(bounds); i++ {
			before := bounds[i] - bounds[i-1]
			after := bounds[i+1] - bounds[i]
			if before > beat || after > beat {
				res[bounds[i]] = true
			}
		}
	}
	return res
}

// breakable reports a grouping holding a rest or anything a sixteenth or
// shorter.
func breakable(track *notation.Track, a, b model.Tick) bool {
	sixteenth := model.Sixteenth.Ticks(track.Subdivisions)
	for _, tick := range track.Ticks() {
		if tick < a {
			continue
		}
		if tick >= b {
			break
		}
		n := track.Events[tick]
		if n.IsRest() || n.Duration <= sixteenth {
			return true
		}
	}
	return false
}
