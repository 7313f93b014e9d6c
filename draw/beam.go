package draw

import (
	"github.com/jsphweid/engrave/beam"
	"github.com/jsphweid/engrave/constants"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/notation"
	"github.com/jsphweid/engrave/units"
)

// levels is how many beams a note of the given length carries.
func levels(duration model.Tick, subdivisions uint32) int {
	value, _, ok := notation.Glyph(duration, subdivisions)
	if !ok || value < model.Eighth {
		return 0
	}
	return int(value-model.Eighth) + 1
}

type beamPoint struct {
	x, y float64
}

// Beams draws the primary beam of each group and any secondary beams,
// which break into stubs where a single note carries more levels than its
// neighbours.
func Beams(l Layout, v Voice) []model.Instruction {
	var res []model.Instruction
	for _, b := range v.Beams {
		res = append(res, Beam(l, v, b)...)
	}
	return res
}

func Beam(l Layout, v Voice, b *beam.Beam) []model.Instruction {
	if len(b.Ticks) < 2 {
		return nil
	}
	first, ok := v.Stems[b.Ticks[0]]
	if !ok {
		return nil
	}
	direction := first.Direction
	// beams grow from the stem tips towards the noteheads
	inward := -float64(direction)

	points := make([]beamPoint, len(b.Ticks))
	counts := make([]int, len(b.Ticks))
	for i, tick := range b.Ticks {
		s, ok := v.Stems[tick]
		if !ok {
			return nil
		}
		points[i] = beamPoint{
			x: stemX(l.H.NoteX(tick), direction),
			y: l.y(v.Stave.Key, s.Tail),
		}
		counts[i] = levels(v.Notation.Events[tick].Duration, v.Notation.Subdivisions)
	}

	f := l.Frame
	thickness := inward * constants.BeamThickness
	segment := func(a, b beamPoint, level int) model.Instruction {
		shift := inward * float64(level) * units.HalfLinesToSpaces(constants.BeamGapHalfLines)
		half := constants.StemWidth / 2
		return f.Shape(
			a.x-half, a.y+shift,
			b.x+half, b.y+shift,
			b.x+half, b.y+shift+thickness,
			a.x-half, a.y+shift+thickness,
		)
	}
	along := func(a, b beamPoint, dx float64) beamPoint {
		if b.x == a.x {
			return beamPoint{a.x + dx, a.y}
		}
		return beamPoint{a.x + dx, a.y + (b.y-a.y)*dx/(b.x-a.x)}
	}

	var res []model.Instruction
	for i := 0; i+1 < len(points); i++ {
		res = append(res, segment(points[i], points[i+1], 0))
	}

	deepest := 0
	for _, c := range counts {
		if c > deepest {
			deepest = c
		}
	}
	for level := 2; level <= deepest; level++ {
		for i := 0; i < len(points); {
			if counts[i] < level {
				i++
				continue
			}
			j := i
			for j+1 < len(points) && counts[j+1] >= level {
				j++
			}
			switch {
			case j > i:
				for k := i; k < j; k++ {
					res = append(res, segment(points[k], points[k+1], level-1))
				}
			case i+1 < len(points):
				res = append(res, segment(points[i], along(points[i], points[i+1], constants.NoteheadWidth), level-1))
			default:
				res = append(res, segment(along(points[i], points[i-1], -constants.NoteheadWidth), points[i], level-1))
			}
			i = j + 1
		}
	}
	return res
}
