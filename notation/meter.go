package notation

import (
	"github.com/jsphweid/engrave/meter"
	"github.com/jsphweid/engrave/model"
)

// span is one node of a bar's metric tree: the bar (depth 0), a grouping
// (depth 1), a beat (depth 2) and binary subdivisions below that.
type span struct {
	a, b  model.Tick
	depth int
}

type divider struct {
	sig          *model.TimeSignature
	subdivisions uint32
}

// newDivider treats two beats to the bar as four of half the length so
// 2/4 divides like 4/8.
func newDivider(sig *model.TimeSignature, subdivisions uint32) *divider {
	if sig.Beats == 2 && sig.BeatType < model.OneHundredTwentyEighth {
		sig = &model.TimeSignature{
			Tick:     sig.Tick,
			Beats:    4,
			BeatType: sig.BeatType + 1,
			DrawType: sig.DrawType,
		}
	}
	return &divider{sig: sig, subdivisions: subdivisions}
}

// children returns the boundaries of the node's children, starting with a
// and ending with b, or nil for a leaf. Single child levels are skipped.
func (d *divider) children(s span) ([]model.Tick, int) {
	var bounds []model.Tick
	switch s.depth {
	case 0:
		for _, offset := range meter.GroupingOffsets(d.sig, d.subdivisions) {
			if s.a+offset < s.b {
				bounds = append(bounds, s.a+offset)
			}
		}
		bounds = append(bounds, s.b)
	case 1:
		beat := meter.TicksPerBeat(d.sig, d.subdivisions)
		if beat == 0 {
			return nil, 0
		}
		for at := s.a; at < s.b; at += beat {
			bounds = append(bounds, at)
		}
		bounds = append(bounds, s.b)
	default:
		length := s.b - s.a
		if length < 2 || length%2 != 0 {
			return nil, 0
		}
		bounds = []model.Tick{s.a, s.a + length/2, s.b}
	}
	if len(bounds) <= 2 {
		return d.children(span{a: s.a, b: s.b, depth: s.depth + 1})
	}
	return bounds, s.depth + 1
}

// splits returns the cut points needed for a fragment [start, end) inside
// node s. Notes may keep centred syncopations and dotted values; rests may
// not.
func (d *divider) splits(start, end model.Tick, s span, rest bool) []model.Tick {
	if start <= s.a && end >= s.b {
		return nil
	}
	bounds, depth := d.children(s)
	if bounds == nil {
		return nil
	}

	var crossed []model.Tick
	for _, c := range bounds[1 : len(bounds)-1] {
		if c > start && c < end {
			crossed = append(crossed, c)
		}
	}
	if len(crossed) == 0 {
		i := childIndex(bounds, start)
		return d.splits(start, end, span{a: bounds[i], b: bounds[i+1], depth: depth}, rest)
	}
	if !rest && IsWritable(end-start, d.subdivisions) && keepWhole(start, end, bounds) {
		return nil
	}

	res := append([]model.Tick(nil), crossed...)
	pieceStart := start
	for _, c := range append(crossed, end) {
		i := childIndex(bounds, pieceStart)
		child := span{a: bounds[i], b: bounds[i+1], depth: depth}
		res = append(res, d.splits(pieceStart, c, child, rest)...)
		pieceStart = c
	}
	return res
}

func childIndex(bounds []model.Tick, tick model.Tick) int {
	for i := 0; i < len(bounds)-1; i++ {
		if tick >= bounds[i] && tick < bounds[i+1] {
			return i
		}
	}
	return len(bounds) - 2
}

func isBound(bounds []model.Tick, tick model.Tick) bool {
	for _, b := range bounds {
		if b == tick {
			return true
		}
	}
	return false
}

// keepWhole holds the exceptions where a writable fragment crossing a child
// boundary still reads well: in a two part node the centred syncopation (quarter, half,
// quarter in 4/4) and the dotted start (dotted half, quarter); in other
// nodes anything aligned to child boundaries and a dotted child value.
func keepWhole(start, end model.Tick, bounds []model.Tick) bool {
	a, b := bounds[0], bounds[len(bounds)-1]
	if len(bounds) == 3 && bounds[1]-a == b-bounds[1] {
		if (b-a)%4 != 0 {
			return false
		}
		q := (b - a) / 4
		return (start == a+q && end == b-q) || (start == a && end == b-q)
	}

	if isBound(bounds, start) && isBound(bounds, end) {
		return true
	}
	child := bounds[1] - bounds[0]
	for i := 1; i < len(bounds)-1; i++ {
		if bounds[i+1]-bounds[i] != child {
			return false
		}
	}
	return child%2 == 0 && isBound(bounds, start) && end == start+child+child/2
}
