package notation

import (
	"sort"

	"github.com/jsphweid/engrave/model"
)

// written values as multiples of a quarter, whole down to 128th
var fractions = [...]struct {
	num, den uint32
	value    model.NoteDuration
}{
	{4, 1, model.Whole},
	{2, 1, model.Half},
	{1, 1, model.Quarter},
	{1, 2, model.Eighth},
	{1, 4, model.Sixteenth},
	{1, 8, model.ThirtySecond},
	{1, 16, model.SixtyFourth},
	{1, 32, model.OneHundredTwentyEighth},
}

// BaseValue returns the undotted written value of exactly d ticks.
func BaseValue(d model.Tick, subdivisions uint32) (model.NoteDuration, bool) {
	for _, f := range fractions {
		if (subdivisions*f.num)%f.den != 0 {
			continue
		}
		if subdivisions*f.num/f.den == d {
			return f.value, true
		}
	}
	return 0, false
}

// DottedValue returns the written value that, dotted once, lasts d ticks.
func DottedValue(d model.Tick, subdivisions uint32) (model.NoteDuration, bool) {
	if d%3 != 0 {
		return 0, false
	}
	return BaseValue((d/3)*2, subdivisions)
}

// IsWritable reports whether d ticks can be drawn as one glyph, plain or
// dotted. A zero duration is vacuously writable.
func IsWritable(d model.Tick, subdivisions uint32) bool {
	if d == 0 {
		return true
	}
	if _, ok := BaseValue(d, subdivisions); ok {
		return true
	}
	_, ok := DottedValue(d, subdivisions)
	return ok
}

// Glyph returns the written value and dot count for d ticks.
func Glyph(d model.Tick, subdivisions uint32) (value model.NoteDuration, dots int, ok bool) {
	if v, ok := BaseValue(d, subdivisions); ok {
		return v, 0, true
	}
	if v, ok := DottedValue(d, subdivisions); ok {
		return v, 1, true
	}
	return 0, 0, false
}

// writableLengths lists every writable length, longest first.
func writableLengths(subdivisions uint32) []model.Tick {
	var res []model.Tick
	for _, f := range fractions {
		if (subdivisions*f.num)%f.den != 0 {
			continue
		}
		base := subdivisions * f.num / f.den
		if base == 0 {
			continue
		}
		res = append(res, base)
		if base%2 == 0 {
			res = append(res, base+base/2)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i] > res[j] })
	return res
}

// longestWritablePrefix returns the largest writable length shorter than d,
// or 0 when there is none.
func longestWritablePrefix(d model.Tick, subdivisions uint32) model.Tick {
	for _, l := range writableLengths(subdivisions) {
		if l < d {
			return l
		}
	}
	return 0
}

// IsBeamable is any written value of an eighth or shorter, dotted or not.
func IsBeamable(d model.Tick, subdivisions uint32) bool {
	if d == 0 {
		return false
	}
	if value, _, ok := Glyph(d, subdivisions); ok {
		return value >= model.Eighth
	}
	return d <= model.Eighth.Ticks(subdivisions)
}
