package stem

import (
	"github.com/jsphweid/engrave/beam"
	"github.com/jsphweid/engrave/chord"
	"github.com/jsphweid/engrave/constants"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/notation"
	"github.com/jsphweid/engrave/util"
)

// Stem runs from the notehead at Head to Tail, both in half-lines from
// the middle line. Tail is fractional under a slanted beam.
type Stem struct {
	Direction model.StemDirection `json:"direction"`
	Head      int                 `json:"head"`
	Tail      float64             `json:"tail"`
}

func (s *Stem) Length() float64 {
	return util.Abs(s.Tail - float64(s.Head))
}

// Direction lets the note furthest from the middle line decide: below it
// the stem goes up, otherwise down.
func Direction(top, bottom int) model.StemDirection {
	if top+bottom > 0 {
		return model.StemUp
	}
	return model.StemDown
}

// Directions decides the stem direction of every chord of a track. Beamed
// chords share the direction of the furthest note of the whole beam.
func Directions(track *notation.Track, offsets chord.Offsets, beams []*beam.Beam) (map[model.Tick]model.StemDirection, error) {
	res := make(map[model.Tick]model.StemDirection)
	for _, tick := range track.Ticks() {
		n := track.Events[tick]
		if n.IsRest() {
			continue
		}
		notes, err := chord.Notes(n, offsets)
		if err != nil {
			return nil, err
		}
		res[tick] = Direction(chord.Extremes(notes))
	}

	for _, b := range beams {
		top, bottom, err := beamExtremes(track, offsets, b)
		if err != nil {
			return nil, err
		}
		direction := Direction(top, bottom)
		for _, tick := range b.Ticks {
			res[tick] = direction
		}
	}
	return res, nil
}

func beamExtremes(track *notation.Track, offsets chord.Offsets, b *beam.Beam) (top, bottom int, err error) {
	for i, tick := range b.Ticks {
		n, ok := track.At(tick)
		if !ok {
			return 0, 0, model.Missing("beamed fragment", track.Key)
		}
		notes, err := chord.Notes(n, offsets)
		if err != nil {
			return 0, 0, err
		}
		t, bt := chord.Extremes(notes)
		if i == 0 {
			top, bottom = t, bt
			continue
		}
		top = util.Min(top, t)
		bottom = util.Max(bottom, bt)
	}
	return top, bottom, nil
}

// Natural is the unbeamed stem of a chord: a fixed length past the
// outermost note, stretched to reach the middle line.
func Natural(top, bottom int, direction model.StemDirection) *Stem {
	if direction == model.StemUp {
		return &Stem{
			Direction: direction,
			Head:      bottom,
			Tail:      float64(util.Min(top-constants.StemLengthHalfLines, 0)),
		}
	}
	return &Stem{
		Direction: direction,
		Head:      top,
		Tail:      float64(util.Max(bottom+constants.StemLengthHalfLines, 0)),
	}
}

// HasStem is false for rests and for values of a whole note or longer.
func HasStem(n *notation.Notation, subdivisions uint32) bool {
	if n.IsRest() {
		return false
	}
	value, _, ok := notation.Glyph(n.Duration, subdivisions)
	return !ok || value > model.Whole
}

// Stems computes natural stems for every stemmed chord, then refits the
// stems under each beam to a common line.
func Stems(track *notation.Track, offsets chord.Offsets, beams []*beam.Beam, directions map[model.Tick]model.StemDirection, maxSlant float64) (map[model.Tick]*Stem, error) {
	res := make(map[model.Tick]*Stem)
	for _, tick := range track.Ticks() {
		n := track.Events[tick]
		if !HasStem(n, track.Subdivisions) {
			continue
		}
		notes, err := chord.Notes(n, offsets)
		if err != nil {
			return nil, err
		}
		top, bottom := chord.Extremes(notes)
		res[tick] = Natural(top, bottom, directions[tick])
	}

	for _, b := range beams {
		if err := fit(track, offsets, b, res, maxSlant); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// guide is the note the beam follows: the top note under an up beam, the
// bottom one under a down beam.
func guide(notes []chord.Note, direction model.StemDirection) int {
	top, bottom := chord.Extremes(notes)
	if direction == model.StemUp {
		return top
	}
	return bottom
}

// Slant returns the rise of the beam from its first to its last stem in
// half-lines. It is flat when the ends match or when an inner note lies
// beyond both ends.
func Slant(guides []int, direction model.StemDirection, maxSlant float64) float64 {
	if len(guides) < 2 {
		return 0
	}
	first, last := guides[0], guides[len(guides)-1]
	if first == last {
		return 0
	}
	for _, g := range guides[1 : len(guides)-1] {
		if direction == model.StemUp && g < util.Min(first, last) {
			return 0
		}
		if direction == model.StemDown && g > util.Max(first, last) {
			return 0
		}
	}
	return util.Clamp(float64(last-first), -maxSlant, maxSlant)
}

func fit(track *notation.Track, offsets chord.Offsets, b *beam.Beam, stems map[model.Tick]*Stem, maxSlant float64) error {
	guides := make([]int, 0, len(b.Ticks))
	var direction model.StemDirection
	for i, tick := range b.Ticks {
		s, ok := stems[tick]
		if !ok {
			return model.Missing("stem", track.Key)
		}
		if i == 0 {
			direction = s.Direction
		}
		notes, err := chord.Notes(track.Events[tick], offsets)
		if err != nil {
			return err
		}
		guides = append(guides, guide(notes, direction))
	}

	slant := Slant(guides, direction, maxSlant)
	span := float64(b.Stop - b.Start)
	along := func(tick model.Tick) float64 {
		if span == 0 {
			return 0
		}
		return slant * float64(tick-b.Start) / span
	}

	// the beam line sits at base + along(tick); move it until no stem is
	// shorter than its natural length
	var base float64
	for i, tick := range b.Ticks {
		want := stems[tick].Tail - along(tick)
		switch {
		case i == 0:
			base = want
		case direction == model.StemUp:
			base = util.Min(base, want)
		default:
			base = util.Max(base, want)
		}
	}
	for _, tick := range b.Ticks {
		stems[tick].Tail = base + along(tick)
	}
	return nil
}
