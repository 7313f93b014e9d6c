package pitch

import (
	"fmt"

	"github.com/jsphweid/engrave/model"
	"gitlab.com/gomidi/midi/v2"
)

// chromatic class -> diatonic step (C=0 .. B=6); black keys fall on the
// step below.
var diatonic = [12]int{0, 0, 1, 1, 2, 3, 3, 4, 4, 5, 5, 6}

var letters = [7]string{"C", "D", "E", "F", "G", "A", "B"}

func natural(p model.Pitch) int {
	return int(p.Int) - int(p.Accidental)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Letter is the diatonic step of the spelled pitch, C=0 .. B=6.
func Letter(p model.Pitch) int {
	n := natural(p)
	return diatonic[n-floorDiv(n, 12)*12]
}

// Octave is the written octave, so B#3 is in octave 3 even though it sounds
// as C4.
func Octave(p model.Pitch) int {
	return floorDiv(natural(p), 12) - 1
}

// Position is an absolute diatonic staff position.
func Position(p model.Pitch) int {
	return Octave(p)*7 + Letter(p)
}

// StepsBetween is how many staff positions a sits above b.
func StepsBetween(a, b model.Pitch) int {
	return Position(a) - Position(b)
}

func accidentalSuffix(a model.Accidental) string {
	switch a {
	case model.DoubleFlat:
		return "bb"
	case model.Flat:
		return "b"
	case model.Sharp:
		return "#"
	case model.DoubleSharp:
		return "x"
	}
	return ""
}

// Label is the spelled name, with the sounding MIDI note alongside.
func Label(p model.Pitch) string {
	spelled := fmt.Sprintf("%s%s%d", letters[Letter(p)], accidentalSuffix(p.Accidental), Octave(p))
	return fmt.Sprintf("%s(%v)", spelled, midi.Note(p.Int))
}

// Name is the spelled name without octave.
func Name(p model.Pitch) string {
	return letters[Letter(p)] + accidentalSuffix(p.Accidental)
}

// FromMIDI spells a MIDI note number, black keys as sharps.
func FromMIDI(n uint8) model.Pitch {
	p := model.Pitch{Int: n}
	if diatonic[n%12] == diatonic[(n+11)%12] {
		p.Accidental = model.Sharp
	}
	return p
}
