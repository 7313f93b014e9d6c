package model

type Accidental int8

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// Pitch is a MIDI note number plus its spelling. Two pitches with the same
// Int but different accidentals (C#4, Db4) sit on different staff positions.
type Pitch struct {
	Int        uint8      `json:"int" yaml:"int"`
	Accidental Accidental `json:"accidental" yaml:"accidental"`
}

type NoteDuration uint8

const (
	Whole NoteDuration = iota
	Half
	Quarter
	Eighth
	Sixteenth
	ThirtySecond
	SixtyFourth
	OneHundredTwentyEighth
)

// Ticks returns the length of the duration at the given ticks per quarter.
func (d NoteDuration) Ticks(subdivisions uint32) Tick {
	switch d {
	case Whole:
		return subdivisions * 4
	case Half:
		return subdivisions * 2
	case Quarter:
		return subdivisions
	default:
		return subdivisions >> (d - Quarter)
	}
}

// Finer reports whether d is a shorter value than other.
func (d NoteDuration) Finer(other NoteDuration) bool {
	return d > other
}
