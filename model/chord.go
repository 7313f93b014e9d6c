package model

// Shunt is the horizontal displacement of a notehead inside a chord.
type Shunt int8

const (
	ShuntPre  Shunt = -1
	ShuntNone Shunt = 0
	ShuntPost Shunt = 1
)

func (s Shunt) String() string {
	switch s {
	case ShuntPre:
		return "pre"
	case ShuntPost:
		return "post"
	}
	return "none"
}

type StemDirection int8

const (
	StemUp   StemDirection = -1
	StemDown StemDirection = 1
)

func (d StemDirection) String() string {
	if d == StemUp {
		return "up"
	}
	return "down"
}
