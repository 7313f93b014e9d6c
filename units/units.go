package units

import "github.com/jsphweid/engrave/model"

// Converter turns stave spaces and millimetres into pixels. The layout is
// computed entirely in spaces and converted only when instructions are
// emitted.
type Converter struct {
	Space   float64 // mm per stave space
	PxPerMM float64
}

func NewConverter(engrave model.Engrave, pxPerMM float64) Converter {
	return Converter{Space: engrave.Space, PxPerMM: pxPerMM}
}

func (c Converter) SpacesToPx(spaces float64) float64 {
	return spaces * c.Space * c.PxPerMM
}

func (c Converter) PxToSpaces(px float64) float64 {
	if c.Space == 0 || c.PxPerMM == 0 {
		return 0
	}
	return px / (c.Space * c.PxPerMM)
}

func (c Converter) MMToPx(mm float64) float64 {
	return mm * c.PxPerMM
}

func (c Converter) MMToSpaces(mm float64) float64 {
	if c.Space == 0 {
		return 0
	}
	return mm / c.Space
}

// HalfLinesToSpaces converts a stave position to spaces.
func HalfLinesToSpaces(halfLines float64) float64 {
	return halfLines / 2
}
