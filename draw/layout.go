package draw

import (
	"github.com/jsphweid/engrave/accidental"
	"github.com/jsphweid/engrave/beam"
	"github.com/jsphweid/engrave/chord"
	"github.com/jsphweid/engrave/meter"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/notation"
	"github.com/jsphweid/engrave/spacing"
	"github.com/jsphweid/engrave/stem"
)

// Layout is the derived geometry of one flow.
type Layout struct {
	Frame   Frame
	Flow    *model.Flow
	Master  *model.Track
	Tracks  map[string]*model.Track
	Meter   *meter.Meter
	H       *spacing.Horizontal
	V       *spacing.Vertical
	Engrave model.Engrave
}

// Voice is one notation track and everything derived for it.
type Voice struct {
	Stave       *model.Stave
	Notation    *notation.Track
	Offsets     chord.Offsets
	Directions  map[model.Tick]model.StemDirection
	Stems       map[model.Tick]*stem.Stem
	Beams       []*beam.Beam
	Shunts      *chord.Shunts
	Accidentals *accidental.Accidentals
}

func (l Layout) y(stave string, offset float64) float64 {
	return l.V.Y(stave, offset)
}

// Flow emits the instructions of a whole flow: furniture first, then the
// voices in the order given.
func Flow(l Layout, voices []Voice) ([]model.Instruction, error) {
	var res []model.Instruction
	res = append(res, Title(l)...)
	res = append(res, Names(l)...)
	res = append(res, Braces(l)...)
	res = append(res, Brackets(l)...)
	res = append(res, Staves(l)...)
	res = append(res, SystemStart(l)...)
	res = append(res, Barlines(l)...)
	res = append(res, Clefs(l)...)
	res = append(res, KeySignatures(l)...)
	res = append(res, TimeSignatures(l)...)
	for _, v := range voices {
		notes, err := Notes(l, v)
		if err != nil {
			return nil, err
		}
		res = append(res, notes...)
		res = append(res, Beams(l, v)...)
	}
	return res, nil
}
