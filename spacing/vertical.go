package spacing

import (
	"github.com/jsphweid/engrave/constants"
	"github.com/jsphweid/engrave/instrument"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/units"
	"github.com/jsphweid/engrave/util"
)

// Span is a vertical extent in stave spaces, Top above Bottom.
type Span struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

type InstrumentLayout struct {
	Key    string   `json:"key"`
	Name   string   `json:"name"`
	Staves []string `json:"staves"`
	Span
}

type Bracket struct {
	Span
	Sub bool `json:"sub"`
}

// VerticalInput is the flow's instrument order and the text measurement
// needed to reserve room for names.
type VerticalInput struct {
	Flow        *model.Flow
	Players     map[string]*model.Player
	Instruments map[string]*model.Instrument
	Engrave     model.Engrave
	Converter   units.Converter
	Measurer    units.TextMeasurer
}

// Vertical is the y layout of a flow in stave spaces from the top line of
// the first stave.
type Vertical struct {
	Height      float64             `json:"height"`
	Order       []string            `json:"order"`
	Staves      map[string]float64  `json:"staves"`
	Lines       map[string]uint8    `json:"lines"`
	Instruments []*InstrumentLayout `json:"instruments"`
	Brackets    []Bracket           `json:"brackets"`
	Braces      []Span              `json:"braces"`
	NameWidth   float64             `json:"name_width"`
	Left        float64             `json:"left"`
}

// StaveHeight is the distance from the top to the bottom line.
func StaveHeight(lines uint8) float64 {
	if lines < 2 {
		return 0
	}
	return float64(lines - 1)
}

// Y converts a half-line offset on a stave to an absolute y.
func (v *Vertical) Y(stave string, offset float64) float64 {
	return v.Staves[stave] + units.HalfLinesToSpaces(offset)
}

// StaveSpan is the top and bottom line of a stave.
func (v *Vertical) StaveSpan(stave string) Span {
	half := StaveHeight(v.Lines[stave]) / 2
	return Span{Top: v.Staves[stave] - half, Bottom: v.Staves[stave] + half}
}

// VerticalSpacing stacks the staves of every instrument in player order.
// Staves are anchored at their middle line.
func VerticalSpacing(in VerticalInput) (*Vertical, error) {
	v := &Vertical{Staves: make(map[string]float64), Lines: make(map[string]uint8)}

	var y float64
	for _, playerKey := range in.Flow.Players {
		player, ok := in.Players[playerKey]
		if !ok {
			return nil, model.Missing("player", playerKey)
		}
		for _, instrumentKey := range player.Instruments {
			inst, ok := in.Instruments[instrumentKey]
			if !ok {
				return nil, model.Missing("instrument", instrumentKey)
			}
			if len(v.Instruments) > 0 {
				y += in.Engrave.InstrumentSpacing
			}
			layout := &InstrumentLayout{Key: inst.Key, Name: inst.LongName, Staves: inst.Staves}
			layout.Top = y
			for i, staveKey := range inst.Staves {
				stave, ok := in.Flow.Staves[staveKey]
				if !ok {
					return nil, model.Missing("stave", staveKey)
				}
				if i > 0 {
					y += in.Engrave.StaveSpacing
				}
				height := StaveHeight(stave.Lines)
				v.Staves[staveKey] = y + height/2
				v.Lines[staveKey] = stave.Lines
				v.Order = append(v.Order, staveKey)
				y += height
			}
			layout.Bottom = y
			v.Instruments = append(v.Instruments, layout)
		}
	}
	v.Height = y

	v.Braces = braces(v)
	v.Brackets = brackets(in, v)
	v.NameWidth = nameWidth(in, v)
	v.Left = left(v, in.Engrave.BracketStyle)
	return v, nil
}

func braces(v *Vertical) []Span {
	var res []Span
	for _, inst := range v.Instruments {
		if len(inst.Staves) > 1 {
			res = append(res, inst.Span)
		}
	}
	return res
}

func family(in VerticalInput, layout *InstrumentLayout) (instrument.Family, string) {
	inst := in.Instruments[layout.Key]
	def, ok := instrument.Get(inst.ID)
	if !ok {
		return "", inst.ID
	}
	return def.Family, inst.ID
}

// groups splits the instruments into runs sharing the same key.
func groups(layouts []*InstrumentLayout, key func(*InstrumentLayout) string) [][]*InstrumentLayout {
	var res [][]*InstrumentLayout
	for i, l := range layouts {
		if i == 0 || key(layouts[i-1]) != key(l) {
			res = append(res, nil)
		}
		res[len(res)-1] = append(res[len(res)-1], l)
	}
	return res
}

func spanOf(group []*InstrumentLayout) Span {
	return Span{Top: group[0].Top, Bottom: group[len(group)-1].Bottom}
}

// brackets follows the bracketing mode: orchestral brackets each family
// and sub brackets instruments of one type inside it, small ensemble
// brackets every run of single stave instruments.
func brackets(in VerticalInput, v *Vertical) []Bracket {
	e := in.Engrave
	var res []Bracket
	bracketed := func(group []*InstrumentLayout) bool {
		if len(group) > 1 {
			return true
		}
		return e.BracketSingleStaves && len(group[0].Staves) == 1
	}

	switch e.Bracketing {
	case model.BracketingOrchestral:
		byFamily := groups(v.Instruments, func(l *InstrumentLayout) string {
			f, id := family(in, l)
			if f == "" {
				return "id:" + id
			}
			return string(f)
		})
		for _, group := range byFamily {
			if !bracketed(group) {
				continue
			}
			res = append(res, Bracket{Span: spanOf(group)})
			if !e.SubBracket || len(group) < 2 {
				continue
			}
			byID := groups(group, func(l *InstrumentLayout) string {
				_, id := family(in, l)
				return id
			})
			for _, sub := range byID {
				if len(sub) > 1 && len(sub) < len(group) {
					res = append(res, Bracket{Span: spanOf(sub), Sub: true})
				}
			}
		}
	case model.BracketingSmallEnsemble:
		bySize := groups(v.Instruments, func(l *InstrumentLayout) string {
			if len(l.Staves) > 1 {
				return "grand:" + l.Key
			}
			return "single"
		})
		for _, group := range bySize {
			if len(group[0].Staves) > 1 || !bracketed(group) {
				continue
			}
			res = append(res, Bracket{Span: spanOf(group)})
		}
	}
	return res
}

func nameWidth(in VerticalInput, v *Vertical) float64 {
	if in.Measurer == nil {
		return 0
	}
	style := in.Engrave.InstrumentName
	size := in.Converter.SpacesToPx(style.Size)
	var res float64
	for _, inst := range v.Instruments {
		px := in.Measurer.Measure(inst.Name, size, style.Font)
		res = util.Max(res, in.Converter.PxToSpaces(px))
	}
	return res
}

// left is the room reserved before the system start for names, brackets
// and braces. Sub brackets are drawn whatever the bracket style.
func left(v *Vertical, style model.BracketStyle) float64 {
	res := v.NameWidth
	if res > 0 {
		res += constants.InstrumentNameGap
	}
	hasSub := false
	if len(v.Brackets) > 0 && style != model.BracketStyleNone {
		res += constants.BracketWidth + constants.BracketGap
	}
	for _, b := range v.Brackets {
		hasSub = hasSub || b.Sub
	}
	if hasSub {
		res += constants.SubBracketWidth + constants.BracketGap
	}
	if len(v.Braces) > 0 {
		res += constants.BraceWidth + constants.BracketGap
	}
	return res
}
