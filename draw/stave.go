package draw

import (
	"github.com/jsphweid/engrave/constants"
	"github.com/jsphweid/engrave/glyph"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/spacing"
	"github.com/jsphweid/engrave/util"
)

// Staves draws the lines of every stave across the whole flow.
func Staves(l Layout) []model.Instruction {
	var res []model.Instruction
	for _, key := range l.V.Order {
		lines := int(l.V.Lines[key])
		for i := 0; i < lines; i++ {
			y := l.y(key, float64(-(lines-1)+2*i))
			res = append(res, l.Frame.Line(constants.StaveLineWidth, 0, y, l.H.Width, y))
		}
	}
	return res
}

// reach is the vertical extent of a line joining staves first to last. A
// one line stave has no height, so lines through it reach a space either
// side.
func (l Layout) reach(first, last string) (top, bottom float64) {
	top, bottom = l.V.StaveSpan(first).Top, l.V.StaveSpan(last).Bottom
	if l.V.Lines[first] < 2 {
		top--
	}
	if l.V.Lines[last] < 2 {
		bottom++
	}
	return top, bottom
}

// SystemStart joins every stave at the left edge.
func SystemStart(l Layout) []model.Instruction {
	if len(l.V.Order) == 0 {
		return nil
	}
	top, bottom := l.reach(l.V.Order[0], l.V.Order[len(l.V.Order)-1])
	return []model.Instruction{l.Frame.Line(constants.ThinBarlineWidth, 0, top, 0, bottom)}
}

// Barlines draws every barline through each instrument's staves.
func Barlines(l Layout) []model.Instruction {
	var res []model.Instruction
	if spacing.StartsWithRepeat(l.Master) {
		x := l.H.X(0, spacing.SlotRepeatStart)
		for _, inst := range l.V.Instruments {
			res = append(res, Barline(l, model.BarlineStartRepeat, x, inst)...)
		}
	}
	for _, tick := range util.SortedKeys(l.Meter.Barlines) {
		drawType := spacing.BarlineAt(l.Master, tick, l.Meter.Length)
		x := l.H.X(tick, spacing.SlotBarline)
		for _, inst := range l.V.Instruments {
			res = append(res, Barline(l, drawType, x, inst)...)
		}
	}
	return res
}

// Barline draws one barline at x spanning an instrument.
func Barline(l Layout, drawType model.BarlineDrawType, x float64, inst *spacing.InstrumentLayout) []model.Instruction {
	f := l.Frame
	top, bottom := inst.Top, inst.Bottom
	if len(inst.Staves) > 0 {
		top, bottom = l.reach(inst.Staves[0], inst.Staves[len(inst.Staves)-1])
	}
	thin := func(at float64) model.Instruction {
		at += constants.ThinBarlineWidth / 2
		return f.Line(constants.ThinBarlineWidth, at, top, at, bottom)
	}
	thick := func(at float64) model.Instruction {
		at += constants.ThickBarlineWidth / 2
		return f.Line(constants.ThickBarlineWidth, at, top, at, bottom)
	}
	dots := func(at float64) []model.Instruction {
		var res []model.Instruction
		for _, stave := range inst.Staves {
			res = append(res, f.Glyph(at, l.y(stave, 0), glyph.RepeatDots))
		}
		return res
	}
	gap := constants.BarlineGap
	thinW, thickW := constants.ThinBarlineWidth, constants.ThickBarlineWidth

	switch drawType {
	case model.BarlineDouble:
		return []model.Instruction{thin(x), thin(x + thinW + gap)}
	case model.BarlineFinal:
		return []model.Instruction{thin(x), thick(x + thinW + gap)}
	case model.BarlineStartRepeat:
		res := []model.Instruction{thick(x), thin(x + thickW + gap)}
		return append(res, dots(x+thickW+gap+thinW+gap)...)
	case model.BarlineEndRepeat:
		res := dots(x - constants.RepeatDotsWidth - gap)
		return append(res, thin(x), thick(x+thinW+gap))
	case model.BarlineEndStartRepeat:
		res := dots(x - constants.RepeatDotsWidth - gap)
		res = append(res, thin(x), thick(x+thinW+gap), thin(x+thinW+gap+thickW+gap))
		return append(res, dots(x+2*thinW+2*gap+thickW+gap)...)
	}
	return []model.Instruction{thin(x)}
}

// bracketColumns returns the x of the brace, sub bracket and bracket
// columns, nearest the system first.
func bracketColumns(v *spacing.Vertical) (brace, sub, bracket float64) {
	var cursor float64
	if len(v.Braces) > 0 {
		cursor -= constants.BracketGap + constants.BraceWidth
		brace = cursor
	}
	for _, b := range v.Brackets {
		if b.Sub {
			cursor -= constants.BracketGap + constants.SubBracketWidth
			sub = cursor
			break
		}
	}
	cursor -= constants.BracketGap + constants.BracketWidth
	bracket = cursor
	return brace, sub, bracket
}

// Braces draws the brace of every multi stave instrument.
func Braces(l Layout) []model.Instruction {
	var res []model.Instruction
	x, _, _ := bracketColumns(l.V)
	for _, span := range l.V.Braces {
		height := span.Bottom - span.Top
		res = append(res, l.Frame.GlyphSized(x, span.Bottom, glyph.Brace, height))
	}
	return res
}

// Brackets draws brackets in the configured style and sub brackets as
// thin hooked lines.
func Brackets(l Layout) []model.Instruction {
	var res []model.Instruction
	f := l.Frame
	_, subX, x := bracketColumns(l.V)
	for _, b := range l.V.Brackets {
		if b.Sub {
			res = append(res, f.Line(constants.ThinBarlineWidth,
				0, b.Top, subX, b.Top, subX, b.Bottom, 0, b.Bottom))
			continue
		}
		switch l.Engrave.BracketStyle {
		case model.BracketStyleNone:
			continue
		case model.BracketStyleWing:
			res = append(res,
				f.Shape(x, b.Top-0.5, x+constants.BracketWidth, b.Top-0.5, x+constants.BracketWidth, b.Bottom+0.5, x, b.Bottom+0.5),
				f.Glyph(x, b.Top-0.5, glyph.BracketTop),
				f.Glyph(x, b.Bottom+0.5, glyph.BracketBottom),
			)
		default:
			res = append(res, f.Shape(x, b.Top, x+constants.BracketWidth, b.Top, x+constants.BracketWidth, b.Bottom, x, b.Bottom))
		}
	}
	return res
}

// Names sets each instrument's name, right aligned against the brackets.
func Names(l Layout) []model.Instruction {
	var res []model.Instruction
	x := -l.V.Left + l.V.NameWidth
	for _, inst := range l.V.Instruments {
		res = append(res, l.Frame.Text(x, (inst.Top+inst.Bottom)/2, inst.Name, l.Engrave.InstrumentName))
	}
	return res
}

// Title sets the flow title centred above the system.
func Title(l Layout) []model.Instruction {
	if l.Flow == nil || l.Flow.Title == "" {
		return nil
	}
	return []model.Instruction{
		l.Frame.Text(l.H.Width/2, -constants.FlowTitleClearance, l.Flow.Title, l.Engrave.FlowTitle),
	}
}
