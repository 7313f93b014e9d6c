package draw

import (
	"fmt"
	"image/color"

	"github.com/jsphweid/engrave/constants"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/units"
	"golang.org/x/image/colornames"
)

// MusicFont is the SMuFL font front ends are expected to load.
const MusicFont = "Bravura"

var ink = Hex(colornames.Black)

func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Frame places stave space coordinates relative to the system origin on
// the page and emits pixel instructions.
type Frame struct {
	Converter units.Converter
	X, Y      float64 // system origin in spaces from the page corner
}

func (f Frame) point(x, y float64) model.Point {
	return model.Point{
		X: f.Converter.SpacesToPx(f.X + x),
		Y: f.Converter.SpacesToPx(f.Y + y),
	}
}

// Line joins points given as x, y pairs in spaces.
func (f Frame) Line(width float64, xy ...float64) model.Instruction {
	res := model.Instruction{
		Kind:  model.InstructionLine,
		Color: ink,
		Width: f.Converter.SpacesToPx(width),
	}
	for i := 0; i+1 < len(xy); i += 2 {
		res.Points = append(res.Points, f.point(xy[i], xy[i+1]))
	}
	return res
}

// Shape is a filled polygon.
func (f Frame) Shape(xy ...float64) model.Instruction {
	res := f.Line(0, xy...)
	res.Kind = model.InstructionShape
	res.Width = 0
	return res
}

// Curve is a quadratic curve through start, control and end points,
// thickest in the middle.
func (f Frame) Curve(thickness float64, xy ...float64) model.Instruction {
	res := f.Line(thickness, xy...)
	res.Kind = model.InstructionCurve
	return res
}

func (f Frame) Circle(x, y, radius float64) model.Instruction {
	p := f.point(x, y)
	return model.Instruction{
		Kind:   model.InstructionCircle,
		Color:  ink,
		X:      p.X,
		Y:      p.Y,
		Radius: f.Converter.SpacesToPx(radius),
	}
}

// Text sets a string at size stave spaces.
func (f Frame) Text(x, y float64, value string, style model.TextStyle) model.Instruction {
	p := f.point(x, y)
	return model.Instruction{
		Kind:    model.InstructionText,
		Color:   ink,
		X:       p.X,
		Y:       p.Y,
		Value:   value,
		Font:    style.Font,
		Size:    f.Converter.SpacesToPx(style.Size),
		Justify: style.Justify,
		Align:   style.Align,
	}
}

// Glyph sets a music font glyph with its origin at x, y.
func (f Frame) Glyph(x, y float64, value string) model.Instruction {
	return f.GlyphSized(x, y, value, constants.GlyphSize)
}

func (f Frame) GlyphSized(x, y float64, value string, size float64) model.Instruction {
	return f.Text(x, y, value, model.TextStyle{
		Font:    MusicFont,
		Size:    size,
		Justify: model.JustifyStart,
		Align:   model.AlignMiddle,
	})
}
