package draw

import (
	"github.com/jsphweid/engrave/chord"
	"github.com/jsphweid/engrave/constants"
	"github.com/jsphweid/engrave/glyph"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/notation"
	"github.com/jsphweid/engrave/spacing"
	"github.com/pkg/errors"
)

func noteheadWidth(value model.NoteDuration) float64 {
	if value == model.Whole {
		return constants.WholeNoteheadWidth
	}
	return constants.NoteheadWidth
}

// stemX is the centre of the stem of a chord drawn at x.
func stemX(x float64, direction model.StemDirection) float64 {
	if direction == model.StemUp {
		return x + constants.NoteheadWidth - constants.StemWidth/2
	}
	return x + constants.StemWidth/2
}

func beamed(v Voice, tick model.Tick) bool {
	for _, b := range v.Beams {
		if b.Contains(tick) {
			return true
		}
	}
	return false
}

// Notes draws every event of a voice: rests, noteheads and what hangs off
// them. Beams are drawn separately.
func Notes(l Layout, v Voice) ([]model.Instruction, error) {
	var res []model.Instruction
	for _, tick := range v.Notation.Ticks() {
		n := v.Notation.Events[tick]
		// an empty bar is kept whole whatever its length
		if n.IsRest() && l.Meter.IsFullBar(tick, n.Duration) {
			res = append(res, Rest(l, v, tick, n, model.Whole, 0)...)
			continue
		}
		value, dots, ok := notation.Glyph(n.Duration, v.Notation.Subdivisions)
		if !ok {
			return nil, errors.Wrapf(notation.ErrUnwritable, "%d ticks at tick %d", n.Duration, tick)
		}
		if n.IsRest() {
			res = append(res, Rest(l, v, tick, n, value, dots)...)
			continue
		}
		notes, err := chord.Notes(n, v.Offsets)
		if err != nil {
			return nil, err
		}
		res = append(res, Chord(l, v, tick, n, notes, value, dots)...)
	}
	return res, nil
}

// Rest draws a rest on the middle of the stave. A rest filling a bar is
// drawn as a whole rest centred in the bar.
func Rest(l Layout, v Voice, tick model.Tick, n *notation.Notation, value model.NoteDuration, dots int) []model.Instruction {
	f := l.Frame
	stave := v.Stave.Key
	x := l.H.NoteX(tick)
	if l.Meter.IsFullBar(tick, n.Duration) {
		_, end := l.Meter.BarAt(tick)
		centre := (x + l.H.X(end, spacing.SlotBarline)) / 2
		return []model.Instruction{f.Glyph(centre-constants.WholeNoteheadWidth/2, l.y(stave, -2), glyph.Rest(model.Whole))}
	}
	offset := 0.0
	if value == model.Whole {
		offset = -2
	}
	res := []model.Instruction{f.Glyph(x, l.y(stave, offset), glyph.Rest(value))}
	dx := x + noteheadWidth(value) + constants.DotSpace
	for i := 0; i < dots; i++ {
		res = append(res, f.Glyph(dx, l.y(stave, -1), glyph.AugmentationDot))
		dx += constants.DotWidth
	}
	return res
}

// Chord draws the noteheads of one event together with their
// accidentals, dots, ledger lines, stem, flag, articulation and ties.
func Chord(l Layout, v Voice, tick model.Tick, n *notation.Notation, notes []chord.Note, value model.NoteDuration, dots int) []model.Instruction {
	f := l.Frame
	stave := v.Stave.Key
	x := l.H.NoteX(tick)
	direction := v.Directions[tick]
	if direction == 0 {
		direction = model.StemUp
	}
	width := noteheadWidth(value)
	var res []model.Instruction

	for _, note := range notes {
		shunt := v.Shunts.Tone(tick, note.Tone.Key)
		nx := x + float64(shunt)*width
		y := l.y(stave, float64(note.Offset))
		res = append(res, f.Glyph(nx, y, glyph.Notehead(value)))

		if entry, ok := v.Accidentals.Get(tick, note.Tone.Key); ok && entry.Needed {
			ax := l.H.X(tick, spacing.SlotPreNote) - float64(entry.Slot+1)*constants.AccidentalWidth
			res = append(res, f.Glyph(ax, y, glyph.Accidental(entry.Accidental)))
		}
	}

	res = append(res, Dots(l, v, tick, notes, width, dots)...)
	res = append(res, LedgerLines(l, v, tick, notes, width)...)

	if s, ok := v.Stems[tick]; ok {
		sx := stemX(x, direction)
		res = append(res, f.Line(constants.StemWidth, sx, l.y(stave, float64(s.Head)), sx, l.y(stave, s.Tail)))
		if flag := glyph.Flag(value, direction); flag != "" && !beamed(v, tick) {
			res = append(res, f.Glyph(sx-constants.StemWidth/2, l.y(stave, s.Tail), flag))
		}
	}

	top, bottom := chord.Extremes(notes)
	for _, note := range notes {
		if a := note.Tone.Articulation; a != model.ArticulationNone {
			offset := float64(bottom + 2)
			if direction == model.StemDown {
				offset = float64(top - 2)
			}
			res = append(res, f.Glyph(x, l.y(stave, offset), glyph.Articulation(a, direction)))
			break
		}
	}

	res = append(res, Ties(l, v, tick, n, notes, direction, width)...)
	return res
}

// Dots sit in the space beside each notehead; a note on a line moves its
// dot up a half-line.
func Dots(l Layout, v Voice, tick model.Tick, notes []chord.Note, width float64, dots int) []model.Instruction {
	if dots == 0 {
		return nil
	}
	var res []model.Instruction
	x := l.H.NoteX(tick) + width + constants.DotSpace
	if v.Shunts.HasPost(tick) {
		x += width
	}
	lines := int(l.V.Lines[v.Stave.Key])
	seen := make(map[int]bool)
	for _, note := range notes {
		offset := note.Offset
		if onLine(offset, lines) {
			offset--
		}
		if seen[offset] {
			continue
		}
		seen[offset] = true
		for i := 0; i < dots; i++ {
			dx := x + float64(i)*constants.DotWidth
			res = append(res, l.Frame.Glyph(dx, l.y(v.Stave.Key, float64(offset)), glyph.AugmentationDot))
		}
	}
	return res
}

// onLine reports whether a half-line offset falls on a line, ledger lines
// included. Lines share the parity of the outermost stave line.
func onLine(offset, lines int) bool {
	if lines < 1 {
		return offset%2 == 0
	}
	return (offset+lines-1)%2 == 0
}

// LedgerLines extends the stave above and below a chord.
func LedgerLines(l Layout, v Voice, tick model.Tick, notes []chord.Note, width float64) []model.Instruction {
	lines := int(l.V.Lines[v.Stave.Key])
	if lines < 2 || len(notes) == 0 {
		return nil
	}
	x := l.H.NoteX(tick)
	left, right := x-constants.LedgerLineExtra, x+width+constants.LedgerLineExtra
	if v.Shunts.HasPre(tick) {
		left -= width
	}
	if v.Shunts.HasPost(tick) {
		right += width
	}
	edge := lines - 1
	top, bottom := chord.Extremes(notes)

	var res []model.Instruction
	line := func(offset int) {
		y := l.y(v.Stave.Key, float64(offset))
		res = append(res, l.Frame.Line(constants.LedgerLineWidth, left, y, right, y))
	}
	for offset := -(edge + 2); offset >= top; offset -= 2 {
		line(offset)
	}
	for offset := edge + 2; offset <= bottom; offset += 2 {
		line(offset)
	}
	return res
}

// tieSign is +1 for a tie curving down the page and -1 for one curving up.
// notes are ordered lowest first. A single note ties away from its stem; in
// a chord the lower half curves down, the upper half up and the middle note
// of an odd chord away from the stem.
func tieSign(i, count int, direction model.StemDirection) float64 {
	away := 1.0
	if direction == model.StemDown {
		away = -1
	}
	switch {
	case count%2 == 1 && i == count/2:
		return away
	case i < count/2:
		return 1
	default:
		return -1
	}
}

// Ties run to the next event of the voice, or to the end of the system at
// the end of the flow.
func Ties(l Layout, v Voice, tick model.Tick, n *notation.Notation, notes []chord.Note, direction model.StemDirection, width float64) []model.Instruction {
	if !n.HasTies() {
		return nil
	}
	var res []model.Instruction
	start := l.H.NoteX(tick) + width
	end := l.H.Width
	if next := tick + n.Duration; next < l.Meter.Length {
		end = l.H.NoteX(next)
	}
	for i, note := range notes {
		if !n.IsTied(note.Tone.Key) {
			continue
		}
		sign := tieSign(i, len(notes), direction)
		y := l.y(v.Stave.Key, float64(note.Offset)) + sign*0.5
		res = append(res, l.Frame.Curve(constants.TieThickness,
			start, y, (start+end)/2, y+sign*0.75, end, y))
	}
	return res
}
