package spacing

import (
	"math"

	"github.com/jsphweid/engrave/accidental"
	"github.com/jsphweid/engrave/chord"
	"github.com/jsphweid/engrave/constants"
	"github.com/jsphweid/engrave/meter"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/notation"
	"github.com/jsphweid/engrave/util"
)

// Slot is a fixed column inside a tick, in drawing order.
type Slot int

const (
	SlotPaddingStart Slot = iota
	SlotRepeat
	SlotClef
	SlotBarline
	SlotKeySignature
	SlotTimeSignature
	SlotRepeatStart
	SlotAccidentals
	SlotPreNote
	SlotNoteSpacing
	SlotPaddingEnd
	slotCount
)

func (s Slot) String() string {
	return [...]string{
		"padding-start", "repeat", "clef", "barline", "key-signature",
		"time-signature", "repeat-start", "accidentals", "pre-note",
		"note-spacing", "padding-end",
	}[s]
}

type Widths [slotCount]float64

// HorizontalInput is everything that claims room along the flow.
type HorizontalInput struct {
	Meter       *meter.Meter
	Master      *model.Track
	Clefs       []*model.Track
	Tracks      []*notation.Track
	Accidentals *accidental.Accidentals
	Shunts      []*chord.Shunts
	Engrave     model.Engrave
}

// Horizontal is the x layout of a flow in stave spaces, measured from the
// system start.
type Horizontal struct {
	Length model.Tick
	Width  float64
	widths []Widths
	xs     []float64
}

func (h *Horizontal) Widths(tick model.Tick) Widths {
	return h.widths[tick]
}

// X is the left edge of slot at tick.
func (h *Horizontal) X(tick model.Tick, slot Slot) float64 {
	return h.xs[int(tick)*int(slotCount)+int(slot)]
}

// NoteX is where noteheads at tick are drawn.
func (h *Horizontal) NoteX(tick model.Tick) float64 {
	return h.X(tick, SlotNoteSpacing)
}

// BarlineWidth is the drawn width of a barline, repeat dots excluded.
func BarlineWidth(drawType model.BarlineDrawType) float64 {
	switch drawType {
	case model.BarlineDouble:
		return 2*constants.ThinBarlineWidth + constants.BarlineGap
	case model.BarlineFinal, model.BarlineStartRepeat, model.BarlineEndRepeat:
		return constants.ThinBarlineWidth + constants.BarlineGap + constants.ThickBarlineWidth
	case model.BarlineEndStartRepeat:
		return 2*constants.ThinBarlineWidth + 2*constants.BarlineGap + constants.ThickBarlineWidth
	}
	return constants.ThinBarlineWidth
}

// BarlineAt is the barline drawn at tick: an explicit entry if there is
// one, else final at the flow end and single elsewhere.
func BarlineAt(master *model.Track, tick, length model.Tick) model.BarlineDrawType {
	if master != nil {
		if e, ok := master.EntryOnTick(model.KindBarline, tick).(*model.Barline); ok {
			return e.DrawType
		}
	}
	if tick == length {
		return model.BarlineFinal
	}
	return model.BarlineSingle
}

// StartsWithRepeat reports whether the flow opens with a start repeat. It
// is drawn after the opening signatures rather than as a barline, and an
// end repeat at tick 0 has nothing to close.
func StartsWithRepeat(master *model.Track) bool {
	if master == nil {
		return false
	}
	e, ok := master.EntryOnTick(model.KindBarline, 0).(*model.Barline)
	return ok && isStartRepeat(e.DrawType)
}

func isEndRepeat(d model.BarlineDrawType) bool {
	return d == model.BarlineEndRepeat || d == model.BarlineEndStartRepeat
}

func isStartRepeat(d model.BarlineDrawType) bool {
	return d == model.BarlineStartRepeat || d == model.BarlineEndStartRepeat
}

func keySignatureWidth(key *model.KeySignature) float64 {
	if key == nil || key.Offset == 0 {
		return 0
	}
	return float64(util.Abs(int(key.Offset)))*constants.KeySigAccidental + constants.SignaturePadding
}

func timeSignatureWidth(sig *model.TimeSignature) float64 {
	if sig == nil || sig.Beats == 0 || sig.DrawType == model.TimeDrawHidden || sig.DrawType == model.TimeDrawOpen {
		return 0
	}
	return constants.TimeSigWidth + constants.SignaturePadding
}

// NoteSpace is the room given to a gap of gap ticks whose shortest
// sounding fragment lasts shortest ticks.
func NoteSpace(e model.Engrave, gap, shortest model.Tick, subdivisions uint32, tied bool) float64 {
	if gap == 0 || shortest == 0 {
		return 0
	}
	ratio := float64(shortest) / float64(subdivisions)
	space := e.BaseNoteSpace * math.Pow(e.NoteSpaceRatio, math.Log2(ratio)) * float64(gap) / float64(shortest)
	floor := e.MinimumNoteSpacing
	if tied {
		floor = e.MinimumTieSpace
	}
	return math.Max(space, floor)
}

// HorizontalSpacing fills the slot widths of every tick and prefix sums
// them into x positions.
func HorizontalSpacing(in HorizontalInput) *Horizontal {
	m := in.Meter
	length := m.Length
	h := &Horizontal{Length: length, widths: make([]Widths, length+1)}

	h.widths[0][SlotPaddingStart] = in.Engrave.SystemStartPadding
	h.widths[0][SlotClef] = constants.ClefWidth + constants.SignaturePadding
	if in.Master != nil {
		h.widths[0][SlotKeySignature] = keySignatureWidth(in.Master.KeySignatureAtTick(0))
	}
	h.widths[0][SlotTimeSignature] = timeSignatureWidth(m.TimeSignatureAt(0))
	if StartsWithRepeat(in.Master) {
		h.widths[0][SlotRepeatStart] = BarlineWidth(model.BarlineStartRepeat) + constants.BarlinePadding +
			constants.RepeatDotsWidth + constants.BarlineGap
	}

	for tick := model.Tick(1); tick <= length; tick++ {
		w := &h.widths[tick]
		for _, clefs := range in.Clefs {
			if clefs != nil && clefs.EntryOnTick(model.KindClef, tick) != nil && tick < length {
				w[SlotClef] = constants.ClefWidth + constants.SignaturePadding
			}
		}
		if _, ok := m.Barlines[tick]; ok {
			drawType := BarlineAt(in.Master, tick, length)
			if isEndRepeat(drawType) {
				w[SlotRepeat] = constants.RepeatDotsWidth + constants.BarlineGap
			}
			if tick < length {
				w[SlotBarline] = BarlineWidth(drawType) + constants.BarlinePadding
				if isStartRepeat(drawType) {
					w[SlotRepeatStart] = constants.RepeatDotsWidth + constants.BarlineGap
				}
			}
		}
		if in.Master == nil || tick == length {
			continue
		}
		if key, ok := in.Master.EntryOnTick(model.KindKeySignature, tick).(*model.KeySignature); ok {
			w[SlotKeySignature] = math.Max(keySignatureWidth(key), keySignatureWidth(in.Master.KeySignatureAtTick(tick-1)))
		}
		if sig, ok := in.Master.EntryOnTick(model.KindTimeSignature, tick).(*model.TimeSignature); ok {
			w[SlotTimeSignature] = timeSignatureWidth(sig)
		}
	}

	events := eventTicks(in)
	for i, tick := range events {
		next := length
		if i+1 < len(events) {
			next = events[i+1]
		}
		w := &h.widths[tick]
		if in.Accidentals != nil {
			w[SlotAccidentals] = float64(in.Accidentals.Slots(tick)) * constants.AccidentalWidth
		}
		post := false
		for _, s := range in.Shunts {
			if s == nil {
				continue
			}
			if s.HasPre(tick) {
				w[SlotPreNote] = constants.NoteheadWidth
			}
			post = post || s.HasPost(tick)
		}
		w[SlotNoteSpacing] = noteSpacing(in, tick, next, post)
		if _, ok := m.Barlines[next]; ok {
			w[SlotPaddingEnd] = constants.BarEndPadding
		}
	}

	h.xs = make([]float64, len(h.widths)*int(slotCount))
	var x float64
	for tick, w := range h.widths {
		for slot, width := range w {
			h.xs[tick*int(slotCount)+slot] = x
			x += width
		}
	}
	h.Width = h.X(length, SlotBarline) + BarlineWidth(BarlineAt(in.Master, length, length))
	return h
}

// eventTicks is every fragment start of every track, or every bar start
// when the flow has no tracks.
func eventTicks(in HorizontalInput) []model.Tick {
	set := make(map[model.Tick]bool)
	for _, tick := range in.Meter.BarStarts() {
		set[tick] = true
	}
	for _, t := range in.Tracks {
		for _, tick := range t.Ticks() {
			set[tick] = true
		}
	}
	return util.SortedKeys(set)
}

func noteSpacing(in HorizontalInput, tick, next model.Tick, post bool) float64 {
	gap := next - tick
	shortest := gap
	tied := false
	content := constants.NoteheadWidth
	for _, t := range in.Tracks {
		start, n, ok := t.Containing(tick)
		if !ok {
			continue
		}
		shortest = util.Min(shortest, n.Duration)
		if start != tick {
			continue
		}
		tied = tied || n.HasTies()
		if _, dots, ok := notation.Glyph(n.Duration, t.Subdivisions); ok && dots > 0 {
			content = math.Max(content, constants.NoteheadWidth+constants.DotSpace+constants.DotWidth)
		}
	}
	if post {
		content += constants.NoteheadWidth
	}
	space := NoteSpace(in.Engrave, gap, shortest, in.Meter.Subdivisions, tied)
	if content > constants.NoteheadWidth {
		space = math.Max(space, content+constants.DotSpace)
	}
	return space
}
