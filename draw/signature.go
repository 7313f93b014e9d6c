package draw

import (
	"github.com/jsphweid/engrave/chord"
	"github.com/jsphweid/engrave/constants"
	"github.com/jsphweid/engrave/glyph"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/pitch"
	"github.com/jsphweid/engrave/spacing"
)

// semitones above C of each letter
var letterSemitones = [7]uint8{0, 2, 4, 5, 7, 9, 11}

func wrap(v, lo int) int {
	for v < lo {
		v += 7
	}
	for v > lo+6 {
		v -= 7
	}
	return v
}

// KeyOffsets returns where each accidental of a key signature sits on a
// stave with the given clef. Positions follow the treble pattern (sharps
// between G5 and A4, flats between E5 and F4) moved with the clef.
func KeyOffsets(clef *model.Clef, key *model.KeySignature) ([]int, model.Accidental) {
	letters, acc := pitch.KeyLetters(key)
	if len(letters) == 0 || clef.Symbol == model.ClefPercussion {
		return nil, model.Natural
	}
	shift := wrap(chord.ToneOffset(clef, model.Pitch{Int: 67})-2, -3)
	lo := -3 + shift
	if acc == model.Sharp {
		lo = -5 + shift
	}
	res := make([]int, len(letters))
	for i, letter := range letters {
		offset := chord.ToneOffset(clef, model.Pitch{Int: 60 + letterSemitones[letter]})
		res[i] = wrap(offset, lo)
	}
	return res, acc
}

func (l Layout) clefs(stave *model.Stave) *model.Track {
	return l.Tracks[stave.Master]
}

// changes returns the ticks after the flow start where track has an entry
// of kind.
func changes(track *model.Track, kind model.EntryKind, length model.Tick) []model.Tick {
	if track == nil {
		return nil
	}
	var res []model.Tick
	for _, tick := range track.Ticks() {
		if tick > 0 && tick < length && track.EntryOnTick(kind, tick) != nil {
			res = append(res, tick)
		}
	}
	return res
}

// Clefs draws the opening clef of every stave and each clef change.
func Clefs(l Layout) []model.Instruction {
	var res []model.Instruction
	for _, key := range l.V.Order {
		stave := l.Flow.Staves[key]
		master := l.clefs(stave)
		ticks := append([]model.Tick{0}, changes(master, model.KindClef, l.Meter.Length)...)
		for _, tick := range ticks {
			clef := chord.ClefAt(master, tick)
			if clef.DrawType == model.ClefDrawHidden {
				continue
			}
			x := l.H.X(tick, spacing.SlotClef)
			res = append(res, l.Frame.Glyph(x, l.y(key, float64(clef.Offset)), glyph.Clef(clef.Symbol)))
		}
	}
	return res
}

// KeySignatures draws the opening key and each change, cancelling the old
// key with naturals when the new one is C major.
func KeySignatures(l Layout) []model.Instruction {
	if l.Master == nil {
		return nil
	}
	var res []model.Instruction
	ticks := append([]model.Tick{0}, changes(l.Master, model.KindKeySignature, l.Meter.Length)...)
	for _, tick := range ticks {
		key := l.Master.KeySignatureAtTick(tick)
		var previous *model.KeySignature
		if tick > 0 {
			previous = l.Master.KeySignatureAtTick(tick - 1)
		}
		x := l.H.X(tick, spacing.SlotKeySignature)
		for _, staveKey := range l.V.Order {
			clef := chord.ClefAt(l.clefs(l.Flow.Staves[staveKey]), tick)
			offsets, acc := KeyOffsets(clef, key)
			if len(offsets) == 0 && previous != nil {
				offsets, _ = KeyOffsets(clef, previous)
				acc = model.Natural
			}
			for i, offset := range offsets {
				at := x + float64(i)*constants.KeySigAccidental
				res = append(res, l.Frame.Glyph(at, l.y(staveKey, float64(offset)), glyph.Accidental(acc)))
			}
		}
	}
	return res
}

// TimeSignatures draws the opening time signature and each change.
func TimeSignatures(l Layout) []model.Instruction {
	var res []model.Instruction
	ticks := append([]model.Tick{0}, changes(l.Master, model.KindTimeSignature, l.Meter.Length)...)
	for _, tick := range ticks {
		sig := l.Meter.TimeSignatureAt(tick)
		if tick > 0 && sig.Tick != tick {
			continue
		}
		x := l.H.X(tick, spacing.SlotTimeSignature)
		for _, staveKey := range l.V.Order {
			res = append(res, TimeSignature(l, sig, x, staveKey)...)
		}
	}
	return res
}

func TimeSignature(l Layout, sig *model.TimeSignature, x float64, stave string) []model.Instruction {
	f := l.Frame
	switch {
	case sig.DrawType == model.TimeDrawHidden, sig.DrawType == model.TimeDrawOpen, sig.Beats == 0:
		return nil
	case sig.DrawType == model.TimeDrawCommonTime:
		return []model.Instruction{f.Glyph(x, l.y(stave, 0), glyph.TimeCommon)}
	case sig.DrawType == model.TimeDrawSplitCommonTime:
		return []model.Instruction{f.Glyph(x, l.y(stave, 0), glyph.TimeCutCommon)}
	}
	return []model.Instruction{
		f.Glyph(x, l.y(stave, -2), glyph.TimeDigits(int(sig.Beats))),
		f.Glyph(x, l.y(stave, 2), glyph.TimeDigits(1<<int(sig.BeatType))),
	}
}
