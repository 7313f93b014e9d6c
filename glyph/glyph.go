// Package glyph maps notation symbols to SMuFL codepoints.
package glyph

import (
	"fmt"

	"github.com/jsphweid/engrave/model"
)

const (
	Brace         = "\uE000"
	BracketTop    = "\uE003"
	BracketBottom = "\uE004"
	RepeatDots    = "\uE043"

	ClefG          = "\uE050"
	ClefC          = "\uE05C"
	ClefF          = "\uE062"
	ClefPercussion = "\uE069"

	TimeCommon    = "\uE08A"
	TimeCutCommon = "\uE08B"

	NoteheadDoubleWhole = "\uE0A0"
	NoteheadWhole       = "\uE0A2"
	NoteheadHalf        = "\uE0A3"
	NoteheadBlack       = "\uE0A4"

	AugmentationDot = "\uE1E7"

	AccidentalDoubleFlat  = "\uE264"
	AccidentalFlat        = "\uE260"
	AccidentalNatural     = "\uE261"
	AccidentalSharp       = "\uE262"
	AccidentalDoubleSharp = "\uE263"

	ArticulationAccentAbove   = "\uE4A0"
	ArticulationAccentBelow   = "\uE4A1"
	ArticulationStaccatoAbove = "\uE4A2"
	ArticulationStaccatoBelow = "\uE4A3"
	ArticulationTenutoAbove   = "\uE4A4"
	ArticulationTenutoBelow   = "\uE4A5"
)

// Clef returns the glyph of a clef symbol.
func Clef(symbol model.ClefSymbol) string {
	switch symbol {
	case model.ClefF:
		return ClefF
	case model.ClefC:
		return ClefC
	case model.ClefPercussion:
		return ClefPercussion
	}
	return ClefG
}

// TimeDigits spells a number with the time signature digits E080-E089.
func TimeDigits(n int) string {
	var res []rune
	for _, c := range fmt.Sprintf("%d", n) {
		res = append(res, 0xE080+(c-'0'))
	}
	return string(res)
}

// Notehead picks the head by written value.
func Notehead(value model.NoteDuration) string {
	switch value {
	case model.Whole:
		return NoteheadWhole
	case model.Half:
		return NoteheadHalf
	}
	return NoteheadBlack
}

// Rest runs from the whole rest E4E3 to the 128th rest E4EA.
func Rest(value model.NoteDuration) string {
	return string(rune(0xE4E3 + int(value)))
}

func Accidental(a model.Accidental) string {
	switch a {
	case model.DoubleFlat:
		return AccidentalDoubleFlat
	case model.Flat:
		return AccidentalFlat
	case model.Sharp:
		return AccidentalSharp
	case model.DoubleSharp:
		return AccidentalDoubleSharp
	}
	return AccidentalNatural
}

// Flag returns the flag for an eighth or shorter, or "" when the value has
// no flag.
func Flag(value model.NoteDuration, direction model.StemDirection) string {
	if value < model.Eighth {
		return ""
	}
	code := 0xE240 + 2*int(value-model.Eighth)
	if direction == model.StemDown {
		code++
	}
	return string(rune(code))
}

// Articulation returns the mark placed on the notehead side of the stem.
func Articulation(a model.Articulation, direction model.StemDirection) string {
	above := direction == model.StemDown
	switch a {
	case model.ArticulationAccent:
		if above {
			return ArticulationAccentAbove
		}
		return ArticulationAccentBelow
	case model.ArticulationStaccato:
		if above {
			return ArticulationStaccatoAbove
		}
		return ArticulationStaccatoBelow
	case model.ArticulationTenuto:
		if above {
			return ArticulationTenutoAbove
		}
		return ArticulationTenutoBelow
	}
	return ""
}
