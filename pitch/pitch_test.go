package pitch

import (
	"fmt"
	"testing"

	"github.com/jsphweid/engrave/model"
	"github.com/stretchr/testify/assert"
)

func p(i uint8, a model.Accidental) model.Pitch {
	return model.Pitch{Int: i, Accidental: a}
}

func TestSpelling(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, Letter(p(60, model.Natural)))
	assert.Equal(4, Octave(p(60, model.Natural)))

	// B#3 sounds as C4 but sits on the B line of octave 3
	assert.Equal(6, Letter(p(60, model.Sharp)))
	assert.Equal(3, Octave(p(60, model.Sharp)))

	// Cb4 sounds as B3 but sits on C4
	assert.Equal(0, Letter(p(59, model.Flat)))
	assert.Equal(4, Octave(p(59, model.Flat)))

	assert.Equal(1, Letter(p(61, model.Flat)))
	assert.Equal(0, Letter(p(61, model.Sharp)))
}

func TestStepsBetween(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, StepsBetween(p(61, model.Sharp), p(60, model.Natural)))
	assert.Equal(1, StepsBetween(p(61, model.Flat), p(60, model.Natural)))
	assert.Equal(7, StepsBetween(p(72, model.Natural), p(60, model.Natural)))
	assert.Equal(-4, StepsBetween(p(53, model.Natural), p(60, model.Natural)))
}

func TestStepsBetweenIsAntisymmetric(t *testing.T) {
	accidentals := []model.Accidental{model.Flat, model.Natural, model.Sharp}
	for a := uint8(21); a < 109; a += 5 {
		for b := uint8(21); b < 109; b += 7 {
			for _, acc := range accidentals {
				pa, pb := p(a, acc), p(b, model.Natural)
				t.Run(fmt.Sprintf("%v-%v", pa, pb), func(t *testing.T) {
					assert.Equal(t, -StepsBetween(pb, pa), StepsBetween(pa, pb))
				})
			}
		}
	}
}

func TestKeyAccidental(t *testing.T) {
	twoSharps := &model.KeySignature{Offset: 2}
	threeFlats := &model.KeySignature{Offset: -3}

	assert := assert.New(t)
	assert.Equal(model.Sharp, KeyAccidental(twoSharps, 3))
	assert.Equal(model.Sharp, KeyAccidental(twoSharps, 0))
	assert.Equal(model.Natural, KeyAccidental(twoSharps, 4))
	assert.Equal(model.Flat, KeyAccidental(threeFlats, 5))
	assert.Equal(model.Natural, KeyAccidental(threeFlats, 1))
	assert.Equal(model.Natural, KeyAccidental(nil, 3))

	letters, acc := KeyLetters(threeFlats)
	assert.Equal([]int{6, 2, 5}, letters)
	assert.Equal(model.Flat, acc)
}

func TestName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("F#", Name(p(66, model.Sharp)))
	assert.Equal("Gb", Name(p(66, model.Flat)))
	assert.Contains(Label(p(66, model.Flat)), "Gb4")
}

func TestFromMIDI(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.Pitch{Int: 60}, FromMIDI(60))
	assert.Equal(model.Pitch{Int: 61, Accidental: model.Sharp}, FromMIDI(61))
	assert.Equal(model.Pitch{Int: 65}, FromMIDI(65))
	assert.Equal(model.Pitch{Int: 70, Accidental: model.Sharp}, FromMIDI(70))
	assert.Contains(Label(FromMIDI(70)), "A#4(")
}
