package stem

import (
	"fmt"
	"testing"

	"github.com/jsphweid/engrave/beam"
	"github.com/jsphweid/engrave/chord"
	"github.com/jsphweid/engrave/meter"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/notation"
	"github.com/stretchr/testify/assert"
)

func TestDirection(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.StemUp, Direction(6, 6))
	assert.Equal(model.StemDown, Direction(-4, -4))
	assert.Equal(model.StemDown, Direction(0, 0))
	assert.Equal(model.StemDown, Direction(-5, 3))
	assert.Equal(model.StemUp, Direction(-3, 5))
}

func TestNatural(t *testing.T) {
	cases := []struct {
		name        string
		top, bottom int
		direction   model.StemDirection
		head        int
		tail        float64
	}{
		{"middle c up", 6, 6, model.StemUp, 6, -1},
		{"g up", 2, 2, model.StemUp, 2, -5},
		{"ledger note reaches middle line", 8, 8, model.StemUp, 8, 0},
		{"high ledger note reaches middle line", -8, -8, model.StemDown, -8, 0},
		{"chord down", -4, 0, model.StemDown, -4, 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := Natural(c.top, c.bottom, c.direction)

			assert := assert.New(t)
			assert.Equal(c.head, s.Head)
			assert.Equal(c.tail, s.Tail)
			assert.GreaterOrEqual(s.Length(), float64(6))
		})
	}
}

func TestSlant(t *testing.T) {
	cases := []struct {
		name      string
		guides    []int
		direction model.StemDirection
		want      float64
	}{
		{"equal ends", []int{2, 4, 2}, model.StemUp, 0},
		{"rising", []int{6, 4}, model.StemUp, -2},
		{"capped", []int{6, -4}, model.StemUp, -2},
		{"inner note above both ends", []int{6, 2, 4}, model.StemUp, 0},
		{"inner note between ends", []int{6, 5, 4}, model.StemUp, -2},
		{"inner note below both ends down", []int{-6, -1, -4}, model.StemDown, 0},
		{"falling down", []int{-6, -5}, model.StemDown, 1},
		{"single", []int{3}, model.StemUp, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Slant(c.guides, c.direction, 2))
		})
	}
}

func build(t *testing.T, pitches ...uint8) (*notation.Track, chord.Offsets, []*beam.Beam) {
	m := meter.Derive(nil, 64, 16)
	voice := model.NewTrack("voice")
	offsets := make(chord.Offsets)
	for i, p := range pitches {
		tone := &model.Tone{
			Key:      fmt.Sprintf("tone-%d", i),
			Tick:     model.Tick(i) * 8,
			Duration: 8,
			Pitch:    model.Pitch{Int: p},
		}
		voice.Insert(tone)
		offsets[tone.Key] = chord.ToneOffset(chord.DefaultClef(), tone.Pitch)
	}
	track, err := notation.Build(voice, m)
	if err != nil {
		t.Fatal(err)
	}
	return track, offsets, beam.Track(track, m)
}

func TestBeamedStemsShareDirection(t *testing.T) {
	// F5 alone would point down, C4 pulls the beam up
	track, offsets, beams := build(t, 77, 60)

	directions, err := Directions(track, offsets, beams)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(beams, 1)
	assert.Equal(model.StemUp, directions[0])
	assert.Equal(model.StemUp, directions[8])
}

func TestBeamedStems(t *testing.T) {
	cases := []struct {
		name    string
		pitches []uint8
		tails   []float64
	}{
		{"slanted follows the notes", []uint8{60, 64}, []float64{-1, -3}},
		{"contour flattens", []uint8{60, 67, 65, 64}, []float64{-5, -5, -5, -5}},
		{"flat when ends match", []uint8{64, 65, 64, 64}, []float64{-4, -4, -4, -4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			track, offsets, beams := build(t, c.pitches...)
			directions, err := Directions(track, offsets, beams)
			if err != nil {
				t.Fatal(err)
			}

			stems, err := Stems(track, offsets, beams, directions, 2)

			assert := assert.New(t)
			assert.NoError(err)
			for i, want := range c.tails {
				s := stems[model.Tick(i)*8]
				assert.Equal(model.StemUp, s.Direction)
				assert.InDelta(want, s.Tail, 1e-9)
				natural := Natural(s.Head, s.Head, s.Direction)
				assert.GreaterOrEqual(s.Length(), natural.Length())
			}
		})
	}
}

func TestRestsAndWholeNotesHaveNoStem(t *testing.T) {
	m := meter.Derive(nil, 128, 16)
	voice := model.NewTrack("voice")
	voice.Insert(&model.Tone{Key: "whole", Tick: 0, Duration: 64, Pitch: model.Pitch{Int: 60}})
	voice.Insert(&model.Tone{Key: "half", Tick: 64, Duration: 32, Pitch: model.Pitch{Int: 60}})
	track, err := notation.Build(voice, m)
	if err != nil {
		t.Fatal(err)
	}
	offsets := chord.Offsets{"whole": 6, "half": 6}
	directions, err := Directions(track, offsets, nil)
	if err != nil {
		t.Fatal(err)
	}

	stems, err := Stems(track, offsets, nil, directions, 2)

	assert := assert.New(t)
	assert.NoError(err)
	assert.NotContains(stems, model.Tick(0))
	assert.Contains(stems, model.Tick(64))
	assert.NotContains(stems, model.Tick(96))
}
