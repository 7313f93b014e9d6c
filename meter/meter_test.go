package meter

import (
	"fmt"
	"testing"

	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/util"
	"github.com/stretchr/testify/assert"
)

func master(entries ...model.Entry) *model.Track {
	track := model.NewTrack("master")
	for _, e := range entries {
		track.Insert(e)
	}
	return track
}

func sig(tick model.Tick, beats uint8, beatType model.NoteDuration) *model.TimeSignature {
	return &model.TimeSignature{
		Key:      fmt.Sprintf("sig-%d", tick),
		Tick:     tick,
		Beats:    beats,
		BeatType: beatType,
		DrawType: model.TimeDrawNormal,
	}
}

func TestGroupings(t *testing.T) {
	cases := map[uint8][]uint8{
		1:  {1},
		2:  {1, 1},
		3:  {1, 1, 1},
		4:  {2, 2},
		5:  {3, 2},
		6:  {3, 3},
		7:  {3, 2, 2},
		8:  {3, 3, 2},
		9:  {3, 3, 3},
		11: {3, 3, 3, 2},
		12: {3, 3, 3, 3},
	}
	for beats, want := range cases {
		t.Run(fmt.Sprintf("%d beats", beats), func(t *testing.T) {
			got := Groupings(beats)
			assert.Equal(t, want, got)
			var total uint8
			for _, g := range got {
				total += g
			}
			assert.Equal(t, beats, total)
		})
	}
	assert.Empty(t, Groupings(0))
}

func TestDefaultsToFourFour(t *testing.T) {
	m := Derive(nil, 128, 16)

	assert := assert.New(t)
	assert.Equal([]model.Tick{0, 64}, m.BarStarts())
	assert.Equal([]model.Tick{64, 128}, util.SortedKeys(m.Barlines))
	assert.Equal([]model.Tick{0, 32, 64, 96}, util.SortedKeys(m.Groupings))
	assert.Equal(model.TimeDrawHidden, m.TimeSignatureAt(10).DrawType)
}

func TestCompoundAndComplexGroupings(t *testing.T) {
	assert := assert.New(t)

	sixEight := Derive(master(sig(0, 6, model.Eighth)), 96, 16)
	assert.Equal([]model.Tick{0, 48}, sixEight.BarStarts())
	assert.Equal([]model.Tick{0, 24, 48, 72}, util.SortedKeys(sixEight.Groupings))

	sevenEight := Derive(master(sig(0, 7, model.Eighth)), 56, 16)
	assert.Equal([]model.Tick{0, 24, 40}, util.SortedKeys(sevenEight.Groupings))

	threeFour := Derive(master(sig(0, 3, model.Quarter)), 48, 16)
	assert.Equal([]model.Tick{0, 16, 32}, util.SortedKeys(threeFour.Groupings))
}

func TestSignatureChangeReflows(t *testing.T) {
	m := Derive(master(sig(0, 4, model.Quarter), sig(64, 3, model.Quarter)), 208, 16)

	assert := assert.New(t)
	assert.Equal([]model.Tick{0, 64, 112, 160}, m.BarStarts())
	assert.Equal(uint8(3), m.Bars[112].Beats)

	start, end := m.BarAt(120)
	assert.Equal(model.Tick(112), start)
	assert.Equal(model.Tick(160), end)
	assert.Equal(3, m.BarNumber(120))
}

func TestSignatureChangeMidBarStartsBar(t *testing.T) {
	m := Derive(master(sig(0, 4, model.Quarter), sig(40, 2, model.Quarter)), 104, 16)

	assert.Equal(t, []model.Tick{0, 40, 72}, m.BarStarts())
}

func TestOpenTimeSignature(t *testing.T) {
	m := Derive(master(sig(0, 0, model.Quarter)), 200, 16)

	assert := assert.New(t)
	assert.Equal([]model.Tick{0}, m.BarStarts())
	assert.Equal([]model.Tick{200}, util.SortedKeys(m.Barlines))
	assert.True(m.IsFullBar(0, 200))
}

func TestBarlineEntryReanchors(t *testing.T) {
	m := Derive(master(
		sig(0, 4, model.Quarter),
		&model.Barline{Key: "b", Tick: 48, DrawType: model.BarlineDouble},
	), 176, 16)

	assert.Equal(t, []model.Tick{0, 48, 112}, m.BarStarts())
}

func TestIsFullBar(t *testing.T) {
	m := Derive(nil, 128, 16)

	assert := assert.New(t)
	assert.True(m.IsFullBar(0, 64))
	assert.True(m.IsFullBar(64, 64))
	assert.False(m.IsFullBar(0, 32))
	assert.False(m.IsFullBar(16, 64))
}
