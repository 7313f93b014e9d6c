package notation

import (
	"testing"

	"github.com/jsphweid/engrave/model"
	"github.com/stretchr/testify/assert"
)

func TestIsWritable(t *testing.T) {
	writable := []model.Tick{0, 1, 2, 3, 4, 6, 8, 12, 16, 24, 32, 48, 64, 96}
	unwritable := []model.Tick{5, 7, 10, 20, 40, 56, 80, 128}

	assert := assert.New(t)
	for _, d := range writable {
		assert.True(IsWritable(d, 16), "%d", d)
	}
	for _, d := range unwritable {
		assert.False(IsWritable(d, 16), "%d", d)
	}
}

func TestGlyph(t *testing.T) {
	cases := []struct {
		ticks model.Tick
		value model.NoteDuration
		dots  int
	}{
		{64, model.Whole, 0},
		{48, model.Half, 1},
		{16, model.Quarter, 0},
		{12, model.Eighth, 1},
		{4, model.Sixteenth, 0},
		{1, model.SixtyFourth, 0},
	}
	for _, c := range cases {
		value, dots, ok := Glyph(c.ticks, 16)
		assert.True(t, ok)
		assert.Equal(t, c.value, value)
		assert.Equal(t, c.dots, dots)
	}
	_, _, ok := Glyph(5, 16)
	assert.False(t, ok)
}

func TestTripletSubdivisions(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsWritable(3, 12))
	assert.True(IsWritable(9, 12))
	assert.False(IsWritable(1, 12))
	assert.Equal(model.Tick(0), longestWritablePrefix(2, 12))
}

func TestLongestWritablePrefix(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.Tick(64), longestWritablePrefix(80, 16))
	assert.Equal(model.Tick(32), longestWritablePrefix(40, 16))
	assert.Equal(model.Tick(4), longestWritablePrefix(5, 16))
}

func TestIsBeamable(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsBeamable(8, 16))
	assert.True(IsBeamable(12, 16))
	assert.True(IsBeamable(4, 16))
	assert.False(IsBeamable(16, 16))
	assert.False(IsBeamable(0, 16))
}
