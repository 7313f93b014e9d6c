package units

import (
	"testing"

	"github.com/jsphweid/engrave/model"
	"github.com/stretchr/testify/assert"
)

func TestConverter(t *testing.T) {
	c := NewConverter(model.DefaultEngrave(), 4)

	assert := assert.New(t)
	assert.Equal(float64(8), c.SpacesToPx(1))
	assert.Equal(float64(1), c.PxToSpaces(8))
	assert.Equal(float64(40), c.MMToPx(10))
	assert.Equal(float64(5), c.MMToSpaces(10))
	assert.Equal(1.5, HalfLinesToSpaces(3))
	assert.Equal(float64(0), Converter{}.PxToSpaces(10))
}

func TestConverterRoundTrip(t *testing.T) {
	c := Converter{Space: 1.75, PxPerMM: 96 / 25.4}
	for _, x := range []float64{0, 0.5, 1, 12.25, 100} {
		assert.InDelta(t, x, c.PxToSpaces(c.SpacesToPx(x)), 1e-9)
	}
}

func TestFontMeasurer(t *testing.T) {
	m, err := NewFontMeasurer()
	if err != nil {
		t.Fatal(err)
	}

	assert := assert.New(t)
	assert.Equal(float64(0), m.Measure("", 12, "serif"))
	short := m.Measure("Vln.", 12, "serif")
	long := m.Measure("Violin", 12, "serif")
	assert.Greater(short, float64(0))
	assert.Greater(long, short)
	assert.InDelta(long*2, m.Measure("Violin", 24, "serif"), 2)
}

func TestFixedMeasurer(t *testing.T) {
	assert.Equal(t, float64(30), FixedMeasurer{Em: 0.5}.Measure("Violin", 10, ""))
}
