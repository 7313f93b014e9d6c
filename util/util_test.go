package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[uint32]string{16: "b", 0: "a", 48: "d", 32: "c"}

	assert := assert.New(t)
	assert.Equal([]uint32{0, 16, 32, 48}, SortedKeys(m))
}

func TestMinMaxClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Min(2, 5))
	assert.Equal(5, Max(2, 5))
	assert.Equal(-1.5, Min(-1.5, 0.5))
	assert.Equal(3, Clamp(7, 0, 3))
	assert.Equal(0, Clamp(-7, 0, 3))
	assert.Equal(4.0, Abs(-4.0))
}

func TestSum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint32(10), Sum([]uint32{1, 2, 3, 4}))
	assert.Equal(0.0, Sum([]float64{}))
}
