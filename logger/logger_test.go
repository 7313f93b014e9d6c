package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, "warn")
	defer Setup(&bytes.Buffer{}, "info")

	Info("hidden", Fields{"flow": "a"})
	Warn("shown", Fields{"flow": "b"})
	Error("failed", errors.New("boom"), Fields{"stage": "beams"})

	assert := assert.New(t)
	out := buf.String()
	assert.NotContains(out, "hidden")
	assert.Contains(out, "shown")
	assert.Contains(out, "flow=b")
	assert.Contains(out, "error=boom")
	assert.Contains(out, "stage=beams")
	assert.False(IsDebug())
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, "loud")
	defer Setup(&bytes.Buffer{}, "info")

	Info("visible", nil)
	Debug("invisible", nil)

	assert := assert.New(t)
	assert.Contains(buf.String(), "visible")
	assert.NotContains(buf.String(), "invisible")
}
