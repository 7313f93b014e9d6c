package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/engrave/model"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PX_PER_MM", "nope")
	t.Setenv("RENDER_WORKERS", "2")

	cfg := Load()

	assert := assert.New(t)
	assert.Equal("8080", cfg.Port)
	assert.InDelta(3.7795, cfg.PxPerMM, 0.001)
	assert.Equal(2, cfg.RenderWorkers)
}

func TestLoadEngraveOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engrave.yaml")
	data := []byte("space: 1.5\nbracketing: small-ensemble\nmax_beam_slant: 1\n")
	if err := os.WriteFile(path, data, 0666); err != nil {
		t.Fatal(err)
	}

	engrave, err := LoadEngrave(path)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(1.5, engrave.Space)
	assert.Equal(model.BracketingSmallEnsemble, engrave.Bracketing)
	assert.Equal(1.0, engrave.MaxBeamSlant)
	assert.Equal(model.DefaultEngrave().BaseNoteSpace, engrave.BaseNoteSpace)
}

func TestLoadEngraveMissingFile(t *testing.T) {
	_, err := LoadEngrave(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
