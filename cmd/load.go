package cmd

import (
	"path/filepath"
	"strings"

	"github.com/jsphweid/engrave/config"
	"github.com/jsphweid/engrave/file"
	"github.com/jsphweid/engrave/midi"
	"github.com/jsphweid/engrave/render"
	"github.com/jsphweid/engrave/score"
)

// LoadScore reads a score document, or imports a MIDI file by extension.
// ENGRAVE_PATH settings replace the document's own.
func LoadScore(path string) (*score.Store, error) {
	engrave, err := config.LoadEngrave(cfg.EngravePath)
	if err != nil {
		return nil, err
	}

	var s *score.Store
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mid", ".midi":
		s, err = midi.ImportFile(path, engrave)
	default:
		s, err = file.ReadScore(path)
		if err == nil && cfg.EngravePath != "" {
			s.Engrave = engrave
		}
	}
	return s, err
}

func renderOptions() (render.Options, error) {
	opts, err := render.DefaultOptions()
	if err != nil {
		return opts, err
	}
	opts.PxPerMM = cfg.PxPerMM
	return opts, nil
}
