// Package file reads score documents: a YAML (or JSON) description of
// players, flows and their entries.
package file

import (
	"os"

	"github.com/google/uuid"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/score"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidDocument = errors.New("invalid score document")

type Player struct {
	Instruments []string `yaml:"instruments"`
}

type Master struct {
	TimeSignatures []model.TimeSignature `yaml:"time_signatures"`
	KeySignatures  []model.KeySignature  `yaml:"key_signatures"`
	Barlines       []model.Barline       `yaml:"barlines"`
}

// Stave entries are addressed by the stave's position in score order:
// every stave of the first player's instruments, then the next player's.
type Stave struct {
	Clefs []model.Clef `yaml:"clefs"`
	Tones []model.Tone `yaml:"tones"`
}

type Flow struct {
	Title        string  `yaml:"title"`
	Length       uint32  `yaml:"length"`
	Subdivisions uint32  `yaml:"subdivisions"`
	Master       Master  `yaml:"master"`
	Staves       []Stave `yaml:"staves"`
}

type Document struct {
	// Engrave overrides the default settings field by field.
	Engrave yaml.Node `yaml:"engrave"`
	Players []Player  `yaml:"players"`
	Flows   []Flow    `yaml:"flows"`
}

func ReadScore(path string) (*score.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read score %v", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load score %v", path)
	}
	return s, nil
}

// Parse builds a score store from a document.
func Parse(data []byte) (*score.Store, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(ErrInvalidDocument, err.Error())
	}

	engrave := model.DefaultEngrave()
	if !doc.Engrave.IsZero() {
		if err := doc.Engrave.Decode(&engrave); err != nil {
			return nil, errors.Wrap(ErrInvalidDocument, err.Error())
		}
	}

	s := score.New(engrave)
	var staves []string
	for i, p := range doc.Players {
		player := s.CreatePlayer()
		for _, id := range p.Instruments {
			inst, err := s.AssignInstrument(player.Key, id)
			if err != nil {
				return nil, errors.Wrapf(err, "player %d", i)
			}
			staves = append(staves, inst.Staves...)
		}
	}

	for i, f := range doc.Flows {
		if f.Length == 0 || f.Subdivisions == 0 {
			return nil, errors.Wrapf(ErrInvalidDocument, "flow %d needs a length and subdivisions", i)
		}
		if len(f.Staves) > len(staves) {
			return nil, errors.Wrapf(ErrInvalidDocument, "flow %d has %d staves, the players have %d", i, len(f.Staves), len(staves))
		}
		flow := s.CreateFlow(f.Title, f.Length, f.Subdivisions)
		if err := insertMaster(s, flow, f.Master); err != nil {
			return nil, errors.Wrapf(err, "flow %d", i)
		}
		for j, stave := range f.Staves {
			if err := insertStave(s, flow, staves[j], stave); err != nil {
				return nil, errors.Wrapf(err, "flow %d stave %d", i, j)
			}
		}
	}
	return s, nil
}

func keyed(key string) string {
	if key == "" {
		return uuid.New().String()
	}
	return key
}

func insertMaster(s *score.Store, flow *model.Flow, m Master) error {
	for _, sig := range m.TimeSignatures {
		sig := sig
		sig.Key = keyed(sig.Key)
		if sig.DrawType == "" {
			sig.DrawType = model.TimeDrawNormal
		}
		if err := s.Insert(flow.Master, &sig); err != nil {
			return err
		}
	}
	for _, key := range m.KeySignatures {
		key := key
		key.Key = keyed(key.Key)
		if key.Mode == "" {
			key.Mode = model.ModeMajor
		}
		if err := s.Insert(flow.Master, &key); err != nil {
			return err
		}
	}
	for _, b := range m.Barlines {
		b := b
		b.Key = keyed(b.Key)
		if b.DrawType == "" {
			b.DrawType = model.BarlineSingle
		}
		if err := s.Insert(flow.Master, &b); err != nil {
			return err
		}
	}
	return nil
}

func insertStave(s *score.Store, flow *model.Flow, staveKey string, stave Stave) error {
	master, err := s.StaveMaster(flow.Key, staveKey)
	if err != nil {
		return err
	}
	voice, err := s.Voice(flow.Key, staveKey)
	if err != nil {
		return err
	}
	for _, clef := range stave.Clefs {
		clef := clef
		clef.Key = keyed(clef.Key)
		if clef.DrawType == "" {
			clef.DrawType = model.ClefDrawNormal
		}
		if err := s.Insert(master, &clef); err != nil {
			return err
		}
	}
	for _, tone := range stave.Tones {
		tone := tone
		if tone.Duration == 0 {
			return errors.Wrapf(ErrInvalidDocument, "tone at tick %d has no duration", tone.Tick)
		}
		tone.Key = keyed(tone.Key)
		if tone.Velocity == 0 {
			tone.Velocity = 100
		}
		if err := s.Insert(voice, &tone); err != nil {
			return err
		}
	}
	return nil
}
