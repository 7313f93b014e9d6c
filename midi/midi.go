// Package midi imports standard MIDI files as scores.
package midi

import (
	"bytes"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/pitch"
	"github.com/jsphweid/engrave/score"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrNoNotes = errors.New("midi file has no notes")

// Subdivisions is the tick resolution of imported flows. Onsets and
// lengths are rounded to it.
const Subdivisions = 16

// split is the lowest note placed on the upper stave of a piano.
const split = 60

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read midi file %v", filepath)
	}
	return Read(bytes.NewReader(dat))
}

// Read parses a standard MIDI file. The parser can panic on malformed
// input, which is returned as an error.
func Read(r io.Reader) (s *smf.SMF, e error) {
	defer func() {
		if rec := recover(); rec != nil {
			s, e = nil, errors.Errorf("could not parse midi file: %v", rec)
		}
	}()
	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse midi file")
	}
	return res, nil
}

type note struct {
	key      uint8
	velocity uint8
	start    int64
	end      int64
}

// notes pairs note ons with note offs per key and channel. A note on with
// velocity zero is a note off.
func notes(track smf.Track) []note {
	var res []note
	open := make(map[[2]uint8]note)
	var absTicks int64
	for _, event := range track {
		absTicks += int64(event.Delta)
		var channel, key, velocity uint8
		switch {
		case event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
			open[[2]uint8{channel, key}] = note{key: key, velocity: velocity, start: absTicks}
		case event.Message.GetNoteOn(&channel, &key, &velocity),
			event.Message.GetNoteOff(&channel, &key, &velocity):
			id := [2]uint8{channel, key}
			if n, ok := open[id]; ok {
				n.end = absTicks
				res = append(res, n)
				delete(open, id)
			}
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].start != res[j].start {
			return res[i].start < res[j].start
		}
		return res[i].key < res[j].key
	})
	return res
}

func quantize(ticks int64, resolution uint32) model.Tick {
	return model.Tick((ticks*Subdivisions + int64(resolution)/2) / int64(resolution))
}

// Import creates one piano player per MIDI track that has notes, in a
// single 4/4 flow long enough for the last note. Notes from middle C up go
// on the upper stave.
func Import(s *score.Store, mf *smf.SMF, title string) (*model.Flow, error) {
	resolution := uint32(960)
	if ticks, ok := mf.TimeFormat.(smf.MetricTicks); ok && ticks > 0 {
		resolution = uint32(ticks)
	}

	var parts [][]note
	var end model.Tick
	for _, track := range mf.Tracks {
		ns := notes(track)
		if len(ns) == 0 {
			continue
		}
		parts = append(parts, ns)
		for _, n := range ns {
			if e := quantize(n.end, resolution); e > end {
				end = e
			}
		}
	}
	if len(parts) == 0 {
		return nil, ErrNoNotes
	}

	bar := model.Tick(4 * Subdivisions)
	length := (end + bar - 1) / bar * bar
	flow := s.CreateFlow(title, length, Subdivisions)
	if _, err := s.CreateTimeSignature(flow.Master, 0, 4, model.Quarter, model.TimeDrawNormal); err != nil {
		return nil, err
	}

	for i, ns := range parts {
		player := s.CreatePlayer()
		piano, err := s.AssignInstrument(player.Key, "keyboards.piano")
		if err != nil {
			return nil, err
		}
		upper, err := s.Voice(flow.Key, piano.Staves[0])
		if err != nil {
			return nil, err
		}
		lower, err := s.Voice(flow.Key, piano.Staves[1])
		if err != nil {
			return nil, err
		}
		for _, n := range ns {
			start, stop := quantize(n.start, resolution), quantize(n.end, resolution)
			if stop <= start {
				stop = start + 1
			}
			voice := upper
			if n.key < split {
				voice = lower
			}
			tone := &model.Tone{
				Key:      uuid.New().String(),
				Tick:     start,
				Duration: stop - start,
				Pitch:    pitch.FromMIDI(n.key),
				Velocity: n.velocity,
			}
			if err := s.Insert(voice, tone); err != nil {
				return nil, errors.Wrapf(err, "track %d", i)
			}
		}
	}
	return flow, nil
}

// ImportFile reads a MIDI file into a new score.
func ImportFile(path string, engrave model.Engrave) (*score.Store, error) {
	mf, err := ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	s := score.New(engrave)
	if _, err := Import(s, mf, ""); err != nil {
		return nil, errors.Wrapf(err, "could not import %v", path)
	}
	return s, nil
}
