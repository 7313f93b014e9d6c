package score

import "github.com/jsphweid/engrave/model"

func (s *Store) insert(trackKey string, e model.Entry) error {
	s.Lock()
	track, ok := s.Tracks[trackKey]
	if !ok {
		s.Unlock()
		return model.Missing("track", trackKey)
	}
	track.Insert(e)
	s.Unlock()
	s.notify()
	return nil
}

func (s *Store) CreateTone(trackKey string, tick, duration model.Tick, pitch model.Pitch) (*model.Tone, error) {
	tone := &model.Tone{
		Key:      newKey(),
		Tick:     tick,
		Duration: duration,
		Pitch:    pitch,
		Velocity: 100,
	}
	return tone, s.insert(trackKey, tone)
}

func (s *Store) CreateClef(trackKey string, tick model.Tick, symbol model.ClefSymbol, pitch model.Pitch, offset int) (*model.Clef, error) {
	clef := &model.Clef{
		Key:      newKey(),
		Tick:     tick,
		Symbol:   symbol,
		Pitch:    pitch,
		Offset:   offset,
		DrawType: model.ClefDrawNormal,
	}
	return clef, s.insert(trackKey, clef)
}

func (s *Store) CreateKeySignature(trackKey string, tick model.Tick, mode model.KeySignatureMode, offset int8) (*model.KeySignature, error) {
	key := &model.KeySignature{Key: newKey(), Tick: tick, Mode: mode, Offset: offset}
	return key, s.insert(trackKey, key)
}

func (s *Store) CreateTimeSignature(trackKey string, tick model.Tick, beats uint8, beatType model.NoteDuration, drawType model.TimeSignatureDrawType) (*model.TimeSignature, error) {
	sig := &model.TimeSignature{Key: newKey(), Tick: tick, Beats: beats, BeatType: beatType, DrawType: drawType}
	return sig, s.insert(trackKey, sig)
}

func (s *Store) CreateBarline(trackKey string, tick model.Tick, drawType model.BarlineDrawType) (*model.Barline, error) {
	barline := &model.Barline{Key: newKey(), Tick: tick, DrawType: drawType}
	return barline, s.insert(trackKey, barline)
}

// Insert adds an entry that already carries its key, as read from a
// score document.
func (s *Store) Insert(trackKey string, e model.Entry) error {
	return s.insert(trackKey, e)
}

func (s *Store) RemoveEntry(trackKey, entryKey string) error {
	s.Lock()
	track, ok := s.Tracks[trackKey]
	if !ok {
		s.Unlock()
		return model.Missing("track", trackKey)
	}
	if !track.Remove(entryKey) {
		s.Unlock()
		return model.Missing("entry", entryKey)
	}
	s.Unlock()
	s.notify()
	return nil
}
