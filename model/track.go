package model

import (
	"sort"

	"golang.org/x/exp/slices"
)

// Track is a tick indexed collection of entries. Entries of a singleton kind
// (clef, key signature, time signature) replace one another at a tick.
type Track struct {
	Key     string
	entries map[Tick][]Entry
	ticks   []Tick
}

func NewTrack(key string) *Track {
	return &Track{Key: key, entries: make(map[Tick][]Entry)}
}

func isSingleton(k EntryKind) bool {
	return k == KindClef || k == KindKeySignature || k == KindTimeSignature
}

func (t *Track) Insert(e Entry) {
	tick := e.EntryTick()
	existing, ok := t.entries[tick]
	if !ok {
		i := sort.Search(len(t.ticks), func(i int) bool { return t.ticks[i] >= tick })
		t.ticks = slices.Insert(t.ticks, i, tick)
	}
	if isSingleton(e.Kind()) {
		kept := existing[:0]
		for _, other := range existing {
			if other.Kind() != e.Kind() {
				kept = append(kept, other)
			}
		}
		existing = kept
	}
	t.entries[tick] = append(existing, e)
}

// Remove deletes the entry with the given key and reports whether it existed.
func (t *Track) Remove(key string) bool {
	for i, tick := range t.ticks {
		entries := t.entries[tick]
		for j, e := range entries {
			if e.EntryKey() != key {
				continue
			}
			entries = append(entries[:j], entries[j+1:]...)
			if len(entries) == 0 {
				delete(t.entries, tick)
				t.ticks = append(t.ticks[:i], t.ticks[i+1:]...)
			} else {
				t.entries[tick] = entries
			}
			return true
		}
	}
	return false
}

// Get finds an entry anywhere in the track by key.
func (t *Track) Get(key string) (Entry, bool) {
	for _, tick := range t.ticks {
		for _, e := range t.entries[tick] {
			if e.EntryKey() == key {
				return e, true
			}
		}
	}
	return nil, false
}

// Ticks returns the ticks holding at least one entry, ascending.
func (t *Track) Ticks() []Tick {
	return t.ticks
}

func (t *Track) EntriesOnTick(tick Tick) []Entry {
	return t.entries[tick]
}

// EntryOnTick returns the entry of kind placed exactly on tick.
func (t *Track) EntryOnTick(kind EntryKind, tick Tick) Entry {
	for _, e := range t.entries[tick] {
		if e.Kind() == kind {
			return e
		}
	}
	return nil
}

// EntryAtTick scans backwards from tick to the most recent entry of kind.
func (t *Track) EntryAtTick(kind EntryKind, tick Tick) Entry {
	i := sort.Search(len(t.ticks), func(i int) bool { return t.ticks[i] > tick })
	for i--; i >= 0; i-- {
		if e := t.EntryOnTick(kind, t.ticks[i]); e != nil {
			return e
		}
	}
	return nil
}

func (t *Track) TonesAtTick(tick Tick) []*Tone {
	var res []*Tone
	for _, e := range t.entries[tick] {
		if tone, ok := e.(*Tone); ok {
			res = append(res, tone)
		}
	}
	return res
}

// Tones returns every tone in tick order.
func (t *Track) Tones() []*Tone {
	var res []*Tone
	for _, tick := range t.ticks {
		res = append(res, t.TonesAtTick(tick)...)
	}
	return res
}

func (t *Track) ClefAtTick(tick Tick) *Clef {
	if e, ok := t.EntryAtTick(KindClef, tick).(*Clef); ok {
		return e
	}
	return nil
}

func (t *Track) KeySignatureAtTick(tick Tick) *KeySignature {
	if e, ok := t.EntryAtTick(KindKeySignature, tick).(*KeySignature); ok {
		return e
	}
	return nil
}

func (t *Track) TimeSignatureAtTick(tick Tick) *TimeSignature {
	if e, ok := t.EntryAtTick(KindTimeSignature, tick).(*TimeSignature); ok {
		return e
	}
	return nil
}
