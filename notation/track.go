package notation

import (
	"sort"
	"strings"

	"github.com/jsphweid/engrave/meter"
	"github.com/jsphweid/engrave/model"
	"golang.org/x/exp/slices"
)

// Notation is one printable glyph span: a chord, a single note or a rest.
type Notation struct {
	Tones    []*model.Tone
	Duration model.Tick
	// tone keys that continue into the next Notation
	Ties map[string]bool
}

func (n *Notation) IsRest() bool {
	return len(n.Tones) == 0
}

func (n *Notation) IsTied(key string) bool {
	return n.Ties[key]
}

func (n *Notation) HasTies() bool {
	return len(n.Ties) > 0
}

func (n *Notation) HasTone(key string) bool {
	for _, tone := range n.Tones {
		if tone.Key == key {
			return true
		}
	}
	return false
}

// Track is the visual decomposition of a model.Track: fragments that cover
// [0, Length) without gaps or overlaps.
type Track struct {
	Key          string
	Length       model.Tick
	Subdivisions uint32
	Events       map[model.Tick]*Notation
	ticks        []model.Tick
}

// NewTrack seeds a single rest spanning the whole flow.
func NewTrack(key string, length model.Tick, subdivisions uint32) *Track {
	t := &Track{
		Key:          key,
		Length:       length,
		Subdivisions: subdivisions,
		Events:       make(map[model.Tick]*Notation),
	}
	if length > 0 {
		t.Events[0] = &Notation{Duration: length, Ties: make(map[string]bool)}
		t.ticks = []model.Tick{0}
	}
	return t
}

// Ticks returns fragment starts ascending.
func (t *Track) Ticks() []model.Tick {
	return t.ticks
}

func (t *Track) At(tick model.Tick) (*Notation, bool) {
	n, ok := t.Events[tick]
	return n, ok
}

// Containing returns the fragment covering tick and its start.
func (t *Track) Containing(tick model.Tick) (model.Tick, *Notation, bool) {
	i := sort.Search(len(t.ticks), func(i int) bool { return t.ticks[i] > tick })
	if i == 0 {
		return 0, nil, false
	}
	start := t.ticks[i-1]
	n := t.Events[start]
	if tick >= start+n.Duration {
		return 0, nil, false
	}
	return start, n, true
}

// Next returns the start of the fragment after the one at tick.
func (t *Track) Next(tick model.Tick) (model.Tick, bool) {
	i := sort.Search(len(t.ticks), func(i int) bool { return t.ticks[i] > tick })
	if i >= len(t.ticks) {
		return 0, false
	}
	return t.ticks[i], true
}

// Previous returns the start of the fragment before the one at tick.
func (t *Track) Previous(tick model.Tick) (model.Tick, bool) {
	i := sort.Search(len(t.ticks), func(i int) bool { return t.ticks[i] >= tick })
	if i == 0 {
		return 0, false
	}
	return t.ticks[i-1], true
}

// Split cuts the fragment covering at into two. Every tone of a split note
// is tied across the cut; rests are never tied.
func (t *Track) Split(at model.Tick) {
	start, n, ok := t.Containing(at)
	if !ok || start == at {
		return
	}
	right := &Notation{
		Tones:    append([]*model.Tone(nil), n.Tones...),
		Duration: start + n.Duration - at,
		Ties:     n.Ties,
	}
	n.Duration = at - start
	n.Ties = make(map[string]bool)
	for _, tone := range n.Tones {
		n.Ties[tone.Key] = true
	}
	t.Events[at] = right
	i := sort.Search(len(t.ticks), func(i int) bool { return t.ticks[i] >= at })
	t.ticks = slices.Insert(t.ticks, i, at)
}

// Pattern draws the track one character per tick: 'o' note start, 'r' rest
// start, ':' last tick of a bar, '_' last tick of a tied fragment, '-'
// otherwise.
func (t *Track) Pattern(m *meter.Meter) string {
	out := make([]byte, t.Length)
	for i := range out {
		out[i] = '-'
	}
	for _, tick := range t.ticks {
		n := t.Events[tick]
		if n.HasTies() && n.Duration > 0 {
			out[tick+n.Duration-1] = '_'
		}
	}
	if m != nil {
		for tick := range m.Barlines {
			if tick > 0 && tick <= t.Length {
				out[tick-1] = ':'
			}
		}
	}
	for _, tick := range t.ticks {
		if t.Events[tick].IsRest() {
			out[tick] = 'r'
		} else {
			out[tick] = 'o'
		}
	}
	return string(out)
}

// Bars splits a pattern at its barlines for display.
func Bars(pattern string) []string {
	var res []string
	var b strings.Builder
	for _, c := range pattern {
		b.WriteRune(c)
		if c == ':' {
			res = append(res, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		res = append(res, b.String())
	}
	return res
}
