package accidental

import (
	"sort"

	"github.com/jsphweid/engrave/chord"
	"github.com/jsphweid/engrave/meter"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/notation"
	"github.com/jsphweid/engrave/pitch"
	"github.com/jsphweid/engrave/util"
)

// Memory is the alteration last written at each staff position in the
// current bar.
type Memory map[int]model.Accidental

// IsAccidentalNeeded decides whether p must carry a printed accidental.
// Tie continuations never do. Otherwise an alteration already written in
// the bar wins, then the key signature for the letter.
func IsAccidentalNeeded(p model.Pitch, key *model.KeySignature, memory Memory, tied bool) bool {
	if tied {
		return false
	}
	if written, ok := memory[pitch.Position(p)]; ok {
		return written != p.Accidental
	}
	return p.Accidental != pitch.KeyAccidental(key, pitch.Letter(p))
}

// Entry is the accidental decision for one tone at one fragment.
type Entry struct {
	Accidental model.Accidental `json:"accidental"`
	Needed     bool             `json:"needed"`
	Slot       int              `json:"slot"`
}

type entryKey struct {
	tick model.Tick
	key  string
}

type Accidentals struct {
	entries map[entryKey]Entry
	slots   map[model.Tick]int
}

func New() *Accidentals {
	return &Accidentals{
		entries: make(map[entryKey]Entry),
		slots:   make(map[model.Tick]int),
	}
}

func (a *Accidentals) Get(tick model.Tick, key string) (Entry, bool) {
	e, ok := a.entries[entryKey{tick, key}]
	return e, ok
}

// Slots is the widest accidental column at tick across every stave added.
func (a *Accidentals) Slots(tick model.Tick) int {
	return a.slots[tick]
}

type placed struct {
	key    string
	offset int
}

// AddStave decides the accidentals for every voice of a stave. Memory is
// shared by the voices and cleared at each bar and key change.
func (a *Accidentals) AddStave(stave *model.Stave, tracks map[string]*notation.Track, master *model.Track, m *meter.Meter, offsets chord.Offsets) error {
	ticks := make(map[model.Tick]bool)
	for _, key := range stave.Tracks {
		track, ok := tracks[key]
		if !ok {
			return model.Missing("notation track", key)
		}
		for _, tick := range track.Ticks() {
			ticks[tick] = true
		}
	}

	memory := make(Memory)
	for _, tick := range util.SortedKeys(ticks) {
		if _, ok := m.Bars[tick]; ok {
			memory = make(Memory)
		}
		var key *model.KeySignature
		if master != nil {
			if master.EntryOnTick(model.KindKeySignature, tick) != nil {
				memory = make(Memory)
			}
			key = master.KeySignatureAtTick(tick)
		}

		var needed []placed
		written := make(Memory)
		for _, trackKey := range stave.Tracks {
			track := tracks[trackKey]
			n, ok := track.At(tick)
			if !ok || n.IsRest() {
				continue
			}
			var prev *notation.Notation
			if p, ok := track.Previous(tick); ok {
				prev = track.Events[p]
			}
			for _, tone := range n.Tones {
				tied := prev != nil && prev.IsTied(tone.Key)
				entry := Entry{
					Accidental: tone.Pitch.Accidental,
					Needed:     IsAccidentalNeeded(tone.Pitch, key, memory, tied),
				}
				a.entries[entryKey{tick, tone.Key}] = entry
				if !entry.Needed {
					continue
				}
				offset, ok := offsets[tone.Key]
				if !ok {
					return model.Missing("tone offset", tone.Key)
				}
				needed = append(needed, placed{key: tone.Key, offset: offset})
				written[pitch.Position(tone.Pitch)] = tone.Pitch.Accidental
			}
		}
		for position, acc := range written {
			memory[position] = acc
		}

		heights := make([]int, len(needed))
		for i, p := range needed {
			heights[i] = p.offset
		}
		slots := Assign(heights)
		for i, p := range needed {
			e := a.entries[entryKey{tick, p.key}]
			e.Slot = slots[i]
			a.entries[entryKey{tick, p.key}] = e
			a.slots[tick] = util.Max(a.slots[tick], slots[i]+1)
		}
	}
	return nil
}

// clearance is the vertical distance in half-lines at which two
// accidentals may share a column.
const clearance = 6

// Assign places accidentals in columns, slot 0 nearest the notes. They are
// taken outermost first, alternating top and bottom, and each goes in the
// lowest column with nothing within clearance of it.
func Assign(offsets []int) []int {
	order := make([]int, len(offsets))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return offsets[order[i]] < offsets[order[j]]
	})

	res := make([]int, len(offsets))
	var columns [][]int
	lo, hi := 0, len(order)-1
	for turn := 0; lo <= hi; turn++ {
		var i int
		if turn%2 == 0 {
			i = order[lo]
			lo++
		} else {
			i = order[hi]
			hi--
		}
		offset := offsets[i]
		slot := 0
		for ; slot < len(columns); slot++ {
			if fits(columns[slot], offset) {
				break
			}
		}
		if slot == len(columns) {
			columns = append(columns, nil)
		}
		columns[slot] = append(columns[slot], offset)
		res[i] = slot
	}
	return res
}

func fits(column []int, offset int) bool {
	for _, o := range column {
		if util.Abs(o-offset) < clearance {
			return false
		}
	}
	return true
}
