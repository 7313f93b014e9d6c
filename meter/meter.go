package meter

import (
	"sort"

	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/util"
)

type Bars = map[model.Tick]*model.TimeSignature

// Meter is the tick -> time signature oracle for one flow. A bar starts
// wherever the distance from the active anchor (the latest time signature
// or barline entry) is a whole number of bars.
type Meter struct {
	Length       model.Tick
	Subdivisions uint32

	// bar start ticks in [0, Length)
	Bars Bars
	// drawn barlines: bar starts after 0 plus Length
	Barlines Bars
	// every grouping boundary, bar starts included
	Groupings Bars

	master *model.Track
	starts []model.Tick
}

func anchor(master *model.Track, sig *model.TimeSignature, tick model.Tick) model.Tick {
	res := sig.Tick
	if master == nil {
		return res
	}
	if b := master.EntryAtTick(model.KindBarline, tick); b != nil && b.EntryTick() > res {
		res = b.EntryTick()
	}
	return res
}

// Derive walks the flow tick by tick. master may be nil, in which case the
// default time signature applies throughout.
func Derive(master *model.Track, length model.Tick, subdivisions uint32) *Meter {
	m := &Meter{
		Length:       length,
		Subdivisions: subdivisions,
		Bars:         make(Bars),
		Barlines:     make(Bars),
		Groupings:    make(Bars),
		master:       master,
	}

	for tick := model.Tick(0); tick < length; tick++ {
		sig := m.TimeSignatureAt(tick)
		if m.isBarStart(sig, tick) {
			m.Bars[tick] = sig
			if tick > 0 {
				m.Barlines[tick] = sig
			}
		}
	}
	m.Barlines[length] = m.TimeSignatureAt(length)
	m.starts = util.SortedKeys(m.Bars)

	for i, start := range m.starts {
		sig := m.Bars[start]
		end := length
		if i+1 < len(m.starts) {
			end = m.starts[i+1]
		}
		m.Groupings[start] = sig
		if sig.Beats == 0 {
			continue
		}
		for _, offset := range GroupingOffsets(sig, subdivisions) {
			if start+offset < end {
				m.Groupings[start+offset] = sig
			}
		}
	}
	return m
}

func (m *Meter) isBarStart(sig *model.TimeSignature, tick model.Tick) bool {
	from := anchor(m.master, sig, tick)
	if tick == from {
		return true
	}
	perBar := TicksPerBar(sig, m.Subdivisions)
	if perBar == 0 {
		return false
	}
	return (tick-from)%perBar == 0
}

// TimeSignatureAt is the active signature, never nil.
func (m *Meter) TimeSignatureAt(tick model.Tick) *model.TimeSignature {
	if m.master != nil {
		if sig := m.master.TimeSignatureAtTick(tick); sig != nil {
			return sig
		}
	}
	return DefaultTimeSignature()
}

// BarStarts returns the bar start ticks ascending.
func (m *Meter) BarStarts() []model.Tick {
	return m.starts
}

// BarAt returns the bounds of the bar containing tick.
func (m *Meter) BarAt(tick model.Tick) (start, end model.Tick) {
	i := sort.Search(len(m.starts), func(i int) bool { return m.starts[i] > tick })
	if i == 0 {
		return 0, m.Length
	}
	start = m.starts[i-1]
	end = m.Length
	if i < len(m.starts) {
		end = m.starts[i]
	}
	return start, end
}

// IsFullBar reports whether [start, start+duration) is exactly one bar.
func (m *Meter) IsFullBar(start, duration model.Tick) bool {
	if _, ok := m.Bars[start]; !ok {
		return false
	}
	_, end := m.BarAt(start)
	return start+duration == end
}

// BarNumber is 1 based.
func (m *Meter) BarNumber(tick model.Tick) int {
	return sort.Search(len(m.starts), func(i int) bool { return m.starts[i] > tick })
}
