package notation

import (
	"github.com/jsphweid/engrave/meter"
	"github.com/jsphweid/engrave/model"
	"github.com/pkg/errors"
)

var ErrUnwritable = errors.New("unwritable duration")

// Build decomposes the tones of track into writable fragments. Each step
// only ever splits existing fragments.
func Build(track *model.Track, m *meter.Meter) (*Track, error) {
	t := NewTrack(track.Key, m.Length, m.Subdivisions)
	t.SplitAtToneEvents(track.Tones())
	t.SplitMeasures(m)
	t.SplitAsPerMeter(m)
	t.SplitUnwritable(m)
	if err := t.Validate(m); err != nil {
		return t, errors.Wrapf(err, "track %v", track.Key)
	}
	return t, nil
}

// SplitAtToneEvents cuts at every tone onset and end, then attaches each
// tone to the fragments it spans. Tones past the flow end are clipped.
func (t *Track) SplitAtToneEvents(tones []*model.Tone) {
	for _, tone := range tones {
		if tone.Duration == 0 || tone.Tick >= t.Length {
			continue
		}
		t.Split(tone.Tick)
		t.Split(t.toneEnd(tone))
	}
	for _, tone := range tones {
		if tone.Duration == 0 || tone.Tick >= t.Length {
			continue
		}
		end := t.toneEnd(tone)
		for tick := tone.Tick; tick < end; {
			n := t.Events[tick]
			n.Tones = append(n.Tones, tone)
			next := tick + n.Duration
			if next < end {
				n.Ties[tone.Key] = true
			}
			tick = next
		}
	}
}

func (t *Track) toneEnd(tone *model.Tone) model.Tick {
	end := tone.Tick + tone.Duration
	if end > t.Length {
		return t.Length
	}
	return end
}

// SplitMeasures cuts at every bar start.
func (t *Track) SplitMeasures(m *meter.Meter) {
	for _, tick := range m.BarStarts() {
		t.Split(tick)
	}
}

// SplitAsPerMeter cuts fragments so the beat structure of each bar stays
// visible. Full bar rests are left whole.
func (t *Track) SplitAsPerMeter(m *meter.Meter) {
	starts := m.BarStarts()
	for i, start := range starts {
		end := m.Length
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		sig := m.Bars[start]
		if sig.Beats == 0 {
			continue
		}
		d := newDivider(sig, t.Subdivisions)

		var points []model.Tick
		for tick := start; tick < end; {
			n := t.Events[tick]
			if n.IsRest() && m.IsFullBar(tick, n.Duration) {
				tick += n.Duration
				continue
			}
			bar := span{a: start, b: end, depth: 0}
			points = append(points, d.splits(tick, tick+n.Duration, bar, n.IsRest())...)
			tick += n.Duration
		}
		for _, p := range points {
			t.Split(p)
		}
	}
}

// SplitUnwritable repeatedly cuts the longest writable prefix off any
// fragment that cannot be drawn as one glyph.
func (t *Track) SplitUnwritable(m *meter.Meter) {
	ticks := append([]model.Tick(nil), t.ticks...)
	for _, tick := range ticks {
		at := tick
		for {
			n := t.Events[at]
			if IsWritable(n.Duration, t.Subdivisions) {
				break
			}
			if n.IsRest() && m != nil && m.IsFullBar(at, n.Duration) {
				break
			}
			prefix := longestWritablePrefix(n.Duration, t.Subdivisions)
			if prefix == 0 {
				break
			}
			t.Split(at + prefix)
			at += prefix
		}
	}
}

// Validate checks the fragments tile the flow and are all writable.
func (t *Track) Validate(m *meter.Meter) error {
	var at model.Tick
	for _, tick := range t.ticks {
		if tick != at {
			return errors.Errorf("gap or overlap at tick %d", tick)
		}
		n := t.Events[tick]
		if n.IsRest() && len(n.Ties) > 0 {
			return errors.Errorf("tied rest at tick %d", tick)
		}
		fullBarRest := n.IsRest() && m != nil && m.IsFullBar(tick, n.Duration)
		if !fullBarRest && !IsWritable(n.Duration, t.Subdivisions) {
			return errors.Wrapf(ErrUnwritable, "%d ticks at tick %d", n.Duration, tick)
		}
		at += n.Duration
	}
	if at != t.Length {
		return errors.Errorf("fragments cover %d of %d ticks", at, t.Length)
	}
	return nil
}
