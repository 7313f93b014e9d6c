package spacing

import (
	"fmt"
	"testing"

	"github.com/jsphweid/engrave/chord"
	"github.com/jsphweid/engrave/meter"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/notation"
	"github.com/jsphweid/engrave/units"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func quarters(t *testing.T, m *meter.Meter, count int) *notation.Track {
	voice := model.NewTrack("voice")
	for i := 0; i < count; i++ {
		voice.Insert(&model.Tone{
			Key:      fmt.Sprintf("tone-%d", i),
			Tick:     model.Tick(i) * 16,
			Duration: 16,
			Pitch:    model.Pitch{Int: 60},
		})
	}
	track, err := notation.Build(voice, m)
	if err != nil {
		t.Fatal(err)
	}
	return track
}

func TestNoteSpace(t *testing.T) {
	e := model.DefaultEngrave()
	cases := []struct {
		name          string
		gap, shortest model.Tick
		tied          bool
		want          float64
	}{
		{"quarter", 16, 16, false, 3.2},
		{"eighth", 8, 8, false, 3.2 / 1.5},
		{"quarter among eighths", 16, 8, false, 2 * 3.2 / 1.5},
		{"half", 32, 32, false, 3.2 * 1.5},
		{"whole", 64, 64, false, 3.2 * 1.5 * 1.5},
		{"floored", 1, 1, false, 1.6},
		{"floored under a tie", 1, 1, true, 2},
		{"empty gap", 0, 16, false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, NoteSpace(e, c.gap, c.shortest, 16, c.tied), 1e-9)
		})
	}
}

func TestHorizontalSpacingOneBar(t *testing.T) {
	m := meter.Derive(nil, 64, 16)
	h := HorizontalSpacing(HorizontalInput{
		Meter:   m,
		Tracks:  []*notation.Track{quarters(t, m, 4)},
		Engrave: model.DefaultEngrave(),
	})

	assert := assert.New(t)
	assert.InDelta(4.55, h.NoteX(0), 1e-9)
	assert.InDelta(7.75, h.NoteX(16), 1e-9)
	assert.InDelta(14.15, h.NoteX(48), 1e-9)
	assert.InDelta(0.5, h.Widths(48)[SlotPaddingEnd], 1e-9)
	assert.InDelta(17.85, h.X(64, SlotBarline), 1e-9)
	assert.InDelta(18.91, h.Width, 1e-9)
}

func TestHorizontalSpacingOpeningRepeat(t *testing.T) {
	master := model.NewTrack("master")
	master.Insert(&model.Barline{Key: "b0", Tick: 0, DrawType: model.BarlineStartRepeat})
	m := meter.Derive(master, 64, 16)
	h := HorizontalSpacing(HorizontalInput{
		Meter:   m,
		Master:  master,
		Tracks:  []*notation.Track{quarters(t, m, 4)},
		Engrave: model.DefaultEngrave(),
	})

	assert := assert.New(t)
	assert.True(StartsWithRepeat(master))
	assert.InDelta(3.36, h.Widths(0)[SlotRepeatStart], 1e-9)
	assert.InDelta(0, h.Widths(0)[SlotBarline], 1e-9)
	assert.InDelta(4.55+3.36, h.NoteX(0), 1e-9)
	assert.False(StartsWithRepeat(model.NewTrack("empty")))
}

func TestHorizontalSpacingIsMonotonic(t *testing.T) {
	master := model.NewTrack("master")
	master.Insert(&model.KeySignature{Key: "k1", Tick: 64, Mode: model.ModeMajor, Offset: 2})
	master.Insert(&model.TimeSignature{Key: "t1", Tick: 64, Beats: 3, BeatType: model.Quarter, DrawType: model.TimeDrawNormal})
	master.Insert(&model.Barline{Key: "b1", Tick: 64, DrawType: model.BarlineEndStartRepeat})
	m := meter.Derive(master, 112, 16)
	h := HorizontalSpacing(HorizontalInput{
		Meter:   m,
		Master:  master,
		Tracks:  []*notation.Track{quarters(t, m, 7)},
		Engrave: model.DefaultEngrave(),
	})

	assert := assert.New(t)
	w := h.Widths(64)
	assert.InDelta(1.3, w[SlotRepeat], 1e-9)
	assert.InDelta(BarlineWidth(model.BarlineEndStartRepeat)+1, w[SlotBarline], 1e-9)
	assert.InDelta(3, w[SlotKeySignature], 1e-9)
	assert.InDelta(2.8, w[SlotTimeSignature], 1e-9)
	assert.InDelta(1.3, w[SlotRepeatStart], 1e-9)
	var last float64
	for tick := model.Tick(0); tick <= 112; tick++ {
		for slot := SlotPaddingStart; slot < slotCount; slot++ {
			x := h.X(tick, slot)
			assert.GreaterOrEqual(x, last)
			last = x
		}
	}
	assert.Greater(h.Width, last)
}

func TestHorizontalSpacingPreShunt(t *testing.T) {
	m := meter.Derive(nil, 64, 16)
	track := notation.NewTrack("voice", 64, 16)
	track.Events[0].Tones = []*model.Tone{
		{Key: "e", Duration: 64, Pitch: model.Pitch{Int: 64}},
		{Key: "f", Duration: 64, Pitch: model.Pitch{Int: 65}},
	}
	shunts, err := chord.TrackShunts(track, chord.Offsets{"e": 3, "f": 2}, map[model.Tick]model.StemDirection{0: model.StemDown})
	if err != nil {
		t.Fatal(err)
	}

	h := HorizontalSpacing(HorizontalInput{
		Meter:   m,
		Tracks:  []*notation.Track{track},
		Shunts:  []*chord.Shunts{shunts},
		Engrave: model.DefaultEngrave(),
	})

	assert.InDelta(t, 1.18, h.Widths(0)[SlotPreNote], 1e-9)
}

type fixture struct {
	flow        *model.Flow
	players     map[string]*model.Player
	instruments map[string]*model.Instrument
}

func ensemble() fixture {
	f := fixture{
		flow:        &model.Flow{Key: "flow", Staves: make(map[string]*model.Stave)},
		players:     make(map[string]*model.Player),
		instruments: make(map[string]*model.Instrument),
	}
	add := func(key, id, name string, staves int) {
		inst := &model.Instrument{Key: key, ID: id, LongName: name}
		for i := 0; i < staves; i++ {
			stave := fmt.Sprintf("%s-%d", key, i)
			inst.Staves = append(inst.Staves, stave)
			f.flow.Staves[stave] = &model.Stave{Key: stave, Lines: 5}
		}
		f.instruments[key] = inst
		f.players["p-"+key] = &model.Player{Key: "p-" + key, Instruments: []string{key}}
		f.flow.Players = append(f.flow.Players, "p-"+key)
	}
	add("fl", "woodwinds.flute", "Flute", 1)
	add("pno", "keyboards.piano", "Piano", 2)
	add("vln1", "strings.violin", "Violin 1", 1)
	add("vln2", "strings.violin", "Violin 2", 1)
	add("vla", "strings.viola", "Viola", 1)
	return f
}

func (f fixture) input(e model.Engrave) VerticalInput {
	return VerticalInput{
		Flow:        f.flow,
		Players:     f.players,
		Instruments: f.instruments,
		Engrave:     e,
		Converter:   units.Converter{Space: 2, PxPerMM: 1},
		Measurer:    units.FixedMeasurer{Em: 0.5},
	}
}

func TestVerticalSpacingOrchestral(t *testing.T) {
	f := ensemble()

	v, err := VerticalSpacing(f.input(model.DefaultEngrave()))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"fl-0", "pno-0", "pno-1", "vln1-0", "vln2-0", "vla-0"}, v.Order)
	assert.Equal(map[string]float64{
		"fl-0":   2,
		"pno-0":  14,
		"pno-1":  24,
		"vln1-0": 36,
		"vln2-0": 48,
		"vla-0":  60,
	}, v.Staves)
	assert.Equal(float64(62), v.Height)
	assert.Equal([]Span{{Top: 12, Bottom: 26}}, v.Braces)
	assert.Equal([]Bracket{
		{Span: Span{Top: 34, Bottom: 62}},
		{Span: Span{Top: 34, Bottom: 50}, Sub: true},
	}, v.Brackets)
	assert.InDelta(7, v.NameWidth, 1e-9)
	assert.InDelta(11.15, v.Left, 1e-9)
	assert.InDelta(0, v.Y("fl-0", -4), 1e-9)
	assert.Equal(Span{Top: 34, Bottom: 38}, v.StaveSpan("vln1-0"))
}

func TestVerticalSpacingBracketing(t *testing.T) {
	cases := []struct {
		name   string
		modify func(e *model.Engrave)
		want   []Bracket
	}{
		{
			name:   "none",
			modify: func(e *model.Engrave) { e.Bracketing = model.BracketingNone },
			want:   nil,
		},
		{
			name:   "no sub brackets",
			modify: func(e *model.Engrave) { e.SubBracket = false },
			want:   []Bracket{{Span: Span{Top: 34, Bottom: 62}}},
		},
		{
			name: "single staves bracketed",
			modify: func(e *model.Engrave) {
				e.SubBracket = false
				e.BracketSingleStaves = true
			},
			want: []Bracket{{Span: Span{Top: 0, Bottom: 4}}, {Span: Span{Top: 34, Bottom: 62}}},
		},
		{
			name:   "small ensemble",
			modify: func(e *model.Engrave) { e.Bracketing = model.BracketingSmallEnsemble },
			want:   []Bracket{{Span: Span{Top: 34, Bottom: 62}}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := model.DefaultEngrave()
			c.modify(&e)

			v, err := VerticalSpacing(ensemble().input(e))

			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.want, v.Brackets)
		})
	}
}

func TestVerticalSpacingLeftFollowsBracketStyle(t *testing.T) {
	cases := []struct {
		name  string
		style model.BracketStyle
		want  float64
	}{
		{"wing", model.BracketStyleWing, 11.15},
		{"line", model.BracketStyleLine, 11.15},
		{"none keeps sub brackets and braces", model.BracketStyleNone, 10.15},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := model.DefaultEngrave()
			e.BracketStyle = c.style

			v, err := VerticalSpacing(ensemble().input(e))

			assert := assert.New(t)
			assert.NoError(err)
			assert.Len(v.Brackets, 2)
			assert.InDelta(c.want, v.Left, 1e-9)
		})
	}
}

func TestVerticalSpacingMissingPlayer(t *testing.T) {
	f := ensemble()
	f.flow.Players = append(f.flow.Players, "ghost")

	_, err := VerticalSpacing(f.input(model.DefaultEngrave()))

	assert.True(t, errors.Is(err, model.ErrInvariantViolation))
}
