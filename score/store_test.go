package score

import (
	"testing"

	"github.com/jsphweid/engrave/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAssignInstrumentCreatesStavesInEveryFlow(t *testing.T) {
	s := New(model.DefaultEngrave())
	first := s.CreateFlow("One", 64, 16)
	player := s.CreatePlayer()
	second := s.CreateFlow("Two", 64, 16)

	piano, err := s.AssignInstrument(player.Key, "keyboards.piano")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(piano.Staves, 2)
	for _, flow := range []*model.Flow{first, second} {
		assert.Equal([]string{player.Key}, flow.Players)
		assert.Len(flow.Staves, 2)
		master, err := s.StaveMaster(flow.Key, piano.Staves[1])
		assert.NoError(err)
		clef := s.Tracks[master].ClefAtTick(0)
		assert.Equal(model.ClefF, clef.Symbol)
	}
	assert.Len(s.Tracks, 2+2*2*2)
}

func TestAssignInstrumentNumbersDuplicates(t *testing.T) {
	s := New(model.DefaultEngrave())
	a, b := s.CreatePlayer(), s.CreatePlayer()

	first, err := s.AssignInstrument(a.Key, "strings.violin")
	assert.NoError(t, err)
	assert.Equal(t, "Violin", first.LongName)

	second, err := s.AssignInstrument(b.Key, "strings.violin")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("Violin 1", first.LongName)
	assert.Equal("Violin 2", second.LongName)
	assert.Equal("Vln. 2", second.ShortName)
}

func TestAssignInstrumentErrors(t *testing.T) {
	s := New(model.DefaultEngrave())
	player := s.CreatePlayer()

	_, err := s.AssignInstrument(player.Key, "strings.theremin")
	assert.True(t, errors.Is(err, ErrUnknownInstrument))

	_, err = s.AssignInstrument("nobody", "strings.violin")
	assert.True(t, errors.Is(err, model.ErrInvariantViolation))
}

func TestEntriesNotifyListeners(t *testing.T) {
	s := New(model.DefaultEngrave())
	flow := s.CreateFlow("One", 64, 16)
	player := s.CreatePlayer()
	violin, _ := s.AssignInstrument(player.Key, "strings.violin")
	voice, err := s.Voice(flow.Key, violin.Staves[0])
	if err != nil {
		t.Fatal(err)
	}

	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })
	tone, err := s.CreateTone(voice, 0, 16, model.Pitch{Int: 60})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(1, calls)
	assert.Len(s.Tracks[voice].TonesAtTick(0), 1)

	_, err = s.CreateTimeSignature(flow.Master, 0, 3, model.Quarter, model.TimeDrawNormal)
	assert.NoError(err)
	_, err = s.CreateKeySignature(flow.Master, 0, model.ModeMajor, 2)
	assert.NoError(err)
	_, err = s.CreateBarline(flow.Master, 32, model.BarlineDouble)
	assert.NoError(err)
	assert.Equal(4, calls)

	assert.NoError(s.RemoveEntry(voice, tone.Key))
	assert.Empty(s.Tracks[voice].TonesAtTick(0))
	assert.Equal(5, calls)

	err = s.RemoveEntry(voice, tone.Key)
	assert.True(errors.Is(err, model.ErrInvariantViolation))
	_, err = s.CreateClef("missing", 0, model.ClefF, model.Pitch{Int: 53}, -2)
	assert.True(errors.Is(err, model.ErrInvariantViolation))

	unsubscribe()
	_, err = s.CreateTone(voice, 16, 16, model.Pitch{Int: 62})
	assert.NoError(err)
	assert.Equal(5, calls)
}
