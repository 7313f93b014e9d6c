package score

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jsphweid/engrave/instrument"
	"github.com/jsphweid/engrave/model"
	"github.com/pkg/errors"
)

var ErrUnknownInstrument = errors.New("unknown instrument")

type Listener func()

// Store is the score arena: every table is keyed by generated uuid
// strings and entities refer to each other by key. Readers take RLock.
type Store struct {
	sync.RWMutex

	Flows       map[string]*model.Flow
	FlowOrder   []string
	Players     map[string]*model.Player
	PlayerOrder []string
	Instruments map[string]*model.Instrument
	Tracks      map[string]*model.Track
	Engrave     model.Engrave

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int
}

func New(engrave model.Engrave) *Store {
	return &Store{
		Flows:       make(map[string]*model.Flow),
		Players:     make(map[string]*model.Player),
		Instruments: make(map[string]*model.Instrument),
		Tracks:      make(map[string]*model.Track),
		Engrave:     engrave,
		listeners:   make(map[int]Listener),
	}
}

func newKey() string {
	return uuid.New().String()
}

// Subscribe registers l to run after every mutation. The returned func
// removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) notify() {
	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.Unlock()
	for _, l := range listeners {
		l()
	}
}

func (s *Store) newTrack() *model.Track {
	track := model.NewTrack(newKey())
	s.Tracks[track.Key] = track
	return track
}

// CreateFlow adds a flow holding every existing player.
func (s *Store) CreateFlow(title string, length model.Tick, subdivisions uint32) *model.Flow {
	s.Lock()
	flow := &model.Flow{
		Key:          newKey(),
		Title:        title,
		Length:       length,
		Subdivisions: subdivisions,
		Master:       s.newTrack().Key,
		Players:      append([]string(nil), s.PlayerOrder...),
		Staves:       make(map[string]*model.Stave),
	}
	s.Flows[flow.Key] = flow
	s.FlowOrder = append(s.FlowOrder, flow.Key)
	for _, playerKey := range s.PlayerOrder {
		for _, instrumentKey := range s.Players[playerKey].Instruments {
			s.addStaves(flow, s.Instruments[instrumentKey])
		}
	}
	s.Unlock()
	s.notify()
	return flow
}

// CreatePlayer adds an empty player to every flow.
func (s *Store) CreatePlayer() *model.Player {
	s.Lock()
	player := &model.Player{Key: newKey()}
	s.Players[player.Key] = player
	s.PlayerOrder = append(s.PlayerOrder, player.Key)
	for _, flow := range s.Flows {
		flow.Players = append(flow.Players, player.Key)
	}
	s.Unlock()
	s.notify()
	return player
}

// AssignInstrument gives a player a catalog instrument and creates its
// staves, with a clef and a voice, in every flow. Instruments sharing an
// id are numbered.
func (s *Store) AssignInstrument(playerKey, id string) (*model.Instrument, error) {
	def, ok := instrument.Get(id)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownInstrument, "%q", id)
	}

	s.Lock()
	player, ok := s.Players[playerKey]
	if !ok {
		s.Unlock()
		return nil, model.Missing("player", playerKey)
	}
	inst := &model.Instrument{
		Key:       newKey(),
		ID:        def.ID,
		LongName:  instrument.Name(def, 0),
		ShortName: instrument.ShortName(def, 0),
	}
	for range def.Staves {
		inst.Staves = append(inst.Staves, newKey())
	}
	s.Instruments[inst.Key] = inst
	player.Instruments = append(player.Instruments, inst.Key)
	s.renumber(def)
	for _, flow := range s.Flows {
		s.addStaves(flow, inst)
	}
	s.Unlock()
	s.notify()
	return inst, nil
}

func (s *Store) addStaves(flow *model.Flow, inst *model.Instrument) {
	def, _ := instrument.Get(inst.ID)
	for i, staveKey := range inst.Staves {
		master := s.newTrack()
		voice := s.newTrack()
		stave := &model.Stave{Key: staveKey, Lines: 5, Master: master.Key, Tracks: []string{voice.Key}}
		if i < len(def.Staves) {
			clef := def.Staves[i].Clef
			clef.Key = newKey()
			master.Insert(&clef)
			stave.Lines = def.Staves[i].Lines
		}
		flow.Staves[staveKey] = stave
	}
}

func (s *Store) renumber(def instrument.Def) {
	var same []*model.Instrument
	for _, playerKey := range s.PlayerOrder {
		for _, key := range s.Players[playerKey].Instruments {
			if inst := s.Instruments[key]; inst.ID == def.ID {
				same = append(same, inst)
			}
		}
	}
	for i, inst := range same {
		inst.Count = 0
		if len(same) > 1 {
			inst.Count = uint8(i + 1)
		}
		inst.LongName = instrument.Name(def, inst.Count)
		inst.ShortName = instrument.ShortName(def, inst.Count)
	}
}

// Voice returns the first voice track of a stave in a flow.
func (s *Store) Voice(flowKey, staveKey string) (string, error) {
	s.RLock()
	defer s.RUnlock()
	flow, ok := s.Flows[flowKey]
	if !ok {
		return "", model.Missing("flow", flowKey)
	}
	stave, ok := flow.Staves[staveKey]
	if !ok || len(stave.Tracks) == 0 {
		return "", model.Missing("stave", staveKey)
	}
	return stave.Tracks[0], nil
}

// StaveMaster returns the clef track of a stave in a flow.
func (s *Store) StaveMaster(flowKey, staveKey string) (string, error) {
	s.RLock()
	defer s.RUnlock()
	flow, ok := s.Flows[flowKey]
	if !ok {
		return "", model.Missing("flow", flowKey)
	}
	stave, ok := flow.Staves[staveKey]
	if !ok {
		return "", model.Missing("stave", staveKey)
	}
	return stave.Master, nil
}
