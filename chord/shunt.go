package chord

import (
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/notation"
)

type toneKey struct {
	tick model.Tick
	key  string
}

type offsetKey struct {
	tick   model.Tick
	offset int
}

// Shunts holds the displacement of every notehead of a track, looked up
// by tone or by offset.
type Shunts struct {
	tones   map[toneKey]model.Shunt
	offsets map[offsetKey]model.Shunt
	pre     map[model.Tick]bool
	post    map[model.Tick]bool
}

func NewShunts() *Shunts {
	return &Shunts{
		tones:   make(map[toneKey]model.Shunt),
		offsets: make(map[offsetKey]model.Shunt),
		pre:     make(map[model.Tick]bool),
		post:    make(map[model.Tick]bool),
	}
}

func (s *Shunts) set(tick model.Tick, n Note, shunt model.Shunt) {
	s.tones[toneKey{tick, n.Tone.Key}] = shunt
	s.offsets[offsetKey{tick, n.Offset}] = shunt
	switch shunt {
	case model.ShuntPre:
		s.pre[tick] = true
	case model.ShuntPost:
		s.post[tick] = true
	}
}

func (s *Shunts) Tone(tick model.Tick, key string) model.Shunt {
	return s.tones[toneKey{tick, key}]
}

func (s *Shunts) Offset(tick model.Tick, offset int) model.Shunt {
	return s.offsets[offsetKey{tick, offset}]
}

// HasPre reports a notehead left of the stem at tick.
func (s *Shunts) HasPre(tick model.Tick) bool {
	return s.pre[tick]
}

func (s *Shunts) HasPost(tick model.Tick) bool {
	return s.post[tick]
}

// ClusterShunts alternates noteheads of one cluster, sorted lowest first,
// away from the stem side. The note nearest the stem end always stays
// on the normal side.
func ClusterShunts(cluster []Note, direction model.StemDirection) []model.Shunt {
	res := make([]model.Shunt, len(cluster))
	if len(cluster) < 2 {
		return res
	}
	if direction == model.StemUp {
		for i := range cluster {
			if i%2 == 1 {
				res[i] = model.ShuntPost
			}
		}
		return res
	}
	first := len(cluster)%2 == 0
	for i := range cluster {
		if (i%2 == 0) == first {
			res[i] = model.ShuntPre
		}
	}
	return res
}

// TrackShunts resolves collisions in every chord of a track. directions
// holds the stem direction per fragment tick; missing ticks default to up.
func TrackShunts(track *notation.Track, offsets Offsets, directions map[model.Tick]model.StemDirection) (*Shunts, error) {
	res := NewShunts()
	for _, tick := range track.Ticks() {
		n := track.Events[tick]
		if n.IsRest() {
			continue
		}
		notes, err := Notes(n, offsets)
		if err != nil {
			return nil, err
		}
		direction, ok := directions[tick]
		if !ok {
			direction = model.StemUp
		}
		for _, cluster := range Clusters(notes) {
			for i, shunt := range ClusterShunts(cluster, direction) {
				res.set(tick, cluster[i], shunt)
			}
		}
	}
	return res, nil
}
