package model

// Stave holds its clef entries on Master and the voices drawn on it in Tracks.
// Both are keys into the score's track table.
type Stave struct {
	Key    string   `json:"key"`
	Lines  uint8    `json:"lines"`
	Master string   `json:"master"`
	Tracks []string `json:"tracks"`
}

type Instrument struct {
	Key       string   `json:"key"`
	ID        string   `json:"id"`
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Count     uint8    `json:"count,omitempty"`
	Staves    []string `json:"staves"`
}

type Player struct {
	Key         string   `json:"key"`
	Instruments []string `json:"instruments"`
}

// Flow is one movement. Its Master track carries time signatures, key
// signatures and barlines; Staves are keyed by the instrument stave key.
type Flow struct {
	Key          string            `json:"key"`
	Title        string            `json:"title"`
	Players      []string          `json:"players"`
	Length       Tick              `json:"length"`
	Subdivisions uint32            `json:"subdivisions"`
	Master       string            `json:"master"`
	Staves       map[string]*Stave `json:"staves"`
}
