package model

type Tick = uint32

type EntryKind uint8

const (
	KindTone EntryKind = iota
	KindClef
	KindKeySignature
	KindTimeSignature
	KindBarline
)

func (k EntryKind) String() string {
	switch k {
	case KindTone:
		return "tone"
	case KindClef:
		return "clef"
	case KindKeySignature:
		return "key-signature"
	case KindTimeSignature:
		return "time-signature"
	case KindBarline:
		return "barline"
	}
	return "unknown"
}

type Entry interface {
	EntryKey() string
	EntryTick() Tick
	Kind() EntryKind
}

type Articulation string

const (
	ArticulationNone     Articulation = ""
	ArticulationStaccato Articulation = "staccato"
	ArticulationAccent   Articulation = "accent"
	ArticulationTenuto   Articulation = "tenuto"
)

type Tone struct {
	Key          string       `json:"key" yaml:"key"`
	Tick         Tick         `json:"tick" yaml:"tick"`
	Duration     Tick         `json:"duration" yaml:"duration"`
	Pitch        Pitch        `json:"pitch" yaml:"pitch"`
	Velocity     uint8        `json:"velocity" yaml:"velocity"`
	Articulation Articulation `json:"articulation,omitempty" yaml:"articulation,omitempty"`
}

func (t *Tone) EntryKey() string { return t.Key }
func (t *Tone) EntryTick() Tick  { return t.Tick }
func (t *Tone) Kind() EntryKind  { return KindTone }

type ClefSymbol string

const (
	ClefG          ClefSymbol = "g"
	ClefF          ClefSymbol = "f"
	ClefC          ClefSymbol = "c"
	ClefPercussion ClefSymbol = "percussion"
)

type ClefDrawType string

const (
	ClefDrawNormal ClefDrawType = "normal"
	ClefDrawHidden ClefDrawType = "hidden"
)

// Clef pins Pitch to Offset half-lines from the middle stave line
// (positive is downwards).
type Clef struct {
	Key      string       `json:"key" yaml:"key"`
	Tick     Tick         `json:"tick" yaml:"tick"`
	Symbol   ClefSymbol   `json:"symbol" yaml:"symbol"`
	Pitch    Pitch        `json:"pitch" yaml:"pitch"`
	Offset   int          `json:"offset" yaml:"offset"`
	DrawType ClefDrawType `json:"draw_type" yaml:"draw_type"`
}

func (c *Clef) EntryKey() string { return c.Key }
func (c *Clef) EntryTick() Tick  { return c.Tick }
func (c *Clef) Kind() EntryKind  { return KindClef }

type KeySignatureMode string

const (
	ModeMajor KeySignatureMode = "major"
	ModeMinor KeySignatureMode = "minor"
	ModeNone  KeySignatureMode = "none"
)

// KeySignature Offset counts sharps when positive and flats when negative.
type KeySignature struct {
	Key    string           `json:"key" yaml:"key"`
	Tick   Tick             `json:"tick" yaml:"tick"`
	Mode   KeySignatureMode `json:"mode" yaml:"mode"`
	Offset int8             `json:"offset" yaml:"offset"`
}

func (k *KeySignature) EntryKey() string { return k.Key }
func (k *KeySignature) EntryTick() Tick  { return k.Tick }
func (k *KeySignature) Kind() EntryKind  { return KindKeySignature }

type TimeSignatureDrawType string

const (
	TimeDrawNormal          TimeSignatureDrawType = "normal"
	TimeDrawHidden          TimeSignatureDrawType = "hidden"
	TimeDrawCommonTime      TimeSignatureDrawType = "common"
	TimeDrawSplitCommonTime TimeSignatureDrawType = "split-common"
	TimeDrawOpen            TimeSignatureDrawType = "open"
)

// TimeSignature with Beats == 0 is open: it has no periodic barlines.
type TimeSignature struct {
	Key      string                `json:"key" yaml:"key"`
	Tick     Tick                  `json:"tick" yaml:"tick"`
	Beats    uint8                 `json:"beats" yaml:"beats"`
	BeatType NoteDuration          `json:"beat_type" yaml:"beat_type"`
	DrawType TimeSignatureDrawType `json:"draw_type" yaml:"draw_type"`
}

func (t *TimeSignature) EntryKey() string { return t.Key }
func (t *TimeSignature) EntryTick() Tick  { return t.Tick }
func (t *TimeSignature) Kind() EntryKind  { return KindTimeSignature }

type BarlineDrawType string

const (
	BarlineSingle         BarlineDrawType = "single"
	BarlineDouble         BarlineDrawType = "double"
	BarlineFinal          BarlineDrawType = "final"
	BarlineStartRepeat    BarlineDrawType = "start-repeat"
	BarlineEndRepeat      BarlineDrawType = "end-repeat"
	BarlineEndStartRepeat BarlineDrawType = "end-start-repeat"
)

type Barline struct {
	Key      string          `json:"key" yaml:"key"`
	Tick     Tick            `json:"tick" yaml:"tick"`
	DrawType BarlineDrawType `json:"draw_type" yaml:"draw_type"`
}

func (b *Barline) EntryKey() string { return b.Key }
func (b *Barline) EntryTick() Tick  { return b.Tick }
func (b *Barline) Kind() EntryKind  { return KindBarline }
