package model

type Bracketing string

const (
	BracketingNone          Bracketing = "none"
	BracketingOrchestral    Bracketing = "orchestral"
	BracketingSmallEnsemble Bracketing = "small-ensemble"
)

type BracketStyle string

const (
	BracketStyleNone BracketStyle = "none"
	BracketStyleWing BracketStyle = "wing"
	BracketStyleLine BracketStyle = "line"
)

type Justify string

const (
	JustifyStart  Justify = "start"
	JustifyMiddle Justify = "middle"
	JustifyEnd    Justify = "end"
)

type Align string

const (
	AlignTop    Align = "top"
	AlignMiddle Align = "middle"
	AlignBottom Align = "bottom"
)

// Padding is in millimetres.
type Padding struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
}

// TextStyle Size is in stave spaces.
type TextStyle struct {
	Font    string  `json:"font" yaml:"font"`
	Size    float64 `json:"size" yaml:"size"`
	Justify Justify `json:"justify" yaml:"justify"`
	Align   Align   `json:"align" yaml:"align"`
}

// Engrave holds every visual constant of a layout. Lengths are in stave
// spaces unless noted otherwise.
type Engrave struct {
	Key   string  `json:"key" yaml:"key"`
	Name  string  `json:"name" yaml:"name"`
	Space float64 `json:"space" yaml:"space"` // mm per stave space

	FramePadding       Padding `json:"frame_padding" yaml:"frame_padding"`
	InstrumentSpacing  float64 `json:"instrument_spacing" yaml:"instrument_spacing"`
	StaveSpacing       float64 `json:"stave_spacing" yaml:"stave_spacing"`
	SystemStartPadding float64 `json:"system_start_padding" yaml:"system_start_padding"`

	InstrumentName TextStyle `json:"instrument_name" yaml:"instrument_name"`
	FlowTitle      TextStyle `json:"flow_title" yaml:"flow_title"`

	Bracketing          Bracketing   `json:"bracketing" yaml:"bracketing"`
	BracketStyle        BracketStyle `json:"bracket_style" yaml:"bracket_style"`
	BracketSingleStaves bool         `json:"bracket_single_staves" yaml:"bracket_single_staves"`
	SubBracket          bool         `json:"sub_bracket" yaml:"sub_bracket"`

	MaxBeamSlant float64 `json:"max_beam_slant" yaml:"max_beam_slant"` // half-lines

	MinimumNoteSpacing float64 `json:"minimum_note_spacing" yaml:"minimum_note_spacing"`
	MinimumTieSpace    float64 `json:"minimum_tie_space" yaml:"minimum_tie_space"`
	BaseNoteSpace      float64 `json:"base_note_space" yaml:"base_note_space"`
	NoteSpaceRatio     float64 `json:"note_space_ratio" yaml:"note_space_ratio"`
}

func DefaultEngrave() Engrave {
	return Engrave{
		Key:                "default",
		Name:               "Score",
		Space:              2,
		FramePadding:       Padding{Top: 40, Right: 25, Bottom: 40, Left: 25},
		InstrumentSpacing:  8,
		StaveSpacing:       6,
		SystemStartPadding: 0.75,
		InstrumentName: TextStyle{
			Font:    "Libre Baskerville",
			Size:    1.75,
			Justify: JustifyEnd,
			Align:   AlignMiddle,
		},
		FlowTitle: TextStyle{
			Font:    "Libre Baskerville",
			Size:    3.5,
			Justify: JustifyMiddle,
			Align:   AlignBottom,
		},
		Bracketing:          BracketingOrchestral,
		BracketStyle:        BracketStyleWing,
		BracketSingleStaves: false,
		SubBracket:          true,
		MaxBeamSlant:        2,
		MinimumNoteSpacing:  1.6,
		MinimumTieSpace:     2,
		BaseNoteSpace:       3.2,
		NoteSpaceRatio:      1.5,
	}
}
