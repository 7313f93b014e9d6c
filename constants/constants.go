package constants

// Engraving constants that are not user settings. Lengths in stave spaces
// unless the name says half-lines.
const (
	// natural stem length measured from the outermost notehead
	StemLengthHalfLines = 7

	StemWidth         = 0.12
	StaveLineWidth    = 0.12
	LedgerLineWidth   = 0.16
	LedgerLineExtra   = 0.4
	ThinBarlineWidth  = 0.16
	ThickBarlineWidth = 0.5
	BarlineGap        = 0.4
	BarlinePadding    = 1
	BarEndPadding     = 0.5
	BeamThickness     = 0.5
	BeamGapHalfLines  = 1.5
	TieThickness      = 0.2

	NoteheadWidth      = 1.18
	WholeNoteheadWidth = 1.7
	AccidentalWidth    = 1.1
	DotSpace           = 0.5
	DotWidth           = 0.5

	ClefWidth          = 2.8
	KeySigAccidental   = 1
	TimeSigWidth       = 1.8
	RepeatDotsWidth    = 0.9
	SignaturePadding   = 1
	BracketWidth       = 0.5
	SubBracketWidth    = 0.25
	BracketGap         = 0.5
	BraceWidth         = 0.9
	InstrumentNameGap  = 1
	FlowTitleClearance = 4
	GlyphSize          = 4 // music font em in stave spaces
)

// PxPerMM at 96dpi.
const PxPerMM = 96 / 25.4
