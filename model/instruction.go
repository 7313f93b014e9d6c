package model

type InstructionKind string

const (
	InstructionLine   InstructionKind = "line"
	InstructionText   InstructionKind = "text"
	InstructionCircle InstructionKind = "circle"
	InstructionCurve  InstructionKind = "curve"
	InstructionShape  InstructionKind = "shape"
)

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Instruction is one draw primitive in pixels. Which fields are set depends
// on Kind: lines, curves and shapes use Points, text and circles use X/Y.
type Instruction struct {
	Kind   InstructionKind `json:"kind" yaml:"kind"`
	Color  string          `json:"color,omitempty" yaml:"color,omitempty"`
	Width  float64         `json:"width,omitempty" yaml:"width,omitempty"`
	Points []Point         `json:"points,omitempty" yaml:"points,omitempty"`

	X      float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y      float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Radius float64 `json:"radius,omitempty" yaml:"radius,omitempty"`

	Value   string  `json:"value,omitempty" yaml:"value,omitempty"`
	Font    string  `json:"font,omitempty" yaml:"font,omitempty"`
	Size    float64 `json:"size,omitempty" yaml:"size,omitempty"`
	Justify Justify `json:"justify,omitempty" yaml:"justify,omitempty"`
	Align   Align   `json:"align,omitempty" yaml:"align,omitempty"`
}

// Render is everything a front end needs to paint one flow.
type Render struct {
	Flow         string        `json:"flow" yaml:"flow"`
	Width        float64       `json:"width" yaml:"width"`
	Height       float64       `json:"height" yaml:"height"`
	Instructions []Instruction `json:"instructions" yaml:"instructions"`
}
