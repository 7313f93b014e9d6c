package model

type RenderResponse struct {
	Renders []Render `json:"renders" yaml:"renders"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

type InstrumentResponse struct {
	ID        string `json:"id"`
	Family    string `json:"family"`
	LongName  string `json:"long_name"`
	ShortName string `json:"short_name"`
	Staves    int    `json:"staves"`
}
