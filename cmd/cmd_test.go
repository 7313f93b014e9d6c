package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/engrave/constants"
	"github.com/jsphweid/engrave/file"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/render"
	"github.com/jsphweid/engrave/units"
	"github.com/stretchr/testify/assert"
)

const duet = `
players:
  - instruments: [woodwinds.flute]
  - instruments: [strings.violoncello]
flows:
  - title: First
    length: 64
    subdivisions: 16
    master:
      time_signatures: [{tick: 0, beats: 4, beat_type: 2}]
    staves:
      - tones:
          - {tick: 0, duration: 8, pitch: {int: 72}}
          - {tick: 8, duration: 8, pitch: {int: 74}}
          - {tick: 16, duration: 8, pitch: {int: 78, accidental: 1}}
          - {tick: 24, duration: 8, pitch: {int: 76}}
      - tones:
          - {tick: 0, duration: 64, pitch: {int: 48}}
  - title: Second
    length: 64
    subdivisions: 16
`

var testOptions = render.Options{PxPerMM: constants.PxPerMM, Measurer: units.FixedMeasurer{Em: 0.5}}

func TestInspect(t *testing.T) {
	s, err := file.Parse([]byte(duet))
	assert.NoError(t, err)

	var out bytes.Buffer
	assert.NoError(t, Inspect(&out, s))

	text := out.String()
	assert := assert.New(t)
	assert.Contains(text, "flow: First (1 bars)")
	assert.Contains(text, "flow: Second")
	assert.Contains(text, "Flute stave 1")
	assert.Contains(text, "Violoncello stave 1")
	assert.Contains(text, "beam [0 8 16 24]")
	assert.Contains(text, "accidental 16 F#5")
	assert.Contains(text, "o"+strings.Repeat("-", 62)+":")
}

func TestRenderByTitle(t *testing.T) {
	s, err := file.Parse([]byte(duet))
	assert.NoError(t, err)

	renders, err := Render(s, "Second", testOptions)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(renders, 1)
	assert.Equal(s.FlowOrder[1], renders[0].Flow)

	_, err = Render(s, "Third", testOptions)
	assert.ErrorIs(err, model.ErrInvariantViolation)
}

func TestEncode(t *testing.T) {
	renders := []*model.Render{{Flow: "a", Width: 10, Height: 20}}

	data, err := encode(renders, "json")
	assert := assert.New(t)
	assert.NoError(err)
	assert.Contains(string(data), `"flow": "a"`)

	data, err = encode(renders, "yaml")
	assert.NoError(err)
	assert.Contains(string(data), "flow: a")

	_, err = encode(renders, "svg")
	assert.Error(err)
}

func TestReport(t *testing.T) {
	s, err := file.Parse([]byte(duet))
	assert.NoError(t, err)

	var out bytes.Buffer
	assert.NoError(t, Report(&out, s, testOptions))

	text := out.String()
	assert := assert.New(t)
	assert.Contains(text, `flow "First"`)
	assert.Contains(text, `flow "Second"`)
	assert.Contains(text, "instructions:")
	assert.Contains(text, "flows: 2")
}

func TestCatalog(t *testing.T) {
	var out bytes.Buffer
	Catalog(&out)
	assert.Contains(t, out.String(), "keyboards.piano")
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), len(Instruments()))
}

func TestLoadScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duet.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(duet), 0644))

	s, err := LoadScore(path)
	assert.NoError(t, err)
	assert.Len(t, s.FlowOrder, 2)
}

func TestHandleRender(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/render?flow=First", strings.NewReader(duet))
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, req)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	var res model.RenderResponse
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(res.Renders, 1)
	assert.NotEmpty(res.Renders[0].Instructions)
}

func TestHandleRenderErrors(t *testing.T) {
	cases := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"bad document", "/render", "flows: [", http.StatusBadRequest},
		{"unknown flow", "/render?flow=Third", duet, http.StatusUnprocessableEntity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, c.target, strings.NewReader(c.body))
			w := httptest.NewRecorder()
			Handler().ServeHTTP(w, req)

			assert := assert.New(t)
			assert.Equal(c.status, w.Code)
			var res model.ErrorResponse
			assert.NoError(json.Unmarshal(w.Body.Bytes(), &res))
			assert.NotEmpty(res.Error)
		})
	}
}

func TestHandleInstruments(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/instruments", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, req)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
	var res []model.InstrumentResponse
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(res, len(Instruments()))
}
