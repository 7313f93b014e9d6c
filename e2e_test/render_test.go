//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/engrave/cmd"
	"github.com/jsphweid/engrave/glyph"
	"github.com/jsphweid/engrave/logger"
	"github.com/jsphweid/engrave/model"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	logger.Setup(io.Discard, "error")
	server = httptest.NewServer(cmd.Handler())

	exitVal := m.Run()

	server.Close()
	os.Exit(exitVal)
}

type tone struct {
	Tick     uint32      `yaml:"tick"`
	Duration uint32      `yaml:"duration"`
	Pitch    model.Pitch `yaml:"pitch"`
}

func document(tones []tone) io.Reader {
	doc := map[string]interface{}{
		"players": []interface{}{map[string]interface{}{"instruments": []string{"strings.violin"}}},
		"flows": []interface{}{map[string]interface{}{
			"title":        "E2E",
			"length":       64,
			"subdivisions": 16,
			"master": map[string]interface{}{
				"time_signatures": []interface{}{map[string]interface{}{"tick": 0, "beats": 4, "beat_type": 2}},
			},
			"staves": []interface{}{map[string]interface{}{"tones": tones}},
		}},
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func postRender(t *testing.T, body io.Reader) model.RenderResponse {
	resp, err := http.Post(server.URL+"/render", "application/yaml", body)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	assert.Equal(t, 200, resp.StatusCode, string(respBody))

	var res model.RenderResponse
	if err := json.Unmarshal(respBody, &res); err != nil {
		t.Fatal(err)
	}
	return res
}

func countValue(r model.Render, value string) int {
	var n int
	for _, i := range r.Instructions {
		if i.Value == value {
			n++
		}
	}
	return n
}

func TestCMajorChordE2E(t *testing.T) {
	res := postRender(t, document([]tone{
		{0, 16, model.Pitch{Int: 60}},
		{0, 16, model.Pitch{Int: 64}},
		{0, 16, model.Pitch{Int: 67}},
	}))

	assert := assert.New(t)
	assert.Len(res.Renders, 1)
	r := res.Renders[0]
	assert.Equal(3, countValue(r, glyph.NoteheadBlack))
	assert.Greater(r.Width, 0.0)
	// the rests after the chord
	assert.Equal(1, countValue(r, glyph.Rest(model.Quarter)))
	assert.Equal(1, countValue(r, glyph.Rest(model.Half)))
}

func TestAccidentalsE2E(t *testing.T) {
	res := postRender(t, document([]tone{
		{0, 16, model.Pitch{Int: 66, Accidental: model.Sharp}},
		{16, 16, model.Pitch{Int: 66, Accidental: model.Sharp}},
		{32, 16, model.Pitch{Int: 65}},
	}))

	r := res.Renders[0]
	assert := assert.New(t)
	assert.Equal(1, countValue(r, glyph.AccidentalSharp))
	assert.Equal(1, countValue(r, glyph.AccidentalNatural))
}
