package units

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// TextMeasurer returns the advance width in px of text set at size px.
type TextMeasurer interface {
	Measure(text string, size float64, font string) float64
}

// FontMeasurer measures every font family with the embedded Go Regular
// face. Faces are cached per size. It is safe for concurrent use.
type FontMeasurer struct {
	mu    sync.Mutex
	src   *opentype.Font
	faces map[float64]font.Face
}

func NewFontMeasurer() (*FontMeasurer, error) {
	src, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse embedded font")
	}
	return &FontMeasurer{src: src, faces: make(map[float64]font.Face)}, nil
}

func (m *FontMeasurer) face(size float64) (font.Face, error) {
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	// at 72dpi one point is one px
	f, err := opentype.NewFace(m.src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not create face of size %v", size)
	}
	m.faces[size] = f
	return f, nil
}

func (m *FontMeasurer) Measure(text string, size float64, family string) float64 {
	if text == "" || size <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	f, err := m.face(size)
	if err != nil {
		return 0
	}
	return float64(font.MeasureString(f, text)) / 64
}

// FixedMeasurer gives every character the same width in ems.
type FixedMeasurer struct {
	Em float64
}

func (m FixedMeasurer) Measure(text string, size float64, family string) float64 {
	return float64(len([]rune(text))) * m.Em * size
}
