package instrument

import (
	"fmt"

	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/util"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Family string

const (
	FamilyStrings    Family = "strings"
	FamilyWoodwinds  Family = "woodwinds"
	FamilyBrass      Family = "brass"
	FamilyPercussion Family = "percussion"
	FamilyKeyboards  Family = "keyboards"
	FamilyVoices     Family = "voices"
	FamilyGuitars    Family = "guitars"
)

type StaveDef struct {
	Lines uint8
	Clef  model.Clef
}

// Def describes an instrument type. Names are stored lower case.
type Def struct {
	ID        string
	Family    Family
	LongName  string
	ShortName string
	Staves    []StaveDef
}

func clef(symbol model.ClefSymbol, pitch uint8, offset int) model.Clef {
	return model.Clef{
		Symbol:   symbol,
		Pitch:    model.Pitch{Int: pitch},
		Offset:   offset,
		DrawType: model.ClefDrawNormal,
	}
}

var (
	treble     = StaveDef{Lines: 5, Clef: clef(model.ClefG, 67, 2)}
	bass       = StaveDef{Lines: 5, Clef: clef(model.ClefF, 53, -2)}
	alto       = StaveDef{Lines: 5, Clef: clef(model.ClefC, 60, 0)}
	percussion = StaveDef{Lines: 5, Clef: clef(model.ClefPercussion, 71, 0)}
	single     = StaveDef{Lines: 1, Clef: clef(model.ClefPercussion, 71, 0)}
)

func def(id string, family Family, long, short string, staves ...StaveDef) Def {
	return Def{ID: id, Family: family, LongName: long, ShortName: short, Staves: staves}
}

// catalog is built once and never modified.
var catalog = func() map[string]Def {
	defs := []Def{
		def("woodwinds.flute", FamilyWoodwinds, "flute", "fl.", treble),
		def("woodwinds.oboe", FamilyWoodwinds, "oboe", "ob.", treble),
		def("woodwinds.clarinet", FamilyWoodwinds, "clarinet in b♭", "cl.", treble),
		def("woodwinds.bassoon", FamilyWoodwinds, "bassoon", "bsn.", bass),
		def("brass.horn", FamilyBrass, "horn in f", "hn.", treble),
		def("brass.trumpet", FamilyBrass, "trumpet in b♭", "tpt.", treble),
		def("brass.trombone", FamilyBrass, "trombone", "tbn.", bass),
		def("brass.tuba", FamilyBrass, "tuba", "tba.", bass),
		def("percussion.drum-set", FamilyPercussion, "drum set", "d. set", percussion),
		def("percussion.triangle", FamilyPercussion, "triangle", "tri.", single),
		def("keyboards.piano", FamilyKeyboards, "piano", "pno.", treble, bass),
		def("keyboards.harpsichord", FamilyKeyboards, "harpsichord", "hpd.", treble, bass),
		def("guitars.guitar", FamilyGuitars, "guitar", "gtr.", treble),
		def("voices.soprano", FamilyVoices, "soprano", "s.", treble),
		def("voices.alto", FamilyVoices, "alto", "a.", treble),
		def("voices.tenor", FamilyVoices, "tenor", "t.", treble),
		def("voices.bass", FamilyVoices, "bass", "b.", bass),
		def("strings.violin", FamilyStrings, "violin", "vln.", treble),
		def("strings.viola", FamilyStrings, "viola", "vla.", alto),
		def("strings.violoncello", FamilyStrings, "violoncello", "vc.", bass),
		def("strings.contrabass", FamilyStrings, "contrabass", "cb.", bass),
	}
	res := make(map[string]Def, len(defs))
	for _, d := range defs {
		res[d.ID] = d
	}
	return res
}()

func Get(id string) (Def, bool) {
	d, ok := catalog[id]
	return d, ok
}

// IDs lists the catalog in a stable order.
func IDs() []string {
	return util.SortedKeys(catalog)
}

func numbered(name string, count uint8) string {
	if count == 0 {
		return name
	}
	return fmt.Sprintf("%s %d", name, count)
}

// Name is the title cased long name, numbered when the score holds more
// than one instrument of the same type.
func Name(d Def, count uint8) string {
	return numbered(title(d.LongName), count)
}

func ShortName(d Def, count uint8) string {
	return numbered(title(d.ShortName), count)
}

// A Caser keeps state between calls, so each call gets its own.
func title(s string) string {
	return cases.Title(language.English).String(s)
}
