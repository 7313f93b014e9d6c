package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/notation"
)

// Note is one notehead of a chord.
type Note struct {
	Tone   *model.Tone
	Offset int
}

// Notes returns the noteheads of n sorted lowest on the page first.
func Notes(n *notation.Notation, offsets Offsets) ([]Note, error) {
	res := make([]Note, 0, len(n.Tones))
	for _, tone := range n.Tones {
		offset, ok := offsets[tone.Key]
		if !ok {
			return nil, model.Missing("tone offset", tone.Key)
		}
		res = append(res, Note{Tone: tone, Offset: offset})
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Offset != res[j].Offset {
			return res[i].Offset > res[j].Offset
		}
		return res[i].Tone.Key < res[j].Tone.Key
	})
	return res, nil
}

// Extremes returns the topmost and bottommost offsets of a chord.
func Extremes(notes []Note) (top, bottom int) {
	if len(notes) == 0 {
		return 0, 0
	}
	top, bottom = notes[0].Offset, notes[0].Offset
	for _, n := range notes[1:] {
		if n.Offset < top {
			top = n.Offset
		}
		if n.Offset > bottom {
			bottom = n.Offset
		}
	}
	return top, bottom
}

// Clusters splits sorted notes wherever neighbours are more than a step
// apart.
func Clusters(notes []Note) [][]Note {
	var res [][]Note
	var current []Note
	for i, n := range notes {
		if i > 0 && notes[i-1].Offset-n.Offset > 1 {
			res = append(res, current)
			current = nil
		}
		current = append(current, n)
	}
	if len(current) > 0 {
		res = append(res, current)
	}
	return res
}

// Key identifies a chord by its offsets, lowest first, e.g. "4-3-1".
func Key(notes []Note) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = fmt.Sprintf("%v", n.Offset)
	}
	return strings.Join(parts, "-")
}
