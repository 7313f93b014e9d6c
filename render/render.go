// Package render runs the layout pipeline of a flow from the score store
// to draw instructions.
package render

import (
	"github.com/jsphweid/engrave/accidental"
	"github.com/jsphweid/engrave/beam"
	"github.com/jsphweid/engrave/chord"
	"github.com/jsphweid/engrave/constants"
	"github.com/jsphweid/engrave/draw"
	"github.com/jsphweid/engrave/logger"
	"github.com/jsphweid/engrave/meter"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/notation"
	"github.com/jsphweid/engrave/score"
	"github.com/jsphweid/engrave/spacing"
	"github.com/jsphweid/engrave/stem"
	"github.com/jsphweid/engrave/units"
	"github.com/pkg/errors"
)

type Options struct {
	PxPerMM  float64
	Measurer units.TextMeasurer
}

// DefaultOptions renders at 96dpi with the bundled sans font for names.
func DefaultOptions() (Options, error) {
	measurer, err := units.NewFontMeasurer()
	if err != nil {
		return Options{}, err
	}
	return Options{PxPerMM: constants.PxPerMM, Measurer: measurer}, nil
}

// Flow renders one flow. It holds the store's read lock throughout.
func Flow(s *score.Store, flowKey string, opts Options) (*model.Render, error) {
	s.RLock()
	defer s.RUnlock()

	layout, voices, err := Derive(s, flowKey, opts)
	if err != nil {
		return nil, err
	}
	instructions, err := draw.Flow(*layout, voices)
	if err != nil {
		return nil, errors.Wrapf(err, "could not draw flow %v", flowKey)
	}

	c := layout.Frame.Converter
	padding := s.Engrave.FramePadding
	res := &model.Render{
		Flow:         flowKey,
		Width:        c.SpacesToPx(layout.Frame.X+layout.H.Width) + c.MMToPx(padding.Right),
		Height:       c.SpacesToPx(layout.Frame.Y+layout.V.Height) + c.MMToPx(padding.Bottom),
		Instructions: instructions,
	}
	logger.Info("rendered flow", logger.Fields{
		"flow":         flowKey,
		"instructions": len(instructions),
		"width":        res.Width,
		"height":       res.Height,
	})
	return res, nil
}

func stage(flowKey, name string, fields logger.Fields) {
	if !logger.IsDebug() {
		return
	}
	if fields == nil {
		fields = logger.Fields{}
	}
	fields["flow"] = flowKey
	fields["stage"] = name
	logger.Debug("stage done", fields)
}

// Derive computes the geometry of a flow and every voice on it. The
// caller holds the store's read lock.
func Derive(s *score.Store, flowKey string, opts Options) (*draw.Layout, []draw.Voice, error) {
	flow, ok := s.Flows[flowKey]
	if !ok {
		return nil, nil, model.Missing("flow", flowKey)
	}
	master, ok := s.Tracks[flow.Master]
	if !ok {
		return nil, nil, model.Missing("master track", flow.Master)
	}
	engrave := s.Engrave
	converter := units.NewConverter(engrave, opts.PxPerMM)
	measurer := opts.Measurer
	if measurer == nil {
		measurer = units.FixedMeasurer{Em: 0.5}
	}

	m := meter.Derive(master, flow.Length, flow.Subdivisions)
	stage(flowKey, "meter", logger.Fields{"bars": len(m.Bars)})

	v, err := spacing.VerticalSpacing(spacing.VerticalInput{
		Flow:        flow,
		Players:     s.Players,
		Instruments: s.Instruments,
		Engrave:     engrave,
		Converter:   converter,
		Measurer:    measurer,
	})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "vertical spacing of flow %v", flowKey)
	}
	stage(flowKey, "vertical", logger.Fields{"staves": len(v.Order), "height": v.Height})

	notations := make(map[string]*notation.Track)
	for _, staveKey := range v.Order {
		for _, trackKey := range flow.Staves[staveKey].Tracks {
			track, ok := s.Tracks[trackKey]
			if !ok {
				return nil, nil, model.Missing("track", trackKey)
			}
			n, err := notation.Build(track, m)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "track %v", trackKey)
			}
			notations[trackKey] = n
		}
	}
	stage(flowKey, "notation", logger.Fields{"tracks": len(notations)})

	beams := beam.All(notations, m)
	stage(flowKey, "beams", nil)

	offsets, err := chord.FlowOffsets(flow, s.Tracks)
	if err != nil {
		return nil, nil, err
	}

	accidentals := accidental.New()
	var clefs []*model.Track
	for _, staveKey := range v.Order {
		stave := flow.Staves[staveKey]
		clefs = append(clefs, s.Tracks[stave.Master])
		if err := accidentals.AddStave(stave, notations, master, m, offsets); err != nil {
			return nil, nil, errors.Wrapf(err, "accidentals of stave %v", staveKey)
		}
	}
	stage(flowKey, "accidentals", nil)

	var voices []draw.Voice
	var shunts []*chord.Shunts
	var tracks []*notation.Track
	for _, staveKey := range v.Order {
		stave := flow.Staves[staveKey]
		for _, trackKey := range stave.Tracks {
			track := notations[trackKey]
			directions, err := stem.Directions(track, offsets, beams[trackKey])
			if err != nil {
				return nil, nil, err
			}
			shunt, err := chord.TrackShunts(track, offsets, directions)
			if err != nil {
				return nil, nil, err
			}
			stems, err := stem.Stems(track, offsets, beams[trackKey], directions, engrave.MaxBeamSlant)
			if err != nil {
				return nil, nil, err
			}
			shunts = append(shunts, shunt)
			tracks = append(tracks, track)
			voices = append(voices, draw.Voice{
				Stave:       stave,
				Notation:    track,
				Offsets:     offsets,
				Directions:  directions,
				Stems:       stems,
				Beams:       beams[trackKey],
				Shunts:      shunt,
				Accidentals: accidentals,
			})
		}
	}
	stage(flowKey, "stems", logger.Fields{"voices": len(voices)})

	h := spacing.HorizontalSpacing(spacing.HorizontalInput{
		Meter:       m,
		Master:      master,
		Clefs:       clefs,
		Tracks:      tracks,
		Accidentals: accidentals,
		Shunts:      shunts,
		Engrave:     engrave,
	})
	stage(flowKey, "horizontal", logger.Fields{"width": h.Width})

	layout := &draw.Layout{
		Frame: draw.Frame{
			Converter: converter,
			X:         converter.MMToSpaces(engrave.FramePadding.Left) + v.Left,
			Y:         converter.MMToSpaces(engrave.FramePadding.Top) + constants.FlowTitleClearance,
		},
		Flow:    flow,
		Master:  master,
		Tracks:  s.Tracks,
		Meter:   m,
		H:       h,
		V:       v,
		Engrave: engrave,
	}
	return layout, voices, nil
}
