package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jsphweid/engrave/accidental"
	"github.com/jsphweid/engrave/beam"
	"github.com/jsphweid/engrave/chord"
	"github.com/jsphweid/engrave/meter"
	"github.com/jsphweid/engrave/notation"
	"github.com/jsphweid/engrave/pitch"
	"github.com/jsphweid/engrave/score"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <score>",
	Short: "Prints the notation derived for each voice",
	Long:  `Prints the rhythm pattern, beams and accidentals derived for every voice of every flow.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := LoadScore(args[0])
		cobra.CheckErr(err)
		cobra.CheckErr(Inspect(os.Stdout, s))
	},
}

// Inspect writes one block per voice: the pattern bar by bar, the beam
// groups and the tones that need an accidental.
func Inspect(w io.Writer, s *score.Store) error {
	s.RLock()
	defer s.RUnlock()

	for _, flowKey := range s.FlowOrder {
		flow := s.Flows[flowKey]
		master := s.Tracks[flow.Master]
		m := meter.Derive(master, flow.Length, flow.Subdivisions)
		fmt.Fprintf(w, "flow: %v (%v bars)\n", flow.Title, len(m.Bars))

		offsets, err := chord.FlowOffsets(flow, s.Tracks)
		if err != nil {
			return err
		}
		for _, playerKey := range flow.Players {
			for _, instKey := range s.Players[playerKey].Instruments {
				inst := s.Instruments[instKey]
				for i, staveKey := range inst.Staves {
					stave := flow.Staves[staveKey]
					notations := make(map[string]*notation.Track)
					for _, trackKey := range stave.Tracks {
						n, err := notation.Build(s.Tracks[trackKey], m)
						if err != nil {
							return err
						}
						notations[trackKey] = n
					}
					accidentals := accidental.New()
					if err := accidentals.AddStave(stave, notations, master, m, offsets); err != nil {
						return err
					}
					for _, trackKey := range stave.Tracks {
						fmt.Fprintf(w, "  %v stave %d\n", inst.LongName, i+1)
						inspectVoice(w, notations[trackKey], m, accidentals)
					}
				}
			}
		}
	}
	return nil
}

func inspectVoice(w io.Writer, track *notation.Track, m *meter.Meter, accidentals *accidental.Accidentals) {
	for i, bar := range notation.Bars(track.Pattern(m)) {
		fmt.Fprintf(w, "    %3d %v\n", i+1, bar)
	}
	for _, b := range beam.Track(track, m) {
		fmt.Fprintf(w, "    beam %v\n", b.Ticks)
	}
	for _, tick := range track.Ticks() {
		var needed []string
		for _, tone := range track.Events[tick].Tones {
			if e, ok := accidentals.Get(tick, tone.Key); ok && e.Needed {
				needed = append(needed, pitch.Label(tone.Pitch))
			}
		}
		if len(needed) > 0 {
			fmt.Fprintf(w, "    accidental %d %v\n", tick, strings.Join(needed, " "))
		}
	}
}
