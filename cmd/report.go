package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/render"
	"github.com/jsphweid/engrave/score"
	"github.com/jsphweid/engrave/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <score>",
	Short: "Creates a report",
	Long:  `Renders a score and reports the size of every flow.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := LoadScore(args[0])
		cobra.CheckErr(err)
		opts, err := renderOptions()
		cobra.CheckErr(err)
		cobra.CheckErr(Report(os.Stdout, s, opts))
	},
}

type flowReport struct {
	title        string
	instructions int
	kinds        map[model.InstructionKind]int
	width        float64
	height       float64
	bytes        uint64
}

func analyzeFlow(title string, r *model.Render) (flowReport, error) {
	res := flowReport{
		title:        title,
		instructions: len(r.Instructions),
		kinds:        make(map[model.InstructionKind]int),
		width:        r.Width,
		height:       r.Height,
	}
	for _, i := range r.Instructions {
		res.kinds[i.Kind]++
	}
	data, err := json.Marshal(r)
	if err != nil {
		return res, err
	}
	res.bytes = uint64(len(data))
	return res, nil
}

func Report(w io.Writer, s *score.Store, opts render.Options) error {
	renders, err := render.All(s, opts, cfg.RenderWorkers)
	if err != nil {
		return err
	}
	var sizes []uint64
	for _, r := range renders {
		s.RLock()
		title := s.Flows[r.Flow].Title
		s.RUnlock()
		report, err := analyzeFlow(title, r)
		if err != nil {
			return err
		}
		sizes = append(sizes, report.bytes)
		fmt.Fprintf(w, "flow %q\n", report.title)
		fmt.Fprintf(w, "  instructions: %v\n", humanize.Comma(int64(report.instructions)))
		for _, kind := range []model.InstructionKind{
			model.InstructionLine, model.InstructionText, model.InstructionShape,
			model.InstructionCurve, model.InstructionCircle,
		} {
			if n := report.kinds[kind]; n > 0 {
				fmt.Fprintf(w, "    %-7v %v\n", kind, humanize.Comma(int64(n)))
			}
		}
		fmt.Fprintf(w, "  size: %vpx x %vpx (%vmm x %vmm)\n",
			humanize.Ftoa(report.width), humanize.Ftoa(report.height),
			humanize.FtoaWithDigits(report.width/opts.PxPerMM, 1), humanize.FtoaWithDigits(report.height/opts.PxPerMM, 1))
		fmt.Fprintf(w, "  json: %v\n", humanize.Bytes(report.bytes))
	}
	fmt.Fprintf(w, "flows: %v, json total: %v\n", len(renders), humanize.Bytes(util.Sum(sizes)))
	return nil
}
