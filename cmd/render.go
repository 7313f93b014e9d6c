package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/render"
	"github.com/jsphweid/engrave/score"
	"github.com/jsphweid/engrave/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	renderFlow   string
	renderFormat string
	renderOutput string
)

func init() {
	renderCmd.Flags().StringVar(&renderFlow, "flow", "", "render only the flow with this key or title")
	renderCmd.Flags().StringVar(&renderFormat, "format", "json", "output format, json or yaml")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write to a file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <score>",
	Short: "Renders a score to draw instructions",
	Long:  `Renders every flow of a score (or one, with --flow) to draw instructions.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runRender(args[0]))
	},
}

// flowKey resolves a flow by key or title.
func flowKey(s *score.Store, name string) (string, error) {
	s.RLock()
	defer s.RUnlock()
	for _, key := range s.FlowOrder {
		if key == name || s.Flows[key].Title == name {
			return key, nil
		}
	}
	return "", model.Missing("flow", name)
}

func Render(s *score.Store, flow string, opts render.Options) ([]*model.Render, error) {
	if flow == "" {
		return render.All(s, opts, cfg.RenderWorkers)
	}
	key, err := flowKey(s, flow)
	if err != nil {
		return nil, err
	}
	r, err := render.Flow(s, key, opts)
	if err != nil {
		return nil, err
	}
	return []*model.Render{r}, nil
}

func encode(renders []*model.Render, format string) ([]byte, error) {
	res := model.RenderResponse{Renders: make([]model.Render, 0, len(renders))}
	for _, r := range renders {
		res.Renders = append(res.Renders, *r)
	}
	switch format {
	case "json":
		return json.MarshalIndent(res, "", "  ")
	case "yaml":
		return yaml.Marshal(res)
	}
	return nil, errors.Errorf("unknown format %q", format)
}

func runRender(path string) error {
	s, err := LoadScore(path)
	if err != nil {
		return err
	}
	opts, err := renderOptions()
	if err != nil {
		return err
	}
	renders, err := Render(s, renderFlow, opts)
	if err != nil {
		return err
	}
	data, err := encode(renders, renderFormat)
	if err != nil {
		return err
	}
	if renderOutput == "" {
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}
	return util.WriteOutput(renderOutput, data)
}
