package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/engrave/instrument"
	"github.com/jsphweid/engrave/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Lists the instruments a score can use",
	Run: func(cmd *cobra.Command, args []string) {
		Catalog(os.Stdout)
	},
}

func Instruments() []model.InstrumentResponse {
	var res []model.InstrumentResponse
	for _, id := range instrument.IDs() {
		def, _ := instrument.Get(id)
		res = append(res, model.InstrumentResponse{
			ID:        def.ID,
			Family:    string(def.Family),
			LongName:  instrument.Name(def, 0),
			ShortName: instrument.ShortName(def, 0),
			Staves:    len(def.Staves),
		})
	}
	return res
}

func Catalog(w io.Writer) {
	for _, i := range Instruments() {
		fmt.Fprintf(w, "%-24v %-20v %-8v %d\n", i.ID, i.LongName, i.ShortName, i.Staves)
	}
}
