package cmd

import (
	"os"

	"github.com/jsphweid/engrave/config"
	"github.com/jsphweid/engrave/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfg = config.Load()

var rootCmd = &cobra.Command{
	Use:   "engrave",
	Short: "Music notation layout engine",
	Long:  `Derives notation from a score and lays it out as draw instructions.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// a missing .env is fine, the environment may already be set
		_ = godotenv.Load()
		cfg = config.Load()
		logger.Setup(os.Stderr, cfg.LogLevel)
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
