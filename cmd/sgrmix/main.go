// sgrmix is a utility for working with true-color SGR sequences: it prints
// the palette chart, combines two colors bitwise, and shows an example
// colored prompt
package main

import (
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var log *slog.Logger

func main() {
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "sgrmix",
		Short:         "true-color SGR palette and combination utility",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if debug {
				level = slog.LevelDebug
			}
			handler := tint.NewHandler(os.Stderr, &tint.Options{
				Level:      level,
				TimeFormat: "15:04:05.000",
			})
			log = slog.New(handler)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(chartCmd(), mixCmd(), promptCmd())

	if err := rootCmd.Execute(); err != nil {
		cobra.CheckErr(err)
	}
}
