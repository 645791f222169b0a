// chartview demonstrates two overlapping color charts in the terminal.
//
// Usage:
//
//	chartview            - Run the overlay demo and print every check
//	chartview map        - Draw the overlay map of the demo charts
//
// Global flags:
//
//	--verbose        - Log every query at debug level (stderr)
//	--color <mode>   - Color swatches: auto, always, never (default: auto)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chart-overlay/internal/config"
	"github.com/vovakirdan/chart-overlay/internal/demo"
	"github.com/vovakirdan/chart-overlay/internal/platform/console"
)

var (
	// Global flags
	flagVerbose bool
	flagColor   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chartview",
	Short: "Chart overlay demo - overlap and point colors of two charts",
	Long: `chartview builds two rectangular color charts, reports whether they
overlap and prints the color a set of sample points renders as. Points
inside both charts get the blended color of the two.

Examples:
  chartview
  chartview --color always
  chartview --verbose
  chartview map --phase updated`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDemo,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every query at debug level")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", string(console.ColorAuto), "Color swatches: auto, always, never")

	rootCmd.AddCommand(mapCmd)
}

// newLogger returns the stderr logger shared by all commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chartview",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// newPainter resolves --color for stdout. An unknown mode falls back to auto.
func newPainter(logger *log.Logger) *console.Painter {
	mode, err := console.ParseColorMode(flagColor)
	if err != nil {
		logger.Warn("ignoring --color", "error", err)
	}
	return console.NewPainter(os.Stdout, mode)
}

// loadScenario returns the demo scenario, falling back to the built-in one.
func loadScenario(logger *log.Logger) config.Scenario {
	sc, err := config.Load()
	if err != nil {
		logger.Warn("embedded scenario unreadable, using built-in default", "error", err)
	}
	return sc
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	painter := newPainter(logger)
	sc := loadScenario(logger)

	runner := demo.NewRunner(cmd.OutOrStdout(),
		demo.WithLogger(logger),
		demo.WithSwatch(painter.Swatch),
	)
	if _, err := runner.Run(sc); err != nil {
		return err
	}
	return nil
}
