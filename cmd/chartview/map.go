package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chart-overlay/internal/config"
	"github.com/vovakirdan/chart-overlay/internal/core"
	"github.com/vovakirdan/chart-overlay/internal/platform/console"
)

var flagPhase string

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Draw the overlay map of the demo charts",
	Long: `Draws every integer point around the two charts, one character per
point, with y growing upwards. Cells are shaded with the color the point
renders as when color output is enabled.

Phases:
  initial - The charts as first built
  updated - The charts after the demo's update step

Examples:
  chartview map
  chartview map --phase updated --color always`,
	Args: cobra.NoArgs,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().StringVar(&flagPhase, "phase", "initial", "Which view to draw: initial, updated")
}

func runMap(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	painter := newPainter(logger)
	sc := loadScenario(logger)

	view, phase, err := selectView(sc, flagPhase)
	if err != nil {
		return err
	}
	if phase != flagPhase {
		logger.Warn("scenario has no update step, drawing initial view")
	}

	// Cap the map to the terminal, leaving room for the header and legend.
	maxW, maxH := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		maxW = w
		maxH = h - 4
	}

	screen, area := console.DrawMap(view, maxW, maxH)
	logger.Debug("map drawn", "x", area.X, "y", area.Y, "w", area.W, "h", area.H)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, painter.Header(fmt.Sprintf("%s (%s) x %d..%d, y %d..%d",
		sc.Name, phase, area.X, area.Right()-1, area.Y, area.Bottom()-1)))
	fmt.Fprintln(out, painter.RenderScreen(screen))
	fmt.Fprintln(out, console.Legend)
	if view.Overlaps() {
		fmt.Fprintln(out, "overlap: 1")
	} else {
		fmt.Fprintln(out, "overlap: 0")
	}
	return nil
}

// selectView returns the view for the requested phase and the phase it
// actually shows. A scenario without an update step always shows "initial".
func selectView(sc config.Scenario, phase string) (core.View, string, error) {
	view := sc.View()
	switch phase {
	case "initial":
		return view, phase, nil
	case "updated":
		if sc.Update == nil {
			return view, "initial", nil
		}
		return sc.Update.Apply(view), phase, nil
	default:
		return view, "", fmt.Errorf("unknown phase %q (want initial or updated)", phase)
	}
}
