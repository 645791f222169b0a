// Package demo drives the chart overlay scenario: it builds the view,
// queries overlap and point colors, prints the results and records them.
package demo

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chart-overlay/internal/config"
	"github.com/vovakirdan/chart-overlay/internal/core"
)

// Check is the result of querying one point.
type Check struct {
	Point      core.Point
	Membership core.Membership
	Color      core.Color
}

// Phase holds the charts of the view at one step and what was computed on them.
type Phase struct {
	First   core.Chart
	Second  core.Chart
	Overlap bool
	Checks  []Check
}

// Report collects every phase of a run, in order.
type Report struct {
	Scenario string
	Phases   []Phase
}

// Runner executes a scenario and prints it line by line.
type Runner struct {
	out    io.Writer
	logger *log.Logger
	swatch func(core.Color) string
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for debug traces of each query.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithSwatch sets a function whose output is appended to each check line.
// The console package uses it to show the color itself.
func WithSwatch(fn func(core.Color) string) Option {
	return func(r *Runner) {
		r.swatch = fn
	}
}

// NewRunner creates a runner printing to out.
func NewRunner(out io.Writer, opts ...Option) *Runner {
	r := &Runner{out: out}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	return r
}

// Run plays the scenario: the initial view with its probes, then the
// update step if there is one.
func (r *Runner) Run(sc config.Scenario) (Report, error) {
	report := Report{Scenario: sc.Name}
	view := sc.View()
	probes := config.Points(sc.Probes)

	r.logger.Info("running scenario", "name", sc.Name, "probes", len(probes))

	if len(probes) > 0 {
		if err := r.printf("Testing point p: %s\n", probes[0]); err != nil {
			return report, err
		}
	}
	phase, err := r.runPhase(view, probes)
	if err != nil {
		return report, err
	}
	report.Phases = append(report.Phases, phase)

	if sc.Update == nil {
		return report, nil
	}

	view = sc.Update.Apply(view)
	r.logger.Debug("charts updated", "first", view.First(), "second", view.Second())

	phase, err = r.runPhase(view, config.Points(sc.Update.Probes))
	if err != nil {
		return report, err
	}
	report.Phases = append(report.Phases, phase)

	return report, nil
}

// runPhase prints both charts, the overlap flag and one line per probe.
func (r *Runner) runPhase(view core.View, probes []core.Point) (Phase, error) {
	phase := Phase{
		First:   view.First(),
		Second:  view.Second(),
		Overlap: view.Overlaps(),
		Checks:  make([]Check, 0, len(probes)),
	}
	r.logger.Debug("overlap evaluated", "overlap", phase.Overlap)

	if err := r.printf("%s\n%s\n", phase.First, phase.Second); err != nil {
		return phase, err
	}
	if err := r.printf("overlap: %d\n", boolToInt(phase.Overlap)); err != nil {
		return phase, err
	}

	for _, p := range probes {
		check := Check{
			Point:      p,
			Membership: view.Membership(p),
			Color:      view.ColorAt(p),
		}
		r.logger.Debug("point checked", "point", p, "membership", check.Membership, "color", check.Color)

		if err := r.printf("Check: %s has color %s%s\n", p, check.Color, r.decorate(check.Color)); err != nil {
			return phase, err
		}
		phase.Checks = append(phase.Checks, check)
	}
	return phase, nil
}

func (r *Runner) decorate(c core.Color) string {
	if r.swatch == nil {
		return ""
	}
	if s := r.swatch(c); s != "" {
		return " " + s
	}
	return ""
}

func (r *Runner) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		return fmt.Errorf("demo: write output: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
