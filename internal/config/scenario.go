// Package config provides the YAML-backed demo scenario: the two charts,
// the probe points, and the update step replayed by the demo driver.
package config

import "github.com/vovakirdan/chart-overlay/internal/core"

// Scenario contains everything the demo driver needs to run.
type Scenario struct {
	Name   string      `yaml:"name"`
	First  ChartSpec   `yaml:"first"`
	Second *ChartSpec  `yaml:"second,omitempty"` // nil = degenerate black chart at origin
	Probes []PointSpec `yaml:"probes"`
	Update *UpdateSpec `yaml:"update,omitempty"`
}

// UpdateSpec replaces the view's charts and probes again.
// A nil chart keeps the chart currently in the view.
type UpdateSpec struct {
	First  *ChartSpec  `yaml:"first,omitempty"`
	Second *ChartSpec  `yaml:"second,omitempty"`
	Probes []PointSpec `yaml:"probes"`
}

// ChartSpec defines a chart as written in YAML.
type ChartSpec struct {
	Corner1 PointSpec `yaml:"corner1"`
	Corner2 PointSpec `yaml:"corner2"`
	Color   ColorSpec `yaml:"color"`
}

// PointSpec defines a point as written in YAML.
type PointSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ColorSpec defines a color as written in YAML.
// Channels are plain ints and get clamped into 0..255 on conversion.
type ColorSpec struct {
	R int `yaml:"r"`
	G int `yaml:"g"`
	B int `yaml:"b"`
}

// Point converts p to a core.Point.
func (p PointSpec) Point() core.Point {
	return core.Pt(p.X, p.Y)
}

// Color converts c to a core.Color, clamping each channel.
func (c ColorSpec) Color() core.Color {
	return core.NewColor(c.R, c.G, c.B)
}

// Chart converts c to a core.Chart.
func (c ChartSpec) Chart() core.Chart {
	return core.NewChart(c.Corner1.Point(), c.Corner2.Point(), c.Color.Color())
}

// View builds the initial view of the scenario.
func (s Scenario) View() core.View {
	if s.Second == nil {
		return core.NewSingleView(s.First.Chart())
	}
	return core.NewView(s.First.Chart(), s.Second.Chart())
}

// Points converts YAML points to core points.
func Points(specs []PointSpec) []core.Point {
	points := make([]core.Point, len(specs))
	for i, p := range specs {
		points[i] = p.Point()
	}
	return points
}

// Apply returns v with the update's charts put in place.
// Charts the update leaves unset are kept.
func (u UpdateSpec) Apply(v core.View) core.View {
	first, second := v.First(), v.Second()
	if u.First != nil {
		first = u.First.Chart()
	}
	if u.Second != nil {
		second = u.Second.Chart()
	}
	v.SetCharts(first, second)
	return v
}
