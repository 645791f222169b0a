package config

import (
	_ "embed"
)

//go:embed defaults/demo.yaml
var defaultDemoYAML []byte

// DefaultScenario returns the built-in demo scenario.
// It matches defaults/demo.yaml and is used when the embedded file cannot be decoded.
func DefaultScenario() Scenario {
	return Scenario{
		Name: "chart-overlay",
		First: ChartSpec{
			Corner1: PointSpec{X: 10, Y: 30},
			Corner2: PointSpec{X: 20, Y: 15},
			Color:   ColorSpec{R: 50, G: 50, B: 50},
		},
		Second: &ChartSpec{
			Corner1: PointSpec{X: 15, Y: 20},
			Corner2: PointSpec{X: 30, Y: 10},
			Color:   ColorSpec{R: 150, G: 150, B: 150},
		},
		Probes: []PointSpec{
			{X: 10, Y: 30},
			{X: 15, Y: 20},
			{X: 15, Y: 15},
			{X: 30, Y: 10},
			{X: 1, Y: 1},
		},
		Update: &UpdateSpec{
			First: &ChartSpec{
				Corner1: PointSpec{X: 10, Y: 30},
				Corner2: PointSpec{X: 10, Y: 30},
				Color:   ColorSpec{R: 50, G: 50, B: 50},
			},
			Probes: []PointSpec{
				{X: 20, Y: 25},
			},
		},
	}
}

// DefaultYAML returns the embedded default scenario file.
func DefaultYAML() []byte {
	return defaultDemoYAML
}
