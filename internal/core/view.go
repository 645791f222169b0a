package core

// Membership tells which charts of a View contain a point.
type Membership uint8

const (
	InNeither Membership = iota
	InFirst              // Inside the first chart only
	InSecond             // Inside the second chart only
	InBoth
)

// String returns a human-readable name for the membership.
func (m Membership) String() string {
	switch m {
	case InNeither:
		return "neither"
	case InFirst:
		return "first"
	case InSecond:
		return "second"
	case InBoth:
		return "both"
	default:
		return "unknown"
	}
}

// View holds exactly two charts queried together.
type View struct {
	first  Chart
	second Chart
}

// NewView creates a view over two charts.
func NewView(first, second Chart) View {
	return View{first: first, second: second}
}

// NewSingleView creates a view whose second chart is the degenerate
// origin-to-origin chart colored black.
func NewSingleView(first Chart) View {
	return View{
		first:  first,
		second: NewChart(Origin, Origin, Black),
	}
}

// SetCharts replaces both charts.
func (v *View) SetCharts(first, second Chart) {
	v.first = first
	v.second = second
}

// First returns the first chart.
func (v View) First() Chart {
	return v.first
}

// Second returns the second chart.
func (v View) Second() Chart {
	return v.second
}

// Overlaps reports whether the first chart overlaps the second.
func (v View) Overlaps() bool {
	return v.first.Overlaps(v.second)
}

// Membership reports which charts contain p.
func (v View) Membership(p Point) Membership {
	inFirst := v.first.ContainsPoint(p)
	inSecond := v.second.ContainsPoint(p)
	switch {
	case inFirst && inSecond:
		return InBoth
	case inFirst:
		return InFirst
	case inSecond:
		return InSecond
	default:
		return InNeither
	}
}

// ColorAt returns the color p renders as: the blended color inside both
// charts, the chart's own color inside exactly one, black otherwise.
func (v View) ColorAt(p Point) Color {
	switch v.Membership(p) {
	case InBoth:
		return v.first.AverageColor(v.second)
	case InFirst:
		return v.first.Color()
	case InSecond:
		return v.second.Color()
	default:
		return Black
	}
}
