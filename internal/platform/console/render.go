package console

import (
	"strings"

	"github.com/vovakirdan/chart-overlay/internal/core"
)

// RenderScreen converts a Screen buffer to a string for display.
// When styling is enabled, adjacent cells with the same color are grouped
// into one styled run to minimize ANSI escape sequences.
func (p *Painter) RenderScreen(s *core.Screen) string {
	if !p.enabled {
		return s.String()
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.cellStyle(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
