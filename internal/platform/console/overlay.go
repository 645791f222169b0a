package console

import (
	"github.com/vovakirdan/chart-overlay/internal/core"
)

// Map glyphs, one per membership.
const (
	GlyphNeither = '.'
	GlyphFirst   = '1'
	GlyphSecond  = '2'
	GlyphBoth    = '#'
)

// Legend explains the map glyphs.
const Legend = "1 = first only   2 = second only   # = both   . = neither"

// Glyph returns the map character for a membership.
func Glyph(m core.Membership) rune {
	switch m {
	case core.InFirst:
		return GlyphFirst
	case core.InSecond:
		return GlyphSecond
	case core.InBoth:
		return GlyphBoth
	default:
		return GlyphNeither
	}
}

// MapArea returns the world area shown by the map: both charts plus a
// one-cell margin.
func MapArea(v core.View) core.Rect {
	return v.First().Bounds().Union(v.Second().Bounds()).Inset(1)
}

// DrawMap draws the view into a new screen, one cell per integer point.
// Y grows upwards, so the top row holds the largest y. Each cell carries the
// color ColorAt returns for its point. maxW and maxH cap the screen size
// when positive; the map is clipped from the right and bottom.
func DrawMap(v core.View, maxW, maxH int) (*core.Screen, core.Rect) {
	area := MapArea(v)
	if maxW > 0 && area.W > maxW {
		area.W = maxW
	}
	if maxH > 0 && area.H > maxH {
		area.Y = area.Bottom() - maxH
		area.H = maxH
	}

	s := core.NewScreen(area.W, area.H)
	top := area.Bottom() - 1
	for sy := 0; sy < area.H; sy++ {
		for sx := 0; sx < area.W; sx++ {
			p := core.Pt(area.X+sx, top-sy)
			s.Set(sx, sy, Glyph(v.Membership(p)), v.ColorAt(p))
		}
	}
	return s, area
}
