// Package console provides terminal presentation for the chart overlay:
// color swatches, the overlay map and styled rendering via Lip Gloss.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vovakirdan/chart-overlay/internal/core"
)

// ColorMode selects when output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Style only when writing to a terminal
	ColorAlways ColorMode = "always" // Always style
	ColorNever  ColorMode = "never"  // Plain text
)

// ParseColorMode converts a flag value to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return ColorAuto, fmt.Errorf("console: unknown color mode %q (want auto, always or never)", s)
	}
}

// Enabled reports whether the mode styles output written to w.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Hex returns the color as "#rrggbb".
func Hex(c core.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// IsLight reports whether text on top of c should be dark.
func IsLight(c core.Color) bool {
	cf, _ := colorful.MakeColor(c)
	l, _, _ := cf.Lab()
	return l > 0.5
}

// Painter styles console output for one writer.
type Painter struct {
	renderer *lipgloss.Renderer
	enabled  bool

	header lipgloss.Style
	dim    lipgloss.Style
}

// NewPainter creates a painter for w. With styling disabled every method
// returns plain text. ColorAlways styles in true color even when w is not a
// terminal.
func NewPainter(w io.Writer, mode ColorMode) *Painter {
	r := lipgloss.NewRenderer(w)
	if mode == ColorAlways {
		r.SetColorProfile(termenv.TrueColor)
	}
	return &Painter{
		renderer: r,
		enabled:  mode.Enabled(w),
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		dim:      r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Enabled reports whether the painter styles its output.
func (p *Painter) Enabled() bool {
	return p.enabled
}

// Swatch returns a two-cell block filled with c followed by its hex code.
// It returns an empty string when styling is disabled.
func (p *Painter) Swatch(c core.Color) string {
	if !p.enabled {
		return ""
	}
	block := p.renderer.NewStyle().Background(lipgloss.Color(Hex(c))).Render("  ")
	return block + " " + p.dim.Render(Hex(c))
}

// Header styles a title line.
func (p *Painter) Header(s string) string {
	if !p.enabled {
		return s
	}
	return p.header.Render(s)
}

// cellStyle returns the style used to shade a map cell of color c.
func (p *Painter) cellStyle(c core.Color) lipgloss.Style {
	fg := lipgloss.Color("15")
	if IsLight(c) {
		fg = lipgloss.Color("0")
	}
	return p.renderer.NewStyle().
		Background(lipgloss.Color(Hex(c))).
		Foreground(fg)
}
