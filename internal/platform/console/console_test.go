package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/chart-overlay/internal/core"
)

func demoView() core.View {
	return core.NewView(
		core.NewChart(core.Pt(10, 30), core.Pt(20, 15), core.RGB(50, 50, 50)),
		core.NewChart(core.Pt(15, 20), core.Pt(30, 10), core.RGB(150, 150, 150)),
	)
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in       string
		expected ColorMode
		wantErr  bool
	}{
		{"auto", ColorAuto, false},
		{"ALWAYS", ColorAlways, false},
		{"never", ColorNever, false},
		{"sometimes", ColorAuto, true},
		{"", ColorAuto, true},
	}

	for _, tc := range tests {
		got, err := ParseColorMode(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseColorMode(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParseColorMode(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestColorModeEnabled(t *testing.T) {
	var buf bytes.Buffer
	if ColorAuto.Enabled(&buf) {
		t.Error("auto should be disabled for a non-terminal writer")
	}
	if !ColorAlways.Enabled(&buf) {
		t.Error("always should be enabled")
	}
	if ColorNever.Enabled(&buf) {
		t.Error("never should be disabled")
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c        core.Color
		expected string
	}{
		{core.RGB(50, 50, 50), "#323232"},
		{core.RGB(100, 100, 100), "#646464"},
		{core.RGB(255, 0, 128), "#ff0080"},
		{core.Black, "#000000"},
	}
	for _, tc := range tests {
		if got := Hex(tc.c); got != tc.expected {
			t.Errorf("Hex(%v) = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}

func TestIsLight(t *testing.T) {
	if IsLight(core.Black) {
		t.Error("black should not be light")
	}
	if !IsLight(core.RGB(255, 255, 255)) {
		t.Error("white should be light")
	}
	if IsLight(core.RGB(50, 50, 50)) {
		t.Error("dark grey should not be light")
	}
}

func TestPainterDisabled(t *testing.T) {
	p := NewPainter(&bytes.Buffer{}, ColorNever)

	if p.Enabled() {
		t.Fatal("painter should be disabled")
	}
	if got := p.Swatch(core.RGB(1, 2, 3)); got != "" {
		t.Errorf("Swatch() = %q, expected empty", got)
	}
	if got := p.Header("title"); got != "title" {
		t.Errorf("Header() = %q, expected plain text", got)
	}

	s, _ := DrawMap(demoView(), 0, 0)
	if got := p.RenderScreen(s); got != s.String() {
		t.Error("RenderScreen() should equal Screen.String() when disabled")
	}
}

func TestPainterEnabled(t *testing.T) {
	p := NewPainter(&bytes.Buffer{}, ColorAlways)

	if !p.Enabled() {
		t.Fatal("painter should be enabled")
	}
	swatch := p.Swatch(core.RGB(100, 100, 100))
	if !strings.Contains(swatch, "#646464") {
		t.Errorf("Swatch() = %q, expected it to carry the hex code", swatch)
	}
	// A buffer is not a terminal; always must still emit escape sequences.
	if !strings.Contains(swatch, "\x1b[") {
		t.Errorf("Swatch() = %q, expected ANSI styling", swatch)
	}
	if got := p.Header("title"); !strings.Contains(got, "\x1b[") {
		t.Errorf("Header() = %q, expected ANSI styling", got)
	}

	s, _ := DrawMap(demoView(), 0, 0)
	rendered := p.RenderScreen(s)
	if lines := strings.Split(rendered, "\n"); len(lines) != s.Height() {
		t.Errorf("RenderScreen() has %d lines, expected %d", len(lines), s.Height())
	}
	if !strings.Contains(rendered, "######") {
		t.Error("RenderScreen() should keep the glyphs of the overlap area")
	}
	if !strings.Contains(rendered, "\x1b[") {
		t.Error("RenderScreen() should shade cells with ANSI styling")
	}
}

func TestGlyph(t *testing.T) {
	tests := map[core.Membership]rune{
		core.InNeither: GlyphNeither,
		core.InFirst:   GlyphFirst,
		core.InSecond:  GlyphSecond,
		core.InBoth:    GlyphBoth,
	}
	for m, expected := range tests {
		if got := Glyph(m); got != expected {
			t.Errorf("Glyph(%v) = %q, expected %q", m, got, expected)
		}
	}
}

func TestDrawMap(t *testing.T) {
	view := demoView()
	s, area := DrawMap(view, 0, 0)

	if area != core.NewRect(9, 9, 23, 23) {
		t.Fatalf("area = %+v, expected {9 9 23 23}", area)
	}
	if s.Width() != 23 || s.Height() != 23 {
		t.Fatalf("screen = %dx%d, expected 23x23", s.Width(), s.Height())
	}

	tests := []struct {
		name string
		y    int // world y
		row  string
	}{
		{"margin", 31, strings.Repeat(".", 23)},
		{"top of first", 30, "." + strings.Repeat("1", 11) + strings.Repeat(".", 11)},
		{"top of second", 20, "." + strings.Repeat("1", 5) + strings.Repeat("#", 6) + strings.Repeat("2", 10) + "."},
		{"bottom of first", 15, "." + strings.Repeat("1", 5) + strings.Repeat("#", 6) + strings.Repeat("2", 10) + "."},
		{"below first", 14, "." + strings.Repeat(".", 5) + strings.Repeat("2", 16) + "."},
		{"bottom margin", 9, strings.Repeat(".", 23)},
	}

	top := area.Bottom() - 1
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Row(top - tc.y); got != tc.row {
				t.Errorf("row y=%d = %q, expected %q", tc.y, got, tc.row)
			}
		})
	}

	// Cell colors follow ColorAt
	for _, p := range []core.Point{core.Pt(10, 30), core.Pt(15, 20), core.Pt(30, 10), core.Pt(9, 9)} {
		cell := s.GetCell(p.X-area.X, top-p.Y)
		if cell.Color != view.ColorAt(p) {
			t.Errorf("cell at %v has color %v, expected %v", p, cell.Color, view.ColorAt(p))
		}
	}
}

func TestDrawMapClipped(t *testing.T) {
	s, area := DrawMap(demoView(), 5, 3)

	if s.Width() != 5 || s.Height() != 3 {
		t.Fatalf("screen = %dx%d, expected 5x3", s.Width(), s.Height())
	}
	if area != core.NewRect(9, 29, 5, 3) {
		t.Errorf("area = %+v, expected {9 29 5 3}", area)
	}
	if got := s.Row(1); got != ".1111" {
		t.Errorf("Row(1) = %q, expected %q", got, ".1111")
	}
}

func TestDrawMapSingleView(t *testing.T) {
	view := core.NewSingleView(core.NewChart(core.Pt(1, 1), core.Pt(2, 2), core.RGB(9, 9, 9)))
	s, area := DrawMap(view, 0, 0)

	// Origin chart is part of the view and widens the map.
	if area != core.NewRect(-1, -1, 5, 5) {
		t.Fatalf("area = %+v, expected {-1 -1 5 5}", area)
	}
	want := []string{".....", "..11.", "..11.", ".2...", "....."}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}
