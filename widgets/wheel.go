package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-cof/state"
	"go-cof/theme"
	"go-cof/theory"
)

const (
	styleBlank = iota
	styleOut
	styleIn
	styleTonic
	styleDegree
	numStyles
)

type cell struct {
	r     rune
	style int
}

// canvas is a character grid where each cell carries a style slot
type canvas struct {
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

// put writes s centred on column x
func (c *canvas) put(x, y int, s string, style int) {
	if y < 0 || y >= len(c.cells) {
		return
	}
	runes := []rune(s)
	x -= len(runes) / 2
	for i, r := range runes {
		if x+i >= 0 && x+i < len(c.cells[y]) {
			c.cells[y][x+i] = cell{r: r, style: style}
		}
	}
}

func (c *canvas) render(styles [numStyles]lipgloss.Style) string {
	lines := make([]string, len(c.cells))
	for y, row := range c.cells {
		var line strings.Builder
		var run strings.Builder
		cur := styleBlank
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(styles[cur].Render(run.String()))
				run.Reset()
			}
		}
		for _, cl := range row {
			if cl.style != cur {
				flush()
				cur = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

// ringPos returns the grid position of segment i of 12 on a ring of radius r.
// Segment 0 sits at the top and the ring runs clockwise. Columns are doubled
// since terminal cells are about twice as tall as wide.
func ringPos(cx, cy, i int, r float64) (int, int) {
	angle := 2 * math.Pi * float64(i) / 12
	x := cx + int(math.Round(2*r*math.Sin(angle)))
	y := cy - int(math.Round(r*math.Cos(angle)))
	return x, y
}

// RenderWheel draws the 12 pitch classes of layout around a circle, marking
// the tonic and scale members of sc, with an inner ring of degree names
func RenderWheel(layout []theory.PitchClass, sc state.StateChange, th *theme.Theme, radius int) string {
	w := 4*radius + 7
	h := 2*radius + 1
	cx, cy := w/2, radius
	c := newCanvas(w, h)

	inner := float64(radius) * 0.55
	for i, pc := range layout {
		x, y := ringPos(cx, cy, i, float64(radius))
		degree, inScale := sc.Scale.DegreeOf(pc)
		switch {
		case degree == 0:
			c.put(x, y, string(th.Symbols.Tonic)+pc.Name, styleTonic)
		case inScale:
			c.put(x, y, string(th.Symbols.InScale)+pc.Name, styleIn)
		default:
			c.put(x, y, string(th.Symbols.OutScale)+pc.Name, styleOut)
		}
		if inScale {
			ix, iy := ringPos(cx, cy, i, inner)
			c.put(ix, iy, theory.DegreeName(degree), styleDegree)
		}
	}

	// centre caption: the selected key
	c.put(cx, cy, sc.Tonic.Name, styleTonic)

	return c.render(wheelStyles(th))
}

// wheelStyles paints every cell of the wheel, blanks included, on the theme background
func wheelStyles(th *theme.Theme) [numStyles]lipgloss.Style {
	base := lipgloss.NewStyle().Background(th.BG())
	var styles [numStyles]lipgloss.Style
	styles[styleBlank] = base
	styles[styleOut] = base.Foreground(th.Muted())
	styles[styleIn] = base.Foreground(th.FG())
	styles[styleTonic] = base.Foreground(th.Tonic()).Bold(true)
	styles[styleDegree] = base.Foreground(th.Accent())
	return styles
}
