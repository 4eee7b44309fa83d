// Package cells paints widget trees onto a terminal cell grid.
//
// One logical unit is one cell. Coordinates are rounded to the nearest cell
// after translation, and text advances by the display width of each rune.
package cells

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/boxlayout/pkg/graphics"
)

type cell struct {
	r  rune
	fg graphics.Color
	bg graphics.Color
}

type rect struct {
	x0, y0, x1, y1 int
}

func (r rect) intersect(o rect) rect {
	out := rect{max(r.x0, o.x0), max(r.y0, o.y0), min(r.x1, o.x1), min(r.y1, o.y1)}
	if out.x0 >= out.x1 || out.y0 >= out.y1 {
		return rect{}
	}
	return out
}

func (r rect) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

type state struct {
	origin graphics.Point
	clip   rect
}

// Canvas is a graphics.Canvas backed by a grid of terminal cells.
type Canvas struct {
	width, height int
	grid          []cell
	state         state
	stack         []state
}

// New returns a blank canvas of width x height cells.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		width:  width,
		height: height,
		grid:   make([]cell, width*height),
		state:  state{clip: rect{0, 0, width, height}},
	}
	for i := range c.grid {
		c.grid[i].r = ' '
	}
	return c
}

// Width returns the grid width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the grid height in cells.
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.state.origin = c.state.origin.Translate(dx, dy)
}

func (c *Canvas) ClipRect(r graphics.Rect) {
	c.state.clip = c.state.clip.intersect(c.toCells(r))
}

// DrawRect fills the covered cells with color as background and clears
// their glyphs. Fully transparent colors draw nothing.
func (c *Canvas) DrawRect(r graphics.Rect, color graphics.Color) {
	if color.Alpha8() == 0 {
		return
	}
	area := c.toCells(r).intersect(c.state.clip)
	for y := area.y0; y < area.y1; y++ {
		for x := area.x0; x < area.x1; x++ {
			c.grid[y*c.width+x] = cell{r: ' ', bg: color}
		}
	}
}

// DrawText writes text on a single row starting at position. Wide runes
// occupy their display width; the trailing cells are blanked.
func (c *Canvas) DrawText(text string, position graphics.Point, color graphics.Color) {
	p := c.state.origin.Add(position)
	x, y := round(p.X), round(p.Y)
	for _, r := range text {
		w := lipgloss.Width(string(r))
		if w == 0 {
			continue
		}
		for i := 0; i < w; i++ {
			if !c.state.clip.contains(x+i, y) {
				continue
			}
			idx := y*c.width + x + i
			c.grid[idx].fg = color
			if i == 0 {
				c.grid[idx].r = r
			} else {
				c.grid[idx].r = 0
			}
		}
		x += w
	}
}

// Rune returns the glyph at (x, y), or 0 outside the grid.
func (c *Canvas) Rune(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.grid[y*c.width+x].r
}

// Background returns the fill color at (x, y).
func (c *Canvas) Background(x, y int) graphics.Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return graphics.ColorTransparent
	}
	return c.grid[y*c.width+x].bg
}

// Line returns row y as plain text without styling.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var sb strings.Builder
	for _, cl := range c.grid[y*c.width : (y+1)*c.width] {
		if cl.r != 0 {
			sb.WriteRune(cl.r)
		}
	}
	return sb.String()
}

// Render returns the grid as styled lines joined by newlines. Runs of
// cells sharing colors are rendered through one lipgloss style.
func (c *Canvas) Render() string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var sb strings.Builder
		row := c.grid[y*c.width : (y+1)*c.width]
		for start := 0; start < len(row); {
			end := start
			var run strings.Builder
			for end < len(row) && row[end].fg == row[start].fg && row[end].bg == row[start].bg {
				if row[end].r != 0 {
					run.WriteRune(row[end].r)
				}
				end++
			}
			sb.WriteString(style(row[start].fg, row[start].bg).Render(run.String()))
			start = end
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func style(fg, bg graphics.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg.Alpha8() != 0 {
		s = s.Foreground(termColor(fg))
	}
	if bg.Alpha8() != 0 {
		s = s.Background(termColor(bg))
	}
	return s
}

// termColor drops alpha; terminals have no blending.
func termColor(c graphics.Color) lipgloss.Color {
	return lipgloss.Color(c.String()[:7])
}

func (c *Canvas) toCells(r graphics.Rect) rect {
	r = r.Translate(c.state.origin.X, c.state.origin.Y)
	return rect{round(r.Left), round(r.Top), round(r.Right), round(r.Bottom)}
}

func round(v float64) int {
	return int(math.Round(v))
}

// Measurer measures text in cells using its terminal display width.
type Measurer struct{}

func (Measurer) MeasureText(text string) graphics.Size {
	if text == "" {
		return graphics.Size{Height: 1}
	}
	return graphics.Size{Width: float64(lipgloss.Width(text)), Height: 1}
}
