package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/layout"
)

// Screen pixels covered by one terminal cell. Cells are about twice as
// tall as they are wide.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// cellOf maps a screen-space point to a cell.
func cellOf(p layout.Point) (col, row int) {
	return int(math.Floor(p.X / CellWidth)), int(math.Floor(p.Y / CellHeight))
}

type cell struct {
	ch    rune
	style int
}

// canvas is a character grid. Styles are referenced by index into a shared
// palette so runs of equal style can be rendered together.
type canvas struct {
	cols, rows int
	cells      []cell
	palette    *palette
}

func newCanvas(cols, rows int, p *palette) *canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c := &canvas{cols: cols, rows: rows, cells: make([]cell, cols*rows), palette: p}
	for i := range c.cells {
		c.cells[i] = cell{ch: ' '}
	}
	return c
}

func (c *canvas) set(col, row int, ch rune, style int) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = cell{ch: ch, style: style}
}

func (c *canvas) at(col, row int) rune {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0
	}
	return c.cells[row*c.cols+col].ch
}

func (c *canvas) text(col, row int, s string, style int) {
	for _, r := range s {
		c.set(col, row, r, style)
		col++
	}
}

// line draws from a to b (exclusive of both endpoints) with Bresenham's
// algorithm.
func (c *canvas) line(c0, r0, c1, r1 int, ch rune, style int) {
	dc := abs(c1 - c0)
	dr := -abs(r1 - r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	err := dc + dr
	col, row := c0, r0
	for {
		if (col != c0 || row != r0) && (col != c1 || row != r1) {
			c.set(col, row, ch, style)
		}
		if col == c1 && row == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dr {
			err += dr
			col += sc
		}
		if e2 <= dc {
			err += dc
			row += sr
		}
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	var run []rune
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		style := -1
		flush := func() {
			if len(run) == 0 {
				return
			}
			b.WriteString(c.palette.render(style, string(run)))
			run = run[:0]
		}
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			if cl.style != style {
				flush()
				style = cl.style
			}
			run = append(run, cl.ch)
		}
		flush()
	}
	return b.String()
}

// palette interns lipgloss styles by name. Index 0 is the unstyled default.
type palette struct {
	styles []lipgloss.Style
	index  map[string]int
}

func newPalette() *palette {
	return &palette{
		styles: []lipgloss.Style{lipgloss.NewStyle()},
		index:  map[string]int{"": 0},
	}
}

func (p *palette) id(name string, mk func() lipgloss.Style) int {
	if i, ok := p.index[name]; ok {
		return i
	}
	p.styles = append(p.styles, mk())
	i := len(p.styles) - 1
	p.index[name] = i
	return i
}

func (p *palette) render(id int, s string) string {
	if id <= 0 || id >= len(p.styles) {
		return s
	}
	return p.styles[id].Render(s)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
