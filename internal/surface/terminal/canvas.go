package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"quiz-presenter/internal/domain"
)

type cell struct {
	r  rune
	fg color.NRGBA
	bg color.NRGBA
}

// canvas rasterizes pixel-space draw commands onto a grid of terminal cells.
// Each cell stands for a cellW x cellH block of pixels and is sampled at its
// centre.
type canvas struct {
	cols, rows   int
	cellW, cellH float64
	cells        []cell
}

func newCanvas(cols, rows int, cellW, cellH float64) *canvas {
	return &canvas{
		cols:  cols,
		rows:  rows,
		cellW: cellW,
		cellH: cellH,
		cells: make([]cell, cols*rows),
	}
}

func (c *canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

func (c *canvas) centre(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * c.cellW, (float64(row) + 0.5) * c.cellH
}

func (c *canvas) cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / c.cellW)), int(math.Floor(y / c.cellH))
}

func (c *canvas) draw(cmds []domain.DrawCommand) {
	for _, cmd := range cmds {
		switch cmd.Kind {
		case domain.DrawFill:
			c.paint(cmd.Color, func(float64, float64) bool { return true })
		case domain.DrawRect:
			c.paint(cmd.Color, func(x, y float64) bool {
				return x >= cmd.X && x < cmd.X+cmd.W && y >= cmd.Y && y < cmd.Y+cmd.H
			})
		case domain.DrawEllipse:
			c.ellipse(cmd)
		case domain.DrawStar:
			col, row := c.cellOf(cmd.X, cmd.Y)
			if cl := c.at(col, row); cl != nil {
				cl.r = '*'
				cl.fg = blend(cl.bg, cmd.Color)
			}
		case domain.DrawText:
			c.text(cmd)
		}
	}
}

// paint blends col into every cell whose centre satisfies inside and clears
// any glyph underneath.
func (c *canvas) paint(col color.NRGBA, inside func(x, y float64) bool) int {
	n := 0
	for row := 0; row < c.rows; row++ {
		for cc := 0; cc < c.cols; cc++ {
			x, y := c.centre(cc, row)
			if !inside(x, y) {
				continue
			}
			cl := c.at(cc, row)
			cl.bg = blend(cl.bg, col)
			cl.r = ' '
			n++
		}
	}
	return n
}

func (c *canvas) ellipse(cmd domain.DrawCommand) {
	rx, ry := cmd.W/2, cmd.H/2
	if rx <= 0 || ry <= 0 {
		return
	}
	n := c.paint(cmd.Color, func(x, y float64) bool {
		dx, dy := (x-cmd.X)/rx, (y-cmd.Y)/ry
		return dx*dx+dy*dy <= 1
	})
	if n > 0 {
		return
	}
	// Smaller than a cell: mark the cell holding the centre.
	col, row := c.cellOf(cmd.X, cmd.Y)
	if cl := c.at(col, row); cl != nil {
		cl.r = '●'
		cl.fg = blend(cl.bg, cmd.Color)
	}
}

func (c *canvas) text(cmd domain.DrawCommand) {
	col, row := c.cellOf(cmd.X, cmd.Y)
	width := runewidth.StringWidth(cmd.Text)
	switch cmd.Align {
	case domain.AlignCenter:
		col -= width / 2
	case domain.AlignRight:
		col -= width
	}
	for _, r := range cmd.Text {
		w := runewidth.RuneWidth(r)
		if cl := c.at(col, row); cl != nil && w > 0 {
			cl.r = r
			cl.fg = blend(cl.bg, cmd.Color)
		}
		col += w
	}
}

func (c *canvas) flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cl := c.at(col, row)
			r := cl.r
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Background(tcellColor(cl.bg)).Foreground(tcellColor(cl.fg))
			screen.SetContent(col, row, r, nil, style)
		}
	}
}

// blend composites src over an opaque dst.
func blend(dst, src color.NRGBA) color.NRGBA {
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	return color.NRGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 0xFF}
}

func tcellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
