package game

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// TerminalSurface rasterises in software at terminalCellWidth x
// terminalCellHeight pixels per cell and presents each cell as a half block:
// the upper half of the cell is the foreground, the lower half the
// background. The terminal size is read once, at construction.
type TerminalSurface struct {
	*RasterSurface
	screen     tcell.Screen
	cols, rows int
}

// NewTerminalSurface creates a surface covering the current screen size
func NewTerminalSurface(screen tcell.Screen, background color.NRGBA) *TerminalSurface {
	cols, rows := screen.Size()
	return &TerminalSurface{
		RasterSurface: NewRasterSurface(cols*terminalCellWidth, rows*terminalCellHeight, background),
		screen:        screen,
		cols:          cols,
		rows:          rows,
	}
}

// Cells returns the terminal size the surface was created for
func (t *TerminalSurface) Cells() (cols, rows int) {
	return t.cols, t.rows
}

// Present downsamples the raster into the screen and shows it
func (t *TerminalSurface) Present() {
	half := terminalCellHeight / 2
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			x := col * terminalCellWidth
			y := row * terminalCellHeight
			top := t.average(x, y, terminalCellWidth, half)
			bottom := t.average(x, y+half, terminalCellWidth, half)

			if top.A == 0 && bottom.A == 0 {
				t.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
				continue
			}
			style := tcell.StyleDefault.
				Foreground(cellColor(top)).
				Background(cellColor(bottom))
			t.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

// average returns the mean premultiplied colour of a w x h block, which is
// the block composited over black
func (t *TerminalSurface) average(x0, y0, w, h int) color.RGBA {
	img := t.Image()
	var r, g, b, a int
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			px := img.RGBAAt(x, y)
			r += int(px.R)
			g += int(px.G)
			b += int(px.B)
			a += int(px.A)
		}
	}
	n := w * h
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: uint8(a / n)}
}

func cellColor(c color.RGBA) tcell.Color {
	if c.A == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
