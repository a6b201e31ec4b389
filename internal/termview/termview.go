// Package termview draws game frames in a terminal with half-block cells:
// every cell shows two stacked pixels, the upper one as foreground of '▀'
// and the lower one as background.
package termview

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
)

const halfBlock = '▀'

// View renders frames into a tcell screen. The bottom row is kept for a
// status line.
type View struct {
	screen tcell.Screen
	buf    *image.RGBA
	Status tcell.Style
}

func New(screen tcell.Screen) *View {
	return &View{
		screen: screen,
		Status: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
}

// Area returns the cell grid used for the picture.
func (v *View) Area() (cols, rows int) {
	w, h := v.screen.Size()
	if h > 1 {
		h--
	}
	return w, h
}

// Draw scales img to the picture area, writes the status line and shows the
// result.
func (v *View) Draw(img image.Image, status string) {
	cols, rows := v.Area()
	if cols <= 0 || rows <= 0 {
		return
	}
	v.buf = Downsample(v.buf, img, cols, rows)

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := v.buf.RGBAAt(cx, cy*2)
			bottom := v.buf.RGBAAt(cx, cy*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			v.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}

	_, h := v.screen.Size()
	if h > rows {
		v.drawStatus(rows, cols, status)
	}
	v.screen.Show()
}

func (v *View) drawStatus(row, cols int, status string) {
	x := 0
	for _, r := range status {
		if x >= cols {
			break
		}
		v.screen.SetContent(x, row, r, nil, v.Status)
		x++
	}
	for ; x < cols; x++ {
		v.screen.SetContent(x, row, ' ', nil, v.Status)
	}
}

// ToViewport maps a cell to reference coordinates of a w×h viewport, taking
// the cell center.
func (v *View) ToViewport(cx, cy int, w, h float64) (float64, float64) {
	cols, rows := v.Area()
	return CellToViewport(cx, cy, cols, rows, w, h)
}

// CellToViewport is ToViewport for an explicit grid.
func CellToViewport(cx, cy, cols, rows int, w, h float64) (float64, float64) {
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	return (float64(cx) + 0.5) / float64(cols) * w, (float64(cy) + 0.5) / float64(rows) * h
}

// Downsample scales src to cols×(rows*2) pixels, reusing dst when it already
// has that size.
func Downsample(dst *image.RGBA, src image.Image, cols, rows int) *image.RGBA {
	r := image.Rect(0, 0, cols, rows*2)
	if dst == nil || dst.Bounds() != r {
		dst = image.NewRGBA(r)
	}
	draw.ApproxBiLinear.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
	return dst
}
