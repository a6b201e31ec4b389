package render

import (
	"image"
	"math"
)

// Viewport maps reference coordinates (the fixed game resolution) onto the
// pixels of an actual frame.
type Viewport struct {
	Origin image.Point
	SX, SY float64
}

// NewViewport fits a refW×refH space onto bounds.
func NewViewport(bounds image.Rectangle, refW, refH float64) Viewport {
	return Viewport{
		Origin: bounds.Min,
		SX:     float64(bounds.Dx()) / refW,
		SY:     float64(bounds.Dy()) / refH,
	}
}

// Point converts a reference position to frame pixels.
func (v Viewport) Point(x, y float64) (float64, float64) {
	return float64(v.Origin.X) + x*v.SX, float64(v.Origin.Y) + y*v.SY
}

// Len scales a reference length (radius, stroke width).
func (v Viewport) Len(l float64) float64 {
	return l * (v.SX + v.SY) / 2
}

// Rect converts a reference rectangle to frame pixels.
func (v Viewport) Rect(x0, y0, x1, y1 float64) image.Rectangle {
	ax, ay := v.Point(x0, y0)
	bx, by := v.Point(x1, y1)
	return image.Rect(int(math.Round(ax)), int(math.Round(ay)), int(math.Round(bx)), int(math.Round(by)))
}
