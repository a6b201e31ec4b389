package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// MaxShapeExtent bounds the size of a single rasterized shape. Anything wider
// or taller is a broken coordinate (a joint far off camera) and is skipped.
const MaxShapeExtent = 4096

// Point is a float position in destination pixels.
type Point struct {
	X, Y float64
}

// FillRect paints r opaquely, clipped to dst.
func FillRect(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// Blend writes alpha*overlay + (1-alpha)*base into dst, channel by channel.
// All three images must share the same bounds.
func Blend(dst, overlay, base *image.RGBA, alpha float64) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	beta := 1 - alpha
	for y := b.Min.Y; y < b.Max.Y; y++ {
		d := dst.Pix[dst.PixOffset(b.Min.X, y):dst.PixOffset(b.Max.X-1, y)+4]
		o := overlay.Pix[overlay.PixOffset(b.Min.X, y):]
		s := base.Pix[base.PixOffset(b.Min.X, y):]
		for i := range d {
			v := alpha*float64(o[i]) + beta*float64(s[i]) + 0.5
			if v > 255 {
				v = 255
			}
			d[i] = uint8(v)
		}
	}
}

// fill rasterizes the contours with the non-zero rule and composites the
// coverage onto dst. Each shape is rasterized in its own bounding box, so
// coordinates outside dst are simply clipped away.
func fill(dst *image.RGBA, contours [][]Point, c color.Color) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	n := 0
	for _, contour := range contours {
		for _, p := range contour {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
				return
			}
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
			n++
		}
	}
	if n < 3 {
		return
	}
	if maxX-minX > MaxShapeExtent || maxY-minY > MaxShapeExtent {
		return
	}
	db := dst.Bounds()
	if maxX < float64(db.Min.X) || minX > float64(db.Max.X) || maxY < float64(db.Min.Y) || minY > float64(db.Max.Y) {
		return
	}

	box := image.Rect(int(math.Floor(minX))-1, int(math.Floor(minY))-1, int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1)
	ox, oy := float64(box.Min.X), float64(box.Min.Y)

	z := vector.NewRasterizer(box.Dx(), box.Dy())
	for _, contour := range contours {
		if len(contour) < 3 {
			continue
		}
		z.MoveTo(float32(contour[0].X-ox), float32(contour[0].Y-oy))
		for _, p := range contour[1:] {
			z.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(dst, box, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}
