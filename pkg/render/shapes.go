package render

import (
	"image"
	"image/color"
	"math"
)

// circleSegments is the polygon resolution used for full circles.
const circleSegments = 48

// FillCircle draws a filled disc.
func FillCircle(dst *image.RGBA, cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	fill(dst, [][]Point{arc(cx, cy, r, 0, 2*math.Pi, circleSegments)}, c)
}

// StrokeCircle draws a ring of the given width centred on radius r.
func StrokeCircle(dst *image.RGBA, cx, cy, r, width float64, c color.Color) {
	outer := r + width/2
	inner := math.Max(r-width/2, 0)
	if outer <= 0 {
		return
	}
	contours := [][]Point{arc(cx, cy, outer, 0, 2*math.Pi, circleSegments)}
	if inner > 0 {
		contours = append(contours, reversed(arc(cx, cy, inner, 0, 2*math.Pi, circleSegments)))
	}
	fill(dst, contours, c)
}

// StrokeArc draws a thick circular arc between two angles in degrees,
// measured clockwise from +X in screen coordinates.
func StrokeArc(dst *image.RGBA, cx, cy, r, width, fromDeg, toDeg float64, c color.Color) {
	a0 := fromDeg * math.Pi / 180
	a1 := toDeg * math.Pi / 180
	if a1 <= a0 {
		return
	}
	outer := r + width/2
	inner := math.Max(r-width/2, 0)
	segments := int(math.Ceil(float64(circleSegments) * (a1 - a0) / (2 * math.Pi)))
	if segments < 2 {
		segments = 2
	}
	band := arc(cx, cy, outer, a0, a1, segments)
	band = append(band, reversed(arc(cx, cy, inner, a0, a1, segments))...)
	fill(dst, [][]Point{band}, c)
}

// StrokeLine draws a line of the given width with round caps.
func StrokeLine(dst *image.RGBA, x0, y0, x1, y1, width float64, c color.Color) {
	if width <= 0 {
		return
	}
	h := width / 2
	caps := [][]Point{
		arc(x0, y0, h, 0, 2*math.Pi, 16),
		arc(x1, y1, h, 0, 2*math.Pi, 16),
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		fill(dst, caps[:1], c)
		return
	}
	nx, ny := -dy/length*h, dx/length*h
	body := positive([]Point{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	})
	fill(dst, append(caps, body), c)
}

// FillPolygon draws a filled simple polygon.
func FillPolygon(dst *image.RGBA, pts []Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	fill(dst, [][]Point{positive(pts)}, c)
}

// arc returns points along a circle from a0 to a1 inclusive; for a full turn
// the closing point is left to ClosePath.
func arc(cx, cy, r, a0, a1 float64, segments int) []Point {
	full := a1-a0 >= 2*math.Pi
	n := segments
	if !full {
		n++
	}
	pts := make([]Point, 0, n)
	step := (a1 - a0) / float64(segments)
	for i := 0; i < n; i++ {
		a := a0 + step*float64(i)
		pts = append(pts, Point{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return pts
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// positive orients a contour so that its signed area is positive, matching
// the winding of arc(). Overlapping shapes then add instead of cancelling.
func positive(pts []Point) []Point {
	area := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	if area < 0 {
		return reversed(pts)
	}
	return pts
}
