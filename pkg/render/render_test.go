package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/font/basicfont"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	FillRect(img, img.Bounds(), black)
	return img
}

// isRed tolerates anti-aliasing rounding on fully covered pixels.
func isRed(c color.RGBA) bool {
	return c.R >= 250 && c.G <= 5 && c.B <= 5
}

func unchanged(t *testing.T, a, b *image.RGBA) {
	t.Helper()
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("image changed at byte %d", i)
		}
	}
}

func TestFillCircleCoversCentre(t *testing.T) {
	img := blank(100, 100)
	FillCircle(img, 50, 50, 10, red)
	if got := img.RGBAAt(50, 50); !isRed(got) {
		t.Fatalf("centre = %v, want red", got)
	}
	if got := img.RGBAAt(50, 70); got != black {
		t.Fatalf("pixel outside radius = %v, want black", got)
	}
}

func TestStrokeCircleLeavesHole(t *testing.T) {
	img := blank(100, 100)
	StrokeCircle(img, 50, 50, 30, 4, red)
	if got := img.RGBAAt(50, 50); got != black {
		t.Fatalf("ring centre painted: %v", got)
	}
	if got := img.RGBAAt(80, 50); got.R == 0 {
		t.Fatalf("ring edge not painted: %v", got)
	}
}

func TestStrokeLinePaintsAlongSegment(t *testing.T) {
	img := blank(100, 100)
	StrokeLine(img, 10, 50, 90, 50, 8, red)
	for _, x := range []int{10, 50, 89} {
		if got := img.RGBAAt(x, 50); !isRed(got) {
			t.Fatalf("pixel (%d,50) = %v, want red", x, got)
		}
	}
	if got := img.RGBAAt(50, 60); got != black {
		t.Fatalf("pixel off the line painted: %v", got)
	}
}

func TestStrokeArcOnlyCoversSweep(t *testing.T) {
	img := blank(400, 400)
	StrokeArc(img, 200, 200, 150, 12, -45, 45, red)
	if got := img.RGBAAt(350, 200); !isRed(got) {
		t.Fatalf("arc midpoint = %v, want red", got)
	}
	if got := img.RGBAAt(50, 200); got != black {
		t.Fatalf("opposite side painted: %v", got)
	}
}

func TestOffCanvasDrawingIsNoop(t *testing.T) {
	img := blank(64, 48)
	before := blank(64, 48)

	FillCircle(img, -1000, -1000, 10, red)
	FillCircle(img, 5000, 20, 10, red)
	StrokeLine(img, 1e12, 1e12, -1e12, 5, 8, red)
	StrokeLine(img, math.NaN(), 0, 10, 10, 8, red)
	StrokeCircle(img, math.Inf(1), 10, 10, 2, red)
	FillPolygon(img, []Point{{-50, -50}, {-40, -50}, {-45, -40}}, red)
	FillRect(img, image.Rect(-100, -100, -10, -10), red)

	unchanged(t, before, img)
}

func TestPartiallyVisibleShapeIsClipped(t *testing.T) {
	img := blank(64, 48)
	FillCircle(img, 0, 0, 10, red)
	if got := img.RGBAAt(2, 2); !isRed(got) {
		t.Fatalf("visible part of clipped circle = %v, want red", got)
	}
}

func TestBlendWeights(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 2, 1))
	overlay := image.NewRGBA(base.Bounds())
	for i := range base.Pix {
		base.Pix[i] = 100
		overlay.Pix[i] = 200
	}
	overlay.Pix[4] = 100 // second pixel R equals base

	dst := image.NewRGBA(base.Bounds())
	Blend(dst, overlay, base, 0.7)

	if dst.Pix[0] != 170 {
		t.Fatalf("blended value = %d, want 170", dst.Pix[0])
	}
	if dst.Pix[4] != 100 {
		t.Fatalf("untouched overlay pixel changed base: %d", dst.Pix[4])
	}
}

func TestViewportScaling(t *testing.T) {
	v := NewViewport(image.Rect(0, 0, 1280, 960), 640, 480)
	x, y := v.Point(320, 240)
	if x != 640 || y != 480 {
		t.Fatalf("Point = (%v,%v), want (640,480)", x, y)
	}
	if got := v.Len(10); got != 20 {
		t.Fatalf("Len = %v, want 20", got)
	}
	if got := v.Rect(10, 10, 400, 100); got != image.Rect(20, 20, 800, 200) {
		t.Fatalf("Rect = %v", got)
	}

	id := NewViewport(image.Rect(0, 0, 640, 480), 640, 480)
	if x, y := id.Point(12.5, 7); x != 12.5 || y != 7 {
		t.Fatalf("identity viewport moved point to (%v,%v)", x, y)
	}
}

func TestDrawTextPaints(t *testing.T) {
	img := blank(100, 30)
	DrawText(img, basicfont.Face7x13, 2, 20, "Score: 10", red)
	painted := false
	for y := 0; y < 30 && !painted; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y).R > 0 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Fatalf("DrawText did not paint any pixel")
	}
}

func TestNewHUDFace(t *testing.T) {
	face, err := NewHUDFace(48)
	if err != nil {
		t.Fatalf("NewHUDFace: %v", err)
	}
	if m := face.Metrics(); m.Height <= 0 {
		t.Fatalf("face has no height: %+v", m)
	}
}

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	if got != (color.RGBA{100, 50, 25, 255}) {
		t.Fatalf("DarkenColor = %v", got)
	}
}
