package termview

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func split(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, image.Rect(0, 0, w, h/2), image.NewUniform(color.RGBA{255, 0, 0, 255}), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, h/2, w, h), image.NewUniform(color.RGBA{0, 0, 255, 255}), image.Point{}, draw.Src)
	return img
}

func TestDownsampleSize(t *testing.T) {
	dst := Downsample(nil, split(640, 480), 80, 23)
	if dst.Bounds() != image.Rect(0, 0, 80, 46) {
		t.Fatalf("Expected 80x46, got %v", dst.Bounds())
	}
	again := Downsample(dst, split(640, 480), 80, 23)
	if again != dst {
		t.Errorf("Expected buffer reuse for the same size")
	}
}

func TestDrawHalfBlocks(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 11)

	v := New(screen)
	v.Draw(split(640, 480), "Score: 0")

	mainc, _, style, _ := screen.GetContent(5, 0)
	if mainc != halfBlock {
		t.Fatalf("Expected half block, got %q", mainc)
	}
	fg, bg, _ := style.Decompose()
	if r, _, b := fg.RGB(); r < 200 || b > 50 {
		t.Errorf("Expected red top pixel, got %v", fg)
	}
	if r, _, b := bg.RGB(); r < 200 || b > 50 {
		t.Errorf("Expected red bottom pixel in the first row, got %v", bg)
	}

	_, _, style, _ = screen.GetContent(5, 9)
	fg, _, _ = style.Decompose()
	if r, _, b := fg.RGB(); b < 200 || r > 50 {
		t.Errorf("Expected blue in the last picture row, got %v", fg)
	}

	status := ""
	for x := 0; x < 8; x++ {
		c, _, _, _ := screen.GetContent(x, 10)
		status += string(c)
	}
	if status != "Score: 0" {
		t.Errorf("Expected status line, got %q", status)
	}
}

func TestCellToViewport(t *testing.T) {
	x, y := CellToViewport(0, 0, 64, 48, 640, 480)
	if x != 5 || y != 5 {
		t.Errorf("Expected (5,5), got (%v,%v)", x, y)
	}
	x, y = CellToViewport(63, 47, 64, 48, 640, 480)
	if x != 635 || y != 475 {
		t.Errorf("Expected (635,475), got (%v,%v)", x, y)
	}
	if x, y = CellToViewport(1, 1, 0, 0, 640, 480); x != 0 || y != 0 {
		t.Errorf("Expected origin for an empty grid")
	}
}
