// internal/rlview/presenter.go
package rlview

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Presenter загружает кадры движка в текстуру Raylib и рисует их на весь
// экран.
type Presenter struct {
	texture rl.Texture2D
	size    image.Point
	pixels  []color.RGBA
}

// NewPresenter создает презентер. Текстура создается при первом кадре.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Upload copies frame into the GPU texture, recreating it when the frame size
// changes. Must be called from the window thread.
func (p *Presenter) Upload(frame *image.RGBA) {
	size := frame.Bounds().Size()
	p.pixels = Pixels(p.pixels, frame)

	if p.texture.ID == 0 || size != p.size {
		p.Unload()
		img := rl.NewImageFromImage(frame)
		p.texture = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		p.size = size
		return
	}
	rl.UpdateTexture(p.texture, p.pixels)
}

// Draw stretches the last uploaded frame over the window.
func (p *Presenter) Draw() {
	if p.texture.ID == 0 {
		return
	}
	src := rl.NewRectangle(0, 0, float32(p.size.X), float32(p.size.Y))
	dst := rl.NewRectangle(0, 0, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	rl.DrawTexturePro(p.texture, src, dst, rl.NewVector2(0, 0), 0, rl.White)
}

// Unload освобождает текстуру.
func (p *Presenter) Unload() {
	if p.texture.ID != 0 {
		rl.UnloadTexture(p.texture)
		p.texture = rl.Texture2D{}
	}
}

// ToViewport maps a window position to reference coordinates of a w×h
// viewport.
func ToViewport(mouse rl.Vector2, screenW, screenH int, w, h float64) (float64, float64) {
	if screenW <= 0 || screenH <= 0 {
		return 0, 0
	}
	return float64(mouse.X) / float64(screenW) * w, float64(mouse.Y) / float64(screenH) * h
}

// Pixels flattens frame into dst row by row, growing dst when needed.
func Pixels(dst []color.RGBA, frame *image.RGBA) []color.RGBA {
	b := frame.Bounds()
	n := b.Dx() * b.Dy()
	if cap(dst) < n {
		dst = make([]color.RGBA, n)
	}
	dst = dst[:n]
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst[i] = frame.RGBAAt(x, y)
			i++
		}
	}
	return dst
}
