// Package camera supplies video frames to a game loop.
package camera

import (
	"errors"
	"image"
	"image/color"
	"math"

	"go-arrow-game/internal/clock"
)

// ErrNoFrame is returned by Read when the device produced nothing usable.
var ErrNoFrame = errors.New("camera: no frame")

// Source produces video frames.
type Source interface {
	Read() (image.Image, error)
	Close() error
}

// Synthetic renders a slowly shifting gradient backdrop in place of a real
// camera. Frontends without a webcam use it.
type Synthetic struct {
	clock clock.Clock
	frame *image.RGBA
}

var _ Source = (*Synthetic)(nil)

// NewSynthetic creates a w×h synthetic source.
func NewSynthetic(w, h int, c clock.Clock) *Synthetic {
	return &Synthetic{clock: c, frame: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Read returns the next frame. The image is reused between calls.
func (s *Synthetic) Read() (image.Image, error) {
	b := s.frame.Bounds()
	if b.Empty() {
		return nil, ErrNoFrame
	}
	phase := clock.Seconds(s.clock.Now()) * 0.3
	h := float64(b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := float64(y-b.Min.Y) / h
		c := color.RGBA{
			R: uint8(20 + 25*(0.5+0.5*math.Sin(phase+t*math.Pi))),
			G: uint8(20 + 15*t),
			B: uint8(40 + 40*(0.5+0.5*math.Cos(phase-t*math.Pi))),
			A: 255,
		}
		row := s.frame.Pix[s.frame.PixOffset(b.Min.X, y):s.frame.PixOffset(b.Max.X-1, y)+4]
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return s.frame, nil
}

// Close does nothing.
func (s *Synthetic) Close() error { return nil }
