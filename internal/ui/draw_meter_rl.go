// internal/ui/draw_meter_rl.go
package ui

import (
	"image/color"

	"go-arrow-game/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DrawMeterRL - версия индикатора натяжения для Raylib
type DrawMeterRL struct {
	X, Y  float32
	Width float32
}

func NewDrawMeterRL(x, y, width float32) *DrawMeterRL {
	return &DrawMeterRL{X: x, Y: y, Width: width}
}

// Draw отрисовывает индикатор
func (i *DrawMeterRL) Draw(m Meter) {
	fill := config.MeterFillColor
	if m.Armed() && m.Ready() {
		fill = config.MeterReadyColor
	}
	if w := i.Width * float32(m.Fill); w > 0 {
		rl.DrawRectangle(int32(i.X), int32(i.Y), int32(w), meterHeight, colorToRL(fill))
	}
	rl.DrawRectangleLinesEx(rl.NewRectangle(i.X, i.Y, i.Width, meterHeight), borderWidth, rl.White)

	tx := int32(i.X + i.Width*float32(m.Threshold))
	rl.DrawLine(tx, int32(i.Y)-2, tx, int32(i.Y)+meterHeight+2, rl.White)

	if m.Reload > 0 {
		ry := int32(i.Y) + meterHeight + reloadGap
		rl.DrawRectangle(int32(i.X), ry, int32(i.Width*float32(m.Reload)), reloadHeight, colorToRL(config.MeterFillColor))
	}
}

func colorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
