// internal/ui/draw_meter.go
package ui

import (
	"image/color"

	"go-arrow-game/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	meterWidth   = 160
	meterHeight  = 12
	reloadHeight = 4
	reloadGap    = 6
	borderWidth  = 1
)

var borderColor = color.White

// DrawMeter отображает натяжение лука и перезарядку.
type DrawMeter struct {
	X, Y float32
}

// NewDrawMeter создает новый индикатор.
func NewDrawMeter(x, y float32) *DrawMeter {
	return &DrawMeter{X: x, Y: y}
}

// Draw отрисовывает индикатор.
func (i *DrawMeter) Draw(screen *ebiten.Image, m Meter) {
	// 1. Обводка полосы натяжения
	vector.StrokeRect(screen, i.X, i.Y, meterWidth, meterHeight, borderWidth, borderColor, true)

	// 2. Заполнение: зелёное, когда выстрел возможен
	fill := config.MeterFillColor
	if m.Armed() && m.Ready() {
		fill = config.MeterReadyColor
	}
	fillWidth := float32(float64(meterWidth-borderWidth*2) * m.Fill)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, meterHeight-borderWidth*2, fill, true)
	}

	// 3. Метка порога
	tx := i.X + float32(float64(meterWidth)*m.Threshold)
	vector.StrokeLine(screen, tx, i.Y-2, tx, i.Y+meterHeight+2, borderWidth, borderColor, true)

	// 4. Полоса перезарядки под индикатором
	if m.Reload > 0 {
		ry := i.Y + meterHeight + reloadGap
		vector.DrawFilledRect(screen, i.X, ry, float32(float64(meterWidth)*m.Reload), reloadHeight, config.MeterFillColor, true)
	}
}
