// internal/ui/meter.go
package ui

import "go-arrow-game/internal/utils"

// Meter — состояние индикатора натяжения лука на один кадр.
type Meter struct {
	Fill      float64 // натяжение, 0..1
	Threshold float64 // порог выстрела
	Reload    float64 // оставшаяся доля перезарядки, 0..1
}

// NewMeter builds the meter from the engine readings.
func NewMeter(fraction, threshold, cooldownLeft, cooldown float64) Meter {
	reload := 0.0
	if cooldown > 0 {
		reload = utils.Clamp(cooldownLeft/cooldown, 0, 1)
	}
	return Meter{
		Fill:      utils.Clamp(fraction, 0, 1),
		Threshold: threshold,
		Reload:    reload,
	}
}

// Ready reports whether the cooldown has run out.
func (m Meter) Ready() bool { return m.Reload == 0 }

// Armed reports whether the draw is past the threshold.
func (m Meter) Armed() bool { return m.Fill > m.Threshold }
