package render

import (
	"image/color"

	"go-arrow-game/internal/config"
)

// Palette holds the colors used for the game overlay and HUD.
type Palette struct {
	Heart     color.RGBA
	Arrow     color.RGBA
	ArrowHead color.RGBA
	Landmark  color.RGBA
	BowInner  color.RGBA
	BowOuter  color.RGBA
	BowArm    color.RGBA
	BowString color.RGBA
	HUDPanel  color.RGBA
	HUDText   color.RGBA
}

// DefaultPalette returns the stock colors from config.
func DefaultPalette() Palette {
	return Palette{
		Heart:     config.HeartColor,
		Arrow:     config.ArrowColor,
		ArrowHead: config.ArrowHeadColor,
		Landmark:  config.LandmarkColor,
		BowInner:  config.BowInnerColor,
		BowOuter:  config.BowOuterColor,
		BowArm:    config.BowArmColor,
		BowString: config.BowStringColor,
		HUDPanel:  config.HUDPanelColor,
		HUDText:   config.HUDTextColor,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
