// internal/config/config.go
package config

import "image/color"

// Опорное окно: вся игровая математика ведётся в этих координатах.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

const (
	DrawDistance     = 100.0 // расстояние локоть–запястье, при котором натяжение = 1
	FireThreshold    = 0.8
	ShotCooldown     = 1.0 // секунды
	ArrowSpeed       = 10.0
	ArrowTrailFactor = 5.0

	SpawnProbability = 0.02
	MaxTargets       = 5
	SpawnMinX        = 100.0
	SpawnMaxX        = 540.0
	SpawnMinY        = 100.0
	SpawnMaxY        = 380.0
	TargetMinSpeed   = 2.0
	TargetMaxSpeed   = 5.0

	HitRadius   = 25.0
	ScorePerHit = 10

	OverlayAlpha = 0.7
	MaxDeltaTime = 0.06
)

// Heart and arrow geometry, in reference pixels.
const (
	HeartSize        = 40.0
	HeartRingWidth   = 4.0
	HeartIconSize    = 50
	ArrowTrailWidth  = 8.0
	ArrowHeadRadius  = 10.0
	LandmarkRadius   = 5.0
	BowRadius        = 150.0
	BowInnerWidth    = 12.0
	BowOuterWidth    = 8.0
	BowArmWidth      = 12.0
	BowStringWidth   = 6.0
	BowArcHalfAngle  = 45.0 // градусы
	HUDPanelX0       = 10
	HUDPanelY0       = 10
	HUDPanelX1       = 400
	HUDPanelY1       = 100
	HUDTextX         = 30
	HUDTextY         = 70
	HUDFontSize      = 48.0
	ShoulderRestX    = 200.0
	ShoulderRestY    = 300.0
	UpperArmLength   = 40.0
	MaxForearmLength = 110.0
)

var (
	HeartColor     = color.RGBA{255, 0, 0, 255}
	ArrowColor     = color.RGBA{255, 255, 0, 255}
	ArrowHeadColor = color.RGBA{0, 255, 0, 255}
	LandmarkColor  = color.RGBA{0, 255, 0, 255}
	BowInnerColor  = color.RGBA{255, 0, 255, 255}
	BowOuterColor  = color.RGBA{200, 0, 200, 255}
	BowArmColor    = color.RGBA{255, 200, 200, 255}
	BowStringColor = color.RGBA{255, 255, 255, 255}
	HUDPanelColor  = color.RGBA{0, 0, 0, 255}
	HUDTextColor   = color.RGBA{255, 255, 255, 255}

	BackgroundColor = color.RGBA{20, 20, 30, 255}
	MeterFillColor  = color.RGBA{70, 100, 120, 220}
	MeterReadyColor = color.RGBA{50, 205, 50, 255}
	PauseDimColor   = color.RGBA{0, 0, 0, 140}
)
