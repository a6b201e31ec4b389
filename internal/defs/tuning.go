// internal/defs/tuning.go
package defs

import (
	"errors"
	"fmt"

	"go-arrow-game/internal/config"
)

// ErrInvalidTuning is returned by Validate and LoadTuning for unusable values.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay number that can be overridden from a JSON file.
// Distances are in reference viewport pixels, times in seconds.
type Tuning struct {
	ViewportWidth    float64 `json:"viewport_width"`
	ViewportHeight   float64 `json:"viewport_height"`
	DrawDistance     float64 `json:"draw_distance"`
	FireThreshold    float64 `json:"fire_threshold"`
	Cooldown         float64 `json:"cooldown"`
	ArrowSpeed       float64 `json:"arrow_speed"`
	SpawnProbability float64 `json:"spawn_probability"`
	MaxTargets       int     `json:"max_targets"`
	SpawnMinX        float64 `json:"spawn_min_x"`
	SpawnMaxX        float64 `json:"spawn_max_x"`
	SpawnMinY        float64 `json:"spawn_min_y"`
	SpawnMaxY        float64 `json:"spawn_max_y"`
	TargetMinSpeed   float64 `json:"target_min_speed"`
	TargetMaxSpeed   float64 `json:"target_max_speed"`
	HitRadius        float64 `json:"hit_radius"`
	ScorePerHit      int     `json:"score_per_hit"`
	OverlayAlpha     float64 `json:"overlay_alpha"`
}

// DefaultTuning returns the stock game balance.
func DefaultTuning() Tuning {
	return Tuning{
		ViewportWidth:    config.ScreenWidth,
		ViewportHeight:   config.ScreenHeight,
		DrawDistance:     config.DrawDistance,
		FireThreshold:    config.FireThreshold,
		Cooldown:         config.ShotCooldown,
		ArrowSpeed:       config.ArrowSpeed,
		SpawnProbability: config.SpawnProbability,
		MaxTargets:       config.MaxTargets,
		SpawnMinX:        config.SpawnMinX,
		SpawnMaxX:        config.SpawnMaxX,
		SpawnMinY:        config.SpawnMinY,
		SpawnMaxY:        config.SpawnMaxY,
		TargetMinSpeed:   config.TargetMinSpeed,
		TargetMaxSpeed:   config.TargetMaxSpeed,
		HitRadius:        config.HitRadius,
		ScorePerHit:      config.ScorePerHit,
		OverlayAlpha:     config.OverlayAlpha,
	}
}

// Validate checks that the values describe a playable game.
func (t Tuning) Validate() error {
	switch {
	case t.ViewportWidth <= 0 || t.ViewportHeight <= 0:
		return fmt.Errorf("%w: viewport %vx%v", ErrInvalidTuning, t.ViewportWidth, t.ViewportHeight)
	case t.DrawDistance <= 0:
		return fmt.Errorf("%w: draw_distance must be positive", ErrInvalidTuning)
	case t.FireThreshold < 0 || t.FireThreshold > 1:
		return fmt.Errorf("%w: fire_threshold must be in [0,1]", ErrInvalidTuning)
	case t.Cooldown < 0:
		return fmt.Errorf("%w: cooldown must not be negative", ErrInvalidTuning)
	case t.ArrowSpeed <= 0:
		return fmt.Errorf("%w: arrow_speed must be positive", ErrInvalidTuning)
	case t.SpawnProbability < 0 || t.SpawnProbability > 1:
		return fmt.Errorf("%w: spawn_probability must be in [0,1]", ErrInvalidTuning)
	case t.MaxTargets < 0:
		return fmt.Errorf("%w: max_targets must not be negative", ErrInvalidTuning)
	case t.SpawnMaxX < t.SpawnMinX || t.SpawnMaxY < t.SpawnMinY:
		return fmt.Errorf("%w: spawn region is empty", ErrInvalidTuning)
	case t.SpawnMinX < 0 || t.SpawnMaxX > t.ViewportWidth || t.SpawnMinY < 0 || t.SpawnMaxY > t.ViewportHeight:
		return fmt.Errorf("%w: spawn region outside viewport", ErrInvalidTuning)
	case t.TargetMinSpeed <= 0 || t.TargetMaxSpeed < t.TargetMinSpeed:
		return fmt.Errorf("%w: target speed range [%v,%v)", ErrInvalidTuning, t.TargetMinSpeed, t.TargetMaxSpeed)
	case t.HitRadius < 0:
		return fmt.Errorf("%w: hit_radius must not be negative", ErrInvalidTuning)
	case t.ScorePerHit < 0:
		return fmt.Errorf("%w: score_per_hit must not be negative", ErrInvalidTuning)
	case t.OverlayAlpha < 0 || t.OverlayAlpha > 1:
		return fmt.Errorf("%w: overlay_alpha must be in [0,1]", ErrInvalidTuning)
	}
	return nil
}
