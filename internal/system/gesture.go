// internal/system/gesture.go
package system

import (
	"math"
	"time"

	"go-arrow-game/internal/component"
	"go-arrow-game/internal/defs"
	"go-arrow-game/internal/entity"
	"go-arrow-game/internal/event"
	"go-arrow-game/internal/pose"
	"go-arrow-game/internal/utils"
)

// Arm — три сустава правой руки в опорных пикселях.
type Arm struct {
	Shoulder component.Position
	Elbow    component.Position
	Wrist    component.Position
}

// ArmFromSkeleton extracts the right arm and scales it into a w×h viewport.
// ok is false when any of the three joints is missing or malformed.
func ArmFromSkeleton(s pose.Skeleton, w, h float64) (arm Arm, ok bool) {
	joints := [...]pose.Joint{pose.RightShoulder, pose.RightElbow, pose.RightWrist}
	var pts [3]component.Position
	for i, j := range joints {
		l, found := s.Lookup(j)
		if !found {
			return Arm{}, false
		}
		pts[i].X, pts[i].Y = l.Pixel(w, h)
	}
	return Arm{Shoulder: pts[0], Elbow: pts[1], Wrist: pts[2]}, true
}

// DrawFraction maps the elbow–wrist distance onto [0,1], saturating at
// drawDistance.
func DrawFraction(elbow, wrist component.Position, drawDistance float64) float64 {
	d := utils.Distance(elbow.X, elbow.Y, wrist.X, wrist.Y)
	return math.Min(d/drawDistance, 1.0)
}

// GestureSystem превращает натяжение руки в выстрелы.
type GestureSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	tuning          *defs.Tuning
}

func NewGestureSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, tuning *defs.Tuning) *GestureSystem {
	return &GestureSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		tuning:          tuning,
	}
}

// Update processes one frame of arm input and returns the arrow fired on
// this frame, if any. Without an arm the draw fraction drops to zero and the
// previous drawing flag is kept.
func (s *GestureSystem) Update(now time.Time, arm Arm, present bool) *component.Projectile {
	g := s.ecs.Gesture
	if !present {
		g.DrawFraction = 0
		return nil
	}

	g.DrawFraction = DrawFraction(arm.Elbow, arm.Wrist, s.tuning.DrawDistance)
	drawn := g.DrawFraction > s.tuning.FireThreshold

	var fired *component.Projectile
	// Стреляем только на фронте idle → drawing и после перезарядки.
	if drawn && !g.Drawing && now.Sub(g.LastShot).Seconds() > s.tuning.Cooldown {
		fired = s.shoot(now, arm)
	}
	g.Drawing = drawn
	return fired
}

func (s *GestureSystem) shoot(now time.Time, arm Arm) *component.Projectile {
	dx, dy, ok := utils.Normalize(arm.Wrist.X-arm.Elbow.X, arm.Wrist.Y-arm.Elbow.Y)
	if !ok {
		return nil
	}
	p := s.ecs.AddProjectile(arm.Shoulder, component.Velocity{
		DX: dx * s.tuning.ArrowSpeed,
		DY: dy * s.tuning.ArrowSpeed,
	})
	s.ecs.Gesture.LastShot = now
	s.eventDispatcher.Dispatch(event.Event{Type: event.ArrowFired, Data: p})
	return p
}
