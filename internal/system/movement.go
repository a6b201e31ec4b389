// internal/system/movement.go
package system

import (
	"math"
	"time"

	"go-arrow-game/internal/clock"
	"go-arrow-game/internal/defs"
	"go-arrow-game/internal/entity"
	"go-arrow-game/internal/event"
)

// MovementSystem двигает сердца. Смещение зависит от настенного времени,
// а не от номера кадра: x += sin(t) * speed.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	tuning          *defs.Tuning
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, tuning *defs.Tuning) *MovementSystem {
	return &MovementSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		tuning:          tuning,
	}
}

func (s *MovementSystem) Update(now time.Time) {
	drift := math.Sin(clock.Seconds(now))
	for _, t := range s.ecs.Targets {
		if s.ecs.IsRemoved(t.ID) {
			continue
		}
		t.Position.X += drift * t.Speed
		if t.Position.X < 0 || t.Position.X > s.tuning.ViewportWidth {
			s.ecs.Remove(t.ID)
			s.eventDispatcher.Dispatch(event.Event{Type: event.TargetEscaped, Data: t.ID})
		}
	}
}
