// internal/system/combat.go
package system

import (
	"go-arrow-game/internal/defs"
	"go-arrow-game/internal/entity"
	"go-arrow-game/internal/event"
	"go-arrow-game/internal/utils"
)

// CombatSystem проверяет попадания стрел в сердца и начисляет очки.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	tuning          *defs.Tuning
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, tuning *defs.Tuning) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		tuning:          tuning,
	}
}

// Update resolves hits and returns how many happened this frame. Each arrow
// takes the first live target within HitRadius in iteration order, not the
// nearest one.
func (s *CombatSystem) Update() int {
	hits := 0
	for _, p := range s.ecs.Projectiles {
		if s.ecs.IsRemoved(p.ID) {
			continue
		}
		for _, t := range s.ecs.Targets {
			if s.ecs.IsRemoved(t.ID) {
				continue
			}
			d := utils.Distance(p.Position.X, p.Position.Y, t.Position.X, t.Position.Y)
			if d >= s.tuning.HitRadius {
				continue
			}

			s.ecs.Remove(t.ID)
			s.ecs.Remove(p.ID)
			s.ecs.Score.Add(s.tuning.ScorePerHit)
			hits++
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.TargetHit,
				Data: event.Hit{ProjectileID: p.ID, TargetID: t.ID, Score: s.ecs.Score.Value},
			})
			break
		}
	}
	return hits
}
