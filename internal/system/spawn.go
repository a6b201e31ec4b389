// internal/system/spawn.go
package system

import (
	"go-arrow-game/internal/component"
	"go-arrow-game/internal/defs"
	"go-arrow-game/internal/entity"
	"go-arrow-game/internal/event"
	"go-arrow-game/internal/utils"
)

// SpawnSystem создаёт новые сердца внутри безопасной области экрана.
type SpawnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	tuning          *defs.Tuning
	rng             *utils.PRNGService
}

func NewSpawnSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, tuning *defs.Tuning, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		tuning:          tuning,
		rng:             rng,
	}
}

// Update rolls the per-frame spawn chance and returns the new target, if any.
func (s *SpawnSystem) Update() *component.Target {
	if !s.rng.Chance(s.tuning.SpawnProbability) {
		return nil
	}
	if s.ecs.LiveTargets() >= s.tuning.MaxTargets {
		return nil
	}

	pos := component.Position{
		X: s.rng.Range(s.tuning.SpawnMinX, s.tuning.SpawnMaxX),
		Y: s.rng.Range(s.tuning.SpawnMinY, s.tuning.SpawnMaxY),
	}
	speed := s.rng.Range(s.tuning.TargetMinSpeed, s.tuning.TargetMaxSpeed)
	t := s.ecs.AddTarget(pos, speed)
	s.eventDispatcher.Dispatch(event.Event{Type: event.TargetSpawned, Data: t})
	return t
}
