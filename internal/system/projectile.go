// internal/system/projectile.go
package system

import (
	"go-arrow-game/internal/component"
	"go-arrow-game/internal/defs"
	"go-arrow-game/internal/entity"
	"go-arrow-game/internal/event"
)

// ProjectileSystem управляет движением стрел: постоянная скорость за кадр,
// удаление за пределами экрана.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	tuning          *defs.Tuning
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, tuning *defs.Tuning) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		tuning:          tuning,
	}
}

// Update advances every arrow by its velocity.
func (s *ProjectileSystem) Update() {
	for _, p := range s.ecs.Projectiles {
		if s.ecs.IsRemoved(p.ID) {
			continue
		}
		p.Position.X += p.Velocity.DX
		p.Position.Y += p.Velocity.DY
	}
}

// Cull removes arrows that left the viewport. It runs after collisions, so an
// arrow may still score on the frame it leaves the screen.
func (s *ProjectileSystem) Cull() {
	for _, p := range s.ecs.Projectiles {
		if s.ecs.IsRemoved(p.ID) {
			continue
		}
		if s.outOfBounds(p) {
			s.ecs.Remove(p.ID)
			s.eventDispatcher.Dispatch(event.Event{Type: event.ArrowExpired, Data: p.ID})
		}
	}
}

func (s *ProjectileSystem) outOfBounds(p *component.Projectile) bool {
	return p.Position.X < 0 || p.Position.X > s.tuning.ViewportWidth ||
		p.Position.Y < 0 || p.Position.Y > s.tuning.ViewportHeight
}
