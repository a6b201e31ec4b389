package entity

import (
	"go-arrow-game/internal/component"
	"go-arrow-game/internal/types"
)

// ECS owns every live entity of one game session.
//
// Targets and Projectiles keep insertion order, which is also the order
// systems iterate in. Systems never shrink these slices directly: they call
// Remove during a pass and Flush applies all removals at once, so a pass always
// sees a stable snapshot.
type ECS struct {
	NextID      types.EntityID
	Targets     []*component.Target
	Projectiles []*component.Projectile
	Gesture     *component.Gesture
	Score       *component.Score

	removed map[types.EntityID]bool
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Targets:     make([]*component.Target, 0, 8),
		Projectiles: make([]*component.Projectile, 0, 8),
		Gesture:     &component.Gesture{},
		Score:       &component.Score{},
		removed:     make(map[types.EntityID]bool),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddTarget creates a target at pos.
func (ecs *ECS) AddTarget(pos component.Position, speed float64) *component.Target {
	t := &component.Target{ID: ecs.NewEntity(), Position: pos, Speed: speed}
	ecs.Targets = append(ecs.Targets, t)
	return t
}

// AddProjectile creates a projectile at pos.
func (ecs *ECS) AddProjectile(pos component.Position, vel component.Velocity) *component.Projectile {
	p := &component.Projectile{ID: ecs.NewEntity(), Position: pos, Velocity: vel}
	ecs.Projectiles = append(ecs.Projectiles, p)
	return p
}

// Remove schedules id for removal at the next Flush.
func (ecs *ECS) Remove(id types.EntityID) {
	ecs.removed[id] = true
}

// IsRemoved reports whether id was scheduled for removal in the current pass.
func (ecs *ECS) IsRemoved(id types.EntityID) bool {
	return ecs.removed[id]
}

// LiveTargets counts targets not scheduled for removal.
func (ecs *ECS) LiveTargets() int {
	n := 0
	for _, t := range ecs.Targets {
		if !ecs.removed[t.ID] {
			n++
		}
	}
	return n
}

// Flush drops every removed entity, preserving the order of survivors.
func (ecs *ECS) Flush() {
	if len(ecs.removed) == 0 {
		return
	}

	targets := ecs.Targets[:0]
	for _, t := range ecs.Targets {
		if !ecs.removed[t.ID] {
			targets = append(targets, t)
		}
	}
	clear(ecs.Targets[len(targets):])
	ecs.Targets = targets

	projectiles := ecs.Projectiles[:0]
	for _, p := range ecs.Projectiles {
		if !ecs.removed[p.ID] {
			projectiles = append(projectiles, p)
		}
	}
	clear(ecs.Projectiles[len(projectiles):])
	ecs.Projectiles = projectiles

	clear(ecs.removed)
}
