// internal/component/projectile.go
package component

import "go-arrow-game/internal/types"

// Projectile представляет летящую стрелу. Модуль скорости задаётся при
// выстреле и больше не меняется; стрела движется на Velocity каждый кадр.
type Projectile struct {
	ID       types.EntityID
	Position Position
	Velocity Velocity
}

// Tail returns the start of the trail drawn behind the arrow head.
func (p *Projectile) Tail(factor float64) Position {
	return Position{
		X: p.Position.X - p.Velocity.DX*factor,
		Y: p.Position.Y - p.Velocity.DY*factor,
	}
}
