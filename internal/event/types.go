// internal/event/types.go
package event

import "go-arrow-game/internal/types"

const (
	ArrowFired    EventType = "ArrowFired"    // Стрела выпущена, Data: *component.Projectile
	ArrowExpired  EventType = "ArrowExpired"  // Стрела вылетела за экран, Data: types.EntityID
	TargetSpawned EventType = "TargetSpawned" // Новое сердце, Data: *component.Target
	TargetEscaped EventType = "TargetEscaped" // Сердце уплыло за край, Data: types.EntityID
	TargetHit     EventType = "TargetHit"     // Попадание, Data: Hit
)

// Hit — данные события TargetHit.
type Hit struct {
	ProjectileID types.EntityID
	TargetID     types.EntityID
	Score        int // счёт после попадания
}
