// internal/component/target.go
package component

import "go-arrow-game/internal/types"

// Target — сердце, в которое стреляет игрок. Дрейфует только по горизонтали.
type Target struct {
	ID       types.EntityID
	Position Position
	Speed    float64 // фиксируется при появлении
}
