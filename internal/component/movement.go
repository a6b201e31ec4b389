// component/movement.go
package component

// Position — позиция в опорных пикселях (640×480).
type Position struct {
	X, Y float64
}

// Velocity — смещение за один кадр.
type Velocity struct {
	DX, DY float64
}
