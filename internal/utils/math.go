// internal/utils/math.go
package utils

import "math"

// Distance — евклидово расстояние между двумя точками.
func Distance(x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	return math.Sqrt(dx*dx + dy*dy)
}

// Normalize возвращает единичный вектор того же направления.
// Для нулевого (или нечислового) вектора ok == false.
func Normalize(x, y float64) (nx, ny float64, ok bool) {
	length := math.Sqrt(x*x + y*y)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return 0, 0, false
	}
	return x / length, y / length, true
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
