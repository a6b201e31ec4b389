package component

import "time"

// Gesture — состояние натяжения лука между кадрами.
// Drawing хранит результат прошлого кадра: выстрел срабатывает только на
// переходе idle → drawing.
type Gesture struct {
	DrawFraction float64
	Drawing      bool
	LastShot     time.Time
}

// Score — счёт текущей сессии. Только растёт.
type Score struct {
	Value int
}

// Add увеличивает счёт; отрицательные приращения игнорируются.
func (s *Score) Add(points int) {
	if points > 0 {
		s.Value += points
	}
}
