package clock

import (
	"sync"
	"time"
)

// Clock supplies wall-clock time to the engine. Target drift and shot
// cooldown read it, so tests swap in a Mock.
type Clock interface {
	Now() time.Time
}

// System reads the real monotonic clock.
type System struct{}

// Now returns time.Now()
func (System) Now() time.Time {
	return time.Now()
}

// Mock provides a controllable time source for testing
type Mock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMock creates a mock clock stopped at start
func NewMock(start time.Time) *Mock {
	return &Mock{currentTime: start}
}

func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Set moves the mock to t
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the mock forward by d
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Seconds converts t to fractional Unix seconds.
func Seconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
