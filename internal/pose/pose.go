package pose

import (
	"image"
	"math"
)

// Joint names a body landmark.
type Joint string

const (
	Nose          Joint = "nose"
	Neck          Joint = "neck"
	RightShoulder Joint = "right_shoulder"
	RightElbow    Joint = "right_elbow"
	RightWrist    Joint = "right_wrist"
	LeftShoulder  Joint = "left_shoulder"
	LeftElbow     Joint = "left_elbow"
	LeftWrist     Joint = "left_wrist"
	RightHip      Joint = "right_hip"
	LeftHip       Joint = "left_hip"
)

// Landmark is a joint position normalized to the frame: X and Y in [0,1]
// for on-screen joints. Z is optional depth and ignored by the game.
type Landmark struct {
	X, Y, Z float64
}

// Skeleton maps joints to landmarks. A nil or empty Skeleton means no person
// was detected in the frame.
type Skeleton map[Joint]Landmark

// Detected reports whether the skeleton carries any joint at all.
func (s Skeleton) Detected() bool {
	return len(s) > 0
}

// Lookup returns the landmark for j. Missing joints and joints with NaN or
// infinite coordinates are reported as absent.
func (s Skeleton) Lookup(j Joint) (Landmark, bool) {
	l, ok := s[j]
	if !ok {
		return Landmark{}, false
	}
	if !finite(l.X) || !finite(l.Y) {
		return Landmark{}, false
	}
	return l, true
}

// Pixel scales a normalized landmark into a w×h viewport.
func (l Landmark) Pixel(w, h float64) (x, y float64) {
	return l.X * w, l.Y * h
}

// FromPixel builds a landmark from viewport coordinates.
func FromPixel(x, y, w, h float64) Landmark {
	return Landmark{X: x / w, Y: y / h}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Provider detects at most one skeleton per frame.
type Provider interface {
	// Detect analyzes a video frame. It returns a nil Skeleton and a nil
	// error when nobody is in view.
	Detect(frame image.Image) (Skeleton, error)

	// Close releases any resources held by the provider.
	Close() error
}

// Config holds configuration options for model-backed providers.
type Config struct {
	// InputSize is the square network input edge in pixels.
	InputSize int

	// MinConfidence is the minimum heatmap peak accepted as a joint (0.0-1.0).
	MinConfidence float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		InputSize:     368,
		MinConfidence: 0.1,
	}
}
