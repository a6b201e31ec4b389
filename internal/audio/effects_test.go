package audio

import (
	"math"
	"testing"
	"time"

	"go-arrow-game/internal/event"

	"github.com/gopxl/beep"
)

func streamAll(t *testing.T, s beep.Streamer, n int) [][2]float64 {
	t.Helper()
	samples := make([][2]float64, n)
	got, ok := s.Stream(samples)
	if !ok || got != n {
		t.Fatalf("Expected %d samples, got %d (ok=%v)", n, got, ok)
	}
	return samples
}

// TestTwangDecays verifies the twang stays in range and fades out
func TestTwangDecays(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := streamAll(t, NewTwangGenerator(rate, 220), rate.N(300*time.Millisecond))

	peak := func(from, to int) float64 {
		p := 0.0
		for _, s := range samples[from:to] {
			p = math.Max(p, math.Abs(s[0]))
		}
		return p
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("Sample %d out of range or not mono: %v", i, s)
		}
	}
	early, late := peak(0, 2000), peak(len(samples)-2000, len(samples))
	if late >= early/4 {
		t.Errorf("Expected decay, early peak %f, late peak %f", early, late)
	}
}

// TestChimeStartsSilent verifies the attack ramp avoids a click
func TestChimeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewChimeGenerator(rate, 660, 990)
	samples := streamAll(t, g, rate.N(300*time.Millisecond))

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	for i, s := range samples {
		if math.Abs(s[0]) > 0.25 {
			t.Fatalf("Sample %d above amplitude: %f", i, s[0])
		}
	}
	if g.Err() != nil {
		t.Errorf("Expected no error, got: %v", g.Err())
	}
}

// TestUninitializedManagerIsSilent verifies events are dropped without a speaker
func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager()
	d := event.NewDispatcher()
	sm.Subscribe(d)

	d.Dispatch(event.Event{Type: event.ArrowFired})
	d.Dispatch(event.Event{Type: event.TargetHit})

	if sm.mixer.Len() != 0 {
		t.Errorf("Expected no queued sounds, got %d", sm.mixer.Len())
	}
	sm.Cleanup()
}

// TestEventsQueueSounds verifies each subscribed event adds one effect
func TestEventsQueueSounds(t *testing.T) {
	sm := NewSoundManager()
	sm.initialized = true // без динамика: звуки только копятся в микшере

	sm.OnEvent(event.Event{Type: event.ArrowFired})
	sm.OnEvent(event.Event{Type: event.TargetHit})
	sm.OnEvent(event.Event{Type: event.TargetEscaped})
	sm.OnEvent(event.Event{Type: event.ArrowExpired})

	if sm.mixer.Len() != 3 {
		t.Errorf("Expected 3 queued sounds, got %d", sm.mixer.Len())
	}
}

// TestCleanupDropsQueuedSounds verifies Cleanup empties the mixer and stops queueing
func TestCleanupDropsQueuedSounds(t *testing.T) {
	sm := NewSoundManager()
	sm.initialized = true
	sm.PlayShot()
	sm.PlayHit()

	sm.Cleanup()
	if sm.mixer.Len() != 0 {
		t.Errorf("Expected empty mixer after Cleanup, got %d", sm.mixer.Len())
	}

	sm.PlayShot()
	if sm.mixer.Len() != 0 {
		t.Errorf("Sound queued after Cleanup")
	}
}
