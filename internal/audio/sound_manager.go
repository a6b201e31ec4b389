package audio

import (
	"log"
	"sync"
	"time"

	"go-arrow-game/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays short effects for game events. It subscribes to the
// game dispatcher and does nothing until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Subscribe registers the manager for every event it has a sound for.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm, event.ArrowFired, event.TargetHit, event.TargetEscaped)
}

// OnEvent реализует event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.ArrowFired:
		sm.PlayShot()
	case event.TargetHit:
		sm.PlayHit()
	case event.TargetEscaped:
		sm.PlayEscape()
	}
}

// PlayShot plays the bowstring twang
func (sm *SoundManager) PlayShot() {
	sm.add(beep.Take(sampleRate.N(time.Millisecond*250), NewTwangGenerator(sampleRate, 220)))
}

// PlayHit plays a rising two-note chime
func (sm *SoundManager) PlayHit() {
	sm.add(beep.Take(sampleRate.N(time.Millisecond*300), NewChimeGenerator(sampleRate, 660, 990)))
}

// PlayEscape plays a short low blip when a heart drifts off screen
func (sm *SoundManager) PlayEscape() {
	tone, err := generators.SineTone(sampleRate, 180)
	if err != nil {
		log.Printf("audio: escape tone: %v", err)
		return
	}
	quiet := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := tone.Stream(samples)
		for i := range samples[:n] {
			samples[i][0] *= 0.15
			samples[i][1] *= 0.15
		}
		return n, ok
	})
	sm.add(beep.Take(sampleRate.N(time.Millisecond*80), quiet))
}

func (sm *SoundManager) add(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
