// Package session собирает игру из флагов командной строки и подключает
// к ней устройства фронтенда: звук и иконки целей.
package session

import (
	"flag"
	"log"

	game "go-arrow-game/internal/app"
	"go-arrow-game/internal/assets"
	"go-arrow-game/internal/audio"
	"go-arrow-game/internal/clock"
	"go-arrow-game/internal/config"
	"go-arrow-game/internal/defs"
)

// Settings are the command line options shared by all frontends.
type Settings struct {
	TuningPath string
	IconPath   string
	Seed       int64
	Mute       bool
}

// RegisterFlags binds the settings to fs.
func (s *Settings) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&s.TuningPath, "tuning", "", "JSON file overriding game balance")
	fs.StringVar(&s.IconPath, "icon", "", "PNG drawn at every target instead of the vector heart")
	fs.Int64Var(&s.Seed, "seed", 0, "Random seed (0 = from time)")
	fs.BoolVar(&s.Mute, "mute", false, "Disable sound")
}

// Session is a ready game plus the devices the frontend owns for it.
type Session struct {
	Game  *game.Game
	Sound *audio.SoundManager
	Icons *assets.IconManager
}

// Start builds a game from s. A missing icon or a failing audio device are
// logged and skipped; a broken tuning file is an error.
func Start(s Settings, c clock.Clock) (*Session, error) {
	tuning := defs.DefaultTuning()
	if s.TuningPath != "" {
		t, err := defs.LoadTuning(s.TuningPath)
		if err != nil {
			return nil, err
		}
		tuning = t
	}

	session := &Session{Icons: assets.NewIconManager()}

	opts := []game.Option{game.WithTuning(tuning), game.WithSeed(s.Seed), game.WithClock(c)}
	if s.IconPath != "" {
		icon, err := session.Icons.Load(s.IconPath, config.HeartIconSize)
		if err != nil {
			log.Printf("WARNING: %v, using vector hearts", err)
		} else {
			opts = append(opts, game.WithTargetIcon(icon))
		}
	}

	g, err := game.NewGame(opts...)
	if err != nil {
		return nil, err
	}
	session.Game = g

	if !s.Mute {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			// Игра работает и без звука
			log.Printf("Audio initialization failed: %v", err)
		} else {
			sound.Subscribe(g.EventDispatcher)
			session.Sound = sound
		}
	}
	return session, nil
}

// Close releases the audio device and drops cached icons.
func (s *Session) Close() {
	if s.Sound != nil {
		s.Sound.Cleanup()
	}
	s.Icons.Cleanup()
}
