// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-arrow-game/internal/camera"
	"go-arrow-game/internal/clock"
	"go-arrow-game/internal/config"
	"go-arrow-game/internal/session"
	"go-arrow-game/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var settings session.Settings
	settings.RegisterFlags(flag.CommandLine)
	pprofAddr := flag.String("pprof", "", "Serve net/http/pprof on this address")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	sess, err := session.Start(settings, clock.System{})
	if err != nil {
		log.Fatal(err)
	}
	defer sess.Close()

	source := camera.NewSynthetic(config.ScreenWidth, config.ScreenHeight, clock.System{})
	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, sess.Game, source))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Heart Archer")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
	log.Printf("Final score: %d", sess.Game.Score())
}
