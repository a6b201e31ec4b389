// cmd/terminal/main.go
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"time"

	game "go-arrow-game/internal/app"
	"go-arrow-game/internal/camera"
	"go-arrow-game/internal/clock"
	"go-arrow-game/internal/config"
	"go-arrow-game/internal/pose"
	"go-arrow-game/internal/session"
	"go-arrow-game/internal/termview"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 33 * time.Millisecond

type terminalGame struct {
	screen tcell.Screen
	view   *termview.View
	game   *game.Game
	source camera.Source
	rig    *pose.Rig
	paused bool
	last   *image.RGBA
}

// handleInput returns false when the player quits.
func (t *terminalGame) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'p':
				t.paused = !t.paused
			}
		}
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		tuning := t.game.Tuning()
		x, y := t.view.ToViewport(cx, cy, tuning.ViewportWidth, tuning.ViewportHeight)
		t.rig.AimAt(x, y)
		t.rig.Hold(ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *terminalGame) tick() {
	if t.paused {
		if t.last != nil {
			t.view.Draw(t.last, "PAUSED | p - resume, q - quit")
		}
		return
	}
	t.rig.Step()
	frame, err := t.source.Read()
	if err != nil {
		log.Printf("camera: %v", err)
		return
	}
	out, err := t.game.ProcessFrame(frame, t.rig.Skeleton())
	if err != nil {
		log.Printf("frame: %v", err)
		return
	}
	t.last = out
	status := fmt.Sprintf("Score: %d | draw %3.0f%% | mouse - aim, hold button - draw, p - pause, q - quit",
		t.game.Score(), t.game.DrawFraction()*100)
	t.view.Draw(out, status)
}

// openLog returns the log destination. Without a path the log is discarded,
// since stderr shares the terminal with the game screen.
func openLog(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func main() {
	var settings session.Settings
	settings.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "", "Write log output to this file (the screen is taken by the game)")
	flag.Parse()

	w, closeLog, err := openLog(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	log.SetOutput(w)

	sess, err := session.Start(settings, clock.System{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)

	tuning := sess.Game.Tuning()
	t := &terminalGame{
		screen: screen,
		view:   termview.New(screen),
		game:   sess.Game,
		source: camera.NewSynthetic(config.ScreenWidth, config.ScreenHeight, clock.System{}),
		rig:    pose.NewRig(tuning.ViewportWidth, tuning.ViewportHeight),
	}

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !t.handleInput(ev) {
				return
			}
		case <-ticker.C:
			t.tick()
		}
	}
}
