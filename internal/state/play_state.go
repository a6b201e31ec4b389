// internal/state/play_state.go
package state

import (
	"errors"
	"image"

	game "go-arrow-game/internal/app"
	"go-arrow-game/internal/camera"
	"go-arrow-game/internal/config"
	"go-arrow-game/internal/pose"
	"go-arrow-game/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayState — игра: каждый тик читает кадр, прогоняет его через движок и
// показывает результат. Лук управляется мышью через pose.Rig.
type PlayState struct {
	sm     *StateMachine
	game   *game.Game
	source camera.Source
	rig    *pose.Rig
	meter  *ui.DrawMeter

	last  *image.RGBA
	frame *ebiten.Image
}

func NewPlayState(sm *StateMachine, g *game.Game, source camera.Source) *PlayState {
	t := g.Tuning()
	return &PlayState{
		sm:     sm,
		game:   g,
		source: source,
		rig:    pose.NewRig(t.ViewportWidth, t.ViewportHeight),
		meter:  ui.NewDrawMeter(float32(config.ScreenWidth-180), float32(config.ScreenHeight-40)),
	}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return nil
	}

	// Layout совпадает с размером поля, курсор уже в его координатах
	x, y := ebiten.CursorPosition()
	s.rig.AimAt(float64(x), float64(y))
	s.rig.Hold(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace))
	s.rig.Step()

	frame, err := s.source.Read()
	if errors.Is(err, camera.ErrNoFrame) {
		return nil
	}
	if err != nil {
		return err
	}
	out, err := s.game.ProcessFrame(frame, s.rig.Skeleton())
	if err != nil {
		return err
	}
	s.last = out
	return nil
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	if s.last == nil {
		return
	}
	b := s.last.Bounds()
	if s.frame == nil || s.frame.Bounds().Size() != b.Size() {
		s.frame = ebiten.NewImage(b.Dx(), b.Dy())
	}
	s.frame.WritePixels(s.last.Pix)

	op := &ebiten.DrawImageOptions{}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op.GeoM.Scale(float64(sw)/float64(b.Dx()), float64(sh)/float64(b.Dy()))
	screen.DrawImage(s.frame, op)

	t := s.game.Tuning()
	s.meter.Draw(screen, ui.NewMeter(s.game.DrawFraction(), t.FireThreshold, s.game.CooldownRemaining(), t.Cooldown))
}

func (s *PlayState) Exit() {}
