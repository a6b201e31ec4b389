// cmd/viewer/main.go
package main

import (
	"flag"
	"fmt"
	"log"

	"go-arrow-game/internal/camera"
	"go-arrow-game/internal/clock"
	"go-arrow-game/internal/config"
	"go-arrow-game/internal/pose"
	"go-arrow-game/internal/rlview"
	"go-arrow-game/internal/session"
	"go-arrow-game/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	var settings session.Settings
	settings.RegisterFlags(flag.CommandLine)
	width := flag.Int("width", 1280, "Window width")
	height := flag.Int("height", 960, "Window height")
	flag.Parse()

	sess, err := session.Start(settings, clock.System{})
	if err != nil {
		log.Fatal(err)
	}
	defer sess.Close()
	g := sess.Game
	t := g.Tuning()

	// --- Инициализация ---
	rl.InitWindow(int32(*width), int32(*height), "Heart Archer | LMB/Space - draw, P - pause")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	presenter := rlview.NewPresenter()
	defer presenter.Unload()
	meter := ui.NewDrawMeterRL(float32(*width-200), float32(*height-50), 160)
	source := camera.NewSynthetic(config.ScreenWidth, config.ScreenHeight, clock.System{})
	rig := pose.NewRig(t.ViewportWidth, t.ViewportHeight)
	paused := false

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyF9) {
			paused = !paused
		}

		if !paused {
			x, y := rlview.ToViewport(rl.GetMousePosition(), rl.GetScreenWidth(), rl.GetScreenHeight(), t.ViewportWidth, t.ViewportHeight)
			rig.AimAt(x, y)
			rig.Hold(rl.IsMouseButtonDown(rl.MouseButtonLeft) || rl.IsKeyDown(rl.KeySpace))
			rig.Step()

			frame, err := source.Read()
			if err != nil {
				log.Printf("camera: %v", err)
				continue
			}
			out, err := g.ProcessFrame(frame, rig.Skeleton())
			if err != nil {
				log.Fatal(err)
			}
			presenter.Upload(out)
		}

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(config.BackgroundColor.R, config.BackgroundColor.G, config.BackgroundColor.B, 255))
		presenter.Draw()
		meter.Draw(ui.NewMeter(g.DrawFraction(), t.FireThreshold, g.CooldownRemaining(), t.Cooldown))
		if paused {
			rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), rl.NewColor(0, 0, 0, 128))
			rl.DrawText("PAUSED", int32(rl.GetScreenWidth())/2-60, int32(rl.GetScreenHeight())/2-20, 40, rl.White)
		}
		rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), int32(rl.GetScreenWidth())-90, 10, 20, rl.White)
		rl.EndDrawing()
	}
	log.Printf("Final score: %d", g.Score())
}
