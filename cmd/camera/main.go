// cmd/camera/main.go
package main

import (
	"errors"
	"flag"
	"log"

	"go-arrow-game/internal/camera"
	"go-arrow-game/internal/camera/webcam"
	"go-arrow-game/internal/clock"
	"go-arrow-game/internal/pose"
	"go-arrow-game/internal/pose/openpose"
	"go-arrow-game/internal/session"
)

const keyEscape = 27

func main() {
	var settings session.Settings
	settings.RegisterFlags(flag.CommandLine)
	device := flag.Int("device", 0, "Camera device id")
	proto := flag.String("proto", "models/pose_deploy_linevec.prototxt", "OpenPose COCO prototxt")
	model := flag.String("model", "models/pose_iter_440000.caffemodel", "OpenPose COCO weights")
	inputSize := flag.Int("input", pose.DefaultConfig().InputSize, "Network input size")
	mirror := flag.Bool("mirror", true, "Flip the camera image horizontally")
	flag.Parse()

	sess, err := session.Start(settings, clock.System{})
	if err != nil {
		log.Fatal(err)
	}
	defer sess.Close()

	cfg := pose.DefaultConfig()
	cfg.InputSize = *inputSize
	detector, err := openpose.New(*proto, *model, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer detector.Close()

	cam, err := webcam.Open(*device)
	if err != nil {
		log.Fatal(err)
	}
	defer cam.Close()
	cam.Mirror = *mirror

	window := webcam.NewWindow("Heart Archer")
	defer window.Close()

	paused := false
	for window.Open() {
		frame, err := cam.Read()
		if errors.Is(err, camera.ErrNoFrame) {
			continue
		}
		if err != nil {
			log.Fatal(err)
		}

		if !paused {
			skeleton, err := detector.Detect(frame)
			if err != nil {
				log.Printf("pose: %v", err)
				skeleton = nil
			}
			out, err := sess.Game.ProcessFrame(frame, skeleton)
			if err != nil {
				log.Fatal(err)
			}
			frame = out
		}

		key, err := window.Show(frame, 1)
		if err != nil {
			log.Printf("window: %v", err)
		}
		switch key {
		case keyEscape, 'q':
			log.Printf("Final score: %d", sess.Game.Score())
			return
		case 'p':
			paused = !paused
		}
	}
	log.Printf("Final score: %d", sess.Game.Score())
}
