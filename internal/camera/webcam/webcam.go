// Package webcam reads frames from an OpenCV capture device and shows the
// processed result in an OpenCV window.
package webcam

import (
	"fmt"
	"image"
	"log"

	"go-arrow-game/internal/camera"

	"gocv.io/x/gocv"
)

// Webcam implements camera.Source over gocv.VideoCapture.
type Webcam struct {
	capture *gocv.VideoCapture
	mat     gocv.Mat
	mirror  gocv.Mat
	Mirror  bool
}

var _ camera.Source = (*Webcam)(nil)

// Open opens capture device id (usually 0).
func Open(id int) (*Webcam, error) {
	capture, err := gocv.OpenVideoCapture(id)
	if err != nil {
		return nil, fmt.Errorf("failed to open camera %d: %w", id, err)
	}
	log.Printf("Opened camera %d", id)
	return &Webcam{
		capture: capture,
		mat:     gocv.NewMat(),
		mirror:  gocv.NewMat(),
		Mirror:  true,
	}, nil
}

// Read grabs the next frame. With Mirror set the frame is flipped
// horizontally so the player sees themselves as in a mirror.
func (w *Webcam) Read() (image.Image, error) {
	if ok := w.capture.Read(&w.mat); !ok || w.mat.Empty() {
		return nil, camera.ErrNoFrame
	}
	src := w.mat
	if w.Mirror {
		gocv.Flip(w.mat, &w.mirror, 1)
		src = w.mirror
	}
	img, err := src.ToImage()
	if err != nil {
		return nil, fmt.Errorf("camera frame: %w", err)
	}
	return img, nil
}

// Close releases the device.
func (w *Webcam) Close() error {
	w.mat.Close()
	w.mirror.Close()
	return w.capture.Close()
}

// Window shows images in a native OpenCV window.
type Window struct {
	win *gocv.Window
}

// NewWindow opens a window titled title.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

// Show displays img and pumps window events for up to delay ms. It returns
// the pressed key, or -1.
func (w *Window) Show(img image.Image, delay int) (int, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return -1, fmt.Errorf("window: %w", err)
	}
	defer mat.Close()
	w.win.IMShow(mat)
	return w.win.WaitKey(delay), nil
}

// Open reports whether the user has not closed the window.
func (w *Window) Open() bool {
	return w.win.IsOpen()
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.win.Close()
}
