// Package openpose detects a body skeleton with the OpenPose COCO Caffe model
// through the OpenCV DNN module.
package openpose

import (
	"errors"
	"fmt"
	"image"
	"log"

	"go-arrow-game/internal/pose"

	"gocv.io/x/gocv"
)

// ErrModelNotLoaded is returned when the network files could not be read.
var ErrModelNotLoaded = errors.New("openpose: model not loaded")

// Detector implements pose.Provider.
type Detector struct {
	net    gocv.Net
	config pose.Config
}

var _ pose.Provider = (*Detector)(nil)

// New loads the prototxt and caffemodel files.
func New(proto, model string, config pose.Config) (*Detector, error) {
	net := gocv.ReadNetFromCaffe(proto, model)
	if net.Empty() {
		return nil, fmt.Errorf("%w: %s, %s", ErrModelNotLoaded, proto, model)
	}
	log.Printf("Loaded pose model %s", model)
	return &Detector{net: net, config: config}, nil
}

// Detect runs the network on frame and keeps the strongest peak per part.
func (d *Detector) Detect(frame image.Image) (pose.Skeleton, error) {
	mat, err := gocv.ImageToMatRGB(frame)
	if err != nil {
		return nil, fmt.Errorf("openpose: convert frame: %w", err)
	}
	defer mat.Close()
	return d.DetectMat(mat)
}

// DetectMat is Detect for a frame that is already a BGR Mat.
func (d *Detector) DetectMat(mat gocv.Mat) (pose.Skeleton, error) {
	if mat.Empty() {
		return nil, nil
	}
	size := image.Pt(d.config.InputSize, d.config.InputSize)
	blob := gocv.BlobFromImage(mat, 1.0/255.0, size, gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	d.net.SetInput(blob, "")
	prob := d.net.Forward("")
	defer prob.Close()

	// Выход сети: [1, части, H, W].
	dims := prob.Size()
	if len(dims) != 4 || dims[1] < pose.COCOParts {
		return nil, fmt.Errorf("openpose: unexpected output shape %v", dims)
	}
	h, w := dims[2], dims[3]

	peaks := make([]pose.Peak, 0, pose.COCOParts)
	for part := 0; part < pose.COCOParts; part++ {
		heatmap, err := prob.FromPtr(h, w, gocv.MatTypeCV32F, 0, part)
		if err != nil {
			return nil, fmt.Errorf("openpose: heatmap %d: %w", part, err)
		}
		_, maxVal, _, maxLoc := gocv.MinMaxLoc(heatmap)
		heatmap.Close()
		peaks = append(peaks, pose.Peak{Part: part, X: maxLoc.X, Y: maxLoc.Y, Confidence: float64(maxVal)})
	}
	return pose.FromPeaks(peaks, w, h, d.config.MinConfidence), nil
}

// Close releases the network.
func (d *Detector) Close() error {
	return d.net.Close()
}
