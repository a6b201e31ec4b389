package pose

import (
	"math"

	"go-arrow-game/internal/config"
	"go-arrow-game/internal/utils"
)

// Rig is a puppet right arm for frontends without a camera model. A pointer
// aims the arm and holding a button pulls the forearm back; the resulting
// Skeleton goes through the same gesture path as a detected one.
type Rig struct {
	ShoulderX, ShoulderY float64 // опорные пиксели
	Width, Height        float64
	DrawRate             float64 // прирост натяжения за Step

	aim     float64
	draw    float64
	holding bool
}

// NewRig creates a rig for a w×h reference viewport, aiming right.
func NewRig(w, h float64) *Rig {
	return &Rig{
		ShoulderX: config.ShoulderRestX,
		ShoulderY: config.ShoulderRestY,
		Width:     w,
		Height:    h,
		DrawRate:  0.08,
	}
}

// AimAt points the arm from the shoulder towards (x, y).
func (r *Rig) AimAt(x, y float64) {
	dx := x - r.ShoulderX
	dy := y - r.ShoulderY
	if dx == 0 && dy == 0 {
		return
	}
	r.aim = math.Atan2(dy, dx)
}

// Aim returns the current aim angle in radians.
func (r *Rig) Aim() float64 { return r.aim }

// Hold presses or releases the draw button.
func (r *Rig) Hold(pressed bool) { r.holding = pressed }

// Draw returns how far the forearm is pulled, in [0,1].
func (r *Rig) Draw() float64 { return r.draw }

// Step advances the pull by one frame. Releasing snaps the arm back.
func (r *Rig) Step() {
	if r.holding {
		r.draw = utils.Clamp(r.draw+r.DrawRate, 0, 1)
		return
	}
	r.draw = 0
}

// Skeleton renders the rig as normalized landmarks.
func (r *Rig) Skeleton() Skeleton {
	dx, dy := math.Cos(r.aim), math.Sin(r.aim)
	ex := r.ShoulderX + dx*config.UpperArmLength
	ey := r.ShoulderY + dy*config.UpperArmLength
	forearm := r.draw * config.MaxForearmLength
	wx := ex + dx*forearm
	wy := ey + dy*forearm

	return Skeleton{
		RightShoulder: FromPixel(r.ShoulderX, r.ShoulderY, r.Width, r.Height),
		RightElbow:    FromPixel(ex, ey, r.Width, r.Height),
		RightWrist:    FromPixel(wx, wy, r.Width, r.Height),
	}
}
