// internal/system/render.go
package system

import (
	"fmt"
	"image"
	"log"

	"go-arrow-game/internal/component"
	"go-arrow-game/internal/config"
	"go-arrow-game/internal/defs"
	"go-arrow-game/internal/entity"
	"go-arrow-game/internal/pose"
	"go-arrow-game/pkg/render"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// RenderSystem накладывает игровые объекты на кадр камеры.
//
// Landmarks, hearts and arrows are painted on a copy of the frame and blended
// back at OverlayAlpha. The bow is painted on the frame side of the blend, so
// it shows at 1-OverlayAlpha. The HUD is drawn last, fully opaque.
type RenderSystem struct {
	ecs     *entity.ECS
	tuning  *defs.Tuning
	palette render.Palette
	icon    image.Image

	base, overlay *image.RGBA
	face          font.Face
	faceSize      float64
}

func NewRenderSystem(ecs *entity.ECS, tuning *defs.Tuning, palette render.Palette, icon image.Image) *RenderSystem {
	return &RenderSystem{
		ecs:     ecs,
		tuning:  tuning,
		palette: palette,
		icon:    icon,
	}
}

// Draw composites the current state onto frame and returns a new image with
// the same bounds. frame itself is never written.
func (s *RenderSystem) Draw(frame image.Image, skeleton pose.Skeleton) *image.RGBA {
	b := frame.Bounds()
	if s.base == nil || s.base.Bounds() != b {
		s.base = image.NewRGBA(b)
		s.overlay = image.NewRGBA(b)
	}
	draw.Draw(s.base, b, frame, b.Min, draw.Src)
	copy(s.overlay.Pix, s.base.Pix)

	vp := render.NewViewport(b, s.tuning.ViewportWidth, s.tuning.ViewportHeight)

	s.drawLandmarks(s.overlay, vp, skeleton)
	s.drawBow(s.base, vp, skeleton)
	for _, t := range s.ecs.Targets {
		s.drawHeart(s.overlay, vp, t)
	}
	for _, p := range s.ecs.Projectiles {
		s.drawArrow(s.overlay, vp, p)
	}

	out := image.NewRGBA(b)
	render.Blend(out, s.overlay, s.base, s.tuning.OverlayAlpha)
	s.drawHUD(out, vp)
	return out
}

func (s *RenderSystem) drawLandmarks(dst *image.RGBA, vp render.Viewport, skeleton pose.Skeleton) {
	r := vp.Len(config.LandmarkRadius)
	for j := range skeleton {
		l, ok := skeleton.Lookup(j)
		if !ok {
			continue
		}
		x, y := vp.Point(l.Pixel(s.tuning.ViewportWidth, s.tuning.ViewportHeight))
		render.FillCircle(dst, x, y, r, s.palette.Landmark)
	}
}

// drawBow рисует лук у локтя: две дуги, предплечье и тетиву.
func (s *RenderSystem) drawBow(dst *image.RGBA, vp render.Viewport, skeleton pose.Skeleton) {
	elbow, ok1 := skeleton.Lookup(pose.RightElbow)
	wrist, ok2 := skeleton.Lookup(pose.RightWrist)
	if !ok1 || !ok2 {
		return
	}
	ex, ey := vp.Point(elbow.Pixel(s.tuning.ViewportWidth, s.tuning.ViewportHeight))
	wx, wy := vp.Point(wrist.Pixel(s.tuning.ViewportWidth, s.tuning.ViewportHeight))

	r := vp.Len(config.BowRadius)
	render.StrokeArc(dst, ex, ey, r, vp.Len(config.BowInnerWidth), -config.BowArcHalfAngle, config.BowArcHalfAngle, s.palette.BowInner)
	render.StrokeArc(dst, ex, ey, r+vp.Len(5), vp.Len(config.BowOuterWidth), -config.BowArcHalfAngle, config.BowArcHalfAngle, s.palette.BowOuter)
	render.StrokeLine(dst, ex, ey, wx, wy, vp.Len(config.BowArmWidth), s.palette.BowArm)
	render.StrokeLine(dst, ex, wy, wx, wy, vp.Len(config.BowStringWidth), s.palette.BowString)
}

func (s *RenderSystem) drawHeart(dst *image.RGBA, vp render.Viewport, t *component.Target) {
	x, y := vp.Point(t.Position.X, t.Position.Y)
	size := vp.Len(config.HeartSize)

	if s.icon != nil {
		half := vp.Len(config.HeartIconSize) / 2
		r := image.Rect(int(x-half), int(y-half), int(x+half), int(y+half))
		draw.ApproxBiLinear.Scale(dst, r, s.icon, s.icon.Bounds(), draw.Over, nil)
	} else {
		render.FillCircle(dst, x-size/4, y, size/2, s.palette.Heart)
		render.FillCircle(dst, x+size/4, y, size/2, s.palette.Heart)
		render.FillPolygon(dst, []render.Point{
			{X: x - size/2, Y: y + size/4},
			{X: x, Y: y + size},
			{X: x + size/2, Y: y + size/4},
		}, s.palette.Heart)
	}
	render.StrokeCircle(dst, x, y, size+vp.Len(10), vp.Len(config.HeartRingWidth), render.DarkenColor(s.palette.Heart))
}

func (s *RenderSystem) drawArrow(dst *image.RGBA, vp render.Viewport, p *component.Projectile) {
	tail := p.Tail(config.ArrowTrailFactor)
	tx, ty := vp.Point(tail.X, tail.Y)
	hx, hy := vp.Point(p.Position.X, p.Position.Y)
	render.StrokeLine(dst, tx, ty, hx, hy, vp.Len(config.ArrowTrailWidth), s.palette.Arrow)
	render.FillCircle(dst, hx, hy, vp.Len(config.ArrowHeadRadius), s.palette.ArrowHead)
}

func (s *RenderSystem) drawHUD(dst *image.RGBA, vp render.Viewport) {
	render.FillRect(dst, vp.Rect(config.HUDPanelX0, config.HUDPanelY0, config.HUDPanelX1, config.HUDPanelY1), s.palette.HUDPanel)
	x, y := vp.Point(config.HUDTextX, config.HUDTextY)
	render.DrawText(dst, s.hudFace(vp), int(x), int(y), fmt.Sprintf("Score: %d", s.ecs.Score.Value), s.palette.HUDText)
}

// hudFace caches the HUD face for the current frame scale.
func (s *RenderSystem) hudFace(vp render.Viewport) font.Face {
	size := vp.Len(config.HUDFontSize)
	if s.face != nil && s.faceSize == size {
		return s.face
	}
	face, err := render.NewHUDFace(size)
	if err != nil {
		log.Printf("HUD font unavailable, falling back to basicfont: %v", err)
		face = basicfont.Face7x13
	}
	s.face = face
	s.faceSize = size
	return face
}
