package app

import (
	"errors"
	"image"
	"math"
	"testing"
	"time"

	"go-arrow-game/internal/clock"
	"go-arrow-game/internal/component"
	"go-arrow-game/internal/defs"
	"go-arrow-game/internal/event"
	"go-arrow-game/internal/pose"
)

type hits struct {
	scores []int
}

func (h *hits) OnEvent(e event.Event) {
	h.scores = append(h.scores, e.Data.(event.Hit).Score)
}

func quietTuning() defs.Tuning {
	t := defs.DefaultTuning()
	t.SpawnProbability = 0
	return t
}

func newTestGame(t *testing.T, tuning defs.Tuning) (*Game, *clock.Mock) {
	t.Helper()
	clk := clock.NewMock(time.Unix(0, 0))
	g, err := NewGame(WithClock(clk), WithSeed(42), WithTuning(tuning))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g, clk
}

func blank() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 640, 480))
}

// drawnArm is a right arm pulled to 0.9 of the draw distance, pointing down.
func drawnArm() pose.Skeleton {
	return pose.Skeleton{
		pose.RightShoulder: {X: 0.25, Y: 0.25},
		pose.RightElbow:    {X: 0.5, Y: 0.5},
		pose.RightWrist:    {X: 0.5, Y: 0.6875},
	}
}

func TestProcessFrameFiresArrowFromShoulder(t *testing.T) {
	g, clk := newTestGame(t, quietTuning())
	clk.Advance(2 * time.Second)

	out, err := g.ProcessFrame(blank(), drawnArm())
	if err != nil {
		t.Fatalf("ProcessFrame: %v", err)
	}
	if out.Bounds() != image.Rect(0, 0, 640, 480) {
		t.Fatalf("output bounds = %v", out.Bounds())
	}
	if g.ProjectileCount() != 1 {
		t.Fatalf("projectiles = %d, want 1", g.ProjectileCount())
	}
	p := g.ECS.Projectiles[0]
	// Стрела появляется у плеча и в том же кадре сдвигается на скорость.
	if p.Position != (component.Position{X: 160, Y: 130}) {
		t.Fatalf("arrow at %+v, want (160,130)", p.Position)
	}
	if !g.Drawing() || g.DrawFraction() != 0.9 {
		t.Fatalf("drawing=%v fraction=%v", g.Drawing(), g.DrawFraction())
	}
	if g.CooldownRemaining() != 1 {
		t.Fatalf("cooldown remaining = %v, want 1", g.CooldownRemaining())
	}
}

func TestNoShotDuringFirstSecond(t *testing.T) {
	g, clk := newTestGame(t, quietTuning())
	clk.Advance(900 * time.Millisecond)

	if _, err := g.ProcessFrame(blank(), drawnArm()); err != nil {
		t.Fatalf("ProcessFrame: %v", err)
	}
	if g.ProjectileCount() != 0 {
		t.Fatalf("shot fired before the cooldown after start")
	}
}

func TestProcessFrameScoresHit(t *testing.T) {
	g, _ := newTestGame(t, quietTuning())
	d := g.EventDispatcher
	h := &hits{}
	d.Subscribe(event.TargetHit, h)

	g.ECS.AddTarget(component.Position{X: 320, Y: 240}, 3)
	g.ECS.AddProjectile(component.Position{X: 315, Y: 233}, component.Velocity{DX: 6, DY: 8})

	if _, err := g.ProcessFrame(blank(), nil); err != nil {
		t.Fatalf("ProcessFrame: %v", err)
	}
	if g.Score() != 10 {
		t.Fatalf("score = %d, want 10", g.Score())
	}
	if g.TargetCount() != 0 || g.ProjectileCount() != 0 {
		t.Fatalf("targets=%d projectiles=%d after hit", g.TargetCount(), g.ProjectileCount())
	}
	if len(h.scores) != 1 || h.scores[0] != 10 {
		t.Fatalf("hit events = %v", h.scores)
	}
}

func TestScoreGrowsByTenPerHit(t *testing.T) {
	g, _ := newTestGame(t, quietTuning())
	h := &hits{}
	g.EventDispatcher.Subscribe(event.TargetHit, h)

	for i := 0; i < 4; i++ {
		x := 100 + float64(i)*100
		g.ECS.AddTarget(component.Position{X: x, Y: 240}, 3)
		g.ECS.AddProjectile(component.Position{X: x, Y: 230}, component.Velocity{DY: 1})
	}
	if _, err := g.ProcessFrame(blank(), nil); err != nil {
		t.Fatalf("ProcessFrame: %v", err)
	}
	if g.Score() != 40 {
		t.Fatalf("score = %d, want 40", g.Score())
	}
	for i, s := range h.scores {
		if s != (i+1)*10 {
			t.Fatalf("score after hit %d = %d, want %d", i+1, s, (i+1)*10)
		}
	}
}

func TestTargetCapUnderConstantSpawn(t *testing.T) {
	tuning := defs.DefaultTuning()
	tuning.SpawnProbability = 1
	g, _ := newTestGame(t, tuning)

	for i := 0; i < 50; i++ {
		if _, err := g.ProcessFrame(blank(), nil); err != nil {
			t.Fatalf("ProcessFrame: %v", err)
		}
		if g.TargetCount() > 5 {
			t.Fatalf("targets = %d after frame %d", g.TargetCount(), i+1)
		}
	}
	if g.TargetCount() != 5 {
		t.Fatalf("targets = %d, want 5", g.TargetCount())
	}
}

func TestEmptyFrameIsRejected(t *testing.T) {
	g, _ := newTestGame(t, quietTuning())

	if _, err := g.ProcessFrame(nil, nil); !errors.Is(err, ErrEmptyFrame) {
		t.Fatalf("nil frame: err = %v, want ErrEmptyFrame", err)
	}
	if _, err := g.ProcessFrame(image.NewRGBA(image.Rect(0, 0, 0, 10)), nil); !errors.Is(err, ErrEmptyFrame) {
		t.Fatalf("zero-width frame: err = %v, want ErrEmptyFrame", err)
	}
	if g.Frames() != 0 {
		t.Fatalf("rejected frames were counted")
	}
}

func TestMalformedSkeletonDoesNotPanic(t *testing.T) {
	g, clk := newTestGame(t, quietTuning())
	clk.Advance(2 * time.Second)

	skeletons := []pose.Skeleton{
		{pose.RightShoulder: {X: math.NaN(), Y: 0.5}, pose.RightElbow: {X: 0.5, Y: 0.5}, pose.RightWrist: {X: 0.5, Y: 0.9}},
		{pose.RightShoulder: {X: 0.5, Y: 0.5}, pose.RightElbow: {X: math.Inf(1), Y: 0.5}, pose.RightWrist: {X: 0.5, Y: 0.9}},
		{pose.RightShoulder: {X: -3, Y: 7}, pose.RightElbow: {X: 0.5, Y: 0.5}, pose.RightWrist: {X: 0.5, Y: 0.5}},
		{pose.Nose: {X: 0.5, Y: 0.5}},
		{},
	}
	for i, s := range skeletons {
		if _, err := g.ProcessFrame(blank(), s); err != nil {
			t.Fatalf("skeleton %d: %v", i, err)
		}
	}
	if g.ProjectileCount() != 0 {
		t.Fatalf("malformed skeletons produced %d arrows", g.ProjectileCount())
	}
}

func TestLargerFrameKeepsReferenceCoordinates(t *testing.T) {
	g, clk := newTestGame(t, quietTuning())
	clk.Advance(2 * time.Second)

	frame := image.NewRGBA(image.Rect(0, 0, 1280, 960))
	out, err := g.ProcessFrame(frame, drawnArm())
	if err != nil {
		t.Fatalf("ProcessFrame: %v", err)
	}
	if out.Bounds() != frame.Bounds() {
		t.Fatalf("output bounds = %v, want %v", out.Bounds(), frame.Bounds())
	}
	if g.ProjectileCount() != 1 || g.ECS.Projectiles[0].Position != (component.Position{X: 160, Y: 130}) {
		t.Fatalf("simulation depends on frame size: %+v", g.ECS.Projectiles)
	}
}

func TestNewGameRejectsBadTuning(t *testing.T) {
	tuning := defs.DefaultTuning()
	tuning.HitRadius = -1
	if _, err := NewGame(WithTuning(tuning)); !errors.Is(err, defs.ErrInvalidTuning) {
		t.Fatalf("err = %v, want ErrInvalidTuning", err)
	}
}

func TestSeedMakesSpawnsReproducible(t *testing.T) {
	tuning := defs.DefaultTuning()
	tuning.SpawnProbability = 0.5
	a, _ := newTestGame(t, tuning)
	b, _ := newTestGame(t, tuning)

	for i := 0; i < 30; i++ {
		a.ProcessFrame(blank(), nil)
		b.ProcessFrame(blank(), nil)
	}
	if a.TargetCount() != b.TargetCount() {
		t.Fatalf("target counts differ: %d vs %d", a.TargetCount(), b.TargetCount())
	}
	for i := range a.ECS.Targets {
		if a.ECS.Targets[i].Position != b.ECS.Targets[i].Position {
			t.Fatalf("target %d differs", i)
		}
	}
}
