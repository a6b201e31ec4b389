// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"image"

	"go-arrow-game/internal/clock"
	"go-arrow-game/internal/defs"
	"go-arrow-game/internal/entity"
	"go-arrow-game/internal/event"
	"go-arrow-game/internal/pose"
	"go-arrow-game/internal/system"
	"go-arrow-game/internal/utils"
	"go-arrow-game/pkg/render"
)

// ErrEmptyFrame is returned by ProcessFrame for a nil or zero-sized frame.
var ErrEmptyFrame = errors.New("frame is empty")

// Game holds the state of one play session and advances it once per video
// frame.
//
// A Game is not safe for concurrent use: the caller must not start a
// ProcessFrame call before the previous one returned.
type Game struct {
	ECS              *entity.ECS
	GestureSystem    *system.GestureSystem
	SpawnSystem      *system.SpawnSystem
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	CombatSystem     *system.CombatSystem
	RenderSystem     *system.RenderSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	tuning  defs.Tuning
	clock   clock.Clock
	seed    int64
	palette render.Palette
	icon    image.Image
	frames  uint64
}

// Option configures a Game.
type Option func(*Game)

// WithClock replaces the wall clock used for drift and cooldown.
func WithClock(c clock.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithSeed fixes the random seed. Zero means "seed from time".
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// WithTuning overrides the default game balance.
func WithTuning(t defs.Tuning) Option {
	return func(g *Game) { g.tuning = t }
}

// WithDispatcher makes the game publish its events on d.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) { g.EventDispatcher = d }
}

// WithPalette overrides overlay and HUD colors.
func WithPalette(p render.Palette) Option {
	return func(g *Game) { g.palette = p }
}

// WithTargetIcon draws img at every target instead of the vector heart.
func WithTargetIcon(img image.Image) Option {
	return func(g *Game) { g.icon = img }
}

// NewGame initializes a new game instance.
func NewGame(opts ...Option) (*Game, error) {
	g := &Game{
		tuning:  defs.DefaultTuning(),
		clock:   clock.System{},
		palette: render.DefaultPalette(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.tuning.Validate(); err != nil {
		return nil, err
	}
	if g.EventDispatcher == nil {
		g.EventDispatcher = event.NewDispatcher()
	}

	ecs := entity.NewECS()
	// Первый выстрел возможен не раньше, чем через перезарядку после старта.
	ecs.Gesture.LastShot = g.clock.Now()

	g.ECS = ecs
	g.Rng = utils.NewPRNGService(g.seed)
	g.GestureSystem = system.NewGestureSystem(ecs, g.EventDispatcher, &g.tuning)
	g.SpawnSystem = system.NewSpawnSystem(ecs, g.EventDispatcher, &g.tuning, g.Rng)
	g.MovementSystem = system.NewMovementSystem(ecs, g.EventDispatcher, &g.tuning)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.EventDispatcher, &g.tuning)
	g.CombatSystem = system.NewCombatSystem(ecs, g.EventDispatcher, &g.tuning)
	g.RenderSystem = system.NewRenderSystem(ecs, &g.tuning, g.palette, g.icon)
	return g, nil
}

// ProcessFrame advances the game by one frame and returns frame with the game
// overlay and HUD composited in. A nil or empty skeleton means nobody is in
// view. The returned image is newly allocated; frame is only read.
func (g *Game) ProcessFrame(frame image.Image, skeleton pose.Skeleton) (*image.RGBA, error) {
	if frame == nil {
		return nil, fmt.Errorf("process frame: %w", ErrEmptyFrame)
	}
	if b := frame.Bounds(); b.Empty() {
		return nil, fmt.Errorf("process frame %v: %w", b, ErrEmptyFrame)
	}

	now := g.clock.Now()
	g.frames++

	arm, ok := system.ArmFromSkeleton(skeleton, g.tuning.ViewportWidth, g.tuning.ViewportHeight)
	g.GestureSystem.Update(now, arm, ok)

	g.SpawnSystem.Update()

	// Порядок важен: сердца двигаются до стрел, попадания проверяются до
	// удаления вылетевших стрел.
	g.MovementSystem.Update(now)
	g.ProjectileSystem.Update()
	g.CombatSystem.Update()
	g.ProjectileSystem.Cull()
	g.ECS.Flush()

	return g.RenderSystem.Draw(frame, skeleton), nil
}

// Score returns the current score.
func (g *Game) Score() int { return g.ECS.Score.Value }

// TargetCount returns the number of live targets.
func (g *Game) TargetCount() int { return len(g.ECS.Targets) }

// ProjectileCount returns the number of live arrows.
func (g *Game) ProjectileCount() int { return len(g.ECS.Projectiles) }

// DrawFraction returns the bow draw computed on the last frame.
func (g *Game) DrawFraction() float64 { return g.ECS.Gesture.DrawFraction }

// Drawing reports whether the bow was held past the fire threshold on the
// last frame with an arm in view.
func (g *Game) Drawing() bool { return g.ECS.Gesture.Drawing }

// CooldownRemaining returns how long until the next shot is allowed.
func (g *Game) CooldownRemaining() float64 {
	left := g.tuning.Cooldown - g.clock.Now().Sub(g.ECS.Gesture.LastShot).Seconds()
	if left < 0 {
		return 0
	}
	return left
}

// Frames returns how many frames were processed.
func (g *Game) Frames() uint64 { return g.frames }

// Tuning returns the balance this game runs with.
func (g *Game) Tuning() defs.Tuning { return g.tuning }
