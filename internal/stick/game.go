package stick

import (
	"github.com/vovakirdan/stick-bridge/internal/config"
	"github.com/vovakirdan/stick-bridge/internal/core"
)

// Game owns one play session and its phase machine.
// It is not safe for concurrent use; the tick driver and input handlers
// must run on the same goroutine.
type Game struct {
	cfg  config.StickConfig
	gen  *Generator
	eval Evaluator

	platforms   []Platform
	sticks      []Stick // Last entry is the active stick
	hero        Hero
	sceneOffset float64
	score       int
	phase       Phase

	lastTS  float64 // Last display timestamp in ms
	hasLast bool    // Whether lastTS is valid
}

// New creates a game in its initial waiting state.
func New(cfg config.StickConfig, src Source) *Game {
	g := &Game{
		cfg:  cfg,
		gen:  NewGenerator(src, cfg.Generator),
		eval: Evaluator{PerfectAreaSize: cfg.Geometry.PerfectAreaSize},
	}
	g.Reset()
	return g
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.StickConfig {
	return g.cfg
}

// Reset discards the current session, including any in-flight animation,
// and lays out a fresh row of platforms.
func (g *Game) Reset() {
	geo := g.cfg.Geometry

	g.platforms = make([]Platform, 0, geo.SeedPlatforms+8)
	g.platforms = append(g.platforms, Platform{X: geo.SeedPlatformX, W: geo.SeedPlatformWidth})
	for i := 0; i < geo.SeedPlatforms; i++ {
		g.platforms = g.gen.Extend(g.platforms)
	}

	first := g.platforms[0]
	g.sticks = []Stick{{X: first.Right()}}
	g.hero = Hero{X: first.Right() - geo.HeroDistanceFromEdge}
	g.sceneOffset = 0
	g.score = 0
	g.phase = PhaseWaiting
	g.hasLast = false
}

// Press starts stretching the stick. It only has an effect while waiting
// and returns whether it did; the caller should resume ticking then.
func (g *Game) Press() bool {
	if g.phase != PhaseWaiting {
		return false
	}
	g.hasLast = false // Idle time must not count as stretch time
	g.phase = PhaseStretching
	return true
}

// Release lets the stick fall. It only has an effect while stretching.
func (g *Game) Release() bool {
	if g.phase != PhaseStretching {
		return false
	}
	g.phase = PhaseTurning
	return true
}

// Advance runs one display tick at timestamp ts (milliseconds, monotonic).
// The first tick after Reset or Press only records the timestamp.
func (g *Game) Advance(ts float64) TickResult {
	if !g.phase.Animating() {
		return g.result(0)
	}

	if !g.hasLast {
		g.lastTS = ts
		g.hasLast = true
		return g.result(0)
	}

	dt := ts - g.lastTS
	g.lastTS = ts
	if dt < 0 {
		dt = 0
	}
	return g.Step(dt)
}

// Step advances the current phase by dt milliseconds.
func (g *Game) Step(dt float64) TickResult {
	var ev Events

	switch g.phase {
	case PhaseWaiting, PhaseEnded:
		// Nothing moves

	case PhaseStretching:
		g.activeStick().Length += dt / g.cfg.Speeds.Stretching

	case PhaseTurning:
		ev = g.stepTurning(dt)

	case PhaseWalking:
		g.stepWalking(dt)

	case PhaseTransitioning:
		g.stepTransitioning(dt)

	case PhaseFalling:
		ev = g.stepFalling(dt)

	default:
		violate("step", "unknown phase %d", g.phase)
	}

	return g.result(ev)
}

func (g *Game) result(ev Events) TickResult {
	return TickResult{Schedule: g.schedule(), Events: ev, State: g.State()}
}

// stepTurning rotates the stick and settles the landing once it is flat.
func (g *Game) stepTurning(dt float64) Events {
	s := g.activeStick()
	s.Rotation += dt / g.cfg.Speeds.Turning
	if s.Rotation < 90 {
		return 0
	}
	s.Rotation = 90

	var ev Events
	hit := g.eval.Evaluate(g.platforms, *s)
	if hit.OK() {
		ev |= EventLanded
		if hit.Perfect {
			g.score += 2
			ev |= EventPerfect
		} else {
			g.score++
		}
		g.platforms = g.gen.Extend(g.platforms)
	} else {
		ev |= EventMissed
	}

	// A miss still walks; the fall starts at the stick's end
	g.phase = PhaseWalking
	return ev
}

func (g *Game) stepWalking(dt float64) {
	g.hero.X += dt / g.cfg.Speeds.Walking

	s := g.activeStick()
	hit := g.eval.Evaluate(g.platforms, *s)
	if hit.OK() {
		maxX := hit.Platform.Right() - g.cfg.Geometry.HeroDistanceFromEdge
		if g.hero.X >= maxX {
			g.hero.X = maxX
			g.phase = PhaseTransitioning
		}
		return
	}

	maxX := s.Reach() + g.cfg.Geometry.HeroWidth
	if g.hero.X >= maxX {
		g.hero.X = maxX
		g.phase = PhaseFalling
	}
}

func (g *Game) stepTransitioning(dt float64) {
	g.sceneOffset += dt / g.cfg.Speeds.Transitioning

	hit := g.eval.Evaluate(g.platforms, *g.activeStick())
	if !hit.OK() {
		violate("transition", "no platform under the stick")
	}

	if g.sceneOffset > hit.Platform.Right()-g.cfg.Geometry.PaddingX {
		g.sticks = append(g.sticks, Stick{X: hit.Platform.Right()})
		g.phase = PhaseWaiting
	}
}

func (g *Game) stepFalling(dt float64) Events {
	s := g.activeStick()
	if s.Rotation < 180 {
		s.Rotation = core.ClampF(s.Rotation+dt/g.cfg.Speeds.Turning, 0, 180)
	}

	g.hero.Y += dt / g.cfg.Speeds.Falling
	if g.hero.Y > g.cfg.Geometry.FallLimit {
		g.phase = PhaseEnded
		return EventGameOver
	}
	return 0
}

// schedule maps the current phase to the tick driver's next move.
func (g *Game) schedule() Schedule {
	switch g.phase {
	case PhaseWaiting:
		return ScheduleSuspend
	case PhaseEnded:
		return ScheduleStop
	case PhaseStretching, PhaseTurning, PhaseWalking, PhaseTransitioning, PhaseFalling:
		return ScheduleContinue
	default:
		violate("schedule", "unknown phase %d", g.phase)
		return ScheduleStop
	}
}

func (g *Game) activeStick() *Stick {
	return &g.sticks[len(g.sticks)-1]
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// State returns the HUD-facing state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseEnded,
	}
}
