package stick

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/stick-bridge/internal/config"
)

func TestNewGameInitialState(t *testing.T) {
	g := New(config.DefaultStickConfig(), rand.New(rand.NewSource(1)))
	snap := g.Snapshot()

	if snap.Phase != PhaseWaiting {
		t.Errorf("expected waiting phase, got %v", snap.Phase)
	}
	if len(snap.Platforms) != 5 {
		t.Fatalf("expected 5 platforms, got %d", len(snap.Platforms))
	}
	if snap.Platforms[0] != (Platform{X: 50, W: 50}) {
		t.Errorf("expected seed platform {50 50}, got %+v", snap.Platforms[0])
	}
	if len(snap.Sticks) != 1 || snap.Sticks[0] != (Stick{X: 100}) {
		t.Errorf("expected one stick at x=100, got %+v", snap.Sticks)
	}
	if snap.Hero != (Hero{X: 90}) {
		t.Errorf("expected hero at x=90, got %+v", snap.Hero)
	}
	if snap.Score != 0 || snap.SceneOffset != 0 || snap.GameOver {
		t.Errorf("expected zeroed session, got score=%d offset=%v over=%v",
			snap.Score, snap.SceneOffset, snap.GameOver)
	}
}

func TestPressReleaseOnlyInTheirPhases(t *testing.T) {
	g := newTestGame()

	if g.Release() {
		t.Error("Release should be ignored while waiting")
	}
	if !g.Press() {
		t.Fatal("Press should start stretching")
	}
	if g.Press() {
		t.Error("second Press should be ignored while stretching")
	}
	if g.Phase() != PhaseStretching {
		t.Fatalf("expected stretching, got %v", g.Phase())
	}
	if !g.Release() {
		t.Fatal("Release should start turning")
	}
	if g.Release() {
		t.Error("second Release should be ignored while turning")
	}
	if g.Phase() != PhaseTurning {
		t.Errorf("expected turning, got %v", g.Phase())
	}
}

// playStretch presses, stretches for dt ms, releases, and lays the stick flat.
func playStretch(t *testing.T, g *Game, dt float64) TickResult {
	t.Helper()
	g.Press()
	g.Step(dt)
	g.Release()
	res := g.Step(360) // 90° at 4ms per degree
	if g.Phase() != PhaseWalking {
		t.Fatalf("expected walking after stick lands, got %v", g.Phase())
	}
	return res
}

func TestScoring(t *testing.T) {
	// Target platform is {140, 20}: mid 150, perfect window (145, 155).
	tests := []struct {
		name    string
		stretch float64 // ms at 4ms per px
		score   int
		events  Events
	}{
		{"perfect", 200, 2, EventLanded | EventPerfect},
		{"plain landing", 180, 1, EventLanded},
		{"gap", 80, 0, EventMissed},
		{"exact left edge", 160, 0, EventMissed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame()
			before := len(g.Snapshot().Platforms)

			res := playStretch(t, g, tt.stretch)

			if res.Events != tt.events {
				t.Errorf("events = %b, want %b", res.Events, tt.events)
			}
			if g.Score() != tt.score {
				t.Errorf("score = %d, want %d", g.Score(), tt.score)
			}
			if res.State.Score != tt.score {
				t.Errorf("result state score = %d, want %d", res.State.Score, tt.score)
			}

			wantPlatforms := before
			if tt.events.Has(EventLanded) {
				wantPlatforms++
			}
			if got := len(g.Snapshot().Platforms); got != wantPlatforms {
				t.Errorf("platforms = %d, want %d", got, wantPlatforms)
			}
		})
	}
}

func TestTurningClampsAtNinety(t *testing.T) {
	g := newTestGame()
	g.Press()
	g.Step(200)
	g.Release()

	g.Step(100)
	if rot := g.Snapshot().ActiveStick().Rotation; rot != 25 {
		t.Fatalf("expected rotation 25 after 100ms, got %v", rot)
	}
	if g.Score() != 0 {
		t.Fatal("score must not change before the stick lands")
	}

	g.Step(10_000)
	if rot := g.Snapshot().ActiveStick().Rotation; rot != 90 {
		t.Errorf("expected rotation clamped at 90, got %v", rot)
	}
}

func TestSuccessfulRoundReturnsToWaiting(t *testing.T) {
	g := newTestGame()
	playStretch(t, g, 200)

	// Hero walks from 90 to 160-10.
	res := g.Step(100)
	if g.Phase() != PhaseWalking || res.Schedule != ScheduleContinue {
		t.Fatalf("expected walking/continue mid-walk, got %v/%v", g.Phase(), res.Schedule)
	}
	g.Step(10_000)
	if g.Phase() != PhaseTransitioning {
		t.Fatalf("expected transitioning, got %v", g.Phase())
	}
	if x := g.Snapshot().Hero.X; x != 150 {
		t.Errorf("expected hero clamped to 150, got %v", x)
	}

	// Camera pans until offset exceeds 160-100.
	g.Step(120)
	if g.Phase() != PhaseTransitioning {
		t.Fatalf("offset 60 must not end the transition, got %v", g.Phase())
	}
	res = g.Step(2)
	if g.Phase() != PhaseWaiting {
		t.Fatalf("expected waiting after transition, got %v", g.Phase())
	}
	if res.Schedule != ScheduleSuspend {
		t.Errorf("expected suspend schedule, got %v", res.Schedule)
	}

	snap := g.Snapshot()
	if len(snap.Sticks) != 2 {
		t.Fatalf("expected 2 sticks, got %d", len(snap.Sticks))
	}
	if snap.ActiveStick() != (Stick{X: 160}) {
		t.Errorf("expected fresh stick at 160, got %+v", snap.ActiveStick())
	}
	if snap.Sticks[0].Length != 50 || snap.Sticks[0].Rotation != 90 {
		t.Errorf("previous stick should be kept as is, got %+v", snap.Sticks[0])
	}
	if snap.Score != 2 {
		t.Errorf("expected score 2, got %d", snap.Score)
	}
}

func TestMissFallsAndEnds(t *testing.T) {
	g := newTestGame()
	playStretch(t, g, 80) // length 20, tip at 120

	// Hero walks to stick end + hero width = 137.
	g.Step(10_000)
	if g.Phase() != PhaseFalling {
		t.Fatalf("expected falling, got %v", g.Phase())
	}
	if x := g.Snapshot().Hero.X; x != 137 {
		t.Errorf("expected hero clamped to 137, got %v", x)
	}

	res := g.Step(400) // y = 200, not yet past the limit
	if g.Phase() != PhaseFalling || res.Events.Has(EventGameOver) {
		t.Fatalf("y at the limit must not end the game, got %v", g.Phase())
	}
	if rot := g.Snapshot().ActiveStick().Rotation; rot != 180 {
		t.Errorf("expected stick hanging at 180, got %v", rot)
	}

	res = g.Step(2)
	if g.Phase() != PhaseEnded {
		t.Fatalf("expected ended, got %v", g.Phase())
	}
	if !res.Events.Has(EventGameOver) {
		t.Error("expected game over event")
	}
	if res.Schedule != ScheduleStop {
		t.Errorf("expected stop schedule, got %v", res.Schedule)
	}
	if !g.State().GameOver || !g.Snapshot().GameOver {
		t.Error("expected game over flag")
	}

	// Ended is terminal until Reset.
	if g.Press() {
		t.Error("Press should be ignored after game over")
	}
	if res := g.Advance(1e6); res.Schedule != ScheduleStop {
		t.Errorf("expected stop from Advance, got %v", res.Schedule)
	}
}

func TestFallingRotationIsIncremental(t *testing.T) {
	g := newTestGame()
	playStretch(t, g, 80)
	g.Step(10_000)

	g.Step(40)
	if rot := g.Snapshot().ActiveStick().Rotation; rot != 100 {
		t.Errorf("expected rotation 100 after 40ms of falling, got %v", rot)
	}
}

func TestAdvance(t *testing.T) {
	g := newTestGame()

	if res := g.Advance(0); res.Schedule != ScheduleSuspend {
		t.Fatalf("expected suspend while waiting, got %v", res.Schedule)
	}

	g.Press()
	res := g.Advance(5_000)
	if res.Schedule != ScheduleContinue {
		t.Fatalf("expected continue after press, got %v", res.Schedule)
	}
	if l := g.Snapshot().ActiveStick().Length; l != 0 {
		t.Fatalf("first tick after press must not stretch, got length %v", l)
	}

	g.Advance(5_200)
	if l := g.Snapshot().ActiveStick().Length; l != 50 {
		t.Errorf("expected length 50 after 200ms, got %v", l)
	}

	// A timestamp going backwards counts as no time.
	g.Advance(5_100)
	if l := g.Snapshot().ActiveStick().Length; l != 50 {
		t.Errorf("expected length unchanged, got %v", l)
	}
	g.Advance(5_140)
	if l := g.Snapshot().ActiveStick().Length; l != 60 {
		t.Errorf("expected length 60, got %v", l)
	}
}

func TestPressIgnoresIdleTime(t *testing.T) {
	g := newTestGame()
	g.Press()
	g.Advance(0)
	g.Advance(200)
	g.Release()
	g.Advance(560)
	for ts := 600.0; g.Phase() != PhaseWaiting; ts += 16 {
		g.Advance(ts)
		if ts > 100_000 {
			t.Fatalf("round did not finish, phase %v", g.Phase())
		}
	}

	// A long idle wait before the next press must not stretch the stick.
	g.Press()
	g.Advance(1_000_000)
	if l := g.Snapshot().ActiveStick().Length; l != 0 {
		t.Errorf("expected idle time ignored, got length %v", l)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	g := newTestGame()
	initial := g.Snapshot()

	playStretch(t, g, 200)
	g.Step(10_000)
	g.Reset()

	if got := g.Snapshot(); !reflect.DeepEqual(got, initial) {
		t.Errorf("Reset did not restore the initial state:\n got  %+v\n want %+v", got, initial)
	}
}

func TestResetMidAnimation(t *testing.T) {
	g := newTestGame()
	g.Press()
	g.Advance(0)
	g.Advance(100)
	g.Reset()

	if g.Phase() != PhaseWaiting {
		t.Fatalf("expected waiting after reset, got %v", g.Phase())
	}
	g.Press()
	if res := g.Advance(10_000); res.Schedule != ScheduleContinue {
		t.Fatalf("expected continue, got %v", res.Schedule)
	}
	if l := g.Snapshot().ActiveStick().Length; l != 0 {
		t.Errorf("stale timestamp leaked across reset, length %v", l)
	}
}

func TestDeterministicLayout(t *testing.T) {
	cfg := config.DefaultStickConfig()
	g1 := New(cfg, rand.New(rand.NewSource(42)))
	g2 := New(cfg, rand.New(rand.NewSource(42)))

	for round := 0; round < 3; round++ {
		for _, g := range []*Game{g1, g2} {
			g.Press()
			g.Step(200)
			g.Release()
			for i := 0; i < 200 && g.Phase().Animating(); i++ {
				g.Step(16)
			}
		}
		if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
			t.Fatalf("round %d: same seed and inputs produced different states", round)
		}
		g1.Reset()
		g2.Reset()
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame()
	snap := g.Snapshot()
	snap.Platforms[0].W = 999
	snap.Sticks[0].Length = 999

	fresh := g.Snapshot()
	if fresh.Platforms[0].W == 999 || fresh.Sticks[0].Length == 999 {
		t.Error("mutating a snapshot changed the game")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseWaiting, "waiting"},
		{PhaseStretching, "stretching"},
		{PhaseTurning, "turning"},
		{PhaseWalking, "walking"},
		{PhaseTransitioning, "transitioning"},
		{PhaseFalling, "falling"},
		{PhaseEnded, "ended"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestStepUnknownPhasePanics(t *testing.T) {
	g := newTestGame()
	g.phase = Phase(99)

	if err := expectPanic(func() { g.Step(16) }); err == nil {
		t.Error("expected ContractError for unknown phase")
	}
}
