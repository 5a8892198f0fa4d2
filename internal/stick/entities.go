// Package stick implements the stick-bridge game: a hero crosses a row of
// platforms by growing a stick, letting it fall flat, and walking across.
//
// The package is pure game logic. Time arrives from the caller as display
// timestamps, input as Press/Release/Reset calls, and the result is read
// back through Snapshot and TickResult.
package stick

import (
	"fmt"

	"github.com/vovakirdan/stick-bridge/internal/core"
)

// Platform is a landing pad in world coordinates.
// Platforms are never mutated after creation.
type Platform struct {
	X float64 // Left edge
	W float64 // Width
}

// Right returns the x-coordinate of the right edge.
func (p Platform) Right() float64 {
	return p.X + p.W
}

// Mid returns the horizontal midpoint.
func (p Platform) Mid() float64 {
	return p.X + p.W/2
}

// Span returns the horizontal extent of the platform.
func (p Platform) Span() core.Span {
	return core.Span{Lo: p.X, Hi: p.Right()}
}

// Stick is anchored at X on the platform surface.
// Rotation is in degrees: 0 points straight up, 90 lies flat toward the
// next platform, 180 hangs straight down.
type Stick struct {
	X        float64
	Length   float64
	Rotation float64
}

// Reach returns the x-coordinate the stick tip covers when lying flat.
func (s Stick) Reach() float64 {
	return s.X + s.Length
}

// Hero is the walking character. X is the hero's leading edge;
// Y grows downward from the platform surface while falling.
type Hero struct {
	X float64
	Y float64
}

// ContractError reports a violated precondition. It is raised with panic:
// it means the caller broke an invariant, not that the game hit a
// recoverable condition.
type ContractError struct {
	Op  string
	Msg string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("stick: %s: %s", e.Op, e.Msg)
}

func violate(op, format string, args ...any) {
	panic(&ContractError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
