package stick

import "github.com/vovakirdan/stick-bridge/internal/core"

// Hit is the result of laying the active stick flat.
type Hit struct {
	Index    int // Index into the platform sequence, -1 on a miss
	Platform Platform
	Perfect  bool
}

// OK reports whether the stick reached a platform.
func (h Hit) OK() bool {
	return h.Index >= 0
}

// Miss is the Hit returned when the stick tip lands in a gap.
var Miss = Hit{Index: -1}

// Evaluator decides which platform a horizontal stick reaches.
type Evaluator struct {
	PerfectAreaSize float64
}

// Evaluate returns the first platform whose open span contains the stick
// tip, and whether the tip lies in the perfect window around its midpoint.
// A tip exactly on a platform edge or window edge does not count.
// The stick must be lying flat (rotation exactly 90).
func (e Evaluator) Evaluate(platforms []Platform, s Stick) Hit {
	if s.Rotation != 90 {
		violate("evaluate", "stick is at %v°, want 90°", s.Rotation)
	}

	reach := s.Reach()
	for i, p := range platforms {
		if !p.Span().ContainsOpen(reach) {
			continue
		}
		perfect := core.SpanAround(p.Mid(), e.PerfectAreaSize).ContainsOpen(reach)
		return Hit{Index: i, Platform: p, Perfect: perfect}
	}
	return Miss
}
