package stick

import (
	"math"

	"github.com/vovakirdan/stick-bridge/internal/config"
)

// Source is a uniform random source on [0, 1). *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Generator places new platforms after the last one.
type Generator struct {
	src Source
	cfg config.StickGenerator
}

// NewGenerator creates a generator drawing from src within the cfg bounds.
func NewGenerator(src Source, cfg config.StickGenerator) *Generator {
	return &Generator{src: src, cfg: cfg}
}

// Next returns a platform following last. The gap is drawn first, then the
// width, both floored to whole pixels:
// gap in [MinGap, MaxGap), width in [MinWidth, MaxWidth).
func (g *Generator) Next(last Platform) Platform {
	gap := g.cfg.MinGap + math.Floor(g.src.Float64()*(g.cfg.MaxGap-g.cfg.MinGap))
	w := g.cfg.MinWidth + math.Floor(g.src.Float64()*(g.cfg.MaxWidth-g.cfg.MinWidth))
	return Platform{X: last.Right() + gap, W: w}
}

// Extend appends one generated platform to a non-empty sequence.
func (g *Generator) Extend(platforms []Platform) []Platform {
	if len(platforms) == 0 {
		violate("generate", "platform sequence is empty")
	}
	return append(platforms, g.Next(platforms[len(platforms)-1]))
}
