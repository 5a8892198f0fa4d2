package stick

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/stick-bridge/internal/config"
)

func TestGeneratorBounds(t *testing.T) {
	cfg := config.DefaultStickConfig().Generator
	gen := NewGenerator(rand.New(rand.NewSource(7)), cfg)

	platforms := []Platform{{X: 50, W: 50}}
	for i := 0; i < 1000; i++ {
		platforms = gen.Extend(platforms)
	}

	for i := 1; i < len(platforms); i++ {
		prev, p := platforms[i-1], platforms[i]
		gap := p.X - prev.Right()

		if gap < cfg.MinGap || gap >= cfg.MaxGap {
			t.Fatalf("platform %d: gap %v outside [%v, %v)", i, gap, cfg.MinGap, cfg.MaxGap)
		}
		if p.W < cfg.MinWidth || p.W >= cfg.MaxWidth {
			t.Fatalf("platform %d: width %v outside [%v, %v)", i, p.W, cfg.MinWidth, cfg.MaxWidth)
		}
		if gap != math.Floor(gap) || p.W != math.Floor(p.W) {
			t.Fatalf("platform %d: expected whole pixels, got gap=%v width=%v", i, gap, p.W)
		}
		if p.X <= prev.X {
			t.Fatalf("platform %d: x %v not greater than previous %v", i, p.X, prev.X)
		}
	}
}

func TestGeneratorDrawOrder(t *testing.T) {
	cfg := config.DefaultStickConfig().Generator

	tests := []struct {
		name  string
		draws []float64
		want  Platform
	}{
		{"minimum", []float64{0, 0}, Platform{X: 100 + 40, W: 20}},
		{"maximum", []float64{0.99999, 0.99999}, Platform{X: 100 + 199, W: 99}},
		{"gap drawn first", []float64{0.5, 0}, Platform{X: 100 + 40 + 80, W: 20}},
		{"width drawn second", []float64{0, 0.5}, Platform{X: 100 + 40, W: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(&seqSource{vals: tt.draws}, cfg)
			got := gen.Next(Platform{X: 50, W: 50})
			if got != tt.want {
				t.Errorf("Next() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGeneratorExtendEmpty(t *testing.T) {
	gen := NewGenerator(constSource(0), config.DefaultStickConfig().Generator)

	err := expectPanic(func() { gen.Extend(nil) })
	if err == nil {
		t.Fatal("expected ContractError panic when extending an empty sequence")
	}
	if err.Op != "generate" {
		t.Errorf("expected op generate, got %q", err.Op)
	}
}

func TestGeneratorExtendKeepsPrefix(t *testing.T) {
	gen := NewGenerator(constSource(0.25), config.DefaultStickConfig().Generator)

	platforms := []Platform{{X: 50, W: 50}, {X: 150, W: 30}}
	out := gen.Extend(platforms)

	if len(out) != 3 {
		t.Fatalf("expected 3 platforms, got %d", len(out))
	}
	for i := range platforms {
		if out[i] != platforms[i] {
			t.Errorf("platform %d changed: %+v -> %+v", i, platforms[i], out[i])
		}
	}
}
