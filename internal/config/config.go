// Package config provides YAML/TOML configuration loading and difficulty
// presets for the stick game.
package config

import (
	"errors"
	"fmt"
)

// StickConfig contains all tunable constants of the stick game.
type StickConfig struct {
	Geometry  StickGeometry  `yaml:"geometry" toml:"geometry"`
	Speeds    StickSpeeds    `yaml:"speeds" toml:"speeds"`
	Generator StickGenerator `yaml:"generator" toml:"generator"`
	HUD       StickHUD       `yaml:"hud" toml:"hud"`
}

// StickGeometry defines world dimensions in pixels.
// The world is CanvasWidth x CanvasHeight; platforms occupy the bottom
// PlatformHeight band.
type StickGeometry struct {
	CanvasWidth          float64 `yaml:"canvas_width" toml:"canvas_width"`
	CanvasHeight         float64 `yaml:"canvas_height" toml:"canvas_height"`
	PlatformHeight       float64 `yaml:"platform_height" toml:"platform_height"`
	HeroDistanceFromEdge float64 `yaml:"hero_distance_from_edge" toml:"hero_distance_from_edge"`
	PaddingX             float64 `yaml:"padding_x" toml:"padding_x"`
	PerfectAreaSize      float64 `yaml:"perfect_area_size" toml:"perfect_area_size"`
	HeroWidth            float64 `yaml:"hero_width" toml:"hero_width"`
	HeroHeight           float64 `yaml:"hero_height" toml:"hero_height"`
	FallLimit            float64 `yaml:"fall_limit" toml:"fall_limit"` // hero.y beyond which the game ends
	SeedPlatformX        float64 `yaml:"seed_platform_x" toml:"seed_platform_x"`
	SeedPlatformWidth    float64 `yaml:"seed_platform_width" toml:"seed_platform_width"`
	SeedPlatforms        int     `yaml:"seed_platforms" toml:"seed_platforms"` // platforms generated after the seed one
}

// StickSpeeds are divisors applied to elapsed milliseconds:
// a value of 4 means one pixel (or degree) every 4ms.
type StickSpeeds struct {
	Stretching    float64 `yaml:"stretching" toml:"stretching"`
	Turning       float64 `yaml:"turning" toml:"turning"`
	Walking       float64 `yaml:"walking" toml:"walking"`
	Transitioning float64 `yaml:"transitioning" toml:"transitioning"`
	Falling       float64 `yaml:"falling" toml:"falling"`
}

// StickGenerator bounds the random platform placement.
// Gaps are drawn from [MinGap, MaxGap) and widths from [MinWidth, MaxWidth).
type StickGenerator struct {
	MinGap   float64 `yaml:"min_gap" toml:"min_gap"`
	MaxGap   float64 `yaml:"max_gap" toml:"max_gap"`
	MinWidth float64 `yaml:"min_width" toml:"min_width"`
	MaxWidth float64 `yaml:"max_width" toml:"max_width"`
}

// StickHUD defines heads-up display timings.
type StickHUD struct {
	PerfectPulseMS int `yaml:"perfect_pulse_ms" toml:"perfect_pulse_ms"`
}

// Validate checks that the configuration describes a playable game.
func (c StickConfig) Validate() error {
	var errs []error

	g := c.Geometry
	if g.CanvasWidth <= 0 || g.CanvasHeight <= 0 {
		errs = append(errs, fmt.Errorf("canvas size must be positive, got %vx%v", g.CanvasWidth, g.CanvasHeight))
	}
	if g.PlatformHeight <= 0 || g.PlatformHeight > g.CanvasHeight {
		errs = append(errs, fmt.Errorf("platform_height %v must be within (0, canvas_height]", g.PlatformHeight))
	}
	if g.SeedPlatformWidth <= 0 {
		errs = append(errs, fmt.Errorf("seed_platform_width must be positive, got %v", g.SeedPlatformWidth))
	}
	if g.SeedPlatforms < 1 {
		errs = append(errs, fmt.Errorf("seed_platforms must be at least 1, got %d", g.SeedPlatforms))
	}
	if g.PerfectAreaSize < 0 {
		errs = append(errs, fmt.Errorf("perfect_area_size must not be negative, got %v", g.PerfectAreaSize))
	}
	if g.FallLimit <= 0 {
		errs = append(errs, fmt.Errorf("fall_limit must be positive, got %v", g.FallLimit))
	}

	s := c.Speeds
	for name, v := range map[string]float64{
		"stretching":    s.Stretching,
		"turning":       s.Turning,
		"walking":       s.Walking,
		"transitioning": s.Transitioning,
		"falling":       s.Falling,
	} {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("speeds.%s must be positive, got %v", name, v))
		}
	}

	gen := c.Generator
	if gen.MinGap < 0 || gen.MaxGap <= gen.MinGap {
		errs = append(errs, fmt.Errorf("gap range [%v, %v) is empty or negative", gen.MinGap, gen.MaxGap))
	}
	if gen.MinWidth <= 0 || gen.MaxWidth <= gen.MinWidth {
		errs = append(errs, fmt.Errorf("width range [%v, %v) is empty or non-positive", gen.MinWidth, gen.MaxWidth))
	}

	if c.HUD.PerfectPulseMS < 0 {
		errs = append(errs, fmt.Errorf("perfect_pulse_ms must not be negative, got %d", c.HUD.PerfectPulseMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid stick config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value to a preset.
// An empty string means "keep the config as loaded".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyStickPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyStickPreset(cfg *StickConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyNormal:
	case DifficultyEasy:
		cfg.Generator.MinWidth = 40
		cfg.Generator.MaxWidth = 110
		cfg.Generator.MaxGap = 150
		cfg.Geometry.PerfectAreaSize = 14
	case DifficultyHard:
		cfg.Generator.MinWidth = 12
		cfg.Generator.MaxWidth = 60
		cfg.Generator.MinGap = 60
		cfg.Generator.MaxGap = 220
		cfg.Geometry.PerfectAreaSize = 6
	}
}
