package config

import (
	_ "embed"
)

//go:embed defaults/stick.yaml
var defaultStickYAML []byte

// DefaultStickConfig returns the built-in stick game configuration.
func DefaultStickConfig() StickConfig {
	return StickConfig{
		Geometry: StickGeometry{
			CanvasWidth:          375,
			CanvasHeight:         375,
			PlatformHeight:       100,
			HeroDistanceFromEdge: 10,
			PaddingX:             100,
			PerfectAreaSize:      10,
			HeroWidth:            17,
			HeroHeight:           30,
			FallLimit:            200, // platform band + 100px overshoot
			SeedPlatformX:        50,
			SeedPlatformWidth:    50,
			SeedPlatforms:        4,
		},
		Speeds: StickSpeeds{
			Stretching:    4,
			Turning:       4,
			Walking:       4,
			Transitioning: 2,
			Falling:       2,
		},
		Generator: StickGenerator{
			MinGap:   40,
			MaxGap:   200,
			MinWidth: 20,
			MaxWidth: 100,
		},
		HUD: StickHUD{
			PerfectPulseMS: 1000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultStickYAML
}
