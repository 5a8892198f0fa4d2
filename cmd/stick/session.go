package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stick-bridge/internal/config"
	"github.com/vovakirdan/stick-bridge/internal/core"
	"github.com/vovakirdan/stick-bridge/internal/stick"
)

// loadConfig resolves the config file and validates it as loaded, so a
// broken file is reported before any menu is shown.
func loadConfig() (config.StickConfig, string, error) {
	cfg, source, err := config.LoadStick(flagConfig)
	if err != nil {
		return config.StickConfig{}, "", err
	}
	if err := cfg.Validate(); err != nil {
		return config.StickConfig{}, "", fmt.Errorf("%s: %w", source, err)
	}
	return cfg, source, nil
}

// applyDifficulty applies the named preset to cfg and validates the result.
func applyDifficulty(cfg config.StickConfig, name string) (config.StickConfig, error) {
	preset, err := config.ParseDifficulty(name)
	if err != nil {
		return config.StickConfig{}, err
	}
	config.ApplyStickPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.StickConfig{}, fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, nil
}

// runtimeConfig collects the adapter settings shared by every frontend.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newGame builds a game seeded from rt.Seed and logs how it was set up.
// A zero seed picks one from the clock.
func newGame(cfg config.StickConfig, rt core.RuntimeConfig, source string, logger *log.Logger) *stick.Game {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty, "seed", seed)
	return stick.New(cfg, rand.New(rand.NewSource(seed)))
}

// openLogger returns a logger writing to --log if set, otherwise to
// fallback. The returned close function must be called on exit.
func openLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	w := fallback
	closeFn := func() error { return nil }

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "stick",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
