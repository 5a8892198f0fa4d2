package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stick-bridge/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Enter  - Grow the stick, press again to drop it
  Mouse        - Hold the left button to grow, release to drop
  R            - Restart
  Ctrl+S       - Save a screenshot to ~/.stick/screenshots
  Q/Ctrl+C     - Quit

Without --difficulty a picker is shown first.

Difficulty options:
  easy   - Wide pads, short gaps, generous center
  normal - The classic layout
  hard   - Narrow pads, long gaps, tiny center

Examples:
  stick play
  stick play --difficulty easy
  stick play --config ./my-stick.yaml --log /tmp/stick.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The alternate screen owns stdout, so logs only go to --log
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := runtimeConfig(width, height)

	base, source, err := loadConfig()
	if err != nil {
		return err
	}

	// Ask for a difficulty unless one was given
	if flagDifficulty == "" {
		preset, ok, selErr := tui.RunDifficultySelector(rt)
		if selErr != nil {
			return fmt.Errorf("difficulty menu: %w", selErr)
		}
		if !ok {
			return nil
		}
		flagDifficulty = string(preset)
	}

	cfg, err := applyDifficulty(base, flagDifficulty)
	if err != nil {
		return err
	}
	game := newGame(cfg, rt, source, logger)

	if err := tui.Run(game, rt, tui.Options{Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
