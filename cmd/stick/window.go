package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stick-bridge/internal/platform/gui"
)

var (
	flagWindowW int
	flagWindowH int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a resizable desktop window.

Controls:
  Mouse/Space  - Hold to grow the stick, release to drop it
  R            - Restart
  Q/Esc        - Quit

Examples:
  stick window
  stick window --width 1024 --height 640 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowW, "width", 800, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagWindowH, "height", 600, "Window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	cfg, err = applyDifficulty(cfg, flagDifficulty)
	if err != nil {
		return err
	}

	rt := runtimeConfig(flagWindowW, flagWindowH)
	game := newGame(cfg, rt, source, logger)
	return gui.Run(game, rt, gui.Options{Logger: logger})
}
