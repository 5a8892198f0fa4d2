// Package gui provides a desktop window frontend for the stick game,
// built on ebiten. It shares the scene painter with the terminal frontend.
package gui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/stick-bridge/internal/core"
	"github.com/vovakirdan/stick-bridge/internal/render"
	"github.com/vovakirdan/stick-bridge/internal/stick"
)

// DebugPrint glyph size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// Options configures the window frontend.
type Options struct {
	Logger *log.Logger // Defaults to a discarding logger
	Title  string
}

// Window implements ebiten.Game for one stick game session.
type Window struct {
	game   *stick.Game
	scene  *render.Scene
	pulse  *core.Pulse
	logger *log.Logger

	frames    int64 // Ticks since start; the game clock
	width     int
	height    int
	gameState core.GameState
}

// NewWindow creates a window frontend for game.
func NewWindow(game *stick.Game, opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := game.Config()
	return &Window{
		game:      game,
		scene:     render.NewScene(cfg.Geometry, render.DefaultPalette),
		pulse:     core.NewPulse(time.Duration(cfg.HUD.PerfectPulseMS) * time.Millisecond),
		logger:    logger,
		gameState: game.State(),
	}
}

// Update polls input and advances the game by one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.game.Reset()
		w.pulse.Stop()
		w.logger.Info("game reset")
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if w.game.Press() {
			w.logger.Debug("stick pressed")
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		if w.game.Release() {
			w.logger.Debug("stick released")
		}
	}

	tps := ebiten.TPS()
	w.frames++
	w.pulse.Update(time.Second / time.Duration(tps))

	result := w.game.Advance(float64(w.frames) * 1000 / float64(tps))
	w.gameState = result.State

	if result.Events.Has(stick.EventPerfect) {
		w.pulse.Trigger()
		w.logger.Info("perfect landing", "score", w.gameState.Score)
	} else if result.Events.Has(stick.EventLanded) {
		w.logger.Info("landed", "score", w.gameState.Score)
	}
	if result.Events.Has(stick.EventGameOver) {
		w.logger.Info("game over", "score", w.gameState.Score)
	}
	return nil
}

// Draw paints the scene and HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	w.scene.Draw(imageCanvas{dst: screen}, w.game.Snapshot())

	score := fmt.Sprintf("Score: %d", w.gameState.Score)
	ebitenutil.DebugPrintAt(screen, score, w.width-len(score)*glyphW-16, 12)

	if w.pulse.Active() {
		drawCentered(screen, "DOUBLE SCORE", w.width, 60)
	}
	if w.gameState.GameOver {
		drawCentered(screen, "GAME OVER", w.width, w.height/2-glyphH)
		drawCentered(screen, "Press R to restart", w.width, w.height/2+4)
	}
}

// Layout follows the window size so resizing reveals more of the scene.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.width, w.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func drawCentered(screen *ebiten.Image, text string, width, y int) {
	ebitenutil.DebugPrintAt(screen, text, (width-len(text)*glyphW)/2, y)
}

// Run opens a window and plays game until it is closed.
func Run(game *stick.Game, cfg core.RuntimeConfig, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Stick Bridge"
	}
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	w := NewWindow(game, opts)
	w.logger.Info("window opened", "width", cfg.ScreenW, "height", cfg.ScreenH)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
