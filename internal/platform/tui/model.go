package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stick-bridge/internal/core"
	"github.com/vovakirdan/stick-bridge/internal/render"
	"github.com/vovakirdan/stick-bridge/internal/stick"
)

// keyRepeatGap is the longest gap between two stick keys that still counts
// as terminal auto-repeat of a held key.
const keyRepeatGap = 100 * time.Millisecond

// Options configures the terminal frontend.
type Options struct {
	Logger *log.Logger // Defaults to a discarding logger
}

// Model is the Bubble Tea model for one stick game session.
type Model struct {
	game   *stick.Game
	scene  *render.Scene
	screen *core.Screen
	canvas *render.TerminalCanvas
	styles styleCache
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	pulse  *core.Pulse
	logger *log.Logger

	now       func() time.Time
	lastStick time.Time // Wall time of the previous stick key
	epoch     time.Time // Origin of the game clock
	lastFrame time.Time // Wall time of the previous tick, zero when idle
	ticking   bool      // Whether a tick command is in flight
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *stick.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// The bottom row holds the help line
	screen := core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1))
	geo := game.Config().Geometry
	pulse := time.Duration(game.Config().HUD.PerfectPulseMS) * time.Millisecond

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		scene:     render.NewScene(geo, render.DefaultPalette),
		screen:    screen,
		canvas:    render.NewTerminalCanvas(screen, screen.Height(), geo.CanvasHeight),
		styles:    make(styleCache),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		pulse:     core.NewPulse(pulse),
		logger:    logger,
		now:       time.Now,
		epoch:     time.Now(),
		gameState: game.State(),
	}
}

// Init initializes the model. The game waits for the first press, so no
// tick loop is started yet.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "phase", m.game.Phase())
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionScreenshot:
		m.saveScreenshot()
		return m, nil

	case ActionReset:
		m.reset()
		return m, nil

	case ActionStick:
		// A held key auto-repeats; only the first key of a burst counts
		now := m.now()
		repeat := !m.lastStick.IsZero() && now.Sub(m.lastStick) < keyRepeatGap
		m.lastStick = now
		if repeat {
			return m, nil
		}

		// No key-up events in a terminal: the same key toggles
		if m.game.Phase() == stick.PhaseStretching {
			m.release()
			return m, nil
		}
		return m.press()

	case ActionNone:
	}

	return m, nil
}

// handleMouse maps the left button to press and any release to release.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return m.press()
		}
	case tea.MouseActionRelease:
		m.release()
	case tea.MouseActionMotion:
	}
	return m, nil
}

// handleResize only changes the viewport; the session is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.canvas.Resize(m.screen.Height())
	m.help.Width = msg.Width
	return m, nil
}

// press starts the stick and restarts the tick loop if it was idle.
func (m Model) press() (tea.Model, tea.Cmd) {
	if !m.game.Press() {
		return m, nil
	}
	m.logger.Debug("stick pressed")
	return m, m.startTicking()
}

func (m *Model) release() {
	if m.game.Release() {
		m.logger.Debug("stick released")
	}
}

func (m *Model) reset() {
	m.game.Reset()
	m.pulse.Stop()
	m.gameState = m.game.State()
	m.logger.Info("game reset")
}

func (m *Model) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tickCmd(m.config.TickRate)
}

// handleTick advances the game clock and decides whether to keep ticking.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastFrame.IsZero() {
		m.pulse.Update(now.Sub(m.lastFrame))
	}
	m.lastFrame = now

	ts := float64(now.Sub(m.epoch)) / float64(time.Millisecond)
	result := m.game.Advance(ts)
	m.gameState = result.State
	m.logEvents(result.Events)

	if result.Schedule == stick.ScheduleContinue || m.pulse.Active() {
		return m, tickCmd(m.config.TickRate)
	}

	m.ticking = false
	m.lastFrame = time.Time{}
	return m, nil
}

func (m *Model) logEvents(ev stick.Events) {
	if ev.Has(stick.EventPerfect) {
		m.pulse.Trigger()
		m.logger.Info("perfect landing", "score", m.gameState.Score)
	} else if ev.Has(stick.EventLanded) {
		m.logger.Info("landed", "score", m.gameState.Score)
	}
	if ev.Has(stick.EventMissed) {
		m.logger.Debug("stick missed")
	}
	if ev.Has(stick.EventGameOver) {
		m.logger.Info("game over", "score", m.gameState.Score)
	}
}

// saveScreenshot saves the current frame with its colors to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".stick", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("stick_%s.ans", timestamp))
	if err := os.WriteFile(path, []byte(RenderScreen(m.screen, m.styles)+"\n"), 0o600); err != nil {
		m.logger.Error("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw paints the current snapshot and HUD onto the screen buffer.
func (m *Model) draw() {
	m.scene.Draw(m.canvas, m.game.Snapshot())
	m.canvas.Flush()
	drawHUD(m.screen, m.gameState, m.pulse)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game *stick.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse press and release drive the stick
	)

	_, err := p.Run()
	return err
}
