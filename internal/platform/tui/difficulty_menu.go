package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stick-bridge/internal/config"
	"github.com/vovakirdan/stick-bridge/internal/core"
)

// difficultyOption is one row of the difficulty picker.
type difficultyOption struct {
	Preset      config.DifficultyPreset
	Title       string
	Description string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy", "Wide pads, short gaps, generous center"},
	{config.DifficultyNormal, "Normal", "The classic pond"},
	{config.DifficultyHard, "Hard", "Narrow pads, long gaps, tiny center"},
}

// menuKeyMap defines the key bindings for menus.
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
	}
}

// DifficultyModel lets users choose a difficulty before the game starts.
type DifficultyModel struct {
	cursor   int
	width    int
	height   int
	keys     menuKeyMap
	theme    Theme
	choosing bool
	quitting bool
}

// NewDifficultyModel creates a difficulty picker with Normal highlighted.
func NewDifficultyModel(width, height int) DifficultyModel {
	return DifficultyModel{
		cursor:   1,
		width:    width,
		height:   height,
		keys:     defaultMenuKeyMap(),
		theme:    DefaultTheme(),
		choosing: true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.choosing = false
		return m, tea.Quit
	}
	return m, nil
}

// View renders the difficulty list.
func (m DifficultyModel) View() string {
	if m.quitting || !m.choosing {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("S T I C K   B R I D G E"), 23, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", 18, m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		line := fmt.Sprintf("%s%-7s", cursor, opt.Title)
		b.WriteString(centerText(style.Render(line), len(line), m.width))
		b.WriteString("\n")
	}

	desc := difficultyOptions[m.cursor].Description
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render(desc), len(desc), m.width))
	b.WriteString("\n\n")

	controls := "Enter: Select  |  Q: Quit"
	b.WriteString(centerText(m.theme.MenuControls.Render(controls), len(controls), m.width))

	return b.String()
}

// Selected returns the chosen preset, or false if still choosing or quit.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if m.choosing || m.quitting {
		return "", false
	}
	return difficultyOptions[m.cursor].Preset, true
}

// centerText pads styled text so its visible width is centered.
func centerText(text string, visible, width int) string {
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}

// RunDifficultySelector shows the difficulty picker and returns the choice.
// ok is false when the user quit instead of choosing.
func RunDifficultySelector(cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	model := NewDifficultyModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isModel := finalModel.(DifficultyModel)
	if !isModel {
		return "", false, nil
	}

	preset, ok = m.Selected()
	return preset, ok, nil
}
