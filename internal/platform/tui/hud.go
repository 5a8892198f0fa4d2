package tui

import (
	"fmt"

	"github.com/vovakirdan/stick-bridge/internal/core"
)

// drawHUD overlays score, the perfect banner and the game-over box.
func drawHUD(dst *core.Screen, state core.GameState, pulse *core.Pulse) {
	score := fmt.Sprintf(" %d ", state.Score)
	dst.DrawTextColor(dst.Width()-len(score)-1, 1, score, core.ColorBrightWhite)

	if pulse.Active() {
		dst.DrawTextCentered(3, "DOUBLE SCORE", pulseColor(pulse.Alpha()))
	}

	if state.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", state.Score))
	}
}

// pulseColor fades the perfect banner as the pulse decays.
func pulseColor(alpha float32) core.Color {
	switch {
	case alpha > 0.66:
		return core.ColorBrightYellow
	case alpha > 0.33:
		return core.ColorYellow
	default:
		return core.ColorOrange
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, core.Cell{Rune: ' ', Fg: core.ColorBrightWhite, Bg: core.ColorBlack})
	dst.DrawBox(box)

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawTextColor(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorBrightWhite)
}
