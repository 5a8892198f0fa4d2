package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles used outside the pixel scene.
type Theme struct {
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuControls    lipgloss.Style
}

// DefaultTheme returns the pond-colored menu theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true), // Sky blue
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true), // Gold
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("71")),             // Lily green
		MenuControls:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
