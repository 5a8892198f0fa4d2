package core

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a lipgloss color value for a screen cell: an ANSI palette
// index ("0".."255") or a true color ("#rrggbb"). The renderer downsamples
// true colors to whatever the terminal supports.
// ColorDefault leaves the terminal's own color in place.
type Color string

// Predefined colors for HUD elements.
const (
	ColorDefault      Color = ""
	ColorBlack        Color = "0"
	ColorRed          Color = "1"
	ColorGreen        Color = "2"
	ColorYellow       Color = "3"
	ColorWhite        Color = "7"
	ColorGray         Color = "245"
	ColorBrightRed    Color = "9"
	ColorBrightYellow Color = "11"
	ColorBrightWhite  Color = "15"
	ColorOrange       Color = "208"
)

// FromRGBA returns the true color of c as a hex cell color.
// A fully transparent value has no color and maps to ColorDefault.
func FromRGBA(c color.RGBA) Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return ColorDefault
	}
	return Color(cf.Hex())
}
