package core

import (
	"image/color"
	"testing"
)

func TestFromRGBA(t *testing.T) {
	tests := []struct {
		name     string
		in       color.RGBA
		expected Color
	}{
		{"black", color.RGBA{0, 0, 0, 255}, "#000000"},
		{"white", color.RGBA{255, 255, 255, 255}, "#ffffff"},
		{"pure red", color.RGBA{255, 0, 0, 255}, "#ff0000"},
		{"sky blue", color.RGBA{0x87, 0xCE, 0xEB, 255}, "#87ceeb"},
		{"premultiplied half white", color.RGBA{128, 128, 128, 128}, "#ffffff"},
		{"transparent", color.RGBA{}, ColorDefault},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromRGBA(tc.in); got != tc.expected {
				t.Errorf("FromRGBA(%v) = %q, expected %q", tc.in, got, tc.expected)
			}
		})
	}
}
