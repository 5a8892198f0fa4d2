package gui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/stick-bridge/internal/render"
)

// imageCanvas draws render primitives onto an ebiten image.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) Size() (w, h float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c imageCanvas) PixelSize() float64 {
	return 1
}

func (c imageCanvas) FillRect(x, y, w, h float64, col color.RGBA) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col, false)
}

func (c imageCanvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col, true)
}

func (c imageCanvas) StrokeLine(x0, y0, x1, y1, width float64, col color.RGBA) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), col, true)
}

// FillGradient draws one band per pixel row.
func (c imageCanvas) FillGradient(x, y, w, h float64, top, bottom color.RGBA) {
	rows := int(math.Ceil(h))
	for i := 0; i < rows; i++ {
		t := (float64(i) + 0.5) / h
		c.FillRect(x, y+float64(i), w, 1, render.Lerp(top, bottom, t))
	}
}
