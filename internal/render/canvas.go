// Package render paints stick game snapshots onto drawing surfaces.
//
// A Scene knows what the world looks like; a Canvas knows how to put
// shapes on a particular surface (terminal cells, a window image).
package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Canvas is a 2D drawing surface in logical pixels, origin top-left.
type Canvas interface {
	// Size returns the visible area in logical pixels.
	Size() (w, h float64)
	// PixelSize returns how many logical pixels one device pixel covers.
	PixelSize() float64

	FillRect(x, y, w, h float64, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA)
	// FillGradient fills a rectangle with a vertical gradient.
	FillGradient(x, y, w, h float64, top, bottom color.RGBA)
}

// fillEllipse fills an axis-aligned ellipse with one rectangle per device
// pixel row.
func fillEllipse(c Canvas, cx, cy, rx, ry float64, col color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	step := c.PixelSize()
	for y := cy - ry; y < cy+ry; y += step {
		mid := y + step/2 - cy
		if math.Abs(mid) > ry {
			continue
		}
		half := rx * math.Sqrt(1-(mid*mid)/(ry*ry))
		c.FillRect(cx-half, y, 2*half, step, col)
	}
}

// fillTriangle fills an isosceles triangle with its apex at (cx, top) and
// its base centered under it at bottom.
func fillTriangle(c Canvas, cx, top, bottom, base float64, col color.RGBA) {
	h := bottom - top
	if h <= 0 || base <= 0 {
		return
	}
	step := c.PixelSize()
	for y := top; y < bottom; y += step {
		half := base / 2 * (y + step/2 - top) / h
		c.FillRect(cx-half, y, 2*half, step, col)
	}
}

// Lerp mixes two opaque colors in RGB; t=0 gives a, t=1 gives b.
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return blend(a, b, t)
}

// over composites a premultiplied src onto an opaque dst.
func over(dst, src color.RGBA) color.RGBA {
	switch src.A {
	case 255:
		return src
	case 0:
		return dst
	}
	return blend(dst, src, float64(src.A)/255)
}

// blend mixes the straight (unpremultiplied) colors of a and b and
// returns an opaque result.
func blend(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}
