package render

import (
	"image/color"
	"math"

	"github.com/vovakirdan/stick-bridge/internal/core"
)

// halfBlock draws the top half of a cell in Fg and the bottom half in Bg,
// giving two square-ish pixels per character cell.
const halfBlock = '▀'

// TerminalCanvas rasterises shapes into a pixel buffer of two pixels per
// cell and flushes it onto a core.Screen.
// The scale is chosen so that worldHeight logical pixels fill the rows.
type TerminalCanvas struct {
	screen      *core.Screen
	worldHeight float64

	cols, rows int
	pixW, pixH int
	scale      float64
	pixels     []color.RGBA

	palette map[color.RGBA]core.Color
}

// NewTerminalCanvas creates a canvas over the top rows of screen.
func NewTerminalCanvas(screen *core.Screen, rows int, worldHeight float64) *TerminalCanvas {
	c := &TerminalCanvas{
		screen:      screen,
		worldHeight: worldHeight,
		palette:     make(map[color.RGBA]core.Color),
	}
	c.Resize(rows)
	return c
}

// Resize adapts the pixel buffer to the screen width and the given rows.
func (c *TerminalCanvas) Resize(rows int) {
	c.cols = c.screen.Width()
	c.rows = core.Clamp(rows, 0, c.screen.Height())
	c.pixW = c.cols
	c.pixH = c.rows * 2

	c.scale = 1
	if c.pixH > 0 && c.worldHeight > 0 {
		c.scale = c.worldHeight / float64(c.pixH)
	}

	if n := c.pixW * c.pixH; cap(c.pixels) >= n {
		c.pixels = c.pixels[:n]
	} else {
		c.pixels = make([]color.RGBA, n)
	}
	c.Clear(color.RGBA{A: 255})
}

// Clear fills every pixel with col.
func (c *TerminalCanvas) Clear(col color.RGBA) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// Size implements Canvas.
func (c *TerminalCanvas) Size() (w, h float64) {
	return float64(c.pixW) * c.scale, float64(c.pixH) * c.scale
}

// PixelSize implements Canvas.
func (c *TerminalCanvas) PixelSize() float64 {
	return c.scale
}

// Pixel returns the buffered color at device pixel (x, y).
func (c *TerminalCanvas) Pixel(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.pixW || y >= c.pixH {
		return color.RGBA{}
	}
	return c.pixels[y*c.pixW+x]
}

func (c *TerminalCanvas) plot(x, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.pixW || y >= c.pixH {
		return
	}
	i := y*c.pixW + x
	c.pixels[i] = over(c.pixels[i], col)
}

// span converts a logical interval to device pixels, at least one wide.
func (c *TerminalCanvas) span(lo, size float64) (int, int) {
	a := int(math.Round(lo / c.scale))
	b := int(math.Round((lo + size) / c.scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// FillRect implements Canvas.
func (c *TerminalCanvas) FillRect(x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1 := c.span(x, w)
	y0, y1 := c.span(y, h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.plot(px, py, col)
		}
	}
}

// FillCircle implements Canvas. A circle smaller than a pixel still
// lights the pixel under its center.
func (c *TerminalCanvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	s := c.scale
	painted := false
	for py := int(math.Floor((cy - r) / s)); py <= int(math.Ceil((cy+r)/s)); py++ {
		dy := (float64(py)+0.5)*s - cy
		for px := int(math.Floor((cx - r) / s)); px <= int(math.Ceil((cx+r)/s)); px++ {
			dx := (float64(px)+0.5)*s - cx
			if dx*dx+dy*dy <= r*r {
				c.plot(px, py, col)
				painted = true
			}
		}
	}
	if !painted {
		c.plot(int(math.Floor(cx/s)), int(math.Floor(cy/s)), col)
	}
}

// StrokeLine implements Canvas. Each pixel is painted at most once per
// stroke so translucent lines blend evenly.
func (c *TerminalCanvas) StrokeLine(x0, y0, x1, y1, width float64, col color.RGBA) {
	s := c.scale
	thick := core.Max(1, int(math.Round(width/s)))
	steps := int(math.Ceil(math.Hypot(x1-x0, y1-y0)/s*2)) + 1

	seen := make(map[[2]int]struct{})
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(math.Floor((x0 + (x1-x0)*t) / s))
		py := int(math.Floor((y0 + (y1-y0)*t) / s))
		for dy := 0; dy < thick; dy++ {
			for dx := 0; dx < thick; dx++ {
				x, y := px+dx-thick/2, py+dy-thick/2
				key := [2]int{x, y}
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				c.plot(x, y, col)
			}
		}
	}
}

// FillGradient implements Canvas.
func (c *TerminalCanvas) FillGradient(x, y, w, h float64, top, bottom color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1 := c.span(x, w)
	y0, y1 := c.span(y, h)
	for py := y0; py < y1; py++ {
		t := ((float64(py)+0.5)*c.scale - y) / h
		col := Lerp(top, bottom, t)
		for px := x0; px < x1; px++ {
			c.plot(px, py, col)
		}
	}
}

// Flush writes the pixel buffer onto the screen as half-block cells.
func (c *TerminalCanvas) Flush() {
	for cy := 0; cy < c.rows; cy++ {
		for cx := 0; cx < c.cols; cx++ {
			c.screen.SetCell(cx, cy, core.Cell{
				Rune: halfBlock,
				Fg:   c.color(c.pixels[(2*cy)*c.pixW+cx]),
				Bg:   c.color(c.pixels[(2*cy+1)*c.pixW+cx]),
			})
		}
	}
}

func (c *TerminalCanvas) color(rgba color.RGBA) core.Color {
	if v, ok := c.palette[rgba]; ok {
		return v
	}
	v := core.FromRGBA(rgba)
	c.palette[rgba] = v
	return v
}
