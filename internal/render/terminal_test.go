package render

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/stick-bridge/internal/config"
	"github.com/vovakirdan/stick-bridge/internal/core"
	"github.com/vovakirdan/stick-bridge/internal/stick"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestTerminalCanvasSize(t *testing.T) {
	screen := core.NewScreen(20, 6)
	c := NewTerminalCanvas(screen, 5, 20)

	w, h := c.Size()
	if w != 40 || h != 20 {
		t.Errorf("Size() = (%v, %v), want (40, 20)", w, h)
	}
	if c.PixelSize() != 2 {
		t.Errorf("PixelSize() = %v, want 2", c.PixelSize())
	}

	screen.Resize(30, 11)
	c.Resize(10)
	w, h = c.Size()
	if w != 30 || h != 20 {
		t.Errorf("after resize Size() = (%v, %v), want (30, 20)", w, h)
	}
}

func TestTerminalCanvasFillRect(t *testing.T) {
	c := NewTerminalCanvas(core.NewScreen(10, 5), 5, 10)
	c.FillRect(2, 2, 3, 4, red)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 6
			got := c.Pixel(x, y)
			if inside && got != red {
				t.Errorf("pixel (%d,%d) = %v, want red", x, y, got)
			}
			if !inside && got != black {
				t.Errorf("pixel (%d,%d) = %v, want black", x, y, got)
			}
		}
	}
}

func TestTerminalCanvasTinyShapes(t *testing.T) {
	c := NewTerminalCanvas(core.NewScreen(10, 5), 5, 10)

	c.FillCircle(5.2, 5.2, 0.1, red)
	if c.Pixel(5, 5) != red {
		t.Error("sub-pixel circle should light the pixel under its center")
	}

	c.FillRect(7.1, 1.1, 0.2, 0.2, white)
	if c.Pixel(7, 1) != white {
		t.Error("sub-pixel rect should light one pixel")
	}
}

func TestTerminalCanvasGradient(t *testing.T) {
	c := NewTerminalCanvas(core.NewScreen(4, 5), 5, 10)
	c.FillGradient(0, 0, 4, 10, black, white)

	prev := -1
	for y := 0; y < 10; y++ {
		v := int(c.Pixel(0, y).R)
		if v <= prev {
			t.Fatalf("row %d: gradient not increasing (%d after %d)", y, v, prev)
		}
		prev = v
	}
	if c.Pixel(0, 0).R > 20 || c.Pixel(0, 9).R < 235 {
		t.Errorf("gradient ends = %d..%d, want near 0..255", c.Pixel(0, 0).R, c.Pixel(0, 9).R)
	}
}

func TestTerminalCanvasTranslucentStroke(t *testing.T) {
	c := NewTerminalCanvas(core.NewScreen(10, 5), 5, 10)
	half := color.RGBA{R: 128, G: 128, B: 128, A: 128}

	c.StrokeLine(0, 0.5, 9, 0.5, 1, half)

	for x := 0; x < 10; x++ {
		if got := c.Pixel(x, 0); got.R != 128 {
			t.Errorf("pixel %d R = %d, want 128 (blended once)", x, got.R)
		}
	}
	if got := c.Pixel(0, 1); got != black {
		t.Errorf("pixel below the line changed to %v", got)
	}
}

func TestTerminalCanvasFlush(t *testing.T) {
	screen := core.NewScreen(4, 3)
	c := NewTerminalCanvas(screen, 2, 4)
	c.FillRect(0, 0, 4, 1, red)
	c.Flush()

	cell := screen.GetCell(0, 0)
	if cell.Rune != halfBlock {
		t.Fatalf("expected half block, got %q", cell.Rune)
	}
	if cell.Fg != core.FromRGBA(red) || cell.Bg != core.FromRGBA(black) {
		t.Errorf("cell colors = %q/%q, want %q/%q", cell.Fg, cell.Bg, core.FromRGBA(red), core.FromRGBA(black))
	}

	// Rows below the canvas are left alone.
	if r := screen.Get(0, 2); r != ' ' {
		t.Errorf("row outside the canvas was drawn: %q", r)
	}
}

func TestTerminalSceneFillsScreen(t *testing.T) {
	cfg := config.DefaultStickConfig()
	screen := core.NewScreen(80, 24)
	c := NewTerminalCanvas(screen, 23, cfg.Geometry.CanvasHeight)

	g := stick.New(cfg, constSource(0.5))
	NewScene(cfg.Geometry, DefaultPalette).Draw(c, g.Snapshot())
	c.Flush()

	for y := 0; y < 23; y++ {
		for x := 0; x < 80; x++ {
			cell := screen.GetCell(x, y)
			if cell.Rune != halfBlock || cell.Fg == core.ColorDefault || cell.Bg == core.ColorDefault {
				t.Fatalf("cell (%d,%d) not painted: %+v", x, y, cell)
			}
		}
	}
}

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }
