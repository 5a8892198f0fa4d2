package render

import (
	"image/color"
	"math"

	"github.com/vovakirdan/stick-bridge/internal/config"
	"github.com/vovakirdan/stick-bridge/internal/stick"
)

// Palette holds every color the scene uses. Colors are premultiplied.
type Palette struct {
	SkyTop, SkyBottom     color.RGBA
	RiverTop, RiverBottom color.RGBA
	Wave                  color.RGBA
	Sun                   color.RGBA
	Cloud                 color.RGBA
	Pad, PadRim           color.RGBA
	Perfect               color.RGBA
	Dress, Skin, Hair     color.RGBA
	Eyes                  color.RGBA
	Stick                 color.RGBA
}

// DefaultPalette is the pond at daytime.
var DefaultPalette = Palette{
	SkyTop:      color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 0xFF},
	SkyBottom:   color.RGBA{R: 0xE0, G: 0xF6, B: 0xFF, A: 0xFF},
	RiverTop:    color.RGBA{R: 0x46, G: 0x82, B: 0xB4, A: 0xFF},
	RiverBottom: color.RGBA{R: 0x5F, G: 0x9E, B: 0xA0, A: 0xFF},
	Wave:        color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80},
	Sun:         color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF},
	Cloud:       color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	Pad:         color.RGBA{R: 0x3A, G: 0x5F, B: 0x0B, A: 0xFF},
	PadRim:      color.RGBA{R: 0x0B, G: 0x3B, B: 0x0B, A: 0xFF},
	Perfect:     color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF},
	Dress:       color.RGBA{R: 0xFF, G: 0xC0, B: 0xCB, A: 0xFF},
	Skin:        color.RGBA{R: 0xFF, G: 0xE4, B: 0xB5, A: 0xFF},
	Hair:        color.RGBA{R: 0x8B, G: 0x45, B: 0x13, A: 0xFF},
	Eyes:        color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	Stick:       color.RGBA{R: 0x8B, G: 0x45, B: 0x13, A: 0xFF},
}

const (
	riverShare = 0.4 // Bottom share of the view covered by water
	waveLines  = 3
	stickWidth = 2
)

// Scene paints snapshots of one game.
type Scene struct {
	geo     config.StickGeometry
	palette Palette
}

// NewScene creates a scene for the given world geometry, painted with p.
func NewScene(geo config.StickGeometry, p Palette) *Scene {
	return &Scene{geo: geo, palette: p}
}

// Origin returns where world (0, 0) lands on a view of the given size.
// The world is centered and scrolled left by the scene offset.
func (s *Scene) Origin(viewW, viewH, sceneOffset float64) (ox, oy float64) {
	ox = (viewW-s.geo.CanvasWidth)/2 - sceneOffset
	oy = (viewH - s.geo.CanvasHeight) / 2
	return ox, oy
}

// Surface returns the world y of the line sticks stand on: the middle of
// the lily pads.
func (s *Scene) Surface() float64 {
	return s.geo.CanvasHeight - s.geo.PlatformHeight/2
}

// Ground returns the world y the hero's feet rest on while walking,
// PlatformHeight/2 above the stick line.
func (s *Scene) Ground() float64 {
	return s.geo.CanvasHeight - s.geo.PlatformHeight
}

// Draw paints the whole frame: backdrop first, then the world.
func (s *Scene) Draw(c Canvas, snap stick.Snapshot) {
	w, h := c.Size()
	s.drawBackground(c, w, h)

	ox, oy := s.Origin(w, h, snap.SceneOffset)
	s.drawPlatforms(c, ox, oy, snap)
	s.drawHero(c, ox, oy, snap.Hero)
	s.drawSticks(c, ox, oy, snap.Sticks)
}

func (s *Scene) drawBackground(c Canvas, w, h float64) {
	p := s.palette
	c.FillGradient(0, 0, w, h, p.SkyTop, p.SkyBottom)

	river := h * riverShare
	c.FillGradient(0, h-river, w, river, p.RiverTop, p.RiverBottom)

	for i := 0; i < waveLines; i++ {
		base := h - river*(0.2+float64(i)*0.3)
		prevX, prevY := 0.0, base
		for x := 20.0; x < w+20; x += 20 {
			y := base + math.Sin(x*0.1)*5
			c.StrokeLine(prevX, prevY, x, y, 2, p.Wave)
			prevX, prevY = x, y
		}
	}

	c.FillCircle(100, 100, 40, p.Sun)

	s.drawCloud(c, 200, 150, 70)
	s.drawCloud(c, 500, 100, 60)
	s.drawCloud(c, 800, 180, 80)
}

func (s *Scene) drawCloud(c Canvas, x, y, size float64) {
	col := s.palette.Cloud
	c.FillCircle(x, y, size*0.5, col)
	c.FillCircle(x+size*0.35, y-size*0.2, size*0.4, col)
	c.FillCircle(x+size*0.7, y, size*0.5, col)
}

func (s *Scene) drawPlatforms(c Canvas, ox, oy float64, snap stick.Snapshot) {
	p := s.palette
	cy := oy + s.Surface()
	ry := s.geo.PlatformHeight / 4
	active := snap.ActiveStick()

	for _, pl := range snap.Platforms {
		cx := ox + pl.Mid()
		fillEllipse(c, cx, cy, pl.W/2, ry, p.PadRim)
		fillEllipse(c, cx, cy, pl.W/2*0.9, ry*0.9, p.Pad)

		// Only platforms still ahead show their target
		if active.X < pl.X {
			c.FillCircle(cx, cy, s.geo.PerfectAreaSize/2, p.Perfect)
		}
	}
}

func (s *Scene) drawHero(c Canvas, ox, oy float64, hero stick.Hero) {
	p := s.palette
	hw, hh := s.geo.HeroWidth, s.geo.HeroHeight

	cx := ox + hero.X - hw/2
	feet := oy + s.Ground() + hero.Y
	neck := feet - hh

	fillTriangle(c, cx, neck, feet, hw, p.Dress)
	c.FillCircle(cx, neck, hw/3, p.Skin)

	eye := hw / 20
	c.FillCircle(cx-hw/8, neck-hw/8, eye, p.Eyes)
	c.FillCircle(cx+hw/8, neck-hw/8, eye, p.Eyes)

	fillEllipse(c, cx, neck-hw/4, hw/3, hw/8, p.Hair)
}

func (s *Scene) drawSticks(c Canvas, ox, oy float64, sticks []stick.Stick) {
	y := oy + s.Surface()
	for _, st := range sticks {
		x0, y0, x1, y1 := StickLine(st, ox, y)
		c.StrokeLine(x0, y0, x1, y1, stickWidth, s.palette.Stick)
	}
}

// StickLine returns the stick's base and tip in view coordinates.
// The stick rotates clockwise around its base, starting straight up.
func StickLine(st stick.Stick, ox, surfaceY float64) (x0, y0, x1, y1 float64) {
	rad := st.Rotation * math.Pi / 180
	x0 = ox + st.X
	y0 = surfaceY
	x1 = x0 + st.Length*math.Sin(rad)
	y1 = y0 - st.Length*math.Cos(rad)
	return x0, y0, x1, y1
}
