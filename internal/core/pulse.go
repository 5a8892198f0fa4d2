package core

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse is a transient signal that fades out over a fixed duration,
// used for the "perfect" banner.
type Pulse struct {
	duration time.Duration
	tween    *gween.Tween
	alpha    float32
	active   bool
}

// NewPulse creates an idle pulse that lasts d once triggered.
func NewPulse(d time.Duration) *Pulse {
	return &Pulse{duration: d}
}

// Trigger restarts the pulse at full strength.
func (p *Pulse) Trigger() {
	if p.duration <= 0 {
		return
	}
	p.tween = gween.New(1, 0, float32(p.duration.Seconds()), ease.InQuad)
	p.alpha = 1
	p.active = true
}

// Update advances the fade by dt of wall-clock time.
func (p *Pulse) Update(dt time.Duration) {
	if !p.active || dt <= 0 {
		return
	}
	v, done := p.tween.Update(float32(dt.Seconds()))
	p.alpha = v
	if done {
		p.Stop()
	}
}

// Stop hides the pulse immediately.
func (p *Pulse) Stop() {
	p.active = false
	p.alpha = 0
}

// Active reports whether the pulse is still visible.
func (p *Pulse) Active() bool {
	return p.active
}

// Alpha returns the current strength in [0, 1].
func (p *Pulse) Alpha() float32 {
	return p.alpha
}
