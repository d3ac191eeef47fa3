package arena

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/arena/internal/domain/entity"
)

const (
	zoomPunch    = 1.6 // zoom multiplier right after a model loads
	zoomDuration = 0.8 // seconds to settle back
)

// Camera is a top-down follow camera. World X maps to screen X and
// world Z to screen Y.
type Camera struct {
	X, Z float64

	zoom float64
	lerp float64

	tween *gween.Tween
	scale float64
}

// NewCamera creates a camera centered on target
func NewCamera(target entity.Vec3, pixelsPerUnit, lerp float64) *Camera {
	return &Camera{
		X:     target.X,
		Z:     target.Z,
		zoom:  pixelsPerUnit,
		lerp:  lerp,
		scale: 1,
	}
}

// Follow eases the camera toward target. A lerp of 0 snaps.
func (c *Camera) Follow(target entity.Vec3, dt float64) {
	alpha := 1.0
	if c.lerp > 0 {
		alpha = 1 - math.Exp(-c.lerp*dt)
	}
	c.X += (target.X - c.X) * alpha
	c.Z += (target.Z - c.Z) * alpha
}

// Punch zooms in and tweens back to the resting zoom
func (c *Camera) Punch() {
	c.tween = gween.New(zoomPunch, 1, zoomDuration, ease.OutCubic)
	c.scale = zoomPunch
}

// Update advances the zoom tween
func (c *Camera) Update(dt float64) {
	if c.tween == nil {
		return
	}
	cur, done := c.tween.Update(float32(dt))
	c.scale = float64(cur)
	if done {
		c.tween = nil
		c.scale = 1
	}
}

// Zoom returns the current pixels per world unit
func (c *Camera) Zoom() float64 {
	return c.zoom * c.scale
}

// Project maps a ground-plane point to screen pixels
func (c *Camera) Project(p entity.Vec3, screenW, screenH int) (float32, float32) {
	z := c.Zoom()
	x := (p.X-c.X)*z + float64(screenW)/2
	y := (p.Z-c.Z)*z + float64(screenH)/2
	return float32(x), float32(y)
}
