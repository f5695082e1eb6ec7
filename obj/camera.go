package obj

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/orbitsim/ecs"
)

const (
	DefaultViewportSize  = 800
	DefaultZoomIncrement = 1.01
)

// Camera frames the simulation around a world point and owns the session's
// scale state. Positions are metres; the viewport is a square of
// ViewportSize pixels.
type Camera struct {
	Focus        cp.Vector
	ViewportSize int
	// Pinned is the entity the camera follows. Zero means the barycentre.
	Pinned ecs.Entity

	// SpatialScale is metres per pixel.
	SpatialScale float64
	// EntityDisplayFactor enlarges drawn bodies without touching physics.
	EntityDisplayFactor float64

	zoomIncrement float64
}

// NewCamera creates a camera for a square viewport of size pixels.
func NewCamera(size int, zoomIncrement float64) *Camera {
	if size <= 0 {
		size = DefaultViewportSize
	}
	if zoomIncrement <= 1 {
		zoomIncrement = DefaultZoomIncrement
	}
	return &Camera{
		ViewportSize:        size,
		SpatialScale:        1,
		EntityDisplayFactor: 1,
		zoomIncrement:       zoomIncrement,
	}
}

// Centre returns the viewport centre in screen pixels.
func (c *Camera) Centre() cp.Vector {
	half := float64(c.ViewportSize) / 2.0
	return cp.Vector{X: half, Y: half}
}

// ScreenToWorld maps a screen pixel to world metres.
func (c *Camera) ScreenToWorld(p cp.Vector) cp.Vector {
	return p.Sub(c.Centre()).Mult(c.SpatialScale).Add(c.Focus)
}

// WorldToScreen maps world metres to a screen pixel.
func (c *Camera) WorldToScreen(p cp.Vector) cp.Vector {
	if c.SpatialScale == 0 {
		return c.Centre()
	}
	return p.Sub(c.Focus).Mult(1 / c.SpatialScale).Add(c.Centre())
}

// DisplayRadius returns the on-screen radius in pixels for a body radius in
// metres.
func (c *Camera) DisplayRadius(radius float64) float64 {
	if c.SpatialScale == 0 {
		return 0
	}
	return radius * c.EntityDisplayFactor / c.SpatialScale
}

// ZoomIn shrinks the metres-per-pixel scale by one increment.
func (c *Camera) ZoomIn() {
	c.SpatialScale /= c.zoomIncrement
}

func (c *Camera) ZoomOut() {
	c.SpatialScale *= c.zoomIncrement
}

// SetScale replaces the spatial scale, ignoring non-positive values.
func (c *Camera) SetScale(scale float64) {
	if scale <= 0 {
		return
	}
	c.SpatialScale = scale
}

func (c *Camera) EnlargeEntities() {
	c.EntityDisplayFactor *= c.zoomIncrement
}

func (c *Camera) DiminishEntities() {
	c.EntityDisplayFactor /= c.zoomIncrement
}

func (c *Camera) ResetEntityScale() {
	c.EntityDisplayFactor = 1
}

// Pin follows e until it is cleared or stops existing.
func (c *Camera) Pin(e ecs.Entity) {
	c.Pinned = e
}

// Recentre returns the camera to the barycentre.
func (c *Camera) Recentre() {
	c.Pinned = 0
}

func (c *Camera) IsPinned() bool {
	return c.Pinned.Valid()
}

// SnapTo sets the focus immediately.
func (c *Camera) SnapTo(p cp.Vector) {
	c.Focus = p
}
