package system

import (
	"image/color"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/orbitsim/ecs"
	"github.com/milk9111/orbitsim/obj"
)

// BodyView is the drawable state of one body.
type BodyView struct {
	Entity   ecs.Entity
	Name     string
	Color    color.NRGBA
	Radius   float64
	Position cp.Vector
	Pinned   bool
}

// Frame is an immutable snapshot handed to a Renderer after a tick.
type Frame struct {
	Tick  uint64
	Title string
	// TitleLength caps each name in the title and the HUD.
	TitleLength int

	Bodies              []BodyView
	Focus               cp.Vector
	ViewportSize        int
	SpatialScale        float64
	EntityDisplayFactor float64

	Overlay       bool
	Labels        bool
	OverlayZoom   float64
	MagnifierSize int

	PinnedName       string
	ShootingName     string
	TimeAcceleration float64
	EntityCount      int
	// FocusChanged is set when the pinned body changed since the last frame.
	FocusChanged bool
}

// Renderer draws frames. Render must not hold on to the frame's slices past
// the next call.
type Renderer interface {
	Render(Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame)

func (f RendererFunc) Render(fr Frame) {
	f(fr)
}

// Camera rebuilds the frame's view as a camera for screen/world mapping.
func (f Frame) Camera() *obj.Camera {
	cam := obj.NewCamera(f.ViewportSize, obj.DefaultZoomIncrement)
	cam.SnapTo(f.Focus)
	cam.SetScale(f.SpatialScale)
	cam.EntityDisplayFactor = f.EntityDisplayFactor
	return cam
}

// MagnifierCamera returns the magnifier's view centred on the world point
// under cursor, drawn OverlayZoom times closer than the main view.
func (f Frame) MagnifierCamera(cursor cp.Vector) *obj.Camera {
	view := f.Camera()
	cam := obj.NewCamera(f.MagnifierSize, obj.DefaultZoomIncrement)
	cam.SnapTo(view.ScreenToWorld(cursor))
	zoom := f.OverlayZoom
	if zoom <= 0 {
		zoom = 1
	}
	cam.SetScale(f.SpatialScale / zoom)
	cam.EntityDisplayFactor = f.EntityDisplayFactor
	return cam
}
