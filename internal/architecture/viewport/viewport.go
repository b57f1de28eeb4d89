// Package viewport holds the pan/zoom transform between world space and
// screen space.
package viewport

import "github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/layout"

const (
	MinScale     = 0.4
	MaxScale     = 3.0
	DefaultScale = 1.0
	FitScale     = 0.8

	// WheelFactor converts a wheel deltaY into a scale delta.
	WheelFactor = 0.001
	ButtonStep  = 0.1

	// TooltipLift is the world-space distance a tooltip sits above its component.
	TooltipLift = 40.0
)

// Viewport is the world-to-screen transform plus the anchor of a held drag.
type Viewport struct {
	OffsetX  float64 `json:"offset_x"`
	OffsetY  float64 `json:"offset_y"`
	Scale    float64 `json:"scale"`
	Dragging bool    `json:"dragging"`
	AnchorX  float64 `json:"anchor_x,omitempty"`
	AnchorY  float64 `json:"anchor_y,omitempty"`
}

func New() Viewport {
	return Viewport{Scale: DefaultScale}
}

// BeginDrag starts a pan gesture at screen point (x, y).
func (v *Viewport) BeginDrag(x, y float64) {
	v.Dragging = true
	v.AnchorX, v.AnchorY = x, y
}

// DragTo pans by the distance moved since the previous pointer position.
// Without a held drag it does nothing.
func (v *Viewport) DragTo(x, y float64) {
	if !v.Dragging {
		return
	}
	v.Pan(x-v.AnchorX, y-v.AnchorY)
	v.AnchorX, v.AnchorY = x, y
}

func (v *Viewport) EndDrag() {
	v.Dragging = false
	v.AnchorX, v.AnchorY = 0, 0
}

// Pan translates the offset while a drag is held. There are no bounds.
func (v *Viewport) Pan(dx, dy float64) {
	if !v.Dragging {
		return
	}
	v.OffsetX += dx
	v.OffsetY += dy
}

// Zoom changes the scale additively, clamped to [MinScale, MaxScale]. The
// offset is untouched.
func (v *Viewport) Zoom(delta float64) {
	v.Scale = clamp(v.Scale+delta, MinScale, MaxScale)
}

func (v *Viewport) Wheel(deltaY float64) {
	v.Zoom(-deltaY * WheelFactor)
}

func (v *Viewport) ZoomIn()  { v.Zoom(ButtonStep) }
func (v *Viewport) ZoomOut() { v.Zoom(-ButtonStep) }

// Reset centres the world centre in a width x height viewport at FitScale.
func (v *Viewport) Reset(width, height float64) {
	v.Scale = FitScale
	v.OffsetX = width/2 - layout.Center.X*FitScale
	v.OffsetY = height/2 - layout.Center.Y*FitScale
}

func (v Viewport) ToScreen(p layout.Point) layout.Point {
	return layout.Point{
		X: v.OffsetX + p.X*v.Scale,
		Y: v.OffsetY + p.Y*v.Scale,
	}
}

// ToWorld is the inverse of ToScreen.
func (v Viewport) ToWorld(p layout.Point) layout.Point {
	return layout.Point{
		X: (p.X - v.OffsetX) / v.Scale,
		Y: (p.Y - v.OffsetY) / v.Scale,
	}
}

// TooltipAnchor is the screen point a tooltip for a component at p hangs from.
func (v Viewport) TooltipAnchor(p layout.Point) layout.Point {
	s := v.ToScreen(p)
	s.Y -= TooltipLift * v.Scale
	return s
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
