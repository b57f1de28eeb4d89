package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/layout"
)

func TestNew(t *testing.T) {
	v := New()
	assert.Equal(t, 1.0, v.Scale)
	assert.Zero(t, v.OffsetX)
	assert.Zero(t, v.OffsetY)
	assert.False(t, v.Dragging)
}

func TestPanOnlyWhileDragging(t *testing.T) {
	v := New()
	v.Pan(10, 10)
	v.DragTo(50, 50)
	assert.Zero(t, v.OffsetX)

	v.BeginDrag(100, 100)
	v.DragTo(130, 90)
	assert.Equal(t, 30.0, v.OffsetX)
	assert.Equal(t, -10.0, v.OffsetY)

	v.DragTo(140, 90)
	assert.Equal(t, 40.0, v.OffsetX)

	v.EndDrag()
	v.DragTo(500, 500)
	assert.Equal(t, 40.0, v.OffsetX)
	assert.Equal(t, -10.0, v.OffsetY)
}

func TestPanIsUnbounded(t *testing.T) {
	v := New()
	v.BeginDrag(0, 0)
	v.DragTo(-100000, 250000)
	assert.Equal(t, -100000.0, v.OffsetX)
	assert.Equal(t, 250000.0, v.OffsetY)
}

func TestZoomClamped(t *testing.T) {
	v := New()
	v.Zoom(10)
	assert.Equal(t, MaxScale, v.Scale)
	v.Zoom(-10)
	assert.Equal(t, MinScale, v.Scale)

	for i := 0; i < 50; i++ {
		v.ZoomIn()
	}
	assert.Equal(t, MaxScale, v.Scale)
	for i := 0; i < 50; i++ {
		v.ZoomOut()
	}
	assert.Equal(t, MinScale, v.Scale)
}

func TestWheel(t *testing.T) {
	v := New()
	v.Wheel(-100)
	assert.InDelta(t, 1.1, v.Scale, 1e-9)
	v.Wheel(200)
	assert.InDelta(t, 0.9, v.Scale, 1e-9)
}

func TestZoomKeepsOffset(t *testing.T) {
	v := New()
	v.Reset(1000, 800)
	x, y := v.OffsetX, v.OffsetY
	v.ZoomIn()
	assert.Equal(t, x, v.OffsetX)
	assert.Equal(t, y, v.OffsetY)
}

func TestResetCentresWorld(t *testing.T) {
	v := New()
	v.BeginDrag(0, 0)
	v.DragTo(999, 999)
	v.Zoom(1)

	v.Reset(1200, 700)
	assert.Equal(t, FitScale, v.Scale)
	assert.InDelta(t, 120.0, v.OffsetX, 1e-9)
	assert.InDelta(t, 70.0, v.OffsetY, 1e-9)

	c := v.ToScreen(layout.Center)
	assert.InDelta(t, 600.0, c.X, 1e-9)
	assert.InDelta(t, 350.0, c.Y, 1e-9)
}

func TestScreenMapping(t *testing.T) {
	v := Viewport{OffsetX: 10, OffsetY: 20, Scale: 2}
	p := layout.Point{X: 300, Y: 250}

	s := v.ToScreen(p)
	assert.Equal(t, layout.Point{X: 610, Y: 520}, s)
	assert.Equal(t, p, v.ToWorld(s))

	a := v.TooltipAnchor(p)
	assert.Equal(t, layout.Point{X: 610, Y: 440}, a)
}
