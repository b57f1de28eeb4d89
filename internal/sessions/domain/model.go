package domain

import (
	"time"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/insight"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/shell"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/viewport"
)

// Session is the server-side view state of one open diagram.
type Session struct {
	ID        string            `json:"id"`
	State     shell.State       `json:"state"`
	Viewport  viewport.Viewport `json:"viewport"`
	Insight   insight.Panel     `json:"insight"`
	Width     float64           `json:"width"`
	Height    float64           `json:"height"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Default viewport size used when a client does not report its own.
const (
	DefaultWidth  = 1200.0
	DefaultHeight = 700.0
)

func NewSession(width, height float64) *Session {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	vp := viewport.New()
	vp.Reset(width, height)
	return &Session{
		State:    shell.NewState(),
		Viewport: vp,
		Insight:  insight.NewPanel(),
		Width:    width,
		Height:   height,
	}
}

// GestureType names a pointer or button event on the canvas.
type GestureType string

const (
	GesturePointerDown  GestureType = "pointer_down"
	GesturePointerMove  GestureType = "pointer_move"
	GesturePointerUp    GestureType = "pointer_up"
	GesturePointerLeave GestureType = "pointer_leave"
	GestureWheel        GestureType = "wheel"
	GestureZoomIn       GestureType = "zoom_in"
	GestureZoomOut      GestureType = "zoom_out"
	GestureReset        GestureType = "reset"
)

type Gesture struct {
	Type   GestureType `json:"gesture" binding:"required"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	DeltaY float64     `json:"delta_y"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
}
