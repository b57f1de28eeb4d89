package http

import (
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/service"
)

// Handler handles HTTP requests for diagram sessions
type Handler struct {
	svc *service.SessionService
}

// New creates a new Handler
func New(svc *service.SessionService) *Handler {
	return &Handler{svc: svc}
}

type createSessionRequest struct {
	Width  float64 `json:"width" binding:"gte=0"`
	Height float64 `json:"height" binding:"gte=0"`
}

type componentRequest struct {
	ComponentID string `json:"component_id"`
}

type modeRequest struct {
	Mode string `json:"mode"`
}

type tabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

type phaseRequest struct {
	PhaseID string `json:"phase_id"`
}
