package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	archdomain "github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/shell"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/logging"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/service"
)

// CreateSession opens a session. The body is optional.
func (h *Handler) CreateSession(c *gin.Context) {
	var body createSessionRequest
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.svc.Create(c.Request.Context(), body.Width, body.Height)
	if err != nil {
		h.writeError(c, "create_session", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": view})
}

func (h *Handler) GetSession(c *gin.Context) {
	view, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	h.respond(c, "get_session", view, err)
}

func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, "delete_session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session deleted"})
}

func (h *Handler) Select(c *gin.Context) {
	var body componentRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.ComponentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "component_id is required"})
		return
	}
	view, err := h.svc.Select(c.Request.Context(), c.Param("id"), body.ComponentID)
	h.respond(c, "select_component", view, err)
}

func (h *Handler) ClearSelection(c *gin.Context) {
	view, err := h.svc.ClearSelection(c.Request.Context(), c.Param("id"))
	h.respond(c, "clear_selection", view, err)
}

// Hover sets the hovered component; an empty component_id clears it.
func (h *Handler) Hover(c *gin.Context) {
	var body componentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	view, err := h.svc.Hover(c.Request.Context(), c.Param("id"), body.ComponentID)
	h.respond(c, "hover_component", view, err)
}

func (h *Handler) SetMode(c *gin.Context) {
	var body modeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	view, err := h.svc.SetMode(c.Request.Context(), c.Param("id"), body.Mode)
	h.respond(c, "set_mode", view, err)
}

func (h *Handler) SetTab(c *gin.Context) {
	var body tabRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tab is required"})
		return
	}
	view, err := h.svc.SetTab(c.Request.Context(), c.Param("id"), body.Tab)
	h.respond(c, "set_tab", view, err)
}

func (h *Handler) HoverPhase(c *gin.Context) {
	var body phaseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	view, err := h.svc.HoverPhase(c.Request.Context(), c.Param("id"), body.PhaseID)
	h.respond(c, "hover_phase", view, err)
}

func (h *Handler) Gesture(c *gin.Context) {
	var body domain.Gesture
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gesture is required"})
		return
	}
	view, err := h.svc.Gesture(c.Request.Context(), c.Param("id"), body)
	h.respond(c, "viewport_gesture", view, err)
}

// RequestInsight starts the analysis of the selected component and returns
// at once with the panel in its loading state.
func (h *Handler) RequestInsight(c *gin.Context) {
	view, err := h.svc.RequestInsight(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, "request_insight", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"session": view})
}

func (h *Handler) GetInsight(c *gin.Context) {
	panel, err := h.svc.Insight(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, "get_insight", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insight": panel})
}

func (h *Handler) DiagramDOT(c *gin.Context) {
	dot, err := h.svc.DOT(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, "session_dot", err)
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", []byte(dot))
}

func (h *Handler) respond(c *gin.Context, op string, view *service.View, err error) {
	if err != nil {
		h.writeError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

func (h *Handler) writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, archdomain.ErrComponentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "component not found"})
	case errors.Is(err, shell.ErrInvalidTab),
		errors.Is(err, domain.ErrInvalidGesture),
		errors.Is(err, domain.ErrNoSelection):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logging.NewLogger(c.Request.Context()).LogError(op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + humanize(op)})
	}
}

func humanize(op string) string {
	return strings.ReplaceAll(op, "_", " ")
}
