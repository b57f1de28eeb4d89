package http

import "github.com/gin-gonic/gin"

// Register registers the session routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.CreateSession)
	rg.GET("/:id", h.GetSession)
	rg.DELETE("/:id", h.DeleteSession)
	rg.GET("/:id/events", h.StreamSessionEvents)

	rg.PUT("/:id/selection", h.Select)
	rg.DELETE("/:id/selection", h.ClearSelection)
	rg.PUT("/:id/hover", h.Hover)
	rg.PUT("/:id/mode", h.SetMode)
	rg.PUT("/:id/tab", h.SetTab)
	rg.PUT("/:id/phase-hover", h.HoverPhase)
	rg.POST("/:id/viewport", h.Gesture)

	rg.POST("/:id/insight", h.RequestInsight)
	rg.GET("/:id/insight", h.GetInsight)
	rg.GET("/:id/diagram.dot", h.DiagramDOT)
}
