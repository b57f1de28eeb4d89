package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	Service    string    `json:"service"`
	Version    string    `json:"version"`
	Store      string    `json:"store,omitempty"`
	StoreKind  string    `json:"store_kind,omitempty"`
	Summarizer string    `json:"summarizer,omitempty"`
}

// Pinger is the part of the session store the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
	Kind() string
}

type HealthHandler struct {
	serviceName string
	version     string
	store       Pinger
	summarizer  string
}

func NewHealthHandler(serviceName, version string, store Pinger, summarizer string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		store:       store,
		summarizer:  summarizer,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := "healthy"
	storeStatus := "disabled"
	storeKind := ""
	if h.store != nil {
		storeKind = h.store.Kind()
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.store.Ping(pingCtx); err != nil {
			storeStatus = "down"
			status = "degraded"
		} else {
			storeStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:     status,
		Timestamp:  time.Now().UTC(),
		Service:    h.serviceName,
		Version:    h.version,
		Store:      storeStatus,
		StoreKind:  storeKind,
		Summarizer: h.summarizer,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
