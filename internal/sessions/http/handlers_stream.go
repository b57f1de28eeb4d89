package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/domain"
)

// KeepAliveInterval is how often an idle event stream sends a comment line.
var KeepAliveInterval = 15 * time.Second

// StreamSessionEvents streams session views using Server-Sent Events (SSE).
// Every stored change of the session produces an update event.
func (h *Handler) StreamSessionEvents(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	view, err := h.svc.Get(ctx, id)
	if err != nil {
		h.writeError(c, "stream_session", err)
		return
	}
	views, err := h.svc.Subscribe(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h.writeError(c, "stream_session", err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	send := func(event string, payload any) {
		data, _ := json.Marshal(payload)
		fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, string(data))
		flusher.Flush()
	}

	c.Status(http.StatusOK)
	send("initial", gin.H{"session": view})

	ticker := time.NewTicker(KeepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// client disconnected
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case v, ok := <-views:
			if !ok {
				if _, err := h.svc.Get(ctx, id); errors.Is(err, domain.ErrSessionNotFound) {
					send("deleted", gin.H{"event": "deleted", "session_id": id})
				}
				return
			}
			send("update", gin.H{"session": v})
		}
	}
}
