package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/export"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/highlight"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/icons"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/insight"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/layout"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/shell"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/logging"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/summarize"
)

func (h *Handler) GetCatalog(c *gin.Context) {
	comps := make([]ComponentDTO, 0, len(h.cat.Components))
	for _, comp := range h.cat.Components {
		comps = append(comps, ComponentDTO{
			Component: comp,
			Glyph:     icons.Glyph(comp.Icon),
			Position:  layout.Position(comp.ID),
		})
	}
	c.JSON(http.StatusOK, CatalogResponse{
		Components: comps,
		Flows:      h.cat.Flows,
		Threats:    h.cat.Threats,
		Phases:     h.cat.Phases,
		Regions:    layout.Regions(),
		Modes:      h.cat.Modes(),
	})
}

func (h *Handler) GetComponent(c *gin.Context) {
	d, ok := insight.NewDetail(h.cat, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "component not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"component": d})
}

// GetLayout resolves a position. Unknown ids get the canvas centre.
func (h *Handler) GetLayout(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, LayoutResponse{
		ID:       id,
		Position: layout.Position(id),
		Known:    layout.Known(id),
	})
}

func (h *Handler) GetSnapshot(c *gin.Context) {
	st := queryState(c)
	snap := h.classify(st)
	c.JSON(http.StatusOK, SnapshotResponse{
		Snapshot: snap,
		Counts:   snap.Counts(),
		Banner:   st.HoveredPhaseTitle(h.cat),
	})
}

func (h *Handler) GetDiagramDOT(c *gin.Context) {
	st := queryState(c)
	title := c.DefaultQuery("title", "Sentinel - "+st.Mode)
	dot := export.ToDOT(h.cat, h.classify(st), title)
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", []byte(dot))
}

// AnalyzeComponent summarizes one component. Concurrent requests for the
// same component wait on one upstream call; nothing is cached.
func (h *Handler) AnalyzeComponent(c *gin.Context) {
	comp, ok := h.cat.Component(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "component not found"})
		return
	}

	ctx := c.Request.Context()
	// a caller that goes away must not fail the others waiting on the call
	shared := context.WithoutCancel(ctx)
	ch := h.inflight.DoChan(comp.ID, func() (any, error) {
		return h.summarizer.Summarize(shared, comp)
	})

	select {
	case <-ctx.Done():
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "request cancelled"})
	case res := <-ch:
		if res.Err != nil {
			if errors.Is(res.Err, context.Canceled) || errors.Is(res.Err, context.DeadlineExceeded) {
				c.JSON(http.StatusGatewayTimeout, gin.H{"error": "analysis timed out"})
				return
			}
			logging.NewLogger(ctx).LogError("analyze_component", res.Err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "analysis failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"component_id": comp.ID,
			"analysis":     res.Val.(summarize.Analysis),
			"shared":       res.Shared,
		})
	}
}

func (h *Handler) classify(st shell.State) highlight.Snapshot {
	snap := highlight.Classify(h.cat, st.HighlightInput(h.cat))
	h.metrics.RecordClassification(string(snap.Regime))
	return snap
}

func queryState(c *gin.Context) shell.State {
	return shell.StateFor(
		c.Query("mode"),
		c.Query("selected"),
		c.Query("hovered"),
		c.Query("phase"),
	)
}
