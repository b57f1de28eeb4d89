package http

import (
	"golang.org/x/sync/singleflight"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/highlight"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/layout"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/metrics"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/summarize"
)

// Handler serves the catalog and the stateless diagram endpoints.
type Handler struct {
	cat        *domain.Catalog
	summarizer summarize.Summarizer
	metrics    *metrics.Registry

	// concurrent analyses of one component share a single upstream call
	inflight singleflight.Group
}

func New(cat *domain.Catalog, s summarize.Summarizer, reg *metrics.Registry) *Handler {
	if reg == nil {
		reg = metrics.DefaultRegistry()
	}
	return &Handler{cat: cat, summarizer: s, metrics: reg}
}

// ComponentDTO is a component as a renderer draws it.
type ComponentDTO struct {
	domain.Component
	Glyph    string       `json:"glyph"`
	Position layout.Point `json:"position"`
}

type CatalogResponse struct {
	Components []ComponentDTO        `json:"components"`
	Flows      []domain.Flow         `json:"flows"`
	Threats    []domain.ThreatVector `json:"threats"`
	Phases     []domain.RolloutPhase `json:"phases"`
	Regions    []layout.Region       `json:"regions"`
	Modes      []string              `json:"modes"`
}

type LayoutResponse struct {
	ID       string       `json:"id"`
	Position layout.Point `json:"position"`
	Known    bool         `json:"known"`
}

type SnapshotResponse struct {
	Snapshot highlight.Snapshot `json:"snapshot"`
	Counts   highlight.Counts   `json:"counts"`
	Banner   string             `json:"banner,omitempty"`
}
