package service

import (
	"time"

	archdomain "github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/highlight"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/insight"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/layout"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/shell"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/viewport"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/domain"
)

// View is everything a renderer needs to draw one session.
type View struct {
	ID         string             `json:"id"`
	State      shell.State        `json:"state"`
	Viewport   viewport.Viewport  `json:"viewport"`
	Snapshot   highlight.Snapshot `json:"snapshot"`
	Tooltip    *Tooltip           `json:"tooltip,omitempty"`
	Selected   *insight.Detail    `json:"selected,omitempty"`
	Insight    insight.Panel      `json:"insight"`
	PhaseTitle string             `json:"phase_title,omitempty"`
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// Tooltip is the hovered component and the screen point its label hangs from.
type Tooltip struct {
	ComponentID string       `json:"component_id"`
	Name        string       `json:"name"`
	Anchor      layout.Point `json:"anchor"`
}

func newView(cat *archdomain.Catalog, s *domain.Session) *View {
	v := &View{
		ID:         s.ID,
		State:      s.State,
		Viewport:   s.Viewport,
		Snapshot:   highlight.Classify(cat, s.State.HighlightInput(cat)),
		Insight:    s.Insight,
		PhaseTitle: s.State.HoveredPhaseTitle(cat),
		Width:      s.Width,
		Height:     s.Height,
		UpdatedAt:  s.UpdatedAt,
	}
	if c, ok := cat.Component(s.State.HoveredID); ok {
		v.Tooltip = &Tooltip{
			ComponentID: c.ID,
			Name:        c.Name,
			Anchor:      s.Viewport.TooltipAnchor(layout.Position(c.ID)),
		}
	}
	if d, ok := insight.NewDetail(cat, s.State.SelectedID); ok {
		v.Selected = &d
	}
	return v
}
