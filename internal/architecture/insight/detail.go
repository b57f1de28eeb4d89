package insight

import (
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/icons"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/layout"
)

// Detail is the static half of the panel.
type Detail struct {
	domain.Component
	Glyph    string        `json:"glyph"`
	Position layout.Point  `json:"position"`
	Flows    []FlowSummary `json:"flows"`
	Threats  []string      `json:"threats,omitempty"`
	Phases   []string      `json:"phases,omitempty"`
}

// FlowSummary is one flow touching the component, seen from its side.
type FlowSummary struct {
	ID        string          `json:"id"`
	Direction string          `json:"direction"`
	Peer      string          `json:"peer"`
	Type      domain.FlowType `json:"type"`
	Label     string          `json:"label"`
}

// NewDetail builds the detail for id, reporting false for unknown ids.
func NewDetail(cat *domain.Catalog, id string) (Detail, bool) {
	c, ok := cat.Component(id)
	if !ok {
		return Detail{}, false
	}
	d := Detail{
		Component: c,
		Glyph:     icons.Glyph(c.Icon),
		Position:  layout.Position(c.ID),
		Flows:     []FlowSummary{},
	}
	for _, f := range cat.Flows {
		if !f.Touches(id) {
			continue
		}
		dir := "out"
		if f.To == id {
			dir = "in"
		}
		d.Flows = append(d.Flows, FlowSummary{ID: f.ID, Direction: dir, Peer: f.Other(id), Type: f.Type, Label: f.Label})
	}
	for _, t := range cat.Threats {
		for _, a := range t.AffectedComponents {
			if a == id {
				d.Threats = append(d.Threats, t.ID)
				break
			}
		}
	}
	for _, p := range cat.Phases {
		for _, r := range p.RelatedComponents {
			if r == id {
				d.Phases = append(d.Phases, p.ID)
				break
			}
		}
	}
	return d, true
}
