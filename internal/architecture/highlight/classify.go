// Package highlight decides, for one view state, which flows are drawn and
// which components and flows are emphasised or dimmed.
package highlight

import "github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"

// Classify computes the snapshot for in. It is total: unknown modes behave
// like "default" and unknown ids match nothing.
func Classify(cat *domain.Catalog, in Input) Snapshot {
	focus := in.EffectiveFocus()
	plan := make(map[string]bool, len(in.PlanHighlightIDs))
	for _, id := range in.PlanHighlightIDs {
		plan[id] = true
	}
	planMode := len(plan) > 0
	threatMode := domain.IsThreatMode(in.Mode)

	snap := Snapshot{
		Mode:       in.Mode,
		Focus:      focus,
		Regime:     regime(planMode, focus, threatMode),
		ThreatMode: threatMode,
		Flows:      make([]FlowState, 0, len(cat.Flows)),
		Components: make([]ComponentState, 0, len(cat.Components)),
	}

	// touched: endpoints of any eligible flow. related: focus plus the far
	// end of every eligible flow touching the focus.
	touched := map[string]bool{}
	related := map[string]bool{}
	if focus != "" && !planMode {
		related[focus] = true
	}

	for _, f := range cat.Flows {
		fs := FlowState{ID: f.ID, Eligible: f.ActiveIn(in.Mode)}
		if !fs.Eligible {
			fs.Emphasis = EmphasisHidden
			snap.Flows = append(snap.Flows, fs)
			continue
		}
		touched[f.From] = true
		touched[f.To] = true

		fs.RelatedToFocus = focus != "" && !planMode && f.Touches(focus)
		if fs.RelatedToFocus {
			related[f.Other(focus)] = true
		}

		switch {
		case planMode:
			fs.Emphasis = EmphasisHeavilyDimmed
			if plan[f.From] && plan[f.To] {
				fs.Emphasis = EmphasisFull
			}
		case focus == "":
			fs.Emphasis = EmphasisDefault
		case fs.RelatedToFocus:
			fs.Emphasis = EmphasisFull
		default:
			fs.Emphasis = EmphasisHeavilyDimmed
		}
		fs.Dimmed = fs.Emphasis == EmphasisHeavilyDimmed
		fs.Animated = !fs.Dimmed
		fs.Pulsing = fs.Animated && in.Mode == domain.ModeDataflow
		fs.Opacity = fs.Emphasis.Opacity()
		snap.Flows = append(snap.Flows, fs)
	}

	for _, c := range cat.Components {
		cs := ComponentState{
			ID:             c.ID,
			RelatedToFocus: related[c.ID],
			Focused:        !planMode && focus != "" && c.ID == focus,
			Selected:       in.SelectedID != "" && c.ID == in.SelectedID,
			Hovered:        in.HoveredID != "" && c.ID == in.HoveredID,
		}

		switch snap.Regime {
		case RegimePlan:
			cs.Dimmed = !plan[c.ID]
		case RegimeFocus:
			cs.Dimmed = !cs.RelatedToFocus
		case RegimeThreat:
			cs.Dimmed = c.Provider != domain.ProviderExternal && !touched[c.ID]
		}

		cs.ThreatAlert = threatMode && !cs.Dimmed && c.Provider != domain.ProviderExternal
		cs.Glowing = cs.Hovered || cs.Selected || (!cs.Dimmed && (planMode || in.Mode == domain.ModeDataflow))
		cs.Opacity = componentOpacity
		if cs.Dimmed {
			cs.Opacity = dimmedComponentOpacity
		}
		snap.Components = append(snap.Components, cs)
	}

	return snap
}

func regime(planMode bool, focus string, threatMode bool) Regime {
	switch {
	case planMode:
		return RegimePlan
	case focus != "":
		return RegimeFocus
	case threatMode:
		return RegimeThreat
	default:
		return RegimeNone
	}
}
