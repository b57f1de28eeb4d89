// Package shell owns the view focus state and the reducer that applies
// user intents to it.
package shell

import (
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/highlight"
)

type Tab string

const (
	TabSimulation Tab = "simulation"
	TabPlan       Tab = "plan"
)

var ErrInvalidTab = errors.New("invalid tab")

func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabSimulation, TabPlan:
		return Tab(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTab, s)
	}
}

// State is the view focus state. Empty ids mean "none". Every reducer
// method returns a new State and leaves the receiver untouched.
type State struct {
	Tab            Tab    `json:"tab"`
	Mode           string `json:"mode"`
	SelectedID     string `json:"selected_component_id,omitempty"`
	HoveredID      string `json:"hovered_component_id,omitempty"`
	HoveredPhaseID string `json:"hovered_phase_id,omitempty"`
}

func NewState() State {
	return State{Tab: TabSimulation, Mode: domain.ModeDefault}
}

func (s State) SelectComponent(id string) State {
	s.SelectedID = id
	return s
}

func (s State) ClearSelection() State {
	s.SelectedID = ""
	return s
}

// HoverComponent sets the hovered component; "" ends the hover.
func (s State) HoverComponent(id string) State {
	s.HoveredID = id
	return s
}

// SetMode switches the view mode. An empty mode means default.
func (s State) SetMode(mode string) State {
	if mode == "" {
		mode = domain.ModeDefault
	}
	s.Mode = mode
	return s
}

// SetTab switches the sidebar tab. Entering the plan tab resets the mode
// to default and drops any hovered phase.
func (s State) SetTab(tab Tab) State {
	s.Tab = tab
	if tab == TabPlan {
		s.Mode = domain.ModeDefault
		s.HoveredPhaseID = ""
	}
	return s
}

// HoverPhase sets the hovered rollout phase; "" ends the hover. Phases are
// only listed on the plan tab, so the call is ignored elsewhere.
func (s State) HoverPhase(id string) State {
	if s.Tab != TabPlan {
		return s
	}
	s.HoveredPhaseID = id
	return s
}

// PlanHighlightIDs returns the components related to the hovered phase.
// Unknown or absent phases yield nil.
func (s State) PlanHighlightIDs(cat *domain.Catalog) []string {
	if s.HoveredPhaseID == "" {
		return nil
	}
	p, ok := cat.Phase(s.HoveredPhaseID)
	if !ok {
		return nil
	}
	return append([]string(nil), p.RelatedComponents...)
}

// HighlightInput is the classification input for this state.
func (s State) HighlightInput(cat *domain.Catalog) highlight.Input {
	return highlight.Input{
		Mode:             s.Mode,
		SelectedID:       s.SelectedID,
		HoveredID:        s.HoveredID,
		PlanHighlightIDs: s.PlanHighlightIDs(cat),
	}
}

// HoveredPhaseTitle is the title shown in the "Visualizing" banner, or "".
func (s State) HoveredPhaseTitle(cat *domain.Catalog) string {
	if s.Tab != TabPlan || s.HoveredPhaseID == "" {
		return ""
	}
	p, ok := cat.Phase(s.HoveredPhaseID)
	if !ok {
		return ""
	}
	return p.Title
}

// StateFor builds a one-off state for stateless callers through the same
// reducers a session uses. A phase switches to the plan tab, which resets
// the mode to default.
func StateFor(mode, selected, hovered, phase string) State {
	s := NewState().SetMode(mode).SelectComponent(selected).HoverComponent(hovered)
	if phase != "" {
		s = s.SetTab(TabPlan).HoverPhase(phase)
	}
	return s
}
