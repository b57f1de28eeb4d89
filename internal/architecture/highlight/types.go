package highlight

// Regime names the dimming rule that produced a snapshot. Regimes are
// mutually exclusive and checked in the order plan, focus, threat.
type Regime string

const (
	RegimeNone   Regime = "none"
	RegimePlan   Regime = "plan"
	RegimeFocus  Regime = "focus"
	RegimeThreat Regime = "threat"
)

type Emphasis string

const (
	EmphasisHidden        Emphasis = "hidden"
	EmphasisDefault       Emphasis = "default"
	EmphasisFull          Emphasis = "full"
	EmphasisHeavilyDimmed Emphasis = "heavily-dimmed"
)

// Opacity is the stroke opacity a renderer should use for the emphasis.
func (e Emphasis) Opacity() float64 {
	switch e {
	case EmphasisFull:
		return 1
	case EmphasisDefault:
		return 0.6
	case EmphasisHeavilyDimmed:
		return 0.05
	default:
		return 0
	}
}

const (
	componentOpacity       = 1.0
	dimmedComponentOpacity = 0.15
)

// Input is everything the classification depends on besides the catalog.
// Empty strings mean "none".
type Input struct {
	Mode             string   `json:"mode"`
	SelectedID       string   `json:"selected_id,omitempty"`
	HoveredID        string   `json:"hovered_id,omitempty"`
	PlanHighlightIDs []string `json:"plan_highlight_ids,omitempty"`
}

// EffectiveFocus is the hovered component if any, else the selected one.
func (in Input) EffectiveFocus() string {
	if in.HoveredID != "" {
		return in.HoveredID
	}
	return in.SelectedID
}

type FlowState struct {
	ID             string   `json:"id"`
	Eligible       bool     `json:"eligible"`
	RelatedToFocus bool     `json:"related_to_focus"`
	Emphasis       Emphasis `json:"emphasis"`
	Dimmed         bool     `json:"dimmed"`
	Animated       bool     `json:"animated"`
	Pulsing        bool     `json:"pulsing"`
	Opacity        float64  `json:"opacity"`
}

type ComponentState struct {
	ID             string  `json:"id"`
	RelatedToFocus bool    `json:"related_to_focus"`
	Dimmed         bool    `json:"dimmed"`
	Focused        bool    `json:"focused"`
	Selected       bool    `json:"selected"`
	Hovered        bool    `json:"hovered"`
	ThreatAlert    bool    `json:"threat_alert"`
	Glowing        bool    `json:"glowing"`
	Opacity        float64 `json:"opacity"`
}

// Snapshot is the immutable result of one classification. Flows and
// Components follow catalog order.
type Snapshot struct {
	Mode       string           `json:"mode"`
	Focus      string           `json:"focus,omitempty"`
	Regime     Regime           `json:"regime"`
	ThreatMode bool             `json:"threat_mode"`
	Flows      []FlowState      `json:"flows"`
	Components []ComponentState `json:"components"`
}

func (s Snapshot) Flow(id string) (FlowState, bool) {
	for _, f := range s.Flows {
		if f.ID == id {
			return f, true
		}
	}
	return FlowState{}, false
}

func (s Snapshot) Component(id string) (ComponentState, bool) {
	for _, c := range s.Components {
		if c.ID == id {
			return c, true
		}
	}
	return ComponentState{}, false
}

// VisibleFlows returns the eligible flows, the only ones a renderer draws.
func (s Snapshot) VisibleFlows() []FlowState {
	out := make([]FlowState, 0, len(s.Flows))
	for _, f := range s.Flows {
		if f.Eligible {
			out = append(out, f)
		}
	}
	return out
}

type Counts struct {
	VisibleFlows      int `json:"visible_flows"`
	DimmedFlows       int `json:"dimmed_flows"`
	DimmedComponents  int `json:"dimmed_components"`
	RelatedComponents int `json:"related_components"`
	ThreatAlerts      int `json:"threat_alerts"`
}

func (s Snapshot) Counts() Counts {
	var c Counts
	for _, f := range s.Flows {
		if f.Eligible {
			c.VisibleFlows++
		}
		if f.Dimmed {
			c.DimmedFlows++
		}
	}
	for _, comp := range s.Components {
		if comp.Dimmed {
			c.DimmedComponents++
		}
		if comp.RelatedToFocus {
			c.RelatedComponents++
		}
		if comp.ThreatAlert {
			c.ThreatAlerts++
		}
	}
	return c
}
