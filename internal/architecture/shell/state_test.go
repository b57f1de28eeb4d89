package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/catalog"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/highlight"
)

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, TabSimulation, s.Tab)
	assert.Equal(t, domain.ModeDefault, s.Mode)
	assert.Empty(t, s.SelectedID)
}

func TestSwitchingToPlanResetsModeAndPhase(t *testing.T) {
	s := NewState().SetMode("threat-sqli")
	s.HoveredPhaseID = "phase-3"

	next := s.SetTab(TabPlan)
	assert.Equal(t, domain.ModeDefault, next.Mode)
	assert.Empty(t, next.HoveredPhaseID)
	assert.Equal(t, TabPlan, next.Tab)

	// the receiver is not modified
	assert.Equal(t, "threat-sqli", s.Mode)
}

func TestSwitchingToSimulationHasNoSideEffect(t *testing.T) {
	s := NewState().SetTab(TabPlan).HoverPhase("phase-1").SelectComponent("aws-waf")
	next := s.SetTab(TabSimulation)
	assert.Equal(t, "phase-1", next.HoveredPhaseID)
	assert.Equal(t, "aws-waf", next.SelectedID)
	assert.Equal(t, domain.ModeDefault, next.Mode)
}

func TestHoverPhaseOnlyOnPlanTab(t *testing.T) {
	s := NewState().HoverPhase("phase-2")
	assert.Empty(t, s.HoveredPhaseID)

	s = s.SetTab(TabPlan).HoverPhase("phase-2")
	assert.Equal(t, "phase-2", s.HoveredPhaseID)
	assert.Empty(t, s.HoverPhase("").HoveredPhaseID)
}

func TestPlanHighlightIDs(t *testing.T) {
	cat := catalog.Builtin()
	s := NewState().SetTab(TabPlan).HoverPhase("phase-2")

	assert.Equal(t, []string{"aws-waf", "gcp-armor", "azure-fw"}, s.PlanHighlightIDs(cat))
	assert.Equal(t, "Perimeter & Edge Security", s.HoveredPhaseTitle(cat))

	ids := s.PlanHighlightIDs(cat)
	ids[0] = "mutated"
	p, _ := cat.Phase("phase-2")
	assert.Equal(t, "aws-waf", p.RelatedComponents[0])

	assert.Nil(t, NewState().PlanHighlightIDs(cat))
	assert.Nil(t, s.HoverPhase("phase-99").PlanHighlightIDs(cat))
	assert.Empty(t, s.HoverPhase("phase-99").HoveredPhaseTitle(cat))
}

func TestHighlightInputUsesHoverOverSelection(t *testing.T) {
	cat := catalog.Builtin()
	s := NewState().SelectComponent("siem-core").HoverComponent("aws-kms")

	in := s.HighlightInput(cat)
	assert.Equal(t, "aws-kms", in.EffectiveFocus())

	in = s.HoverComponent("").HighlightInput(cat)
	assert.Equal(t, "siem-core", in.EffectiveFocus())
}

func TestSetModeEmptyMeansDefault(t *testing.T) {
	assert.Equal(t, domain.ModeDefault, NewState().SetMode("dataflow").SetMode("").Mode)
}

func TestClearSelection(t *testing.T) {
	s := NewState().SelectComponent("aws-waf").ClearSelection()
	assert.Empty(t, s.SelectedID)
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab("plan")
	require.NoError(t, err)
	assert.Equal(t, TabPlan, tab)

	_, err = ParseTab("settings")
	assert.ErrorIs(t, err, ErrInvalidTab)
}

func TestStateFor(t *testing.T) {
	cat := catalog.Builtin()

	s := StateFor("", "aws-waf", "", "")
	assert.Equal(t, TabSimulation, s.Tab)
	assert.Equal(t, domain.ModeDefault, s.Mode)
	assert.Equal(t, "aws-waf", s.SelectedID)

	s = StateFor("dataflow", "", "", "phase-3")
	assert.Equal(t, TabPlan, s.Tab)
	assert.Equal(t, domain.ModeDefault, s.Mode)
	assert.NotEmpty(t, s.PlanHighlightIDs(cat))
	assert.NotEmpty(t, s.HoveredPhaseTitle(cat))

	// matches what a session reaches by switching tab then hovering
	want := NewState().SetMode("threat-ddos").SetTab(TabPlan).HoverPhase("phase-2")
	s = StateFor("threat-ddos", "", "", "phase-2")
	assert.Equal(t, want, s)
	snap := highlight.Classify(cat, s.HighlightInput(cat))
	assert.Equal(t, highlight.RegimePlan, snap.Regime)
	assert.False(t, snap.ThreatMode)
}
