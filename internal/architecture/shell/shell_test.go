package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/catalog"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/highlight"
)

func TestShellRecomputesAfterEveryIntent(t *testing.T) {
	var seen []highlight.Regime
	sh := New(catalog.Builtin(), WithObserver(func(_ State, snap highlight.Snapshot) {
		seen = append(seen, snap.Regime)
	}))
	assert.Equal(t, highlight.RegimeNone, sh.Snapshot().Regime)

	require.NoError(t, sh.SelectComponent("aws-waf"))
	assert.Equal(t, highlight.RegimeFocus, sh.Snapshot().Regime)

	sh.ClearSelection()
	sh.SetMode("threat-ddos")
	assert.Equal(t, highlight.RegimeThreat, sh.Snapshot().Regime)

	sh.SetTab(TabPlan)
	assert.Equal(t, domain.ModeDefault, sh.State().Mode)

	sh.HoverPhase("phase-2")
	assert.Equal(t, highlight.RegimePlan, sh.Snapshot().Regime)

	assert.Equal(t, []highlight.Regime{
		highlight.RegimeNone,
		highlight.RegimeFocus,
		highlight.RegimeNone,
		highlight.RegimeThreat,
		highlight.RegimeNone,
		highlight.RegimePlan,
	}, seen)
}

func TestShellPhaseHoverDimsOutsidePlan(t *testing.T) {
	sh := New(catalog.Builtin())
	sh.SetTab(TabPlan)
	sh.HoverPhase("phase-2")

	workload, ok := sh.Snapshot().Component("aws-workload")
	require.True(t, ok)
	assert.True(t, workload.Dimmed)

	waf, ok := sh.Snapshot().Component("aws-waf")
	require.True(t, ok)
	assert.False(t, waf.Dimmed)

	sh.HoverPhase("")
	assert.Equal(t, highlight.RegimeNone, sh.Snapshot().Regime)
}

func TestShellRejectsUnknownSelection(t *testing.T) {
	sh := New(catalog.Builtin())
	err := sh.SelectComponent("nope")
	assert.ErrorIs(t, err, domain.ErrComponentNotFound)
	assert.Empty(t, sh.State().SelectedID)

	_, ok := sh.SelectedComponent()
	assert.False(t, ok)

	require.NoError(t, sh.SelectComponent("gcp-kms"))
	c, ok := sh.SelectedComponent()
	require.True(t, ok)
	assert.Equal(t, "Cloud KMS", c.Name)
}

func TestShellHoverPreviewsOverSelection(t *testing.T) {
	sh := New(catalog.Builtin())
	require.NoError(t, sh.SelectComponent("siem-core"))
	sh.HoverComponent("azure-db")
	assert.Equal(t, "azure-db", sh.Snapshot().Focus)

	sh.HoverComponent("")
	assert.Equal(t, "siem-core", sh.Snapshot().Focus)
}

func TestWithState(t *testing.T) {
	st := NewState().SetMode("dataflow")
	sh := New(catalog.Builtin(), WithState(st))
	assert.Equal(t, "dataflow", sh.Snapshot().Mode)
}
