package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/catalog"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/highlight"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/summarize"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func useMockSummarizer(t *testing.T) {
	t.Helper()
	prev := summarizerFactory
	summarizerFactory = func(*cobra.Command) (summarize.Summarizer, error) {
		return summarize.NewMock(0), nil
	}
	t.Cleanup(func() { summarizerFactory = prev })
}

func TestSnapshotJSON(t *testing.T) {
	out, err := run(t, "snapshot", "--mode", "threat-ddos", "--json")
	require.NoError(t, err)

	var got snapshotOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, highlight.RegimeThreat, got.Snapshot.Regime)
	assert.True(t, got.Snapshot.ThreatMode)
	assert.Positive(t, got.Counts.ThreatAlerts)
}

func TestSnapshotPhaseTable(t *testing.T) {
	out, err := run(t, "snapshot", "--phase", "phase-1")
	require.NoError(t, err)
	assert.Contains(t, out, "regime plan")
	assert.Contains(t, out, "Visualizing: Landing Zone Foundation")
	assert.Contains(t, out, "COMPONENT")
	assert.Contains(t, out, "dimmed")
}

func TestDotToStdoutAndFile(t *testing.T) {
	out, err := run(t, "dot", "--mode", "threat-sqli")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph G {"))
	assert.Contains(t, out, "Sentinel - threat-sqli")

	path := filepath.Join(t.TempDir(), "plan.dot")
	_, err = run(t, "dot", "--phase", "phase-1", "-o", path)
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Visualizing: Landing Zone Foundation")
}

func TestAnalyze(t *testing.T) {
	useMockSummarizer(t)

	out, err := run(t, "analyze", "gcp-armor")
	require.NoError(t, err)
	assert.Contains(t, out, "(Mock) Cloud Armor")
	assert.Contains(t, out, "Business value")

	out, err = run(t, "analyze", "gcp-armor", "--json")
	require.NoError(t, err)
	var body struct {
		ComponentID string             `json:"component_id"`
		Provider    string             `json:"provider"`
		Analysis    summarize.Analysis `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "mock", body.Provider)
	assert.True(t, body.Analysis.Complete())

	_, err = run(t, "analyze", "nope")
	assert.ErrorIs(t, err, domain.ErrComponentNotFound)

	_, err = run(t, "analyze")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "18 components, 15 flows, 2 threats, 5 phases")

	cat := catalog.Builtin()
	cat.Flows[0].To = "ghost"
	b, err := catalog.Marshal(cat)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, b, 0o644))

	out, err = run(t, "--catalog", path, "validate")
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	assert.Contains(t, out, "ghost")

	// other commands refuse an invalid catalog
	_, err = run(t, "--catalog", path, "snapshot")
	assert.Error(t, err)
}

func TestValidateDumpRoundTrips(t *testing.T) {
	out, err := run(t, "validate", "--dump")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))
	out, err = run(t, "--catalog", path, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "18 components")
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "validate")
	assert.Error(t, err)
}
