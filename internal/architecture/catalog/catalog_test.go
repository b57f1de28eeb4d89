package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
)

func TestBuiltinValidates(t *testing.T) {
	cat := Builtin()
	require.NoError(t, Validate(cat))

	assert.Len(t, cat.Components, 18)
	assert.Len(t, cat.Flows, 15)
	assert.Len(t, cat.Threats, 2)
	assert.Len(t, cat.Phases, 5)
}

func TestBuiltinLookups(t *testing.T) {
	cat := Builtin()

	waf, ok := cat.Component("aws-waf")
	require.True(t, ok)
	assert.Equal(t, domain.ProviderAWS, waf.Provider)
	assert.Equal(t, "Shield", waf.Icon)

	_, ok = cat.Component("nope")
	assert.False(t, ok)

	ddos, ok := cat.Threat("threat-ddos")
	require.True(t, ok)
	assert.Equal(t, "attack-1", ddos.FlowID)

	assert.Equal(t, []string{"default", "dataflow", "threat-ddos", "threat-sqli"}, cat.Modes())
}

func TestBuiltinReturnsFreshCopy(t *testing.T) {
	a := Builtin()
	a.Components[0].Name = "changed"
	b := Builtin()
	assert.Equal(t, "Enterprise SIEM/SOAR", b.Components[0].Name)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cat := domain.NewCatalog(
		[]domain.Component{
			{ID: "a", Name: "A", Provider: domain.ProviderAWS, Domain: domain.DomainNetwork},
			{ID: "a", Name: "A again", Provider: "ORACLE", Domain: domain.DomainNetwork},
		},
		[]domain.Flow{
			{ID: "f1", From: "a", To: "ghost", Type: domain.FlowTraffic, ActiveInModes: []string{"default", "threat-x"}},
		},
		[]domain.ThreatVector{
			{ID: "threat-y", Name: "Y", Severity: domain.SeverityHigh, FlowID: "f1", AffectedComponents: []string{"b"}},
		},
		[]domain.RolloutPhase{
			{ID: "p1", Phase: "Phase 1", Title: "T", RelatedComponents: []string{"missing"}},
		},
	)

	err := Validate(cat)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)

	msg := err.Error()
	assert.Contains(t, msg, `duplicate component "a"`)
	assert.Contains(t, msg, "Provider")
	assert.Contains(t, msg, `unknown target component "ghost"`)
	assert.Contains(t, msg, `unknown mode "threat-x"`)
	assert.Contains(t, msg, `unknown affected component "b"`)
	assert.Contains(t, msg, `flow "f1" is not active in the threat mode`)
	assert.Contains(t, msg, `unknown related component "missing"`)
}

func TestValidateNil(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), domain.ErrInvalidCatalog)
}

func TestYAMLRoundTripKeepsBuiltin(t *testing.T) {
	b, err := Marshal(Builtin())
	require.NoError(t, err)
	assert.Contains(t, string(b), "activeInModes:")

	cat, err := LoadBytes(b)
	require.NoError(t, err)
	require.NoError(t, Validate(cat))

	db, ok := cat.Component("azure-db")
	require.True(t, ok)
	assert.Equal(t, domain.DomainDataProtection, db.Domain)
}

func TestLoad(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)
	assert.Len(t, cat.Components, 18)

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	doc := `
components:
  - id: edge
    name: Edge
    provider: AWS
    domain: Network Security
  - id: app
    name: App
    provider: AWS
    domain: Endpoint Security
flows:
  - id: f
    from: edge
    to: app
    type: TRAFFIC
    activeInModes: [default]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cat, err = Load(path)
	require.NoError(t, err)
	f, ok := cat.Flow("f")
	require.True(t, ok)
	assert.True(t, f.ActiveIn("default"))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("flows:\n  - id: f\n    from: x\n    to: y\n    type: TRAFFIC\n    activeInModes: [default]\n"), 0o600))
	_, err = Load(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
