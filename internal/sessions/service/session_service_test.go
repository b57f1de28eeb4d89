package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/catalog"
	archdomain "github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/highlight"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/insight"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/layout"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/shell"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/viewport"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/metrics"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/repository"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/summarize"
)

// gatedSummarizer blocks every call until release is closed.
type gatedSummarizer struct {
	release chan struct{}
	err     error

	mu    sync.Mutex
	calls []string
}

func newGated() *gatedSummarizer {
	return &gatedSummarizer{release: make(chan struct{})}
}

func (g *gatedSummarizer) Name() string { return "gated" }

func (g *gatedSummarizer) Summarize(ctx context.Context, c archdomain.Component) (summarize.Analysis, error) {
	g.mu.Lock()
	g.calls = append(g.calls, c.ID)
	g.mu.Unlock()
	select {
	case <-g.release:
	case <-ctx.Done():
		return summarize.Analysis{}, ctx.Err()
	}
	if g.err != nil {
		return summarize.Analysis{}, g.err
	}
	return summarize.MockAnalysis(c), nil
}

func (g *gatedSummarizer) Calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

func newService(t *testing.T, s summarize.Summarizer) *SessionService {
	t.Helper()
	store := repository.NewMemoryStore(time.Hour)
	t.Cleanup(func() { _ = store.Close() })
	return NewSessionService(store, catalog.Builtin(), s, metrics.NewRegistry())
}

func TestCreateFitsViewport(t *testing.T) {
	svc := newService(t, summarize.NewMock(0))
	ctx := context.Background()

	v, err := svc.Create(ctx, 1000, 800)
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, viewport.FitScale, v.Viewport.Scale)
	assert.InDelta(t, 500-600*0.8, v.Viewport.OffsetX, 1e-9)
	assert.InDelta(t, 400-350*0.8, v.Viewport.OffsetY, 1e-9)
	assert.Equal(t, shell.TabSimulation, v.State.Tab)
	assert.Equal(t, highlight.RegimeNone, v.Snapshot.Regime)
	assert.Equal(t, insight.StatusIdle, v.Insight.Status)

	got, err := svc.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSelectAndHover(t *testing.T) {
	svc := newService(t, summarize.NewMock(0))
	ctx := context.Background()
	v, err := svc.Create(ctx, 0, 0)
	require.NoError(t, err)

	_, err = svc.Select(ctx, v.ID, "nope")
	assert.ErrorIs(t, err, archdomain.ErrComponentNotFound)

	v, err = svc.Select(ctx, v.ID, "aws-waf")
	require.NoError(t, err)
	require.NotNil(t, v.Selected)
	assert.Equal(t, "aws-waf", v.Selected.ID)
	assert.Equal(t, highlight.RegimeFocus, v.Snapshot.Regime)
	assert.Equal(t, "aws-waf", v.Insight.ComponentID)
	gen := v.Insight.Generation

	// reselecting keeps the panel
	v, err = svc.Select(ctx, v.ID, "aws-waf")
	require.NoError(t, err)
	assert.Equal(t, gen, v.Insight.Generation)

	v, err = svc.Hover(ctx, v.ID, "azure-db")
	require.NoError(t, err)
	assert.Equal(t, "azure-db", v.Snapshot.Focus)
	require.NotNil(t, v.Tooltip)
	assert.Equal(t, "azure-db", v.Tooltip.ComponentID)
	screen := v.Viewport.ToScreen(layout.Position("azure-db"))
	assert.InDelta(t, screen.Y-40*v.Viewport.Scale, v.Tooltip.Anchor.Y, 1e-9)

	v, err = svc.Hover(ctx, v.ID, "")
	require.NoError(t, err)
	assert.Nil(t, v.Tooltip)
	assert.Equal(t, "aws-waf", v.Snapshot.Focus)

	v, err = svc.ClearSelection(ctx, v.ID)
	require.NoError(t, err)
	assert.Nil(t, v.Selected)
	assert.False(t, v.Insight.Visible())
	assert.Greater(t, v.Insight.Generation, gen)
}

func TestModeAndTab(t *testing.T) {
	svc := newService(t, summarize.NewMock(0))
	ctx := context.Background()
	v, err := svc.Create(ctx, 0, 0)
	require.NoError(t, err)

	v, err = svc.SetMode(ctx, v.ID, "threat-ddos")
	require.NoError(t, err)
	assert.True(t, v.Snapshot.ThreatMode)
	assert.Equal(t, highlight.RegimeThreat, v.Snapshot.Regime)

	_, err = svc.SetTab(ctx, v.ID, "bogus")
	assert.ErrorIs(t, err, shell.ErrInvalidTab)

	v, err = svc.SetTab(ctx, v.ID, "plan")
	require.NoError(t, err)
	assert.Equal(t, archdomain.ModeDefault, v.State.Mode)

	v, err = svc.HoverPhase(ctx, v.ID, "phase-1")
	require.NoError(t, err)
	assert.Equal(t, highlight.RegimePlan, v.Snapshot.Regime)
	assert.Equal(t, "Landing Zone Foundation", v.PhaseTitle)

	dot, err := svc.DOT(ctx, v.ID)
	require.NoError(t, err)
	assert.Contains(t, dot, "Visualizing: Landing Zone Foundation")

	v, err = svc.SetTab(ctx, v.ID, "simulation")
	require.NoError(t, err)
	assert.Empty(t, v.PhaseTitle)
}

func TestGestures(t *testing.T) {
	svc := newService(t, summarize.NewMock(0))
	ctx := context.Background()
	v, err := svc.Create(ctx, 1200, 700)
	require.NoError(t, err)
	start := v.Viewport

	steps := []domain.Gesture{
		{Type: domain.GesturePointerDown, X: 100, Y: 100},
		{Type: domain.GesturePointerMove, X: 130, Y: 80},
		{Type: domain.GesturePointerUp},
	}
	for _, g := range steps {
		v, err = svc.Gesture(ctx, v.ID, g)
		require.NoError(t, err)
	}
	assert.InDelta(t, start.OffsetX+30, v.Viewport.OffsetX, 1e-9)
	assert.InDelta(t, start.OffsetY-20, v.Viewport.OffsetY, 1e-9)
	assert.False(t, v.Viewport.Dragging)

	v, err = svc.Gesture(ctx, v.ID, domain.Gesture{Type: domain.GestureZoomIn})
	require.NoError(t, err)
	assert.InDelta(t, 0.9, v.Viewport.Scale, 1e-9)

	v, err = svc.Gesture(ctx, v.ID, domain.Gesture{Type: domain.GestureWheel, DeltaY: -100000})
	require.NoError(t, err)
	assert.Equal(t, viewport.MaxScale, v.Viewport.Scale)

	v, err = svc.Gesture(ctx, v.ID, domain.Gesture{Type: domain.GestureReset, Width: 800, Height: 600})
	require.NoError(t, err)
	assert.Equal(t, viewport.FitScale, v.Viewport.Scale)
	assert.Equal(t, 800.0, v.Width)
	assert.InDelta(t, 400-600*0.8, v.Viewport.OffsetX, 1e-9)

	_, err = svc.Gesture(ctx, v.ID, domain.Gesture{Type: "pinch"})
	assert.ErrorIs(t, err, domain.ErrInvalidGesture)
}

func TestRequestInsightCompletes(t *testing.T) {
	gated := newGated()
	svc := newService(t, gated)
	ctx := context.Background()
	v, err := svc.Create(ctx, 0, 0)
	require.NoError(t, err)

	_, err = svc.RequestInsight(ctx, v.ID)
	assert.ErrorIs(t, err, domain.ErrNoSelection)

	_, err = svc.Select(ctx, v.ID, "aws-waf")
	require.NoError(t, err)

	v, err = svc.RequestInsight(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, insight.StatusLoading, v.Insight.Status)

	// a second request for the same selection does not call again
	v, err = svc.RequestInsight(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, insight.StatusLoading, v.Insight.Status)

	close(gated.release)
	svc.Wait()

	panel, err := svc.Insight(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, insight.StatusReady, panel.Status)
	require.NotNil(t, panel.Analysis)
	assert.True(t, panel.Analysis.Complete())
	assert.Equal(t, []string{"aws-waf"}, gated.Calls())
}

func TestRequestInsightDropsStaleResult(t *testing.T) {
	gated := newGated()
	svc := newService(t, gated)
	ctx := context.Background()
	v, err := svc.Create(ctx, 0, 0)
	require.NoError(t, err)

	_, err = svc.Select(ctx, v.ID, "aws-waf")
	require.NoError(t, err)
	_, err = svc.RequestInsight(ctx, v.ID)
	require.NoError(t, err)

	_, err = svc.ClearSelection(ctx, v.ID)
	require.NoError(t, err)
	_, err = svc.Select(ctx, v.ID, "aws-waf")
	require.NoError(t, err)

	close(gated.release)
	svc.Wait()

	panel, err := svc.Insight(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, insight.StatusIdle, panel.Status)
	assert.Nil(t, panel.Analysis)
}

func TestRequestInsightFailureIsTerminal(t *testing.T) {
	gated := newGated()
	gated.err = errors.New("boom")
	svc := newService(t, gated)
	ctx := context.Background()
	v, err := svc.Create(ctx, 0, 0)
	require.NoError(t, err)
	_, err = svc.Select(ctx, v.ID, "azure-db")
	require.NoError(t, err)

	_, err = svc.RequestInsight(ctx, v.ID)
	require.NoError(t, err)
	close(gated.release)
	svc.Wait()

	panel, err := svc.Insight(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, insight.StatusFailed, panel.Status)
	assert.Contains(t, panel.Error, insight.FailureMessage)

	v, err = svc.RequestInsight(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, insight.StatusFailed, v.Insight.Status)
	assert.Len(t, gated.Calls(), 1)
}

func TestRequestInsightSurvivesCancelledRequest(t *testing.T) {
	svc := newService(t, summarize.NewMock(10*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	v, err := svc.Create(ctx, 0, 0)
	require.NoError(t, err)
	_, err = svc.Select(ctx, v.ID, "gcp-kms")
	require.NoError(t, err)
	_, err = svc.RequestInsight(ctx, v.ID)
	require.NoError(t, err)
	cancel()
	svc.Wait()

	panel, err := svc.Insight(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, insight.StatusReady, panel.Status)
}

func TestSubscribeStreamsViews(t *testing.T) {
	svc := newService(t, summarize.NewMock(0))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	v, err := svc.Create(ctx, 0, 0)
	require.NoError(t, err)

	_, err = svc.Subscribe(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	views, err := svc.Subscribe(ctx, v.ID)
	require.NoError(t, err)

	_, err = svc.SetMode(ctx, v.ID, "dataflow")
	require.NoError(t, err)

	select {
	case got := <-views:
		require.NotNil(t, got)
		assert.Equal(t, "dataflow", got.State.Mode)
	case <-ctx.Done():
		t.Fatal("no view delivered")
	}

	require.NoError(t, svc.Delete(ctx, v.ID))
	select {
	case _, ok := <-views:
		assert.False(t, ok)
	case <-ctx.Done():
		t.Fatal("stream not closed")
	}
	assert.ErrorIs(t, svc.Delete(ctx, v.ID), domain.ErrSessionNotFound)
}

func TestConcurrentIntentsAreSerialized(t *testing.T) {
	svc := newService(t, summarize.NewMock(0))
	ctx := context.Background()
	v, err := svc.Create(ctx, 1200, 700)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Gesture(ctx, v.ID, domain.Gesture{Type: domain.GestureZoomOut})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := svc.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, viewport.MinScale, got.Viewport.Scale)
}

func TestUnknownSessionsShareFixedLocks(t *testing.T) {
	svc := newService(t, summarize.NewMock(0))
	ctx := context.Background()

	used := make(map[uint64]bool)
	for i := 0; i < 10000; i++ {
		id := fmt.Sprintf("ghost-%d", i)
		_, err := svc.Hover(ctx, id, "aws-waf")
		require.ErrorIs(t, err, domain.ErrSessionNotFound)
		used[stripe(id)] = true
	}
	assert.LessOrEqual(t, len(used), lockStripes)
	assert.Greater(t, len(used), lockStripes/2)

	// a stripe shared with a ghost id still serves a live session
	v, err := svc.Create(ctx, 1200, 700)
	require.NoError(t, err)
	_, err = svc.Hover(ctx, v.ID, "aws-waf")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, v.ID))
	_, err = svc.Hover(ctx, v.ID, "aws-waf")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
