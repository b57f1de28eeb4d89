package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	archdomain "github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/export"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/insight"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/shell"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/logging"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/metrics"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/repository"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/summarize"
)

// Insight request outcomes recorded in metrics.
const (
	InsightRequested = "requested"
	InsightReady     = "ready"
	InsightFailed    = "failed"
	InsightStale     = "stale"
)

// lockStripes is the number of mutexes shared by all session ids.
const lockStripes = 256

// SessionService applies user intents to stored sessions. Intents for one
// session are serialized by the mutex its id hashes to, so each
// read-modify-write sees the result of the previous one.
type SessionService struct {
	store      repository.Store
	cat        *archdomain.Catalog
	summarizer summarize.Summarizer
	metrics    *metrics.Registry

	locks [lockStripes]sync.Mutex
	wg    sync.WaitGroup
}

// NewSessionService creates a new SessionService
func NewSessionService(store repository.Store, cat *archdomain.Catalog, s summarize.Summarizer, reg *metrics.Registry) *SessionService {
	if reg == nil {
		reg = metrics.DefaultRegistry()
	}
	return &SessionService{
		store:      store,
		cat:        cat,
		summarizer: s,
		metrics:    reg,
	}
}

func (s *SessionService) Catalog() *archdomain.Catalog { return s.cat }

// Create opens a session with its viewport fitted to width x height.
func (s *SessionService) Create(ctx context.Context, width, height float64) (*View, error) {
	sess := domain.NewSession(width, height)
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, err
	}
	s.metrics.SessionsCreatedTotal.Inc()
	logging.NewLogger(ctx).LogInfof("create_session", "session=%s store=%s", sess.ID, s.store.Kind())
	return s.view(sess), nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*View, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

func (s *SessionService) Delete(ctx context.Context, id string) error {
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	return s.store.Delete(ctx, id)
}

// Select selects componentID. A new selection resets the insight panel;
// reselecting the current component keeps it.
func (s *SessionService) Select(ctx context.Context, id, componentID string) (*View, error) {
	if _, ok := s.cat.Component(componentID); !ok {
		return nil, fmt.Errorf("select %q: %w", componentID, archdomain.ErrComponentNotFound)
	}
	return s.mutate(ctx, id, func(sess *domain.Session) error {
		if sess.State.SelectedID != componentID {
			sess.Insight.Reset(componentID)
		}
		sess.State = sess.State.SelectComponent(componentID)
		return nil
	})
}

func (s *SessionService) ClearSelection(ctx context.Context, id string) (*View, error) {
	return s.mutate(ctx, id, func(sess *domain.Session) error {
		if sess.State.SelectedID != "" {
			sess.Insight.Reset("")
		}
		sess.State = sess.State.ClearSelection()
		return nil
	})
}

// Hover sets the hovered component; "" clears it. Unknown ids are accepted
// and simply match nothing.
func (s *SessionService) Hover(ctx context.Context, id, componentID string) (*View, error) {
	return s.mutate(ctx, id, func(sess *domain.Session) error {
		sess.State = sess.State.HoverComponent(componentID)
		return nil
	})
}

func (s *SessionService) SetMode(ctx context.Context, id, mode string) (*View, error) {
	return s.mutate(ctx, id, func(sess *domain.Session) error {
		sess.State = sess.State.SetMode(mode)
		return nil
	})
}

func (s *SessionService) SetTab(ctx context.Context, id, tab string) (*View, error) {
	t, err := shell.ParseTab(tab)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(sess *domain.Session) error {
		sess.State = sess.State.SetTab(t)
		return nil
	})
}

func (s *SessionService) HoverPhase(ctx context.Context, id, phaseID string) (*View, error) {
	return s.mutate(ctx, id, func(sess *domain.Session) error {
		sess.State = sess.State.HoverPhase(phaseID)
		return nil
	})
}

// Gesture feeds a pointer or button event to the session viewport.
func (s *SessionService) Gesture(ctx context.Context, id string, g domain.Gesture) (*View, error) {
	return s.mutate(ctx, id, func(sess *domain.Session) error {
		vp := &sess.Viewport
		switch g.Type {
		case domain.GesturePointerDown:
			vp.BeginDrag(g.X, g.Y)
		case domain.GesturePointerMove:
			vp.DragTo(g.X, g.Y)
		case domain.GesturePointerUp, domain.GesturePointerLeave:
			vp.EndDrag()
		case domain.GestureWheel:
			vp.Wheel(g.DeltaY)
		case domain.GestureZoomIn:
			vp.ZoomIn()
		case domain.GestureZoomOut:
			vp.ZoomOut()
		case domain.GestureReset:
			if g.Width > 0 {
				sess.Width = g.Width
			}
			if g.Height > 0 {
				sess.Height = g.Height
			}
			vp.Reset(sess.Width, sess.Height)
		default:
			return fmt.Errorf("%w: %q", domain.ErrInvalidGesture, g.Type)
		}
		return nil
	})
}

// RequestInsight starts the analysis of the selected component. The call
// returns as soon as the panel is loading; the result is applied later
// unless the selection changed in the meantime. Asking again for the same
// selection is a no-op.
func (s *SessionService) RequestInsight(ctx context.Context, id string) (*View, error) {
	var (
		gen     uint64
		comp    archdomain.Component
		started bool
	)
	v, err := s.mutate(ctx, id, func(sess *domain.Session) error {
		g, err := sess.Insight.Begin()
		switch {
		case errors.Is(err, insight.ErrNoComponent):
			return fmt.Errorf("request insight: %w", domain.ErrNoSelection)
		case errors.Is(err, insight.ErrAlreadyLoaded):
			return nil
		case err != nil:
			return err
		}
		c, ok := s.cat.Component(sess.Insight.ComponentID)
		if !ok {
			return fmt.Errorf("request insight %q: %w", sess.Insight.ComponentID, archdomain.ErrComponentNotFound)
		}
		gen, comp, started = g, c, true
		return nil
	})
	if err != nil || !started {
		return v, err
	}

	s.metrics.RecordInsight(InsightRequested)
	// the analysis outlives the request that asked for it
	bg := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runInsight(bg, id, gen, comp)
	}()
	return v, nil
}

func (s *SessionService) runInsight(ctx context.Context, id string, gen uint64, comp archdomain.Component) {
	logger := logging.NewLogger(ctx)
	analysis, sumErr := s.summarizer.Summarize(ctx, comp)

	applied := false
	_, err := s.mutate(ctx, id, func(sess *domain.Session) error {
		if sumErr != nil {
			applied = sess.Insight.Fail(gen, sumErr)
		} else {
			applied = sess.Insight.Complete(gen, analysis)
		}
		if !applied {
			return errStale
		}
		return nil
	})
	switch {
	case errors.Is(err, errStale), errors.Is(err, domain.ErrSessionNotFound):
		s.metrics.RecordInsight(InsightStale)
		logger.LogInfof("insight", "session=%s component=%s generation=%d result dropped", id, comp.ID, gen)
	case err != nil:
		s.metrics.RecordInsight(InsightFailed)
		logger.LogErrorf("insight", "session=%s component=%s: %v", id, comp.ID, err)
	case sumErr != nil:
		s.metrics.RecordInsight(InsightFailed)
		logger.LogWarnf("insight", "session=%s component=%s analysis rejected: %v", id, comp.ID, sumErr)
	default:
		s.metrics.RecordInsight(InsightReady)
	}
}

var errStale = errors.New("stale insight result")

func (s *SessionService) Insight(ctx context.Context, id string) (insight.Panel, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return insight.Panel{}, err
	}
	return sess.Insight, nil
}

// DOT renders the session's current classification as GraphViz DOT.
func (s *SessionService) DOT(ctx context.Context, id string) (string, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return export.ToDOT(s.cat, v.Snapshot, diagramTitle(v)), nil
}

// Subscribe streams a fresh View after every stored change of the session.
// The channel closes when the session is deleted or ctx ends.
func (s *SessionService) Subscribe(ctx context.Context, id string) (<-chan *View, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, err
	}
	sessions, err := s.store.Subscribe(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make(chan *View, 1)
	go func() {
		defer close(out)
		for sess := range sessions {
			select {
			case out <- s.view(sess):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Wait blocks until every in-flight analysis has been applied or dropped.
func (s *SessionService) Wait() {
	s.wg.Wait()
}

func (s *SessionService) mutate(ctx context.Context, id string, fn func(*domain.Session) error) (*View, error) {
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// lock returns the stripe for id. Unknown and expired ids need no cleanup.
func (s *SessionService) lock(id string) *sync.Mutex {
	return &s.locks[stripe(id)]
}

func stripe(id string) uint64 {
	return xxhash.Sum64String(id) % lockStripes
}

func (s *SessionService) view(sess *domain.Session) *View {
	v := newView(s.cat, sess)
	s.metrics.RecordClassification(string(v.Snapshot.Regime))
	return v
}

func diagramTitle(v *View) string {
	if v.PhaseTitle != "" {
		return "Visualizing: " + v.PhaseTitle
	}
	return "Sentinel - " + v.State.Mode
}
