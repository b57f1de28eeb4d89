package summarize

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/logging"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/metrics"
)

// Outcomes recorded in the summarize_calls_total metric.
const (
	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
	OutcomeCancelled   = "cancelled"
)

// Guarded wraps a provider with rate limiting, a per-call timeout, metrics
// and logging. Provider failures come back as Unavailable() with a nil
// error; only a cancelled caller context is returned as an error.
type Guarded struct {
	inner   Summarizer
	limiter *rate.Limiter
	timeout time.Duration
	metrics *metrics.Registry
}

type GuardOption func(*Guarded)

// WithRateLimit limits upstream calls to rps per second with the given burst.
func WithRateLimit(rps float64, burst int) GuardOption {
	return func(g *Guarded) {
		if rps > 0 {
			g.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

func WithTimeout(d time.Duration) GuardOption {
	return func(g *Guarded) { g.timeout = d }
}

func WithMetrics(r *metrics.Registry) GuardOption {
	return func(g *Guarded) { g.metrics = r }
}

func NewGuarded(inner Summarizer, opts ...GuardOption) *Guarded {
	g := &Guarded{inner: inner}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Guarded) Name() string { return g.inner.Name() }

// Inner returns the wrapped provider.
func (g *Guarded) Inner() Summarizer { return g.inner }

func (g *Guarded) Summarize(ctx context.Context, c domain.Component) (Analysis, error) {
	logger := logging.NewLogger(ctx)
	start := time.Now()

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				g.record(OutcomeCancelled, start)
				return Analysis{}, ctx.Err()
			}
			// the wait would outlast the deadline
			logger.LogWarnf("summarize", "component=%s rate limited: %v", c.ID, err)
			g.record(OutcomeUnavailable, start)
			return Unavailable(), nil
		}
	}

	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	a, err := g.inner.Summarize(callCtx, c)
	switch {
	case err != nil && ctx.Err() != nil:
		g.record(OutcomeCancelled, start)
		return Analysis{}, ctx.Err()
	case err != nil:
		if errors.Is(err, context.DeadlineExceeded) {
			logger.LogWarnf("summarize", "component=%s provider=%s timed out after %s", c.ID, g.inner.Name(), g.timeout)
		} else {
			logger.LogWarnf("summarize", "component=%s provider=%s failed: %v", c.ID, g.inner.Name(), err)
		}
		g.record(OutcomeUnavailable, start)
		return Unavailable(), nil
	case !a.Complete():
		logger.LogWarnf("summarize", "component=%s provider=%s returned an incomplete analysis", c.ID, g.inner.Name())
		g.record(OutcomeUnavailable, start)
		return Unavailable(), nil
	}

	logger.LogInfof("summarize", "component=%s provider=%s took=%s", c.ID, g.inner.Name(), time.Since(start))
	g.record(OutcomeOK, start)
	return a, nil
}

func (g *Guarded) record(outcome string, start time.Time) {
	if g.metrics != nil {
		g.metrics.RecordSummarize(g.inner.Name(), outcome, time.Since(start))
	}
}
