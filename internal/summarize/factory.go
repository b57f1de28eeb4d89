package summarize

import (
	"context"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/logging"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/metrics"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	APIKey    string
	Provider  string
	Model     string
	BaseURL   string
	UseADC    bool
	MockDelay time.Duration
	RateLimit float64
	Burst     int
	Timeout   time.Duration
}

// New picks the provider for cfg. Without any credential it returns the
// mock, so analysis never hard-fails for a missing key.
func New(ctx context.Context, cfg Config, reg *metrics.Registry) (Summarizer, error) {
	logger := logging.Named("summarize")

	live, err := newLive(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if live == nil {
		logger.LogInfof("init", "no API credential configured, using mock analysis (delay=%s)", cfg.MockDelay)
		return NewGuarded(NewMock(cfg.MockDelay), WithMetrics(reg)), nil
	}

	logger.LogInfof("init", "using %s analysis provider", live.Name())
	return NewGuarded(live,
		WithRateLimit(cfg.RateLimit, cfg.Burst),
		WithTimeout(cfg.Timeout),
		WithMetrics(reg),
	), nil
}

func newLive(ctx context.Context, cfg Config, logger *logging.Logger) (Summarizer, error) {
	switch cfg.Provider {
	case "", ProviderGemini:
		if cfg.APIKey != "" {
			return NewGemini(ctx, cfg.APIKey, cfg.Model, cfg.BaseURL)
		}
		if cfg.UseADC {
			g, err := NewGeminiFromADC(ctx, cfg.Model)
			if err != nil {
				logger.LogWarnf("init", "application default credentials unavailable: %v", err)
				return nil, nil
			}
			return g, nil
		}
		return nil, nil
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, nil
		}
		return NewOpenAI(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Provider)
	}
}
