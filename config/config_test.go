package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "sentinel-backend", cfg.App.ServiceName)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Redis.SessionTTL)
	assert.Equal(t, "gemini", cfg.Summarizer.Provider)
	assert.Equal(t, 1500*time.Millisecond, cfg.Summarizer.MockDelay)
	assert.Equal(t, 2.0, cfg.Summarizer.RateLimit)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("API_KEY", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("SUMMARIZER_MOCK_DELAY", "250")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "g-key", cfg.Summarizer.APIKey)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 250*time.Millisecond, cfg.Summarizer.MockDelay)
	assert.Equal(t, 30*time.Minute, cfg.Redis.SessionTTL)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.IsProduction())

	t.Setenv("API_KEY", "primary")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.Summarizer.APIKey)
}

func TestInvalidValuesWarnAndFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")
	t.Setenv("SUMMARIZER_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 60*time.Second, cfg.Summarizer.Timeout)
	assert.Len(t, cfg.Warnings, 2)
}

func TestValidate(t *testing.T) {
	t.Setenv("SUMMARIZER_PROVIDER", "bard")
	_, err := Load()
	assert.ErrorContains(t, err, "SUMMARIZER_PROVIDER")

	t.Setenv("SUMMARIZER_PROVIDER", "openai")
	t.Setenv("SUMMARIZER_BURST", "-1")
	_, err = Load()
	assert.ErrorContains(t, err, "SUMMARIZER_BURST")
}
