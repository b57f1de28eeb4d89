package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	App        AppConfig
	Redis      RedisConfig
	Summarizer SummarizerConfig
	Catalog    CatalogConfig

	// Warnings collects problems found while loading that fell back to a
	// default. They are logged once the logger exists.
	Warnings []string
}

type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
	ServiceName string
}

// RedisConfig selects the session store. An empty Addr keeps sessions in
// process memory.
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	SessionTTL time.Duration
}

type SummarizerConfig struct {
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

type CatalogConfig struct {
	Path string
}

func Load() (*Config, error) {
	cfg := &Config{}

	// a missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		cfg.warnf("could not read .env: %v", err)
	}

	cfg.Server = ServerConfig{
		Port:               getEnv("PORT", "8080"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
	cfg.App = AppConfig{
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		ServiceName: getEnv("SERVICE_NAME", "sentinel-backend"),
	}
	cfg.Redis = RedisConfig{
		Addr:       getEnv("REDIS_ADDR", ""),
		Password:   getEnv("REDIS_PASSWORD", ""),
		DB:         cfg.getEnvAsInt("REDIS_DB", 0),
		SessionTTL: cfg.getEnvAsDuration("SESSION_TTL", 24*time.Hour),
	}
	cfg.Summarizer = SummarizerConfig{
		APIKey:    getEnv("API_KEY", getEnv("GEMINI_API_KEY", "")),
		Provider:  getEnv("SUMMARIZER_PROVIDER", "gemini"),
		Model:     getEnv("SUMMARIZER_MODEL", ""),
		BaseURL:   getEnv("SUMMARIZER_BASE_URL", ""),
		UseADC:    cfg.getEnvAsBool("SUMMARIZER_USE_ADC", false),
		MockDelay: cfg.getEnvAsDuration("SUMMARIZER_MOCK_DELAY", 1500*time.Millisecond),
		RateLimit: cfg.getEnvAsFloat("SUMMARIZER_RATE_LIMIT", 2),
		Burst:     cfg.getEnvAsInt("SUMMARIZER_BURST", 4),
		Timeout:   cfg.getEnvAsDuration("SUMMARIZER_TIMEOUT", 60*time.Second),
	}
	cfg.Catalog = CatalogConfig{
		Path: getEnv("CATALOG_PATH", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Summarizer.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("SUMMARIZER_PROVIDER must be gemini or openai, got %q", c.Summarizer.Provider)
	}
	if c.Summarizer.RateLimit <= 0 {
		return fmt.Errorf("SUMMARIZER_RATE_LIMIT must be positive")
	}
	if c.Summarizer.Burst <= 0 {
		return fmt.Errorf("SUMMARIZER_BURST must be positive")
	}
	if c.Summarizer.MockDelay < 0 {
		return fmt.Errorf("SUMMARIZER_MOCK_DELAY must not be negative")
	}
	if c.Redis.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		c.warnf("invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func (c *Config) getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		c.warnf("invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func (c *Config) getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		c.warnf("invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvAsDuration accepts Go durations ("90s") and bare integers, which
// are read as milliseconds.
func (c *Config) getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	if ms, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		c.warnf("invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
