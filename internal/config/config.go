package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Placeholder values shipped in sample .env files. A credential still set to
// one of these is treated the same as a missing one.
const (
	ExchangeRatePlaceholder = "your_exchange_rate_api_key_here"
	NewsPlaceholder         = "your_news_api_key_here"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP      HTTPConfig
	Logging   LoggingConfig
	Upstream  UpstreamConfig
	RateLimit RateLimitConfig
	Telemetry TelemetryConfig
}

// HTTPConfig governs the inbound HTTP server.
type HTTPConfig struct {
	Port            int           `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	StaticDir       string        `env:"STATIC_DIR"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"` // text|json
}

// UpstreamConfig describes the four third-party sources and their credentials.
type UpstreamConfig struct {
	IdentityBaseURL string        `env:"IDENTITY_BASE_URL" envDefault:"https://randomuser.me/api/"`
	GeoBaseURL      string        `env:"GEO_BASE_URL" envDefault:"https://restcountries.com/v3.1"`
	RatesBaseURL    string        `env:"RATES_BASE_URL" envDefault:"https://v6.exchangerate-api.com/v6"`
	NewsBaseURL     string        `env:"NEWS_BASE_URL" envDefault:"https://newsapi.org/v2"`
	ExchangeRateKey string        `env:"EXCHANGE_RATE_API_KEY"`
	NewsKey         string        `env:"NEWS_API_KEY"`
	Timeout         time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
}

// RateLimitConfig controls per-client throttling of inbound API requests.
type RateLimitConfig struct {
	Enabled bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RPS     float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	Burst   int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// TelemetryConfig controls OpenTelemetry tracing. Export is opt-in via Endpoint.
type TelemetryConfig struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"true"`
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"country-profile-aggregator"`
}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	// Keys are sent verbatim upstream, so stray .env whitespace goes here.
	cfg.Upstream.ExchangeRateKey = strings.TrimSpace(cfg.Upstream.ExchangeRateKey)
	cfg.Upstream.NewsKey = strings.TrimSpace(cfg.Upstream.NewsKey)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.HTTP.Port)
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("invalid UPSTREAM_TIMEOUT %s", c.Upstream.Timeout)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate limit requires positive RATE_LIMIT_RPS and RATE_LIMIT_BURST")
	}
	return nil
}

// ExchangeRateConfigured reports whether a usable exchange-rate credential is set.
func (u UpstreamConfig) ExchangeRateConfigured() bool {
	return credentialSet(u.ExchangeRateKey, ExchangeRatePlaceholder)
}

// NewsConfigured reports whether a usable news credential is set.
func (u UpstreamConfig) NewsConfigured() bool {
	return credentialSet(u.NewsKey, NewsPlaceholder)
}

func credentialSet(value, placeholder string) bool {
	value = strings.TrimSpace(value)
	return value != "" && value != placeholder
}
