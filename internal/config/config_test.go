package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "UPSTREAM_TIMEOUT", "EXCHANGE_RATE_API_KEY", "NEWS_API_KEY", "RATE_LIMIT_ENABLED", "OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "https://restcountries.com/v3.1", cfg.Upstream.GeoBaseURL)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.False(t, cfg.Upstream.ExchangeRateConfigured())
	assert.False(t, cfg.Upstream.NewsConfigured())
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Empty(t, cfg.Telemetry.Endpoint)
	assert.Equal(t, "country-profile-aggregator", cfg.Telemetry.ServiceName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("NEWS_API_KEY", "abc123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.True(t, cfg.Upstream.NewsConfigured())
}

func TestLoadTrimsCredentials(t *testing.T) {
	t.Setenv("EXCHANGE_RATE_API_KEY", "  rate-key \n")
	t.Setenv("NEWS_API_KEY", "\tnews-key ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "rate-key", cfg.Upstream.ExchangeRateKey)
	assert.Equal(t, "news-key", cfg.Upstream.NewsKey)
	assert.True(t, cfg.Upstream.ExchangeRateConfigured())
	assert.True(t, cfg.Upstream.NewsConfigured())
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "70000")

	_, err := Load()
	assert.Error(t, err)
}

func TestCredentialPredicates(t *testing.T) {
	tests := []struct {
		name string
		cfg  UpstreamConfig
		rate bool
		news bool
	}{
		{"empty", UpstreamConfig{}, false, false},
		{"whitespace", UpstreamConfig{ExchangeRateKey: "  ", NewsKey: "\t"}, false, false},
		{"placeholders", UpstreamConfig{ExchangeRateKey: ExchangeRatePlaceholder, NewsKey: NewsPlaceholder}, false, false},
		{"set", UpstreamConfig{ExchangeRateKey: "k1", NewsKey: "k2"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.rate, tt.cfg.ExchangeRateConfigured())
			assert.Equal(t, tt.news, tt.cfg.NewsConfigured())
		})
	}
}
