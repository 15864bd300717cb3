package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 50, cfg.Generator.DefaultMaxWords)
	require.Equal(t, 200, cfg.Generator.MaxWords)
	require.Equal(t, 3, cfg.Summary.DefaultMaxSentences)
	require.Equal(t, 10, cfg.Summary.MaxSentences)
	require.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty address",
			mutate:  func(c *Config) { c.HTTP.Address = "" },
			wantErr: "http.address cannot be empty",
		},
		{
			name:    "zero default max words",
			mutate:  func(c *Config) { c.Generator.DefaultMaxWords = 0 },
			wantErr: "generator.defaultMaxWords must be positive",
		},
		{
			name:    "cap below default",
			mutate:  func(c *Config) { c.Generator.MaxWords = 10 },
			wantErr: "generator.maxWords must be at least defaultMaxWords",
		},
		{
			name:    "sentence cap below default",
			mutate:  func(c *Config) { c.Summary.MaxSentences = 1 },
			wantErr: "summary.maxSentences must be at least defaultMaxSentences",
		},
		{
			name: "cache enabled without addr",
			mutate: func(c *Config) {
				c.Summary.Cache.Enabled = true
				c.Summary.Cache.Addr = "  "
			},
			wantErr: "summary.cache.addr cannot be empty when the cache is enabled",
		},
		{
			name:    "negative cache ttl",
			mutate:  func(c *Config) { c.Summary.Cache.TTL = -time.Second },
			wantErr: "summary.cache.ttl cannot be negative",
		},
		{
			name:    "auth enabled without secret",
			mutate:  func(c *Config) { c.Auth.Enabled = true },
			wantErr: "auth.secret cannot be empty when auth is enabled",
		},
		{
			name:    "rate limit without rpm",
			mutate:  func(c *Config) { c.HTTP.RateLimit.RequestsPerMinute = 0 },
			wantErr: "http.rateLimit.requestsPerMinute must be positive",
		},
		{
			name:    "retry without backoff",
			mutate:  func(c *Config) { c.HTTP.Retry.BaseBackoff = 0 },
			wantErr: "http.retry.baseBackoff must be positive",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			require.EqualError(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, splitList(" a, b ,,"))
}
