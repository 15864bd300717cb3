package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Generator GeneratorConfig `yaml:"generator"`
	Summary   SummaryConfig   `yaml:"summary"`
	History   HistoryConfig   `yaml:"history"`
	Auth      AuthConfig      `yaml:"auth"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// GeneratorConfig defines limits for the Markov chain generator domain.
type GeneratorConfig struct {
	DefaultMaxWords int    `yaml:"defaultMaxWords"`
	MaxWords        int    `yaml:"maxWords"`
	Seed            int64  `yaml:"seed"`
	CorpusPath      string `yaml:"corpusPath"`
}

// SummaryConfig defines limits for the extractive summarizer domain.
type SummaryConfig struct {
	DefaultMaxSentences int         `yaml:"defaultMaxSentences"`
	MaxSentences        int         `yaml:"maxSentences"`
	Cache               CacheConfig `yaml:"cache"`
}

// CacheConfig contains connection information for the summary cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Addr    string        `yaml:"addr"`
	TTL     time.Duration `yaml:"ttl"`
	Prefix  string        `yaml:"prefix"`
}

// HistoryConfig controls request history persistence.
type HistoryConfig struct {
	Enabled       bool           `yaml:"enabled"`
	Limit         int            `yaml:"limit"`
	MaxFieldBytes int            `yaml:"maxFieldBytes"`
	Postgres      PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// AuthConfig enables the optional bearer token guard on the API group.
type AuthConfig struct {
	Enabled bool   `yaml:"enabled"`
	Secret  string `yaml:"secret"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("GENERATOR_DEFAULT_MAX_WORDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Generator.DefaultMaxWords = parsed
		}
	}
	if v := os.Getenv("GENERATOR_MAX_WORDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Generator.MaxWords = parsed
		}
	}
	if v := os.Getenv("GENERATOR_SEED"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Generator.Seed = parsed
		}
	}
	if v := os.Getenv("GENERATOR_CORPUS_PATH"); v != "" {
		cfg.Generator.CorpusPath = v
	}
	if v := os.Getenv("SUMMARY_DEFAULT_MAX_SENTENCES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summary.DefaultMaxSentences = parsed
		}
	}
	if v := os.Getenv("SUMMARY_MAX_SENTENCES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summary.MaxSentences = parsed
		}
	}
	if v := os.Getenv("SUMMARY_CACHE_ENABLED"); v != "" {
		cfg.Summary.Cache.Enabled = isTruthy(v)
	}
	if v := os.Getenv("SUMMARY_CACHE_ADDR"); v != "" {
		cfg.Summary.Cache.Addr = v
	}
	if v := os.Getenv("SUMMARY_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Summary.Cache.TTL = parsed
		}
	}
	if v := os.Getenv("HISTORY_ENABLED"); v != "" {
		cfg.History.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HISTORY_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Limit = parsed
		}
	}
	if v := os.Getenv("HISTORY_POSTGRES_DSN"); v != "" {
		cfg.History.Postgres.DSN = v
	}
	if v := os.Getenv("HISTORY_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("HISTORY_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("AUTH_ENABLED"); v != "" {
		cfg.Auth.Enabled = isTruthy(v)
	}
	if v := os.Getenv("AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   5 * time.Second,
			AllowedOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
			},
		},
		Generator: GeneratorConfig{
			DefaultMaxWords: 50,
			MaxWords:        200,
		},
		Summary: SummaryConfig{
			DefaultMaxSentences: 3,
			MaxSentences:        10,
			Cache: CacheConfig{
				Enabled: false,
				TTL:     time.Hour,
				Prefix:  "summary",
			},
		},
		History: HistoryConfig{
			Enabled:       true,
			Limit:         20,
			MaxFieldBytes: 2048,
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Generator.DefaultMaxWords <= 0 {
		return errors.New("generator.defaultMaxWords must be positive")
	}
	if c.Generator.MaxWords < c.Generator.DefaultMaxWords {
		return errors.New("generator.maxWords must be at least defaultMaxWords")
	}
	if c.Summary.DefaultMaxSentences <= 0 {
		return errors.New("summary.defaultMaxSentences must be positive")
	}
	if c.Summary.MaxSentences < c.Summary.DefaultMaxSentences {
		return errors.New("summary.maxSentences must be at least defaultMaxSentences")
	}
	if c.Summary.Cache.Enabled && strings.TrimSpace(c.Summary.Cache.Addr) == "" {
		return errors.New("summary.cache.addr cannot be empty when the cache is enabled")
	}
	if c.Summary.Cache.TTL < 0 {
		return errors.New("summary.cache.ttl cannot be negative")
	}
	if c.History.Limit <= 0 {
		return errors.New("history.limit must be positive")
	}
	if c.History.MaxFieldBytes <= 0 {
		return errors.New("history.maxFieldBytes must be positive")
	}
	if c.Auth.Enabled && strings.TrimSpace(c.Auth.Secret) == "" {
		return errors.New("auth.secret cannot be empty when auth is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}
