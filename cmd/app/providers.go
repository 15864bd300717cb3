package main

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/kezhang/textsmith/internal/domain/generator"
	"github.com/kezhang/textsmith/internal/domain/history"
	"github.com/kezhang/textsmith/internal/domain/summarizer"
	"github.com/kezhang/textsmith/internal/infra/config"
	"github.com/kezhang/textsmith/internal/infra/corpus"
	"github.com/kezhang/textsmith/internal/infra/historyrepo"
	"github.com/kezhang/textsmith/internal/infra/summarystore"
)

func provideGeneratorConfig(cfg *config.Config) generator.Config {
	return generator.Config{
		DefaultMaxWords: cfg.Generator.DefaultMaxWords,
		Seed:            cfg.Generator.Seed,
	}
}

func provideSummarizerConfig(cfg *config.Config) summarizer.Config {
	return summarizer.Config{
		DefaultMaxSentences: cfg.Summary.DefaultMaxSentences,
		CacheTTL:            cfg.Summary.Cache.TTL,
	}
}

func provideHistoryConfig(cfg *config.Config) history.Config {
	return history.Config{
		Enabled:       cfg.History.Enabled,
		MaxFieldBytes: cfg.History.MaxFieldBytes,
	}
}

// provideChain trains the Markov chain once at startup; the process refuses
// to start when the corpus yields no transitions.
func provideChain(cfg *config.Config, logger *slog.Logger) (*generator.Chain, error) {
	text, err := corpus.Load(cfg.Generator.CorpusPath)
	if err != nil {
		return nil, err
	}
	chain := generator.NewChain(text)
	logger.Info("markov chain trained", "keys", chain.Len())
	return chain, nil
}

func provideSummaryStore(cfg *config.Config, logger *slog.Logger) summarizer.Store {
	if cfg.Summary.Cache.Enabled {
		opt, err := buildValkeyOptions(cfg.Summary.Cache.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return summarystore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return summarystore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("summary valkey cache enabled", "addr", cfg.Summary.Cache.Addr)
			return summarystore.NewValkeyStore(client, cfg.Summary.Cache.Prefix)
		}
	}
	return summarystore.NewMemoryStore()
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideHistoryRepository(cfg *config.Config, logger *slog.Logger) history.Repository {
	fallback := historyrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.History.Postgres.DSN)
	if dsn == "" {
		logger.Info("history postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.History.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.History.Postgres.MaxConns
	}
	if cfg.History.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.History.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("history postgres repository enabled")
	return historyrepo.NewPostgresRepository(pool)
}
