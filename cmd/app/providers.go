package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/quickshop/assistant/internal/domain/faq"
	"github.com/quickshop/assistant/internal/infra/config"
	"github.com/quickshop/assistant/internal/infra/dataset"
	"github.com/quickshop/assistant/internal/infra/trendstore"
)

func provideFAQConfig(cfg *config.Config) faq.Config {
	return faq.Config{
		Threshold:       cfg.FAQ.Threshold,
		BaseSuggestions: cfg.FAQ.BaseSuggestions,
		TopTrending:     cfg.FAQ.TopTrending,
	}
}

// provideCatalogSource prefers the configured remote sources and falls
// back to the local dataset file so the service always starts.
func provideCatalogSource(cfg *config.Config, logger *slog.Logger) faq.CatalogSource {
	fallback := dataset.NewFileSource(cfg.Catalog.Path, logger)

	if dsn := strings.TrimSpace(cfg.Catalog.Postgres.DSN); dsn != "" {
		poolConfig, err := pgxpool.ParseConfig(dsn)
		if err != nil {
			logger.Error("invalid postgres dsn, using file dataset", "error", err)
			return fallback
		}
		if cfg.Catalog.Postgres.MaxConns > 0 {
			poolConfig.MaxConns = cfg.Catalog.Postgres.MaxConns
		}
		if cfg.Catalog.Postgres.MinConns > 0 {
			poolConfig.MinConns = cfg.Catalog.Postgres.MinConns
		}
		pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
		if err != nil {
			logger.Error("failed to initialize postgres pool, using file dataset", "error", err)
			return fallback
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			logger.Error("postgres ping failed, using file dataset", "error", err)
			pool.Close()
			return fallback
		}
		logger.Info("postgres catalog source enabled")
		return dataset.NewPostgresSource(pool)
	}

	if cfg.Catalog.ObjectStore.Enabled {
		source, err := dataset.NewObjectSource(
			cfg.Catalog.ObjectStore.Endpoint,
			cfg.Catalog.ObjectStore.AccessKey,
			cfg.Catalog.ObjectStore.SecretKey,
			cfg.Catalog.ObjectStore.Bucket,
			cfg.Catalog.ObjectStore.Key,
			cfg.Catalog.ObjectStore.Region,
			logger,
		)
		if err != nil {
			logger.Error("failed to initialize object store source, using file dataset", "error", err)
			return fallback
		}
		logger.Info("object store catalog source enabled", "bucket", cfg.Catalog.ObjectStore.Bucket)
		return source
	}

	return fallback
}

func provideTrendStore(cfg *config.Config, logger *slog.Logger) faq.TrendStore {
	if cfg.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return trendstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return trendstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("valkey trend store enabled", "addr", cfg.Valkey.Addr)
			return trendstore.NewValkeyStore(client, "faq")
		}
	}
	return trendstore.NewMemoryStore()
}

func provideFAQService(cfg faq.Config, source faq.CatalogSource, store faq.TrendStore, logger *slog.Logger) faq.Service {
	return faq.NewService(context.Background(), cfg, source, store, logger)
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
