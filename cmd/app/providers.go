package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/wvwild/adventure-hub/internal/domain/adventure"
	"github.com/wvwild/adventure-hub/internal/domain/hub"
	"github.com/wvwild/adventure-hub/internal/infra/catalogsource"
	"github.com/wvwild/adventure-hub/internal/infra/config"
	"github.com/wvwild/adventure-hub/internal/infra/sessionstore"
	apperrors "github.com/wvwild/adventure-hub/pkg/errors"
)

func provideHubConfig(cfg *config.Config) hub.Config {
	return hub.Config{SessionTTL: cfg.Sessions.TTL}
}

// provideCatalogSource has no fallback: serving an empty or stale hub is worse
// than failing the deploy.
func provideCatalogSource(cfg *config.Config, logger *slog.Logger) (adventure.Source, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		pool, err := openPostgresPool(cfg.Catalog.Postgres)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeCatalogError, "postgres catalog unavailable", err)
		}
		logger.Info("catalog source: postgres")
		return catalogsource.NewPostgresSource(pool), nil
	case config.CatalogSourceObject:
		obj := cfg.Catalog.Object
		source, err := catalogsource.NewObjectSource(obj.Endpoint, obj.AccessKey, obj.SecretKey, obj.Bucket, obj.Key, obj.Region, logger)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeCatalogError, "object catalog unavailable", err)
		}
		logger.Info("catalog source: object storage", "bucket", obj.Bucket, "key", obj.Key)
		return source, nil
	default:
		logger.Info("catalog source: file", "path", cfg.Catalog.Path)
		return catalogsource.NewFileSource(cfg.Catalog.Path), nil
	}
}

func provideCatalog(cfg *config.Config, source adventure.Source, logger *slog.Logger) (*adventure.Catalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Catalog.LoadTimeout)
	defer cancel()
	items, err := source.Load(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogError, "load catalog", err)
	}
	catalog, err := adventure.NewCatalog(items)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded", "adventures", catalog.Len())
	return catalog, nil
}

func openPostgresPool(pgCfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(strings.TrimSpace(pgCfg.DSN))
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if pgCfg.MaxConns > 0 {
		poolConfig.MaxConns = pgCfg.MaxConns
	}
	if pgCfg.MinConns > 0 {
		poolConfig.MinConns = pgCfg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

func provideSessionStore(cfg *config.Config, logger *slog.Logger) hub.SessionStore {
	if !cfg.Sessions.Valkey.Enabled {
		logger.Info("valkey sessions disabled, using memory store")
		return sessionstore.NewMemoryStore()
	}
	opt, err := buildValkeyOptions(cfg.Sessions.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return sessionstore.NewMemoryStore()
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return sessionstore.NewMemoryStore()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return sessionstore.NewMemoryStore()
	}
	logger.Info("valkey session store enabled", "addr", cfg.Sessions.Valkey.Addr)
	return sessionstore.NewValkeyStore(client, cfg.Sessions.Valkey.Prefix)
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
