package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/travelplan-backend/internal/config"
)

// NewPool opens the pool that backs itineraries and their items, then pings
// it once so the server refuses to start against an unreachable database.
// A failed ping is reported as domain.ErrUnavailable.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", wrapUnavailable(err))
	}

	return pool, nil
}

// poolConfig turns DatabaseConfig into pgx pool settings without connecting.
//
// Sessions run in UTC. Trip and item dates are calendar dates that the
// repository reads back as UTC midnight, and created_at/updated_at default
// to now(); a server-side zone other than UTC would shift both.
func poolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolCfg.HealthCheckPeriod = cfg.HealthCheckPeriod

	params := poolCfg.ConnConfig.RuntimeParams
	params["timezone"] = "UTC"
	if cfg.ApplicationName != "" {
		// Shows up in pg_stat_activity next to tripctl sessions.
		params["application_name"] = cfg.ApplicationName
	}

	return poolCfg, nil
}
