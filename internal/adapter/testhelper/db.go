package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/travelplan-backend/migrations"
)

var (
	dbOnce sync.Once
	dbDSN  string
	dbErr  error
)

// SetupTestDB returns a pool on the shared, fully migrated PostgreSQL
// container. The pool is closed via t.Cleanup.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dbOnce.Do(func() { dbDSN, dbErr = startPostgres() })
	if dbErr != nil {
		t.Fatalf("testhelper: postgres: %v", dbErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbDSN)
	if err != nil {
		t.Fatalf("testhelper: pgxpool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func startPostgres() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	addr, err := startContainer(ctx, testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "travel",
			"POSTGRES_PASSWORD": "travel",
			"POSTGRES_DB":       "travelplan_test",
		},
		// The server restarts once after init, so the line appears twice.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}, "5432")
	if err != nil {
		return "", err
	}

	dsn := fmt.Sprintf("postgres://travel:travel@%s/travelplan_test?sslmode=disable", addr)
	if err := migrate(ctx, dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

// migrate applies the embedded goose migrations; goose needs database/sql.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := migrations.NewProvider(db)
	if err != nil {
		return err
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
