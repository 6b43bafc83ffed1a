// Command tripctl is the operator CLI of the itinerary service: it applies
// migrations, prints itineraries, writes exports, and issues local tokens.
//
// Configuration is read the same way as the server (config.yaml, .env and
// environment).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/travelplan-backend/internal/adapter/postgres"
	itinerarypg "github.com/heartmarshall/travelplan-backend/internal/adapter/postgres/itinerary"
	"github.com/heartmarshall/travelplan-backend/internal/app"
	"github.com/heartmarshall/travelplan-backend/internal/config"
	"github.com/heartmarshall/travelplan-backend/internal/service/itinerary"
)

var rootCmd = &cobra.Command{
	Use:           "tripctl",
	Short:         "Operator tools for the itinerary service",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       app.BuildVersion(),
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env bundles what the data commands need.
type env struct {
	cfg  *config.Config
	log  *slog.Logger
	pool *pgxpool.Pool
	svc  *itinerary.Service
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	svc := itinerary.NewService(logger, itinerarypg.New(pool), postgres.NewTxManager(pool), itinerary.Limits{
		MaxItinerariesPerOwner: cfg.Itinerary.MaxItinerariesPerOwner,
		MaxItemsPerItinerary:   cfg.Itinerary.MaxItemsPerItinerary,
	})

	return &env{cfg: cfg, log: logger, pool: pool, svc: svc}, nil
}

func (e *env) Close() { e.pool.Close() }

func parseIDs(owner, id string) (uuid.UUID, uuid.UUID, error) {
	ownerID, err := uuid.Parse(owner)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("owner id: %w", err)
	}
	itineraryID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("itinerary id: %w", err)
	}
	return ownerID, itineraryID, nil
}
