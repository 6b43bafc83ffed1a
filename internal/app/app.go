package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/travelplan-backend/internal/adapter/postgres"
	itinerarypg "github.com/heartmarshall/travelplan-backend/internal/adapter/postgres/itinerary"
	"github.com/heartmarshall/travelplan-backend/internal/adapter/redis/viewcache"
	"github.com/heartmarshall/travelplan-backend/internal/auth"
	"github.com/heartmarshall/travelplan-backend/internal/config"
	"github.com/heartmarshall/travelplan-backend/internal/service/itinerary"
	"github.com/heartmarshall/travelplan-backend/internal/service/planner"
	"github.com/heartmarshall/travelplan-backend/internal/transport/middleware"
	"github.com/heartmarshall/travelplan-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database and the optional view cache, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}

// App holds the wired dependencies of the HTTP server.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	pool    *pgxpool.Pool
	rdb     *redis.Client
	limiter *middleware.RateLimiter
	handler http.Handler
}

// New connects to storage and assembles the application. An unreachable
// view cache is logged and skipped; an unreachable database is an error.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = viewcache.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("view cache disabled", slog.String("error", err.Error()))
		}
	}

	return Assemble(cfg, logger, pool, rdb), nil
}

// Assemble wires services, transport and middleware over already open
// connections. A nil rdb runs without the view cache.
func Assemble(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rdb *redis.Client) *App {
	a := &App{cfg: cfg, log: logger, pool: pool, rdb: rdb}

	svc := itinerary.NewService(logger, itinerarypg.New(pool), postgres.NewTxManager(pool), itinerary.Limits{
		MaxItinerariesPerOwner: cfg.Itinerary.MaxItinerariesPerOwner,
		MaxItemsPerItinerary:   cfg.Itinerary.MaxItemsPerItinerary,
	})
	health := rest.NewHealthHandler(pool, BuildVersion())

	if rdb != nil {
		cache := viewcache.New(rdb, cfg.Redis.ViewTTL)
		svc.WithViewCache(cache)
		health.WithCache(cache)
	}

	plans := rest.NewItineraryHandler(svc, planner.NewAdapter(logger, svc), cfg.Export, logger)
	router := rest.NewRouter(health, plans)

	var limit middleware.Middleware
	if cfg.RateLimit.Enabled {
		a.limiter = middleware.NewRateLimiter(cfg.RateLimit)
		limit = a.limiter.Limit()
	}

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	a.handler = middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger, rest.HealthPaths...),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
		limit,
	)(router)

	return a
}

// Handler returns the fully wrapped HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Serve listens on the configured address until ctx is cancelled, then
// shuts the server down within the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
	srv.RegisterOnShutdown(func() {
		a.log.Info("http server shutting down")
	})

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	a.log.Info("http server stopped")
	return nil
}

// Close releases storage connections and background workers.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.Warn("close redis client", slog.String("error", err.Error()))
		}
	}
	a.pool.Close()
}
