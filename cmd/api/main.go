package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"givehope_backend/internal/auth"
	"givehope_backend/internal/cart"
	"givehope_backend/internal/cart/storage"
	"givehope_backend/internal/catalog"
	apphttp "givehope_backend/internal/http"
	"givehope_backend/internal/http/router"
	"givehope_backend/migrations"
	"givehope_backend/platform/cache"
	"givehope_backend/platform/config"
	"givehope_backend/platform/db"
	"givehope_backend/platform/logger"
	"givehope_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	if cfg.MigrationsDisabled {
		log.Warn("database migrations disabled")
	} else {
		if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
			return db.RunMigrations(ctx, pool, migrations.FS)
		}); err != nil {
			log.Error("failed to run database migrations", "error", err)
			panic("failed to run database migrations: " + err.Error())
		}
		log.Info("database migrations complete")
	}

	cartBackend, closeBackend := initCartBackend(ctx, cfg, log)
	if closeBackend != nil {
		defer closeBackend()
	}

	// ========================================================================
	// Domain Modules
	// ========================================================================

	val := validator.New()

	catalogModule, err := catalog.NewModule(val, log)
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		panic("failed to load catalog: " + err.Error())
	}
	cartModule := cart.NewModule(cartBackend, catalogModule.Service(), val, cfg, log)
	authModule := auth.NewModule(pool, val, cfg, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: db.NewPoolAdapter(pool),
		Modules: []apphttp.Module{
			authModule,
			catalogModule,
			cartModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return cartModule.Sessions().Run(gctx, sweepInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// initCartBackend picks Redis when REDIS_URL is set and falls back to an
// in-process map otherwise.
func initCartBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (storage.Backend, func()) {
	if !cfg.IsRedisEnabled() {
		log.Warn("REDIS_URL not configured; carts are kept in memory only")
		return storage.NewMemory(), nil
	}

	var client *redis.Client
	if err := withRetry(ctx, log, "redis connection", 5, time.Second, func() error {
		c, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			return err
		}
		client = c
		return nil
	}); err != nil {
		log.Error("failed to connect to redis", "error", err)
		panic("failed to connect to redis: " + err.Error())
	}
	log.Info("redis connection established")

	return storage.NewRedis(client, cfg.GetCartKeyPrefix(), cfg.GetCartTTL()), func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
