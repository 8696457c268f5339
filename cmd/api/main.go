package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-care-dashboard/internal/adapters/auth/introspect"
	jwtauth "pet-care-dashboard/internal/adapters/auth/jwt"
	rediscache "pet-care-dashboard/internal/adapters/cache/redis"
	pg "pet-care-dashboard/internal/adapters/storage/postgres"
	"pet-care-dashboard/internal/config"
	"pet-care-dashboard/internal/domain/catalog"
	"pet-care-dashboard/internal/middleware"
	"pet-care-dashboard/internal/platform/logger"
	"pet-care-dashboard/internal/ports/auth"
	"pet-care-dashboard/internal/router"
)

// @title Pet Care Dashboard API
// @version 1.0
// @description Mascotas, citas, catálogo de medicaciones y vacunas, tracker y métricas de salud.
// @BasePath /
func main() {
	log := logger.NewFromEnv()
	if err := run(log); err != nil {
		log.Error("exit", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

// run devuelve el error en vez de salir, así los defer cierran db y redis.
func run(log logger.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("db open: %w", err)
		}
		defer db.Close()
		if err := pg.Migrate(ctx, db); err != nil {
			return fmt.Errorf("db migrate: %w", err)
		}
		log.Info("connected to postgres", nil)
	} else {
		log.Info("using in-memory storage", nil)
	}

	var cache catalog.Cache
	if cfg.RedisAddr != "" {
		rdb, err := rediscache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer rdb.Close()
		cache = rediscache.NewCatalogCache(rdb, cfg.CatalogCacheTTL)
		log.Info("catalog cache enabled", map[string]any{"addr": cfg.RedisAddr, "ttl": cfg.CatalogCacheTTL.String()})
	}

	var verifier auth.AuthVerifier // nil => modo dev (X-Debug-User-ID)
	switch {
	case cfg.JWTSecret != "":
		verifier = jwtauth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	case cfg.IntrospectURL != "":
		verifier = introspect.NewVerifier(introspect.Config{URL: cfg.IntrospectURL, APIKey: cfg.IntrospectAPIKey})
		log.Info("auth via token introspection", map[string]any{"url": cfg.IntrospectURL})
	default:
		log.Warn("no auth configured, accepting X-Debug-User-ID", nil)
	}

	h, err := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Logger:       log,
		RateLimiter:  middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		CatalogCache: cache,
		SeedDemoUser: cfg.SeedDemoUser,
	})
	if err != nil {
		return fmt.Errorf("router: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
