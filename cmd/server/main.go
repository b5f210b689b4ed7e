package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vendortrack/internal/audit"
	"vendortrack/internal/auth"
	"vendortrack/internal/kvstore"
	"vendortrack/internal/platform/config"
	"vendortrack/internal/platform/httpserver"
	"vendortrack/internal/platform/logger"
	platformredis "vendortrack/internal/platform/redis"
	"vendortrack/internal/tracker/handler"
	"vendortrack/internal/tracker/metrics"
	"vendortrack/internal/tracker/service"
	"vendortrack/internal/tracker/store"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	kv, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("failed to open storage backend", "backend", cfg.Backend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	collections := store.New(kv)
	if cfg.Seed {
		seeded, err := collections.EnsureInitialized(ctx)
		if err != nil {
			log.Error("failed to initialize storage", "error", err)
			os.Exit(1)
		}
		if seeded {
			log.Info("storage initialized with seed data")
		}
	}

	jwtService := auth.NewJWTService(cfg.JWTSigningKey, cfg.TokenTTL)
	recorder := audit.NewRecorder(collections, log)
	svc := service.New(collections,
		service.WithLogger(log),
		service.WithAudit(recorder),
		service.WithMetrics(metrics.New()),
		service.WithTokenIssuer(jwtService),
	)
	h := handler.New(svc, recorder, log)

	router := chi.NewRouter()
	router.Use(auth.RequestContext)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())
	router.Group(h.RegisterPublic)
	router.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtService, log))
		h.Register(r)
	})

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting vendortrack", "addr", cfg.Addr, "backend", cfg.Backend)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// openStore builds the configured key-value backend and a cleanup closing its
// connections.
func openStore(ctx context.Context, cfg config.Server) (kvstore.Store, func(), error) {
	switch cfg.Backend {
	case config.BackendRedis:
		client, err := platformredis.New(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return kvstore.NewRedis(client, "vendortrack"), func() { _ = client.Close() }, nil
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		pg, err := kvstore.NewPostgres(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return pg, func() { _ = db.Close() }, nil
	default:
		return kvstore.NewMemory(), func() {}, nil
	}
}
