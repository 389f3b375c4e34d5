// Package main is the entry point for the paid-parking API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/paid-parking/backend/internal/broker"
	"github.com/pkordes/paid-parking/backend/internal/clock"
	"github.com/pkordes/paid-parking/backend/internal/config"
	"github.com/pkordes/paid-parking/backend/internal/handler"
	"github.com/pkordes/paid-parking/backend/internal/middleware"
	"github.com/pkordes/paid-parking/backend/internal/repo"
	"github.com/pkordes/paid-parking/backend/internal/service"
	"github.com/pkordes/paid-parking/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Migrations -------------------------------------------------------
	// goose needs database/sql; OpenDBFromPool shares the pool's config.
	sqlDB := stdlib.OpenDBFromPool(pool)
	provider, err := migrations.NewProvider(sqlDB)
	if err != nil {
		slog.Error("failed to create migration provider", "error", err)
		os.Exit(1)
	}
	results, err := provider.Up(context.Background())
	if err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	_ = sqlDB.Close()
	slog.Info("migrations applied", "count", len(results))

	// --- Notifications ----------------------------------------------------
	var pub service.Publisher
	if cfg.AMQPURL != "" {
		amqpPub, err := broker.Dial(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			slog.Error("failed to connect to message broker", "error", err)
			os.Exit(1)
		}
		defer func() { _ = amqpPub.Close() }()
		pub = amqpPub
		slog.Info("publishing notifications", "exchange", cfg.AMQPExchange)
	}

	// --- Services ---------------------------------------------------------
	clk := clock.NewSystem()
	tx := repo.NewTxRunner(pool)
	stayRepo := repo.NewStayRepo(pool)

	recorder := service.NewRecorderService(tx, repo.NewEventRepo(pool), stayRepo, clk,
		service.WithRecorderPublisher(pub),
		service.WithRecorderLogger(logger),
		service.WithRejectedEvents(cfg.RecordRejectedEvents),
	)
	invoicer := service.NewInvoiceService(tx, stayRepo, repo.NewInvoiceRepo(pool), clk, cfg.RatePerMinute,
		service.WithInvoicePublisher(pub),
		service.WithInvoiceLogger(logger),
		service.WithDedupe(cfg.InvoiceDedupe),
	)
	stays := service.NewStayService(stayRepo)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit → rate limit.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Handler)

	srv := handler.NewServer(recorder, stays, invoicer, pool, logger)
	r.Mount("/", handler.Handler(srv))

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr, "rate_per_minute", cfg.RatePerMinute)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
