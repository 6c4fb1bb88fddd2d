package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"dosetrack/internal/adapter/bolt"
	adapthttp "dosetrack/internal/adapter/http"
	"dosetrack/internal/adapter/memory"
	"dosetrack/internal/adapter/postgres"
	"dosetrack/internal/adapter/redisstore"
	"dosetrack/internal/adapter/sqlite"
	"dosetrack/internal/app"
	"dosetrack/internal/config"
	"dosetrack/internal/domain"
	"dosetrack/internal/metrics"
	"dosetrack/internal/reminder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closer, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store open: %v", err)
	}
	defer func() { _ = closer.Close() }()
	log.Printf("store: %s", cfg.Store)

	tracker, err := app.NewTracker(ctx, app.NewGateway(store))
	if err != nil {
		log.Fatalf("load state: %v", err)
	}

	if cfg.Reminders {
		sched := reminder.New(tracker, reminder.WithLead(cfg.ReminderLead))
		if err := sched.Start(); err != nil {
			log.Fatalf("reminders: %v", err)
		}
		tracker.OnChange(sched.OnChange)
		defer func() { <-sched.Stop().Done() }()
	}

	api := adapthttp.New(tracker, cfg.WebDir).
		WithWriteLimit(rate.NewLimiter(rate.Limit(cfg.WriteRate), cfg.WriteBurst))
	if cfg.Metrics {
		api = api.WithMetrics(metrics.New(tracker))
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func openStore(cfg config.Config) (domain.StateStore, io.Closer, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return memory.New(), closerFunc(func() error { return nil }), nil
	case config.StoreSQLite:
		s, err := sqlite.Open(cfg.DataPath)
		return s, s, err
	case config.StoreRedis:
		s, err := redisstore.Open(cfg.RedisAddr)
		return s, s, err
	case config.StorePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		return db, db, err
	default:
		s, err := bolt.Open(cfg.DataPath)
		return s, s, err
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
