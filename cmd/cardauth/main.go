package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlenaMolokova/cardauth/internal/config"
	"github.com/AlenaMolokova/cardauth/internal/router"
	"github.com/AlenaMolokova/cardauth/internal/storage"
	"github.com/AlenaMolokova/cardauth/internal/usecase"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store usecase.StatsStorage
	if cfg.DatabaseURI == "" {
		log.Info("DATABASE_URI is empty, keeping stats in memory")
		store = storage.NewMemoryStorage()
	} else {
		if err := storage.ApplyMigrations(cfg.DatabaseURI, cfg.MigrationsPath); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}

		db, err := pgxpool.New(ctx, cfg.DatabaseURI)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		pgStore, err := storage.NewStorage(db)
		if err != nil {
			log.Fatalf("Failed to create storage: %v", err)
		}
		store = pgStore
	}

	if cfg.APIKeyHash == "" {
		log.Warn("API_KEY_HASH not set, stats tokens cannot be issued")
	}

	srv := &http.Server{
		Addr: cfg.RunAddr,
		Handler: router.SetupRoutes(store, router.Options{
			JWTSecret:  cfg.JWTSecret,
			APIKeyHash: cfg.APIKeyHash,
			TokenTTL:   cfg.TokenTTL,
		}),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Infof("Starting card authenticator on %s", cfg.RunAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown failure: %v", err)
	}
	log.Info("Server exited")
}
