// Package main is the entry point for the FinZ API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/finz/backend/config"
	"github.com/finz/backend/internal/application/state"
	"github.com/finz/backend/internal/infra/dependency"
	"github.com/finz/backend/internal/infra/storage"
	"github.com/finz/backend/internal/integration/adapters"
	"github.com/finz/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting FinZ API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"storage", cfg.Storage.Backend,
	)

	// Open the slot backend
	store, err := storage.Open(cfg)
	if err != nil {
		slog.Error("Failed to open storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	// Load both collections once
	transactionRepo := persistence.NewTransactionRepository(store.Slots, cfg.Storage.TransactionsSlot)
	goalRepo := persistence.NewGoalRepository(store.Slots, cfg.Storage.GoalsSlot)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	appState, err := state.LoadState(loadCtx, transactionRepo, goalRepo, state.LoadOptions{
		SeedDemoData: cfg.App.SeedDemoData,
	})
	cancelLoad()
	if err != nil {
		slog.Error("Failed to load application state", "error", err)
		os.Exit(1)
	}

	// Create the advice collaborator
	adviceService := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if !adviceService.IsAvailable() {
		slog.Warn("GEMINI_API_KEY not set, advisor answers with a fixed reply")
	}

	injector := dependency.NewInjector(cfg, appState, dependency.Services{
		StorageHealth:  store.HealthCheck,
		StorageBackend: store.Backend,
		Advice:         adviceService,
	})
	engine := injector.Router.Setup(cfg.Server.Environment)

	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go injector.AdvisorRateLimiter.RunCleanup(cleanupCtx, cfg.Advisor.RateWindow)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
