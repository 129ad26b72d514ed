package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/adapter/completion"
	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/auth"
	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/config"
	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/logging"
	store "github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/repository"
	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/service"
	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/telemetry"
	transport "github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/transport/http"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFile)

	logger.Info().
		Int("port", cfg.HTTPPort).
		Str("database", cfg.DatabaseURL).
		Str("model", cfg.GeminiModel).
		Msg("starting chat service")

	if cfg.JWTSecret == "" {
		logger.Fatal().Msg("JWT_SECRET is required")
	}

	// Initialize telemetry
	ctx := context.Background()
	tracer, meter, telemetryCleanup, err := telemetry.Init(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer telemetryCleanup()

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize store")
	}
	defer db.Close()

	// Initialize completion client
	completionClient := completion.NewClient(
		cfg.GeminiAPIURL, cfg.GeminiModel, cfg.GeminiAPIKey, cfg.CompletionTimeout, logger)

	// Initialize credential verifier
	verifier := auth.NewVerifier(cfg.JWTSecret)

	// Initialize service and server
	svc := service.New(db, completionClient, cfg, logger, tracer, meter)
	server := transport.NewServer(svc, verifier, logger)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	logger.Info().Int("port", cfg.HTTPPort).Msg("chat service started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down chat service")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server gracefully")
	}

	logger.Info().Msg("chat service stopped")
}
