package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mini-shop/internal/config"
	"mini-shop/internal/database"
	"mini-shop/internal/handler"
	"mini-shop/internal/repository"
	"mini-shop/internal/router"
	"mini-shop/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting mini-shop API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Establish storage. A missing or unreachable database is not fatal:
	// the service degrades to static responses instead.
	store := repository.NewUnavailableStore()
	if !cfg.Database.Configured() {
		logger.Warn().Msg("DATABASE_URL not set, running without storage")
	} else {
		db, err := database.Connect(ctx, cfg.Database, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("storage connection failed, running without storage")
		} else {
			store = repository.NewMongoStore(db, logger)
			defer func() {
				disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer disconnectCancel()
				if err := db.Client().Disconnect(disconnectCtx); err != nil {
					logger.Error().Err(err).Msg("failed to disconnect from storage")
				}
			}()
		}
	}

	// Initialize services
	productService := service.NewProductService(store, logger)
	orderService := service.NewOrderService(store, logger)
	diagnosticsService := service.NewDiagnosticsService(
		store,
		cfg.Database.Configured(),
		cfg.Database.Name != "",
		logger,
	)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	diagnosticsHandler := handler.NewDiagnosticsHandler(diagnosticsService, logger)

	// Initialize router
	mux := router.New(productHandler, orderHandler, diagnosticsHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Bool("storage_available", store.Available()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
