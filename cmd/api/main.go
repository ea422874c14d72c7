package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pico-pos/internal/app"
	"pico-pos/internal/catalog"
	"pico-pos/internal/config"
	"pico-pos/internal/events"
	"pico-pos/internal/insight"
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
	logger.Info().Msg("starting pico-pos API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize seed loader with S3 and local fallback
	fileLoader := catalog.NewFileLoader(logger)
	var s3Loader catalog.Loader
	if cfg.S3.Enabled {
		s3Loader, err = catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			s3Loader = nil
		}
	}
	seedLoader := catalog.WithDefault(
		catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger),
		logger,
	)

	seed, err := seedLoader.Load(ctx, cfg.Seed.Path)
	if err != nil {
		return fmt.Errorf("failed to load seed catalogue: %w", err)
	}

	// Initialize insight backend
	var aiClient insight.Client = insight.Unavailable{}
	if cfg.AI.APIKey != "" {
		gemini, err := insight.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialise Gemini client, AI insight disabled")
		} else {
			aiClient = gemini
		}
	} else {
		logger.Info().Msg("no Gemini API key configured, AI insight disabled")
	}

	// Initialize order event publisher
	publisher := events.NewNopPublisher()
	if cfg.Events.Enabled {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.Events.URL, cfg.Events.Exchange, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to connect event publisher, order events disabled")
		} else {
			publisher = amqpPublisher
		}
	}
	defer publisher.Close()

	application := app.New(seed, app.Options{
		Insight:      aiClient,
		Credits:      cfg.AI.Credits,
		AITimeout:    cfg.AI.Timeout,
		Publisher:    publisher,
		EventTimeout: cfg.Events.Timeout,
		DemoMarker:   cfg.Session.DemoMarker,
	}, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      application.Handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AI.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Int("menu_items", len(seed.Menu)).
			Int("tables", len(seed.Tables)).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
