package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resumatch-utils/internal/analyzer"
	"resumatch-utils/internal/api/routes"
	"resumatch-utils/internal/config"
	"resumatch-utils/internal/fetcher"
	"resumatch-utils/internal/logging"
	"resumatch-utils/internal/nlp"
	"resumatch-utils/internal/parser"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging system
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting Resumatch Utils")

	// Shared noun phrase extractor, used by both the parser and the analyzer
	phrases := nlp.NewProseExtractor()

	resumeParser := parser.New(parser.Config{
		BulletGlyphs: cfg.Parser.BulletGlyphs,
	}, phrases)

	skillAnalyzer := analyzer.New(nil, nil, phrases)

	// Page cache is optional; the fetcher works without it
	cache, err := fetcher.NewPageCache(cfg)
	if err != nil {
		logger.Warn("Page cache unavailable, fetching without cache", map[string]interface{}{
			"error": err.Error(),
		})
		cache = nil
	}
	jobFetcher := fetcher.New(cfg, cache, logger)

	// Initialize Echo
	e := echo.New()

	// Setup routes
	routes.SetupRoutes(e, cfg, resumeParser, skillAnalyzer, jobFetcher, cache)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		if cache != nil {
			logger.Info("Closing page cache...")
			if err := cache.Close(); err != nil {
				logger.Error("Error closing page cache", map[string]interface{}{"error": err.Error()})
			}
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}
