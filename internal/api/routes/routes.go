package routes

import (
	"resumatch-utils/internal/analyzer"
	"resumatch-utils/internal/api/handlers"
	"resumatch-utils/internal/api/middleware"
	"resumatch-utils/internal/config"
	"resumatch-utils/internal/fetcher"
	"resumatch-utils/internal/parser"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, p *parser.Parser, a *analyzer.Analyzer, f *fetcher.Fetcher, cache *fetcher.PageCache) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(cache))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler)

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		resume := v1.Group("/resume")
		{
			resume.POST("/parse", handlers.ParseResumeHandler(p))
		}

		v1.POST("/analyze", handlers.AnalyzeHandler(p, a, f))

		jobs := v1.Group("/jobs")
		{
			jobs.POST("/fetch", handlers.FetchJobHandler(f))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "Resumatch Utils",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
