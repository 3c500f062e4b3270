package main

import (
	"retailnexa_site/config"
	"retailnexa_site/handlers"
	"retailnexa_site/middleware"
	"retailnexa_site/models"
	"retailnexa_site/templates"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// newServer wires middleware and routes. The returned limiter guards the
// lead routes and must be stopped by the caller.
func newServer(cfg *config.Config, landing *models.Landing, logger *zap.Logger) (*echo.Echo, *middleware.RateLimiter) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = templates.NewUniversalRenderer()

	// Middleware
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: middleware.NewRequestID,
	}))
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.AccessLog(logger))
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CSPNonce())
	e.Use(middleware.Locale(cfg))
	e.Use(handlers.Inject(cfg, landing))
	e.Use(middleware.CSRF(cfg.IsProduction()))

	// Static files
	e.Static("/static", cfg.StaticDir)

	// Public pages
	e.GET("/", handlers.LandingHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.RobotsHandler)
	e.GET("/health", handlers.HealthHandler)

	// Lead form
	limiter := middleware.LeadFormRateLimiter(cfg.LeadRateLimit)
	e.POST("/lead", handlers.LeadPostHandler, limiter.Middleware())
	e.POST("/api/lead", handlers.LeadAPIHandler, limiter.Middleware())

	return e, limiter
}
