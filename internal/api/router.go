package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/charlesng35/storefeed/internal/app"
	"github.com/charlesng35/storefeed/internal/cache"
	"github.com/charlesng35/storefeed/internal/feeds"
	"github.com/charlesng35/storefeed/internal/handlers"
	"github.com/charlesng35/storefeed/internal/middleware"
	"github.com/charlesng35/storefeed/internal/services"
)

// NewRouter builds the Gin engine, wires middleware and registers routes.
func NewRouter(db *gorm.DB, store cache.Store, cfg *app.Config, rateStore middleware.RateStore) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if store == nil {
		return nil, fmt.Errorf("cache store must be provided")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}

	renderer, err := feeds.NewRenderer(db, cfg.Feeds.RendererConfig())
	if err != nil {
		return nil, err
	}

	languages, err := services.NewLanguageService(db)
	if err != nil {
		return nil, err
	}
	settings, err := services.NewSettingsService(db)
	if err != nil {
		return nil, err
	}

	feedSvc, err := services.NewFeedService(db, store, renderer, languages, settings)
	if err != nil {
		return nil, err
	}

	feedHandler, err := handlers.NewFeedHandler(feedSvc, cfg.Feeds.FlushToken)
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	if cfg.Server.RateLimit.Enabled {
		r.Use(middleware.RateLimit(rateStore, cfg.Server.RateLimit.MaxRequests, cfg.Server.RateLimit.Window))
	}

	r.GET("/feed", feedHandler.Get)

	if cfg.Monitoring.Health.Enabled {
		r.GET("/health", handlers.Health())
	}
	if cfg.Monitoring.Prometheus.Enabled {
		endpoint := cfg.Monitoring.Prometheus.Endpoint
		if endpoint == "" {
			endpoint = "/metrics"
		}
		r.GET(endpoint, gin.WrapH(promhttp.Handler()))
	}

	r.NoRoute(middleware.NotFoundHandler)

	return r, nil
}
