package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/geekflex/geekflex-api/api/contents"
	"github.com/geekflex/geekflex-api/api/health"
	"github.com/geekflex/geekflex-api/api/search"
	"github.com/geekflex/geekflex-api/api/types"
	"github.com/geekflex/geekflex-api/api/version"
	_ "github.com/geekflex/geekflex-api/docs/swagger"
	contentsService "github.com/geekflex/geekflex-api/internal/services/contents"
	"github.com/geekflex/geekflex-api/internal/services/tmdb"
	"github.com/geekflex/geekflex-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Initialize services if not already set
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Initialize provider client if not set
	if deps.SearchClient == nil {
		deps.SearchClient = tmdb.NewClient(tmdb.Config{
			BaseURL:     cfg.TMDB.BaseURL,
			AccessToken: cfg.TMDB.AccessToken,
			Language:    cfg.TMDB.Language,
			Region:      cfg.TMDB.Region,
			UserAgent:   cfg.TMDB.UserAgent,
			Timeout:     cfg.TMDB.Timeout,
		})
	}

	// Register search routes with dedicated rate limiting (5 req/s, burst of 10)
	searchGroup := v1.Group("/search")
	searchGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	search.RegisterRoutes(searchGroup, deps)

	// Initialize services if database is available
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.ContentService == nil {
			initializeContentService(deps)
		}

		// Register content routes with general rate limiting (10 req/s, burst of 20)
		contentGroup := v1.Group("/contents")
		contentGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		contents.RegisterRoutes(contentGroup, deps)
	}

	return nil
}

// initializeContentService creates and configures the content service
func initializeContentService(deps *types.Dependencies) {
	repo := contentsService.NewRepository(deps.DB.DB)
	fetcher := deps.SearchClient.(*tmdb.Client)
	deps.ContentService = contentsService.NewService(repo, fetcher)
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
