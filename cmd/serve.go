package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/geekflex/geekflex-api/api"
	"github.com/geekflex/geekflex-api/api/types"
	"github.com/geekflex/geekflex-api/internal/database"
	"github.com/geekflex/geekflex-api/internal/models"
	"github.com/geekflex/geekflex-api/internal/services/contents"
	"github.com/geekflex/geekflex-api/internal/services/reconcile"
	"github.com/geekflex/geekflex-api/internal/services/scheduler"
	"github.com/geekflex/geekflex-api/internal/services/tags"
	"github.com/geekflex/geekflex-api/internal/services/tmdb"
	"github.com/geekflex/geekflex-api/pkg/config"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the GeekFlex API server with the configured settings.

The server migrates the database, starts the category reconcile
scheduler, and serves the catalog and search endpoints.

Example:
  geekflex-api serve
  geekflex-api serve --port 9090
  geekflex-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	if cfg.Database.Path == "" {
		return fmt.Errorf("no database path configured")
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("[WARN] Error closing database: %v", err)
		}
	}()

	if err := db.AutoMigrate(&models.Content{}, &models.CategoryTag{}); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	// Wire services
	tmdbClient := tmdb.NewClient(tmdb.Config{
		BaseURL:     cfg.TMDB.BaseURL,
		AccessToken: cfg.TMDB.AccessToken,
		Language:    cfg.TMDB.Language,
		Region:      cfg.TMDB.Region,
		UserAgent:   cfg.TMDB.UserAgent,
		Timeout:     cfg.TMDB.Timeout,
	})
	contentRepo := contents.NewRepository(db.DB)
	contentService := contents.NewService(contentRepo, tmdbClient)
	tagRepo := tags.NewRepository(db.DB)
	reconcileService := reconcile.NewService(tmdbClient, contentRepo, tagRepo, cfg.TMDB.Region)

	deps := &types.Dependencies{
		DB:               db,
		ContentService:   contentService,
		SearchClient:     tmdbClient,
		ReconcileService: reconcileService,
	}

	// Start the reconcile scheduler
	var sched *scheduler.Scheduler
	if cfg.Reconcile.Enabled {
		sched = scheduler.New(reconcileService, cfg.Reconcile.JobTimeout)
		for _, category := range reconcile.DefaultCategories {
			if err := sched.AddCategory(category); err != nil {
				return fmt.Errorf("failed to schedule category %s: %w", category.Name, err)
			}
		}
		sched.Start()
		defer sched.Stop()
	}

	if cfg.Reconcile.RunOnStart {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Reconcile.JobTimeout)
			defer cancel()
			if err := reconcileService.ReconcileAll(ctx); err != nil {
				log.Printf("[WARN] Initial reconcile pass finished with errors: %v", err)
			}
		}()
	}

	// Create and initialize the HTTP server
	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	log.Printf("[INFO] Starting GeekFlex API server on %s:%d", serverHost, serverPort)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	select {
	case <-stop:
		log.Println("[INFO] Shutting down server...")
	case err := <-serverErr:
		log.Printf("[ERROR] %v", err)
		log.Println("[INFO] Shutting down server...")
	}

	// Create a context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] Server forced to shutdown: %v", err)
		return err
	}

	log.Println("[INFO] Server gracefully stopped")
	return nil
}
