package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/geekflex/geekflex-api/internal/database"
	"github.com/geekflex/geekflex-api/internal/models"
	"github.com/geekflex/geekflex-api/internal/services/contents"
	"github.com/geekflex/geekflex-api/internal/services/reconcile"
	"github.com/geekflex/geekflex-api/internal/services/tags"
	"github.com/geekflex/geekflex-api/internal/services/tmdb"
	"github.com/geekflex/geekflex-api/pkg/config"
	"github.com/spf13/cobra"
)

var reconcileCategory string

// reconcileCmd represents the reconcile command
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run one category reconcile pass",
	Long: `Run a single reconcile pass against the provider without starting
the server. Useful for warming a fresh database or forcing a refresh
outside the cron schedule.

Example:
  geekflex-api reconcile
  geekflex-api reconcile --category POPULAR`,
	RunE: runReconcile,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)

	reconcileCmd.Flags().StringVar(&reconcileCategory, "category", "", "reconcile only this category (default: all)")
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
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

	tmdbClient := tmdb.NewClient(tmdb.Config{
		BaseURL:     cfg.TMDB.BaseURL,
		AccessToken: cfg.TMDB.AccessToken,
		Language:    cfg.TMDB.Language,
		Region:      cfg.TMDB.Region,
		UserAgent:   cfg.TMDB.UserAgent,
		Timeout:     cfg.TMDB.Timeout,
	})
	contentRepo := contents.NewRepository(db.DB)
	tagRepo := tags.NewRepository(db.DB)
	service := reconcile.NewService(tmdbClient, contentRepo, tagRepo, cfg.TMDB.Region)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Reconcile.JobTimeout)
	defer cancel()

	if reconcileCategory != "" {
		category, ok := reconcile.CategoryByName(reconcileCategory)
		if !ok {
			return fmt.Errorf("unknown category %q (known: %v)", reconcileCategory, reconcile.CategoryNames())
		}
		return service.ReconcileCategory(ctx, category)
	}

	return service.ReconcileAll(ctx)
}
