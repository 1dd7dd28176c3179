package cmd

import (
	"fmt"
	"log"

	"github.com/geekflex/geekflex-api/internal/database"
	"github.com/geekflex/geekflex-api/internal/models"
	"github.com/geekflex/geekflex-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Apply the GeekFlex API database schema.

Runs GORM auto-migration for the content and category tag tables,
creating or updating them as needed. Safe to run repeatedly.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
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

	fmt.Fprintln(cmd.OutOrStdout(), "Database schema is up to date")
	return nil
}
