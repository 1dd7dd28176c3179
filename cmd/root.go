package cmd

import (
	"fmt"
	"os"

	"github.com/geekflex/geekflex-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "geekflex-api",
	Short: "GeekFlex catalog API server",
	Long: `GeekFlex API - a movie and TV catalog backed by a local TMDB mirror

The server keeps ranked category listings (now playing, popular, top
rated, upcoming) synchronized into a local SQLite database on a cron
schedule, and materializes individual titles on demand the first time
they are requested.

Features:
  • Periodic category reconciliation from TMDB
  • Lazy single-title materialization with race-safe inserts
  • Provider search with exact/prefix/popularity re-ranking
  • Read API over the local mirror`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
// This is called lazily only when a command that needs config runs
func loadConfig() {
	// Skip config loading for commands that don't need it
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	// Initialize the configuration
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
