package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("GEEKFLEX")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
			// Config file doesn't exist, which is fine - we'll use defaults
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		// Database is optional here so the migrate command can supply
		// its own path, but warn since serve will refuse to start
		fmt.Println("Warning: No database path configured")
	}

	if err := validateAccessToken(); err != nil {
		return err
	}

	// Auto-correct invalid rate limit settings
	if viper.GetFloat64("rate_limit.requests_per_second") <= 0 {
		viper.Set("rate_limit.requests_per_second", 10.0)
	}
	if viper.GetInt("rate_limit.burst") <= 0 {
		viper.Set("rate_limit.burst", 20)
	}

	return nil
}

// validateAccessToken rejects placeholder provider credentials in
// production and warns about them elsewhere
func validateAccessToken() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_TOKEN_HERE",
		"YOUR_ACCESS_TOKEN",
		"changeme",
		"CHANGEME",
		"",
	}

	token := viper.GetString("tmdb.access_token")
	for _, placeholder := range placeholders {
		if token == placeholder {
			if isProduction {
				return fmt.Errorf("invalid TMDB access token: cannot use placeholder values in production")
			}
			fmt.Println("Warning: TMDB access token is using a placeholder value")
			break
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		c.RateLimit.RequestsPerSecond = 10.0
	}

	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = 20
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/geekflex.db")
	viper.SetDefault("database.log_queries", false)

	// TMDB provider defaults
	viper.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	viper.SetDefault("tmdb.access_token", "")
	viper.SetDefault("tmdb.language", "en-US")
	viper.SetDefault("tmdb.region", "US")
	viper.SetDefault("tmdb.timeout", 10*time.Second)
	viper.SetDefault("tmdb.user_agent", "GeekFlexAPI/1.0")

	// Reconcile defaults
	viper.SetDefault("reconcile.enabled", true)
	viper.SetDefault("reconcile.run_on_start", false)
	viper.SetDefault("reconcile.job_timeout", 2*time.Minute)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.enable_request_id", true)
	viper.SetDefault("security.max_request_bytes", int64(1048576))

	// Rate limit defaults
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 10.0)
	viper.SetDefault("rate_limit.burst", 20)
}
