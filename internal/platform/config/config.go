package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	AllowedOrigins []string

	// Rate limiting, e.g. "100-M" for 100 requests per minute.
	RateLimit string

	// Product analytics
	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ALLOWED_ORIGINS", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	// Comma separated origin allow list. Empty means allow all, which is
	// only acceptable outside production.
	rawOrigins := viper.GetString("ALLOWED_ORIGINS")
	if rawOrigins != "" {
		for _, origin := range strings.Split(rawOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	} else if cfg.IsProduction {
		log.Println("Warning: ALLOWED_ORIGINS not set in production. All origins will be allowed.")
	}

	return cfg, nil
}
