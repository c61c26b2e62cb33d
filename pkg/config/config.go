package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	Environment  string
	IsProduction bool
	RateLimit    string
	CORSOrigins  []string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present. APP_ENV selects the data store: "test" uses
// PGSQL_TEST_URL, everything else uses PGSQL_URL.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PGSQL_URL", "postgresql:///biztime")
	viper.SetDefault("PGSQL_TEST_URL", "postgresql:///biztime_test")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Environment = viper.GetString("APP_ENV")
	if cfg.Environment == "test" {
		cfg.DatabaseURL = viper.GetString("PGSQL_TEST_URL")
	} else {
		cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: no database URL configured.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	// ulule/limiter formatted rate, e.g. "100-M" for 100 requests/minute.
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, trimmed)
		}
	}

	return cfg, nil
}
