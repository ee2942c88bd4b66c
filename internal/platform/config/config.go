package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Rate limiting for the /api/v1 group
	RateLimitRequests int64
	RateLimitPeriod   time.Duration

	// Default max transactions returned per account listing
	DefaultTxnLimit int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_PERIOD", "1m")
	viper.SetDefault("DEFAULT_TXN_LIMIT", 10)

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
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.RateLimitRequests = viper.GetInt64("RATE_LIMIT_REQUESTS")
	if cfg.RateLimitRequests <= 0 {
		cfg.RateLimitRequests = 100
	}

	periodStr := viper.GetString("RATE_LIMIT_PERIOD")
	period, err := time.ParseDuration(periodStr)
	if err != nil {
		period = time.Minute
		if periodStr != "" {
			log.Printf("Warning: Invalid value for RATE_LIMIT_PERIOD ('%s'). Defaulting to %s.\n", periodStr, period.String())
		}
	}
	cfg.RateLimitPeriod = period

	cfg.DefaultTxnLimit = viper.GetInt("DEFAULT_TXN_LIMIT")
	if cfg.DefaultTxnLimit <= 0 {
		cfg.DefaultTxnLimit = 10
	}

	return cfg, nil
}
