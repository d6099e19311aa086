package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// RateLimit uses the ulule/limiter formatted-rate syntax, e.g. "100-M"
	// for 100 requests per minute per client IP.
	RateLimit string

	// PaymentFailureRate is the probability in [0,1] that the simulated
	// payment gateway declines a charge. Injectable so tests can pin it.
	PaymentFailureRate float64

	// PaymentFeeRate is the processing fee fraction applied to charges.
	PaymentFeeRate float64

	// MaxUploadSizeBytes caps document uploads.
	MaxUploadSizeBytes int64

	FrontendBaseURL string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("PAYMENT_FAILURE_RATE", 0.05)
	viper.SetDefault("PAYMENT_FEE_RATE", 0.029)
	viper.SetDefault("MAX_UPLOAD_SIZE_BYTES", 10*1024*1024)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.PaymentFailureRate = viper.GetFloat64("PAYMENT_FAILURE_RATE")
	if cfg.PaymentFailureRate < 0 || cfg.PaymentFailureRate > 1 {
		log.Printf("Warning: PAYMENT_FAILURE_RATE %v outside [0,1]. Defaulting to 0.05.\n", cfg.PaymentFailureRate)
		cfg.PaymentFailureRate = 0.05
	}

	cfg.PaymentFeeRate = viper.GetFloat64("PAYMENT_FEE_RATE")
	if cfg.PaymentFeeRate < 0 || cfg.PaymentFeeRate >= 1 {
		log.Printf("Warning: PAYMENT_FEE_RATE %v outside [0,1). Defaulting to 0.029.\n", cfg.PaymentFeeRate)
		cfg.PaymentFeeRate = 0.029
	}

	cfg.MaxUploadSizeBytes = viper.GetInt64("MAX_UPLOAD_SIZE_BYTES")
	if cfg.MaxUploadSizeBytes <= 0 {
		cfg.MaxUploadSizeBytes = 10 * 1024 * 1024
	}

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}
