package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingMongoURI is returned by Load when MONGODB_URI is not set.
var ErrMissingMongoURI = errors.New("MONGODB_URI is required")

// Config holds all configuration for the application
type Config struct {
	MongoURI       string
	MongoDatabase  string
	Environment    string
	Port           string
	LogLevel       string
	ContextTimeout time.Duration
	AllowedOrigins []string
	Email          EmailConfig
}

// EmailConfig holds the mailer settings for booking confirmations.
type EmailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	InsecureSkipVerify bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := getenv("GO_ENV", "development")

	// Outside production a missing .env is normal; system environment variables still apply.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			slog.Debug(".env file not loaded", "err", err)
		}
	}

	cfg := &Config{
		MongoURI:       os.Getenv("MONGODB_URI"),
		MongoDatabase:  getenv("MONGODB_DB", "devevents"),
		Environment:    env,
		Port:           getenv("PORT", "8080"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		Email: EmailConfig{
			Provider:           getenv("EMAIL_PROVIDER", "noop"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("EMAIL_FROM_NAME"),
			AWSRegion:          os.Getenv("AWS_REGION"),
			AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	if cfg.MongoURI == "" {
		return nil, ErrMissingMongoURI
	}

	timeout, err := time.ParseDuration(getenv("CONTEXT_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("CONTEXT_TIMEOUT must be a positive duration, got %q", os.Getenv("CONTEXT_TIMEOUT"))
	}
	cfg.ContextTimeout = timeout

	if s := os.Getenv("SES_INSECURE_SKIP_VERIFY"); s != "" {
		skip, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("SES_INSECURE_SKIP_VERIFY: %w", err)
		}
		cfg.Email.InsecureSkipVerify = skip
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
