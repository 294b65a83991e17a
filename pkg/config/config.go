package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port               string `validate:"required"`
	Env                string `validate:"oneof=development staging production"`
	RateLimitPerSecond int
	RateLimitBurst     int
	AllowedOrigins     []string
}

// UpstreamConfig holds the city-data service client settings.
type UpstreamConfig struct {
	BaseURL          string `validate:"required,url"`
	Timeout          time.Duration
	RequestsPerSec   float64
	Burst            int
	BreakerTimeout   time.Duration
	BreakerThreshold uint32
}

// CacheConfig holds lookup-cache settings.
type CacheConfig struct {
	LookupTTL time.Duration
}

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Cache    CacheConfig
}

// Load reads configuration from the environment, loading a local .env file
// first when one exists, and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			Env:                getEnv("APP_ENV", "development"),
			RateLimitPerSecond: getEnvInt("RATE_LIMIT_PER_SECOND", 50),
			RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 100),
			AllowedOrigins:     splitAndTrim(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Upstream: UpstreamConfig{
			BaseURL:          strings.TrimRight(getEnv("CITYDATA_BASE_URL", "http://127.0.0.1:8000"), "/"),
			Timeout:          getEnvDuration("CITYDATA_TIMEOUT", 15*time.Second),
			RequestsPerSec:   getEnvFloat("CITYDATA_RATE_PER_SECOND", 0),
			Burst:            getEnvInt("CITYDATA_RATE_BURST", 0),
			BreakerTimeout:   getEnvDuration("CITYDATA_BREAKER_TIMEOUT", 30*time.Second),
			BreakerThreshold: uint32(getEnvInt("CITYDATA_BREAKER_THRESHOLD", 5)),
		},
		Cache: CacheConfig{
			LookupTTL: getEnvDuration("LOOKUP_CACHE_TTL", 12*time.Hour),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the server runs with the production profile.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
