package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	MongoURI        string
	MongoDatabase   string
	JWTSecret       string
	TokenIssuer     string
	TokenExpiry     time.Duration
	LogLevel        string
	AllowedOrigins  []string
	ServerTimeout   time.Duration
	RateLimitBurst  int
	RateLimitWindow time.Duration
}

// Load reads configuration from the environment once, at startup. A missing
// signing secret or issuer is fatal to the caller.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "prod" {
		// Development convenience only; a missing .env is fine.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("APP_ENV", "dev"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DB", "taskboard"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenIssuer:    os.Getenv("TOKEN_ISSUER"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
		RateLimitBurst: 20,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	if cfg.TokenIssuer == "" {
		return nil, fmt.Errorf("TOKEN_ISSUER must be set")
	}

	var err error
	if cfg.TokenExpiry, err = getDuration("TOKEN_EXPIRY", 48*time.Hour); err != nil {
		return nil, err
	}
	if cfg.ServerTimeout, err = getDuration("SERVER_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = getDuration("RATE_LIMIT_WINDOW", 10*time.Minute); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction controls cookie attributes and gin's mode.
func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
