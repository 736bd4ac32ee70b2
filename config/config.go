package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at startup and handed to whatever needs it.
// Business logic never reads the environment directly.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	USDAAPIKey string

	Port        string
	CORSOrigins []string
}

func Load() *Config {
	// Missing .env is fine in deployed environments
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "chunklog"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:       getEnv("JWT_SECRET", "devsecret"),
		AccessTokenTTL:  parseDuration(getEnv("ACCESS_TOKEN_TTL", "30m")),
		RefreshTokenTTL: parseDuration(getEnv("REFRESH_TOKEN_TTL", "168h")),

		USDAAPIKey: getEnv("USDA_API_KEY", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: []string{getEnv("CORS_ORIGIN", "http://localhost:5173")},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 30 * time.Minute
	}
	return d
}
