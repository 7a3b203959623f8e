// Package config loads application configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        int
	OrderbookAPIURL string
	LogLevel        string
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads configuration. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	port := 8081
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	return Config{
		HTTPPort:        port,
		OrderbookAPIURL: getEnv("ORDERBOOK_API_URL", "https://api.lyra.finance"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}
