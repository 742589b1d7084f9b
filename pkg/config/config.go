package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL     string
	TokenPath   string
	HTTPTimeout time.Duration
	Environment string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		BaseURL:     getEnv("API_BASE_URL", "http://localhost:8080/api"),
		TokenPath:   getEnv("ADMIN_TOKEN_PATH", ".admin-token"),
		HTTPTimeout: time.Duration(getEnvAsInt64("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
