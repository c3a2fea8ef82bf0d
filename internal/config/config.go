package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	CatalogSize  int
	SeedUsername string
	SeedPassword string
}

func NewConfig() (*Config, error) {
	size, err := strconv.Atoi(getEnvOrDefault("STORE_CATALOG_SIZE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_CATALOG_SIZE: %w", err)
	}
	if size <= 0 {
		return nil, fmt.Errorf("STORE_CATALOG_SIZE must be positive, got %d", size)
	}
	return &Config{
		CatalogSize:  size,
		SeedUsername: getEnvOrDefault("STORE_SEED_USERNAME", "user1"),
		SeedPassword: getEnvOrDefault("STORE_SEED_PASSWORD", "password123"),
	}, nil
}

func getEnvOrDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
