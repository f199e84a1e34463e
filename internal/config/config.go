package config

import (
	"log/slog"
	"os"
)

type Config struct {
	Addr        string
	GitHubToken string
}

// Load reads the configuration from environment variables. The GitHub token
// is optional; without it profile lookups run against the anonymous rate
// limit.
func Load() *Config {
	cfg := &Config{
		Addr:        getEnv("ADDR", ":8080"),
		GitHubToken: os.Getenv("GITHUB_TOKEN"),
	}

	slog.Info("Config loaded",
		"addr", cfg.Addr,
		"github_token_set", cfg.GitHubToken != "",
	)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
