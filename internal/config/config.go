package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the service settings.
type Config struct {
	ListenAddr string `yaml:"listen_addr"` // Address the HTTP server binds to
	LogLevel   string `yaml:"log_level"`   // zap level: debug, info, warn, error
	Seed       bool   `yaml:"seed"`        // Load the demo dataset at startup
}

// DefaultConfig returns default settings, with environment overrides.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr: getEnv("FUNDLIFT_LISTEN_ADDR", ":8080"),
		LogLevel:   getEnv("FUNDLIFT_LOG_LEVEL", "info"),
		Seed:       getEnv("FUNDLIFT_SEED", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Load reads config from the given YAML file, layered over defaults. A
// missing path or missing file just yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
