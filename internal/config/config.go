package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the dashboard's runtime configuration. Values come from
// defaults, then an optional YAML file, then environment overrides.
type Config struct {
	Port           string        `yaml:"port"`
	WSPort         string        `yaml:"ws_port"`
	BackendURL     string        `yaml:"backend_url"`
	RedisURL       string        `yaml:"redis_url"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	PollInterval   time.Duration `yaml:"poll_interval"`
	SessionMaxAge  int           `yaml:"session_max_age"`
	LogLevel       string        `yaml:"log_level"`
}

func defaults() *Config {
	return &Config{
		Port:           "8080",
		WSPort:         "8081",
		BackendURL:     "http://localhost:3000/api",
		RedisURL:       "redis://localhost:6379",
		AllowedOrigins: []string{"http://localhost:5173"},
		PollInterval:   10 * time.Second,
		SessionMaxAge:  86400,
		LogLevel:       "info",
	}
}

// Load builds the configuration. path may be empty; a missing file at a
// non-empty path is an error.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.Port = envOrDefault("PORT", cfg.Port)
	cfg.WSPort = envOrDefault("WS_PORT", cfg.WSPort)
	cfg.BackendURL = envOrDefault("BACKEND_URL", cfg.BackendURL)
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.LogLevel = envOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.SessionMaxAge = envOrDefaultInt("SESSION_MAX_AGE", cfg.SessionMaxAge)

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = parseOrigins(v)
	}
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parsing POLL_INTERVAL: %w", err)
		}
		cfg.PollInterval = d
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseOrigins(value string) []string {
	origins := strings.Split(value, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
