package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// fallbackSecret mirrors the historical default. Running with it means the
// deployment forgot to set SECRET_KEY; main logs a loud warning.
const fallbackSecret = "your_secret_key"

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Env            string   `env:"APP_ENV" env-default:"local"`
	Port           string   `env:"PORT" env-default:"8080"`
	MongoURL       string   `env:"MONGO_URL"`
	MongoDatabase  string   `env:"MONGO_DB" env-default:"moneybridge"`
	SecretKey      string   `env:"SECRET_KEY"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

// Load reads configuration from the environment and performs minimal
// validation. A missing SECRET_KEY is tolerated with the insecure fallback
// so local setups still boot; InsecureSecret reports that state.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	cfg.MongoURL = strings.TrimSpace(cfg.MongoURL)
	if cfg.MongoURL == "" {
		return Config{}, errors.New("MONGO_URL is required")
	}

	cfg.Port = strings.TrimSpace(cfg.Port)
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoDatabase = strings.TrimSpace(cfg.MongoDatabase); cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "moneybridge"
	}

	cfg.SecretKey = strings.TrimSpace(cfg.SecretKey)
	if cfg.SecretKey == "" {
		cfg.SecretKey = fallbackSecret
	}

	cfg.AllowedOrigins = normalizeOrigins(cfg.AllowedOrigins)

	return cfg, nil
}

func normalizeOrigins(origins []string) []string {
	var out []string
	for _, origin := range origins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// InsecureSecret reports whether the process is running on the built-in
// fallback signing secret.
func (c Config) InsecureSecret() bool {
	return c.SecretKey == fallbackSecret
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}
