package config

import (
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env              string
	LogLevel         string
	Port             string
	CORSAllowOrigins []string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		// Missing .env is fine, real env vars still apply.
		_ = godotenv.Load()
		cfg = &Config{
			Env:              getEnv("APP_ENV", "development"),
			LogLevel:         getEnv("LOG_LEVEL", "info"),
			Port:             getEnv("PORT", "8088"),
			CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if len(c.CORSAllowOrigins) == 0 {
		return errors.New("CORS_ALLOW_ORIGINS must name at least one origin")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
