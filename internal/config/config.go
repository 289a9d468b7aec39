// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Port string `env:"PORT,default=8080"`

	StorageDriver string `env:"STORAGE_DRIVER,default=badger"`
	StoragePath   string `env:"STORAGE_PATH,default=./data/sessions"`
	DatabaseURL   string `env:"DATABASE_URL"`

	ReplyDelay    time.Duration `env:"REPLY_DELAY,default=900ms"`
	SessionIdle   time.Duration `env:"SESSION_IDLE,default=30m"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL,default=5m"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=json"`
	LogFile   string `env:"LOG_FILE"`

	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
	CookieSecure   bool   `env:"COOKIE_SECURE,default=false"`

	OpenAIKey       string `env:"OPENAI_API_KEY"`
	OpenAIChatModel string `env:"OPENAI_MODEL_CHAT,default=gpt-4o-mini"`
}

// Load reads an optional .env file, then decodes the environment.
func Load() (*Config, error) {
	// A missing .env is fine; the environment is used as is.
	_ = godotenv.Load()
	return FromEnviron()
}

// FromEnviron decodes and validates the current environment.
func FromEnviron() (*Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT cannot be empty")
	}
	switch c.StorageDriver {
	case "memory":
	case "badger", "sqlite":
		if c.StoragePath == "" {
			return fmt.Errorf("STORAGE_PATH cannot be empty for driver %q", c.StorageDriver)
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.ReplyDelay < 0 {
		return errors.New("REPLY_DELAY must not be negative")
	}
	if c.SessionIdle <= 0 {
		return errors.New("SESSION_IDLE must be > 0")
	}
	if c.SweepInterval <= 0 {
		return errors.New("SWEEP_INTERVAL must be > 0")
	}
	return nil
}

// Origins returns the CORS origins, defaulting to any origin.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// AIEnabled reports whether replies come from the OpenAI generator.
func (c *Config) AIEnabled() bool {
	return strings.TrimSpace(c.OpenAIKey) != ""
}
