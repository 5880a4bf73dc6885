package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port int `env:"PORT" envDefault:"8000"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUsername  string `env:"DB_USERNAME"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBDatabase  string `env:"DB_DATABASE"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"disable"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"4"`
	DBMinConns  int32  `env:"DB_MIN_CONNS" envDefault:"0"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
	GinMode          string   `env:"GIN_MODE" envDefault:"release"`
}

// Load reads an optional .env file and then parses the environment. An
// explicit envFile must exist; the implicit ".env" may be absent.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL != "" {
		return nil
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST environment variable is required")
	}
	if c.DBUsername == "" {
		return fmt.Errorf("DB_USERNAME environment variable is required")
	}
	if c.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE environment variable is required")
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	return nil
}

// DSN returns DATABASE_URL when set, otherwise a postgres:// URL built from
// the DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	userInfo := url.UserPassword(c.DBUsername, c.DBPassword)
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=%s",
		userInfo.String(),
		c.DBHost,
		c.DBPort,
		url.PathEscape(c.DBDatabase),
		url.QueryEscape(c.DBSSLMode),
	)
}

// RedactedDSN is DSN with the password masked, for logging.
func (c *Config) RedactedDSN() string {
	u, err := url.Parse(c.DSN())
	if err != nil {
		return "<unparseable dsn>"
	}
	return u.Redacted()
}
