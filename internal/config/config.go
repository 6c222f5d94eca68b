// Package config loads CLI defaults from the environment. A .env file in the
// working directory is read first if present; real environment variables win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/suyash9664/EnPix/internal/crypt"
	"github.com/suyash9664/EnPix/internal/logger"
)

// Config holds settings shared by every subcommand.
type Config struct {
	LogLevel  string `env:"ENPIX_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ENPIX_LOG_FORMAT" envDefault:"text"`
	OutputDir string `env:"ENPIX_OUTPUT_DIR" envDefault:"."`
	Scheme    string `env:"ENPIX_SCHEME" envDefault:"legacy"`
	Password  string `env:"ENPIX_PASSWORD"`
}

// Load reads .env files (if any) and parses the environment into a Config.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the CLI cannot act on.
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("ENPIX_LOG_LEVEL: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("ENPIX_LOG_FORMAT: unknown format %q", c.LogFormat)
	}
	if _, err := crypt.ParseScheme(c.Scheme); err != nil {
		return fmt.Errorf("ENPIX_SCHEME: %w", err)
	}
	if c.OutputDir == "" {
		return errors.New("ENPIX_OUTPUT_DIR: must not be empty")
	}
	return nil
}

// Logger builds the logger described by the configuration.
func (c Config) Logger(opts ...logger.Option) (*slog.Logger, error) {
	lvl, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	base := []logger.Option{logger.WithLevel(lvl)}
	if c.LogFormat == "json" {
		base = append(base, logger.WithJSONFormatter())
	}
	return logger.New(append(base, opts...)...), nil
}
