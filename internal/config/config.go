// Package config holds the configuration surface consumed by the generation
// pipeline. Defaults come from REPOART_* environment variables; command-line
// flags override them in the entry points.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/danielpatrickdp/repo-art/go-generator/internal/render"
)

// #region errors

// ErrInvalidConfiguration indicates an unsupported style or a non-positive
// dimension, duration, or sample rate. Generation produces no partial output
// in that case.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// #endregion errors

// #region config

// Config is a plain input to the mapping/render/synthesis functions, not
// internal state.
type Config struct {
	Style       string  `env:"REPOART_STYLE" envDefault:"particle"`
	Seed        int64   `env:"REPOART_SEED" envDefault:"42"`
	Width       int     `env:"REPOART_WIDTH" envDefault:"1920"`
	Height      int     `env:"REPOART_HEIGHT" envDefault:"1080"`
	Duration    float64 `env:"REPOART_DURATION" envDefault:"0"` // 0 = derive from commit count
	SampleRate  int     `env:"REPOART_SAMPLE_RATE" envDefault:"44100"`
	Buckets     int     `env:"REPOART_BUCKETS" envDefault:"0"` // 0 = derive from width
	PalettePath string  `env:"REPOART_PALETTE"`
	DBPath      string  `env:"REPOART_DB" envDefault:"repoart_runs.db"`
}

// FromEnv builds a Config from environment variables over compiled defaults.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// #endregion config

// #region validate

// Validate surfaces configuration errors before any artifact is produced.
func (c Config) Validate() error {
	if _, err := render.ParseStyle(c.Style); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: non-positive canvas %dx%d", ErrInvalidConfiguration, c.Width, c.Height)
	}
	if c.Duration < 0 {
		return fmt.Errorf("%w: negative duration %g", ErrInvalidConfiguration, c.Duration)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: non-positive sample rate %d", ErrInvalidConfiguration, c.SampleRate)
	}
	if c.Buckets < 0 {
		return fmt.Errorf("%w: negative bucket count %d", ErrInvalidConfiguration, c.Buckets)
	}
	return nil
}

// #endregion validate
