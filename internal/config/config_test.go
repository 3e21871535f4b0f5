package config

import (
	"errors"
	"testing"
)

func validConfig() Config {
	return Config{
		Style:      "particle",
		Seed:       42,
		Width:      1920,
		Height:     1080,
		SampleRate: 44100,
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Style != "particle" {
		t.Errorf("default style: got %q", cfg.Style)
	}
	if cfg.Seed != 42 {
		t.Errorf("default seed: got %d", cfg.Seed)
	}
	if cfg.Width != 1920 || cfg.Height != 1080 {
		t.Errorf("default canvas: got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("default sample rate: got %d", cfg.SampleRate)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("REPOART_STYLE", "heatmap")
	t.Setenv("REPOART_SEED", "7")
	t.Setenv("REPOART_WIDTH", "640")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Style != "heatmap" || cfg.Seed != 7 || cfg.Width != 640 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown style", func(c *Config) { c.Style = "cubist" }},
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"negative duration", func(c *Config) { c.Duration = -2 }},
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }},
		{"negative buckets", func(c *Config) { c.Buckets = -3 }},
	}
	for _, tc := range cases {
		cfg := validConfig()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%s: expected ErrInvalidConfiguration, got %v", tc.name, err)
		}
	}
}
