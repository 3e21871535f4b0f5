// Package replay verifies the determinism law: re-running generation with the
// same history, config, and seed must reproduce byte-identical artifacts.
package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/danielpatrickdp/repo-art/go-generator/internal/config"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/history"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a frozen
// commit history, the generation config, and the expected artifact digests.
type Fixture struct {
	Description string          `json:"description"`
	Records     []FixtureRecord `json:"records"`
	Config      FixtureConfig   `json:"config"`
	Expected    FixtureExpected `json:"expected"`
}

// FixtureRecord mirrors history.CommitRecord with JSON tags and a unix
// timestamp so fixtures stay portable and diff-friendly.
type FixtureRecord struct {
	Timestamp int64  `json:"timestamp"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Author    string `json:"author"`
}

// FixtureConfig mirrors config.Config with JSON tags.
type FixtureConfig struct {
	Style      string  `json:"style"`
	Seed       int64   `json:"seed"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Duration   float64 `json:"duration"`
	SampleRate int     `json:"sample_rate"`
	Buckets    int     `json:"buckets"`
}

// FixtureExpected captures what the recorded run produced.
type FixtureExpected struct {
	ImageDigest    string `json:"image_digest"`
	AudioDigest    string `json:"audio_digest"`
	PrimitiveCount int    `json:"primitive_count"`
	SampleCount    int    `json:"sample_count"`
}

// #endregion fixture-types

// #region load-save

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// SaveFixture writes a fixture as indented JSON.
func SaveFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion load-save

// #region conversions

// ToRecords converts fixture records to domain commit records.
func (f *Fixture) ToRecords() []history.CommitRecord {
	records := make([]history.CommitRecord, len(f.Records))
	for i, r := range f.Records {
		records[i] = history.CommitRecord{
			Author:    r.Author,
			Timestamp: time.Unix(r.Timestamp, 0).UTC(),
			Additions: r.Additions,
			Deletions: r.Deletions,
		}
	}
	return records
}

// ToConfig converts the fixture config to a domain config. The provenance DB
// path is irrelevant during replay and left empty.
func (fc FixtureConfig) ToConfig() config.Config {
	return config.Config{
		Style:      fc.Style,
		Seed:       fc.Seed,
		Width:      fc.Width,
		Height:     fc.Height,
		Duration:   fc.Duration,
		SampleRate: fc.SampleRate,
		Buckets:    fc.Buckets,
	}
}

// FromRecords converts domain commit records into fixture records.
func FromRecords(records []history.CommitRecord) []FixtureRecord {
	out := make([]FixtureRecord, len(records))
	for i, r := range records {
		out[i] = FixtureRecord{
			Timestamp: r.Timestamp.Unix(),
			Additions: r.Additions,
			Deletions: r.Deletions,
			Author:    r.Author,
		}
	}
	return out
}

// FromConfig converts a domain config into a fixture config.
func FromConfig(cfg config.Config) FixtureConfig {
	return FixtureConfig{
		Style:      cfg.Style,
		Seed:       cfg.Seed,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Duration:   cfg.Duration,
		SampleRate: cfg.SampleRate,
		Buckets:    cfg.Buckets,
	}
}

// #endregion conversions
