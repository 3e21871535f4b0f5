// Package mapper converts commit records into the normalized feature streams
// shared by every renderer and the sonifier.
package mapper

import (
	"errors"

	"github.com/danielpatrickdp/repo-art/go-generator/internal/history"
)

// #region errors

// ErrEmptyHistory indicates generation was attempted on zero commit records.
// Callers must not invoke downstream components when Map returns this.
var ErrEmptyHistory = errors.New("empty history")

// #endregion errors

// #region mapped-feature

// MappedFeature is the normalized numeric projection of one commit.
//
//	TNorm     position in the overall timeline, in [0,1]
//	Intensity normalized change magnitude, in [0,1]
//	Warmth    additions/deletions balance, in [-1,1] (-1 pure deletion)
//	Size      visual scale, in [0,1] (tracks Intensity)
type MappedFeature struct {
	TNorm     float64
	Intensity float64
	Warmth    float64
	Size      float64
}

// #endregion mapped-feature

// #region map

// Map converts records into features, length- and order-preserving. It is a
// pure function of the full record sequence: normalization uses global
// min/max, so identical input always yields identical output.
//
// Degenerate inputs do not fail: all-equal timestamps produce TNorm 0 for
// every record, and all-equal change totals produce a flat Intensity of 0.5.
func Map(records []history.CommitRecord) ([]MappedFeature, error) {
	if len(records) == 0 {
		return nil, ErrEmptyHistory
	}

	first := records[0].Timestamp
	last := records[len(records)-1].Timestamp
	timeRange := last.Sub(first).Seconds()

	minTotal, maxTotal := records[0].Total(), records[0].Total()
	for _, r := range records[1:] {
		if t := r.Total(); t < minTotal {
			minTotal = t
		} else if t > maxTotal {
			maxTotal = t
		}
	}
	totalRange := float64(maxTotal - minTotal)

	features := make([]MappedFeature, len(records))
	for i, r := range records {
		var tNorm float64
		if timeRange > 0 {
			tNorm = r.Timestamp.Sub(first).Seconds() / timeRange
		}

		intensity := 0.5
		if totalRange > 0 {
			intensity = clamp01(float64(r.Total()-minTotal) / totalRange)
		}

		denom := r.Total()
		if denom < 1 {
			denom = 1
		}
		warmth := float64(r.Additions-r.Deletions) / float64(denom)

		features[i] = MappedFeature{
			TNorm:     clamp01(tNorm),
			Intensity: intensity,
			Warmth:    warmth,
			Size:      intensity,
		}
	}

	return features, nil
}

// #endregion map

// #region helpers

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers
