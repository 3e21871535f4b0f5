package mapper

import (
	"errors"
	"testing"
	"time"

	"github.com/danielpatrickdp/repo-art/go-generator/internal/history"
)

func record(unix int64, additions, deletions int) history.CommitRecord {
	return history.CommitRecord{
		Timestamp: time.Unix(unix, 0).UTC(),
		Additions: additions,
		Deletions: deletions,
	}
}

func TestMapEmptyHistory(t *testing.T) {
	_, err := Map(nil)
	if !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("expected ErrEmptyHistory, got %v", err)
	}
}

func TestMapLengthAndOrderPreserving(t *testing.T) {
	records := []history.CommitRecord{
		record(0, 1, 0),
		record(10, 50, 10),
		record(20, 3, 3),
	}
	features, err := Map(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(features) != len(records) {
		t.Fatalf("expected %d features, got %d", len(records), len(features))
	}
	for i := 1; i < len(features); i++ {
		if features[i].TNorm < features[i-1].TNorm {
			t.Fatalf("TNorm not non-decreasing at %d", i)
		}
	}
}

func TestMapIdempotent(t *testing.T) {
	records := []history.CommitRecord{
		record(0, 12, 4),
		record(7, 0, 0),
		record(100, 400, 90),
	}
	a, err := Map(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Map(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("feature %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestMapBoundaryContainment(t *testing.T) {
	records := []history.CommitRecord{
		record(0, 0, 0),
		record(5, 10000, 0),
		record(9, 0, 10000),
		record(50, 7, 7),
	}
	features, err := Map(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, f := range features {
		if f.TNorm < 0 || f.TNorm > 1 {
			t.Errorf("feature %d: TNorm %g out of [0,1]", i, f.TNorm)
		}
		if f.Intensity < 0 || f.Intensity > 1 {
			t.Errorf("feature %d: Intensity %g out of [0,1]", i, f.Intensity)
		}
		if f.Warmth < -1 || f.Warmth > 1 {
			t.Errorf("feature %d: Warmth %g out of [-1,1]", i, f.Warmth)
		}
		if f.Size < 0 || f.Size > 1 {
			t.Errorf("feature %d: Size %g out of [0,1]", i, f.Size)
		}
	}
}

func TestMapSingleCommit(t *testing.T) {
	features, err := Map([]history.CommitRecord{record(42, 5, 2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := features[0]
	if f.TNorm != 0 {
		t.Errorf("expected TNorm 0, got %g", f.TNorm)
	}
	if f.Intensity != 0.5 {
		t.Errorf("expected flat intensity 0.5, got %g", f.Intensity)
	}
}

func TestMapAllTimestampsEqual(t *testing.T) {
	records := []history.CommitRecord{
		record(100, 1, 0),
		record(100, 2, 0),
		record(100, 3, 0),
	}
	features, err := Map(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, f := range features {
		if f.TNorm != 0 {
			t.Errorf("feature %d: expected TNorm 0 for flat timeline, got %g", i, f.TNorm)
		}
	}
}

func TestMapWarmthExtremes(t *testing.T) {
	records := []history.CommitRecord{
		record(0, 10, 0),
		record(10, 0, 10),
	}
	features, err := Map(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if features[0].Warmth != 1 {
		t.Errorf("expected warmth +1 for pure addition, got %g", features[0].Warmth)
	}
	if features[1].Warmth != -1 {
		t.Errorf("expected warmth -1 for pure deletion, got %g", features[1].Warmth)
	}
	// Equal totals: intensity degenerates to the flat 0.5 fallback.
	if features[0].Intensity != 0.5 || features[1].Intensity != 0.5 {
		t.Errorf("expected flat intensity, got %g and %g", features[0].Intensity, features[1].Intensity)
	}
}

func TestMapEmptyCommitWarmth(t *testing.T) {
	records := []history.CommitRecord{
		record(0, 0, 0),
		record(10, 4, 4),
	}
	features, err := Map(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Empty commit divides by max(total, 1), never by zero.
	if features[0].Warmth != 0 {
		t.Errorf("expected warmth 0 for empty commit, got %g", features[0].Warmth)
	}
}
