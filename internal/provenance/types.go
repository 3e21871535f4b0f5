package provenance

import "time"

// #region run-record

// RunRecord is a single row in the generation_runs table: the full identity
// of one run (repo, config, seed) plus the digests of what it produced. Given
// the same repo state, replaying a row must reproduce both digests.
type RunRecord struct {
	RunID       string
	RepoPath    string
	Style       string
	Seed        int64
	Width       int
	Height      int
	Duration    float64
	SampleRate  int
	Buckets     int
	CommitCount int
	ImageDigest string
	AudioDigest string
	CreatedAt   time.Time
}

// #endregion run-record
