// Package provenance records generation runs in SQLite so past runs can be
// inspected and replayed for reproducibility checks.
package provenance

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS generation_runs (
	run_id        TEXT PRIMARY KEY,
	repo_path     TEXT NOT NULL,
	style         TEXT NOT NULL,
	seed          INTEGER NOT NULL,
	width         INTEGER NOT NULL,
	height        INTEGER NOT NULL,
	duration      REAL NOT NULL,
	sample_rate   INTEGER NOT NULL,
	buckets       INTEGER NOT NULL,
	commit_count  INTEGER NOT NULL,
	image_digest  TEXT NOT NULL,
	audio_digest  TEXT NOT NULL,
	created_at    TEXT NOT NULL
);
`

// #endregion schema

// #region store

// Store manages the run log in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens the database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion store

// #region log-run

// LogRun inserts a run row, filling RunID and CreatedAt when unset, and
// returns the stored record.
func (s *Store) LogRun(rec RunRecord) (RunRecord, error) {
	if rec.RunID == "" {
		rec.RunID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO generation_runs (run_id, repo_path, style, seed, width, height, duration, sample_rate, buckets, commit_count, image_digest, audio_digest, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.RepoPath, rec.Style, rec.Seed, rec.Width, rec.Height,
		rec.Duration, rec.SampleRate, rec.Buckets, rec.CommitCount,
		rec.ImageDigest, rec.AudioDigest, rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("log run: %w", err)
	}
	return rec, nil
}

// #endregion log-run

// #region queries

// GetRun retrieves a run by id.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT run_id, repo_path, style, seed, width, height, duration, sample_rate, buckets, commit_count, image_digest, audio_digest, created_at
		 FROM generation_runs WHERE run_id = ?`, runID)
	rec, err := scanRun(row)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	return rec, nil
}

// ListRuns returns the last N runs in chronological order.
func (s *Store) ListRuns(last int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, repo_path, style, seed, width, height, duration, sample_rate, buckets, commit_count, image_digest, audio_digest, created_at FROM (
			SELECT * FROM generation_runs ORDER BY created_at DESC LIMIT ?
		) sub ORDER BY created_at ASC`, last)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return records, nil
}

// #endregion queries

// #region scan

type scannable interface {
	Scan(dest ...any) error
}

func scanRun(row scannable) (RunRecord, error) {
	var rec RunRecord
	var createdStr string
	err := row.Scan(&rec.RunID, &rec.RepoPath, &rec.Style, &rec.Seed,
		&rec.Width, &rec.Height, &rec.Duration, &rec.SampleRate, &rec.Buckets,
		&rec.CommitCount, &rec.ImageDigest, &rec.AudioDigest, &createdStr)
	if err != nil {
		return RunRecord{}, err
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}

// #endregion scan
