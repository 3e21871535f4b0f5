// Package history extracts normalized commit records from a Git repository.
package history

import (
	"errors"
	"sort"
	"time"
)

// #region commit-record

// CommitRecord is the normalized unit of repository history consumed by the
// mapper. Records are immutable once extracted and ordered by Timestamp
// non-decreasing.
type CommitRecord struct {
	Hash      string
	Author    string
	Email     string
	Subject   string
	Timestamp time.Time
	Additions int
	Deletions int
}

// Total returns additions + deletions for the commit.
func (c CommitRecord) Total() int {
	return c.Additions + c.Deletions
}

// #endregion commit-record

// #region errors

// ErrNotARepository indicates the given path has no .git directory.
var ErrNotARepository = errors.New("not a git repository")

// #endregion errors

// #region ordering

// SortByTimestamp orders records by timestamp ascending. The sort is stable so
// commits sharing a timestamp keep their log order.
func SortByTimestamp(records []CommitRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
}

// #endregion ordering

// #region contributors

// Contributors counts commits per author email (falls back to name when the
// email is empty). Used for the CLI summary line.
func Contributors(records []CommitRecord) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		key := r.Email
		if key == "" {
			key = r.Author
		}
		counts[key]++
	}
	return counts
}

// #endregion contributors
