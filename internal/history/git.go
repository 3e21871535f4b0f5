package history

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// #region extract

// Extract runs git log against the repository at repoPath and returns commit
// records sorted by timestamp ascending. Merge commits are skipped and binary
// file stats ("-" in numstat output) are ignored.
func Extract(ctx context.Context, repoPath string) ([]CommitRecord, error) {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, fmt.Errorf("resolve repo path: %w", err)
	}
	if _, err := os.Stat(filepath.Join(abs, ".git")); err != nil {
		return nil, fmt.Errorf("%s: %w", abs, ErrNotARepository)
	}

	cmd := exec.CommandContext(ctx, "git", "-C", abs, "log",
		"--pretty=format:%H|%an|%ae|%at|%s", "--numstat", "--no-merges")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git log: %w", err)
	}

	records, err := ParseLog(string(out))
	if err != nil {
		return nil, fmt.Errorf("parse git log: %w", err)
	}
	SortByTimestamp(records)
	return records, nil
}

// #endregion extract

// #region parse

// ParseLog parses `git log --pretty=format:%H|%an|%ae|%at|%s --numstat` output.
// Exposed separately from Extract so parsing is testable without a repository.
func ParseLog(out string) ([]CommitRecord, error) {
	var records []CommitRecord
	var current *CommitRecord

	flush := func() {
		if current != nil {
			records = append(records, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		if parts := strings.SplitN(line, "|", 5); len(parts) == 5 {
			flush()
			ts, err := strconv.ParseInt(parts[3], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("commit %s: bad timestamp %q", parts[0], parts[3])
			}
			current = &CommitRecord{
				Hash:      parts[0],
				Author:    parts[1],
				Email:     parts[2],
				Timestamp: time.Unix(ts, 0).UTC(),
				Subject:   parts[4],
			}
			continue
		}
		if current == nil || !strings.Contains(line, "\t") {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 || parts[0] == "-" || parts[1] == "-" {
			continue
		}
		add, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		del, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		current.Additions += add
		current.Deletions += del
	}
	flush()

	return records, nil
}

// #endregion parse
