// Command inspect lists or details recorded generation runs.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/repo-art/go-generator/internal/provenance"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the provenance database")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show single run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/runs.db [--last N] [--run id] [--json]")
		os.Exit(2)
	}

	store, err := provenance.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *runID != "" {
		err = runDetailMode(store, *runID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func runListMode(store *provenance.Store, last int, jsonOut bool) error {
	runs, err := store.ListRuns(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	if jsonOut {
		return printJSON(toRows(runs))
	}

	fmt.Printf("%-10s  %-9s  %10s  %9s  %7s  %-13s  %s\n",
		"Run", "Style", "Seed", "Canvas", "Commits", "Image", "Time")
	fmt.Printf("%-10s+-%-9s+-%10s+-%9s+-%7s+-%-13s+-%s\n",
		"----------", "---------", "----------", "---------", "-------", "-------------", "--------------------")
	for _, r := range runs {
		fmt.Printf("%-10s  %-9s  %10d  %4dx%-4d  %7d  %-13s  %s\n",
			shortID(r.RunID), r.Style, r.Seed, r.Width, r.Height,
			r.CommitCount, shortID(r.ImageDigest), r.CreatedAt.Format("2006-01-02T15:04:05Z"))
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(store *provenance.Store, runID string, jsonOut bool) error {
	r, err := store.GetRun(runID)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(toRow(r))
	}

	fmt.Printf("Run:          %s\n", r.RunID)
	fmt.Printf("Repository:   %s\n", r.RepoPath)
	fmt.Printf("Style:        %s\n", r.Style)
	fmt.Printf("Seed:         %d\n", r.Seed)
	fmt.Printf("Canvas:       %dx%d\n", r.Width, r.Height)
	fmt.Printf("Duration:     %g s\n", r.Duration)
	fmt.Printf("Sample Rate:  %d Hz\n", r.SampleRate)
	fmt.Printf("Buckets:      %d\n", r.Buckets)
	fmt.Printf("Commits:      %d\n", r.CommitCount)
	fmt.Printf("Image Digest: %s\n", r.ImageDigest)
	fmt.Printf("Audio Digest: %s\n", r.AudioDigest)
	fmt.Printf("Created:      %s\n", r.CreatedAt.Format("2006-01-02T15:04:05Z"))
	return nil
}

// #endregion detail-mode

// #region output

type runRow struct {
	RunID       string  `json:"run_id"`
	RepoPath    string  `json:"repo_path"`
	Style       string  `json:"style"`
	Seed        int64   `json:"seed"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Duration    float64 `json:"duration"`
	SampleRate  int     `json:"sample_rate"`
	Buckets     int     `json:"buckets"`
	CommitCount int     `json:"commit_count"`
	ImageDigest string  `json:"image_digest"`
	AudioDigest string  `json:"audio_digest"`
	CreatedAt   string  `json:"created_at"`
}

func toRow(r provenance.RunRecord) runRow {
	return runRow{
		RunID:       r.RunID,
		RepoPath:    r.RepoPath,
		Style:       r.Style,
		Seed:        r.Seed,
		Width:       r.Width,
		Height:      r.Height,
		Duration:    r.Duration,
		SampleRate:  r.SampleRate,
		Buckets:     r.Buckets,
		CommitCount: r.CommitCount,
		ImageDigest: r.ImageDigest,
		AudioDigest: r.AudioDigest,
		CreatedAt:   r.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func toRows(runs []provenance.RunRecord) []runRow {
	rows := make([]runRow, len(runs))
	for i, r := range runs {
		rows[i] = toRow(r)
	}
	return rows
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
