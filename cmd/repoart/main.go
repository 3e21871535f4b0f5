// Command repoart generates deterministic visual and audio art from a Git
// repository's history and records the run in the provenance log.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danielpatrickdp/repo-art/go-generator/internal/config"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/history"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/pipeline"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/provenance"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/sonify"
)

// #region main

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	outPath := flag.String("out", "repo-art.png", "output image path")
	audioPath := flag.String("audio", "", "output audio path (WAV); empty skips audio")
	style := flag.String("style", cfg.Style, "visual style: particle | flow | heatmap")
	width := flag.Int("width", cfg.Width, "image width in pixels")
	height := flag.Int("height", cfg.Height, "image height in pixels")
	seed := flag.Int64("seed", cfg.Seed, "random seed for reproducibility")
	duration := flag.Float64("duration", cfg.Duration, "audio duration in seconds (0 derives from commit count)")
	sampleRate := flag.Int("sample-rate", cfg.SampleRate, "audio sample rate in Hz")
	buckets := flag.Int("buckets", cfg.Buckets, "heatmap bucket count (0 derives from width)")
	palette := flag.String("palette", cfg.PalettePath, "optional YAML palette preset")
	dbPath := flag.String("db", cfg.DBPath, "provenance database path; empty disables logging")
	flag.Parse()

	repoPath := "."
	if flag.NArg() > 0 {
		repoPath = flag.Arg(0)
	}

	cfg.Style = *style
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed
	cfg.Duration = *duration
	cfg.SampleRate = *sampleRate
	cfg.Buckets = *buckets
	cfg.PalettePath = *palette
	cfg.DBPath = *dbPath

	if err := run(repoPath, *outPath, *audioPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

func run(repoPath, outPath, audioPath string, cfg config.Config) error {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return fmt.Errorf("resolve repo path: %w", err)
	}

	fmt.Printf("Analyzing repository: %s\n", abs)
	records, err := history.Extract(context.Background(), abs)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no commits found in %s", abs)
	}

	result, err := pipeline.Run(records, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Found %d commits from %d contributors\n", result.CommitCount, result.Contributors)

	if err := os.WriteFile(outPath, result.ImagePNG, 0644); err != nil {
		return fmt.Errorf("write image %s: %w", outPath, err)
	}
	fmt.Printf("Saved %s artwork: %s (%s)\n", cfg.Style, outPath, shortDigest(result.ImageDigest))

	if audioPath != "" {
		if err := writeWAV(audioPath, result.Samples, cfg.SampleRate); err != nil {
			return err
		}
		fmt.Printf("Saved sonification: %s (%s)\n", audioPath, shortDigest(result.AudioDigest))
	}

	if cfg.DBPath != "" {
		rec, err := logRun(abs, cfg, result)
		if err != nil {
			return err
		}
		fmt.Printf("Logged run %s\n", rec.RunID)
	}

	return nil
}

func writeWAV(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create audio %s: %w", path, err)
	}
	defer f.Close()
	if err := sonify.EncodeWAV(f, samples, sampleRate); err != nil {
		return fmt.Errorf("encode audio %s: %w", path, err)
	}
	return nil
}

func logRun(repoPath string, cfg config.Config, result *pipeline.Result) (provenance.RunRecord, error) {
	store, err := provenance.NewStore(cfg.DBPath)
	if err != nil {
		return provenance.RunRecord{}, err
	}
	defer store.Close()

	return store.LogRun(provenance.RunRecord{
		RepoPath:    repoPath,
		Style:       cfg.Style,
		Seed:        cfg.Seed,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Duration:    cfg.Duration,
		SampleRate:  cfg.SampleRate,
		Buckets:     cfg.Buckets,
		CommitCount: result.CommitCount,
		ImageDigest: result.ImageDigest,
		AudioDigest: result.AudioDigest,
	})
}

// #endregion run

// #region helpers

func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}

// #endregion helpers
