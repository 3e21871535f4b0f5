// Command fixture-export freezes a repository's history and a generation
// config into a replay fixture with computed expected digests.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/repo-art/go-generator/internal/config"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/history"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/replay"
)

// #region main

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	repoPath := flag.String("repo", ".", "path to the Git repository to freeze")
	outPath := flag.String("out", "", "output fixture JSON path")
	description := flag.String("description", "", "fixture description")
	style := flag.String("style", cfg.Style, "visual style: particle | flow | heatmap")
	seed := flag.Int64("seed", cfg.Seed, "random seed")
	width := flag.Int("width", cfg.Width, "image width in pixels")
	height := flag.Int("height", cfg.Height, "image height in pixels")
	flag.Parse()

	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --out path/to/fixture.json [--repo path] [--style s] [--seed n]")
		os.Exit(2)
	}

	cfg.Style = *style
	cfg.Seed = *seed
	cfg.Width = *width
	cfg.Height = *height

	if err := run(*repoPath, *outPath, *description, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(repoPath, outPath, description string, cfg config.Config) error {
	records, err := history.Extract(context.Background(), repoPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no commits found in %s", repoPath)
	}

	if description == "" {
		description = fmt.Sprintf("%s render of %s (%d commits, seed %d)",
			cfg.Style, repoPath, len(records), cfg.Seed)
	}

	f, err := replay.Capture(records, cfg, description)
	if err != nil {
		return err
	}
	if err := replay.SaveFixture(outPath, f); err != nil {
		return err
	}

	fmt.Printf("Exported fixture: %s (%d records, image %s)\n",
		outPath, len(f.Records), shortID(f.Expected.ImageDigest))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion export
