package replay

import (
	"strconv"

	"github.com/danielpatrickdp/repo-art/go-generator/internal/config"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/history"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/pipeline"
)

// #region result

// Check is one compared property of a replayed run.
type Check struct {
	Name     string
	Expected string
	Got      string
	Match    bool
}

// Result captures a replay run's digests and per-property comparison.
type Result struct {
	ImageDigest    string
	AudioDigest    string
	PrimitiveCount int
	SampleCount    int
	Checks         []Check
	Matched        bool
}

// #endregion result

// #region replay

// Replay re-runs the pipeline over the given records and compares the
// artifacts against the expectation. Operates entirely in-memory; nothing is
// written.
func Replay(records []history.CommitRecord, cfg config.Config, expected FixtureExpected) (Result, error) {
	out, err := pipeline.Run(records, cfg)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		ImageDigest:    out.ImageDigest,
		AudioDigest:    out.AudioDigest,
		PrimitiveCount: len(out.Primitives),
		SampleCount:    len(out.Samples),
	}
	res.Checks = []Check{
		check("image_digest", expected.ImageDigest, res.ImageDigest),
		check("audio_digest", expected.AudioDigest, res.AudioDigest),
		check("primitive_count", strconv.Itoa(expected.PrimitiveCount), strconv.Itoa(res.PrimitiveCount)),
		check("sample_count", strconv.Itoa(expected.SampleCount), strconv.Itoa(res.SampleCount)),
	}
	res.Matched = true
	for _, c := range res.Checks {
		if !c.Match {
			res.Matched = false
			break
		}
	}
	return res, nil
}

// ReplayFixture loads nothing; it replays an already-parsed fixture.
func ReplayFixture(f *Fixture) (Result, error) {
	return Replay(f.ToRecords(), f.Config.ToConfig(), f.Expected)
}

// #endregion replay

// #region capture

// Capture runs the pipeline and wraps the outcome as a fixture expectation,
// used by fixture export.
func Capture(records []history.CommitRecord, cfg config.Config, description string) (*Fixture, error) {
	out, err := pipeline.Run(records, cfg)
	if err != nil {
		return nil, err
	}
	return &Fixture{
		Description: description,
		Records:     FromRecords(records),
		Config:      FromConfig(cfg),
		Expected: FixtureExpected{
			ImageDigest:    out.ImageDigest,
			AudioDigest:    out.AudioDigest,
			PrimitiveCount: len(out.Primitives),
			SampleCount:    len(out.Samples),
		},
	}, nil
}

// #endregion capture

// #region helpers

func check(name, expected, got string) Check {
	return Check{Name: name, Expected: expected, Got: got, Match: expected == got}
}

// #endregion helpers
