// Package pipeline composes one generation run: commit records plus a config
// in, primitives, PNG bytes, samples, and artifact digests out. The run is a
// single-threaded pure transform over its inputs; the only shared state is
// the per-run RNG source, drawn from in a fixed order.
package pipeline

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/danielpatrickdp/repo-art/go-generator/internal/config"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/history"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/mapper"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/raster"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/render"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/rng"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/sonify"
)

// #region result

// Result carries every artifact of one run. All of it is ephemeral: only the
// digests are persisted (in the provenance log) to witness reproducibility.
type Result struct {
	CommitCount  int
	Contributors int
	Features     []mapper.MappedFeature
	Primitives   []render.Primitive
	ImagePNG     []byte
	Samples      []float64
	ImageDigest  string
	AudioDigest  string
}

// #endregion result

// #region run

// Run executes the full transform. Any error aborts the run with no partial
// artifact, keeping output atomic.
func Run(records []history.CommitRecord, cfg config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	features, err := mapper.Map(records)
	if err != nil {
		return nil, err
	}

	style, err := render.ParseStyle(cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfiguration, err)
	}

	pal := render.DefaultPalette(style)
	if cfg.PalettePath != "" {
		pal, err = render.LoadPalette(cfg.PalettePath, style)
		if err != nil {
			return nil, err
		}
	}

	canvas := render.Canvas{Width: cfg.Width, Height: cfg.Height}
	src := rng.New(cfg.Seed)
	prims, err := render.Render(style, features, canvas, pal, src, render.Options{Buckets: cfg.Buckets})
	if err != nil {
		return nil, err
	}

	png, err := raster.Encode(prims, canvas, pal.Background)
	if err != nil {
		return nil, err
	}

	opts := sonify.DefaultOptions()
	opts.SampleRate = cfg.SampleRate
	opts.TotalDuration = cfg.Duration
	samples, err := sonify.Synthesize(features, opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		CommitCount:  len(records),
		Contributors: len(history.Contributors(records)),
		Features:     features,
		Primitives:   prims,
		ImagePNG:     png,
		Samples:      samples,
		ImageDigest:  ImageDigest(png),
		AudioDigest:  AudioDigest(samples),
	}, nil
}

// #endregion run

// #region digests

// ImageDigest hashes the encoded PNG bytes.
func ImageDigest(png []byte) string {
	sum := sha256.Sum256(png)
	return hex.EncodeToString(sum[:])
}

// AudioDigest hashes the 16-bit PCM encoding of the sample buffer, so the
// digest matches what a WAV container would carry regardless of float noise
// below quantization.
func AudioDigest(samples []float64) string {
	h := sha256.New()
	var b [2]byte
	for _, s := range sonify.ToPCM16(samples) {
		binary.LittleEndian.PutUint16(b[:], uint16(int16(s)))
		h.Write(b[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// #endregion digests
