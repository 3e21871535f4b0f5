// Package sonify converts mapped features into a synthesized audio sample
// buffer: one note per commit, pitched by warmth, sized by intensity, placed
// by timeline position, shaped by an ADSR envelope with harmonic overtones.
package sonify

import "errors"

// #region errors

// ErrInvalidSampleRate indicates a non-positive sample rate was configured.
var ErrInvalidSampleRate = errors.New("invalid sample rate")

// #endregion errors

// #region note-event

// Harmonic is one overtone in a note's stack: a frequency multiplier and its
// mix weight.
type Harmonic struct {
	Multiplier float64
	Weight     float64
}

// NoteEvent carries the synthesis parameters of a single note. Notes are
// produced one-to-one from mapped features; the synthesizer holds no
// cross-note state beyond the shared sample clock.
type NoteEvent struct {
	Onset     float64 // seconds into the buffer
	Duration  float64 // seconds
	Frequency float64 // Hz
	Amplitude float64 // 0..1 before mixing
	Harmonics []Harmonic
}

// #endregion note-event

// #region options

// Options tunes the sonification. Zero TotalDuration derives the length from
// the commit count, matching the visual timeline's temporal spacing.
type Options struct {
	SampleRate        int
	TotalDuration     float64
	BaseFrequency     float64
	PitchRangeOctaves float64
	NoteDuration      float64
	MinAmplitude      float64
	MaxAmplitude      float64
}

// DefaultOptions returns the standard sonification settings: A3 base pitch,
// one octave of pitch range in each warmth direction, quarter-second notes.
func DefaultOptions() Options {
	return Options{
		SampleRate:        44100,
		BaseFrequency:     220.0,
		PitchRangeOctaves: 1.0,
		NoteDuration:      0.25,
		MinAmplitude:      0.05,
		MaxAmplitude:      0.6,
	}
}

// defaultHarmonics is the fixed overtone stack: fundamental plus second and
// third harmonics at decreasing weight.
func defaultHarmonics() []Harmonic {
	return []Harmonic{
		{Multiplier: 1, Weight: 1.0},
		{Multiplier: 2, Weight: 0.3},
		{Multiplier: 3, Weight: 0.1},
	}
}

// #endregion options
