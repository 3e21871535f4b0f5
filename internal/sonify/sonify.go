package sonify

import (
	"fmt"
	"math"

	"github.com/danielpatrickdp/repo-art/go-generator/internal/mapper"
)

// #region tuning

// mixScale keeps headroom when overlapping notes sum; the normalize post-pass
// below handles whatever still exceeds full scale.
const mixScale = 0.3

// maxAutoDuration caps the derived buffer length for very long histories.
const maxAutoDuration = 60.0

// perCommitSpacing sizes the auto-derived duration from the commit count.
const perCommitSpacing = 0.1

// #endregion tuning

// #region build-notes

// BuildNotes maps features one-to-one onto note events. Pitch is a continuous
// monotonic function of warmth (base * 2^(warmth*octaves)), amplitude follows
// intensity linearly, and onsets preserve the original temporal spacing via
// TNorm rather than spreading notes evenly.
func BuildNotes(features []mapper.MappedFeature, opts Options) ([]NoteEvent, error) {
	if opts.SampleRate <= 0 {
		return nil, fmt.Errorf("sample rate %d: %w", opts.SampleRate, ErrInvalidSampleRate)
	}
	if len(features) == 0 {
		return nil, mapper.ErrEmptyHistory
	}

	total := totalDuration(len(features), opts)
	notes := make([]NoteEvent, len(features))
	for i, f := range features {
		notes[i] = NoteEvent{
			Onset:     f.TNorm * total,
			Duration:  opts.NoteDuration,
			Frequency: opts.BaseFrequency * math.Pow(2, f.Warmth*opts.PitchRangeOctaves),
			Amplitude: opts.MinAmplitude + f.Intensity*(opts.MaxAmplitude-opts.MinAmplitude),
			Harmonics: defaultHarmonics(),
		}
	}
	return notes, nil
}

// #endregion build-notes

// #region synthesize

// Synthesize renders the features into a mono float sample buffer in [-1,1].
// Overlapping notes are additively mixed; if the mixed peak exceeds full
// scale the whole buffer is normalized in an explicit post-pass (never
// silently truncated) so the PCM encode cannot overflow.
func Synthesize(features []mapper.MappedFeature, opts Options) ([]float64, error) {
	notes, err := BuildNotes(features, opts)
	if err != nil {
		return nil, err
	}

	total := totalDuration(len(features), opts)
	buffer := make([]float64, int(total*float64(opts.SampleRate)))

	for _, note := range notes {
		addNote(buffer, note, opts.SampleRate)
	}

	normalize(buffer)
	return buffer, nil
}

// addNote synthesizes one note into the shared buffer starting at its onset.
func addNote(buffer []float64, note NoteEvent, sampleRate int) {
	env := NewEnvelope(note.Duration)
	start := int(note.Onset * float64(sampleRate))
	samples := int(note.Duration * float64(sampleRate))

	for i := 0; i < samples; i++ {
		idx := start + i
		if idx >= len(buffer) {
			break
		}
		t := float64(i) / float64(sampleRate)
		var s float64
		for _, h := range note.Harmonics {
			s += h.Weight * math.Sin(2*math.Pi*note.Frequency*h.Multiplier*t)
		}
		buffer[idx] += s * env.Amplitude(t) * note.Amplitude * mixScale
	}
}

// normalize scales the buffer down when its peak exceeds full scale.
func normalize(buffer []float64) {
	var peak float64
	for _, s := range buffer {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak <= 1 {
		return
	}
	for i := range buffer {
		buffer[i] /= peak
	}
}

// #endregion synthesize

// #region duration

// totalDuration returns the configured buffer length, or derives one from the
// commit count when the config leaves it at zero.
func totalDuration(commits int, opts Options) float64 {
	if opts.TotalDuration > 0 {
		return opts.TotalDuration
	}
	d := float64(commits) * perCommitSpacing
	if d > maxAutoDuration {
		return maxAutoDuration
	}
	if d < opts.NoteDuration {
		return opts.NoteDuration
	}
	return d
}

// #endregion duration
