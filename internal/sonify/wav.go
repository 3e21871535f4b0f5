package sonify

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// #region pcm

// ToPCM16 clamps samples to [-1,1] and scales them to signed 16-bit range.
// The clamp is a safety net: Synthesize already normalized the buffer.
func ToPCM16(samples []float64) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		if s > 1 {
			s = 1
		}
		if s < -1 {
			s = -1
		}
		out[i] = int(s * 32767)
	}
	return out
}

// #endregion pcm

// #region encode

// EncodeWAV writes the sample buffer as mono 16-bit PCM.
func EncodeWAV(w io.WriteSeeker, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate %d: %w", sampleRate, ErrInvalidSampleRate)
	}

	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           ToPCM16(samples),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}

// #endregion encode
