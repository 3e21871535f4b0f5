package render

import (
	"math"

	"github.com/danielpatrickdp/repo-art/go-generator/internal/mapper"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/rng"
)

// #region tuning

const (
	flowWaveCount   = 3
	flowSampleCount = 96
	flowStrokeWidth = 2.0
	flowStrokeAlpha = 0.8
)

// #endregion tuning

// #region flow

// renderFlow emits a fixed set of overlapping wave curves. Each wave's
// vertical offset is a sum of sine terms whose amplitude follows the locally
// interpolated intensity, with a per-wave phase offset so the waves never
// align. RNG draw order: for each wave index in order, one phase draw then
// one amplitude-jitter draw.
func renderFlow(features []mapper.MappedFeature, canvas Canvas, pal Palette, src *rng.Source) []Primitive {
	w := float64(canvas.Width)
	h := float64(canvas.Height)
	base := h / 2

	prims := make([]Primitive, 0, flowWaveCount)
	for wave := 0; wave < flowWaveCount; wave++ {
		phase := src.Range(0, 2*math.Pi)
		ampJitter := src.Range(0.85, 1.15)

		points := make([]Vec2, flowSampleCount)
		for s := 0; s < flowSampleCount; s++ {
			t := float64(s) / float64(flowSampleCount-1)
			local := intensityAt(features, t)
			amp := ampJitter * local * (h / 3)
			y := base +
				amp*math.Sin(4*t+phase+float64(wave)*2*math.Pi/flowWaveCount) +
				local*(h/12)*math.Sin((8*t+float64(wave))*math.Pi)
			points[s] = Vec2{X: t * w, Y: y}
		}

		prims = append(prims, Primitive{
			Kind:    KindCurve,
			Points:  points,
			Color:   pal.Waves[wave%len(pal.Waves)],
			Opacity: flowStrokeAlpha,
			Size:    flowStrokeWidth,
		})
	}

	return prims
}

// #endregion flow

// #region interpolation

// intensityAt interpolates intensity at timeline position t by walking the
// feature sequence, which is ordered by TNorm. Outside the covered range the
// nearest feature wins; between features the value is linear.
func intensityAt(features []mapper.MappedFeature, t float64) float64 {
	if t <= features[0].TNorm {
		return features[0].Intensity
	}
	last := features[len(features)-1]
	if t >= last.TNorm {
		return last.Intensity
	}
	for i := 1; i < len(features); i++ {
		if t > features[i].TNorm {
			continue
		}
		span := features[i].TNorm - features[i-1].TNorm
		if span <= 0 {
			return features[i].Intensity
		}
		frac := (t - features[i-1].TNorm) / span
		return features[i-1].Intensity + (features[i].Intensity-features[i-1].Intensity)*frac
	}
	return last.Intensity
}

// #endregion interpolation
