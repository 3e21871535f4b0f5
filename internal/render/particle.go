package render

import (
	"math"

	"github.com/danielpatrickdp/repo-art/go-generator/internal/mapper"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/rng"
)

// #region tuning

const (
	particleMinRadius  = 2.0
	particleMaxRadius  = 14.0
	particleGlowScale  = 2.5
	particleGlowAlpha  = 0.18
	particleLinkWidth  = 1.0
	particleLinkAlpha  = 0.35
	particleLinkDecay  = 8.0 // opacity halves roughly every 0.09 of the timeline
	particleJitterFrac = 0.02
)

// #endregion tuning

// #region particle

// renderParticle emits, per feature, a large low-opacity glow point and a core
// point above it, then a thin link curve between consecutive points whose
// opacity decays with the timeline gap. RNG draw order: exactly one vertical
// jitter draw per feature, in input order.
func renderParticle(features []mapper.MappedFeature, canvas Canvas, pal Palette, src *rng.Source) []Primitive {
	w := float64(canvas.Width)
	h := float64(canvas.Height)
	padX := w * 0.05
	padY := h * 0.05
	jitterAmp := h * particleJitterFrac

	centers := make([]Vec2, len(features))
	prims := make([]Primitive, 0, len(features)*3)

	for i, f := range features {
		x := padX + f.TNorm*(w-2*padX)
		y := padY + (1-f.Intensity)*(h-2*padY)
		y += src.Range(-jitterAmp, jitterAmp)
		if y < 0 {
			y = 0
		}
		if y > h {
			y = h
		}
		centers[i] = Vec2{X: x, Y: y}

		color := pal.Cool.Lerp(pal.Warm, (f.Warmth+1)/2)
		radius := particleMinRadius + f.Size*(particleMaxRadius-particleMinRadius)

		prims = append(prims,
			Primitive{
				Kind:    KindPoint,
				Points:  []Vec2{centers[i]},
				Color:   color,
				Opacity: particleGlowAlpha,
				Size:    radius * particleGlowScale,
			},
			Primitive{
				Kind:    KindPoint,
				Points:  []Vec2{centers[i]},
				Color:   color,
				Opacity: 1,
				Size:    radius,
			},
		)
	}

	for i := 1; i < len(features); i++ {
		gap := features[i].TNorm - features[i-1].TNorm
		prims = append(prims, Primitive{
			Kind:    KindCurve,
			Points:  []Vec2{centers[i-1], centers[i]},
			Color:   pal.Link,
			Opacity: particleLinkAlpha * math.Exp(-particleLinkDecay*gap),
			Size:    particleLinkWidth,
		})
	}

	return prims
}

// #endregion particle
