package render

import (
	"github.com/danielpatrickdp/repo-art/go-generator/internal/mapper"
)

// #region tuning

const (
	heatmapBucketPixels = 16 // default bucket width when no count is configured
	heatmapMinOpacity   = 0.15
)

// #endregion tuning

// #region heatmap

// renderHeatmap emits one full-height band per time bucket. Bucket intensity
// is the mean over commits whose TNorm falls in the bucket's range, so the
// aggregate normalizes independent of commit density. Empty buckets render at
// the cool endpoint with minimum opacity rather than being omitted, keeping
// horizontal coverage uniform. The heatmap draws nothing from the RNG stream.
func renderHeatmap(features []mapper.MappedFeature, canvas Canvas, pal Palette, buckets int) []Primitive {
	if buckets <= 0 {
		buckets = canvas.Width / heatmapBucketPixels
		if buckets < 1 {
			buckets = 1
		}
	}

	sums := make([]float64, buckets)
	counts := make([]int, buckets)
	for _, f := range features {
		idx := int(f.TNorm * float64(buckets))
		if idx >= buckets { // TNorm == 1 lands in the last bucket
			idx = buckets - 1
		}
		sums[idx] += f.Intensity
		counts[idx]++
	}

	bandWidth := float64(canvas.Width) / float64(buckets)
	prims := make([]Primitive, 0, buckets)
	for b := 0; b < buckets; b++ {
		color := pal.HeatStops[0]
		opacity := heatmapMinOpacity
		if counts[b] > 0 {
			mean := sums[b] / float64(counts[b])
			color = heatColor(pal.HeatStops, mean)
			opacity = heatmapMinOpacity + (1-heatmapMinOpacity)*mean
		}
		prims = append(prims, Primitive{
			Kind:          KindBand,
			Color:         color,
			Opacity:       opacity,
			X:             float64(b) * bandWidth,
			Width:         bandWidth,
			TopOpacity:    opacity,
			BottomOpacity: 0,
		})
	}

	return prims
}

// #endregion heatmap
