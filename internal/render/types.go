// Package render turns mapped features into ordered lists of visual
// primitives under one of three style algorithms.
package render

import (
	"fmt"

	"github.com/danielpatrickdp/repo-art/go-generator/internal/mapper"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/rng"
)

// #region style

// Style selects the rendering algorithm.
type Style string

const (
	StyleParticle Style = "particle"
	StyleFlow     Style = "flow"
	StyleHeatmap  Style = "heatmap"
)

// ParseStyle validates a style name from config or CLI input.
func ParseStyle(name string) (Style, error) {
	switch Style(name) {
	case StyleParticle, StyleFlow, StyleHeatmap:
		return Style(name), nil
	}
	return "", fmt.Errorf("unsupported style %q", name)
}

// #endregion style

// #region primitives

// Kind tags the primitive variant.
type Kind int

const (
	KindPoint Kind = iota
	KindCurve
	KindBand
)

// Vec2 is a point in canvas space.
type Vec2 struct {
	X float64
	Y float64
}

// Primitive is a tagged variant over point, curve, and band shapes. Points
// use Points[0] as center and Size as radius; curves use Points as an ordered
// polyline and Size as stroke width; bands are full-height vertical rectangles
// at X with the given Width and a TopOpacity→BottomOpacity alpha fade.
type Primitive struct {
	Kind    Kind
	Points  []Vec2
	Color   RGB
	Opacity float64
	Size    float64

	// Band-only fields.
	X             float64
	Width         float64
	TopOpacity    float64
	BottomOpacity float64
}

// #endregion primitives

// #region canvas

// Canvas is the fixed coordinate space primitives are laid out on.
type Canvas struct {
	Width  int
	Height int
}

// #endregion canvas

// #region dispatch

// Options carries per-style tuning knobs.
type Options struct {
	// Buckets is the heatmap bucket count. Zero means derive from canvas
	// width so buckets roughly match the horizontal resolution.
	Buckets int
}

// Render dispatches over the style tag. Each renderer is a pure function of
// (features, canvas, palette, rng); rng draw order is fixed and documented
// per renderer so runs with equal seeds are byte-identical.
func Render(style Style, features []mapper.MappedFeature, canvas Canvas, pal Palette, src *rng.Source, opts Options) ([]Primitive, error) {
	if len(features) == 0 {
		return nil, mapper.ErrEmptyHistory
	}
	switch style {
	case StyleParticle:
		return renderParticle(features, canvas, pal, src), nil
	case StyleFlow:
		return renderFlow(features, canvas, pal, src), nil
	case StyleHeatmap:
		return renderHeatmap(features, canvas, pal, opts.Buckets), nil
	}
	return nil, fmt.Errorf("unsupported style %q", style)
}

// #endregion dispatch
