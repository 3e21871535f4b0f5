package render

import (
	"testing"

	"github.com/danielpatrickdp/repo-art/go-generator/internal/mapper"
	"github.com/danielpatrickdp/repo-art/go-generator/internal/rng"
)

func testCanvas() Canvas {
	return Canvas{Width: 800, Height: 400}
}

func TestParticleEmitsGlowCoreAndLinks(t *testing.T) {
	features := []mapper.MappedFeature{
		{TNorm: 0, Intensity: 0.2, Warmth: 0.5, Size: 0.2},
		{TNorm: 0.5, Intensity: 0.9, Warmth: -0.5, Size: 0.9},
		{TNorm: 1, Intensity: 0.4, Warmth: 0, Size: 0.4},
	}
	pal := DefaultPalette(StyleParticle)
	prims := renderParticle(features, testCanvas(), pal, rng.New(42))

	// Two points per feature plus one link between each consecutive pair.
	want := len(features)*2 + len(features) - 1
	if len(prims) != want {
		t.Fatalf("expected %d primitives, got %d", want, len(prims))
	}

	glow, core := prims[0], prims[1]
	if glow.Kind != KindPoint || core.Kind != KindPoint {
		t.Fatal("expected leading point primitives")
	}
	if glow.Size <= core.Size {
		t.Errorf("glow radius %g should exceed core radius %g", glow.Size, core.Size)
	}
	if glow.Opacity >= core.Opacity {
		t.Errorf("glow opacity %g should be below core opacity %g", glow.Opacity, core.Opacity)
	}
	if glow.Points[0] != core.Points[0] {
		t.Error("glow and core must share a center")
	}

	link := prims[len(features)*2]
	if link.Kind != KindCurve || len(link.Points) != 2 {
		t.Fatalf("expected 2-point link curve, got %+v", link)
	}
}

func TestParticleColorEndpoints(t *testing.T) {
	features := []mapper.MappedFeature{
		{TNorm: 0, Intensity: 0.5, Warmth: 1, Size: 0.5},
		{TNorm: 1, Intensity: 0.5, Warmth: -1, Size: 0.5},
	}
	pal := DefaultPalette(StyleParticle)
	prims := renderParticle(features, testCanvas(), pal, rng.New(42))

	if prims[1].Color != pal.Warm {
		t.Errorf("pure-addition commit should use the warm endpoint, got %+v", prims[1].Color)
	}
	if prims[3].Color != pal.Cool {
		t.Errorf("pure-deletion commit should use the cool endpoint, got %+v", prims[3].Color)
	}
}

func TestParticleJitterStaysOnCanvas(t *testing.T) {
	features := []mapper.MappedFeature{
		{TNorm: 0, Intensity: 1, Warmth: 0, Size: 1},   // top of the band
		{TNorm: 1, Intensity: 0, Warmth: 0, Size: 0.1}, // bottom of the band
	}
	canvas := Canvas{Width: 200, Height: 100}
	for seed := int64(0); seed < 50; seed++ {
		prims := renderParticle(features, canvas, DefaultPalette(StyleParticle), rng.New(seed))
		for _, p := range prims {
			if p.Kind != KindPoint {
				continue
			}
			y := p.Points[0].Y
			if y < 0 || y > float64(canvas.Height) {
				t.Fatalf("seed %d: point y %g escaped the canvas", seed, y)
			}
		}
	}
}

func TestParticleLinkOpacityDecaysWithGap(t *testing.T) {
	features := []mapper.MappedFeature{
		{TNorm: 0, Intensity: 0.5, Warmth: 0, Size: 0.5},
		{TNorm: 0.05, Intensity: 0.5, Warmth: 0, Size: 0.5}, // dense burst
		{TNorm: 0.9, Intensity: 0.5, Warmth: 0, Size: 0.5},  // long gap
	}
	prims := renderParticle(features, testCanvas(), DefaultPalette(StyleParticle), rng.New(1))

	links := make([]Primitive, 0, 2)
	for _, p := range prims {
		if p.Kind == KindCurve {
			links = append(links, p)
		}
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Opacity <= links[1].Opacity {
		t.Errorf("dense link opacity %g should exceed sparse link opacity %g",
			links[0].Opacity, links[1].Opacity)
	}
}

func TestParticleDeterministicPerSeed(t *testing.T) {
	features := []mapper.MappedFeature{
		{TNorm: 0, Intensity: 0.3, Warmth: 0.2, Size: 0.3},
		{TNorm: 1, Intensity: 0.8, Warmth: -0.7, Size: 0.8},
	}
	canvas := testCanvas()
	pal := DefaultPalette(StyleParticle)

	a := renderParticle(features, canvas, pal, rng.New(7))
	b := renderParticle(features, canvas, pal, rng.New(7))
	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Points[0] != b[i].Points[0] || a[i].Opacity != b[i].Opacity {
			t.Fatalf("primitive %d differs between equal-seed runs", i)
		}
	}
}
