package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #region rgb

// RGB is an 8-bit color triple.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Lerp linearly interpolates each channel toward other by t in [0,1].
func (c RGB) Lerp(other RGB, t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return RGB{
		R: uint8(float64(c.R) + (float64(other.R)-float64(c.R))*t),
		G: uint8(float64(c.G) + (float64(other.G)-float64(c.G))*t),
		B: uint8(float64(c.B) + (float64(other.B)-float64(c.B))*t),
	}
}

// #endregion rgb

// #region palette

// Palette bundles the color endpoints every style draws from.
type Palette struct {
	Background RGB   `yaml:"background"`
	Cool       RGB   `yaml:"cool"`
	Warm       RGB   `yaml:"warm"`
	Link       RGB   `yaml:"link"`
	Waves      []RGB `yaml:"waves"`
	HeatStops  []RGB `yaml:"heat_stops"`
}

// DefaultPalette returns the built-in palette for a style. Backgrounds differ
// per style; the rest of the ramp is shared.
func DefaultPalette(style Style) Palette {
	p := Palette{
		Background: RGB{10, 10, 20},
		Cool:       RGB{40, 110, 255},
		Warm:       RGB{255, 120, 40},
		Link:       RGB{50, 50, 80},
		Waves: []RGB{
			{100, 150, 255},
			{150, 100, 255},
			{255, 100, 150},
		},
		HeatStops: []RGB{
			{0, 40, 128},
			{0, 255, 128},
			{255, 255, 128},
			{255, 255, 0},
		},
	}
	switch style {
	case StyleFlow:
		p.Background = RGB{15, 15, 25}
	case StyleHeatmap:
		p.Background = RGB{5, 5, 10}
	}
	return p
}

// LoadPalette reads a YAML preset and overlays it on the style defaults, so a
// preset may override only the fields it cares about.
func LoadPalette(path string, style Style) (Palette, error) {
	p := DefaultPalette(style)
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("read palette %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Palette{}, fmt.Errorf("parse palette %s: %w", path, err)
	}
	if len(p.Waves) == 0 || len(p.HeatStops) == 0 {
		return Palette{}, fmt.Errorf("palette %s: waves and heat_stops must be non-empty", path)
	}
	return p, nil
}

// #endregion palette

// #region gradient

// heatColor looks up a multi-stop gradient by t in [0,1].
func heatColor(stops []RGB, t float64) RGB {
	if len(stops) == 1 {
		return stops[0]
	}
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}
	scaled := t * float64(len(stops)-1)
	idx := int(scaled)
	return stops[idx].Lerp(stops[idx+1], scaled-float64(idx))
}

// #endregion gradient
