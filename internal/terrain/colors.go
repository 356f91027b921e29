package terrain

import "fmt"

// Scheme selects a height-to-color mapping for grids without colors.
type Scheme int

const (
	// SchemeTerrain is the natural gradient: blue -> cyan -> green -> brown -> white.
	SchemeTerrain Scheme = iota
	// SchemeHeatmap is the scientific gradient: blue -> cyan -> green -> yellow -> red.
	SchemeHeatmap
	// SchemeMonochrome maps height to grayscale intensity.
	SchemeMonochrome
)

// String returns the scheme name used in config files and the UI.
func (s Scheme) String() string {
	switch s {
	case SchemeHeatmap:
		return "heatmap"
	case SchemeMonochrome:
		return "monochrome"
	default:
		return "terrain"
	}
}

// SchemeFromString parses a scheme name.
func SchemeFromString(name string) (Scheme, error) {
	switch name {
	case "terrain", "":
		return SchemeTerrain, nil
	case "heatmap":
		return SchemeHeatmap, nil
	case "monochrome":
		return SchemeMonochrome, nil
	}
	return SchemeTerrain, fmt.Errorf("unknown color scheme %q", name)
}

// ColorFunc maps a raw (pre-scale) height and the grid's height bounds
// to an RGB color with components in [0, 1].
type ColorFunc func(height, min, max float32) [3]float32

// SchemeColor returns the ColorFunc for a built-in scheme.
func SchemeColor(s Scheme) ColorFunc {
	var f func(t float32) [3]float32
	switch s {
	case SchemeHeatmap:
		f = heatmapColor
	case SchemeMonochrome:
		f = monochromeColor
	default:
		f = terrainColor
	}
	return func(height, min, max float32) [3]float32 {
		return f(normalizeHeight(height, min, max))
	}
}

// CustomGradient returns a ColorFunc interpolating between two colors.
func CustomGradient(low, high [3]float32) ColorFunc {
	return func(height, min, max float32) [3]float32 {
		t := normalizeHeight(height, min, max)
		return [3]float32{
			low[0] + (high[0]-low[0])*t,
			low[1] + (high[1]-low[1])*t,
			low[2] + (high[2]-low[2])*t,
		}
	}
}

// normalizeHeight maps height into [0, 1] within the given bounds.
// A flat grid (min == max) maps everything to 0.
func normalizeHeight(h, min, max float32) float32 {
	r := max - min
	if r <= 0 {
		return 0
	}
	t := (h - min) / r
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// terrainColor: blue (water) -> cyan -> green -> brown -> white (snow).
func terrainColor(t float32) [3]float32 {
	switch {
	case t < 0.3:
		s := t / 0.3
		return [3]float32{0, s * 0.5, 0.8 + s*0.2}
	case t < 0.5:
		s := (t - 0.3) / 0.2
		return [3]float32{s * 0.2, 0.5 + s*0.3, 1.0 - s*0.6}
	case t < 0.8:
		s := (t - 0.5) / 0.3
		return [3]float32{0.2 + s*0.4, 0.8 - s*0.4, 0.4 - s*0.3}
	default:
		s := (t - 0.8) / 0.2
		return [3]float32{0.6 + s*0.4, 0.4 + s*0.6, 0.1 + s*0.9}
	}
}

// heatmapColor: blue -> cyan -> green -> yellow -> red.
func heatmapColor(t float32) [3]float32 {
	switch {
	case t < 0.25:
		s := t / 0.25
		return [3]float32{0, s, 1}
	case t < 0.5:
		s := (t - 0.25) / 0.25
		return [3]float32{0, 1, 1 - s}
	case t < 0.75:
		s := (t - 0.5) / 0.25
		return [3]float32{s, 1, 0}
	default:
		s := (t - 0.75) / 0.25
		return [3]float32{1, 1 - s, 0}
	}
}

func monochromeColor(t float32) [3]float32 {
	v := 0.1 + t*0.9
	return [3]float32{v, v, v}
}

// unpackRGB converts a packed 0xRRGGBB color to normalized components.
func unpackRGB(c uint32) [3]float32 {
	return [3]float32{
		float32((c>>16)&0xFF) / 255.0,
		float32((c>>8)&0xFF) / 255.0,
		float32(c&0xFF) / 255.0,
	}
}
