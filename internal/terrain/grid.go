// Package terrain provides height grid data, mesh generation and chunking
// for the terrain viewer.
package terrain

import "fmt"

// Grid is a rectangular array of height samples with optional per-sample
// colors. Immutable once constructed; height scaling is applied at mesh
// build time so re-meshing never mutates the source grid.
type Grid struct {
	width   int
	height  int
	samples []float32 // row-major, len == width*height
	colors  []uint32  // packed 0xRRGGBB, nil when the source had no colors
	minH    float32
	maxH    float32
}

// NewGrid constructs a grid from row-major samples. colors may be nil;
// when present it must parallel samples. The sample slices are retained,
// not copied; callers hand over ownership.
func NewGrid(width, height int, samples []float32, colors []uint32) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("negative grid dimensions %dx%d", width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("grid %dx%d needs %d samples, got %d", width, height, width*height, len(samples))
	}
	if colors != nil && len(colors) != len(samples) {
		return nil, fmt.Errorf("color count %d does not match sample count %d", len(colors), len(samples))
	}

	g := &Grid{
		width:   width,
		height:  height,
		samples: samples,
		colors:  colors,
	}
	g.minH, g.maxH = computeBounds(samples)
	return g, nil
}

func computeBounds(samples []float32) (float32, float32) {
	if len(samples) == 0 {
		return 0, 0
	}
	min, max := samples[0], samples[0]
	for _, h := range samples[1:] {
		if h < min {
			min = h
		}
		if h > max {
			max = h
		}
	}
	return min, max
}

// Width returns the number of columns (X dimension).
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows (Z dimension).
func (g *Grid) Height() int { return g.height }

// Sample returns the height at column c, row r.
func (g *Grid) Sample(c, r int) float32 {
	return g.samples[r*g.width+c]
}

// HasColors reports whether the grid carries per-sample colors.
func (g *Grid) HasColors() bool { return g.colors != nil }

// Color returns the packed 0xRRGGBB color at column c, row r.
// Only valid when HasColors is true.
func (g *Grid) Color(c, r int) uint32 {
	return g.colors[r*g.width+c]
}

// HeightBounds returns the minimum and maximum sample heights.
// Returns (0, 0) for an empty grid.
func (g *Grid) HeightBounds() (float32, float32) {
	return g.minH, g.maxH
}
