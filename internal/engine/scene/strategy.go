// Package scene owns the renderable form of a terrain: it picks a
// rendering strategy for the grid size, builds meshes (whole or
// chunked) off the render thread, and emits a culled draw list each
// frame.
package scene

// Mode is the rendering strategy for a terrain.
type Mode int

const (
	// ModeWhole draws the terrain as a single mesh every frame.
	ModeWhole Mode = iota
	// ModeWholeTested draws a single mesh, but skips the draw when
	// its bounds fall outside the frustum.
	ModeWholeTested
	// ModeChunked partitions the terrain into tiles and draws only
	// the tiles whose bounds intersect the frustum.
	ModeChunked
)

func (m Mode) String() string {
	switch m {
	case ModeWhole:
		return "whole"
	case ModeWholeTested:
		return "whole-tested"
	case ModeChunked:
		return "chunked"
	default:
		return "unknown"
	}
}

// Sample-count thresholds between strategies. Small grids are cheaper
// to draw outright than to cull; huge grids need per-tile culling to
// keep vertex throughput bounded.
const (
	wholeLimit  = 1000 * 1000
	testedLimit = 4000 * 4000
)

// DefaultMaxDimension is the advisory per-axis size limit applied when
// no limit is configured. Grids exceeding it render chunked regardless
// of their sample count.
const DefaultMaxDimension = 8192

// ModeForGrid picks the strategy for a grid of the given dimensions.
func ModeForGrid(width, height int) Mode {
	samples := width * height
	switch {
	case samples < wholeLimit:
		return ModeWhole
	case samples < testedLimit:
		return ModeWholeTested
	default:
		return ModeChunked
	}
}

// modeForGridLimited applies the per-axis limit on top of the sample
// thresholds: an oversized axis forces chunked mode even when the
// total sample count is small.
func modeForGridLimited(width, height, maxDim int) Mode {
	if maxDim > 0 && (width > maxDim || height > maxDim) {
		return ModeChunked
	}
	return ModeForGrid(width, height)
}
