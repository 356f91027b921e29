package cull

import (
	"github.com/yuann3/lrle/internal/terrain"
	"github.com/yuann3/lrle/pkg/math"
)

// Selector filters chunk sets against a view frustum. The zero value
// is unusable; call Update before Visible.
type Selector struct {
	frustum Frustum
}

// Update rebuilds the frustum from a view-projection matrix. Call once
// per frame before querying.
func (s *Selector) Update(viewProjection math.Mat4) {
	s.frustum = FromMatrix(viewProjection)
}

// Visible appends pointers to the chunks whose bounds intersect the
// frustum to dst and returns it. Chunk order is preserved, so draw
// order stays stable across frames.
func (s *Selector) Visible(dst []*terrain.Chunk, chunks []terrain.Chunk) []*terrain.Chunk {
	for i := range chunks {
		if s.frustum.IntersectsAABB(chunks[i].Bounds) {
			dst = append(dst, &chunks[i])
		}
	}
	return dst
}

// VisibleBounds reports whether a single bounding box intersects the
// current frustum.
func (s *Selector) VisibleBounds(box math.AABB) bool {
	return s.frustum.IntersectsAABB(box)
}
