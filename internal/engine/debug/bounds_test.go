package debug

import (
	"testing"

	"github.com/yuann3/lrle/pkg/math"
)

func TestAppendBoxEdges(t *testing.T) {
	box := math.AABB{
		Min: math.Vec3{X: -1, Y: 0, Z: -2},
		Max: math.Vec3{X: 3, Y: 4, Z: 5},
	}
	verts := AppendBoxEdges(nil, box)

	if len(verts) != BoxEdgeVertexCount*3 {
		t.Fatalf("len = %d, want %d", len(verts), BoxEdgeVertexCount*3)
	}

	// Every vertex must be a corner of the box.
	for i := 0; i < len(verts); i += 3 {
		x, y, z := verts[i], verts[i+1], verts[i+2]
		if (x != box.Min.X && x != box.Max.X) ||
			(y != box.Min.Y && y != box.Max.Y) ||
			(z != box.Min.Z && z != box.Max.Z) {
			t.Fatalf("vertex %d = (%v, %v, %v) is not a box corner", i/3, x, y, z)
		}
	}
}

func TestAppendBoxEdgesAppends(t *testing.T) {
	box := math.AABB{Max: math.Vec3{X: 1, Y: 1, Z: 1}}
	verts := AppendBoxEdges(nil, box)
	verts = AppendBoxEdges(verts, box)
	if len(verts) != 2*BoxEdgeVertexCount*3 {
		t.Errorf("len = %d, want %d", len(verts), 2*BoxEdgeVertexCount*3)
	}
}
