package cull

import (
	gomath "math"
	"testing"

	"github.com/yuann3/lrle/internal/terrain"
	"github.com/yuann3/lrle/pkg/math"
)

// lookDownX is a view-projection looking from (50,0,0) toward the
// origin, 60 degree vertical fov, square aspect.
func lookDownX() math.Mat4 {
	view := math.LookAt(math.Vec3{X: 50}, math.Vec3{}, math.Vec3{Y: 1})
	proj := math.Perspective(gomath.Pi/3, 1, 0.1, 1000)
	return proj.Mul(view)
}

func boxAround(center math.Vec3, half float32) math.AABB {
	h := math.Vec3{X: half, Y: half, Z: half}
	return math.AABB{Min: center.Sub(h), Max: center.Add(h)}
}

func TestBoxAtTargetVisible(t *testing.T) {
	f := FromMatrix(lookDownX())
	if !f.IntersectsAABB(boxAround(math.Vec3{}, 5)) {
		t.Error("box at the look target culled")
	}
}

func TestBoxBehindCameraCulled(t *testing.T) {
	f := FromMatrix(lookDownX())
	if f.IntersectsAABB(boxAround(math.Vec3{X: 100}, 5)) {
		t.Error("box behind the camera kept")
	}
}

func TestBoxOutsideSideCulled(t *testing.T) {
	f := FromMatrix(lookDownX())

	// At x=0 the frustum half-width is 50*tan(30 degrees) ~ 28.9; a
	// small box 200 off to the side is well outside.
	if f.IntersectsAABB(boxAround(math.Vec3{Z: 200}, 5)) {
		t.Error("box outside the left/right planes kept")
	}
	if f.IntersectsAABB(boxAround(math.Vec3{Y: -200}, 5)) {
		t.Error("box below the bottom plane kept")
	}
}

func TestBoxBeyondFarPlaneCulled(t *testing.T) {
	f := FromMatrix(lookDownX())
	if f.IntersectsAABB(boxAround(math.Vec3{X: -2000}, 5)) {
		t.Error("box beyond the far plane kept")
	}
}

func TestBoxEnclosingFrustumVisible(t *testing.T) {
	f := FromMatrix(lookDownX())

	// No corner of a huge box is inside the frustum, but the box
	// contains it; the intersection test must keep it.
	if !f.IntersectsAABB(boxAround(math.Vec3{}, 5000)) {
		t.Error("box enclosing the whole frustum culled")
	}
}

func TestBoxStraddlingPlane(t *testing.T) {
	f := FromMatrix(lookDownX())

	// Centered on the near plane boundary region: part in, part out.
	box := boxAround(math.Vec3{X: 49.9}, 1)
	if !f.IntersectsAABB(box) {
		t.Error("straddling box culled")
	}
	if f.ContainsAABB(box) {
		t.Error("straddling box reported fully contained")
	}
}

func TestContainsAABB(t *testing.T) {
	f := FromMatrix(lookDownX())
	if !f.ContainsAABB(boxAround(math.Vec3{}, 2)) {
		t.Error("box fully inside not contained")
	}
}

func TestContainsPoint(t *testing.T) {
	f := FromMatrix(lookDownX())
	if !f.ContainsPoint(math.Vec3{}) {
		t.Error("look target not inside the frustum")
	}
	if f.ContainsPoint(math.Vec3{X: 60}) {
		t.Error("point behind the camera inside the frustum")
	}
}

func TestOrthographicFrustum(t *testing.T) {
	view := math.LookAt(math.Vec3{Y: 100}, math.Vec3{}, math.Vec3{Z: -1})
	proj := math.Ortho(-50, 50, -50, 50, 0.1, 500)
	f := FromMatrix(proj.Mul(view))

	if !f.IntersectsAABB(boxAround(math.Vec3{}, 10)) {
		t.Error("box under an ortho top view culled")
	}
	if f.IntersectsAABB(boxAround(math.Vec3{X: 200}, 10)) {
		t.Error("box outside the ortho volume kept")
	}
}

func TestPlanesNormalized(t *testing.T) {
	f := FromMatrix(lookDownX())
	for i, p := range f.Planes {
		l := p.Normal.Length()
		if gomath.Abs(float64(l)-1) > 1e-4 {
			t.Errorf("plane %d normal length = %v, want 1", i, l)
		}
	}
}

func TestSelectorPreservesOrder(t *testing.T) {
	var s Selector
	s.Update(lookDownX())

	chunks := []terrain.Chunk{
		{Col: 0, Row: 0, Bounds: boxAround(math.Vec3{Z: -10}, 5)},
		{Col: 1, Row: 0, Bounds: boxAround(math.Vec3{X: 500}, 5)}, // behind camera
		{Col: 0, Row: 1, Bounds: boxAround(math.Vec3{}, 5)},
		{Col: 1, Row: 1, Bounds: boxAround(math.Vec3{Z: 10}, 5)},
	}

	got := s.Visible(nil, chunks)
	if len(got) != 3 {
		t.Fatalf("visible count = %d, want 3", len(got))
	}
	if got[0] != &chunks[0] || got[1] != &chunks[2] || got[2] != &chunks[3] {
		t.Error("visible chunks out of input order")
	}
}

func TestSelectorReusesDst(t *testing.T) {
	var s Selector
	s.Update(lookDownX())

	chunks := []terrain.Chunk{{Bounds: boxAround(math.Vec3{}, 5)}}
	buf := make([]*terrain.Chunk, 0, 8)
	got := s.Visible(buf, chunks)
	if len(got) != 1 || cap(got) != 8 {
		t.Errorf("len=%d cap=%d, want len=1 cap=8", len(got), cap(got))
	}
}
