package picking

import (
	gomath "math"
	"testing"

	"github.com/yuann3/lrle/pkg/math"
)

func approx(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-3
}

func down() Ray {
	return Ray{Origin: math.Vec3{Y: 100}, Direction: math.Vec3{Y: -1}}
}

func TestScreenToRayCenterHitsTarget(t *testing.T) {
	view := math.LookAt(math.Vec3{X: 50}, math.Vec3{}, math.Vec3{Y: 1})
	proj := math.Perspective(gomath.Pi/3, 1, 0.1, 1000)
	inv := proj.Mul(view).Inverse()

	// The ray through the viewport center runs down the view axis.
	r := ScreenToRay(400, 300, 800, 600, inv)
	if !approx(r.Direction.X, -1) || !approx(r.Direction.Y, 0) || !approx(r.Direction.Z, 0) {
		t.Errorf("center ray direction = %v, want (-1,0,0)", r.Direction)
	}
}

func TestScreenToRayDirectionNormalized(t *testing.T) {
	view := math.LookAt(math.Vec3{X: 20, Y: 30, Z: 10}, math.Vec3{}, math.Vec3{Y: 1})
	proj := math.Perspective(gomath.Pi/3, 1.5, 0.1, 1000)
	inv := proj.Mul(view).Inverse()

	r := ScreenToRay(100, 450, 800, 600, inv)
	if !approx(r.Direction.Length(), 1) {
		t.Errorf("direction length = %v, want 1", r.Direction.Length())
	}
}

func TestIntersectPlaneY(t *testing.T) {
	p, ok := down().IntersectPlaneY(0)
	if !ok {
		t.Fatal("downward ray missed the ground plane")
	}
	if !approx(p.Y, 0) {
		t.Errorf("hit at y = %v, want 0", p.Y)
	}

	// Plane above the origin, ray pointing away.
	if _, ok := down().IntersectPlaneY(200); ok {
		t.Error("hit reported behind the ray origin")
	}

	// Horizontal ray is parallel.
	flat := Ray{Origin: math.Vec3{Y: 5}, Direction: math.Vec3{X: 1}}
	if _, ok := flat.IntersectPlaneY(0); ok {
		t.Error("parallel ray reported a hit")
	}
}

func TestIntersectAABB(t *testing.T) {
	box := math.AABB{Min: math.Vec3{X: -5, Y: -5, Z: -5}, Max: math.Vec3{X: 5, Y: 5, Z: 5}}

	tt, hit := down().IntersectAABB(box)
	if !hit {
		t.Fatal("ray aimed at the box missed")
	}
	if !approx(tt, 95) {
		t.Errorf("entry distance = %v, want 95", tt)
	}

	miss := Ray{Origin: math.Vec3{X: 100, Y: 100}, Direction: math.Vec3{Y: -1}}
	if _, hit := miss.IntersectAABB(box); hit {
		t.Error("ray beside the box reported a hit")
	}

	inside := Ray{Origin: math.Vec3{}, Direction: math.Vec3{Y: 1}}
	tt, hit = inside.IntersectAABB(box)
	if !hit || !approx(tt, 5) {
		t.Errorf("inside ray: t = %v hit = %v, want exit at 5", tt, hit)
	}
}

func TestIntersectAABBParallelSlabs(t *testing.T) {
	box := math.AABB{Min: math.Vec3{X: -5, Y: 0, Z: -5}, Max: math.Vec3{X: 5, Y: 10, Z: 5}}

	// Axis-parallel ray inside the X/Z slabs.
	r := Ray{Origin: math.Vec3{Y: 100}, Direction: math.Vec3{Y: -1}}
	if _, hit := r.IntersectAABB(box); !hit {
		t.Error("axis-parallel ray inside the slabs missed")
	}

	// Same ray shifted outside the X slab.
	r.Origin.X = 50
	if _, hit := r.IntersectAABB(box); hit {
		t.Error("axis-parallel ray outside the X slab hit")
	}
}

func TestPickTerrain(t *testing.T) {
	bounds := math.AABB{Min: math.Vec3{X: -10, Y: 0, Z: -10}, Max: math.Vec3{X: 10, Y: 4, Z: 10}}

	r := Ray{Origin: math.Vec3{X: 3, Y: 100, Z: -2}, Direction: math.Vec3{Y: -1}}
	p, ok := PickTerrain(r, bounds)
	if !ok {
		t.Fatal("pick ray through the terrain missed")
	}
	if !approx(p.X, 3) || !approx(p.Y, 2) || !approx(p.Z, -2) {
		t.Errorf("pick point = %v, want (3,2,-2)", p)
	}
}

func TestPickTerrainMissesOutsideBounds(t *testing.T) {
	bounds := math.AABB{Min: math.Vec3{X: -10, Y: 0, Z: -10}, Max: math.Vec3{X: 10, Y: 4, Z: 10}}

	r := Ray{Origin: math.Vec3{X: 300, Y: 100}, Direction: math.Vec3{Y: -1}}
	if _, ok := PickTerrain(r, bounds); ok {
		t.Error("pick far outside the footprint reported a hit")
	}
}

func TestPickTerrainClampsToFootprint(t *testing.T) {
	bounds := math.AABB{Min: math.Vec3{X: -10, Y: 0, Z: -10}, Max: math.Vec3{X: 10, Y: 4, Z: 10}}

	// A shallow ray that clips the box but whose mid-plane hit lands
	// past the edge gets pulled back to the rim.
	r := Ray{Origin: math.Vec3{X: -20, Y: 6}, Direction: math.Vec3{X: 1, Y: -0.12}.Normalize()}
	p, ok := PickTerrain(r, bounds)
	if !ok {
		t.Fatal("clipping ray missed")
	}
	if p.X < bounds.Min.X || p.X > bounds.Max.X || p.Z < bounds.Min.Z || p.Z > bounds.Max.Z {
		t.Errorf("pick point %v outside the footprint", p)
	}
}
