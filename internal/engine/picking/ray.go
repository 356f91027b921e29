// Package picking converts screen positions into world-space rays and
// intersects them with terrain bounds, used to re-target the camera on
// double click.
package picking

import (
	gomath "math"

	"github.com/yuann3/lrle/pkg/math"
)

// Ray is a half-line with a normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// ScreenToRay converts pixel coordinates to a world-space ray.
// invViewProj is the inverse of the view-projection matrix. Works for
// both perspective and orthographic projections: the ray runs from the
// unprojected near-plane point to the far-plane point.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	near := unproject(invViewProj, math.Vec4{ndcX, ndcY, -1, 1})
	far := unproject(invViewProj, math.Vec4{ndcX, ndcY, 1, 1})

	return Ray{
		Origin:    near,
		Direction: far.Sub(near).Normalize(),
	}
}

func unproject(inv math.Mat4, p math.Vec4) math.Vec3 {
	w := inv.MulVec4(p)
	if w[3] != 0 {
		return math.Vec3{X: w[0] / w[3], Y: w[1] / w[3], Z: w[2] / w[3]}
	}
	return math.Vec3{X: w[0], Y: w[1], Z: w[2]}
}

// IntersectPlaneY intersects the ray with the horizontal plane y =
// planeY. Returns false if the ray is parallel to the plane or the
// intersection lies behind the origin.
func (r Ray) IntersectPlaneY(planeY float32) (math.Vec3, bool) {
	if gomath.Abs(float64(r.Direction.Y)) < 1e-4 {
		return math.Vec3{}, false
	}
	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return math.Vec3{}, false
	}
	return r.Origin.Add(r.Direction.Scale(t)), true
}

// IntersectAABB returns the distance along the ray to the box using
// the slab method. If the origin is inside the box, the exit distance
// is returned.
func (r Ray) IntersectAABB(box math.AABB) (float32, bool) {
	tmin := float32(gomath.Inf(-1))
	tmax := float32(gomath.Inf(1))

	o := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	d := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - o[axis]) / d[axis]
		t2 := (hi[axis] - o[axis]) / d[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// PickTerrain finds the point where a ray meets the terrain, treating
// the terrain as the plane through the middle of its height range.
// The result is clamped into the terrain's footprint so a click past
// the edge targets the rim rather than a point far outside.
func PickTerrain(r Ray, bounds math.AABB) (math.Vec3, bool) {
	if _, hit := r.IntersectAABB(bounds); !hit {
		return math.Vec3{}, false
	}

	midY := (bounds.Min.Y + bounds.Max.Y) / 2
	p, ok := r.IntersectPlaneY(midY)
	if !ok {
		return math.Vec3{}, false
	}

	p.X = clamp(p.X, bounds.Min.X, bounds.Max.X)
	p.Z = clamp(p.Z, bounds.Min.Z, bounds.Max.Z)
	return p, true
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
