// Package cull decides which terrain chunks are worth drawing by
// testing their bounds against the camera's view frustum.
package cull

import (
	gomath "math"

	"github.com/yuann3/lrle/pkg/math"
)

// Plane is the set of points satisfying dot(Normal, p) + D = 0. A
// positive signed distance means the point lies on the normal's side.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// Distance returns the signed distance from the plane to a point.
func (p Plane) Distance(point math.Vec3) float32 {
	return p.Normal.Dot(point) + p.D
}

func (p *Plane) normalize() {
	l := float32(gomath.Sqrt(float64(p.Normal.Dot(p.Normal))))
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1 / l)
	p.D /= l
}

// Frustum holds the six planes of a view volume, normals pointing
// inward. It works for both perspective and orthographic projections.
type Frustum struct {
	Planes [6]Plane
}

// Plane indices.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// FromMatrix extracts the frustum planes from a combined
// view-projection matrix using the Gribb/Hartmann row method.
func FromMatrix(m math.Mat4) Frustum {
	r0 := m.Row(0)
	r1 := m.Row(1)
	r2 := m.Row(2)
	r3 := m.Row(3)

	var f Frustum
	f.Planes[PlaneLeft] = planeFromRow(add4(r3, r0))
	f.Planes[PlaneRight] = planeFromRow(sub4(r3, r0))
	f.Planes[PlaneBottom] = planeFromRow(add4(r3, r1))
	f.Planes[PlaneTop] = planeFromRow(sub4(r3, r1))
	f.Planes[PlaneNear] = planeFromRow(add4(r3, r2))
	f.Planes[PlaneFar] = planeFromRow(sub4(r3, r2))

	for i := range f.Planes {
		f.Planes[i].normalize()
	}
	return f
}

func planeFromRow(r math.Vec4) Plane {
	return Plane{Normal: math.Vec3{X: r[0], Y: r[1], Z: r[2]}, D: r[3]}
}

func add4(a, b math.Vec4) math.Vec4 {
	return math.Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func sub4(a, b math.Vec4) math.Vec4 {
	return math.Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// IntersectsAABB reports whether any part of the box may be inside the
// frustum. The test is conservative: it can keep a box that is
// actually outside (near frustum corners), but never rejects a
// visible one.
func (f Frustum) IntersectsAABB(box math.AABB) bool {
	for i := range f.Planes {
		p := f.Planes[i]

		// Positive vertex: the box corner furthest along the plane
		// normal. If even that corner is behind the plane, the whole
		// box is.
		v := math.Vec3{
			X: pick(p.Normal.X >= 0, box.Max.X, box.Min.X),
			Y: pick(p.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			Z: pick(p.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		}
		if p.Distance(v) < 0 {
			return false
		}
	}
	return true
}

// ContainsAABB reports whether the box is entirely inside the frustum.
func (f Frustum) ContainsAABB(box math.AABB) bool {
	for i := range f.Planes {
		p := f.Planes[i]
		v := math.Vec3{
			X: pick(p.Normal.X >= 0, box.Min.X, box.Max.X),
			Y: pick(p.Normal.Y >= 0, box.Min.Y, box.Max.Y),
			Z: pick(p.Normal.Z >= 0, box.Min.Z, box.Max.Z),
		}
		if p.Distance(v) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether a point is inside the frustum.
func (f Frustum) ContainsPoint(p math.Vec3) bool {
	for i := range f.Planes {
		if f.Planes[i].Distance(p) < 0 {
			return false
		}
	}
	return true
}

func pick(cond bool, a, b float32) float32 {
	if cond {
		return a
	}
	return b
}
