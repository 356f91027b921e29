// Package camera provides the orbital camera for terrain viewing.
package camera

import (
	gomath "math"

	"github.com/yuann3/lrle/pkg/math"
)

// ProjectionKind selects perspective or orthographic projection.
type ProjectionKind int

const (
	Perspective ProjectionKind = iota
	Orthographic
)

// String returns the kind name used in config files and the UI.
func (p ProjectionKind) String() string {
	if p == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// Camera orbits a target point using spherical coordinates.
//
// Azimuth is the horizontal angle around Y (0 = looking from +X),
// elevation the vertical angle from the XZ plane, clamped strictly
// inside (-pi/2, pi/2) to keep the look-at basis well defined.
type Camera struct {
	Distance  float32
	Azimuth   float32
	Elevation float32
	Target    math.Vec3

	Projection ProjectionKind
	FovY       float32 // vertical field of view, radians
	Near       float32
	Far        float32

	MinDistance  float32
	MaxDistance  float32
	MinElevation float32
	MaxElevation float32

	anim *animation
}

// Default camera placement: 45 degree azimuth, 30 degree elevation,
// 50 units out.
const (
	defaultDistance  = 50.0
	defaultAzimuth   = gomath.Pi / 4
	defaultElevation = gomath.Pi / 6
)

// New creates a camera with default settings.
func New() *Camera {
	return &Camera{
		Distance:     defaultDistance,
		Azimuth:      defaultAzimuth,
		Elevation:    defaultElevation,
		FovY:         gomath.Pi / 3, // 60 degrees
		Near:         0.1,
		Far:          4000,
		MinDistance:  1,
		MaxDistance:  2000,
		MinElevation: -gomath.Pi/2 + 0.1,
		MaxElevation: gomath.Pi/2 - 0.1,
	}
}

// Position returns the eye position in world space.
func (c *Camera) Position() math.Vec3 {
	cosE := float32(gomath.Cos(float64(c.Elevation)))
	return c.Target.Add(math.Vec3{
		X: c.Distance * cosE * float32(gomath.Cos(float64(c.Azimuth))),
		Y: c.Distance * float32(gomath.Sin(float64(c.Elevation))),
		Z: c.Distance * cosE * float32(gomath.Sin(float64(c.Azimuth))),
	})
}

// Orbit adds to azimuth (wrapping) and elevation (clamping).
func (c *Camera) Orbit(dAzimuth, dElevation float32) {
	c.anim = nil
	c.Azimuth = wrapAngle(c.Azimuth + dAzimuth)
	c.Elevation = clamp(c.Elevation+dElevation, c.MinElevation, c.MaxElevation)
}

// Zoom scales the distance by the given factor and clamps it. The
// minimum distance keeps the eye from crossing the target.
func (c *Camera) Zoom(factor float32) {
	c.anim = nil
	c.Distance = clamp(c.Distance*factor, c.MinDistance, c.MaxDistance)
}

// Pan moves the target in the camera's local right/up plane, so the
// point under the cursor stays under it. dx/dy are world units.
func (c *Camera) Pan(dx, dy float32) {
	c.anim = nil
	forward := c.Target.Sub(c.Position()).Normalize()
	right := forward.Cross(math.Vec3{Y: 1}).Normalize()
	up := right.Cross(forward)

	c.Target = c.Target.Sub(right.Scale(dx)).Add(up.Scale(dy))
}

// SetProjection switches the projection kind. The orthographic view
// volume is derived from the current distance and field of view, so
// the apparent framing of the target plane does not jump at the switch.
func (c *Camera) SetProjection(kind ProjectionKind) {
	c.Projection = kind
}

// orthoHalfHeight is the half-height of the orthographic view volume.
// Tying it to distance*tan(fovY/2) keeps framing consistent with the
// perspective view at the target plane and lets zoom work in both
// projections.
func (c *Camera) orthoHalfHeight() float32 {
	return c.Distance * float32(gomath.Tan(float64(c.FovY)/2))
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the projection for the given aspect ratio.
func (c *Camera) ProjectionMatrix(aspect float32) math.Mat4 {
	if c.Projection == Orthographic {
		h := c.orthoHalfHeight()
		w := h * aspect
		return math.Ortho(-w, w, -h, h, c.Near, c.Far)
	}
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view, the matrix handed to the
// shading stage and to frustum extraction.
func (c *Camera) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}

// wrapAngle wraps an angle to [0, 2pi).
func wrapAngle(a float32) float32 {
	const twoPi = 2 * gomath.Pi
	a = float32(gomath.Mod(float64(a), twoPi))
	if a < 0 {
		a += twoPi
	}
	return a
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
