package camera

import (
	gomath "math"
	"time"

	"github.com/yuann3/lrle/pkg/math"
)

// State is a snapshot of the orbital parameters, used for presets and
// animated transitions.
type State struct {
	Distance   float32
	Azimuth    float32
	Elevation  float32
	Target     math.Vec3
	Projection ProjectionKind
}

// State returns the camera's current orbital state.
func (c *Camera) State() State {
	return State{
		Distance:   c.Distance,
		Azimuth:    c.Azimuth,
		Elevation:  c.Elevation,
		Target:     c.Target,
		Projection: c.Projection,
	}
}

// Preset identifies a canned camera placement.
type Preset int

const (
	PresetDefault Preset = iota
	PresetIsometric
	PresetTop
)

// PresetState returns the target state for a preset, keeping the
// current orbit target.
func (c *Camera) PresetState(p Preset) State {
	s := c.State()
	switch p {
	case PresetIsometric:
		// Classic isometric: orthographic, 45 degrees around, looking
		// down the cube diagonal.
		s.Azimuth = gomath.Pi / 4
		s.Elevation = float32(gomath.Atan(1 / gomath.Sqrt2))
		s.Projection = Orthographic
	case PresetTop:
		s.Azimuth = 0
		s.Elevation = c.MaxElevation
		s.Projection = c.Projection
	default:
		s.Distance = defaultDistance
		s.Azimuth = defaultAzimuth
		s.Elevation = defaultElevation
		s.Projection = Perspective
	}
	return s
}

type animation struct {
	from     State
	to       State
	start    time.Time
	duration time.Duration
}

// AnimateTo starts an eased transition toward the target state. The
// transition advances on Update calls; a zero or negative duration
// applies the state immediately.
func (c *Camera) AnimateTo(to State, duration time.Duration, now time.Time) {
	to.Elevation = clamp(to.Elevation, c.MinElevation, c.MaxElevation)
	to.Distance = clamp(to.Distance, c.MinDistance, c.MaxDistance)
	to.Azimuth = wrapAngle(to.Azimuth)

	if duration <= 0 {
		c.apply(to)
		c.anim = nil
		return
	}

	// The projection kind cannot be blended; switch it up front. The
	// orthographic volume tracks distance, so framing stays put.
	c.Projection = to.Projection

	c.anim = &animation{
		from:     c.State(),
		to:       to,
		start:    now,
		duration: duration,
	}
}

// Animating reports whether a transition is in progress.
func (c *Camera) Animating() bool {
	return c.anim != nil
}

// Update advances the active transition, if any. Returns true when the
// camera state changed.
func (c *Camera) Update(now time.Time) bool {
	if c.anim == nil {
		return false
	}

	t := float32(now.Sub(c.anim.start)) / float32(c.anim.duration)
	if t >= 1 {
		c.apply(c.anim.to)
		c.anim = nil
		return true
	}
	if t < 0 {
		t = 0
	}

	e := smoothstep(t)
	from, to := c.anim.from, c.anim.to

	c.Distance = from.Distance + (to.Distance-from.Distance)*e
	c.Elevation = from.Elevation + (to.Elevation-from.Elevation)*e
	c.Azimuth = wrapAngle(from.Azimuth + shortestArc(from.Azimuth, to.Azimuth)*e)
	c.Target = from.Target.Lerp(to.Target, e)
	return true
}

func (c *Camera) apply(s State) {
	c.Distance = s.Distance
	c.Azimuth = s.Azimuth
	c.Elevation = s.Elevation
	c.Target = s.Target
	c.Projection = s.Projection
}

// smoothstep is the eased interpolation curve 3t^2 - 2t^3.
func smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}

// shortestArc returns the signed angular difference from one azimuth to
// another along the shorter way around, in (-pi, pi]. Interpolating
// 350 degrees to 10 degrees goes forward through 0, not back through 180.
func shortestArc(from, to float32) float32 {
	const twoPi = 2 * gomath.Pi
	d := float32(gomath.Mod(float64(to-from), twoPi))
	if d > gomath.Pi {
		d -= twoPi
	}
	if d <= -gomath.Pi {
		d += twoPi
	}
	return d
}
