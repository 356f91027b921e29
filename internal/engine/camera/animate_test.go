package camera

import (
	gomath "math"
	"testing"
	"time"

	"github.com/yuann3/lrle/pkg/math"
)

func TestAnimateToZeroDurationAppliesImmediately(t *testing.T) {
	c := New()
	to := State{
		Distance:   120,
		Azimuth:    1,
		Elevation:  0.4,
		Target:     math.Vec3{X: 8},
		Projection: Orthographic,
	}
	c.AnimateTo(to, 0, time.Now())

	if c.Animating() {
		t.Error("Animating() = true after zero-duration transition")
	}
	if c.Distance != 120 || c.Azimuth != 1 || c.Elevation != 0.4 {
		t.Errorf("state = %+v, want %+v", c.State(), to)
	}
	if c.Projection != Orthographic {
		t.Errorf("Projection = %v, want Orthographic", c.Projection)
	}
}

func TestAnimateToEasesDistance(t *testing.T) {
	c := New()
	c.Distance = 10
	start := time.Unix(0, 0)
	c.AnimateTo(State{Distance: 20, Azimuth: c.Azimuth, Elevation: c.Elevation, Target: c.Target, Projection: c.Projection}, time.Second, start)

	// smoothstep(0.5) = 0.5, so the midpoint of the transition is the
	// midpoint of the values.
	c.Update(start.Add(500 * time.Millisecond))
	if !approx(c.Distance, 15) {
		t.Errorf("Distance at midpoint = %v, want 15", c.Distance)
	}

	// Quarter point lags behind linear interpolation.
	c2 := New()
	c2.Distance = 10
	c2.AnimateTo(State{Distance: 20, Azimuth: c2.Azimuth, Elevation: c2.Elevation, Target: c2.Target, Projection: c2.Projection}, time.Second, start)
	c2.Update(start.Add(250 * time.Millisecond))
	if c2.Distance >= 12.5 || c2.Distance <= 10 {
		t.Errorf("Distance at quarter point = %v, want in (10, 12.5)", c2.Distance)
	}
}

func TestAnimateToFinishesExactly(t *testing.T) {
	c := New()
	start := time.Unix(0, 0)
	to := c.State()
	to.Distance = 77
	to.Target = math.Vec3{X: 1, Y: 2, Z: 3}
	c.AnimateTo(to, time.Second, start)

	if changed := c.Update(start.Add(2 * time.Second)); !changed {
		t.Error("Update past the end reported no change")
	}
	if c.Animating() {
		t.Error("Animating() = true after transition end")
	}
	if c.Distance != 77 || c.Target != to.Target {
		t.Errorf("state = %+v, want %+v", c.State(), to)
	}
	if c.Update(start.Add(3 * time.Second)) {
		t.Error("Update with no active transition reported a change")
	}
}

func TestAnimateToTakesShortestAzimuthArc(t *testing.T) {
	deg := func(d float64) float32 { return float32(d * gomath.Pi / 180) }

	c := New()
	c.Azimuth = deg(350)
	to := c.State()
	to.Azimuth = deg(10)

	start := time.Unix(0, 0)
	c.AnimateTo(to, time.Second, start)

	// The 20 degree forward arc crosses zero; the azimuth must never
	// swing back through 180 degrees.
	prev := float64(350)
	for ms := 50; ms <= 1000; ms += 50 {
		c.Update(start.Add(time.Duration(ms) * time.Millisecond))
		a := float64(c.Azimuth) * 180 / gomath.Pi
		if a < 340 && a > 20 {
			t.Fatalf("azimuth left the short arc: %v degrees at %dms", a, ms)
		}
		// Unwrap across the 360 -> 0 seam and require forward motion.
		u := a
		if u < 180 {
			u += 360
		}
		if u+1e-3 < prev {
			t.Fatalf("azimuth moved backward: %v after %v degrees", a, prev)
		}
		prev = u
	}
	if !approx(c.Azimuth, deg(10)) {
		t.Errorf("final azimuth = %v, want %v", c.Azimuth, deg(10))
	}
}

func TestAnimateToClampsRequestedState(t *testing.T) {
	c := New()
	to := c.State()
	to.Elevation = 10
	to.Distance = 1e9
	c.AnimateTo(to, 0, time.Now())

	if c.Elevation != c.MaxElevation {
		t.Errorf("Elevation = %v, want clamp boundary %v", c.Elevation, c.MaxElevation)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v, want clamp boundary %v", c.Distance, c.MaxDistance)
	}
}

func TestManualInputCancelsAnimation(t *testing.T) {
	c := New()
	to := c.State()
	to.Distance = 200
	c.AnimateTo(to, time.Second, time.Unix(0, 0))

	c.Orbit(0.1, 0)
	if c.Animating() {
		t.Error("Animating() = true after Orbit")
	}
}

func TestPresetIsometric(t *testing.T) {
	c := New()
	c.Target = math.Vec3{X: 3, Z: -2}
	s := c.PresetState(PresetIsometric)

	if s.Projection != Orthographic {
		t.Errorf("Projection = %v, want Orthographic", s.Projection)
	}
	if !approx(s.Azimuth, gomath.Pi/4) {
		t.Errorf("Azimuth = %v, want pi/4", s.Azimuth)
	}
	if want := float32(gomath.Atan(1 / gomath.Sqrt2)); !approx(s.Elevation, want) {
		t.Errorf("Elevation = %v, want %v", s.Elevation, want)
	}
	if s.Target != c.Target {
		t.Errorf("Target = %v, want %v", s.Target, c.Target)
	}
}

func TestPresetDefaultRestoresDefaults(t *testing.T) {
	c := New()
	c.Distance = 500
	c.Azimuth = 2
	c.Elevation = 1

	s := c.PresetState(PresetDefault)
	if s.Distance != defaultDistance || !approx(s.Azimuth, defaultAzimuth) || !approx(s.Elevation, defaultElevation) {
		t.Errorf("preset state = %+v, want defaults", s)
	}
	if s.Projection != Perspective {
		t.Errorf("Projection = %v, want Perspective", s.Projection)
	}
}
