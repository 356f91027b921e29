package input

import (
	gomath "math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/yuann3/lrle/internal/engine/camera"
)

// Sensitivity holds the mouse-to-camera scaling factors.
type Sensitivity struct {
	// Rotate is radians of orbit per pixel of drag.
	Rotate float32
	// Pan is world units per pixel, further scaled by camera distance.
	Pan float32
	// Zoom is the distance change per wheel notch; one notch up
	// multiplies distance by (1 - Zoom).
	Zoom float32
}

// DefaultSensitivity returns the stock tuning.
func DefaultSensitivity() Sensitivity {
	return Sensitivity{
		Rotate: 0.005,
		Pan:    0.1,
		Zoom:   0.1,
	}
}

const resetDuration = 400 * time.Millisecond

// Controller turns pump events into camera motion: left-drag orbits,
// middle-drag or shift+left-drag pans, the wheel zooms, R resets.
// Orbit release keeps a little inertia and wheel zoom is smoothed,
// both via critically damped springs.
type Controller struct {
	Sens Sensitivity

	cam *camera.Camera

	// OnDoubleClick, when set, receives the pixel position of a left
	// double click.
	OnDoubleClick func(x, y int)

	leftDown   bool
	middleDown bool
	shiftDown  bool

	// Orbit inertia: drag feeds a velocity that a spring decays to
	// zero after release.
	orbitSpring      harmonica.Spring
	azVel, azSpringV float64
	elVel, elSpringV float64

	// Zoom smoothing: wheel notches move a target that the applied
	// position springs toward.
	zoomSpring  harmonica.Spring
	zoomPos     float64
	zoomVel     float64
	zoomPending float64
}

// NewController creates a controller for the given camera, with spring
// timing tuned for the given frame rate.
func NewController(cam *camera.Camera, fps int) *Controller {
	return &Controller{
		Sens:        DefaultSensitivity(),
		cam:         cam,
		orbitSpring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		zoomSpring:  harmonica.NewSpring(harmonica.FPS(fps), 10.0, 1.0),
	}
}

// Process consumes one frame of events. Call Update afterwards to
// advance the springs.
func (c *Controller) Process(events []Event, now time.Time) {
	for _, ev := range events {
		switch ev.Type {
		case EventMouseDown:
			c.buttonChanged(ev.Button, true)
			if ev.Button == sdl.BUTTON_LEFT && ev.Clicks >= 2 && c.OnDoubleClick != nil {
				c.OnDoubleClick(ev.MouseX, ev.MouseY)
			}

		case EventMouseUp:
			c.buttonChanged(ev.Button, false)

		case EventMouseMove:
			c.mouseMoved(ev.RelX, ev.RelY)

		case EventMouseWheel:
			c.zoomPending += float64(ev.WheelY)

		case EventKeyDown:
			c.keyChanged(ev.Key, true, now)

		case EventKeyUp:
			c.keyChanged(ev.Key, false, now)
		}
	}
}

func (c *Controller) buttonChanged(button uint8, down bool) {
	switch button {
	case sdl.BUTTON_LEFT:
		c.leftDown = down
	case sdl.BUTTON_MIDDLE:
		c.middleDown = down
	}
}

func (c *Controller) keyChanged(key sdl.Scancode, down bool, now time.Time) {
	switch key {
	case sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT:
		c.shiftDown = down
	case sdl.SCANCODE_R:
		if down {
			c.cam.AnimateTo(c.cam.PresetState(camera.PresetDefault), resetDuration, now)
			c.stopMotion()
		}
	}
}

func (c *Controller) rotating() bool {
	return c.leftDown && !c.shiftDown
}

func (c *Controller) panning() bool {
	return c.middleDown || (c.leftDown && c.shiftDown)
}

func (c *Controller) mouseMoved(dx, dy int) {
	switch {
	case c.rotating():
		dAz := -float32(dx) * c.Sens.Rotate
		dEl := float32(dy) * c.Sens.Rotate
		c.cam.Orbit(dAz, dEl)
		// Remember the drag rate so release carries momentum.
		c.azVel = float64(dAz)
		c.elVel = float64(dEl)

	case c.panning():
		// Pan scaled by distance so a pixel covers the same fraction
		// of the view at any zoom level.
		scale := c.cam.Distance * c.Sens.Pan * 0.01
		c.cam.Pan(float32(dx)*scale, float32(dy)*scale)
	}
}

// stopMotion clears inertia and pending zoom, used when an animation
// takes over the camera.
func (c *Controller) stopMotion() {
	c.azVel, c.azSpringV = 0, 0
	c.elVel, c.elSpringV = 0, 0
	c.zoomPending = 0
	c.zoomPos, c.zoomVel = 0, 0
}

// Update advances inertia and zoom springs. Call once per frame.
func (c *Controller) Update() {
	// Orbit inertia only applies while the button is up; during a
	// drag the motion comes from the mouse itself.
	if !c.rotating() && (c.azVel != 0 || c.elVel != 0) {
		c.cam.Orbit(float32(c.azVel), float32(c.elVel))
		c.azVel, c.azSpringV = c.orbitSpring.Update(c.azVel, c.azSpringV, 0)
		c.elVel, c.elSpringV = c.orbitSpring.Update(c.elVel, c.elSpringV, 0)
		if gomath.Abs(c.azVel) < 1e-5 && gomath.Abs(c.elVel) < 1e-5 {
			c.azVel, c.elVel = 0, 0
		}
	}

	// Zoom: spring the applied notch count toward the pending total,
	// converting each step to an exponential distance factor.
	if c.zoomPos != c.zoomPending || c.zoomVel != 0 {
		prev := c.zoomPos
		c.zoomPos, c.zoomVel = c.zoomSpring.Update(c.zoomPos, c.zoomVel, c.zoomPending)
		step := c.zoomPos - prev
		if step != 0 {
			factor := gomath.Pow(float64(1-c.Sens.Zoom), step)
			c.cam.Zoom(float32(factor))
		}
		if gomath.Abs(c.zoomPos-c.zoomPending) < 1e-4 && gomath.Abs(c.zoomVel) < 1e-4 {
			c.zoomPos = c.zoomPending
			c.zoomVel = 0
		}
	}
}
