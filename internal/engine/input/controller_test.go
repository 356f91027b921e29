package input

import (
	"testing"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/yuann3/lrle/internal/engine/camera"
)

func press(button uint8) Event {
	return Event{Type: EventMouseDown, Button: button}
}

func release(button uint8) Event {
	return Event{Type: EventMouseUp, Button: button}
}

func move(dx, dy int) Event {
	return Event{Type: EventMouseMove, RelX: dx, RelY: dy}
}

func key(code sdl.Scancode, down bool) Event {
	t := EventKeyUp
	if down {
		t = EventKeyDown
	}
	return Event{Type: t, Key: code}
}

func TestDragModes(t *testing.T) {
	c := NewController(camera.New(), 60)

	if c.rotating() || c.panning() {
		t.Error("controller starts with a drag active")
	}

	c.Process([]Event{press(sdl.BUTTON_LEFT)}, time.Now())
	if !c.rotating() || c.panning() {
		t.Error("left drag should rotate")
	}

	c.Process([]Event{key(sdl.SCANCODE_LSHIFT, true)}, time.Now())
	if c.rotating() || !c.panning() {
		t.Error("shift+left drag should pan")
	}

	c.Process([]Event{release(sdl.BUTTON_LEFT), key(sdl.SCANCODE_LSHIFT, false), press(sdl.BUTTON_MIDDLE)}, time.Now())
	if !c.panning() {
		t.Error("middle drag should pan")
	}
}

func TestDragRotatesCamera(t *testing.T) {
	cam := camera.New()
	c := NewController(cam, 60)
	az, el := cam.Azimuth, cam.Elevation

	c.Process([]Event{press(sdl.BUTTON_LEFT), move(100, -40)}, time.Now())

	if cam.Azimuth == az {
		t.Error("horizontal drag did not change azimuth")
	}
	if cam.Elevation == el {
		t.Error("vertical drag did not change elevation")
	}
}

func TestElevationStaysClamped(t *testing.T) {
	cam := camera.New()
	c := NewController(cam, 60)

	c.Process([]Event{press(sdl.BUTTON_LEFT), move(0, 100000)}, time.Now())
	if cam.Elevation > cam.MaxElevation || cam.Elevation < cam.MinElevation {
		t.Errorf("elevation %v outside clamp range", cam.Elevation)
	}
}

func TestPanMovesTarget(t *testing.T) {
	cam := camera.New()
	c := NewController(cam, 60)
	before := cam.Target

	c.Process([]Event{press(sdl.BUTTON_MIDDLE), move(50, 20)}, time.Now())
	if cam.Target == before {
		t.Error("pan drag did not move the target")
	}
}

func TestWheelZoomConverges(t *testing.T) {
	cam := camera.New()
	c := NewController(cam, 60)
	start := cam.Distance

	c.Process([]Event{{Type: EventMouseWheel, WheelY: 1}}, time.Now())
	for i := 0; i < 300; i++ {
		c.Update()
	}

	// One notch up should settle near a single zoom-in step.
	want := start * (1 - c.Sens.Zoom)
	if diff := cam.Distance - want; diff > 0.05*start || diff < -0.05*start {
		t.Errorf("Distance = %v, want about %v", cam.Distance, want)
	}
}

func TestZoomRespectsDistanceClamp(t *testing.T) {
	cam := camera.New()
	c := NewController(cam, 60)

	for i := 0; i < 200; i++ {
		c.Process([]Event{{Type: EventMouseWheel, WheelY: 1}}, time.Now())
		c.Update()
	}
	for i := 0; i < 300; i++ {
		c.Update()
	}
	if cam.Distance < cam.MinDistance {
		t.Errorf("Distance = %v, below min %v", cam.Distance, cam.MinDistance)
	}

	for i := 0; i < 400; i++ {
		c.Process([]Event{{Type: EventMouseWheel, WheelY: -1}}, time.Now())
		c.Update()
	}
	for i := 0; i < 300; i++ {
		c.Update()
	}
	if cam.Distance > cam.MaxDistance {
		t.Errorf("Distance = %v, above max %v", cam.Distance, cam.MaxDistance)
	}
}

func TestResetKeyStartsAnimation(t *testing.T) {
	cam := camera.New()
	c := NewController(cam, 60)
	cam.Distance = 300
	cam.Azimuth = 2

	now := time.Unix(0, 0)
	c.Process([]Event{key(sdl.SCANCODE_R, true)}, now)

	if !cam.Animating() {
		t.Fatal("R did not start a reset animation")
	}
	cam.Update(now.Add(time.Second))
	def := camera.New()
	if cam.Distance != def.Distance || cam.Azimuth != def.Azimuth {
		t.Errorf("camera after reset = %v/%v, want defaults %v/%v",
			cam.Distance, cam.Azimuth, def.Distance, def.Azimuth)
	}
}

func TestOrbitInertiaDecays(t *testing.T) {
	cam := camera.New()
	c := NewController(cam, 60)

	now := time.Now()
	c.Process([]Event{press(sdl.BUTTON_LEFT), move(40, 0)}, now)
	c.Process([]Event{release(sdl.BUTTON_LEFT)}, now)

	after := cam.Azimuth
	c.Update()
	if cam.Azimuth == after {
		t.Error("no inertia applied after release")
	}

	for i := 0; i < 1000; i++ {
		c.Update()
	}
	settled := cam.Azimuth
	c.Update()
	if cam.Azimuth != settled {
		t.Error("inertia never settles")
	}
}

func TestDoubleClickCallback(t *testing.T) {
	c := NewController(camera.New(), 60)

	var gotX, gotY int
	called := 0
	c.OnDoubleClick = func(x, y int) {
		called++
		gotX, gotY = x, y
	}

	c.Process([]Event{{Type: EventMouseDown, Button: sdl.BUTTON_LEFT, Clicks: 2, MouseX: 12, MouseY: 34}}, time.Now())
	if called != 1 || gotX != 12 || gotY != 34 {
		t.Errorf("double click callback: called=%d pos=(%d,%d)", called, gotX, gotY)
	}
}
