// Package input handles SDL2 input events and drives the orbital
// camera from mouse and keyboard state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	RelX   int
	RelY   int
	Button uint8
	Clicks uint8
	WheelY float32
}

// Pump polls SDL events each frame.
type Pump struct {
	events []Event
}

// NewPump creates an event pump.
func NewPump() *Pump {
	return &Pump{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them. Returns true if the
// application should quit.
func (p *Pump) Update() bool {
	p.events = p.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			p.events = append(p.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				p.events = append(p.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			t := EventKeyUp
			if e.Type == sdl.KEYDOWN {
				t = EventKeyDown
			}
			p.events = append(p.events, Event{
				Type: t,
				Key:  e.Keysym.Scancode,
			})

		case *sdl.MouseMotionEvent:
			p.events = append(p.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				RelX:   int(e.XRel),
				RelY:   int(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			t := EventMouseUp
			if e.Type == sdl.MOUSEBUTTONDOWN {
				t = EventMouseDown
			}
			p.events = append(p.events, Event{
				Type:   t,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
				Clicks: e.Clicks,
			})

		case *sdl.MouseWheelEvent:
			p.events = append(p.events, Event{
				Type:   EventMouseWheel,
				WheelY: float32(e.PreciseY),
			})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (p *Pump) Events() []Event {
	return p.events
}

// IsKeyPressed checks if a specific key went down this frame.
func (p *Pump) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range p.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
