// Package input turns SDL2 events into playground events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventDrag
	EventScroll
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	// DX and DY are the mouse motion for EventDrag and the wheel motion
	// for EventScroll.
	DX, DY float32
	Button uint8
	// Shift is held for a drag that edits control points.
	Shift bool
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events. Returns true if the window should close.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			var button uint8
			switch {
			case e.State&sdl.ButtonLMask() != 0:
				button = sdl.BUTTON_LEFT
			case e.State&sdl.ButtonRMask() != 0:
				button = sdl.BUTTON_RIGHT
			default:
				continue
			}
			i.events = append(i.events, Event{
				Type:   EventDrag,
				DX:     float32(e.XRel),
				DY:     float32(e.YRel),
				Button: button,
				Shift:  sdl.GetModState()&sdl.KMOD_SHIFT != 0,
			})

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{
				Type: EventScroll,
				DX:   float32(e.X),
				DY:   float32(e.Y),
			})
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
