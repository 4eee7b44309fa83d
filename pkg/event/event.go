// Package event defines the values that flow through the widget tree during
// an event pass: events travel down from the root, actions travel back up.
//
// Both are closed sets. Event sources (a terminal, a window system, a test
// harness) normalize their input into these types before dispatch.
package event

import (
	"fmt"

	"github.com/go-drift/boxlayout/pkg/graphics"
)

// Event is an input value delivered top-down through the tree.
type Event interface {
	isEvent()
}

// Positioned is implemented by events that carry a position in the
// receiving node's coordinate space.
type Positioned interface {
	Event
	// Position returns the event location.
	Position() graphics.Point
	// Translate returns a copy of the event with its position moved by (dx, dy).
	Translate(dx, dy float64) Event
}

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return "none"
	}
}

// PointerDown is sent when a pointer button is pressed.
type PointerDown struct {
	Pos    graphics.Point
	Button Button
}

// PointerUp is sent when a pointer button is released.
type PointerUp struct {
	Pos    graphics.Point
	Button Button
}

// PointerMove is sent when the pointer moves, with or without a button held.
type PointerMove struct {
	Pos    graphics.Point
	Button Button
}

// Wheel is sent for scroll input.
type Wheel struct {
	Pos   graphics.Point
	Delta graphics.Point
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Key is a keyboard event. Name holds a symbolic key ("enter", "tab");
// Rune is set for printable input.
type Key struct {
	Name    string
	Rune    rune
	Mods    Modifiers
	Pressed bool
}

// Resize is sent when the surface hosting the tree changes size.
type Resize struct {
	Size graphics.Size
}

// Focus is sent when the hosting surface gains or loses input focus.
type Focus struct {
	Focused bool
}

func (PointerDown) isEvent() {}
func (PointerUp) isEvent()   {}
func (PointerMove) isEvent() {}
func (Wheel) isEvent()       {}
func (Key) isEvent()         {}
func (Resize) isEvent()      {}
func (Focus) isEvent()       {}

func (e PointerDown) Position() graphics.Point { return e.Pos }
func (e PointerUp) Position() graphics.Point   { return e.Pos }
func (e PointerMove) Position() graphics.Point { return e.Pos }
func (e Wheel) Position() graphics.Point       { return e.Pos }

func (e PointerDown) Translate(dx, dy float64) Event {
	e.Pos = e.Pos.Translate(dx, dy)
	return e
}

func (e PointerUp) Translate(dx, dy float64) Event {
	e.Pos = e.Pos.Translate(dx, dy)
	return e
}

func (e PointerMove) Translate(dx, dy float64) Event {
	e.Pos = e.Pos.Translate(dx, dy)
	return e
}

func (e Wheel) Translate(dx, dy float64) Event {
	e.Pos = e.Pos.Translate(dx, dy)
	return e
}

func (e PointerDown) String() string {
	return fmt.Sprintf("PointerDown(%v, %v, %s)", e.Pos.X, e.Pos.Y, e.Button)
}

func (e PointerUp) String() string {
	return fmt.Sprintf("PointerUp(%v, %v, %s)", e.Pos.X, e.Pos.Y, e.Button)
}

func (e PointerMove) String() string {
	return fmt.Sprintf("PointerMove(%v, %v)", e.Pos.X, e.Pos.Y)
}

func (e Key) String() string {
	if e.Rune != 0 {
		return fmt.Sprintf("Key(%q)", e.Rune)
	}
	return fmt.Sprintf("Key(%s)", e.Name)
}
