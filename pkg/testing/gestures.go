package testing

import (
	"fmt"

	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
)

// Tap simulates a primary press and release at the center of the first
// node matched by finder and returns the action of the release.
func (t *WidgetTester) Tap(finder Finder) (event.Action, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return nil, fmt.Errorf("Tap: finder matched no nodes: %s", finder.Description())
	}
	return t.TapAt(result.GlobalRect().Center())
}

// TapAt simulates a primary press and release at pos in root coordinates.
// It returns the first non-nil action of the two dispatches.
func (t *WidgetTester) TapAt(pos graphics.Point) (event.Action, error) {
	down, err := t.SendPointerDown(pos)
	if err != nil {
		return nil, err
	}
	up, err := t.SendPointerUp(pos)
	if err != nil {
		return nil, err
	}
	if down != nil {
		return down, nil
	}
	return up, nil
}

// DragFrom simulates a press at start, a move by delta and a release.
// It returns the action of the release.
func (t *WidgetTester) DragFrom(start, delta graphics.Point) (event.Action, error) {
	if _, err := t.SendPointerDown(start); err != nil {
		return nil, err
	}
	end := start.Add(delta)
	if _, err := t.SendPointerMove(end); err != nil {
		return nil, err
	}
	return t.SendPointerUp(end)
}

// SendPointerDown sends a primary pointer-down at pos.
func (t *WidgetTester) SendPointerDown(pos graphics.Point) (event.Action, error) {
	return t.send(event.PointerDown{Pos: pos, Button: event.ButtonPrimary})
}

// SendPointerMove sends a pointer-move at pos.
func (t *WidgetTester) SendPointerMove(pos graphics.Point) (event.Action, error) {
	return t.send(event.PointerMove{Pos: pos})
}

// SendPointerUp sends a primary pointer-up at pos.
func (t *WidgetTester) SendPointerUp(pos graphics.Point) (event.Action, error) {
	return t.send(event.PointerUp{Pos: pos, Button: event.ButtonPrimary})
}

// SendKey sends a key press followed by its release.
func (t *WidgetTester) SendKey(name string) (event.Action, error) {
	down, err := t.send(event.Key{Name: name, Pressed: true})
	if err != nil {
		return nil, err
	}
	up, err := t.send(event.Key{Name: name})
	if err != nil {
		return nil, err
	}
	if down != nil {
		return down, nil
	}
	return up, nil
}

func (t *WidgetTester) send(ev event.Event) (event.Action, error) {
	if t.root == nil {
		return nil, fmt.Errorf("no widget mounted")
	}
	return t.SendEvent(ev), nil
}
