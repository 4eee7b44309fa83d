package layout

import (
	"log/slog"

	"github.com/go-drift/boxlayout/pkg/graphics"
)

// TextMeasurer reports the size of a single line of text.
type TextMeasurer interface {
	MeasureText(text string) graphics.Size
}

// LayoutCtx carries the capabilities of one layout pass.
// It is created by the Root for each pass and must not be retained.
type LayoutCtx struct {
	// Text measures text for leaf widgets. Nil selects graphics.FontMeasurer.
	Text TextMeasurer
	// Logger receives per-node debug records when non-nil.
	Logger *slog.Logger

	pass  uint64
	depth int
	force bool
}

// Pass returns the sequence number of the running layout pass.
func (c *LayoutCtx) Pass() uint64 {
	return c.pass
}

// Depth returns the tree depth of the node being laid out (root = 0).
func (c *LayoutCtx) Depth() int {
	return c.depth
}

// MeasureText measures text with the pass's TextMeasurer.
func (c *LayoutCtx) MeasureText(text string) graphics.Size {
	if c.Text == nil {
		return graphics.FontMeasurer{}.MeasureText(text)
	}
	return c.Text.MeasureText(text)
}

// PaintCtx provides the canvas for one paint pass.
type PaintCtx struct {
	// Canvas is the drawing surface. The core only translates it.
	Canvas graphics.Canvas

	origin graphics.Point
	depth  int
}

// NewPaintCtx returns a paint context drawing onto canvas.
func NewPaintCtx(canvas graphics.Canvas) *PaintCtx {
	return &PaintCtx{Canvas: canvas}
}

// Origin returns the accumulated translation of the node being painted,
// in root coordinates.
func (p *PaintCtx) Origin() graphics.Point {
	return p.origin
}

// Depth returns the tree depth of the node being painted.
func (p *PaintCtx) Depth() int {
	return p.depth
}

// EventCtx carries the capabilities of one event dispatch.
//
// State queries (IsHot, IsActive) and SetActive address the node whose
// Event method is currently running; the WidgetBase wrapper retargets the
// context as the dispatch descends.
type EventCtx struct {
	base          *BaseState
	handled       bool
	layoutRequest bool
	paintRequest  bool
	depth         int
}

// NewEventCtx returns an empty event context.
func NewEventCtx() *EventCtx {
	return &EventCtx{}
}

// SetHandled marks the event as consumed; containers stop offering it to
// further children.
func (c *EventCtx) SetHandled() {
	c.handled = true
}

// IsHandled reports whether some node consumed the event.
func (c *EventCtx) IsHandled() bool {
	return c.handled
}

// RequestLayout asks the driver for a layout pass covering this node.
func (c *EventCtx) RequestLayout() {
	c.layoutRequest = true
	c.paintRequest = true
}

// RequestPaint asks the driver for a paint pass.
func (c *EventCtx) RequestPaint() {
	c.paintRequest = true
}

// SetActive sets or clears pointer capture for the current node.
func (c *EventCtx) SetActive(active bool) {
	if c.base != nil {
		c.base.active = active
	}
}

// IsActive reports whether the current node holds pointer capture.
func (c *EventCtx) IsActive() bool {
	return c.base != nil && c.base.active
}

// IsHot reports whether the pointer is over the current node.
func (c *EventCtx) IsHot() bool {
	return c.base != nil && c.base.hot
}

// Size returns the current node's size from the latest layout.
func (c *EventCtx) Size() graphics.Size {
	if c.base == nil {
		return graphics.Size{}
	}
	return c.base.size
}

// Depth returns the tree depth of the node handling the event.
func (c *EventCtx) Depth() int {
	return c.depth
}
