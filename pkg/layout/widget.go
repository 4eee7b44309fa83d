package layout

import (
	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
)

// WidgetInner is the contract every node in the tree implements.
//
// Implementations never see their own position. Children are owned through
// *WidgetBase values and reached only through the wrapper's methods, which
// apply the geometry assigned by the parent.
type WidgetInner interface {
	// Paint issues drawing commands in the node's local coordinate space.
	// It must not change anything layout depends on. Children are painted
	// with WidgetBase.PaintWithOffset.
	Paint(ctx *PaintCtx, base *BaseState, e *env.Env)

	// Layout returns a size satisfying bc. A container lays out each child
	// and places it with WidgetBase.SetLayoutRect exactly once before
	// returning.
	Layout(ctx *LayoutCtx, bc BoxConstraints, e *env.Env) graphics.Size

	// Event handles or forwards an input event. It returns at most one
	// Action; nil means nothing happened. Coordinates in ev are local to
	// this node.
	Event(ev event.Event, ctx *EventCtx, e *env.Env) event.Action
}

// ChildVisitor is implemented by widgets that own children.
type ChildVisitor interface {
	// VisitChildren calls the visitor function for each owned child.
	VisitChildren(visitor func(*WidgetBase))
}

// BaseState is the per-node state kept by the wrapper.
type BaseState struct {
	size        graphics.Size
	constraints BoxConstraints
	rect        graphics.Rect

	laidOut       bool // at least one layout call completed
	hasRect       bool // a rect was ever assigned
	placed        bool // the rect was assigned after the latest layout call
	needsLayout   bool
	needsPaint    bool
	hot           bool
	active        bool
	reportedStale bool
}

// Size returns the size from the latest layout.
func (b *BaseState) Size() graphics.Size {
	return b.size
}

// Constraints returns the constraints of the latest layout.
func (b *BaseState) Constraints() BoxConstraints {
	return b.constraints
}

// LayoutRect returns the rect assigned by the parent and whether it is
// current, meaning it was assigned after the latest layout of this node.
func (b *BaseState) LayoutRect() (graphics.Rect, bool) {
	return b.rect, b.hasRect && b.placed
}

// IsHot reports whether the pointer was inside the node at the last
// positioned event.
func (b *BaseState) IsHot() bool {
	return b.hot
}

// IsActive reports whether the node holds pointer capture.
func (b *BaseState) IsActive() bool {
	return b.active
}

// NeedsLayout reports whether the node must run layout on the next pass.
func (b *BaseState) NeedsLayout() bool {
	return b.needsLayout
}

// NeedsPaint reports whether the node changed since its last paint.
func (b *BaseState) NeedsPaint() bool {
	return b.needsPaint
}
