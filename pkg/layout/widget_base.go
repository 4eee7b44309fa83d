package layout

import (
	"fmt"
	"log/slog"

	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/errors"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
)

// WidgetBase owns one widget and the geometry its parent assigned to it.
//
// It separates what a widget computes (its size) from where it sits (its
// rect in the parent's coordinate space). The parent calls Layout, then
// SetLayoutRect; PaintWithOffset and Event read that rect to translate the
// canvas and incoming coordinates so the owned widget always works in its
// own local space.
//
// A WidgetBase is owned by exactly one parent. Dropping the root drops every
// node below it.
type WidgetBase struct {
	inner WidgetInner
	state BaseState
}

// NewWidgetBase takes ownership of inner.
func NewWidgetBase(inner WidgetInner) *WidgetBase {
	w := &WidgetBase{inner: inner}
	w.state.needsLayout = true
	w.state.needsPaint = true
	return w
}

// Inner returns the owned widget.
func (w *WidgetBase) Inner() WidgetInner {
	return w.inner
}

// State returns the node's cached state.
func (w *WidgetBase) State() *BaseState {
	return &w.state
}

// Size returns the size from the latest layout.
func (w *WidgetBase) Size() graphics.Size {
	return w.state.size
}

// LayoutRect returns the rect assigned by the parent and whether it is
// current for the latest layout.
func (w *WidgetBase) LayoutRect() (graphics.Rect, bool) {
	return w.state.LayoutRect()
}

// Layout lays out the owned widget under bc and returns its size.
//
// The result is cached together with bc. A node that is clean and receives
// the same constraints again returns the cached size without running the
// widget's layout. A size outside bc breaks the contract: debug builds
// panic, release builds report it and clamp.
func (w *WidgetBase) Layout(ctx *LayoutCtx, bc BoxConstraints, e *env.Env) graphics.Size {
	w.state.placed = false

	if !ctx.force && w.state.laidOut && !w.state.needsLayout && w.state.constraints == bc {
		return w.state.size
	}

	ctx.depth++
	size := w.inner.Layout(ctx, bc, e)
	ctx.depth--

	if !bc.Satisfies(size) {
		violation("layout.WidgetBase.Layout", errors.KindConstraint, typeName(w.inner),
			fmt.Errorf("size %v outside %v", size, bc))
		size = bc.Constrain(size)
	}

	if ctx.Logger != nil {
		ctx.Logger.Debug("layout",
			slog.String("widget", typeName(w.inner)),
			slog.Int("depth", ctx.depth),
			slog.Uint64("pass", ctx.pass),
			slog.String("constraints", bc.String()),
			slog.Float64("width", size.Width),
			slog.Float64("height", size.Height),
		)
	}

	if w.state.size != size {
		w.state.needsPaint = true
	}
	w.state.size = size
	w.state.constraints = bc
	w.state.laidOut = true
	w.state.needsLayout = false
	return size
}

// SetLayoutRect records the rect this node occupies in its parent's
// coordinate space. The parent calls it exactly once after each Layout call.
func (w *WidgetBase) SetLayoutRect(rect graphics.Rect) {
	if w.state.placed {
		violation("layout.WidgetBase.SetLayoutRect", errors.KindPlacement, typeName(w.inner),
			fmt.Errorf("placed twice in one pass (was %v, now %v)", w.state.rect, rect))
	}
	if w.state.rect != rect {
		w.state.needsPaint = true
	}
	w.state.rect = rect
	w.state.hasRect = true
	w.state.placed = true
	w.state.reportedStale = false
}

// geometry returns the rect to use for paint and event translation.
//
// A rect that was never assigned yields the zero rect. A rect assigned
// before the latest layout is used as the last known good geometry. Both
// cases are reported once per node until the next placement.
func (w *WidgetBase) geometry(op string) graphics.Rect {
	if w.state.hasRect && w.state.placed {
		return w.state.rect
	}
	if !w.state.reportedStale {
		w.state.reportedStale = true
		reason := "no layout rect assigned"
		if w.state.hasRect {
			reason = "layout rect predates the latest layout"
		}
		violation(op, errors.KindStaleGeometry, typeName(w.inner), fmt.Errorf("%s", reason))
	}
	if !w.state.hasRect {
		return graphics.Rect{}
	}
	return w.state.rect
}

// PaintWithOffset translates the canvas to this node's origin and paints
// the owned widget, so the widget always paints as if its origin were (0,0).
func (w *WidgetBase) PaintWithOffset(ctx *PaintCtx, e *env.Env) {
	rect := w.geometry("layout.WidgetBase.PaintWithOffset")
	origin := rect.Origin()

	savedOrigin := ctx.origin
	ctx.Canvas.Save()
	ctx.Canvas.Translate(origin.X, origin.Y)
	ctx.origin = ctx.origin.Add(origin)
	ctx.depth++

	w.inner.Paint(ctx, &w.state, e)

	ctx.depth--
	ctx.origin = savedOrigin
	ctx.Canvas.Restore()
	w.state.needsPaint = false
}

// Event delivers ev to the owned widget and returns its Action.
//
// Positioned events are translated from the parent's space into this
// node's space using the assigned rect, mirroring PaintWithOffset. The hot
// flag follows the translated position. Layout requests raised anywhere
// below mark this node dirty on the way back up.
func (w *WidgetBase) Event(ev event.Event, ctx *EventCtx, e *env.Env) event.Action {
	if p, ok := ev.(event.Positioned); ok {
		origin := w.geometry("layout.WidgetBase.Event").Origin()
		ev = p.Translate(-origin.X, -origin.Y)
		local := ev.(event.Positioned).Position()
		// Right and bottom edges belong to the next sibling.
		hot := graphics.RectFromOriginSize(graphics.Point{}, w.state.size).Contains(local)
		if hot != w.state.hot {
			w.state.hot = hot
			w.state.needsPaint = true
			ctx.paintRequest = true
		}
	}

	savedBase := ctx.base
	savedLayout := ctx.layoutRequest
	savedPaint := ctx.paintRequest
	ctx.base = &w.state
	ctx.layoutRequest = false
	ctx.paintRequest = false
	ctx.depth++

	action := w.inner.Event(ev, ctx, e)

	ctx.depth--
	if ctx.layoutRequest {
		w.state.needsLayout = true
	}
	if ctx.paintRequest {
		w.state.needsPaint = true
	}
	ctx.base = savedBase
	ctx.layoutRequest = ctx.layoutRequest || savedLayout
	ctx.paintRequest = ctx.paintRequest || savedPaint
	return action
}

// VisitChildren forwards to the owned widget when it has children.
func (w *WidgetBase) VisitChildren(visitor func(*WidgetBase)) {
	if cv, ok := w.inner.(ChildVisitor); ok {
		cv.VisitChildren(visitor)
	}
}

// Walk calls fn for w and every descendant in depth-first pre-order.
func (w *WidgetBase) Walk(fn func(node *WidgetBase, depth int)) {
	w.walk(fn, 0)
}

func (w *WidgetBase) walk(fn func(*WidgetBase, int), depth int) {
	fn(w, depth)
	w.VisitChildren(func(child *WidgetBase) {
		child.walk(fn, depth+1)
	})
}
