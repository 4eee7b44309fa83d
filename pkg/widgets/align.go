package widgets

import (
	"math"

	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

// Align positions its child within itself according to the given alignment.
//
// Align expands to fill the available space, then positions the child within
// that space. The child is given loose constraints, allowing it to size
// itself. On an unbounded axis Align shrinks to the child instead.
//
//	widgets.NewAlign(layout.AlignmentBottomRight, label)
//
// See also [Center].
type Align struct {
	alignment layout.Alignment
	child     *layout.WidgetBase
}

// NewAlign places child inside the available space at alignment.
func NewAlign(alignment layout.Alignment, child layout.WidgetInner) *Align {
	return &Align{alignment: alignment, child: layout.NewWidgetBase(child)}
}

// Center centers child in the available space.
func Center(child layout.WidgetInner) *Align {
	return NewAlign(layout.AlignmentCenter, child)
}

// Alignment returns the placement factors.
func (a *Align) Alignment() layout.Alignment {
	return a.alignment
}

// SetAlignment replaces the placement factors. The owner must schedule a
// layout pass afterwards.
func (a *Align) SetAlignment(alignment layout.Alignment) {
	a.alignment = alignment
}

func (a *Align) VisitChildren(visitor func(*layout.WidgetBase)) {
	visitor(a.child)
}

func (a *Align) Layout(ctx *layout.LayoutCtx, bc layout.BoxConstraints, e *env.Env) graphics.Size {
	childSize := a.child.Layout(ctx, bc.Loosen(), e)

	target := bc.Max
	if math.IsInf(target.Width, 1) {
		target.Width = childSize.Width
	}
	if math.IsInf(target.Height, 1) {
		target.Height = childSize.Height
	}
	size := bc.Constrain(target)

	a.child.SetLayoutRect(graphics.RectFromOriginSize(a.alignment.Within(size, childSize), childSize))
	return size
}

func (a *Align) Paint(ctx *layout.PaintCtx, base *layout.BaseState, e *env.Env) {
	a.child.PaintWithOffset(ctx, e)
}

func (a *Align) Event(ev event.Event, ctx *layout.EventCtx, e *env.Env) event.Action {
	return a.child.Event(ev, ctx, e)
}
