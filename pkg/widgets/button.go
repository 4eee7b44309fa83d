package widgets

import (
	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

// Button is a pressable box around a child.
//
// A primary press inside the button captures the pointer; releasing it
// while the pointer is still inside reports event.Clicked with the
// button's ID. The background follows ButtonColor, ButtonHotColor and
// ButtonActiveColor from the environment.
type Button struct {
	id    string
	child *layout.WidgetBase
}

// NewButton returns a button reporting id around child.
func NewButton(id string, child layout.WidgetInner) *Button {
	return &Button{id: id, child: layout.NewWidgetBase(child)}
}

// NewTextButton returns a button around a label padded by insets.
func NewTextButton(id, text string, insets layout.EdgeInsets) *Button {
	return NewButton(id, NewPadding(insets, NewLabel(text)))
}

// ID returns the identifier reported in Clicked actions.
func (b *Button) ID() string {
	return b.id
}

func (b *Button) VisitChildren(visitor func(*layout.WidgetBase)) {
	visitor(b.child)
}

func (b *Button) Layout(ctx *layout.LayoutCtx, bc layout.BoxConstraints, e *env.Env) graphics.Size {
	size := b.child.Layout(ctx, bc, e)
	b.child.SetLayoutRect(graphics.RectFromOriginSize(graphics.Point{}, size))
	return size
}

func (b *Button) Paint(ctx *layout.PaintCtx, base *layout.BaseState, e *env.Env) {
	color := env.Get(e, ButtonColor)
	switch {
	case base.IsActive() && base.IsHot():
		color = env.Get(e, ButtonActiveColor)
	case base.IsHot():
		color = env.Get(e, ButtonHotColor)
	}
	ctx.Canvas.DrawRect(graphics.RectFromOriginSize(graphics.Point{}, base.Size()), color)
	b.child.PaintWithOffset(ctx, e)
}

func (b *Button) Event(ev event.Event, ctx *layout.EventCtx, e *env.Env) event.Action {
	if action := b.child.Event(ev, ctx, e); action != nil {
		return action
	}
	switch ev := ev.(type) {
	case event.PointerDown:
		if ev.Button == event.ButtonPrimary && ctx.IsHot() {
			ctx.SetActive(true)
			ctx.SetHandled()
			ctx.RequestPaint()
		}
	case event.PointerUp:
		if ctx.IsActive() {
			ctx.SetActive(false)
			ctx.SetHandled()
			ctx.RequestPaint()
			if ctx.IsHot() {
				return event.Clicked{ID: b.id}
			}
		}
	}
	return nil
}
