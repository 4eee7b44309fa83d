package widgets

import (
	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

// SizedBox gives itself, and its optional child, a fixed width and/or height.
//
// A negative Width or Height leaves that axis to the child (or to the
// minimum constraint when there is no child). The requested size is always
// clamped into the incoming constraints. A non-transparent Color fills the
// box before the child paints.
//
//	widgets.NewSizedBox(100, 50, nil)
//	widgets.HSpace(16)
type SizedBox struct {
	Width  float64
	Height float64
	Color  graphics.Color

	child *layout.WidgetBase
}

// NewSizedBox returns a box of the given size around child, which may be nil.
func NewSizedBox(width, height float64, child layout.WidgetInner) *SizedBox {
	s := &SizedBox{Width: width, Height: height}
	if child != nil {
		s.child = layout.NewWidgetBase(child)
	}
	return s
}

// ColoredBox returns a childless box filled with color.
func ColoredBox(width, height float64, color graphics.Color) *SizedBox {
	s := NewSizedBox(width, height, nil)
	s.Color = color
	return s
}

// HSpace returns a fixed-width spacer.
func HSpace(width float64) *SizedBox {
	return NewSizedBox(width, 0, nil)
}

// VSpace returns a fixed-height spacer.
func VSpace(height float64) *SizedBox {
	return NewSizedBox(0, height, nil)
}

func (s *SizedBox) VisitChildren(visitor func(*layout.WidgetBase)) {
	if s.child != nil {
		visitor(s.child)
	}
}

func (s *SizedBox) Layout(ctx *layout.LayoutCtx, bc layout.BoxConstraints, e *env.Env) graphics.Size {
	inner := bc
	if s.Width >= 0 {
		w := bc.Constrain(graphics.Size{Width: s.Width}).Width
		inner.Min.Width, inner.Max.Width = w, w
	}
	if s.Height >= 0 {
		h := bc.Constrain(graphics.Size{Height: s.Height}).Height
		inner.Min.Height, inner.Max.Height = h, h
	}
	if s.child == nil {
		return inner.Min
	}
	size := s.child.Layout(ctx, inner, e)
	s.child.SetLayoutRect(graphics.RectFromOriginSize(graphics.Point{}, size))
	return size
}

func (s *SizedBox) Paint(ctx *layout.PaintCtx, base *layout.BaseState, e *env.Env) {
	if s.Color.Alpha8() != 0 {
		ctx.Canvas.DrawRect(graphics.RectFromOriginSize(graphics.Point{}, base.Size()), s.Color)
	}
	if s.child != nil {
		s.child.PaintWithOffset(ctx, e)
	}
}

func (s *SizedBox) Event(ev event.Event, ctx *layout.EventCtx, e *env.Env) event.Action {
	if s.child == nil {
		return nil
	}
	return s.child.Event(ev, ctx, e)
}
