package widgets

import (
	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

// Padding adds empty space around its child widget.
//
// The child is constrained to the space left after the insets are removed
// from both the minimum and the maximum of the incoming constraints, and is
// placed at (left, top). Padding draws nothing and adds no input handling
// of its own; paint and events pass straight through to the child.
//
//	widgets.UniformPadding(16, child)
//	widgets.SymmetricPadding(24, 12, child)
//	widgets.NewPadding(layout.EdgeInsetsOnly(8, 0, 8, 0), child)
type Padding struct {
	insets layout.EdgeInsets
	themed bool
	child  *layout.WidgetBase
}

// NewPadding wraps child with the given insets. Negative sides are
// treated as zero. A nil child yields an empty box of the inset size.
func NewPadding(insets layout.EdgeInsets, child layout.WidgetInner) *Padding {
	p := &Padding{insets: insets.NonNegative()}
	if child != nil {
		p.child = layout.NewWidgetBase(child)
	}
	return p
}

// UniformPadding wraps child with amount on every side.
func UniformPadding(amount float64, child layout.WidgetInner) *Padding {
	return NewPadding(layout.EdgeInsetsAll(amount), child)
}

// SymmetricPadding wraps child with horizontal insets on the left and right
// and vertical insets on the top and bottom.
func SymmetricPadding(horizontal, vertical float64, child layout.WidgetInner) *Padding {
	return NewPadding(layout.EdgeInsetsSymmetric(horizontal, vertical), child)
}

// ThemedPadding wraps child with the environment's DefaultPadding on every
// side, read at layout time so a new theme takes effect on the next pass.
func ThemedPadding(child layout.WidgetInner) *Padding {
	p := NewPadding(layout.EdgeInsets{}, child)
	p.themed = true
	return p
}

// Insets returns the padding amounts. Themed padding reports the insets
// used by its latest layout.
func (p *Padding) Insets() layout.EdgeInsets {
	return p.insets
}

// SetInsets replaces the padding amounts. The owner must schedule a layout
// pass (Root.MarkNeedsLayout) for the change to take effect.
func (p *Padding) SetInsets(insets layout.EdgeInsets) {
	p.insets = insets.NonNegative()
	p.themed = false
}

// Child returns the wrapped child node, or nil.
func (p *Padding) Child() *layout.WidgetBase {
	return p.child
}

func (p *Padding) VisitChildren(visitor func(*layout.WidgetBase)) {
	if p.child != nil {
		visitor(p.child)
	}
}

func (p *Padding) Layout(ctx *layout.LayoutCtx, bc layout.BoxConstraints, e *env.Env) graphics.Size {
	if p.themed {
		p.insets = layout.EdgeInsetsAll(env.Get(e, DefaultPadding)).NonNegative()
	}
	hpad := p.insets.Horizontal()
	vpad := p.insets.Vertical()
	if p.child == nil {
		return bc.Constrain(graphics.Size{Width: hpad, Height: vpad})
	}
	childSize := p.child.Layout(ctx, bc.Shrink(hpad, vpad), e)
	p.child.SetLayoutRect(graphics.RectFromOriginSize(p.insets.TopLeft(), childSize))
	// Only differs from the raw sum when the insets alone exceed bc.Max.
	return bc.Constrain(childSize.Add(hpad, vpad))
}

func (p *Padding) Paint(ctx *layout.PaintCtx, base *layout.BaseState, e *env.Env) {
	if p.child != nil {
		p.child.PaintWithOffset(ctx, e)
	}
}

func (p *Padding) Event(ev event.Event, ctx *layout.EventCtx, e *env.Env) event.Action {
	if p.child == nil {
		return nil
	}
	return p.child.Event(ev, ctx, e)
}
