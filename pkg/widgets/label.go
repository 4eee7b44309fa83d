package widgets

import (
	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

// Label displays a single line of text in the environment's TextColor.
// Its natural size comes from the layout pass's text measurer.
type Label struct {
	text string
}

// NewLabel returns a label showing text.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// Text returns the displayed text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the displayed text. The owner must schedule a layout
// pass for the new size to take effect.
func (l *Label) SetText(text string) {
	l.text = text
}

func (l *Label) Layout(ctx *layout.LayoutCtx, bc layout.BoxConstraints, e *env.Env) graphics.Size {
	return bc.Constrain(ctx.MeasureText(l.text))
}

func (l *Label) Paint(ctx *layout.PaintCtx, base *layout.BaseState, e *env.Env) {
	ctx.Canvas.Save()
	ctx.Canvas.ClipRect(graphics.RectFromOriginSize(graphics.Point{}, base.Size()))
	ctx.Canvas.DrawText(l.text, graphics.Point{}, env.Get(e, TextColor))
	ctx.Canvas.Restore()
}

func (l *Label) Event(ev event.Event, ctx *layout.EventCtx, e *env.Env) event.Action {
	return nil
}
