package testing

import (
	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

// Probe is a leaf widget that records every call it receives.
//
// Layout returns Want clamped into the constraints (or Want unclamped when
// Unclamped is set, to exercise contract checks). Paint fills the probe's
// bounds with Color and records the canvas origin. Event records the
// event as seen in local coordinates and returns Action.
type Probe struct {
	Want      graphics.Size
	Unclamped bool
	Color     graphics.Color
	Action    event.Action

	Constraints   []layout.BoxConstraints
	Events        []event.Event
	PaintOrigins  []graphics.Point
	LayoutCount   int
	PaintCount    int
	HandleEvents  bool
	RequestLayout bool
}

// NewProbe returns a probe that wants size.
func NewProbe(width, height float64) *Probe {
	return &Probe{Want: graphics.Size{Width: width, Height: height}, Color: graphics.ColorBlack}
}

// LastConstraints returns the constraints of the latest layout call.
func (p *Probe) LastConstraints() layout.BoxConstraints {
	if len(p.Constraints) == 0 {
		return layout.BoxConstraints{}
	}
	return p.Constraints[len(p.Constraints)-1]
}

// LastEvent returns the most recent event, or nil.
func (p *Probe) LastEvent() event.Event {
	if len(p.Events) == 0 {
		return nil
	}
	return p.Events[len(p.Events)-1]
}

func (p *Probe) Layout(ctx *layout.LayoutCtx, bc layout.BoxConstraints, e *env.Env) graphics.Size {
	p.LayoutCount++
	p.Constraints = append(p.Constraints, bc)
	if p.Unclamped {
		return p.Want
	}
	return bc.Constrain(p.Want)
}

func (p *Probe) Paint(ctx *layout.PaintCtx, base *layout.BaseState, e *env.Env) {
	p.PaintCount++
	p.PaintOrigins = append(p.PaintOrigins, ctx.Origin())
	ctx.Canvas.DrawRect(graphics.RectFromOriginSize(graphics.Point{}, base.Size()), p.Color)
}

func (p *Probe) Event(ev event.Event, ctx *layout.EventCtx, e *env.Env) event.Action {
	p.Events = append(p.Events, ev)
	if p.HandleEvents {
		ctx.SetHandled()
	}
	if p.RequestLayout {
		ctx.RequestLayout()
	}
	return p.Action
}
