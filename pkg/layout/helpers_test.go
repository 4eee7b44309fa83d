package layout

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/errors"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
)

type captureHandler struct {
	mu     sync.Mutex
	errs   []*errors.LayoutError
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.LayoutError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *captureHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

func (h *captureHandler) kinds() []errors.ErrorKind {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]errors.ErrorKind, len(h.errs))
	for i, err := range h.errs {
		out[i] = err.Kind
	}
	return out
}

func captureErrors(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	t.Cleanup(errors.SetHandler(h))
	return h
}

// expectViolation runs fn and checks the build's violation policy: a panic
// under the debug tag, a single report of kind otherwise.
func expectViolation(t *testing.T, h *captureHandler, kind errors.ErrorKind, fn func()) {
	t.Helper()
	if debugAssertions {
		assert.Panics(t, fn)
		return
	}
	assert.NotPanics(t, fn)
	assert.Equal(t, []errors.ErrorKind{kind}, h.kinds())
}

// box is a leaf that asks for a fixed size and records what it sees.
type box struct {
	want      graphics.Size
	unclamped bool
	layouts   []BoxConstraints
	events    []event.Event
	origins   []graphics.Point
	action    event.Action
	handle    bool
	relayout  bool
}

func (b *box) Layout(ctx *LayoutCtx, bc BoxConstraints, e *env.Env) graphics.Size {
	b.layouts = append(b.layouts, bc)
	if b.unclamped {
		return b.want
	}
	return bc.Constrain(b.want)
}

func (b *box) Paint(ctx *PaintCtx, base *BaseState, e *env.Env) {
	b.origins = append(b.origins, ctx.Origin())
	ctx.Canvas.DrawRect(graphics.RectFromOriginSize(graphics.Point{}, base.Size()), graphics.ColorBlack)
}

func (b *box) Event(ev event.Event, ctx *EventCtx, e *env.Env) event.Action {
	b.events = append(b.events, ev)
	if b.handle {
		ctx.SetHandled()
	}
	if b.relayout {
		ctx.RequestLayout()
	}
	return b.action
}

// inset places a single child at a fixed offset and adds that offset to
// its size, the smallest possible decorator.
type inset struct {
	offset graphics.Point
	child  *WidgetBase
	skip   bool // skip placing the child
	twice  bool // place the child twice
}

func (d *inset) VisitChildren(visitor func(*WidgetBase)) {
	visitor(d.child)
}

func (d *inset) Layout(ctx *LayoutCtx, bc BoxConstraints, e *env.Env) graphics.Size {
	size := d.child.Layout(ctx, bc.Shrink(d.offset.X, d.offset.Y), e)
	if !d.skip {
		d.child.SetLayoutRect(graphics.RectFromOriginSize(d.offset, size))
	}
	if d.twice {
		d.child.SetLayoutRect(graphics.RectFromOriginSize(d.offset, size))
	}
	return bc.Constrain(size.Add(d.offset.X, d.offset.Y))
}

func (d *inset) Paint(ctx *PaintCtx, base *BaseState, e *env.Env) {
	d.child.PaintWithOffset(ctx, e)
}

func (d *inset) Event(ev event.Event, ctx *EventCtx, e *env.Env) event.Action {
	return d.child.Event(ev, ctx, e)
}

func newInset(x, y float64, child WidgetInner) *inset {
	return &inset{offset: graphics.Point{X: x, Y: y}, child: NewWidgetBase(child)}
}

func size(w, h float64) graphics.Size {
	return graphics.Size{Width: w, Height: h}
}

// opLog records the canvas calls the core makes.
type opLog struct {
	ops []string
}

func (c *opLog) Save() { c.ops = append(c.ops, "save") }
func (c *opLog) Restore() { c.ops = append(c.ops, "restore") }
func (c *opLog) Translate(dx, dy float64) { c.ops = append(c.ops, fmtTranslate(dx, dy)) }
func (c *opLog) ClipRect(graphics.Rect) { c.ops = append(c.ops, "clip") }
func (c *opLog) DrawRect(graphics.Rect, graphics.Color) { c.ops = append(c.ops, "rect") }
func (c *opLog) DrawText(string, graphics.Point, graphics.Color) { c.ops = append(c.ops, "text") }

func fmtTranslate(dx, dy float64) string {
	return "translate(" + strconv.FormatFloat(dx, 'g', -1, 64) + "," + strconv.FormatFloat(dy, 'g', -1, 64) + ")"
}
