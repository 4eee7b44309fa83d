package layout

import (
	"log/slog"

	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/errors"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
)

// Root owns the top of a widget tree and runs its passes.
//
// The typical frame sequence is:
//  1. Event - deliver input, collecting layout and paint requests
//  2. Layout - lay out from the root if anything requested it
//  3. Paint - paint the tree, or replay the previous frame if nothing changed
//
// Passes run synchronously on the caller's goroutine and never overlap. A
// Root is not safe for concurrent use.
type Root struct {
	child  *WidgetBase
	env    *env.Env
	text   TextMeasurer
	logger *slog.Logger

	pass        uint64
	constraints BoxConstraints
	size        graphics.Size
	laidOut     bool
	needsLayout bool
	forceLayout bool
	needsPaint  bool

	recorder graphics.PictureRecorder
	picture  *graphics.DisplayList
}

// Option configures a Root.
type Option func(*Root)

// WithTextMeasurer sets the text measurer offered to leaf widgets.
func WithTextMeasurer(m TextMeasurer) Option {
	return func(r *Root) { r.text = m }
}

// WithLogger enables per-pass and per-node debug records.
func WithLogger(l *slog.Logger) Option {
	return func(r *Root) { r.logger = l }
}

// NewRoot takes ownership of widget and prepares it for its first pass.
// A nil env is treated as empty.
func NewRoot(widget WidgetInner, e *env.Env, opts ...Option) *Root {
	r := &Root{
		child:       NewWidgetBase(widget),
		env:         e,
		needsLayout: true,
		needsPaint:  true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Widget returns the root node.
func (r *Root) Widget() *WidgetBase {
	return r.child
}

// Env returns the environment passed to every call.
func (r *Root) Env() *env.Env {
	return r.env
}

// SetEnv replaces the environment and schedules a full relayout.
func (r *Root) SetEnv(e *env.Env) {
	r.env = e
	r.MarkNeedsLayout()
}

// MarkNeedsLayout forces the next layout pass to visit every node, for
// changes made to widgets outside an event dispatch.
func (r *Root) MarkNeedsLayout() {
	r.needsLayout = true
	r.forceLayout = true
	r.needsPaint = true
}

// NeedsLayout reports whether a layout pass is pending.
func (r *Root) NeedsLayout() bool {
	return r.needsLayout
}

// NeedsPaint reports whether the tree changed since the last paint.
func (r *Root) NeedsPaint() bool {
	return r.needsPaint
}

// Size returns the root size from the latest layout pass.
func (r *Root) Size() graphics.Size {
	return r.size
}

// Pass returns the number of layout passes run so far.
func (r *Root) Pass() uint64 {
	return r.pass
}

// Layout runs a layout pass under bc and places the root at (0,0).
// It returns the previous size when nothing changed and bc is unchanged.
func (r *Root) Layout(bc BoxConstraints) (size graphics.Size) {
	if !debugAssertions {
		defer errors.Recover("layout.Root.Layout")
	}
	if r.laidOut && !r.needsLayout && bc == r.constraints {
		return r.size
	}

	r.pass++
	ctx := &LayoutCtx{
		Text:   r.text,
		Logger: r.logger,
		pass:   r.pass,
		force:  r.forceLayout,
	}
	size = r.child.Layout(ctx, bc, r.env)
	r.child.SetLayoutRect(graphics.RectFromOriginSize(graphics.Point{}, size))

	if r.logger != nil {
		r.logger.Debug("layout pass",
			slog.Uint64("pass", r.pass),
			slog.String("constraints", bc.String()),
			slog.Float64("width", size.Width),
			slog.Float64("height", size.Height),
		)
	}

	r.constraints = bc
	r.size = size
	r.laidOut = true
	r.needsLayout = false
	r.forceLayout = false
	r.needsPaint = true
	return size
}

// Paint paints the tree onto canvas.
//
// Painting records into a display list first. When nothing has requested
// paint since the last pass, the recorded list is replayed without
// visiting the tree.
func (r *Root) Paint(canvas graphics.Canvas) {
	if !debugAssertions {
		defer errors.Recover("layout.Root.Paint")
	}
	if r.picture != nil && !r.needsPaint {
		r.picture.Paint(canvas)
		return
	}

	rec := r.recorder.BeginRecording(r.size)
	r.child.PaintWithOffset(NewPaintCtx(rec), r.env)
	r.picture = r.recorder.EndRecording()
	r.needsPaint = false

	if r.logger != nil {
		r.logger.Debug("paint pass", slog.Int("ops", r.picture.Len()))
	}
	r.picture.Paint(canvas)
}

// Event dispatches ev from the root and returns the resulting Action.
// Layout and paint requests raised by the tree are recorded on the Root.
func (r *Root) Event(ev event.Event) (action event.Action) {
	if !debugAssertions {
		defer errors.Recover("layout.Root.Event")
	}
	if _, ok := ev.(event.Resize); ok {
		r.needsLayout = true
	}

	ctx := NewEventCtx()
	action = r.child.Event(ev, ctx, r.env)
	if ctx.layoutRequest {
		r.needsLayout = true
	}
	if ctx.paintRequest {
		r.needsPaint = true
	}

	if r.logger != nil && action != nil {
		r.logger.Debug("action", slog.String("action", action.String()))
	}
	return action
}

// Walk visits every node depth-first, parents before children.
func (r *Root) Walk(fn func(node *WidgetBase, depth int)) {
	r.child.Walk(fn)
}
