package testing

import (
	"sync"
	"testing"

	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/errors"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// WidgetTester drives layout, paint and event passes over a widget tree
// without a real surface. Paint goes to a serializing canvas and every
// error report raised while the tester is installed is captured.
type WidgetTester struct {
	root    *layout.Root
	size    graphics.Size
	env     *env.Env
	text    layout.TextMeasurer
	errors  *ErrorRecorder
	restore func()
	actions []event.Action
	ops     []DisplayOp
}

// NewWidgetTester creates a tester with the default surface size and
// installs an ErrorRecorder as the global error handler. Call Cleanup when
// done, or use NewWidgetTesterWithT instead.
func NewWidgetTester() *WidgetTester {
	t := &WidgetTester{
		size:   graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		text:   graphics.FontMeasurer{},
		errors: &ErrorRecorder{},
	}
	t.restore = errors.SetHandler(t.errors)
	return t
}

// NewWidgetTesterWithT creates a tester that cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t testing.TB) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the error handler that was active before the tester.
func (t *WidgetTester) Cleanup() {
	t.restore()
}

// SetSize sets the logical surface size. The root is laid out under tight
// constraints of this size on the next Pump.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.size = size
	if t.root != nil {
		t.root.MarkNeedsLayout()
	}
}

// SetEnv replaces the environment for the mounted tree and later mounts.
func (t *WidgetTester) SetEnv(e *env.Env) {
	t.env = e
	if t.root != nil {
		t.root.SetEnv(e)
	}
}

// SetTextMeasurer replaces the measurer used by subsequent mounts.
func (t *WidgetTester) SetTextMeasurer(m layout.TextMeasurer) {
	t.text = m
}

// PumpWidget mounts widget as a new root and runs one layout and paint pass.
func (t *WidgetTester) PumpWidget(widget layout.WidgetInner) {
	t.root = layout.NewRoot(widget, t.env, layout.WithTextMeasurer(t.text))
	t.actions = nil
	t.Pump()
}

// Pump runs a layout pass if one is pending and repaints.
func (t *WidgetTester) Pump() {
	if t.root == nil {
		return
	}
	t.root.Layout(layout.Tight(t.size))
	canvas := &serializingCanvas{size: t.size}
	t.root.Paint(canvas)
	t.ops = canvas.ops
}

// Root returns the mounted root, or nil.
func (t *WidgetTester) Root() *layout.Root {
	return t.root
}

// DisplayOps returns the canvas operations of the latest paint.
func (t *WidgetTester) DisplayOps() []DisplayOp {
	return t.ops
}

// Actions returns every non-nil action produced since the last mount.
func (t *WidgetTester) Actions() []event.Action {
	return t.actions
}

// Errors returns the recorder receiving error reports.
func (t *WidgetTester) Errors() *ErrorRecorder {
	return t.errors
}

// Find evaluates a finder against the mounted tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		root:   t.root.Widget(),
		nodes:  finder.Evaluate(t.root.Widget()),
		finder: finder,
	}
}

// SendEvent dispatches ev from the root, records the resulting action and
// pumps a frame so requested layout and paint take effect.
func (t *WidgetTester) SendEvent(ev event.Event) event.Action {
	if t.root == nil {
		return nil
	}
	action := t.root.Event(ev)
	if action != nil {
		t.actions = append(t.actions, action)
	}
	t.Pump()
	return action
}

// ErrorRecorder is an errors.ErrorHandler that keeps every report.
type ErrorRecorder struct {
	mu     sync.Mutex
	errs   []*errors.LayoutError
	panics []*errors.PanicError
}

func (r *ErrorRecorder) HandleError(err *errors.LayoutError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

// Errors returns the reported layout errors in order.
func (r *ErrorRecorder) Errors() []*errors.LayoutError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.LayoutError(nil), r.errs...)
}

// Panics returns the recovered panics in order.
func (r *ErrorRecorder) Panics() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.PanicError(nil), r.panics...)
}

// OfKind returns the reported layout errors of kind.
func (r *ErrorRecorder) OfKind(kind errors.ErrorKind) []*errors.LayoutError {
	var out []*errors.LayoutError
	for _, err := range r.Errors() {
		if err.Kind == kind {
			out = append(out, err)
		}
	}
	return out
}

// Reset drops everything recorded so far.
func (r *ErrorRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = nil
	r.panics = nil
}
