package layout

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
)

type measureFunc func(string) graphics.Size

func (f measureFunc) MeasureText(text string) graphics.Size { return f(text) }

// textBox sizes itself from the pass's text measurer.
type textBox struct {
	box
	text string
}

func (b *textBox) Layout(ctx *LayoutCtx, bc BoxConstraints, e *env.Env) graphics.Size {
	return bc.Constrain(ctx.MeasureText(b.text))
}

func TestRoot_LayoutPlacesAtOrigin(t *testing.T) {
	r := NewRoot(&box{want: size(10, 20)}, nil)
	require.True(t, r.NeedsLayout())

	got := r.Layout(Loose(size(100, 100)))

	assert.Equal(t, size(10, 20), got)
	assert.Equal(t, size(10, 20), r.Size())
	rect, ok := r.Widget().LayoutRect()
	require.True(t, ok)
	assert.Equal(t, graphics.RectFromLTWH(0, 0, 10, 20), rect)
	assert.False(t, r.NeedsLayout())
	assert.Equal(t, uint64(1), r.Pass())
}

func TestRoot_LayoutSkipsWhenClean(t *testing.T) {
	leaf := &box{want: size(10, 20)}
	r := NewRoot(leaf, nil)
	r.Layout(Loose(size(100, 100)))
	r.Layout(Loose(size(100, 100)))

	assert.Equal(t, uint64(1), r.Pass())
	assert.Len(t, leaf.layouts, 1)

	r.Layout(Loose(size(50, 50)))
	assert.Equal(t, uint64(2), r.Pass())
	assert.Len(t, leaf.layouts, 2)
}

func TestRoot_MarkNeedsLayoutForcesEveryNode(t *testing.T) {
	leaf := &box{want: size(10, 20)}
	r := NewRoot(newInset(1, 1, leaf), nil)
	r.Layout(Loose(size(100, 100)))

	r.MarkNeedsLayout()
	r.Layout(Loose(size(100, 100)))

	assert.Len(t, leaf.layouts, 2)
}

func TestRoot_SetEnv(t *testing.T) {
	r := NewRoot(&box{want: size(1, 1)}, nil)
	r.Layout(Loose(size(10, 10)))

	e := env.New()
	r.SetEnv(e)
	assert.Same(t, e, r.Env())
	assert.True(t, r.NeedsLayout())
}

func TestRoot_TextMeasurer(t *testing.T) {
	leaf := &textBox{text: "abc"}
	r := NewRoot(leaf, nil, WithTextMeasurer(measureFunc(func(s string) graphics.Size {
		return size(float64(len(s))*10, 12)
	})))

	assert.Equal(t, size(30, 12), r.Layout(Loose(size(100, 100))))
}

func TestRoot_DefaultTextMeasurer(t *testing.T) {
	r := NewRoot(&textBox{text: "abc"}, nil)
	got := r.Layout(Loose(size(100, 100)))
	assert.Equal(t, graphics.FontMeasurer{}.MeasureText("abc"), got)
}

func TestRoot_PaintReplaysWhenClean(t *testing.T) {
	leaf := &box{want: size(10, 10)}
	r := NewRoot(newInset(5, 5, leaf), nil)
	r.Layout(Loose(size(100, 100)))

	first := &opLog{}
	r.Paint(first)
	second := &opLog{}
	r.Paint(second)

	assert.Len(t, leaf.origins, 1, "second paint replays the recorded list")
	assert.Equal(t, first.ops, second.ops)
	assert.False(t, r.NeedsPaint())
}

func TestRoot_EventRequestsRepaint(t *testing.T) {
	leaf := &box{want: size(10, 10)}
	r := NewRoot(newInset(5, 5, leaf), nil)
	r.Layout(Loose(size(100, 100)))
	r.Paint(&opLog{})

	r.Event(event.PointerMove{Pos: graphics.Point{X: 7, Y: 7}})
	assert.True(t, r.NeedsPaint())

	r.Paint(&opLog{})
	assert.Len(t, leaf.origins, 2)
}

func TestRoot_EventReturnsAction(t *testing.T) {
	leaf := &box{want: size(10, 10), action: event.Clicked{ID: "a"}}
	r := NewRoot(leaf, nil)
	r.Layout(Loose(size(100, 100)))

	assert.Equal(t, event.Clicked{ID: "a"}, r.Event(event.PointerDown{Pos: graphics.Point{X: 1, Y: 1}}))
}

func TestRoot_ResizeSchedulesLayout(t *testing.T) {
	r := NewRoot(&box{want: size(10, 10)}, nil)
	r.Layout(Loose(size(100, 100)))

	r.Event(event.Resize{Size: size(50, 50)})
	assert.True(t, r.NeedsLayout())
}

func TestRoot_LayoutRequestFromEvent(t *testing.T) {
	leaf := &box{want: size(10, 10), relayout: true}
	r := NewRoot(newInset(2, 2, leaf), nil)
	r.Layout(Loose(size(100, 100)))

	r.Event(event.Key{Name: "x", Pressed: true})
	require.True(t, r.NeedsLayout())

	r.Layout(Loose(size(100, 100)))
	assert.Len(t, leaf.layouts, 2)
}

type panicky struct{ box }

func (p *panicky) Layout(ctx *LayoutCtx, bc BoxConstraints, e *env.Env) graphics.Size {
	panic("boom")
}

func TestRoot_RecoversPanics(t *testing.T) {
	if debugAssertions {
		t.Skip("debug builds let panics through")
	}
	h := captureErrors(t)
	r := NewRoot(&panicky{}, nil)

	assert.NotPanics(t, func() { r.Layout(Loose(size(10, 10))) })
	require.Len(t, h.panics, 1)
	assert.Equal(t, "layout.Root.Layout", h.panics[0].Op)
	assert.Equal(t, "boom", h.panics[0].Value)
}

func TestRoot_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewRoot(newInset(1, 1, &box{want: size(3, 3)}), nil, WithLogger(logger))

	r.Layout(Loose(size(10, 10)))
	r.Paint(&opLog{})

	out := buf.String()
	assert.Contains(t, out, "msg=\"layout pass\"")
	assert.Contains(t, out, "widget=*layout.box")
	assert.Contains(t, out, "msg=\"paint pass\"")
}

func TestRoot_Walk(t *testing.T) {
	r := NewRoot(newInset(1, 1, &box{want: size(3, 3)}), nil)
	count := 0
	r.Walk(func(*WidgetBase, int) { count++ })
	assert.Equal(t, 2, count)
}
