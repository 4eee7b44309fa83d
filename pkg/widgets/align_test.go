package widgets_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
	bltest "github.com/go-drift/boxlayout/pkg/testing"
	"github.com/go-drift/boxlayout/pkg/widgets"
)

func TestCenter_LoosensAndCenters(t *testing.T) {
	probe := bltest.NewProbe(20, 10)
	center := widgets.Center(probe)
	r := layout.NewRoot(center, nil)

	got := r.Layout(layout.Tight(sz(100, 50)))

	assert.Equal(t, sz(100, 50), got)
	assert.Equal(t, layout.Loose(sz(100, 50)), probe.LastConstraints())
	var rect graphics.Rect
	center.VisitChildren(func(child *layout.WidgetBase) { rect, _ = child.LayoutRect() })
	assert.Equal(t, graphics.RectFromLTWH(40, 20, 20, 10), rect)
}

func TestAlign_BottomRight(t *testing.T) {
	tester := bltest.NewWidgetTesterWithT(t)
	tester.SetSize(sz(100, 50))
	tester.PumpWidget(widgets.NewAlign(layout.AlignmentBottomRight, bltest.NewProbe(20, 10)))

	assert.Equal(t, graphics.RectFromLTWH(80, 40, 20, 10), tester.Find(bltest.ByType[*bltest.Probe]()).GlobalRect())
}

func TestAlign_UnboundedShrinksToChild(t *testing.T) {
	r := layout.NewRoot(widgets.Center(bltest.NewProbe(20, 10)), nil)
	got := r.Layout(layout.BoxConstraints{Max: sz(100, math.Inf(1))})
	assert.Equal(t, sz(100, 10), got)
}

func TestAlign_SetAlignment(t *testing.T) {
	a := widgets.NewAlign(layout.AlignmentTopLeft, bltest.NewProbe(10, 10))
	r := layout.NewRoot(a, nil)
	r.Layout(layout.Tight(sz(50, 50)))

	a.SetAlignment(layout.AlignmentCenter)
	r.MarkNeedsLayout()
	r.Layout(layout.Tight(sz(50, 50)))

	assert.Equal(t, layout.AlignmentCenter, a.Alignment())
	var rect graphics.Rect
	a.VisitChildren(func(child *layout.WidgetBase) { rect, _ = child.LayoutRect() })
	assert.Equal(t, graphics.Point{X: 20, Y: 20}, rect.Origin())
}
