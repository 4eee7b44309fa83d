package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
	"github.com/go-drift/boxlayout/pkg/widgets"
)

func TestTap_Button(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 100})
	tester.PumpWidget(widgets.Center(widgets.NewTextButton("ok", "OK", layout.EdgeInsetsAll(4))))

	action, err := tester.Tap(ByType[*widgets.Button]())
	require.NoError(t, err)
	assert.Equal(t, event.Clicked{ID: "ok"}, action)
	assert.Equal(t, []event.Action{event.Clicked{ID: "ok"}}, tester.Actions())
}

func TestTap_NoMatch(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(NewProbe(10, 10))

	_, err := tester.Tap(ByType[*widgets.Button]())
	assert.Error(t, err)
}

func TestTapAt_Outside(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 100})
	tester.PumpWidget(widgets.Center(widgets.NewTextButton("ok", "OK", layout.EdgeInsetsAll(4))))

	action, err := tester.TapAt(graphics.Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Nil(t, action)
	assert.Empty(t, tester.Actions())
}

func TestDragFrom_ReleaseOutsideCancelsClick(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 100})
	tester.PumpWidget(widgets.Center(widgets.NewTextButton("ok", "OK", layout.EdgeInsetsAll(4))))

	center := tester.Find(ByType[*widgets.Button]()).GlobalRect().Center()
	action, err := tester.DragFrom(center, graphics.Point{X: 90, Y: 0})
	require.NoError(t, err)
	assert.Nil(t, action)
}

func TestSendEvent_LocalCoordinates(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 100})
	probe := NewProbe(50, 50)
	tester.PumpWidget(widgets.Center(widgets.UniformPadding(10, probe)))

	_, err := tester.SendPointerMove(graphics.Point{X: 40, Y: 40})
	require.NoError(t, err)

	// Padding box is 70x70 centered at (15,15); the probe sits 10 further in.
	assert.Equal(t, event.PointerMove{Pos: graphics.Point{X: 15, Y: 15}}, probe.LastEvent())
}

func TestSendKey(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	probe := NewProbe(10, 10)
	probe.Action = event.Custom{Name: "key"}
	tester.PumpWidget(probe)

	action, err := tester.SendKey("enter")
	require.NoError(t, err)
	assert.Equal(t, event.Custom{Name: "key"}, action)
	require.Len(t, probe.Events, 2)
	assert.Equal(t, event.Key{Name: "enter", Pressed: true}, probe.Events[0])
}

func TestGestures_NoWidget(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	_, err := tester.TapAt(graphics.Point{})
	assert.Error(t, err)
}
