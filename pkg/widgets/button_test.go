package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
	bltest "github.com/go-drift/boxlayout/pkg/testing"
	"github.com/go-drift/boxlayout/pkg/widgets"
)

func buttonColor(t *testing.T, tester *bltest.WidgetTester) any {
	t.Helper()
	for _, op := range tester.DisplayOps() {
		if op.Op == "drawRect" {
			return op.Params["color"]
		}
	}
	t.Fatal("no drawRect op")
	return nil
}

func pumpButton(t *testing.T) *bltest.WidgetTester {
	tester := bltest.NewWidgetTesterWithT(t)
	tester.SetSize(sz(200, 100))
	e := env.With(env.New(), widgets.ButtonColor, graphics.ColorRed)
	e = env.With(e, widgets.ButtonHotColor, graphics.ColorGreen)
	e = env.With(e, widgets.ButtonActiveColor, graphics.ColorBlue)
	tester.SetEnv(e)
	tester.PumpWidget(widgets.Center(widgets.NewTextButton("go", "Go", layout.EdgeInsetsAll(4))))
	return tester
}

func TestButton_SizeFollowsChild(t *testing.T) {
	tester := pumpButton(t)
	label := graphics.FontMeasurer{}.MeasureText("Go")
	assert.Equal(t, label.Add(8, 8), tester.Find(bltest.ByType[*widgets.Button]()).First().Size())
}

func TestButton_ClickCycle(t *testing.T) {
	tester := pumpButton(t)
	center := tester.Find(bltest.ByType[*widgets.Button]()).GlobalRect().Center()

	assert.Equal(t, "0xFFFF0000", buttonColor(t, tester))

	_, err := tester.SendPointerMove(center)
	require.NoError(t, err)
	assert.Equal(t, "0xFF00FF00", buttonColor(t, tester))

	action, err := tester.SendPointerDown(center)
	require.NoError(t, err)
	assert.Nil(t, action)
	assert.True(t, tester.Find(bltest.ByType[*widgets.Button]()).First().State().IsActive())
	assert.Equal(t, "0xFF0000FF", buttonColor(t, tester))

	action, err = tester.SendPointerUp(center)
	require.NoError(t, err)
	assert.Equal(t, event.Clicked{ID: "go"}, action)
	assert.False(t, tester.Find(bltest.ByType[*widgets.Button]()).First().State().IsActive())
}

func TestButton_PressOutsideIgnored(t *testing.T) {
	tester := pumpButton(t)

	action, err := tester.TapAt(graphics.Point{X: 2, Y: 2})
	require.NoError(t, err)
	assert.Nil(t, action)
}

func TestButton_SecondaryButtonIgnored(t *testing.T) {
	tester := pumpButton(t)
	center := tester.Find(bltest.ByType[*widgets.Button]()).GlobalRect().Center()

	tester.SendEvent(event.PointerDown{Pos: center, Button: event.ButtonSecondary})
	assert.False(t, tester.Find(bltest.ByType[*widgets.Button]()).First().State().IsActive())
}

func TestButton_ChildActionWins(t *testing.T) {
	probe := bltest.NewProbe(20, 20)
	probe.Action = event.Custom{Name: "inner"}
	tester := bltest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Center(widgets.NewButton("outer", probe)))

	action, err := tester.Tap(bltest.ByType[*widgets.Button]())
	require.NoError(t, err)
	assert.Equal(t, event.Custom{Name: "inner"}, action)
}
