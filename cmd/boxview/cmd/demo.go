package cmd

import (
	"fmt"

	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/layout"
	"github.com/go-drift/boxlayout/pkg/widgets"
)

// metrics scales the demo between cell and pixel surfaces.
type metrics struct {
	gap    float64
	button layout.EdgeInsets
}

var (
	cellMetrics  = metrics{gap: 1, button: layout.EdgeInsetsSymmetric(1, 0)}
	pixelMetrics = metrics{gap: 8, button: layout.EdgeInsetsSymmetric(8, 4)}
)

// demo is a counter: three buttons, a value label and a status line
// echoing the last action.
type demo struct {
	count   int
	counter *widgets.Label
	status  *widgets.Label
	tree    layout.WidgetInner
}

func newDemo(title string, m metrics) *demo {
	d := &demo{
		counter: widgets.NewLabel(""),
		status:  widgets.NewLabel("click a button"),
	}
	d.setCount(0)

	buttons := widgets.Row(
		widgets.NewTextButton("dec", "-", m.button),
		widgets.NewTextButton("inc", "+", m.button),
		widgets.NewTextButton("reset", "reset", m.button),
	).WithSpacing(m.gap)

	d.tree = widgets.Center(widgets.UniformPadding(m.gap, widgets.Column(
		widgets.NewLabel(title),
		d.counter,
		buttons,
		d.status,
	).WithSpacing(m.gap)))
	return d
}

func (d *demo) setCount(n int) {
	d.count = n
	d.counter.SetText(fmt.Sprintf("count: %d", n))
}

// handle applies action to the demo state. It reports whether any widget
// changed outside the event pass and the tree must be relaid out.
func (d *demo) handle(action event.Action) bool {
	if action == nil {
		return false
	}
	if clicked, ok := action.(event.Clicked); ok {
		switch clicked.ID {
		case "inc":
			d.setCount(d.count + 1)
		case "dec":
			d.setCount(d.count - 1)
		case "reset":
			d.setCount(0)
		}
	}
	d.status.SetText(action.String())
	return true
}
