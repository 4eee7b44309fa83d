package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

// Axis represents the layout direction.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// CrossAxisAlignment controls how children are positioned along the cross axis
// (vertical for a row, horizontal for a column).
type CrossAxisAlignment int

const (
	// CrossAxisAlignmentStart places children at the start of the cross axis.
	CrossAxisAlignmentStart CrossAxisAlignment = iota
	// CrossAxisAlignmentEnd places children at the end of the cross axis.
	CrossAxisAlignmentEnd
	// CrossAxisAlignmentCenter centers children along the cross axis.
	CrossAxisAlignmentCenter
	// CrossAxisAlignmentStretch gives children a tight cross-axis constraint.
	CrossAxisAlignmentStretch
)

// String returns a human-readable representation of the cross axis alignment.
func (a CrossAxisAlignment) String() string {
	switch a {
	case CrossAxisAlignmentStart:
		return "start"
	case CrossAxisAlignmentEnd:
		return "end"
	case CrossAxisAlignmentCenter:
		return "center"
	case CrossAxisAlignmentStretch:
		return "stretch"
	default:
		return fmt.Sprintf("CrossAxisAlignment(%d)", int(a))
	}
}

// Flex lays out children in a single run along one axis.
//
// Children are laid out in order. Each one receives loose cross-axis
// constraints (tight when stretching) and whatever main-axis space the
// previous children and the spacing left over. Children do not wrap; a run
// longer than the maximum is clipped by the parent, not by Flex.
//
// Events are offered to children in order until one marks the event handled.
// The first non-nil Action wins.
//
//	widgets.Row(label, widgets.HSpace(8), button)
//	widgets.Column(title, body).WithSpacing(4)
type Flex struct {
	Direction          Axis
	CrossAxisAlignment CrossAxisAlignment
	Spacing            float64

	children []*layout.WidgetBase
}

// NewFlex returns a flex container along direction.
func NewFlex(direction Axis, children ...layout.WidgetInner) *Flex {
	f := &Flex{Direction: direction}
	for _, child := range children {
		f.Add(child)
	}
	return f
}

// Row returns a horizontal flex container.
func Row(children ...layout.WidgetInner) *Flex {
	return NewFlex(AxisHorizontal, children...)
}

// Column returns a vertical flex container.
func Column(children ...layout.WidgetInner) *Flex {
	return NewFlex(AxisVertical, children...)
}

// WithSpacing sets the gap between adjacent children.
func (f *Flex) WithSpacing(spacing float64) *Flex {
	f.Spacing = math.Max(spacing, 0)
	return f
}

// WithCrossAxisAlignment sets the cross-axis placement of children.
func (f *Flex) WithCrossAxisAlignment(a CrossAxisAlignment) *Flex {
	f.CrossAxisAlignment = a
	return f
}

// Add appends child. The owner must schedule a layout pass afterwards.
func (f *Flex) Add(child layout.WidgetInner) {
	if child == nil {
		return
	}
	f.children = append(f.children, layout.NewWidgetBase(child))
}

// Len returns the number of children.
func (f *Flex) Len() int {
	return len(f.children)
}

func (f *Flex) VisitChildren(visitor func(*layout.WidgetBase)) {
	for _, child := range f.children {
		visitor(child)
	}
}

func (f *Flex) main(size graphics.Size) float64 {
	if f.Direction == AxisHorizontal {
		return size.Width
	}
	return size.Height
}

func (f *Flex) cross(size graphics.Size) float64 {
	if f.Direction == AxisHorizontal {
		return size.Height
	}
	return size.Width
}

func (f *Flex) makeSize(main, cross float64) graphics.Size {
	if f.Direction == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func (f *Flex) makePoint(main, cross float64) graphics.Point {
	if f.Direction == AxisHorizontal {
		return graphics.Point{X: main, Y: cross}
	}
	return graphics.Point{X: cross, Y: main}
}

func (f *Flex) childConstraints(bc layout.BoxConstraints, remaining float64) layout.BoxConstraints {
	maxCross := f.cross(bc.Max)
	minCross := 0.0
	if f.CrossAxisAlignment == CrossAxisAlignmentStretch && !math.IsInf(maxCross, 1) {
		minCross = maxCross
	}
	return layout.BoxConstraints{
		Min: f.makeSize(0, minCross),
		Max: f.makeSize(remaining, maxCross),
	}
}

func (f *Flex) Layout(ctx *layout.LayoutCtx, bc layout.BoxConstraints, e *env.Env) graphics.Size {
	sizes := make([]graphics.Size, len(f.children))
	maxMain := f.main(bc.Max)
	used := 0.0
	crossSize := 0.0
	for i, child := range f.children {
		if i > 0 {
			used += f.Spacing
		}
		remaining := math.Max(maxMain-used, 0)
		sizes[i] = child.Layout(ctx, f.childConstraints(bc, remaining), e)
		used += f.main(sizes[i])
		crossSize = math.Max(crossSize, f.cross(sizes[i]))
	}

	size := bc.Constrain(f.makeSize(used, crossSize))

	cursor := 0.0
	for i, child := range f.children {
		crossOffset := 0.0
		free := f.cross(size) - f.cross(sizes[i])
		if free > 0 {
			switch f.CrossAxisAlignment {
			case CrossAxisAlignmentEnd:
				crossOffset = free
			case CrossAxisAlignmentCenter:
				crossOffset = free * 0.5
			}
		}
		child.SetLayoutRect(graphics.RectFromOriginSize(f.makePoint(cursor, crossOffset), sizes[i]))
		cursor += f.main(sizes[i]) + f.Spacing
	}
	return size
}

func (f *Flex) Paint(ctx *layout.PaintCtx, base *layout.BaseState, e *env.Env) {
	for _, child := range f.children {
		child.PaintWithOffset(ctx, e)
	}
}

func (f *Flex) Event(ev event.Event, ctx *layout.EventCtx, e *env.Env) event.Action {
	var result event.Action
	for _, child := range f.children {
		if ctx.IsHandled() {
			break
		}
		if action := child.Event(ev, ctx, e); action != nil && result == nil {
			result = action
		}
	}
	return result
}
