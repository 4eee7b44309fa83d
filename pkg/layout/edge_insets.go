package layout

import (
	"math"

	"github.com/go-drift/boxlayout/pkg/graphics"
)

// EdgeInsets holds an inset magnitude for each side of a box.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// EdgeInsetsAll returns insets with value on every side.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric returns insets with horizontal on left/right and
// vertical on top/bottom.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly returns insets with each side given explicitly.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// TopLeft returns the offset of the inner box.
func (e EdgeInsets) TopLeft() graphics.Point {
	return graphics.Point{X: e.Left, Y: e.Top}
}

// NonNegative returns a copy with negative sides clamped to zero.
func (e EdgeInsets) NonNegative() EdgeInsets {
	return EdgeInsets{
		Left:   math.Max(e.Left, 0),
		Top:    math.Max(e.Top, 0),
		Right:  math.Max(e.Right, 0),
		Bottom: math.Max(e.Bottom, 0),
	}
}
