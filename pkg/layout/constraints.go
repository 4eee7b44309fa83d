package layout

import (
	"fmt"
	"math"

	"github.com/go-drift/boxlayout/pkg/errors"
	"github.com/go-drift/boxlayout/pkg/graphics"
)

// sizeEpsilon absorbs float rounding when checking a size against constraints.
const sizeEpsilon = 1e-9

// BoxConstraints is the range of sizes a parent accepts from a child.
//
// Min never exceeds Max on either axis. Max may be +Inf for an unbounded
// axis. When Min equals Max the constraints are tight and the child's size
// is forced.
type BoxConstraints struct {
	Min graphics.Size
	Max graphics.Size
}

// NewBoxConstraints returns constraints spanning min to max.
//
// min must not exceed max on either axis. Breaking that precondition is a
// programming error: it panics in debug builds and is otherwise reported
// and repaired by lowering min to max.
func NewBoxConstraints(min, max graphics.Size) BoxConstraints {
	if min.Width > max.Width || min.Height > max.Height {
		violation("layout.NewBoxConstraints", errors.KindConstraint, "",
			fmt.Errorf("min %v exceeds max %v", min, max))
		min.Width = math.Min(min.Width, max.Width)
		min.Height = math.Min(min.Height, max.Height)
	}
	return BoxConstraints{Min: min, Max: max}
}

// Tight returns constraints that only accept size.
func Tight(size graphics.Size) BoxConstraints {
	return BoxConstraints{Min: size, Max: size}
}

// Loose returns constraints accepting anything from zero up to size.
func Loose(size graphics.Size) BoxConstraints {
	return BoxConstraints{Max: size}
}

// Unbounded returns constraints with no upper limit on either axis.
func Unbounded() BoxConstraints {
	return BoxConstraints{Max: graphics.Size{Width: math.Inf(1), Height: math.Inf(1)}}
}

// IsTight reports whether the constraints force a single size.
func (c BoxConstraints) IsTight() bool {
	return c.Min == c.Max
}

// IsBounded reports whether both axes have a finite maximum.
func (c BoxConstraints) IsBounded() bool {
	return !math.IsInf(c.Max.Width, 1) && !math.IsInf(c.Max.Height, 1)
}

// Loosen returns the constraints with the minimum removed.
func (c BoxConstraints) Loosen() BoxConstraints {
	return BoxConstraints{Max: c.Max}
}

// Constrain clamps size into the constraints on each axis.
func (c BoxConstraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.Min.Width, c.Max.Width),
		Height: clamp(size.Height, c.Min.Height, c.Max.Height),
	}
}

// Satisfies reports whether min <= size <= max component-wise.
func (c BoxConstraints) Satisfies(size graphics.Size) bool {
	return size.Width >= c.Min.Width-sizeEpsilon && size.Width <= c.Max.Width+sizeEpsilon &&
		size.Height >= c.Min.Height-sizeEpsilon && size.Height <= c.Max.Height+sizeEpsilon
}

// Shrink subtracts a fixed inset from both bounds of each axis.
// Every bound is clamped at zero on its own, so the result never carries a
// negative size even when the inset exceeds the available space.
func (c BoxConstraints) Shrink(horizontal, vertical float64) BoxConstraints {
	return BoxConstraints{
		Min: graphics.Size{
			Width:  math.Max(c.Min.Width-horizontal, 0),
			Height: math.Max(c.Min.Height-vertical, 0),
		},
		Max: graphics.Size{
			Width:  math.Max(c.Max.Width-horizontal, 0),
			Height: math.Max(c.Max.Height-vertical, 0),
		},
	}
}

// Deflate shrinks the constraints by the total insets on each axis.
func (c BoxConstraints) Deflate(insets EdgeInsets) BoxConstraints {
	return c.Shrink(insets.Horizontal(), insets.Vertical())
}

func (c BoxConstraints) String() string {
	return fmt.Sprintf("BoxConstraints(%gx%g .. %gx%g)", c.Min.Width, c.Min.Height, c.Max.Width, c.Max.Height)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
