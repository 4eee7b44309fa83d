package layout

import "github.com/go-drift/boxlayout/pkg/graphics"

// Alignment is a point within a box, from (-1,-1) at the top-left corner
// to (1,1) at the bottom-right.
type Alignment struct {
	X, Y float64
}

var (
	AlignmentTopLeft      = Alignment{X: -1, Y: -1}
	AlignmentTopCenter    = Alignment{X: 0, Y: -1}
	AlignmentTopRight     = Alignment{X: 1, Y: -1}
	AlignmentCenterLeft   = Alignment{X: -1, Y: 0}
	AlignmentCenter       = Alignment{X: 0, Y: 0}
	AlignmentCenterRight  = Alignment{X: 1, Y: 0}
	AlignmentBottomLeft   = Alignment{X: -1, Y: 1}
	AlignmentBottomCenter = Alignment{X: 0, Y: 1}
	AlignmentBottomRight  = Alignment{X: 1, Y: 1}
)

// Within returns the origin of a box of size inner aligned inside outer.
// The result is negative on an axis where inner overflows outer.
func (a Alignment) Within(outer, inner graphics.Size) graphics.Point {
	return graphics.Point{
		X: (outer.Width - inner.Width) * (a.X + 1) / 2,
		Y: (outer.Height - inner.Height) * (a.Y + 1) / 2,
	}
}
