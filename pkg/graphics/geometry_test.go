package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint(t *testing.T) {
	p := Point{X: 1, Y: 2}
	assert.Equal(t, Point{X: 4, Y: 6}, p.Add(Point{X: 3, Y: 4}))
	assert.Equal(t, Point{X: -2, Y: -2}, p.Sub(Point{X: 3, Y: 4}))
	assert.Equal(t, Point{X: 0, Y: 5}, p.Translate(-1, 3))
}

func TestSize(t *testing.T) {
	s := Size{Width: 10, Height: 20}
	assert.False(t, s.IsEmpty())
	assert.True(t, Size{Width: 10}.IsEmpty())
	assert.Equal(t, Size{Width: 12, Height: 23}, s.Add(2, 3))
	assert.True(t, s.Contains(Point{X: 10, Y: 20}))
	assert.False(t, s.Contains(Point{X: -0.1, Y: 0}))
	assert.True(t, s.ApproxEqual(Size{Width: 10.00001, Height: 20}))
	assert.False(t, s.ApproxEqual(Size{Width: 10.1, Height: 20}))
}

func TestRect(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	assert.Equal(t, Rect{Left: 10, Top: 20, Right: 40, Bottom: 60}, r)
	assert.Equal(t, r, RectFromOriginSize(Point{X: 10, Y: 20}, Size{Width: 30, Height: 40}))
	assert.Equal(t, Point{X: 10, Y: 20}, r.Origin())
	assert.Equal(t, Size{Width: 30, Height: 40}, r.Size())
	assert.Equal(t, Point{X: 25, Y: 40}, r.Center())
	assert.True(t, r.Contains(Point{X: 10, Y: 20}))
	assert.False(t, r.Contains(Point{X: 40, Y: 30}))
	assert.Equal(t, RectFromLTWH(11, 22, 30, 40), r.Translate(1, 2))
}

func TestRect_IntersectUnion(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)

	assert.Equal(t, RectFromLTWH(5, 5, 5, 5), a.Intersect(b))
	assert.Equal(t, RectFromLTWH(0, 0, 15, 15), a.Union(b))
	assert.True(t, a.Intersect(RectFromLTWH(20, 20, 1, 1)).IsEmpty())
}
