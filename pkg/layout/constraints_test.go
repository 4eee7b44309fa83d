package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/boxlayout/pkg/errors"
)

func TestNewBoxConstraints(t *testing.T) {
	bc := NewBoxConstraints(size(1, 2), size(3, 4))
	assert.Equal(t, BoxConstraints{Min: size(1, 2), Max: size(3, 4)}, bc)
}

func TestNewBoxConstraints_MinAboveMax(t *testing.T) {
	h := captureErrors(t)
	var bc BoxConstraints
	expectViolation(t, h, errors.KindConstraint, func() {
		bc = NewBoxConstraints(size(10, 2), size(5, 4))
	})
	if !debugAssertions {
		assert.Equal(t, BoxConstraints{Min: size(5, 2), Max: size(5, 4)}, bc)
	}
}

func TestTightLooseUnbounded(t *testing.T) {
	tight := Tight(size(10, 20))
	assert.True(t, tight.IsTight())
	assert.Equal(t, size(10, 20), tight.Constrain(size(0, 100)))

	loose := Loose(size(10, 20))
	assert.False(t, loose.IsTight())
	assert.Equal(t, size(0, 0), loose.Min)
	assert.Equal(t, loose, tight.Loosen())

	unbounded := Unbounded()
	assert.False(t, unbounded.IsBounded())
	assert.True(t, loose.IsBounded())
	assert.Equal(t, size(1e9, 3), unbounded.Constrain(size(1e9, 3)))
}

func TestConstrain(t *testing.T) {
	bc := BoxConstraints{Min: size(10, 10), Max: size(20, 20)}
	assert.Equal(t, size(10, 20), bc.Constrain(size(5, 25)))
	assert.Equal(t, size(15, 15), bc.Constrain(size(15, 15)))
}

func TestSatisfies(t *testing.T) {
	bc := BoxConstraints{Min: size(10, 10), Max: size(20, 20)}
	assert.True(t, bc.Satisfies(size(10, 20)))
	assert.True(t, bc.Satisfies(size(20+1e-12, 10)))
	assert.False(t, bc.Satisfies(size(9, 15)))
	assert.False(t, bc.Satisfies(size(15, 21)))
}

func TestShrink(t *testing.T) {
	tests := []struct {
		name string
		bc   BoxConstraints
		hv   [2]float64
		want BoxConstraints
	}{
		{
			name: "loose",
			bc:   Loose(size(100, 100)),
			hv:   [2]float64{20, 20},
			want: BoxConstraints{Max: size(80, 80)},
		},
		{
			name: "tight",
			bc:   Tight(size(100, 50)),
			hv:   [2]float64{10, 20},
			want: Tight(size(90, 30)),
		},
		{
			name: "min clamps independently",
			bc:   BoxConstraints{Min: size(5, 5), Max: size(100, 100)},
			hv:   [2]float64{20, 20},
			want: BoxConstraints{Max: size(80, 80)},
		},
		{
			name: "inset exceeds max",
			bc:   Loose(size(5, 5)),
			hv:   [2]float64{20, 20},
			want: BoxConstraints{},
		},
		{
			name: "unbounded stays unbounded",
			bc:   Unbounded(),
			hv:   [2]float64{20, 20},
			want: Unbounded(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.bc.Shrink(tt.hv[0], tt.hv[1])
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got.Min.Width, got.Max.Width)
			assert.LessOrEqual(t, got.Min.Height, got.Max.Height)
		})
	}
}

func TestDeflate(t *testing.T) {
	bc := Loose(size(100, 100)).Deflate(EdgeInsetsOnly(1, 2, 3, 4))
	assert.Equal(t, BoxConstraints{Max: size(96, 94)}, bc)
}

func TestBoxConstraintsString(t *testing.T) {
	assert.Equal(t, "BoxConstraints(0x0 .. 10x+Inf)", BoxConstraints{Max: size(10, math.Inf(1))}.String())
}

func TestEdgeInsets(t *testing.T) {
	e := EdgeInsetsOnly(1, 2, 3, 4)
	assert.Equal(t, 4.0, e.Horizontal())
	assert.Equal(t, 6.0, e.Vertical())
	assert.Equal(t, EdgeInsets{Left: 3, Top: 4, Right: 3, Bottom: 4}, EdgeInsetsSymmetric(3, 4))
	assert.Equal(t, EdgeInsets{Left: 0, Top: 2, Right: 0, Bottom: 0}, EdgeInsetsOnly(-1, 2, -3, -4).NonNegative())
	assert.Equal(t, 1.0, e.TopLeft().X)
	assert.Equal(t, 2.0, e.TopLeft().Y)
}

func TestAlignmentWithin(t *testing.T) {
	outer, inner := size(100, 50), size(20, 10)
	assert.Equal(t, 0.0, AlignmentTopLeft.Within(outer, inner).X)
	assert.Equal(t, 40.0, AlignmentCenter.Within(outer, inner).X)
	assert.Equal(t, 20.0, AlignmentCenter.Within(outer, inner).Y)
	assert.Equal(t, 80.0, AlignmentBottomRight.Within(outer, inner).X)
	assert.Equal(t, 40.0, AlignmentBottomRight.Within(outer, inner).Y)
	assert.Equal(t, -10.0, AlignmentCenter.Within(size(0, 0), inner).X)
}
