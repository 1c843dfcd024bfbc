package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircleContainsStrict(t *testing.T) {
	center := V2(100, 100)
	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", V2(100, 100), true},
		{"just inside", V2(129.999, 100), true},
		{"on boundary x", V2(130, 100), false},
		{"on boundary y", V2(100, 70), false},
		{"on boundary diagonal 3-4-5", V2(118, 124), false},
		{"outside", V2(131, 100), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CircleContains(center, 30, tt.p))
		})
	}
}

func TestRectContainsStrict(t *testing.T) {
	center := V2(50, 50)
	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", V2(50, 50), true},
		{"left edge", V2(40, 50), false},
		{"right edge", V2(60, 50), false},
		{"top edge", V2(50, 45), false},
		{"bottom edge", V2(50, 55), false},
		{"corner", V2(60, 55), false},
		{"just inside corner", V2(59.9, 54.9), true},
		{"outside", V2(70, 50), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RectContains(center, 20, 10, tt.p))
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(800, 600, 80, 30)
	assert.Equal(t, V2(10, 20), v.CellSize())

	col, row := v.ToCell(v.CellCenter(12, 7))
	assert.Equal(t, 12, col)
	assert.Equal(t, 7, row)

	col, row = v.ToCell(V2(-5, 9999))
	assert.Equal(t, 0, col)
	assert.Equal(t, 29, row)
}

func TestViewportClampsEmptyGrid(t *testing.T) {
	v := NewViewport(800, 600, 0, -3)
	assert.Equal(t, 1, v.Cols)
	assert.Equal(t, 1, v.Rows)
}
