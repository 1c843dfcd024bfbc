package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainsAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Shapes {
		seen[s.String()] = true
	}
	for _, c := range Colors {
		seen[c.String()] = true
	}
	for _, z := range Sizes {
		seen[z.String()] = true
	}
	assert.Len(t, seen, 3*Cardinality, "every attribute value needs a unique name")
}

func TestTargetEquality(t *testing.T) {
	a := Target{Shape: ShapeCircle, Color: ColorBlue, Size: SizeSmall}
	b := Target{Shape: ShapeCircle, Color: ColorBlue, Size: SizeSmall}
	c := Target{Shape: ShapeCircle, Color: ColorBlue, Size: SizeLarge}

	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.False(t, a == c)
}

func TestStringFallback(t *testing.T) {
	assert.Equal(t, "shape(9)", Shape(9).String())
	assert.Equal(t, "color(9)", Color(9).String())
	assert.Equal(t, "size(9)", Size(9).String())
	assert.Equal(t, "small purple triangle", Target{ShapeTriangle, ColorPurple, SizeSmall}.String())
}
