package component

import (
	"github.com/lixenwraith/venn-deduction/attribute"
	"github.com/lixenwraith/venn-deduction/vmath"
)

// Token is a draggable guess carrying the target it displays
type Token struct {
	Center  vmath.Vec2
	Radius  float64
	Target  attribute.Target
	Dragged bool
	Verdict Verdict
}

// Contains reports whether p is strictly inside the token's circle
func (t *Token) Contains(p vmath.Vec2) bool {
	return vmath.CircleContains(t.Center, t.Radius, p)
}
