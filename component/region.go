package component

import (
	"github.com/lixenwraith/venn-deduction/attribute"
	"github.com/lixenwraith/venn-deduction/vmath"
)

// Region is one circular set of the diagram, bound to a hidden target
type Region struct {
	Center vmath.Vec2
	Radius float64
	Target attribute.Target

	// Highlighted is true while the pointer is inside, recomputed every tick
	Highlighted bool

	// Slot is the answer slot owned by this region, nil when slots are disabled
	Slot *AnswerSlot
}

// Contains reports whether p is strictly inside the region
func (r *Region) Contains(p vmath.Vec2) bool {
	return vmath.CircleContains(r.Center, r.Radius, p)
}

// AnswerSlot is a rectangular alternate acceptance zone bound to one region
// Its target is sampled independently of the owning region's target
type AnswerSlot struct {
	Center        vmath.Vec2
	Width, Height float64
	Target        attribute.Target

	// Hover is true only while a drag is active and the pointer is inside
	Hover bool
}

// Contains reports whether p is strictly inside the slot
func (s *AnswerSlot) Contains(p vmath.Vec2) bool {
	return vmath.RectContains(s.Center, s.Width, s.Height, p)
}
