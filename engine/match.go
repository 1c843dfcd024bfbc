package engine

import (
	"github.com/lixenwraith/venn-deduction/attribute"
	"github.com/lixenwraith/venn-deduction/component"
)

// accepts is the shared acceptance rule: shape OR color agrees, size is ignored
func accepts(hidden, t attribute.Target) bool {
	return hidden.Shape == t.Shape || hidden.Color == t.Color
}

// RegionMatches reports whether the region's hidden target accepts t
func RegionMatches(r *component.Region, t attribute.Target) bool {
	return accepts(r.Target, t)
}

// SlotMatches reports whether the slot's own hidden target accepts t
func SlotMatches(s *component.AnswerSlot, t attribute.Target) bool {
	return accepts(s.Target, t)
}
