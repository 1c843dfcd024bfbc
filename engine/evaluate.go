package engine

import (
	"github.com/lixenwraith/venn-deduction/attribute"
	"github.com/lixenwraith/venn-deduction/component"
	"github.com/lixenwraith/venn-deduction/vmath"
)

// Zone identifies which release case the evaluator applied
type Zone uint8

const (
	// ZoneNone covers outside everything and inside both slots
	ZoneNone Zone = iota
	ZoneBoth
	ZoneLeft
	ZoneRight
	ZoneLeftSlot
	ZoneRightSlot
)

func (z Zone) String() string {
	switch z {
	case ZoneBoth:
		return "both"
	case ZoneLeft:
		return "left"
	case ZoneRight:
		return "right"
	case ZoneLeftSlot:
		return "left-slot"
	case ZoneRightSlot:
		return "right-slot"
	default:
		return "none"
	}
}

// Outcome is the result of classifying a released token
type Outcome struct {
	Zone    Zone
	Verdict component.Verdict

	// Snapped is set when the token locks into a slot; Snap holds the slot center
	Snapped bool
	Snap    vmath.Vec2
}

// Evaluate classifies a release at p for a token carrying t
// Region membership is checked before slot membership
func Evaluate(left, right *component.Region, p vmath.Vec2, t attribute.Target) Outcome {
	inLeft := left.Contains(p)
	inRight := right.Contains(p)

	switch {
	case inLeft && inRight:
		return Outcome{
			Zone:    ZoneBoth,
			Verdict: component.VerdictOf(RegionMatches(left, t) && RegionMatches(right, t)),
		}
	case inLeft:
		return Outcome{Zone: ZoneLeft, Verdict: component.VerdictOf(RegionMatches(left, t))}
	case inRight:
		return Outcome{Zone: ZoneRight, Verdict: component.VerdictOf(RegionMatches(right, t))}
	}

	inLeftSlot := left.Slot != nil && left.Slot.Contains(p)
	inRightSlot := right.Slot != nil && right.Slot.Contains(p)

	switch {
	case inLeftSlot && !inRightSlot:
		return slotOutcome(ZoneLeftSlot, left.Slot, t)
	case inRightSlot && !inLeftSlot:
		return slotOutcome(ZoneRightSlot, right.Slot, t)
	default:
		return Outcome{Zone: ZoneNone, Verdict: component.VerdictUnset}
	}
}

func slotOutcome(zone Zone, slot *component.AnswerSlot, t attribute.Target) Outcome {
	return Outcome{
		Zone:    zone,
		Verdict: component.VerdictOf(SlotMatches(slot, t)),
		Snapped: true,
		Snap:    slot.Center,
	}
}
