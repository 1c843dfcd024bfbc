package engine

import (
	"fmt"

	"github.com/lixenwraith/venn-deduction/component"
	"github.com/lixenwraith/venn-deduction/input"
)

// DragState is either Idle or Dragging(index)
// The zero value is Idle
type DragState struct {
	index  int
	active bool
}

// Idle is the state with no active drag
func Idle() DragState {
	return DragState{}
}

// Dragging is the state holding token index i
func Dragging(i int) DragState {
	return DragState{index: i, active: true}
}

// Index returns the dragged token index and whether a drag is active
func (d DragState) Index() (int, bool) {
	return d.index, d.active
}

// Active reports whether a drag is in progress
func (d DragState) Active() bool {
	return d.active
}

func (d DragState) String() string {
	if !d.active {
		return "idle"
	}
	return fmt.Sprintf("dragging(%d)", d.index)
}

// stepDrag advances the drag state machine by one input snapshot
func (s *Scene) stepDrag(in input.Snapshot) TickResult {
	i, dragging := s.drag.Index()

	switch {
	case in.Down && !dragging:
		return s.pickup(in)
	case in.Down && dragging:
		s.hold(i, in)
		return TickResult{Event: EventHold, Index: i}
	case !in.Down && dragging:
		return s.release(i)
	default:
		return TickResult{Event: EventNone}
	}
}

// pickup hit-tests the tray newest-first and starts a drag on the first hit
func (s *Scene) pickup(in input.Snapshot) TickResult {
	for i := len(s.Tokens) - 1; i >= 0; i-- {
		tok := &s.Tokens[i]
		if !tok.Contains(in.Pointer) {
			continue
		}
		tok.Verdict = component.VerdictUnset
		tok.Dragged = true
		tok.Center = in.Pointer
		s.drag = Dragging(i)
		return TickResult{Event: EventPickup, Index: i}
	}
	return TickResult{Event: EventNone}
}

// hold follows the pointer while the button stays down
func (s *Scene) hold(i int, in input.Snapshot) {
	s.token(i).Center = in.Pointer
	for _, slot := range s.Slots() {
		slot.Hover = slot.Contains(in.Pointer)
	}
}

// release evaluates the dropped token and returns to Idle
func (s *Scene) release(i int) TickResult {
	tok := s.token(i)
	out := Evaluate(&s.Left, &s.Right, tok.Center, tok.Target)

	tok.Verdict = out.Verdict
	if out.Snapped {
		tok.Center = out.Snap
	}
	tok.Dragged = false

	for _, slot := range s.Slots() {
		slot.Hover = false
	}
	s.drag = Idle()

	return TickResult{Event: EventRelease, Index: i, Outcome: out}
}

// token returns the token at i; an out-of-range index is a broken invariant
func (s *Scene) token(i int) *component.Token {
	if i < 0 || i >= len(s.Tokens) {
		panic(fmt.Sprintf("engine: drag index %d out of range for %d tokens", i, len(s.Tokens)))
	}
	return &s.Tokens[i]
}
