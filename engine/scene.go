package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/venn-deduction/component"
	"github.com/lixenwraith/venn-deduction/input"
	"github.com/lixenwraith/venn-deduction/puzzle"
)

// TickEvent names what the drag controller did during a tick
type TickEvent uint8

const (
	EventNone TickEvent = iota
	EventPickup
	EventHold
	EventRelease
)

// TickResult reports the drag transition of one tick
// Outcome is only meaningful for EventRelease
type TickResult struct {
	Event   TickEvent
	Index   int
	Outcome Outcome
}

// Tally counts tokens by verdict
type Tally struct {
	Match, Mismatch, Unset int
}

// Scene owns every entity of a running puzzle
// It is driven by a single goroutine, one Tick per input snapshot
type Scene struct {
	PuzzleID uuid.UUID
	Left     component.Region
	Right    component.Region

	// Tokens keeps creation order; hit-testing walks it newest-first
	Tokens []component.Token

	drag DragState
}

// NewScene builds a scene from a generated puzzle
func NewScene(p *puzzle.Puzzle) *Scene {
	s := &Scene{}
	s.Load(p)
	return s
}

// Load replaces all entities with a copy of p and drops any active drag
func (s *Scene) Load(p *puzzle.Puzzle) {
	s.PuzzleID = p.ID
	s.Left = copyRegion(p.Left)
	s.Right = copyRegion(p.Right)
	s.Tokens = append([]component.Token(nil), p.Tokens...)
	s.drag = Idle()
}

func copyRegion(r component.Region) component.Region {
	if r.Slot != nil {
		slot := *r.Slot
		r.Slot = &slot
	}
	return r
}

// Tick runs one interaction step: highlight recompute, then the drag controller
// The evaluator only runs on the tick that releases a drag
func (s *Scene) Tick(in input.Snapshot) TickResult {
	s.Left.Highlighted = s.Left.Contains(in.Pointer)
	s.Right.Highlighted = s.Right.Contains(in.Pointer)
	return s.stepDrag(in)
}

// Drag returns the current drag state
func (s *Scene) Drag() DragState {
	return s.drag
}

// Slots returns the answer slots present, left before right
func (s *Scene) Slots() []*component.AnswerSlot {
	slots := make([]*component.AnswerSlot, 0, 2)
	if s.Left.Slot != nil {
		slots = append(slots, s.Left.Slot)
	}
	if s.Right.Slot != nil {
		slots = append(slots, s.Right.Slot)
	}
	return slots
}

// Tally counts the current verdicts across the tray
func (s *Scene) Tally() Tally {
	var t Tally
	for i := range s.Tokens {
		switch s.Tokens[i].Verdict {
		case component.VerdictMatch:
			t.Match++
		case component.VerdictMismatch:
			t.Mismatch++
		default:
			t.Unset++
		}
	}
	return t
}
