// Package input coalesces raw terminal events into per-tick pointer snapshots
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/venn-deduction/vmath"
)

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// Snapshot is the normalized pointer state delivered once per tick
type Snapshot struct {
	Pointer vmath.Vec2
	Down    bool
}

// Machine folds tcell events into the latest pointer state and decodes key intents
// Mouse events never produce intents; they only update the coalesced snapshot
type Machine struct {
	viewport vmath.Viewport
	pointer  vmath.Vec2
	down     bool
}

// NewMachine creates a machine mapping cells through viewport
func NewMachine(viewport vmath.Viewport) *Machine {
	return &Machine{viewport: viewport}
}

// SetViewport updates the cell to world mapping after a resize
func (m *Machine) SetViewport(viewport vmath.Viewport) {
	m.viewport = viewport
}

// Snapshot returns the coalesced pointer state
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{Pointer: m.pointer, Down: m.down}
}

// Process consumes one event, returning an intent or nil
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		m.processMouse(ev)
		return nil
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, Width: w, Height: h}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	m.pointer = m.viewport.CellCenter(col, row)

	// Wheel-only events carry no button state; a drag survives scrolling
	buttons := ev.Buttons()
	if buttons&wheelMask != 0 && buttons&^wheelMask == 0 {
		return
	}
	m.down = buttons&tcell.Button1 != 0
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return &Intent{Type: IntentQuit}
		case 'r', 'R':
			return &Intent{Type: IntentReset}
		case 'm', 'M':
			return &Intent{Type: IntentToggleMute}
		}
	}
	return nil
}
