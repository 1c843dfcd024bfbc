package constant

import "time"

// Host window defaults
const (
	WindowTitle      = "Venn Deduction"
	WindowWidth      = 800
	WindowHeight     = 600
	WindowResizable  = false
	WindowFullscreen = false

	// TicksPerSecond is the interaction tick rate
	TicksPerSecond = 60

	// MaxTicksPerSecond bounds configurable tick rates
	MaxTicksPerSecond = 240
)

// Board layout defaults in world units
const (
	LayoutMargin = 10.0

	RegionRadius = 200.0

	// Tray column: token i sits at (TrayX, (i+1)*TrayRowHeight)
	TrayX         = 20.0
	TrayRowHeight = 60.0
	TokenRadius   = 30.0

	// Answer slots sit below their region along the bottom edge
	SlotWidth   = 120.0
	SlotHeight  = 60.0
	SlotYOffset = 40.0 // distance from the bottom margin to the slot center
)

// InputEventBuffer is the capacity of the terminal event channel
const InputEventBuffer = 256

// TickInterval converts a tick rate to a ticker period
func TickInterval(ticksPerSecond int) time.Duration {
	if ticksPerSecond <= 0 {
		ticksPerSecond = TicksPerSecond
	}
	return time.Second / time.Duration(ticksPerSecond)
}
