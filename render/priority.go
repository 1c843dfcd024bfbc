package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityRegion RenderPriority = iota
	PrioritySlot
	PriorityToken
)
