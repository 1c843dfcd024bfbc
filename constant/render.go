package constant

// Region fill opacity, idle and under the pointer
const (
	RegionAlpha          = 0.1
	RegionHighlightAlpha = 0.3
)

// Token body opacity; dragging subtracts DragAlphaDrop
const (
	TokenAlpha    = 1.0
	DragAlphaDrop = 0.3
)

// Glyph half-extent drawn inside a token
const GlyphHalfSize = 10.0

// Answer slot fill opacity, idle and while hovered during a drag
const (
	SlotAlpha      = 0.15
	SlotHoverAlpha = 0.4
)

// Stroke widths in world units
const (
	OutlineWidth = 1.0
	SlotBorder   = 2.0
)

// StatusBarRows is reserved at the bottom of the terminal for the status line
const StatusBarRows = 1
