package vmath

// Viewport maps a fixed-size world onto a grid of terminal cells
// Each cell covers a (World.X/Cols) x (World.Y/Rows) block of world space
type Viewport struct {
	World      Vec2
	Cols, Rows int
}

// NewViewport creates a viewport, clamping the grid to at least one cell
func NewViewport(worldW, worldH float64, cols, rows int) Viewport {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return Viewport{World: Vec2{X: worldW, Y: worldH}, Cols: cols, Rows: rows}
}

// CellSize returns the world-space extent of one cell
func (v Viewport) CellSize() Vec2 {
	return Vec2{X: v.World.X / float64(v.Cols), Y: v.World.Y / float64(v.Rows)}
}

// CellCenter returns the world position of the center of cell (col, row)
func (v Viewport) CellCenter(col, row int) Vec2 {
	cs := v.CellSize()
	return Vec2{X: (float64(col) + 0.5) * cs.X, Y: (float64(row) + 0.5) * cs.Y}
}

// ToCell returns the cell containing world point p, clamped to the grid
func (v Viewport) ToCell(p Vec2) (col, row int) {
	cs := v.CellSize()
	col = clampInt(int(p.X/cs.X), 0, v.Cols-1)
	row = clampInt(int(p.Y/cs.Y), 0, v.Rows-1)
	return col, row
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
