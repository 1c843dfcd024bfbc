package game

import (
	"math"

	"github.com/lixenwraith/venn-deduction/constant"
	"github.com/lixenwraith/venn-deduction/vmath"
)

// cellAspect is the height to width ratio of a terminal cell
const cellAspect = 2.0

// fitViewport maps the world onto the terminal above the status bar
// Fullscreen stretches to every cell; otherwise the world keeps its aspect ratio
func fitViewport(world vmath.Vec2, cols, rows int, fullscreen bool) vmath.Viewport {
	rows -= constant.StatusBarRows
	if fullscreen || world.X <= 0 || world.Y <= 0 {
		return vmath.NewViewport(world.X, world.Y, cols, rows)
	}

	// Square world units need cellAspect columns per row
	c := int(math.Round(cellAspect * world.X * float64(rows) / world.Y))
	r := rows
	if c > cols {
		c = cols
		r = int(math.Round(float64(c) * world.Y / (cellAspect * world.X)))
	}
	return vmath.NewViewport(world.X, world.Y, c, r)
}
