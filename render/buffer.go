package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/venn-deduction/vmath"
)

// RenderBuffer rasterizes world-space primitives onto a cell grid
// The grid covers the viewport; status rows sit below it
type RenderBuffer struct {
	cells    []Cell
	viewport vmath.Viewport
	status   string
}

// NewRenderBuffer creates a buffer covering viewport
func NewRenderBuffer(viewport vmath.Viewport) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(viewport)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(viewport vmath.Viewport) {
	size := viewport.Cols * viewport.Rows
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.viewport = viewport
	b.Clear()
}

// Viewport returns the current world to cell mapping
func (b *RenderBuffer) Viewport() vmath.Viewport {
	return b.viewport
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	b.status = ""
}

// SetStatus sets the text of the status line
func (b *RenderBuffer) SetStatus(text string) {
	b.status = text
}

// Get returns the cell at (col, row); out of bounds returns an empty cell
func (b *RenderBuffer) Get(col, row int) Cell {
	if !b.inBounds(col, row) {
		return emptyCell
	}
	return b.cells[row*b.viewport.Cols+col]
}

func (b *RenderBuffer) inBounds(col, row int) bool {
	return col >= 0 && col < b.viewport.Cols && row >= 0 && row < b.viewport.Rows
}

func (b *RenderBuffer) at(col, row int) *Cell {
	return &b.cells[row*b.viewport.Cols+col]
}

// tiny reports whether a w x h world extent spans fewer than two cells on either axis
func (b *RenderBuffer) tiny(w, h float64) bool {
	cs := b.viewport.CellSize()
	return w < 2*cs.X || h < 2*cs.Y
}

func (b *RenderBuffer) marker(center vmath.Vec2, r rune, color RGBA) {
	col, row := b.viewport.ToCell(center)
	c := b.at(col, row)
	c.Rune = r
	c.Fg = Blend(c.Bg, color)
}

func (b *RenderBuffer) stroke(col, row int, color RGBA) {
	c := b.at(col, row)
	c.Rune = RuneStroke
	c.Fg = Blend(c.Bg, color)
}

// cellBounds returns the world-space rectangle covered by a cell
func (b *RenderBuffer) cellBounds(col, row int) (min, max vmath.Vec2) {
	cs := b.viewport.CellSize()
	min = vmath.V2(float64(col)*cs.X, float64(row)*cs.Y)
	return min, min.Add(cs)
}

// span returns the inclusive cell range overlapping the world box [min, max]
func (b *RenderBuffer) span(min, max vmath.Vec2) (c0, r0, c1, r1 int) {
	c0, r0 = b.viewport.ToCell(min)
	c1, r1 = b.viewport.ToCell(max)
	return
}

// FillCircle blends color into every cell whose center lies inside the circle
func (b *RenderBuffer) FillCircle(center vmath.Vec2, radius float64, color RGBA) {
	if b.tiny(2*radius, 2*radius) {
		b.marker(center, RuneCircle, color)
		return
	}
	c0, r0, c1, r1 := b.span(center.Sub(vmath.V2(radius, radius)), center.Add(vmath.V2(radius, radius)))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if vmath.CircleContains(center, radius, b.viewport.CellCenter(col, row)) {
				c := b.at(col, row)
				c.Bg = Blend(c.Bg, color)
			}
		}
	}
}

// StrokeCircle marks every cell the circle boundary passes through
func (b *RenderBuffer) StrokeCircle(center vmath.Vec2, radius float64, color RGBA, width float64) {
	if b.tiny(2*radius, 2*radius) {
		return
	}
	c0, r0, c1, r1 := b.span(center.Sub(vmath.V2(radius, radius)), center.Add(vmath.V2(radius, radius)))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			lo, hi := b.cellBounds(col, row)
			near := vmath.V2(math.Max(lo.X, math.Min(center.X, hi.X)), math.Max(lo.Y, math.Min(center.Y, hi.Y)))
			far := vmath.V2(farEdge(center.X, lo.X, hi.X), farEdge(center.Y, lo.Y, hi.Y))
			if vmath.Distance(near, center) < radius && vmath.Distance(far, center) >= radius {
				b.stroke(col, row, color)
			}
		}
	}
}

func farEdge(c, lo, hi float64) float64 {
	if c-lo > hi-c {
		return lo
	}
	return hi
}

// FillRect blends color into every cell whose center lies inside the rectangle
func (b *RenderBuffer) FillRect(center vmath.Vec2, w, h float64, color RGBA) {
	if b.tiny(w, h) {
		b.marker(center, RuneSquare, color)
		return
	}
	corner := vmath.RectCorner(center, w, h)
	c0, r0, c1, r1 := b.span(corner, corner.Add(vmath.V2(w, h)))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if vmath.RectContains(center, w, h, b.viewport.CellCenter(col, row)) {
				c := b.at(col, row)
				c.Bg = Blend(c.Bg, color)
			}
		}
	}
}

// StrokeRect marks every cell the rectangle outline passes through
func (b *RenderBuffer) StrokeRect(center vmath.Vec2, w, h float64, color RGBA, width float64) {
	if b.tiny(w, h) {
		return
	}
	lo := vmath.RectCorner(center, w, h)
	hi := lo.Add(vmath.V2(w, h))
	c0, r0, c1, r1 := b.span(lo, hi)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			a, z := b.cellBounds(col, row)
			overlaps := a.X < hi.X && z.X > lo.X && a.Y < hi.Y && z.Y > lo.Y
			interior := a.X > lo.X && z.X < hi.X && a.Y > lo.Y && z.Y < hi.Y
			if overlaps && !interior {
				b.stroke(col, row, color)
			}
		}
	}
}

// StrokePolyline marks cells along each segment; a tiny closed polyline becomes a triangle marker
func (b *RenderBuffer) StrokePolyline(points []vmath.Vec2, color RGBA, width float64) {
	if len(points) == 0 {
		return
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = vmath.V2(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y))
		hi = vmath.V2(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y))
	}
	if b.tiny(hi.X-lo.X, hi.Y-lo.Y) {
		r := RuneStroke
		if len(points) > 2 && points[0] == points[len(points)-1] {
			r = RuneTriangle
		}
		b.marker(vmath.V2((lo.X+hi.X)/2, (lo.Y+hi.Y)/2), r, color)
		return
	}

	cs := b.viewport.CellSize()
	step := math.Min(cs.X, cs.Y) / 2
	for i := 1; i < len(points); i++ {
		from, to := points[i-1], points[i]
		n := int(math.Ceil(vmath.Distance(from, to)/step)) + 1
		for k := 0; k <= n; k++ {
			t := float64(k) / float64(n)
			p := vmath.V2(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t)
			if p.X < 0 || p.Y < 0 || p.X >= b.viewport.World.X || p.Y >= b.viewport.World.Y {
				continue
			}
			col, row := b.viewport.ToCell(p)
			b.stroke(col, row, color)
		}
	}
}

// FlushToScreen copies the grid and status line to the screen
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	width, height := screen.Size()
	for row := 0; row < b.viewport.Rows; row++ {
		for col := 0; col < b.viewport.Cols; col++ {
			c := b.at(col, row)
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(c.Fg.TCell()).Background(c.Bg.TCell())
			screen.SetContent(col, row, r, nil, style)
		}
		// Letterbox margin right of the board
		for col := b.viewport.Cols; col < width; col++ {
			screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}

	statusStyle := tcell.StyleDefault.Foreground(RGBWhite.TCell()).Background(RGBBlack.TCell())
	for row := b.viewport.Rows; row < height; row++ {
		for col := 0; col < width; col++ {
			screen.SetContent(col, row, ' ', nil, statusStyle)
		}
	}
	if b.viewport.Rows < height {
		col := 0
		for _, r := range b.status {
			if col >= width {
				break
			}
			screen.SetContent(col, b.viewport.Rows, r, nil, statusStyle)
			col++
		}
	}
}
