package render

import (
	"github.com/lixenwraith/venn-deduction/engine"
	"github.com/lixenwraith/venn-deduction/vmath"
)

// Sink receives draw primitives in world coordinates
// Implementations decide how and where pixels land
type Sink interface {
	FillCircle(center vmath.Vec2, radius float64, color RGBA)
	StrokeCircle(center vmath.Vec2, radius float64, color RGBA, width float64)
	FillRect(center vmath.Vec2, w, h float64, color RGBA)
	StrokeRect(center vmath.Vec2, w, h float64, color RGBA, width float64)
	StrokePolyline(points []vmath.Vec2, color RGBA, width float64)
}

// SystemRenderer draws one layer of the scene
type SystemRenderer interface {
	Render(scene *engine.Scene, sink Sink)
}
