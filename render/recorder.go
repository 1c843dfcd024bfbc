package render

import "github.com/lixenwraith/venn-deduction/vmath"

// Op names a draw primitive
type Op uint8

const (
	OpFillCircle Op = iota
	OpStrokeCircle
	OpFillRect
	OpStrokeRect
	OpStrokePolyline
)

// Call is one recorded primitive
type Call struct {
	Op     Op
	Center vmath.Vec2
	Radius float64
	W, H   float64
	Points []vmath.Vec2
	Color  RGBA
	Width  float64
}

// Recorder is a Sink that keeps every call in order
type Recorder struct {
	Calls []Call
}

func (r *Recorder) FillCircle(center vmath.Vec2, radius float64, color RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpFillCircle, Center: center, Radius: radius, Color: color})
}

func (r *Recorder) StrokeCircle(center vmath.Vec2, radius float64, color RGBA, width float64) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeCircle, Center: center, Radius: radius, Color: color, Width: width})
}

func (r *Recorder) FillRect(center vmath.Vec2, w, h float64, color RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, Center: center, W: w, H: h, Color: color})
}

func (r *Recorder) StrokeRect(center vmath.Vec2, w, h float64, color RGBA, width float64) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeRect, Center: center, W: w, H: h, Color: color, Width: width})
}

func (r *Recorder) StrokePolyline(points []vmath.Vec2, color RGBA, width float64) {
	pts := append([]vmath.Vec2(nil), points...)
	r.Calls = append(r.Calls, Call{Op: OpStrokePolyline, Points: pts, Color: color, Width: width})
}

// Reset drops recorded calls
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
