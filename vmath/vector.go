package vmath

import "math"

// Vec2 is a point or displacement in world space
type Vec2 struct {
	X, Y float64
}

// V2 builds a Vec2
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sub returns a - b
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Add returns a + b
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Magnitude returns the Euclidean length
func (a Vec2) Magnitude() float64 {
	return math.Hypot(a.X, a.Y)
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Magnitude()
}
