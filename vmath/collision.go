package vmath

// CircleContains reports whether p lies strictly inside the circle
// A point at exactly radius distance is outside
func CircleContains(center Vec2, radius float64, p Vec2) bool {
	return Distance(p, center) < radius
}
