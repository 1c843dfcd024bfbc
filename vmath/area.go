package vmath

// RectContains reports whether p lies strictly inside the axis-aligned rectangle
// centered at center; points on any edge are outside
func RectContains(center Vec2, width, height float64, p Vec2) bool {
	halfW := width / 2
	halfH := height / 2
	return p.X > center.X-halfW && p.X < center.X+halfW &&
		p.Y > center.Y-halfH && p.Y < center.Y+halfH
}

// RectCorner returns the top-left corner of a centered rectangle
func RectCorner(center Vec2, width, height float64) Vec2 {
	return Vec2{X: center.X - width/2, Y: center.Y - height/2}
}
