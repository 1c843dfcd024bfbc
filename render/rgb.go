package render

import "github.com/gdamore/tcell/v2"

// RGB is an opaque 24-bit terminal color
type RGB struct {
	R, G, B uint8
}

// Predefined opaque colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend composites src over dst using src alpha
func Blend(dst RGB, src RGBA) RGB {
	a := src.A
	if a >= 1 {
		return src.Opaque()
	}
	if a <= 0 {
		return dst
	}
	return RGB{
		R: clamp(src.R*255*a + float64(dst.R)*(1-a) + 0.5),
		G: clamp(src.G*255*a + float64(dst.G)*(1-a) + 0.5),
		B: clamp(src.B*255*a + float64(dst.B)*(1-a) + 0.5),
	}
}

// TCell converts to a tcell true color
func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
