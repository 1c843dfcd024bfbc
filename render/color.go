package render

import (
	"github.com/lixenwraith/venn-deduction/attribute"
	"github.com/lixenwraith/venn-deduction/component"
)

// RGBA is a draw color with float channels and alpha in [0, 1]
type RGBA struct {
	R, G, B, A float64
}

// WithAlpha returns c with its alpha replaced
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Opaque drops alpha and quantizes to 8 bits per channel
func (c RGBA) Opaque() RGB {
	return RGB{R: clamp(c.R*255 + 0.5), G: clamp(c.G*255 + 0.5), B: clamp(c.B*255 + 0.5)}
}

// Palette
var (
	Black  = RGBA{0, 0, 0, 1}
	White  = RGBA{1, 1, 1, 1}
	Yellow = RGBA{1, 1, 0, 1}
	Orange = RGBA{1, 0.7, 0, 1}
	Red    = RGBA{1, 0, 0, 1}
	Blue   = RGBA{0, 0, 1, 1}
	Green  = RGBA{0, 1, 0, 1}
	Purple = RGBA{1, 0, 1, 1}
)

// Region tints, left then right
var (
	LeftRegionColor  = Blue
	RightRegionColor = Yellow
)

// AttributeColor maps a token color attribute to its glyph color
func AttributeColor(c attribute.Color) RGBA {
	switch c {
	case attribute.ColorYellow:
		return Yellow
	case attribute.ColorBlue:
		return Blue
	default:
		return Purple
	}
}

// VerdictColor maps a verdict to a token body color
func VerdictColor(v component.Verdict) RGBA {
	switch v {
	case component.VerdictMatch:
		return Green
	case component.VerdictMismatch:
		return Red
	default:
		return Orange
	}
}
