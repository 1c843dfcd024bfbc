package renderer

import (
	"github.com/lixenwraith/venn-deduction/attribute"
	"github.com/lixenwraith/venn-deduction/component"
	"github.com/lixenwraith/venn-deduction/constant"
	"github.com/lixenwraith/venn-deduction/engine"
	"github.com/lixenwraith/venn-deduction/render"
	"github.com/lixenwraith/venn-deduction/vmath"
)

// TokenRenderer draws the tray in creation order so newer tokens sit on top
type TokenRenderer struct{}

// NewTokenRenderer creates a new token renderer
func NewTokenRenderer() *TokenRenderer {
	return &TokenRenderer{}
}

// Render draws every token body, outline and glyph
func (r *TokenRenderer) Render(scene *engine.Scene, sink render.Sink) {
	for i := range scene.Tokens {
		drawToken(sink, &scene.Tokens[i])
	}
}

func drawToken(sink render.Sink, tok *component.Token) {
	alpha := constant.TokenAlpha
	if tok.Dragged {
		alpha -= constant.DragAlphaDrop
	}
	sink.FillCircle(tok.Center, tok.Radius, render.VerdictColor(tok.Verdict).WithAlpha(alpha))
	sink.StrokeCircle(tok.Center, tok.Radius, render.Black, constant.OutlineWidth)
	drawGlyph(sink, tok.Center, tok.Target)
}

// drawGlyph draws the shape attribute in the color attribute
// Triangles have no fill primitive and are drawn as a closed polyline
func drawGlyph(sink render.Sink, c vmath.Vec2, t attribute.Target) {
	const h = constant.GlyphHalfSize
	color := render.AttributeColor(t.Color)

	switch t.Shape {
	case attribute.ShapeCircle:
		sink.FillCircle(c, h, color)
		sink.StrokeCircle(c, h, render.Black, constant.OutlineWidth)
	case attribute.ShapeSquare:
		sink.FillRect(c, 2*h, 2*h, color)
		sink.StrokeRect(c, 2*h, 2*h, render.Black, constant.OutlineWidth)
	case attribute.ShapeTriangle:
		sink.StrokePolyline([]vmath.Vec2{
			vmath.V2(c.X, c.Y-h),
			vmath.V2(c.X-h, c.Y+h),
			vmath.V2(c.X+h, c.Y+h),
			vmath.V2(c.X, c.Y-h),
		}, color, 2*constant.OutlineWidth)
	}
}
