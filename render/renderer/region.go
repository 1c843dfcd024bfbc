package renderer

import (
	"github.com/lixenwraith/venn-deduction/component"
	"github.com/lixenwraith/venn-deduction/constant"
	"github.com/lixenwraith/venn-deduction/engine"
	"github.com/lixenwraith/venn-deduction/render"
)

// RegionRenderer draws both diagram circles, brighter under the pointer
type RegionRenderer struct{}

// NewRegionRenderer creates a new region renderer
func NewRegionRenderer() *RegionRenderer {
	return &RegionRenderer{}
}

// Render draws left then right
func (r *RegionRenderer) Render(scene *engine.Scene, sink render.Sink) {
	drawRegion(sink, &scene.Left, render.LeftRegionColor)
	drawRegion(sink, &scene.Right, render.RightRegionColor)
}

func drawRegion(sink render.Sink, region *component.Region, color render.RGBA) {
	alpha := constant.RegionAlpha
	if region.Highlighted {
		alpha = constant.RegionHighlightAlpha
	}
	sink.FillCircle(region.Center, region.Radius, color.WithAlpha(alpha))
	sink.StrokeCircle(region.Center, region.Radius, render.Black, constant.OutlineWidth)
}
