package renderer

import (
	"github.com/lixenwraith/venn-deduction/component"
	"github.com/lixenwraith/venn-deduction/constant"
	"github.com/lixenwraith/venn-deduction/engine"
	"github.com/lixenwraith/venn-deduction/render"
)

// SlotRenderer draws answer slots in their owning region's tint
type SlotRenderer struct{}

// NewSlotRenderer creates a new slot renderer
func NewSlotRenderer() *SlotRenderer {
	return &SlotRenderer{}
}

// Render draws each present slot; absent slots draw nothing
func (r *SlotRenderer) Render(scene *engine.Scene, sink render.Sink) {
	if scene.Left.Slot != nil {
		drawSlot(sink, scene.Left.Slot, render.LeftRegionColor)
	}
	if scene.Right.Slot != nil {
		drawSlot(sink, scene.Right.Slot, render.RightRegionColor)
	}
}

func drawSlot(sink render.Sink, slot *component.AnswerSlot, color render.RGBA) {
	alpha := constant.SlotAlpha
	if slot.Hover {
		alpha = constant.SlotHoverAlpha
	}
	sink.FillRect(slot.Center, slot.Width, slot.Height, color.WithAlpha(alpha))
	sink.StrokeRect(slot.Center, slot.Width, slot.Height, render.Black, constant.SlotBorder)
}
