package puzzle

import (
	"github.com/lixenwraith/venn-deduction/constant"
	"github.com/lixenwraith/venn-deduction/vmath"
)

// Layout holds the fixed board geometry in world units
type Layout struct {
	World        vmath.Vec2
	Margin       float64
	RegionRadius float64

	TrayX       float64
	RowHeight   float64
	TokenRadius float64

	// Slots enables the answer-slot variant
	Slots       bool
	SlotWidth   float64
	SlotHeight  float64
	SlotYOffset float64
}

// DefaultLayout returns the stock 800x600 board with answer slots enabled
func DefaultLayout() Layout {
	return Layout{
		World:        vmath.V2(constant.WindowWidth, constant.WindowHeight),
		Margin:       constant.LayoutMargin,
		RegionRadius: constant.RegionRadius,
		TrayX:        constant.TrayX,
		RowHeight:    constant.TrayRowHeight,
		TokenRadius:  constant.TokenRadius,
		Slots:        true,
		SlotWidth:    constant.SlotWidth,
		SlotHeight:   constant.SlotHeight,
		SlotYOffset:  constant.SlotYOffset,
	}
}

// LeftCenter is one third across the usable width, vertically centered
func (l Layout) LeftCenter() vmath.Vec2 {
	remW, remH := l.remaining()
	return vmath.V2(l.Margin+remW/3, l.Margin+remH/2)
}

// RightCenter mirrors LeftCenter from the opposite edges
func (l Layout) RightCenter() vmath.Vec2 {
	remW, remH := l.remaining()
	return vmath.V2(l.World.X-l.Margin-remW/3, l.World.Y-l.Margin-remH/2)
}

// SlotCenter places a slot below the region centered at regionCenter
func (l Layout) SlotCenter(regionCenter vmath.Vec2) vmath.Vec2 {
	return vmath.V2(regionCenter.X, l.World.Y-l.Margin-l.SlotYOffset)
}

// TrayPosition is the resting center of the token created at index
func (l Layout) TrayPosition(index int) vmath.Vec2 {
	return vmath.V2(l.TrayX, float64(index+1)*l.RowHeight)
}

func (l Layout) remaining() (float64, float64) {
	return l.World.X - l.Margin*2, l.World.Y - l.Margin*2
}
