package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/venn-deduction/attribute"
	"github.com/lixenwraith/venn-deduction/component"
)

func target(shape attribute.Shape, color attribute.Color, size attribute.Size) attribute.Target {
	return attribute.Target{Shape: shape, Color: color, Size: size}
}

func TestRegionMatchesExamples(t *testing.T) {
	region := &component.Region{Target: target(attribute.ShapeCircle, attribute.ColorBlue, attribute.SizeLarge)}

	tests := []struct {
		name  string
		token attribute.Target
		want  bool
	}{
		{"shape agrees", target(attribute.ShapeCircle, attribute.ColorPurple, attribute.SizeSmall), true},
		{"color agrees", target(attribute.ShapeTriangle, attribute.ColorBlue, attribute.SizeSmall), true},
		{"both agree", target(attribute.ShapeCircle, attribute.ColorBlue, attribute.SizeSmall), true},
		{"neither agrees", target(attribute.ShapeSquare, attribute.ColorYellow, attribute.SizeSmall), false},
		{"only size agrees", target(attribute.ShapeSquare, attribute.ColorYellow, attribute.SizeLarge), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RegionMatches(region, tt.token))
		})
	}
}

func TestMatchIgnoresSize(t *testing.T) {
	for _, rs := range attribute.Shapes {
		for _, rc := range attribute.Colors {
			for _, rz := range attribute.Sizes {
				region := &component.Region{Target: target(rs, rc, rz)}
				slot := &component.AnswerSlot{Target: target(rs, rc, rz)}
				for _, ts := range attribute.Shapes {
					for _, tc := range attribute.Colors {
						base := RegionMatches(region, target(ts, tc, attribute.SizeSmall))
						for _, tz := range attribute.Sizes {
							tok := target(ts, tc, tz)
							assert.Equal(t, base, RegionMatches(region, tok))
							assert.Equal(t, base, SlotMatches(slot, tok))
						}
					}
				}
			}
		}
	}
}
