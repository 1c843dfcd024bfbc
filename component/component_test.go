package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/venn-deduction/vmath"
)

func TestVerdictOf(t *testing.T) {
	assert.Equal(t, VerdictMatch, VerdictOf(true))
	assert.Equal(t, VerdictMismatch, VerdictOf(false))
	assert.Equal(t, "unset", VerdictUnset.String())
	assert.Equal(t, "match", VerdictMatch.String())
	assert.Equal(t, "mismatch", VerdictMismatch.String())
}

func TestZoneContainment(t *testing.T) {
	region := &Region{Center: vmath.V2(0, 0), Radius: 10}
	assert.True(t, region.Contains(vmath.V2(9, 0)))
	assert.False(t, region.Contains(vmath.V2(10, 0)))

	slot := &AnswerSlot{Center: vmath.V2(0, 0), Width: 20, Height: 10}
	assert.True(t, slot.Contains(vmath.V2(9, 4)))
	assert.False(t, slot.Contains(vmath.V2(10, 0)))
	assert.False(t, slot.Contains(vmath.V2(0, 5)))

	token := &Token{Center: vmath.V2(5, 5), Radius: 3}
	assert.True(t, token.Contains(vmath.V2(6, 6)))
	assert.False(t, token.Contains(vmath.V2(8, 5)))
}
