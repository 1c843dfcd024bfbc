package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/venn-deduction/engine"
)

type namedRenderer struct {
	name string
	log  *[]string
}

func (r namedRenderer) Render(_ *engine.Scene, _ Sink) {
	*r.log = append(*r.log, r.name)
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	var order []string
	o := &RenderOrchestrator{}
	o.Register(namedRenderer{"token", &order}, PriorityToken)
	o.Register(namedRenderer{"region-a", &order}, PriorityRegion)
	o.Register(namedRenderer{"slot", &order}, PrioritySlot)
	o.Register(namedRenderer{"region-b", &order}, PriorityRegion)

	o.Draw(&engine.Scene{}, &Recorder{})
	assert.Equal(t, []string{"region-a", "region-b", "slot", "token"}, order)
}
