package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/venn-deduction/engine"
	"github.com/lixenwraith/venn-deduction/vmath"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing onto screen through viewport
func NewRenderOrchestrator(screen tcell.Screen, viewport vmath.Viewport) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(viewport),
		renderers: make([]rendererEntry, 0, 4),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(viewport vmath.Viewport) {
	o.buffer.Resize(viewport)
	o.screen.Sync()
}

// Buffer exposes the raster target
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// Draw runs every registered renderer against sink in priority order
func (o *RenderOrchestrator) Draw(scene *engine.Scene, sink Sink) {
	for _, entry := range o.renderers {
		entry.renderer.Render(scene, sink)
	}
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(scene *engine.Scene, status string) {
	o.buffer.Clear()
	o.Draw(scene, o.buffer)
	o.buffer.SetStatus(status)
	o.buffer.FlushToScreen(o.screen)
	o.screen.Show()
}
