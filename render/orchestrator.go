package render

type layerEntry struct {
	layer    Layer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the per-frame render pipeline
type Orchestrator struct {
	layers   []layerEntry
	regCount int
}

// NewOrchestrator creates an empty pipeline
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		layers: make([]layerEntry, 0, 8),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority Priority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Len returns the number of registered layers
func (o *Orchestrator) Len() int {
	return len(o.layers)
}

// RenderFrame clears the surface and runs every visible layer in priority order
func (o *Orchestrator) RenderFrame(ctx Context, s Surface) {
	s.Clear()
	s.SetGlobalAlpha(1)

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(ctx, s)
		s.SetGlobalAlpha(1)
	}
}
