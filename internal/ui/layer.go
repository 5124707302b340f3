package ui

// Layer represents an overlay/toast that can render itself into a canvas
// matching the current terminal dimensions.
type Layer interface {
	Render() *Canvas
}

// LayerFunc is an adapter to allow ordinary functions to act as layers.
type LayerFunc func() *Canvas

// Render implements Layer for LayerFunc.
func (f LayerFunc) Render() *Canvas {
	return f()
}

// composeLayers draws base and then every non-nil layer, in order, onto a
// width x height frame.
func composeLayers(base string, width, height int, layers ...Layer) string {
	active := make([]Layer, 0, len(layers))
	for _, l := range layers {
		if l != nil {
			active = append(active, l)
		}
	}
	if len(active) == 0 {
		return base
	}

	frame := NewCanvas(width, height)
	frame.DrawStringAt(0, 0, base)
	for _, l := range active {
		c := l.Render()
		if c == nil {
			continue
		}
		x, y := c.Offset()
		frame.DrawStringAt(x, y, c.Render())
	}
	return frame.Render()
}
