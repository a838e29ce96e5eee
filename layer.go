package watchface

import (
	"github.com/gogpu/watchface/surface"
)

// UpdateFunc draws a layer onto s for frame f.
type UpdateFunc func(s surface.Surface, f Frame)

// Layer is a named drawing step of a face. A layer starts dirty and is
// cleaned by Window.Render.
type Layer struct {
	name   string
	update UpdateFunc
	dirty  bool
}

// NewLayer creates a dirty layer.
func NewLayer(name string, update UpdateFunc) *Layer {
	return &Layer{name: name, update: update, dirty: true}
}

// Name returns the layer name.
func (l *Layer) Name() string {
	return l.name
}

// MarkDirty requests a redraw of the layer.
func (l *Layer) MarkDirty() {
	l.dirty = true
}

// Dirty reports whether the layer waits for a redraw.
func (l *Layer) Dirty() bool {
	return l.dirty
}

func (l *Layer) render(s surface.Surface, f Frame) {
	if l.update != nil {
		l.update(s, f)
	}
	l.dirty = false
}

// Window is the stack of layers a face draws into, bottom first.
type Window struct {
	layers    []*Layer
	actuators Actuators
}

// NewWindow creates an empty window. A nil Actuators is replaced by
// NopActuators.
func NewWindow(act Actuators) *Window {
	if act == nil {
		act = NopActuators{}
	}
	return &Window{actuators: act}
}

// AddLayer puts l on top of the stack.
func (w *Window) AddLayer(l *Layer) {
	w.layers = append(w.layers, l)
}

// RemoveLayers drops all layers.
func (w *Window) RemoveLayers() {
	w.layers = nil
}

// Layers returns the layers, bottom first.
func (w *Window) Layers() []*Layer {
	return w.layers
}

// Layer returns the layer with the given name.
func (w *Window) Layer(name string) (*Layer, bool) {
	for _, l := range w.layers {
		if l.name == name {
			return l, true
		}
	}
	return nil, false
}

// Dirty reports whether any layer waits for a redraw.
func (w *Window) Dirty() bool {
	for _, l := range w.layers {
		if l.dirty {
			return true
		}
	}
	return false
}

// MarkDirty marks every layer dirty.
func (w *Window) MarkDirty() {
	for _, l := range w.layers {
		l.dirty = true
	}
}

// Render draws all layers bottom to top and flushes s. Surfaces keep no
// per-layer content, so a frame always repaints the whole stack. All dirty
// flags are cleared.
func (w *Window) Render(s surface.Surface, f Frame) error {
	for _, l := range w.layers {
		l.render(s, f)
	}
	return s.Flush()
}

// Vibrate forwards p to the actuators.
func (w *Window) Vibrate(p VibePattern) {
	w.actuators.Vibrate(p)
}

// LightInteraction forwards a backlight request to the actuators.
func (w *Window) LightInteraction() {
	w.actuators.LightInteraction()
}
