package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Layers is an additive, layered collection of drawables. Lower layers are
// drawn first; within a layer, drawables keep insertion order.
type Layers struct {
	layers map[int][]Drawable
	order  []int
}

// NewLayers creates an empty collection
func NewLayers() *Layers {
	return &Layers{layers: make(map[int][]Drawable)}
}

// Add appends drawables to layer. Nil entries are skipped.
func (l *Layers) Add(layer int, drawables ...Drawable) {
	if _, ok := l.layers[layer]; !ok {
		l.order = append(l.order, layer)
		sort.Ints(l.order)
	}
	for _, d := range drawables {
		if d != nil {
			l.layers[layer] = append(l.layers[layer], d)
		}
	}
}

// Len returns the total number of drawables
func (l *Layers) Len() int {
	n := 0
	for _, ds := range l.layers {
		n += len(ds)
	}
	return n
}

// Draw renders every layer in ascending order
func (l *Layers) Draw(screen *ebiten.Image) {
	for _, layer := range l.order {
		for _, d := range l.layers[layer] {
			d.Draw(screen)
		}
	}
}
