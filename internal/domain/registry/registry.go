// Package registry holds the objects updated every frame.
package registry

// Updater advances by the game delta time
type Updater interface {
	Update(dt float64)
}

// UpdaterFunc adapts a function to Updater
type UpdaterFunc func(dt float64)

// Update calls f(dt)
func (f UpdaterFunc) Update(dt float64) { f(dt) }

// Registry keeps objects in registration order.
type Registry struct {
	objects []Updater
}

// New creates an empty registry
func New() *Registry {
	return &Registry{}
}

// Add appends objects; nil entries are skipped
func (r *Registry) Add(objects ...Updater) {
	for _, o := range objects {
		if o != nil {
			r.objects = append(r.objects, o)
		}
	}
}

// Len returns the number of registered objects
func (r *Registry) Len() int {
	return len(r.objects)
}

// UpdateAll updates every object in registration order
func (r *Registry) UpdateAll(dt float64) {
	for _, o := range r.objects {
		o.Update(dt)
	}
}
