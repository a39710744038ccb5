package input

// Source yields the input items gathered since the previous call, in the
// order they occurred. It is drained once per frame.
type Source interface {
	Poll() []Event
}

// SourceFunc adapts a function to Source
type SourceFunc func() []Event

// Poll calls f
func (f SourceFunc) Poll() []Event { return f() }

// Latcher is implemented by sources that can ignore inputs already held
// down. After Latch, a held key or button stays silent until released.
type Latcher interface {
	Latch()
}
