package input

// Handler reacts to an input item. dt is the game delta time of the frame
// the item was drained in.
type Handler func(dt float64)

// Dispatcher routes drained events to at most one handler per event kind and
// at most one handler per action. The two tables are independent: a key-down
// event whose kind and action are both bound fires both handlers.
type Dispatcher struct {
	events  map[EventKind]Handler
	actions map[Action]Handler
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		events:  make(map[EventKind]Handler),
		actions: make(map[Action]Handler),
	}
}

// OnEvent binds h to every event of the given kind, replacing any previous
// binding. A nil handler removes the binding.
func (d *Dispatcher) OnEvent(kind EventKind, h Handler) {
	if h == nil {
		delete(d.events, kind)
		return
	}
	d.events[kind] = h
}

// OnAction binds h to key-down events resolving to action, replacing any
// previous binding. A nil handler removes the binding.
func (d *Dispatcher) OnAction(action Action, h Handler) {
	if h == nil {
		delete(d.actions, action)
		return
	}
	d.actions[action] = h
}

// HasAction reports whether action has a handler
func (d *Dispatcher) HasAction(action Action) bool {
	_, ok := d.actions[action]
	return ok
}

// Dispatch drains events in order and returns how many handlers fired.
// Items without a binding are discarded.
func (d *Dispatcher) Dispatch(events []Event, dt float64) int {
	fired := 0
	for _, ev := range events {
		if h, ok := d.events[ev.Kind]; ok {
			h(dt)
			fired++
		}
		if ev.Kind != EventKeyDown || ev.Action == ActionNone {
			continue
		}
		if h, ok := d.actions[ev.Action]; ok {
			h(dt)
			fired++
		}
	}
	return fired
}
