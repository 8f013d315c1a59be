package engine

// EventWithArg is a multicast event with one argument.
type EventWithArg[T any] struct {
	listeners []func(T)
}

// AddListener adds a callback to be invoked when the event fires
func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		if listener != nil {
			listener(arg)
		}
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}

// EventKind identifies a global editor event.
type EventKind int

const (
	EventObjectsTabModeChanged EventKind = iota
	EventObjectSelectionChanged
	EventObjectSelectedUnitPicked
	EventObjectDeleteSelection
)

func (k EventKind) String() string {
	switch k {
	case EventObjectsTabModeChanged:
		return "ObjectsTabModeChanged"
	case EventObjectSelectionChanged:
		return "ObjectSelectionChanged"
	case EventObjectSelectedUnitPicked:
		return "ObjectSelectedUnitPicked"
	case EventObjectDeleteSelection:
		return "ObjectDeleteSelection"
	default:
		return "Unknown"
	}
}

// Event is a notification posted to the Bus. Arg is nil, an int, or a Unit
// depending on Kind.
type Event struct {
	Kind EventKind
	Arg  any
}

// Bus is the editor's global event queue. Emit is fire-and-forget; listeners
// run on Dispatch, once per frame.
type Bus struct {
	pending []Event
	byKind  map[EventKind]*EventWithArg[Event]
}

func NewBus() *Bus {
	return &Bus{byKind: make(map[EventKind]*EventWithArg[Event])}
}

func (b *Bus) Subscribe(kind EventKind, fn func(Event)) {
	ev, ok := b.byKind[kind]
	if !ok {
		ev = &EventWithArg[Event]{}
		b.byKind[kind] = ev
	}
	ev.AddListener(fn)
}

// Emit queues ev for the next Dispatch.
func (b *Bus) Emit(ev Event) {
	b.pending = append(b.pending, ev)
}

// Dispatch delivers all queued events in emission order. Events emitted by
// listeners during Dispatch wait for the next call.
func (b *Bus) Dispatch() int {
	queue := b.pending
	b.pending = nil
	for _, ev := range queue {
		if l, ok := b.byKind[ev.Kind]; ok {
			l.Invoke(ev)
		}
	}
	return len(queue)
}

func (b *Bus) Pending() int {
	return len(b.pending)
}
