package engine

// Event is a multicast callback list. Session lifecycle signals and widget
// clicks are delivered through events so several collaborators can listen
// without knowing about each other.
type Event struct {
	listeners []func()
}

// AddListener adds a callback to be invoked when the event fires.
func (e *Event) AddListener(callback func()) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

// RemoveAllListeners clears all listeners.
func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners in registration order.
func (e *Event) Invoke() {
	for _, listener := range e.listeners {
		if listener != nil {
			listener()
		}
	}
}

func (e *Event) ListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a generic event with one argument.
type EventWithArg[T any] struct {
	listeners []func(T)
}

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

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}
