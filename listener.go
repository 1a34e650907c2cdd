package datagrid

import (
	"slices"

	"github.com/google/uuid"
)

// ListenerID identifies a listener registration.
type ListenerID uuid.UUID

// NewListenerID returns a fresh random ID.
func NewListenerID() ListenerID {
	return ListenerID(uuid.New())
}

// String returns the canonical UUID form.
func (id ListenerID) String() string {
	return uuid.UUID(id).String()
}

// Listener is a registered event handler.
type Listener struct {
	ID     ListenerID
	Kind   EventKind
	Handle func(*Event)
}

// EventTarget is something listeners attach to: the grid's node or the
// document that delivers keyboard input.
//
// AddListener must replace an existing registration with the same ID and
// kind, so attaching twice never causes duplicate dispatch.
type EventTarget interface {
	AddListener(l Listener)
	RemoveListener(kind EventKind, id ListenerID)
}

// Dispatcher is an in-process EventTarget. Backends feed raw events into it.
type Dispatcher struct {
	listeners [eventKindCount][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// AddListener implements EventTarget.
func (d *Dispatcher) AddListener(l Listener) {
	if l.Kind < 0 || l.Kind >= eventKindCount || l.Handle == nil {
		return
	}
	d.RemoveListener(l.Kind, l.ID)
	d.listeners[l.Kind] = append(d.listeners[l.Kind], l)
}

// RemoveListener implements EventTarget.
func (d *Dispatcher) RemoveListener(kind EventKind, id ListenerID) {
	if kind < 0 || kind >= eventKindCount {
		return
	}
	d.listeners[kind] = slices.DeleteFunc(d.listeners[kind], func(l Listener) bool {
		return l.ID == id
	})
}

// Dispatch delivers ev to every listener of its kind, in registration order,
// until one stops propagation. Returns true if a handler prevented the default.
func (d *Dispatcher) Dispatch(ev *Event) bool {
	if ev == nil || ev.Kind < 0 || ev.Kind >= eventKindCount {
		return false
	}
	// Snapshot so handlers can attach or detach while we iterate.
	ls := slices.Clone(d.listeners[ev.Kind])
	for _, l := range ls {
		l.Handle(ev)
		if ev.stopped {
			break
		}
	}
	return ev.defaultPrevented
}

// Len returns the number of registered listeners across all kinds.
func (d *Dispatcher) Len() int {
	n := 0
	for _, ls := range d.listeners {
		n += len(ls)
	}
	return n
}

// Signal is a typed outbound notification with keyed subscribers.
type Signal[T any] struct {
	slots []signalSlot[T]
}

type signalSlot[T any] struct {
	key string
	fn  func(T)
}

// Connect subscribes fn under key. Connecting an existing key replaces it.
func (s *Signal[T]) Connect(key string, fn func(T)) {
	if fn == nil {
		return
	}
	s.Disconnect(key)
	s.slots = append(s.slots, signalSlot[T]{key: key, fn: fn})
}

// Disconnect removes the subscriber registered under key.
func (s *Signal[T]) Disconnect(key string) {
	s.slots = slices.DeleteFunc(s.slots, func(sl signalSlot[T]) bool {
		return sl.key == key
	})
}

// DisconnectAll removes every subscriber.
func (s *Signal[T]) DisconnectAll() {
	s.slots = nil
}

// Emit calls every subscriber with v. Subscribers may connect, disconnect
// or mutate the grid; they see a snapshot of the subscriber list.
func (s *Signal[T]) Emit(v T) {
	for _, sl := range slices.Clone(s.slots) {
		sl.fn(v)
	}
}

// Len returns the number of subscribers.
func (s *Signal[T]) Len() int {
	return len(s.slots)
}
