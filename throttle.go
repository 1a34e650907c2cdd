package datagrid

import "time"

// Throttle coalesces high-frequency calls into at most one dispatch per
// interval, acting on the latest value only (trailing edge).
//
// The first Call opens a window. Later calls inside the window replace the
// pending value and are otherwise dropped. Once the window has elapsed the
// next Tick (or Call) fires the pending value and closes the window.
//
// Throttle has no timers of its own; the host loop calls Tick, and can use
// Deadline to decide when.
type Throttle[T any] struct {
	interval    time.Duration
	fire        func(T)
	pending     T
	hasPending  bool
	windowStart time.Time
}

// NewThrottle creates a throttle that calls fire at most once per interval.
func NewThrottle[T any](interval time.Duration, fire func(T)) *Throttle[T] {
	return &Throttle[T]{interval: interval, fire: fire}
}

// Call records v as the latest value.
func (t *Throttle[T]) Call(now time.Time, v T) {
	t.pending = v
	if !t.hasPending {
		t.hasPending = true
		t.windowStart = now
	}
	t.Tick(now)
}

// Tick fires the pending value if its window has elapsed.
// Returns true if it fired.
func (t *Throttle[T]) Tick(now time.Time) bool {
	if !t.hasPending || now.Sub(t.windowStart) < t.interval {
		return false
	}
	v := t.pending
	var zero T
	t.pending = zero
	t.hasPending = false
	if t.fire != nil {
		t.fire(v)
	}
	return true
}

// Deadline returns when the pending value becomes due.
func (t *Throttle[T]) Deadline() (time.Time, bool) {
	if !t.hasPending {
		return time.Time{}, false
	}
	return t.windowStart.Add(t.interval), true
}

// Pending reports whether a value is waiting for its window to elapse.
func (t *Throttle[T]) Pending() bool {
	return t.hasPending
}

// Cancel drops the pending value without firing.
func (t *Throttle[T]) Cancel() {
	var zero T
	t.pending = zero
	t.hasPending = false
}
