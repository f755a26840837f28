package core

import "time"

// Throttle collapses bursts of calls into a single trailing invocation.
//
// The first Call of a burst arms a deadline delay after it. Calls made before
// the deadline only replace the pending argument. When Poll observes that the
// deadline has passed it runs fn once with the most recent argument. Nothing
// runs on a background goroutine; the owner polls from its update loop.
type Throttle[T any] struct {
	delay time.Duration
	fn    func(T)
	now   func() time.Time

	pending  bool
	arg      T
	deadline time.Time
}

// NewThrottle constructs a Throttle that applies fn at most once per delay.
func NewThrottle[T any](delay time.Duration, fn func(T)) *Throttle[T] {
	if delay < 0 {
		delay = 0
	}
	return &Throttle[T]{delay: delay, fn: fn, now: time.Now}
}

// SetClock replaces the time source. Tests use it to step time manually.
func (t *Throttle[T]) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	t.now = now
}

// Call schedules fn(v), superseding any pending argument.
func (t *Throttle[T]) Call(v T) {
	t.arg = v
	if t.pending {
		return
	}
	t.pending = true
	t.deadline = t.now().Add(t.delay)
}

// Pending returns the argument waiting to be applied, if any.
func (t *Throttle[T]) Pending() (T, bool) {
	return t.arg, t.pending
}

// Poll runs the pending call when its deadline has passed and reports whether
// it did.
func (t *Throttle[T]) Poll() bool {
	if !t.pending || t.now().Before(t.deadline) {
		return false
	}
	return t.Flush()
}

// Flush runs the pending call immediately.
func (t *Throttle[T]) Flush() bool {
	if !t.pending {
		return false
	}
	v := t.arg
	t.pending = false
	var zero T
	t.arg = zero
	if t.fn != nil {
		t.fn(v)
	}
	return true
}

// Cancel drops the pending call without running it.
func (t *Throttle[T]) Cancel() {
	var zero T
	t.pending = false
	t.arg = zero
}
