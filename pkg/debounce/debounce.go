// Package debounce collapses bursts of calls into a single trailing
// invocation carrying the arguments of the last call in the burst.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delays fn by the configured quiet window. Every Call restarts
// the window and supersedes any pending invocation; superseded invocations
// never run. A generation counter guards the race between a firing timer and
// a concurrent Call, so only the latest call's arguments are ever applied.
type Debouncer[T any] struct {
	mu      sync.Mutex
	window  time.Duration
	fn      func(T)
	timer   *time.Timer
	gen     uint64
	stopped bool
}

func New[T any](window time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		window: window,
		fn:     fn,
	}
}

// Call schedules fn(arg) after the quiet window, cancelling any pending
// invocation.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		if d.stopped || gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.mu.Unlock()

		d.fn(arg)
	})
}

// Stop tears the debouncer down. A pending invocation will not run and
// further Calls are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
