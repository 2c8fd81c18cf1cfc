// SPDX-License-Identifier: Unlicense OR MIT

/*
Package schedule implements timers for single threaded event loops.

Gesture recognizers and animations schedule their timeouts and frame
ticks through a Scheduler instead of the runtime timers of package
time. Timer callbacks therefore run on the goroutine that drives the
Scheduler, interleaved with input events, and never concurrently with
them.

Queue is a Scheduler in virtual time. The event loop advances it to the
current time before or after processing input, and uses WakeupTime to
know when to wake up next:

	for {
		q.Advance(now())
		if t, ok := q.WakeupTime(); ok {
			// Wait for input or until t.
		}
	}
*/
package schedule

import (
	"time"

	"golang.org/x/exp/slices"
)

// Scheduler runs functions after a delay.
type Scheduler interface {
	// Now returns the current time of the scheduler, relative
	// to an undefined base.
	Now() time.Duration
	// AfterFunc schedules f to run d after Now. A non-positive
	// d schedules f for the next Advance.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a scheduled function.
type Timer interface {
	// Stop prevents the function from running. It reports
	// whether the timer was active. Stopping a stopped or
	// expired Timer is a no-op.
	Stop() bool
	// Active reports whether the timer is scheduled and has
	// not yet run.
	Active() bool
}

// Queue is a Scheduler whose clock only moves when Advance is
// called. The zero value is ready to use, with the clock at 0.
type Queue struct {
	now time.Duration
	seq uint64
	// timers are sorted by deadline, then by sequence.
	timers []*timer
}

type timer struct {
	q   *Queue
	at  time.Duration
	seq uint64
	f   func()
}

// Now implements Scheduler.
func (q *Queue) Now() time.Duration {
	return q.now
}

// AfterFunc implements Scheduler.
func (q *Queue) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	q.seq++
	t := &timer{q: q, at: q.now + d, seq: q.seq, f: f}
	i, _ := slices.BinarySearchFunc(q.timers, t, compareTimers)
	q.timers = slices.Insert(q.timers, i, t)
	return t
}

// Advance moves the clock to now, running every timer due at or
// before now in deadline order. Timers scheduled by the callbacks
// run too if they are due. Advance never moves the clock backwards.
func (q *Queue) Advance(now time.Duration) {
	for len(q.timers) > 0 {
		t := q.timers[0]
		if t.at > now {
			break
		}
		q.timers = slices.Delete(q.timers, 0, 1)
		if t.at > q.now {
			q.now = t.at
		}
		t.q = nil
		t.f()
	}
	if now > q.now {
		q.now = now
	}
}

// WakeupTime returns the deadline of the earliest active timer.
func (q *Queue) WakeupTime() (time.Duration, bool) {
	if len(q.timers) == 0 {
		return 0, false
	}
	return q.timers[0].at, true
}

// Len returns the number of active timers.
func (q *Queue) Len() int {
	return len(q.timers)
}

func (t *timer) Stop() bool {
	q := t.q
	if q == nil {
		return false
	}
	t.q = nil
	if i, ok := slices.BinarySearchFunc(q.timers, t, compareTimers); ok {
		q.timers = slices.Delete(q.timers, i, i+1)
	}
	return true
}

func (t *timer) Active() bool {
	return t.q != nil
}

func compareTimers(a, b *timer) int {
	switch {
	case a.at < b.at:
		return -1
	case a.at > b.at:
		return 1
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	}
	return 0
}
