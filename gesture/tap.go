// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"gioui.org/pageview/f32"
	"gioui.org/pageview/io/pointer"
	"gioui.org/pageview/schedule"
	"gioui.org/pageview/unit"
)

// Tap detects single taps, double taps and tap-and-hold gestures
// of a single finger.
//
// A released tap is not reported until the double tap interval
// has passed without a second tap nearby.
type Tap struct {
	listener      TapListener
	sched         schedule.Scheduler
	panDistance   float32
	pairDistance  float32
	state         State
	candidate     tapCandidate
	pressed       bool
	highlighted   bool
	hasLast       bool
	last          pointer.Event
	down          pointer.Event
	highlight     timer
	doubleTapTime timer
	holdTime      timer
}

// TapListener receives tap gestures.
type TapListener interface {
	SingleTap(e pointer.Event)
	DoubleTap(e pointer.Event)
	TapAndHold(e pointer.Event)
	// HighlightTap activates or deactivates the visual
	// acknowledgement of a touch at pos.
	HighlightTap(pos f32.Point, on bool)
}

type tapCandidate uint8

const (
	noCandidate tapCandidate = iota
	singleTapCandidate
	doubleTapCandidate
)

// NewTap returns a Tap reporting to l. The tap timers are scheduled
// with s and thresholds are converted to pixels with m.
func NewTap(m unit.Metric, s schedule.Scheduler, l TapListener) *Tap {
	return &Tap{
		listener:     l,
		sched:        s,
		panDistance:  m.Px(tapPanDistance),
		pairDistance: m.Px(doubleTapDistance),
	}
}

// State reports the tap state.
func (t *Tap) State() State {
	return t.state
}

// Update the tap with a pressed or moved touch point.
func (t *Tap) Update(e pointer.Event) {
	switch e.Kind {
	case pointer.Press:
		t.press(e)
	case pointer.Move:
		if t.state == NoGesture || !t.pressed {
			return
		}
		if distance(e.ScreenPosition, t.down.ScreenPosition) >= t.panDistance {
			// A moving finger is a pan, not a tap.
			t.Cancel()
		}
	}
}

func (t *Tap) press(e pointer.Event) {
	paired := t.hasLast && t.doubleTapTime.active() &&
		distance(e.ScreenPosition, t.last.ScreenPosition) < t.pairDistance
	// A new touch supersedes a pending single tap.
	t.doubleTapTime.stop()
	t.pressed = true
	t.down = e
	t.state = RecognitionStarted
	t.holdTime.start(t.sched, tapAndHoldTime, t.holdTimeout)
	if paired {
		t.candidate = doubleTapCandidate
		return
	}
	if t.highlighted {
		t.highlighted = false
		t.listener.HighlightTap(t.last.Position, false)
	}
	t.candidate = singleTapCandidate
	t.last = e
	t.hasLast = true
	t.highlight.start(t.sched, highlightDelay, t.highlightTimeout)
	t.doubleTapTime.start(t.sched, doubleTapInterval, t.doubleTapTimeout)
}

// Finish the tap with the released touch point e.
func (t *Tap) Finish(e pointer.Event) {
	t.pressed = false
	t.holdTime.stop()
	if t.state == NoGesture {
		return
	}
	switch t.candidate {
	case singleTapCandidate:
		if t.doubleTapTime.active() {
			// Wait for a second tap, or for the double tap
			// interval to expire.
			t.last = e
			return
		}
		t.listener.SingleTap(t.last)
		t.reset()
	case doubleTapCandidate:
		t.listener.DoubleTap(t.last)
		t.reset()
	}
}

// Cancel any tap in progress, including a pending single tap.
func (t *Tap) Cancel() {
	t.reset()
}

func (t *Tap) highlightTimeout() {
	if t.state == NoGesture || t.highlighted {
		return
	}
	t.highlighted = true
	t.listener.HighlightTap(t.last.Position, true)
}

func (t *Tap) doubleTapTimeout() {
	if t.pressed || !t.hasLast || t.candidate != singleTapCandidate {
		// A finger still down reports the tap when released.
		return
	}
	t.listener.SingleTap(t.last)
	t.reset()
}

func (t *Tap) holdTimeout() {
	if !t.pressed || t.state == NoGesture {
		return
	}
	t.listener.TapAndHold(t.down)
	t.reset()
}

func (t *Tap) reset() {
	t.highlight.stop()
	t.doubleTapTime.stop()
	t.holdTime.stop()
	if t.highlighted {
		t.highlighted = false
		t.listener.HighlightTap(t.last.Position, false)
	}
	t.state = NoGesture
	t.candidate = noCandidate
	t.pressed = false
	t.hasLast = false
	t.last = pointer.Event{}
}
