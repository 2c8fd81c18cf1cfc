// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements touch gesture recognizers.

Recognizers accept the touch points of an input frame and detect
higher level actions such as panning, pinching and tapping. Each
recognizer reports to a listener interface as soon as a gesture is
recognized, updated or finished.

Recognizers are not safe for concurrent use. Touch points and timer
callbacks must be delivered on the same goroutine, usually through a
schedule.Queue driven by the event loop.
*/
package gesture

import (
	"time"

	"gioui.org/pageview/f32"
	"gioui.org/pageview/schedule"
	"gioui.org/pageview/unit"
)

// State is the recognition state of a gesture.
type State uint8

const (
	// NoGesture is the default state.
	NoGesture State = iota
	// RecognitionStarted is reported when touch points have
	// been received, but not enough to recognize a gesture.
	RecognitionStarted
	// Recognized is reported while a gesture is in progress.
	Recognized
)

var (
	// panTriggerDistance is the distance a finger must move
	// along either axis before a pan starts.
	panTriggerDistance = unit.Dp(5)
	// pinchTriggerDistance is the change in finger distance
	// that starts a pinch.
	pinchTriggerDistance = unit.Dp(5)
	// tapPanDistance is the distance a finger may move before
	// a tap is abandoned.
	tapPanDistance = unit.Dp(10)
	// doubleTapDistance is the maximum distance between two
	// taps of a double tap.
	doubleTapDistance = unit.Dp(120)
)

const (
	highlightDelay    = 100 * time.Millisecond
	doubleTapInterval = 500 * time.Millisecond
	tapAndHoldTime    = 1000 * time.Millisecond
)

// timer is a restartable schedule.Timer.
type timer struct {
	t schedule.Timer
}

func (t *timer) start(s schedule.Scheduler, d time.Duration, f func()) {
	t.stop()
	t.t = s.AfterFunc(d, f)
}

func (t *timer) stop() {
	if t.t != nil {
		t.t.Stop()
		t.t = nil
	}
}

func (t *timer) active() bool {
	return t.t != nil && t.t.Active()
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func distance(p1, p2 f32.Point) float32 {
	return p1.Sub(p2).Len()
}

func (s State) String() string {
	switch s {
	case NoGesture:
		return "NoGesture"
	case RecognitionStarted:
		return "RecognitionStarted"
	case Recognized:
		return "Recognized"
	default:
		panic("invalid State")
	}
}
