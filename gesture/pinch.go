// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"gioui.org/pageview/f32"
	"gioui.org/pageview/io/pointer"
	"gioui.org/pageview/unit"
)

// Pinch detects two finger pinch gestures.
type Pinch struct {
	listener PinchListener
	trigger  float32
	state    State
	// initialDistance is the screen distance between the fingers
	// that corresponds to a scale factor of 1.
	initialDistance float32
}

// PinchListener receives pinch gestures. The center of a pinch is
// the midpoint of the two fingers in viewport coordinates.
type PinchListener interface {
	PinchGestureStarted(center f32.Point)
	// PinchGestureRequestUpdate reports the scale factor
	// relative to the finger distance when the pinch started.
	PinchGestureRequestUpdate(center f32.Point, totalScaleFactor float32)
	PinchGestureEnded()
	PinchGestureCancelled()
}

// NewPinch returns a Pinch reporting to l. Thresholds are converted
// to pixels with m.
func NewPinch(m unit.Metric, l PinchListener) *Pinch {
	return &Pinch{
		listener: l,
		trigger:  m.Px(pinchTriggerDistance),
	}
}

// State reports the pinch state.
func (p *Pinch) State() State {
	return p.state
}

// Recognized reports whether a pinch is in progress.
func (p *Pinch) Recognized() bool {
	return p.state == Recognized
}

// Update the pinch with the two active touch points. Update reports
// whether the pinch consumed the points.
func (p *Pinch) Update(p1, p2 pointer.Event) bool {
	d := distance(p1.ScreenPosition, p2.ScreenPosition)
	switch p.state {
	case NoGesture:
		p.initialDistance = d
		p.state = RecognitionStarted
		return false
	case RecognitionStarted:
		if abs(d-p.initialDistance) < p.trigger {
			return false
		}
		p.state = Recognized
		p.listener.PinchGestureStarted(center(p1, p2))
		// Measure the scale from the current distance so the
		// content does not jump by the unconsumed movement.
		p.initialDistance = d
	}
	if p.initialDistance == 0 {
		return true
	}
	p.listener.PinchGestureRequestUpdate(center(p1, p2), d/p.initialDistance)
	return true
}

// Finish the pinch after a finger lifted.
func (p *Pinch) Finish() {
	if p.state == Recognized {
		p.listener.PinchGestureEnded()
	}
	p.reset()
}

// Cancel the pinch.
func (p *Pinch) Cancel() {
	if p.state == Recognized {
		p.listener.PinchGestureCancelled()
	}
	p.reset()
}

func (p *Pinch) reset() {
	p.state = NoGesture
	p.initialDistance = 0
}

func center(p1, p2 pointer.Event) f32.Point {
	return p1.Position.Add(p2.Position).Mul(.5)
}
