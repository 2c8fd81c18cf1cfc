// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"time"

	"gioui.org/pageview/f32"
	"gioui.org/pageview/io/pointer"
	"gioui.org/pageview/unit"
)

// Pan detects single finger pan gestures.
type Pan struct {
	listener PanListener
	trigger  float32
	state    State
	// first is the screen position of the first touch point.
	first f32.Point
	last  pointer.Event
}

// PanListener receives pan gestures. Positions are in viewport
// coordinates.
type PanListener interface {
	// CancelScrollAnimation is called when a finger touches
	// down, to stop any kinetic scrolling in progress.
	CancelScrollAnimation()
	PanGestureStarted(pos f32.Point, t time.Duration)
	PanGestureRequestUpdate(pos f32.Point, t time.Duration)
	PanGestureEnded(pos f32.Point, t time.Duration)
	// PanGestureCancelled follows PanGestureEnded when the pan
	// was interrupted, for example by a second finger. The
	// content may be left outside its valid bounds.
	PanGestureCancelled()
}

// NewPan returns a Pan reporting to l. Thresholds are converted
// to pixels with m.
func NewPan(m unit.Metric, l PanListener) *Pan {
	return &Pan{
		listener: l,
		trigger:  m.Px(panTriggerDistance),
	}
}

// State reports the pan state.
func (p *Pan) State() State {
	return p.state
}

// Recognized reports whether a pan is in progress.
func (p *Pan) Recognized() bool {
	return p.state == Recognized
}

// Update the pan with the single active touch point e. Update reports
// whether the pan consumed the event.
func (p *Pan) Update(e pointer.Event) bool {
	p.last = e
	switch p.state {
	case NoGesture:
		p.state = RecognitionStarted
		p.first = e.ScreenPosition
		p.listener.CancelScrollAnimation()
		return false
	case RecognitionStarted:
		d := e.ScreenPosition.Sub(p.first)
		if abs(d.X) < p.trigger && abs(d.Y) < p.trigger {
			return false
		}
		p.state = Recognized
		p.listener.PanGestureStarted(e.Position, e.Time)
		return true
	case Recognized:
		p.listener.PanGestureRequestUpdate(e.Position, e.Time)
		return true
	default:
		panic("invalid State")
	}
}

// Finish the pan with the released touch point e.
func (p *Pan) Finish(e pointer.Event) {
	if p.state == NoGesture {
		return
	}
	p.listener.PanGestureEnded(e.Position, e.Time)
	p.reset()
}

// Cancel the pan. A pan in progress ends at the last known
// position.
func (p *Pan) Cancel() {
	if p.state == NoGesture {
		return
	}
	p.listener.PanGestureEnded(p.last.Position, p.last.Time)
	p.listener.PanGestureCancelled()
	p.reset()
}

func (p *Pan) reset() {
	p.state = NoGesture
	p.first = f32.Point{}
	p.last = pointer.Event{}
}
