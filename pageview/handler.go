// SPDX-License-Identifier: Unlicense OR MIT

package pageview

import (
	"gioui.org/pageview/f32"
	"gioui.org/pageview/gesture"
	"gioui.org/pageview/io/pointer"
)

// Page receives the taps recognized by an EventHandler. Event
// positions are in contents coordinates.
type Page interface {
	HandleTap(e pointer.Event)
	HandleTapAndHold(e pointer.Event)
	// FindZoomableArea looks up the area to zoom to after a
	// double tap at e. The page answers asynchronously through
	// EventHandler.DidFindZoomableArea.
	FindZoomableArea(e pointer.Event)
	// SetTapHighlight shows or hides the highlight of a tap at
	// pos.
	SetTapHighlight(pos f32.Point, on bool)
}

// EventHandler routes touch frames to the gesture recognizers of a
// ControllerClient. Event times must share the time base of the
// client's scheduler.
type EventHandler struct {
	client *ControllerClient
	page   Page
	pan    *gesture.Pan
	pinch  *gesture.Pinch
	tap    *gesture.Tap
}

// NewEventHandler returns an EventHandler for the viewport of c and
// the page p.
func NewEventHandler(c *ControllerClient, p Page) *EventHandler {
	h := &EventHandler{
		client: c,
		page:   p,
	}
	m := c.cnf.metric
	h.pan = gesture.NewPan(m, c)
	h.pinch = gesture.NewPinch(m, c)
	h.tap = gesture.NewTap(m, c.sched, h)
	return h
}

// DoneWithTouchEvent handles a touch frame after the page has seen
// it. A frame handled by the page cancels the gestures in progress.
func (h *EventHandler) DoneWithTouchEvent(t pointer.Touch, handled bool) {
	if handled || t.Phase == pointer.TouchCancel {
		h.pan.Cancel()
		h.pinch.Cancel()
		if t.Phase != pointer.TouchUpdate {
			h.tap.Cancel()
		}
		return
	}

	switch t.Phase {
	case pointer.TouchBegin:
		h.client.TouchBegin()
	case pointer.TouchEnd:
		h.client.TouchEnd()
	}

	// Gestures wait for the scale animation to finish.
	if h.client.ScaleAnimationActive() {
		return
	}

	// A second finger is never part of a tap.
	if len(t.Points) > 1 {
		h.tap.Cancel()
	}

	active := t.Active()
	switch len(active) {
	case 0:
		if len(t.Points) == 1 {
			released := t.Points[0]
			if h.pan.Recognized() {
				h.pan.Finish(released)
			} else {
				h.pan.Cancel()
				h.tap.Finish(released)
			}
		} else {
			h.pinch.Finish()
		}
		return
	case 1:
		// Bring a pinch back to valid bounds before panning.
		h.pinch.Finish()
		h.pan.Update(active[0])
	case 2:
		h.pan.Cancel()
		h.pinch.Update(active[0], active[1])
	}

	if h.pan.Recognized() || h.pinch.Recognized() || h.client.Moving() {
		h.tap.Cancel()
	} else if len(t.Points) == 1 {
		h.tap.Update(t.Points[0])
	}
}

// DidFindZoomableArea zooms to area, the answer of the page to
// Page.FindZoomableArea. Both target and area are in contents
// coordinates.
func (h *EventHandler) DidFindZoomableArea(target f32.Point, area f32.Rectangle) {
	h.client.ZoomToAreaGestureEnded(target, area)
}

// FocusEditableArea animates the viewport to the focused editable
// area, with the caret rectangle caret.
func (h *EventHandler) FocusEditableArea(caret, area f32.Rectangle) {
	h.client.FocusEditableArea(caret, area)
}

// SingleTap implements gesture.TapListener.
func (h *EventHandler) SingleTap(e pointer.Event) {
	h.page.HandleTap(h.toContents(e))
}

// DoubleTap implements gesture.TapListener.
func (h *EventHandler) DoubleTap(e pointer.Event) {
	h.page.FindZoomableArea(h.toContents(e))
}

// TapAndHold implements gesture.TapListener.
func (h *EventHandler) TapAndHold(e pointer.Event) {
	h.page.HandleTapAndHold(h.toContents(e))
}

// HighlightTap implements gesture.TapListener.
func (h *EventHandler) HighlightTap(pos f32.Point, on bool) {
	h.page.SetTapHighlight(h.client.MapToContents(pos), on)
}

func (h *EventHandler) toContents(e pointer.Event) pointer.Event {
	e.Position = h.client.MapToContents(e.Position)
	return e
}
