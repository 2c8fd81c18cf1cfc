// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pageview connects touch gestures and a viewport.Controller to
a scrollable, scalable surface showing a web page.

A ControllerClient applies the decisions of its viewport.Controller
to a Presenter, animates transitions such as zooming to an area, and
turns pan and pinch gestures into changes of the visible contents.
An EventHandler routes the touch frames of the input layer to the
gesture recognizers and the client.

# Event loop

All types in this package are driven by a single goroutine. Timers
run through a schedule.Scheduler, typically a schedule.Queue the event
loop advances with the current time:

	var q schedule.Queue
	c := pageview.New(backend, presenter, &q)
	h := pageview.NewEventHandler(c, page)
	for {
		q.Advance(now())
		switch e := waitEvent(q.WakeupTime()).(type) {
		case pointer.Touch:
			h.DoneWithTouchEvent(e, pageHandled(e))
		case frame:
			c.Controller().DidRenderFrame(e.size, e.covered)
		}
	}

# Interaction suspension

While the user pans, pinches or a scale animation runs, the page is
suspended through viewport.Controller.SuspendContent. The page is
resumed when the last interaction ends.
*/
package pageview
