// SPDX-License-Identifier: Unlicense OR MIT

package pageview

import (
	"time"

	"gioui.org/pageview/f32"
	"gioui.org/pageview/internal/tween"
	"gioui.org/pageview/schedule"
	"gioui.org/pageview/viewport"
)

// ControllerClient applies the decisions of a viewport.Controller to
// a Presenter and turns gestures into viewport changes.
//
// While an interaction owns the surface, that is while the user pans
// or pinches or a scale animation runs, position and scale changes
// from the controller are not applied. The interaction reports the
// final state to the controller when it ends.
type ControllerClient struct {
	cnf   config
	ctrl  *viewport.Controller
	sched schedule.Scheduler
	surf  surface

	act              activity
	scaleChange      interaction
	scrollChange     interaction
	scaleAnimation   interaction
	touchInteraction interaction

	anim tween.Animation

	// ignoreMoves is true unless the user is moving the surface.
	ignoreMoves bool

	pinchStartScale float32
	lastPinchCenter f32.Point

	scaleStack   []scaleStackItem
	zoomOutScale float32
}

// New returns a ControllerClient and its viewport.Controller. The
// controller sends rendering requests to b, and the visible contents
// is shown through p. Timers and animations run on s.
func New(b viewport.Backend, p Presenter, s schedule.Scheduler, options ...Option) *ControllerClient {
	c := &ControllerClient{
		cnf:             defaultConfig(),
		sched:           s,
		ignoreMoves:     true,
		pinchStartScale: -1,
	}
	for _, o := range options {
		o(&c.cnf)
	}
	c.ctrl = viewport.New(b, c, c.cnf.controller...)
	c.surf = surface{
		presenter: p,
		sched:     s,
		metric:    c.cnf.metric,
		mover:     c,
		scale:     1,
	}
	c.act.page = c.ctrl
	c.scaleChange = interaction{name: "scale", act: &c.act}
	c.scrollChange = interaction{name: "scroll", act: &c.act}
	c.scaleAnimation = interaction{name: "scale animation", act: &c.act}
	c.touchInteraction = interaction{name: "touch", act: &c.act}
	return c
}

// Controller returns the controller of the viewport.
func (c *ControllerClient) Controller() *viewport.Controller {
	return c.ctrl
}

// SetViewportSize sets the size of the viewport.
func (c *ControllerClient) SetViewportSize(size f32.Point) {
	c.surf.viewport = size
	c.ctrl.DidChangeViewportSize(size)
}

// DidCommitLoad resets the viewport for a newly loaded page.
func (c *ControllerClient) DidCommitLoad() {
	c.clearRelativeZoomState()
	c.ctrl.DidCommitLoad()
}

// VisibleContentRect returns the contents rectangle shown in the
// viewport.
func (c *ControllerClient) VisibleContentRect() f32.Rectangle {
	return c.surf.visibleRect()
}

// Scale returns the scale of the surface.
func (c *ControllerClient) Scale() float32 {
	return c.surf.scale
}

// MapToContents maps a point in viewport coordinates to contents
// coordinates.
func (c *ControllerClient) MapToContents(p f32.Point) f32.Point {
	return c.surf.toContents(p)
}

// ScaleAnimationActive reports whether an animated transition is
// running.
func (c *ControllerClient) ScaleAnimationActive() bool {
	return c.anim.Active()
}

// ScrollAnimationActive reports whether the surface is flinging.
func (c *ControllerClient) ScrollAnimationActive() bool {
	return c.surf.flinging()
}

// Moving reports whether the user is dragging or flinging the
// surface.
func (c *ControllerClient) Moving() bool {
	return c.surf.moving
}

// InterruptScaleAnimation stops an animated transition where it is.
func (c *ControllerClient) InterruptScaleAnimation() {
	c.anim.Stop()
}

// TouchBegin is called when the first finger touches the viewport.
func (c *ControllerClient) TouchBegin() {
	c.ctrl.SetHadUserInteraction(true)
	// Keep the page suspended between consecutive flicks.
	if c.ScrollAnimationActive() {
		c.touchInteraction.begin()
	}
}

// TouchEnd is called when the last finger leaves the viewport.
func (c *ControllerClient) TouchEnd() {
	c.touchInteraction.end()
}

// AnimateContentRectVisible animates the surface to show the
// contents rectangle r. It does nothing while another animation
// runs.
func (c *ControllerClient) AnimateContentRectVisible(r f32.Rectangle) {
	if r.Empty() || c.ScaleAnimationActive() || c.ScrollAnimationActive() {
		return
	}
	from := c.VisibleContentRect()
	if r == from {
		c.updateViewportController(f32.Point{}, -1)
		return
	}
	// Start rendering the destination while animating.
	c.ctrl.DidChangeContentsVisibility(r.Min, c.viewportScaleForRect(r), f32.Point{})
	c.scaleAnimation.begin()
	c.anim.Start(c.sched, from, r, c.cnf.scaleAnimation,
		func(r f32.Rectangle) {
			c.surf.setOriginAtScale(r.Min, c.viewportScaleForRect(r))
		},
		func() {
			c.updateViewportController(f32.Point{}, -1)
			c.scaleAnimation.end()
		},
	)
}

// SetViewportPosition implements viewport.Client.
func (c *ControllerClient) SetViewportPosition(pos f32.Point) {
	if c.surfaceBusy() {
		return
	}
	c.surf.setPos(pos.Mul(c.surf.scale))
}

// SetPageScaleFactor implements viewport.Client.
func (c *ControllerClient) SetPageScaleFactor(scale float32) {
	if c.surfaceBusy() {
		return
	}
	c.surf.setOriginAtScale(c.surf.origin(), scale)
}

// DidChangeContentsSize implements viewport.Client.
func (c *ControllerClient) DidChangeContentsSize(size f32.Point) {
	c.surf.contents = size
	if !c.scaleChange.inProgress && !c.scrollChange.inProgress && !c.ScaleAnimationActive() {
		c.setContentsRectToNearestValidBounds()
	}
}

// DidChangeVisibleContents implements viewport.Client.
func (c *ControllerClient) DidChangeVisibleContents() {
	c.surf.present()
}

// DidChangeViewportAttributes implements viewport.Client.
func (c *ControllerClient) DidChangeViewportAttributes() {
	c.clearRelativeZoomState()
}

// DidResumeContent implements viewport.Client.
func (c *ControllerClient) DidResumeContent() {
	// Request the contents around the viewport.
	c.updateViewportController(f32.Point{}, -1)
}

// CancelScrollAnimation implements gesture.PanListener. A fling in
// progress is stopped and the contents moved back to valid bounds.
func (c *ControllerClient) CancelScrollAnimation() {
	if !c.ScrollAnimationActive() {
		return
	}
	c.surf.cancel()
	c.setContentsRectToNearestValidBounds()
}

// PanGestureStarted implements gesture.PanListener.
func (c *ControllerClient) PanGestureStarted(pos f32.Point, t time.Duration) {
	c.surf.press(pos, t)
}

// PanGestureRequestUpdate implements gesture.PanListener.
func (c *ControllerClient) PanGestureRequestUpdate(pos f32.Point, t time.Duration) {
	c.surf.drag(pos, t)
}

// PanGestureEnded implements gesture.PanListener.
func (c *ControllerClient) PanGestureEnded(pos f32.Point, t time.Duration) {
	c.surf.release(pos, t)
}

// PanGestureCancelled implements gesture.PanListener.
func (c *ControllerClient) PanGestureCancelled() {
	// The pan will not be recognized any more, so no fling.
	c.surf.cancel()
}

// PinchGestureStarted implements gesture.PinchListener.
func (c *ControllerClient) PinchGestureStarted(center f32.Point) {
	if !c.ctrl.AllowsUserScaling() {
		return
	}
	c.clearRelativeZoomState()
	c.scaleChange.begin()
	c.lastPinchCenter = center
	c.pinchStartScale = c.surf.scale
}

// PinchGestureRequestUpdate implements gesture.PinchListener. The
// contents is scaled around the pinch center and follows the center
// as it moves.
func (c *ControllerClient) PinchGestureRequestUpdate(center f32.Point, totalScaleFactor float32) {
	if !c.ctrl.AllowsUserScaling() || !c.scaleChange.inProgress {
		return
	}
	// Allow scaling beyond the page bounds while pinching.
	scale := c.ctrl.OuterBoundedViewportScale(c.pinchStartScale * totalScaleFactor)
	c.surf.scaleAround(scale, c.surf.toContents(center))
	d := center.Sub(c.lastPinchCenter)
	c.lastPinchCenter = center
	c.surf.setPos(c.surf.pos.Sub(d))
}

// PinchGestureEnded implements gesture.PinchListener. An over or
// under scaled surface springs back to valid bounds.
func (c *ControllerClient) PinchGestureEnded() {
	if !c.ctrl.AllowsUserScaling() || !c.scaleChange.inProgress {
		return
	}
	c.pinchStartScale = -1
	c.AnimateContentRectVisible(c.nearestValidVisibleContentsRect())
	c.scaleChange.end()
}

// PinchGestureCancelled implements gesture.PinchListener.
func (c *ControllerClient) PinchGestureCancelled() {
	c.pinchStartScale = -1
	c.scaleChange.end()
}

func (c *ControllerClient) movementStarted() {
	c.scrollChange.begin()
	c.ignoreMoves = false
}

func (c *ControllerClient) positionChanged(trajectory f32.Point) {
	if c.ignoreMoves {
		return
	}
	c.updateViewportController(trajectory, -1)
}

func (c *ControllerClient) movementEnded() {
	c.ignoreMoves = true
	c.updateViewportController(f32.Point{}, -1)
	c.scrollChange.end()
}

// surfaceBusy reports whether an interaction owns the surface.
func (c *ControllerClient) surfaceBusy() bool {
	return c.scaleChange.inProgress || c.scrollChange.inProgress || c.ScaleAnimationActive()
}

// updateViewportController reports the visible contents of the
// surface to the controller. A negative scale means the scale of
// the surface.
func (c *ControllerClient) updateViewportController(trajectory f32.Point, scale float32) {
	if scale < 0 {
		scale = c.surf.scale
	}
	c.ctrl.DidChangeContentsVisibility(c.surf.origin(), scale, trajectory)
}

// setContentRectVisiblePositionAtScale shows the contents at pos in
// the top left corner of the viewport, at scale.
func (c *ControllerClient) setContentRectVisiblePositionAtScale(pos f32.Point, scale float32) {
	c.surf.setOriginAtScale(pos, scale)
	c.updateViewportController(f32.Point{}, scale)
}

func (c *ControllerClient) setContentsRectToNearestValidBounds() {
	r := c.nearestValidVisibleContentsRect()
	c.setContentRectVisiblePositionAtScale(r.Min, c.viewportScaleForRect(r))
}

// nearestValidVisibleContentsRect returns the visible contents
// rectangle at the nearest valid scale, keeping the contents at the
// viewport center in place.
func (c *ControllerClient) nearestValidVisibleContentsRect() f32.Rectangle {
	scale := c.ctrl.InnerBoundedViewportScale(c.surf.scale)
	hotspot := c.surf.viewport.Mul(.5)
	pos := c.surf.toContents(hotspot).Sub(hotspot.Div(scale))
	pos = c.ctrl.BoundContentsPositionAtScale(pos, scale)
	return f32.RectAt(pos, c.surf.viewport.Div(scale))
}

func (c *ControllerClient) viewportScaleForRect(r f32.Rectangle) float32 {
	return c.surf.viewport.X / r.Dx()
}
