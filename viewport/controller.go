// SPDX-License-Identifier: Unlicense OR MIT

/*
Package viewport implements the scale and position model of a large,
asynchronously rendered contents surface shown through a fixed size
viewport.

The Controller owns the authoritative page scale and contents
position. Requested changes are recorded immediately but only applied
to the Client once the Backend has rendered a frame covering the
destination, so the user never sees unrendered contents.

Positions are in unscaled contents coordinates; sizes of the viewport
are in device independent pixels of the surface.

A Controller is not safe for concurrent use; all methods must be
called from the goroutine driving the user interface.
*/
package viewport

import (
	"gioui.org/pageview/f32"
	"gioui.org/pageview/internal/logger"
)

// Client applies the decisions of a Controller to a visible
// surface.
type Client interface {
	// SetViewportPosition moves the surface to show the contents
	// at pos in its top left corner.
	SetViewportPosition(pos f32.Point)
	// SetPageScaleFactor scales the surface.
	SetPageScaleFactor(scale float32)
	// DidChangeContentsSize is called when a rendered frame has
	// a new contents size.
	DidChangeContentsSize(size f32.Point)
	// DidChangeVisibleContents is called whenever the visible
	// contents rectangle has been sent to the backend.
	DidChangeVisibleContents()
	// DidChangeViewportAttributes is called when the scale
	// bounds have changed.
	DidChangeViewportAttributes()
	// DidResumeContent is called when page activity is resumed.
	DidResumeContent()
}

// Backend renders the contents. It runs asynchronously and reports
// rendered frames through Controller.DidRenderFrame.
type Backend interface {
	// Resize lays out the contents for a new viewport size.
	Resize(size f32.Point)
	// SetVisibleContentsRect requests rendering of the visible
	// contents rectangle r at scale. The trajectory is the
	// direction of movement, for prefetching.
	SetVisibleContentsRect(r f32.Rectangle, scale float32, trajectory f32.Point)
	// ScalePage commits a new page scale with the contents
	// position origin.
	ScalePage(scale float32, origin f32.Point)
	// CommitPageTransition allows the backend to replace the
	// contents of the previous page with the new page.
	CommitPageTransition()
	// SuspendActivity suspends timers and animations of the
	// page.
	SuspendActivity()
	// ResumeActivity resumes timers and animations of the page.
	ResumeActivity()
}

// Controller controls the scale and position of the viewport.
type Controller struct {
	backend     Backend
	client      Client
	aligner     Aligner
	deviceScale float32

	// attrs are the raw attributes declared by the page, with the
	// scale range restricted for pages that are not scalable.
	attrs                  Attributes
	allowsUserScaling      bool
	initiallyFitToViewport bool
	minimumScaleToFit      float32

	contentsSize       f32.Point
	viewportSize       f32.Point
	clientContentsSize f32.Point
	pageScaleFactor    float32
	contentsPosition   f32.Point

	pendingPositionChange bool
	pendingScaleChange    bool
	lastFrameCoveredRect  f32.Rectangle

	hadUserInteraction  bool
	hasSuspendedContent bool
}

// Option configures a Controller.
type Option func(c *Controller)

// WithDeviceScaleFactor sets the number of device pixels per surface
// pixel. The default is 1.
func WithDeviceScaleFactor(s float32) Option {
	return func(c *Controller) {
		if s > 0 {
			c.deviceScale = s
		}
	}
}

// WithAligner aligns every committed contents position with a. By
// default positions are not aligned.
func WithAligner(a Aligner) Option {
	return func(c *Controller) {
		c.aligner = a
	}
}

// New returns a Controller sending rendering requests to b and
// applying its decisions to c.
func New(b Backend, c Client, options ...Option) *Controller {
	ctrl := &Controller{
		backend:                b,
		client:                 c,
		deviceScale:            1,
		attrs:                  defaultAttributes,
		initiallyFitToViewport: true,
		minimumScaleToFit:      1,
		pageScaleFactor:        1,
	}
	for _, o := range options {
		o(ctrl)
	}
	return ctrl
}

// DidChangeViewportSize sets the size of the viewport. Empty sizes
// are ignored.
func (c *Controller) DidChangeViewportSize(size f32.Point) {
	if size.X <= 0 || size.Y <= 0 {
		logger.Get().Debug("viewport: ignoring empty viewport size", "size", size)
		return
	}
	c.viewportSize = size
	c.backend.Resize(size)
}

// DidChangeContentsSize sets the size of the contents at scale 1.
// Empty sizes are ignored.
func (c *Controller) DidChangeContentsSize(size f32.Point) {
	if size.X <= 0 || size.Y <= 0 {
		logger.Get().Debug("viewport: ignoring empty contents size", "size", size)
		return
	}
	c.contentsSize = size
	fitChanged := c.UpdateMinimumScaleToFit(false)
	if c.initiallyFitToViewport {
		c.attrs.InitialScale = c.minimumScaleToFit
		c.attrs.restrictToInitialScale()
	}
	if fitChanged {
		c.client.DidChangeViewportAttributes()
	}
	// A pending position may now be reachable.
	c.syncVisibleContents(f32.Point{})
}

// DidCommitLoad resets the contents state for a newly loaded page.
// The position is reset to the origin once the new page renders.
func (c *Controller) DidCommitLoad() {
	c.lastFrameCoveredRect = f32.Rectangle{}
	c.contentsSize = f32.Point{}
	c.applyPositionAfterRenderingContents(f32.Point{})
}

// DidChangeViewportAttributes replaces the attributes declared by
// the page. Attributes with an empty layout size or an invalid
// scale range are ignored.
func (c *Controller) DidChangeViewportAttributes(a Attributes) {
	if !a.valid() {
		logger.Get().Debug("viewport: ignoring attributes", "attributes", a)
		return
	}
	c.attrs = a
	c.allowsUserScaling = a.UserScalable
	c.initiallyFitToViewport = a.InitialScale < 0
	if !c.initiallyFitToViewport {
		c.attrs.restrictToInitialScale()
	}
	if !c.UpdateMinimumScaleToFit(true) {
		// Without contents the fit scale is unknown, but it must
		// stay within the declared range.
		c.minimumScaleToFit = clamp(c.minimumScaleToFit, c.attrs.MinimumScale, c.attrs.MaximumScale)
	}
	// Re-apply scale and position with the next frame, to position
	// and align the contents consistently with the new attributes.
	c.pendingPositionChange = true
	c.pendingScaleChange = true
	c.client.DidChangeViewportAttributes()
}

// DidRenderFrame is called by the backend for every rendered frame,
// with the contents size and the rectangle of the contents covered
// by the frame. Pending scale changes are applied to the client;
// pending position changes are applied only if the frame covers the
// destination.
func (c *Controller) DidRenderFrame(contentsSize f32.Point, covered f32.Rectangle) {
	if contentsSize != c.clientContentsSize {
		// Animations render frames without changing the contents
		// size.
		c.clientContentsSize = contentsSize
		c.client.DidChangeContentsSize(contentsSize)
	}
	c.lastFrameCoveredRect = covered

	// The scale goes first, so the position is not offset by
	// scaling around the viewport center.
	if c.pendingScaleChange {
		c.pendingScaleChange = false
		c.client.SetPageScaleFactor(c.pageScaleFactor)
		logger.Get().Debug("viewport: committed scale", "scale", c.pageScaleFactor)
		// The position must be aligned again for the new scale.
		c.applyPositionAfterRenderingContents(c.pixelAligned(c.contentsPosition))
		c.backend.ScalePage(c.pageScaleFactor, c.contentsPosition)
	}

	if c.pendingPositionChange && c.VisibleContentsRect().Overlaps(covered) {
		c.pendingPositionChange = false
		if c.contentsSize.X > 0 && c.contentsSize.Y > 0 {
			c.contentsPosition = c.BoundContentsPosition(c.contentsPosition)
		}
		c.client.SetViewportPosition(c.contentsPosition)
		logger.Get().Debug("viewport: committed position", "position", c.contentsPosition)
	}

	c.client.DidChangeVisibleContents()
}

// PageDidRequestScroll moves the viewport to the contents position
// requested by the page. The position is applied immediately if the
// last frame covers it, and deferred otherwise. Requests are ignored
// while the content is suspended.
func (c *Controller) PageDidRequestScroll(pos f32.Point) {
	if c.hasSuspendedContent {
		logger.Get().Debug("viewport: ignoring scroll while suspended", "position", pos)
		return
	}
	bounded := c.BoundContentsPosition(pos)
	if f32.RectAt(bounded, c.VisibleContentsSize()).Overlaps(c.lastFrameCoveredRect) {
		c.contentsPosition = bounded
		c.pendingPositionChange = false
		c.client.SetViewportPosition(bounded)
		c.syncVisibleContents(f32.Point{})
		return
	}
	// Keep the position unbounded; the contents may grow before
	// it is rendered.
	logger.Get().Debug("viewport: deferred scroll", "position", pos)
	c.applyPositionAfterRenderingContents(c.pixelAligned(pos))
}

// PageTransitionViewportReady applies the initial scale of a newly
// loaded page and lets the backend commit the page transition.
func (c *Controller) PageTransitionViewportReady() {
	if c.attrs.LayoutSize.X > 0 && c.attrs.LayoutSize.Y > 0 {
		c.hadUserInteraction = false
		initial := c.attrs.InitialScale
		if c.initiallyFitToViewport {
			initial = c.minimumScaleToFit
		}
		c.applyScaleAfterRenderingContents(c.InnerBoundedViewportScale(initial))
	}
	logger.Get().Info("viewport: page transition committed", "scale", c.pageScaleFactor)
	c.backend.CommitPageTransition()
}

// DidChangeContentsVisibility is called by the client when the
// user or an animation moved or scaled the surface. Values are
// adopted unless a change to them is pending. The trajectory is the
// direction of the movement.
func (c *Controller) DidChangeContentsVisibility(pos f32.Point, scale float32, trajectory f32.Point) {
	if !c.pendingPositionChange {
		c.contentsPosition = pos
	}
	if !c.pendingScaleChange && scale > 0 && !fuzzyEqual(scale, c.pageScaleFactor, scaleEpsilon) {
		c.applyScaleAfterRenderingContents(scale)
	}
	c.syncVisibleContents(trajectory)
}

// SuspendContent suspends the activity of the page. It reports
// whether the page was running.
func (c *Controller) SuspendContent() bool {
	if c.hasSuspendedContent {
		return false
	}
	c.hasSuspendedContent = true
	logger.Get().Debug("viewport: suspended content")
	c.backend.SuspendActivity()
	return true
}

// ResumeContent resumes the activity of the page.
func (c *Controller) ResumeContent() {
	c.client.DidResumeContent()
	if !c.hasSuspendedContent {
		return
	}
	c.hasSuspendedContent = false
	logger.Get().Debug("viewport: resumed content")
	c.backend.ResumeActivity()
}

// UpdateMinimumScaleToFit recomputes the minimum scale that fits the
// contents in the viewport, and reports whether it changed. If the
// user has not zoomed, or the update is user initiated and the page
// was scaled to fit, the page is scaled to the new value; otherwise
// the current scale is bounded by it.
func (c *Controller) UpdateMinimumScaleToFit(userInitiated bool) bool {
	if c.viewportSize.X <= 0 || c.viewportSize.Y <= 0 ||
		c.contentsSize.X <= 0 || c.contentsSize.Y <= 0 {
		return false
	}
	scaledToFit := fuzzyEqual(c.pageScaleFactor, c.minimumScaleToFit, scaleEpsilon)
	fit := minimumScaleForContents(c.attrs, c.viewportSize, c.contentsSize)
	if fit <= 0 || fuzzyEqual(fit, c.minimumScaleToFit, scaleEpsilon) {
		return false
	}
	c.minimumScaleToFit = fit
	if !c.hasSuspendedContent {
		if !c.hadUserInteraction || (userInitiated && scaledToFit) {
			c.applyScaleAfterRenderingContents(fit)
		} else if s := c.InnerBoundedViewportScale(c.pageScaleFactor); !fuzzyEqual(s, c.pageScaleFactor, scaleEpsilon) {
			c.applyScaleAfterRenderingContents(s)
		}
	}
	return true
}

// VisibleContentsSize returns the size of the contents visible in
// the viewport at the current scale.
func (c *Controller) VisibleContentsSize() f32.Point {
	return c.viewportSize.Div(c.pageScaleFactor)
}

// VisibleContentsRect returns the contents rectangle visible in the
// viewport at the current scale and position.
func (c *Controller) VisibleContentsRect() f32.Rectangle {
	return f32.RectAt(c.contentsPosition, c.VisibleContentsSize())
}

// SetHadUserInteraction records whether the user has interacted with
// the page since it was loaded. A page the user has not touched is
// kept scaled to fit.
func (c *Controller) SetHadUserInteraction(v bool) {
	c.hadUserInteraction = v
}

// HadUserInteraction reports whether the user moved or scaled the page since it loaded.
func (c *Controller) HadUserInteraction() bool {
	return c.hadUserInteraction
}

// AllowsUserScaling reports whether the page lets the user change the scale.
func (c *Controller) AllowsUserScaling() bool {
	return c.allowsUserScaling
}

// HasSuspendedContent reports whether the page activity is suspended.
func (c *Controller) HasSuspendedContent() bool {
	return c.hasSuspendedContent
}

// PageScaleFactor returns the current scale, including pending changes.
func (c *Controller) PageScaleFactor() float32 {
	return c.pageScaleFactor
}

// ContentsPosition returns the position of the viewport in contents coordinates.
func (c *Controller) ContentsPosition() f32.Point {
	return c.contentsPosition
}

// ContentsSize returns the size of the rendered contents.
func (c *Controller) ContentsSize() f32.Point {
	return c.contentsSize
}

// ViewportSize returns the size of the viewport in screen pixels.
func (c *Controller) ViewportSize() f32.Point {
	return c.viewportSize
}

// ClientContentsSize returns the contents size last reported to the client.
func (c *Controller) ClientContentsSize() f32.Point {
	return c.clientContentsSize
}

// MinimumScaleToFit returns the scale that fits the contents width to the viewport.
func (c *Controller) MinimumScaleToFit() float32 {
	return c.minimumScaleToFit
}

// MaximumScale returns the largest scale the page allows.
func (c *Controller) MaximumScale() float32 {
	return c.attrs.MaximumScale
}

// PendingPositionChange reports whether a position waits for a rendered frame.
func (c *Controller) PendingPositionChange() bool {
	return c.pendingPositionChange
}

// PendingScaleChange reports whether a scale waits for a rendered frame.
func (c *Controller) PendingScaleChange() bool {
	return c.pendingScaleChange
}

// LastFrameCoveredRect returns the contents area covered by the last rendered frame.
func (c *Controller) LastFrameCoveredRect() f32.Rectangle {
	return c.lastFrameCoveredRect
}

// DeviceScaleFactor returns the number of device pixels per viewport pixel.
func (c *Controller) DeviceScaleFactor() float32 {
	return c.deviceScale
}

// Attributes returns the attributes in effect.
func (c *Controller) Attributes() Attributes {
	return c.attrs
}

func (c *Controller) applyScaleAfterRenderingContents(scale float32) {
	c.pageScaleFactor = scale
	c.pendingScaleChange = true
	logger.Get().Debug("viewport: deferred scale", "scale", scale)
	c.syncVisibleContents(f32.Point{})
}

func (c *Controller) applyPositionAfterRenderingContents(pos f32.Point) {
	c.contentsPosition = pos
	c.pendingPositionChange = true
	c.syncVisibleContents(f32.Point{})
}

// syncVisibleContents sends the visible contents rectangle to the
// backend.
func (c *Controller) syncVisibleContents(trajectory f32.Point) {
	if c.viewportSize.X <= 0 || c.viewportSize.Y <= 0 ||
		c.contentsSize.X <= 0 || c.contentsSize.Y <= 0 {
		return
	}
	r := f32.RectAt(c.BoundContentsPosition(c.contentsPosition), c.VisibleContentsSize())
	r = r.Intersect(f32.Rectangle{Max: c.contentsSize})
	c.backend.SetVisibleContentsRect(r, c.pageScaleFactor, trajectory)
	c.client.DidChangeVisibleContents()
}

func (c *Controller) pixelAligned(pos f32.Point) f32.Point {
	if c.aligner == nil {
		return pos
	}
	return c.aligner.Align(pos, c.pageScaleFactor*c.deviceScale)
}
