// SPDX-License-Identifier: Unlicense OR MIT

package pageview

import (
	"golang.org/x/exp/slices"

	"gioui.org/pageview/f32"
	"gioui.org/pageview/internal/logger"
)

// scaleStackItem is a zoom level to return to.
type scaleStackItem struct {
	scale float32
	// x is the horizontal contents position at scale.
	x float32
}

type zoomAction uint8

const (
	zoomIn zoomAction = iota
	zoomBack
	zoomOut
	noZoom
)

// zoomEpsilon absorbs differences in scale from pixel alignment.
const zoomEpsilon = 0.01

// ZoomToAreaGestureEnded zooms to make the contents area fill the
// viewport width, typically after a double tap at touchPoint. Both
// are in contents coordinates. Zooming to the same area again zooms
// back out to the previous scale.
func (c *ControllerClient) ZoomToAreaGestureEnded(touchPoint f32.Point, area f32.Rectangle) {
	if area.Empty() || c.ctrl.HasSuspendedContent() {
		return
	}
	dsf := c.ctrl.DeviceScaleFactor()
	endArea := area.Inset(-zoomMargin * dsf)
	viewport := c.surf.viewport
	maxScale := c.cnf.maxZoomScale * dsf
	endScale := c.ctrl.InnerBoundedViewportScale(min(maxScale, viewport.X/endArea.Dx()))
	currentScale := c.surf.scale

	// Fill the viewport width with the area, centered vertically
	// where the user touched.
	hotspot := f32.Pt(endArea.Center().X, touchPoint.Y)
	viewportHotspot := viewport.Mul(.5)
	endPos := c.ctrl.BoundContentsPositionAtScale(hotspot.Sub(viewportHotspot.Div(endScale)), endScale)
	endRect := f32.RectAt(endPos, viewport.Div(endScale))

	action := zoomIn
	switch {
	case len(c.scaleStack) > 0 && fuzzyEqual(endScale, currentScale, zoomEpsilon):
		// Pan to expose more of the area, or zoom back out if
		// the area is already visible.
		cur := c.VisibleContentRect()
		if !cur.Contains(endRect.Intersect(area)) &&
			(abs(endRect.Min.Y-cur.Min.Y) >= minZoomPan || abs(endRect.Min.X-cur.Min.X) >= minZoomPan) {
			action = noZoom
		} else {
			action = zoomBack
		}
	case fuzzyEqual(endScale, c.zoomOutScale, zoomEpsilon):
		action = zoomBack
	case endScale < currentScale:
		action = zoomOut
	}

	switch action {
	case zoomIn:
		c.scaleStack = append(c.scaleStack, scaleStackItem{
			scale: currentScale,
			x:     c.surf.origin().X,
		})
		c.zoomOutScale = endScale
	case zoomBack:
		if len(c.scaleStack) == 0 {
			endScale = c.ctrl.MinimumScaleToFit()
			endPos = c.ctrl.BoundContentsPositionAtScale(f32.Pt(0, hotspot.Y-viewportHotspot.Y/endScale), endScale)
			c.zoomOutScale = 0
		} else {
			last := c.scaleStack[len(c.scaleStack)-1]
			c.scaleStack = slices.Delete(c.scaleStack, len(c.scaleStack)-1, len(c.scaleStack))
			endScale = last.scale
			endPos = f32.Pt(last.x, hotspot.Y-viewportHotspot.Y/endScale)
			endPos = c.ctrl.BoundContentsPositionAtScale(endPos, endScale)
		}
		endRect = f32.RectAt(endPos, viewport.Div(endScale))
	case zoomOut:
		// Zooming back must not zoom in again.
		for n := len(c.scaleStack); n > 0 && c.scaleStack[n-1].scale >= endScale; n-- {
			c.scaleStack = slices.Delete(c.scaleStack, n-1, n)
		}
		c.zoomOutScale = endScale
	}
	logger.Get().Debug("pageview: zoom to area", "action", action, "scale", endScale, "rect", endRect)
	c.AnimateContentRectVisible(endRect)
}

// FocusEditableArea animates the viewport to edit the field area
// with the caret at caret, both in contents coordinates. The field
// is centered if it fits the viewport at the editing scale;
// otherwise the caret is kept clear of the right edge.
func (c *ControllerClient) FocusEditableArea(caret, area f32.Rectangle) {
	dsf := c.ctrl.DeviceScaleFactor()
	scale := c.ctrl.InnerBoundedViewportScale(c.cnf.editingScale * dsf)
	viewport := c.surf.viewport
	border := float32(zoomMargin) * dsf
	var x float32
	if (area.Dx()+border)*scale <= viewport.X {
		x = viewport.X/2 - area.Dx()*scale/2
	} else {
		caretOffset := caret.Min.X - area.Min.X
		x = min(viewport.X-(caretOffset+border)*scale, border*scale)
	}
	hotspot := f32.Pt(area.Min.X, area.Center().Y)
	viewportHotspot := f32.Pt(x, viewport.Y/2)
	pos := c.ctrl.BoundContentsPositionAtScale(hotspot.Sub(viewportHotspot.Div(scale)), scale)
	c.AnimateContentRectVisible(f32.RectAt(pos, viewport.Div(scale)))
}

func (c *ControllerClient) clearRelativeZoomState() {
	c.zoomOutScale = 0
	c.scaleStack = c.scaleStack[:0]
}

func (a zoomAction) String() string {
	switch a {
	case zoomIn:
		return "ZoomIn"
	case zoomBack:
		return "ZoomBack"
	case zoomOut:
		return "ZoomOut"
	case noZoom:
		return "NoZoom"
	default:
		panic("invalid zoomAction")
	}
}

// fuzzyEqual reports whether a and b differ by less than eps.
func fuzzyEqual(a, b, eps float32) bool {
	return abs(a-b) < eps
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
