// SPDX-License-Identifier: Unlicense OR MIT

package viewport

import (
	"math"

	"golang.org/x/exp/constraints"

	"gioui.org/pageview/f32"
)

const (
	// hardMinimumScale and hardMaximumScale bound the scale
	// even while the user pinches beyond the declared range.
	hardMinimumScale = 0.1
	hardMaximumScale = 10

	// scaleEpsilon is the tolerance for comparing scales.
	scaleEpsilon = 1e-4
)

// clamp bounds v to [lo, hi]. If lo > hi, hi wins.
func clamp[T constraints.Float | constraints.Integer](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// fuzzyEqual reports whether a and b are equal up to a relative
// tolerance of eps.
func fuzzyEqual[T constraints.Float](a, b, eps T) bool {
	return abs(a-b) <= eps*max(abs(a), abs(b))
}

func abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// InnerBoundedViewportScale clamps s to the range allowed by the
// page, [MinimumScaleToFit, maximum scale].
func (c *Controller) InnerBoundedViewportScale(s float32) float32 {
	return clamp(s, c.minimumScaleToFit, c.attrs.MaximumScale)
}

// OuterBoundedViewportScale clamps s to the range the user may
// reach temporarily while pinching. The range extends the inner
// bounds by a factor of 2 in both directions, limited to
// [0.1, 10]. If the user may not change the scale, the outer bounds
// equal the inner bounds.
func (c *Controller) OuterBoundedViewportScale(s float32) float32 {
	if !c.allowsUserScaling {
		return c.InnerBoundedViewportScale(s)
	}
	lo := max(hardMinimumScale, 0.5*c.minimumScaleToFit)
	hi := min(hardMaximumScale, 2*c.attrs.MaximumScale)
	return clamp(s, lo, hi)
}

// BoundContentsPositionAtScale clamps pos such that the visible
// contents at scale stays inside the contents.
func (c *Controller) BoundContentsPositionAtScale(pos f32.Point, scale float32) f32.Point {
	// The visible size is floored to allow aligning the position to
	// device pixels without losing the last pixel of the contents.
	maxX := max(0, c.contentsSize.X-floor(c.viewportSize.X/scale))
	maxY := max(0, c.contentsSize.Y-floor(c.viewportSize.Y/scale))
	return f32.Point{
		X: clamp(pos.X, 0, maxX),
		Y: clamp(pos.Y, 0, maxY),
	}
}

// BoundContentsPosition is like BoundContentsPositionAtScale for the
// current page scale.
func (c *Controller) BoundContentsPosition(pos f32.Point) f32.Point {
	return c.BoundContentsPositionAtScale(pos, c.pageScaleFactor)
}

// minimumScaleForContents returns the scale that fits the width of
// the contents in the viewport, never below the declared minimum
// nor above the declared maximum scale.
func minimumScaleForContents(a Attributes, viewport, contents f32.Point) float32 {
	fit := viewport.X / contents.X
	return min(max(a.MinimumScale, fit), a.MaximumScale)
}

func floor(v float32) float32 {
	return float32(math.Floor(float64(v)))
}
