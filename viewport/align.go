// SPDX-License-Identifier: Unlicense OR MIT

package viewport

import (
	"math"

	"golang.org/x/image/math/fixed"

	"gioui.org/pageview/f32"
)

// Aligner adjusts committed contents positions, for example to map
// them onto whole device pixels.
type Aligner interface {
	// Align returns the aligned position of pos, in contents
	// coordinates, when shown at the effective scale.
	Align(pos f32.Point, scale float32) f32.Point
}

// DevicePixels aligns positions to whole device pixels, to avoid
// blurry rendering at fractional scales. Positions at integral
// scales are left alone.
type DevicePixels struct{}

func (DevicePixels) Align(pos f32.Point, scale float32) f32.Point {
	if scale <= 0 || scale == float32(math.Trunc(float64(scale))) {
		return pos
	}
	p := fixed.Point26_6{
		X: toFixed(pos.X * scale),
		Y: toFixed(pos.Y * scale),
	}
	return f32.Point{
		X: float32(p.X.Round()) / scale,
		Y: float32(p.Y.Round()) / scale,
	}
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}
