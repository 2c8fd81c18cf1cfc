// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements device independent units and values.

A Value is a value with a Unit attached.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device. Gesture thresholds such as touch slop
and double tap distances are specified in dps so that a gesture feels
the same on every display.

Pixels, or px, is the unit for display dependent pixels. Their
size vary between platforms and displays. Touch positions are
reported in pixels.

*/
package unit

import (
	"fmt"
	"math"
)

// Value is a value with a unit.
type Value struct {
	V float32
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

// Converter converts Values to pixels.
type Converter interface {
	Px(v Value) float32
}

// Metric converts Values to device-dependent pixels. The zero
// Metric maps 1 dp to 1 px.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
}

const (
	// UnitPx represent device pixels in the resolution of
	// the underlying display.
	UnitPx Unit = iota
	// UnitDp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	UnitDp
)

// Px returns the Value for v device pixels.
func Px(v float32) Value {
	return Value{V: v, U: UnitPx}
}

// Dp returns the Value for v device independent
// pixels.
func Dp(v float32) Value {
	return Value{V: v, U: UnitDp}
}

// Scale returns the value scaled by s.
func (v Value) Scale(s float32) Value {
	v.V *= s
	return v
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitDp:
		return "dp"
	default:
		panic("unknown unit")
	}
}

// Px converts v to device pixels.
func (c Metric) Px(v Value) float32 {
	switch v.U {
	case UnitPx:
		return v.V
	case UnitDp:
		return v.V * c.pxPerDp()
	default:
		panic("unknown unit")
	}
}

// PxToDp converts pixels to a dp Value.
func (c Metric) PxToDp(px float32) Value {
	return Dp(px / c.pxPerDp())
}

// RoundPx converts v to a whole number of device pixels.
func (c Metric) RoundPx(v Value) int {
	return int(math.Round(float64(c.Px(v))))
}

func (c Metric) pxPerDp() float32 {
	if c.PxPerDp == 0 {
		return 1
	}
	return c.PxPerDp
}
