// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"math"
	"time"

	"gioui.org/pageview/unit"
)

// Animation simulates a kinetic fling: a point mass started with an
// initial velocity and slowed down by drag.
type Animation struct {
	// Current offset in pixels.
	x float32
	// Initial time.
	t0 time.Duration
	// Initial velocity in pixels pr second.
	v0 float32
}

var (
	// Pixels/second.
	minFlingVelocity = unit.Dp(50)
	maxFlingVelocity = unit.Dp(8000)
)

const (
	thresholdVelocity = 1
	// drag is the deceleration constant k of x''(t) = k*x'(t).
	drag = -4.2
)

// Start a fling given a starting velocity. Returns whether a
// fling was started.
func (f *Animation) Start(c unit.Metric, now time.Duration, velocity float32) bool {
	min := c.Px(minFlingVelocity)
	v := velocity
	if -min <= v && v <= min {
		return false
	}
	max := c.Px(maxFlingVelocity)
	if v > max {
		v = max
	} else if v < -max {
		v = -max
	}
	f.init(now, v)
	return true
}

func (f *Animation) init(now time.Duration, v0 float32) {
	f.t0 = now
	f.v0 = v0
	f.x = 0
}

// Active reports whether the fling is still moving.
func (f *Animation) Active() bool {
	return f.v0 != 0
}

// Stop the fling.
func (f *Animation) Stop() {
	f.v0 = 0
}

// Tick computes and returns a fling distance since
// the last time Tick was called.
func (f *Animation) Tick(now time.Duration) float32 {
	if !f.Active() {
		return 0
	}
	t := now - f.t0
	// The acceleration x''(t) of a point mass with a drag
	// force, f, proportional with velocity, x'(t), is
	// governed by the equation
	//
	// x''(t) = kx'(t)
	//
	// Given the starting position x(0) = 0, the starting
	// velocity x'(0) = v0, the position is then
	// given by
	//
	// x(t) = v0*e^(k*t)/k - v0/k
	//
	ekt := float32(math.Exp(drag * t.Seconds()))
	x := f.v0*ekt/drag - f.v0/drag
	dist := x - f.x
	f.x = x
	v := f.v0 * ekt
	if -thresholdVelocity < v && v < thresholdVelocity {
		f.v0 = 0
	}
	return dist
}
