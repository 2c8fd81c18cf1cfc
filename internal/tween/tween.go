// SPDX-License-Identifier: Unlicense OR MIT

// Package tween interpolates rectangles over time.
package tween

import (
	"time"

	"gioui.org/pageview/f32"
	"gioui.org/pageview/schedule"
)

// FrameInterval is the delay between animation ticks.
const FrameInterval = 16 * time.Millisecond

// Animation interpolates between two rectangles with an ease out
// cubic curve. The zero value is an inactive Animation.
type Animation struct {
	sched    schedule.Scheduler
	from, to f32.Rectangle
	start    time.Duration
	duration time.Duration
	value    f32.Rectangle
	onTick   func(f32.Rectangle)
	onDone   func()
	tick     schedule.Timer
	// gen invalidates ticks of a stopped or restarted animation.
	gen uint32
}

// Start the animation from the rectangle from to the rectangle to.
// onTick is called for every frame with the interpolated rectangle,
// the last call with exactly to. onDone is called once when the
// animation completes or is stopped. A running animation is stopped
// first.
func (a *Animation) Start(s schedule.Scheduler, from, to f32.Rectangle, d time.Duration, onTick func(f32.Rectangle), onDone func()) {
	a.Stop()
	a.gen++
	a.sched = s
	a.from, a.to = from, to
	a.value = from
	a.start = s.Now()
	a.duration = d
	a.onTick = onTick
	a.onDone = onDone
	a.schedule()
}

// Active reports whether the animation is running.
func (a *Animation) Active() bool {
	return a.tick != nil
}

// Value returns the most recent interpolated rectangle.
func (a *Animation) Value() f32.Rectangle {
	return a.value
}

// Stop the animation where it is. Stopping an inactive animation is
// a no-op.
func (a *Animation) Stop() {
	if a.tick == nil {
		return
	}
	a.tick.Stop()
	a.finish()
}

func (a *Animation) schedule() {
	gen := a.gen
	a.tick = a.sched.AfterFunc(FrameInterval, func() {
		if a.gen != gen {
			return
		}
		a.step()
	})
}

func (a *Animation) step() {
	var p float32 = 1
	if a.duration > 0 {
		p = float32(a.sched.Now()-a.start) / float32(a.duration)
	}
	gen := a.gen
	if p >= 1 {
		a.value = a.to
		a.onTick(a.value)
		if a.gen == gen && a.tick != nil {
			a.finish()
		}
		return
	}
	a.value = lerp(a.from, a.to, easeOutCubic(p))
	a.onTick(a.value)
	// onTick may have stopped or restarted the animation.
	if a.gen == gen && a.tick != nil {
		a.schedule()
	}
}

func (a *Animation) finish() {
	done := a.onDone
	a.tick = nil
	a.onTick = nil
	a.onDone = nil
	a.gen++
	if done != nil {
		done()
	}
}

func easeOutCubic(p float32) float32 {
	q := 1 - p
	return 1 - q*q*q
}

func lerp(from, to f32.Rectangle, t float32) f32.Rectangle {
	return f32.Rectangle{
		Min: from.Min.Add(to.Min.Sub(from.Min).Mul(t)),
		Max: from.Max.Add(to.Max.Sub(from.Max).Mul(t)),
	}
}
