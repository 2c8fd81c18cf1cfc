// SPDX-License-Identifier: Unlicense OR MIT

package tween

import (
	"testing"
	"time"

	"gioui.org/pageview/f32"
	"gioui.org/pageview/schedule"
)

func TestAnimationReachesTarget(t *testing.T) {
	var q schedule.Queue
	var a Animation
	from := f32.Rect(0, 0, 400, 600)
	to := f32.Rect(100, 200, 300, 500)
	var ticks []f32.Rectangle
	done := 0
	a.Start(&q, from, to, 250*time.Millisecond, func(r f32.Rectangle) {
		ticks = append(ticks, r)
	}, func() { done++ })
	if !a.Active() {
		t.Fatal("animation is not active after Start")
	}
	q.Advance(time.Second)
	if a.Active() {
		t.Error("animation still active after its duration")
	}
	if done != 1 {
		t.Errorf("got %d done callbacks, want 1", done)
	}
	if len(ticks) == 0 {
		t.Fatal("no ticks")
	}
	if last := ticks[len(ticks)-1]; last != to {
		t.Errorf("got final rectangle %v, want %v", last, to)
	}
	// Ease out: the width shrinks monotonically towards the target.
	prev := from.Dx()
	for i, r := range ticks {
		if r.Dx() > prev {
			t.Errorf("tick %d: width grew from %v to %v", i, prev, r.Dx())
		}
		prev = r.Dx()
	}
}

func TestAnimationStop(t *testing.T) {
	var q schedule.Queue
	var a Animation
	done := 0
	ticks := 0
	a.Start(&q, f32.Rect(0, 0, 10, 10), f32.Rect(0, 0, 20, 20), 250*time.Millisecond,
		func(f32.Rectangle) { ticks++ }, func() { done++ })
	q.Advance(50 * time.Millisecond)
	a.Stop()
	a.Stop()
	if done != 1 {
		t.Errorf("got %d done callbacks, want 1", done)
	}
	n := ticks
	q.Advance(time.Second)
	if ticks != n {
		t.Errorf("stopped animation ticked %d more times", ticks-n)
	}
	if v := a.Value(); v.Dx() <= 10 || v.Dx() >= 20 {
		t.Errorf("stopped animation value %v is not between the endpoints", v)
	}
}

func TestAnimationStopFromTick(t *testing.T) {
	var q schedule.Queue
	var a Animation
	done := 0
	ticks := 0
	a.Start(&q, f32.Rect(0, 0, 10, 10), f32.Rect(0, 0, 20, 20), 250*time.Millisecond,
		func(f32.Rectangle) {
			ticks++
			a.Stop()
		}, func() { done++ })
	q.Advance(time.Second)
	if ticks != 1 || done != 1 {
		t.Errorf("got %d ticks and %d done callbacks, want 1 and 1", ticks, done)
	}
}

func TestEaseOutCubic(t *testing.T) {
	if got := easeOutCubic(0); got != 0 {
		t.Errorf("ease(0) = %v, want 0", got)
	}
	if got := easeOutCubic(1); got != 1 {
		t.Errorf("ease(1) = %v, want 1", got)
	}
	if got := easeOutCubic(.5); got <= .5 {
		t.Errorf("ease(.5) = %v, want more than .5", got)
	}
}
