// SPDX-License-Identifier: Unlicense OR MIT

package pageview

import (
	"time"

	"gioui.org/pageview/f32"
	"gioui.org/pageview/internal/fling"
	"gioui.org/pageview/internal/tween"
	"gioui.org/pageview/schedule"
	"gioui.org/pageview/unit"
)

// Presenter shows a part of the contents.
type Presenter interface {
	// SetVisibleRect shows the contents with origin, in contents
	// coordinates, at the top left corner of the viewport, scaled
	// by scale.
	SetVisibleRect(origin f32.Point, scale float32)
}

// surface is a flickable view of the contents. Its position is the
// offset of the scaled contents, in viewport pixels.
type surface struct {
	presenter Presenter
	sched     schedule.Scheduler
	metric    unit.Metric
	mover     mover

	viewport f32.Point
	// contents is the size of the contents at scale 1.
	contents f32.Point
	scale    float32
	pos      f32.Point

	dragging bool
	moving   bool
	last     f32.Point

	estX, estY     fling.Extrapolation
	flingX, flingY fling.Animation
	tick           schedule.Timer
}

// mover is notified of user movement of the surface.
type mover interface {
	movementStarted()
	// positionChanged is called for every movement. The
	// trajectory is the movement of the position.
	positionChanged(trajectory f32.Point)
	movementEnded()
}

// flingSlop is the distance a drag must cover to start a fling.
var flingSlop = unit.Dp(3)

func (s *surface) present() {
	s.presenter.SetVisibleRect(s.origin(), s.scale)
}

// origin returns the top left corner of the viewport in contents
// coordinates.
func (s *surface) origin() f32.Point {
	return s.pos.Div(s.scale)
}

// toContents maps a viewport point to contents coordinates.
func (s *surface) toContents(p f32.Point) f32.Point {
	return s.pos.Add(p).Div(s.scale)
}

// fromContents maps a contents point to viewport coordinates.
func (s *surface) fromContents(p f32.Point) f32.Point {
	return p.Mul(s.scale).Sub(s.pos)
}

// visibleRect returns the visible contents rectangle.
func (s *surface) visibleRect() f32.Rectangle {
	return f32.RectAt(s.origin(), s.viewport.Div(s.scale))
}

func (s *surface) setPos(p f32.Point) {
	s.pos = p
	s.present()
}

func (s *surface) setScale(scale float32) {
	s.scale = scale
	s.present()
}

// setOriginAtScale scales the surface and moves the contents point
// p to the top left corner.
func (s *surface) setOriginAtScale(p f32.Point, scale float32) {
	s.scale = scale
	s.pos = p.Mul(scale)
	s.present()
}

// scaleAround scales the surface and keeps the contents point c at
// the same position in the viewport.
func (s *surface) scaleAround(scale float32, c f32.Point) {
	before := s.fromContents(c)
	s.scale = scale
	after := s.fromContents(c)
	s.pos = s.pos.Add(after.Sub(before))
	s.present()
}

// maxPos returns the largest position that keeps the viewport
// within the contents.
func (s *surface) maxPos() f32.Point {
	m := s.contents.Mul(s.scale).Sub(s.viewport)
	return f32.Pt(max(0, m.X), max(0, m.Y))
}

func (s *surface) bound(p f32.Point) f32.Point {
	m := s.maxPos()
	return f32.Pt(min(max(p.X, 0), m.X), min(max(p.Y, 0), m.Y))
}

// flinging reports whether a fling is in progress.
func (s *surface) flinging() bool {
	return s.flingX.Active() || s.flingY.Active()
}

// press starts dragging the surface with a finger at p.
func (s *surface) press(p f32.Point, t time.Duration) {
	s.stopFling()
	s.estX = fling.Extrapolation{}
	s.estY = fling.Extrapolation{}
	s.estX.Sample(t, p.X)
	s.estY.Sample(t, p.Y)
	s.last = p
	s.dragging = true
	s.startMoving()
}

// drag moves the surface with the finger to p.
func (s *surface) drag(p f32.Point, t time.Duration) {
	if !s.dragging {
		return
	}
	s.estX.Sample(t, p.X)
	s.estY.Sample(t, p.Y)
	d := s.last.Sub(p)
	s.last = p
	s.moveBy(d)
}

// release ends dragging with the finger at p. The surface continues
// with a fling if the finger moved fast enough.
func (s *surface) release(p f32.Point, t time.Duration) {
	if !s.dragging {
		return
	}
	s.drag(p, t)
	s.dragging = false
	slop := s.metric.Px(flingSlop)
	// The contents moves opposite the finger.
	if e := s.estX.Estimate(); e.Distance < -slop || e.Distance > slop {
		s.flingX.Start(s.metric, t, -e.Velocity)
	}
	if e := s.estY.Estimate(); e.Distance < -slop || e.Distance > slop {
		s.flingY.Start(s.metric, t, -e.Velocity)
	}
	if !s.flinging() {
		s.stopMoving()
		return
	}
	s.scheduleTick()
}

// cancel stops dragging and flinging without moving the surface.
func (s *surface) cancel() {
	s.dragging = false
	s.stopFling()
	s.stopMoving()
}

func (s *surface) stopFling() {
	s.flingX.Stop()
	s.flingY.Stop()
	if s.tick != nil {
		s.tick.Stop()
		s.tick = nil
	}
}

func (s *surface) scheduleTick() {
	s.tick = s.sched.AfterFunc(tween.FrameInterval, s.step)
}

func (s *surface) step() {
	s.tick = nil
	now := s.sched.Now()
	d := f32.Pt(s.flingX.Tick(now), s.flingY.Tick(now))
	before := s.pos
	s.moveBy(d)
	// Stop at the edges.
	if s.pos.X == before.X {
		s.flingX.Stop()
	}
	if s.pos.Y == before.Y {
		s.flingY.Stop()
	}
	if !s.flinging() {
		s.stopMoving()
		return
	}
	s.scheduleTick()
}

func (s *surface) moveBy(d f32.Point) {
	old := s.pos
	p := s.bound(old.Add(d))
	if p == old {
		return
	}
	s.setPos(p)
	if s.mover != nil {
		s.mover.positionChanged(p.Sub(old))
	}
}

func (s *surface) startMoving() {
	if s.moving {
		return
	}
	s.moving = true
	if s.mover != nil {
		s.mover.movementStarted()
	}
}

func (s *surface) stopMoving() {
	if !s.moving {
		return
	}
	s.moving = false
	if s.mover != nil {
		s.mover.movementEnded()
	}
}
