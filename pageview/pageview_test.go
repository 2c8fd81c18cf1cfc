// SPDX-License-Identifier: Unlicense OR MIT

package pageview

import (
	"testing"
	"time"

	"gioui.org/pageview/f32"
	"gioui.org/pageview/io/pointer"
	"gioui.org/pageview/schedule"
	"gioui.org/pageview/viewport"
)

type testBackend struct {
	suspends, resumes int
	commits           int
	visible           f32.Rectangle
}

func (b *testBackend) Resize(f32.Point) {}
func (b *testBackend) SetVisibleContentsRect(r f32.Rectangle, scale float32, trajectory f32.Point) {
	b.visible = r
}
func (b *testBackend) ScalePage(float32, f32.Point) {}
func (b *testBackend) CommitPageTransition()        { b.commits++ }
func (b *testBackend) SuspendActivity()             { b.suspends++ }
func (b *testBackend) ResumeActivity()              { b.resumes++ }

type testPresenter struct {
	origin f32.Point
	scale  float32
}

func (p *testPresenter) SetVisibleRect(origin f32.Point, scale float32) {
	p.origin, p.scale = origin, scale
}

type testPage struct {
	taps, holds, zoomables []pointer.Event
	highlights             []bool
}

func (p *testPage) HandleTap(e pointer.Event)        { p.taps = append(p.taps, e) }
func (p *testPage) HandleTapAndHold(e pointer.Event) { p.holds = append(p.holds, e) }
func (p *testPage) FindZoomableArea(e pointer.Event) { p.zoomables = append(p.zoomables, e) }
func (p *testPage) SetTapHighlight(pos f32.Point, on bool) {
	p.highlights = append(p.highlights, on)
}

type clientTest struct {
	q         schedule.Queue
	backend   testBackend
	presenter testPresenter
	page      testPage
	c         *ControllerClient
	h         *EventHandler
}

var (
	testViewport = f32.Pt(400, 600)
	testContents = f32.Pt(1000, 3000)
)

// newClientTest returns a client showing 1000x3000 contents in a
// 400x600 viewport, scaled to fit at 0.4 with a maximum scale of 4.
func newClientTest(t *testing.T, options ...Option) *clientTest {
	t.Helper()
	ct := new(clientTest)
	ct.c = New(&ct.backend, &ct.presenter, &ct.q, options...)
	ct.h = NewEventHandler(ct.c, &ct.page)
	ct.c.SetViewportSize(testViewport)
	ctrl := ct.c.Controller()
	ctrl.DidChangeContentsSize(testContents)
	ctrl.DidChangeViewportAttributes(viewport.Attributes{
		LayoutSize:   f32.Pt(980, 1470),
		InitialScale: -1,
		MinimumScale: 0.25,
		MaximumScale: 4,
		UserScalable: true,
	})
	ctrl.PageTransitionViewportReady()
	ct.renderAll()
	if got := ct.c.Scale(); got != 0.4 {
		t.Fatalf("got initial scale %v, want 0.4", got)
	}
	return ct
}

// renderAll renders a frame covering the whole contents.
func (ct *clientTest) renderAll() {
	ct.c.Controller().DidRenderFrame(testContents, f32.Rectangle{Max: testContents})
}

func (ct *clientTest) advance(d time.Duration) {
	ct.q.Advance(ct.q.Now() + d)
}

func (ct *clientTest) touch(phase pointer.Phase, handled bool, points ...pointer.Event) {
	at := points[0].Time
	ct.q.Advance(at)
	for i := range points {
		points[i].ScreenPosition = points[i].Position
	}
	ct.h.DoneWithTouchEvent(pointer.Touch{Phase: phase, Time: at, Points: points}, handled)
}

func point(kind pointer.Kind, id pointer.ID, x, y float32, t time.Duration) pointer.Event {
	return pointer.Event{
		Kind:      kind,
		PointerID: id,
		Time:      t,
		Position:  f32.Pt(x, y),
	}
}

func approxEqual(a, b float32) bool {
	d := a - b
	return -1e-3 < d && d < 1e-3
}

func approxEqualPt(a, b f32.Point) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y)
}

type testSuspender struct {
	suspends, resumes int
}

func (s *testSuspender) SuspendContent() bool { s.suspends++; return true }
func (s *testSuspender) ResumeContent()       { s.resumes++ }

func TestInteractionCounter(t *testing.T) {
	var s testSuspender
	a := activity{page: &s}
	scale := interaction{name: "scale", act: &a}
	scroll := interaction{name: "scroll", act: &a}

	scale.begin()
	scale.begin()
	scroll.begin()
	if a.count != 2 || s.suspends != 1 {
		t.Errorf("got count %d suspends %d, want 2 and 1", a.count, s.suspends)
	}
	scale.end()
	scale.end()
	if a.count != 1 || s.resumes != 0 {
		t.Errorf("got count %d resumes %d, want 1 and 0", a.count, s.resumes)
	}
	scroll.end()
	if a.count != 0 || s.resumes != 1 {
		t.Errorf("got count %d resumes %d, want 0 and 1", a.count, s.resumes)
	}
	// Unmatched ends are no-ops.
	scroll.end()
	if a.count != 0 || s.resumes != 1 {
		t.Errorf("unmatched end changed count to %d", a.count)
	}
}

func TestInteractionCounterUnderflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("releasing an idle activity did not panic")
		}
	}()
	a := activity{page: new(testSuspender)}
	a.release()
}

func TestZoomToAreaRoundTrip(t *testing.T) {
	ct := newClientTest(t)
	ct.c.TouchBegin()
	ct.c.TouchEnd()
	area := f32.Rect(100, 200, 280, 300)
	touch := f32.Pt(190, 250)

	ct.c.ZoomToAreaGestureEnded(touch, area)
	if !ct.c.ScaleAnimationActive() {
		t.Fatal("zoom not animated")
	}
	if !ct.c.Controller().HasSuspendedContent() {
		t.Error("page not suspended during the animation")
	}
	ct.advance(time.Second)
	ct.renderAll()
	if got := ct.c.Scale(); got != 2 {
		t.Errorf("got scale %v after zoom in, want 2", got)
	}
	if got, want := ct.c.VisibleContentRect().Min, f32.Pt(90, 100); !approxEqualPt(got, want) {
		t.Errorf("got position %v after zoom in, want %v", got, want)
	}
	if len(ct.c.scaleStack) != 1 {
		t.Errorf("got scale stack %v, want one level", ct.c.scaleStack)
	}

	ct.c.ZoomToAreaGestureEnded(touch, area)
	ct.advance(time.Second)
	ct.renderAll()
	if got := ct.c.Scale(); !approxEqual(got, 0.4) {
		t.Errorf("got scale %v after zooming back, want 0.4", got)
	}
	if got := ct.c.VisibleContentRect().Min; !approxEqualPt(got, f32.Point{}) {
		t.Errorf("got position %v after zooming back, want the origin", got)
	}
	if len(ct.c.scaleStack) != 0 {
		t.Errorf("got scale stack %v, want it empty", ct.c.scaleStack)
	}
	if ct.c.Controller().HasSuspendedContent() {
		t.Error("page still suspended after the animation")
	}
	if ct.backend.suspends != ct.backend.resumes {
		t.Errorf("got %d suspends and %d resumes", ct.backend.suspends, ct.backend.resumes)
	}
}

func TestZoomOutClearsDeeperLevels(t *testing.T) {
	ct := newClientTest(t)
	ct.c.TouchBegin()
	ct.c.ZoomToAreaGestureEnded(f32.Pt(190, 250), f32.Rect(100, 200, 280, 300))
	ct.advance(time.Second)
	ct.renderAll()
	// A narrow area zooms in to the maximum zoom scale.
	ct.c.ZoomToAreaGestureEnded(f32.Pt(210, 275), f32.Rect(150, 250, 270, 300))
	ct.advance(time.Second)
	ct.renderAll()
	if got, want := ct.c.Scale(), float32(2.5); !approxEqual(got, want) {
		t.Fatalf("got scale %v, want %v", got, want)
	}
	if len(ct.c.scaleStack) != 2 {
		t.Fatalf("got scale stack %v, want two levels", ct.c.scaleStack)
	}
	// A wide area zooms out past the level of the first zoom.
	ct.c.ZoomToAreaGestureEnded(f32.Pt(400, 500), f32.Rect(10, 400, 790, 600))
	ct.advance(time.Second)
	if got, want := ct.c.Scale(), float32(0.5); !approxEqual(got, want) {
		t.Errorf("got scale %v, want %v", got, want)
	}
	if len(ct.c.scaleStack) != 1 || ct.c.scaleStack[0].scale != 0.4 {
		t.Errorf("got scale stack %v, want the fit level only", ct.c.scaleStack)
	}
}

func TestZoomBackToFitCentersTouch(t *testing.T) {
	ct := newClientTest(t)
	// Focusing zooms in without a level to return to.
	ct.c.FocusEditableArea(f32.Rect(110, 1000, 112, 1020), f32.Rect(100, 1000, 200, 1030))
	ct.advance(time.Second)
	ct.renderAll()
	if got := ct.c.Scale(); got != 2 || len(ct.c.scaleStack) != 0 {
		t.Fatalf("got scale %v and stack %v, want 2 and no levels", got, ct.c.scaleStack)
	}
	touch := f32.Pt(400, 2000)
	area := f32.Rect(10, 1900, 790, 2100)
	ct.c.ZoomToAreaGestureEnded(touch, area)
	ct.advance(time.Second)
	ct.renderAll()
	if got, want := ct.c.Scale(), float32(0.5); !approxEqual(got, want) {
		t.Fatalf("got scale %v, want %v", got, want)
	}
	if got, want := ct.c.VisibleContentRect().Min, f32.Pt(0, 1400); !approxEqualPt(got, want) {
		t.Errorf("got position %v after zoom out, want %v", got, want)
	}
	// The same area again zooms back to the fit scale, with the
	// touch point centered vertically.
	ct.c.ZoomToAreaGestureEnded(touch, area)
	ct.advance(time.Second)
	ct.renderAll()
	if got, want := ct.c.Scale(), float32(0.4); !approxEqual(got, want) {
		t.Errorf("got scale %v, want %v", got, want)
	}
	if got, want := ct.c.VisibleContentRect().Min, f32.Pt(0, 1250); !approxEqualPt(got, want) {
		t.Errorf("got position %v after zooming back, want %v", got, want)
	}
}

func TestAnimationMutualExclusion(t *testing.T) {
	ct := newClientTest(t)
	first := f32.RectAt(f32.Pt(100, 100), testViewport.Div(2))
	ct.c.AnimateContentRectVisible(first)
	ct.advance(100 * time.Millisecond)
	ct.c.AnimateContentRectVisible(f32.RectAt(f32.Pt(0, 1000), testViewport))
	ct.advance(time.Second)
	if got := ct.c.VisibleContentRect(); !approxEqualPt(got.Min, first.Min) || !approxEqual(ct.c.Scale(), 2) {
		t.Errorf("got visible rect %v at scale %v, want %v at scale 2", got, ct.c.Scale(), first)
	}
	if got := ct.presenter.origin; !approxEqualPt(got, first.Min) {
		t.Errorf("presenter shows %v, want %v", got, first.Min)
	}
}

func TestAnimateToCurrentRect(t *testing.T) {
	ct := newClientTest(t)
	ct.c.AnimateContentRectVisible(ct.c.VisibleContentRect())
	if ct.c.ScaleAnimationActive() {
		t.Error("animation started to the current rectangle")
	}
}

func TestInterruptScaleAnimation(t *testing.T) {
	ct := newClientTest(t)
	ct.c.AnimateContentRectVisible(f32.RectAt(f32.Pt(100, 100), testViewport.Div(2)))
	ct.advance(50 * time.Millisecond)
	ct.c.InterruptScaleAnimation()
	if ct.c.ScaleAnimationActive() {
		t.Error("animation still active")
	}
	if ct.c.Controller().HasSuspendedContent() {
		t.Error("page still suspended")
	}
	if s := ct.c.Scale(); s <= 0.4 || s >= 2 {
		t.Errorf("got scale %v, want a scale between the endpoints", s)
	}
}

func TestPinchSpringBack(t *testing.T) {
	ct := newClientTest(t)
	ct.c.TouchBegin()
	center := f32.Pt(200, 300)
	ct.c.PinchGestureStarted(center)
	if !ct.c.Controller().HasSuspendedContent() {
		t.Error("page not suspended while pinching")
	}
	ct.c.PinchGestureRequestUpdate(center, 0.25)
	// 0.4*0.25 is below the outer bound 0.2.
	if got := ct.c.Scale(); !approxEqual(got, 0.2) {
		t.Errorf("got scale %v while pinching, want 0.2", got)
	}
	ct.c.PinchGestureEnded()
	ct.advance(time.Second)
	if got := ct.c.Scale(); !approxEqual(got, 0.4) {
		t.Errorf("got scale %v after the pinch, want 0.4", got)
	}
	if got := ct.c.VisibleContentRect().Min; !approxEqualPt(got, f32.Point{}) {
		t.Errorf("got position %v after the pinch, want the origin", got)
	}
	if ct.backend.suspends != 1 || ct.backend.resumes != 1 {
		t.Errorf("got %d suspends and %d resumes, want 1 and 1", ct.backend.suspends, ct.backend.resumes)
	}
}

func TestPinchCancelled(t *testing.T) {
	ct := newClientTest(t)
	ct.c.PinchGestureStarted(f32.Pt(200, 300))
	ct.c.PinchGestureRequestUpdate(f32.Pt(200, 300), 2)
	ct.c.PinchGestureCancelled()
	if ct.c.ScaleAnimationActive() {
		t.Error("cancelled pinch animated")
	}
	if ct.c.Controller().HasSuspendedContent() {
		t.Error("page still suspended")
	}
}

func TestPinchNotUserScalable(t *testing.T) {
	ct := newClientTest(t)
	ct.c.Controller().DidChangeViewportAttributes(viewport.Attributes{
		LayoutSize:   f32.Pt(980, 1470),
		InitialScale: 1,
		MinimumScale: 1,
		MaximumScale: 1,
	})
	ct.c.PinchGestureStarted(f32.Pt(200, 300))
	ct.c.PinchGestureRequestUpdate(f32.Pt(200, 300), 2)
	if ct.c.Controller().HasSuspendedContent() {
		t.Error("pinch of a page that is not scalable suspended the page")
	}
}

func TestHandlerPanFling(t *testing.T) {
	ct := newClientTest(t)
	ms := time.Millisecond
	ct.touch(pointer.TouchBegin, false, point(pointer.Press, 0, 200, 400, 0))
	for i, y := range []float32{380, 360, 340, 320} {
		ct.touch(pointer.TouchUpdate, false, point(pointer.Move, 0, 200, y, time.Duration(i+1)*10*ms))
	}
	if !ct.c.Moving() {
		t.Fatal("pan did not move the surface")
	}
	if !ct.c.Controller().HasSuspendedContent() {
		t.Error("page not suspended while panning")
	}
	ct.touch(pointer.TouchEnd, false, point(pointer.Release, 0, 200, 300, 50*ms))
	released := ct.c.VisibleContentRect().Min
	// The drag moved the contents by 80px at scale 0.4.
	if want := f32.Pt(0, 200); !approxEqualPt(released, want) {
		t.Errorf("got position %v after the drag, want %v", released, want)
	}
	if !ct.c.ScrollAnimationActive() {
		t.Fatal("fast pan did not fling")
	}
	ct.advance(3 * time.Second)
	if ct.c.ScrollAnimationActive() || ct.c.Moving() {
		t.Error("fling did not stop")
	}
	if got := ct.c.VisibleContentRect().Min; got.Y <= released.Y {
		t.Errorf("fling moved the contents from %v to %v", released, got)
	}
	if ct.c.Controller().HasSuspendedContent() {
		t.Error("page still suspended after the fling")
	}
	if got := ct.c.Controller().ContentsPosition(); !approxEqualPt(got, ct.c.VisibleContentRect().Min) {
		t.Errorf("controller position %v differs from the surface %v", got, ct.c.VisibleContentRect().Min)
	}
	if len(ct.page.taps) != 0 {
		t.Errorf("pan reported taps %v", ct.page.taps)
	}
}

func TestTouchDuringFling(t *testing.T) {
	ct := newClientTest(t)
	ms := time.Millisecond
	ct.touch(pointer.TouchBegin, false, point(pointer.Press, 0, 200, 400, 0))
	for i, y := range []float32{380, 360, 340, 320} {
		ct.touch(pointer.TouchUpdate, false, point(pointer.Move, 0, 200, y, time.Duration(i+1)*10*ms))
	}
	ct.touch(pointer.TouchEnd, false, point(pointer.Release, 0, 200, 300, 50*ms))
	ct.advance(50 * ms)
	if !ct.c.ScrollAnimationActive() {
		t.Fatal("no fling")
	}
	ct.touch(pointer.TouchBegin, false, point(pointer.Press, 0, 200, 300, 120*ms))
	if ct.c.ScrollAnimationActive() {
		t.Error("touch did not stop the fling")
	}
	if !ct.c.Controller().HasSuspendedContent() {
		t.Error("page resumed while the finger is down")
	}
	ct.touch(pointer.TouchEnd, false, point(pointer.Release, 0, 200, 300, 150*ms))
	if ct.c.Controller().HasSuspendedContent() {
		t.Error("page still suspended after the touch")
	}
}

func TestHandlerSingleTap(t *testing.T) {
	ct := newClientTest(t)
	ct.touch(pointer.TouchBegin, false, point(pointer.Press, 0, 100, 100, 0))
	ct.touch(pointer.TouchEnd, false, point(pointer.Release, 0, 100, 100, 50*time.Millisecond))
	if len(ct.page.taps) != 0 {
		t.Fatal("tap reported before the double tap interval")
	}
	ct.advance(time.Second)
	if len(ct.page.taps) != 1 {
		t.Fatalf("got taps %v, want 1", ct.page.taps)
	}
	// At scale 0.4 the viewport point (100, 100) is (250, 250).
	if got, want := ct.page.taps[0].Position, f32.Pt(250, 250); !approxEqualPt(got, want) {
		t.Errorf("got tap at %v, want %v", got, want)
	}
	if n := len(ct.page.highlights); n != 2 || !ct.page.highlights[0] || ct.page.highlights[1] {
		t.Errorf("got highlights %v, want [true false]", ct.page.highlights)
	}
}

func TestHandlerDoubleTapZooms(t *testing.T) {
	ct := newClientTest(t)
	ms := time.Millisecond
	ct.touch(pointer.TouchBegin, false, point(pointer.Press, 0, 76, 100, 0))
	ct.touch(pointer.TouchEnd, false, point(pointer.Release, 0, 76, 100, 50*ms))
	ct.touch(pointer.TouchBegin, false, point(pointer.Press, 0, 76, 100, 150*ms))
	ct.touch(pointer.TouchEnd, false, point(pointer.Release, 0, 76, 100, 200*ms))
	if len(ct.page.zoomables) != 1 {
		t.Fatalf("got %d zoomable area requests, want 1", len(ct.page.zoomables))
	}
	ct.advance(time.Second)
	if len(ct.page.taps) != 0 {
		t.Errorf("double tap reported taps %v", ct.page.taps)
	}
	target := ct.page.zoomables[0].Position
	ct.h.DidFindZoomableArea(target, f32.Rect(100, 200, 280, 300))
	if !ct.c.ScaleAnimationActive() {
		t.Fatal("zoomable area not zoomed to")
	}
	// Touches are ignored during the animation.
	ct.touch(pointer.TouchBegin, false, point(pointer.Press, 0, 100, 100, ct.q.Now()))
	ct.touch(pointer.TouchEnd, false, point(pointer.Release, 0, 100, 100, ct.q.Now()+10*ms))
	ct.advance(time.Second)
	if got := ct.c.Scale(); got != 2 {
		t.Errorf("got scale %v, want 2", got)
	}
	if len(ct.page.taps) != 0 {
		t.Errorf("tap during the animation reported %v", ct.page.taps)
	}
}

func TestHandledTouchCancelsPan(t *testing.T) {
	ct := newClientTest(t)
	ct.touch(pointer.TouchBegin, false, point(pointer.Press, 0, 200, 400, 0))
	ct.touch(pointer.TouchUpdate, false, point(pointer.Move, 0, 200, 370, 10*time.Millisecond))
	if !ct.c.Moving() {
		t.Fatal("pan not started")
	}
	ct.touch(pointer.TouchUpdate, true, point(pointer.Move, 0, 200, 340, 20*time.Millisecond))
	if ct.c.Moving() || ct.c.ScrollAnimationActive() {
		t.Error("pan continued after the page handled the touch")
	}
	if ct.c.Controller().HasSuspendedContent() {
		t.Error("page still suspended")
	}
}

func TestHandlerPinch(t *testing.T) {
	ct := newClientTest(t)
	ms := time.Millisecond
	ct.touch(pointer.TouchBegin, false, point(pointer.Press, 0, 150, 300, 0))
	ct.touch(pointer.TouchUpdate, false,
		point(pointer.Move, 0, 150, 300, 10*ms), point(pointer.Press, 1, 250, 300, 10*ms))
	ct.touch(pointer.TouchUpdate, false,
		point(pointer.Move, 0, 100, 300, 20*ms), point(pointer.Move, 1, 300, 300, 20*ms))
	ct.touch(pointer.TouchUpdate, false,
		point(pointer.Move, 0, 50, 300, 30*ms), point(pointer.Move, 1, 350, 300, 30*ms))
	if got := ct.c.Scale(); !approxEqual(got, 0.6) {
		t.Errorf("got scale %v while pinching, want 0.6", got)
	}
	ct.touch(pointer.TouchEnd, false,
		point(pointer.Release, 0, 50, 300, 40*ms), point(pointer.Release, 1, 350, 300, 40*ms))
	ct.advance(2 * time.Second)
	if got := ct.c.Scale(); !approxEqual(got, 0.6) {
		t.Errorf("got scale %v after the pinch, want 0.6", got)
	}
	if len(ct.page.holds) != 0 || len(ct.page.taps) != 0 {
		t.Errorf("pinch reported taps %v and holds %v", ct.page.taps, ct.page.holds)
	}
	if ct.c.Controller().HasSuspendedContent() {
		t.Error("page still suspended after the pinch")
	}
}

func TestTwoFingerTouchIsNotTap(t *testing.T) {
	ct := newClientTest(t)
	ms := time.Millisecond
	ct.touch(pointer.TouchBegin, false, point(pointer.Press, 0, 100, 100, 10*ms))
	// The fingers hold still, so nothing pinches.
	ct.touch(pointer.TouchUpdate, false,
		point(pointer.Move, 0, 100, 100, 50*ms), point(pointer.Press, 1, 180, 100, 50*ms))
	ct.touch(pointer.TouchEnd, false,
		point(pointer.Release, 0, 100, 100, 120*ms), point(pointer.Release, 1, 180, 100, 120*ms))
	ct.advance(2 * time.Second)
	if len(ct.page.holds) != 0 || len(ct.page.taps) != 0 {
		t.Errorf("two finger touch reported taps %v and holds %v", ct.page.taps, ct.page.holds)
	}
	for i, on := range ct.page.highlights {
		if on {
			t.Errorf("highlight %d shown for a two finger touch", i)
		}
	}
}

func TestFocusEditableArea(t *testing.T) {
	tests := []struct {
		name        string
		caret, area f32.Rectangle
		want        f32.Point
	}{
		{
			// A narrow field is centered.
			name:  "center",
			caret: f32.Rect(110, 1000, 112, 1020),
			area:  f32.Rect(100, 1000, 200, 1030),
			want:  f32.Pt(50, 865),
		},
		{
			// A wide field keeps 10px right of the caret.
			name:  "caret",
			caret: f32.Rect(280, 1000, 282, 1020),
			area:  f32.Rect(0, 1000, 300, 1030),
			want:  f32.Pt(90, 865),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ct := newClientTest(t)
			ct.c.FocusEditableArea(test.caret, test.area)
			ct.advance(time.Second)
			if got := ct.c.Scale(); got != 2 {
				t.Errorf("got scale %v, want 2", got)
			}
			if got := ct.c.VisibleContentRect().Min; !approxEqualPt(got, test.want) {
				t.Errorf("got position %v, want %v", got, test.want)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	ct := newClientTest(t,
		WithScaleAnimationDuration(0),
		WithEditingScale(3),
		WithControllerOptions(viewport.WithDeviceScaleFactor(1)),
	)
	ct.c.FocusEditableArea(f32.Rect(110, 1000, 112, 1020), f32.Rect(100, 1000, 200, 1030))
	ct.advance(20 * time.Millisecond)
	if ct.c.ScaleAnimationActive() {
		t.Error("zero duration animation still running after a frame")
	}
	if got := ct.c.Scale(); !approxEqual(got, 3) {
		t.Errorf("got scale %v, want 3", got)
	}
}
