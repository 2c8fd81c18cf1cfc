// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gioui.org/pageview/pageview"
	"gioui.org/pageview/f32"
	"gioui.org/pageview/io/pointer"
	"gioui.org/pageview/schedule"
	"gioui.org/pageview/viewport"
)

// record is a line of a trace.
type record struct {
	T    float64 `json:"t"`
	Type string  `json:"type"`

	// Size of viewport, contents and frame records.
	W float32 `json:"w"`
	H float32 `json:"h"`

	// Position of scroll and zoomable records.
	X float32 `json:"x"`
	Y float32 `json:"y"`

	Layout   [2]float32 `json:"layout"`
	Initial  float32    `json:"initial"`
	Min      float32    `json:"min"`
	Max      float32    `json:"max"`
	Scalable bool       `json:"scalable"`

	Covered *rect `json:"covered"`
	Area    *rect `json:"area"`
	Caret   *rect `json:"caret"`

	Phase   string       `json:"phase"`
	Points  []touchPoint `json:"points"`
	Handled bool         `json:"handled"`
}

type rect [4]float32

type touchPoint struct {
	ID   pointer.ID `json:"id"`
	Kind string     `json:"kind"`
	X    float32    `json:"x"`
	Y    float32    `json:"y"`
}

// settleTime is how long the player runs timers after the last
// record.
const settleTime = 2 * time.Second

type player struct {
	queue   schedule.Queue
	client  *pageview.ControllerClient
	handler *pageview.EventHandler
	line    int
}

func newPlayer(log *slog.Logger, options ...pageview.Option) *player {
	p := new(player)
	p.client = pageview.New(&backend{log: log}, &presenter{log: log}, &p.queue, options...)
	p.handler = pageview.NewEventHandler(p.client, &page{log: log})
	return p
}

func (p *player) play(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var rec record
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			return fmt.Errorf("line %d: %w", p.line, err)
		}
		p.queue.Advance(time.Duration(rec.T * float64(time.Millisecond)))
		if err := p.apply(rec); err != nil {
			return fmt.Errorf("line %d: %w", p.line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	p.queue.Advance(p.queue.Now() + settleTime)
	return nil
}

func (p *player) apply(rec record) error {
	ctrl := p.client.Controller()
	switch rec.Type {
	case "viewport":
		p.client.SetViewportSize(f32.Pt(rec.W, rec.H))
	case "contents":
		ctrl.DidChangeContentsSize(f32.Pt(rec.W, rec.H))
	case "attributes":
		ctrl.DidChangeViewportAttributes(viewport.Attributes{
			LayoutSize:   f32.Pt(rec.Layout[0], rec.Layout[1]),
			InitialScale: rec.Initial,
			MinimumScale: rec.Min,
			MaximumScale: rec.Max,
			UserScalable: rec.Scalable,
		})
	case "commit":
		p.client.DidCommitLoad()
	case "ready":
		ctrl.PageTransitionViewportReady()
	case "frame":
		covered := f32.Rectangle{Max: f32.Pt(rec.W, rec.H)}
		if rec.Covered != nil {
			covered = rec.Covered.rectangle()
		}
		ctrl.DidRenderFrame(f32.Pt(rec.W, rec.H), covered)
	case "scroll":
		ctrl.PageDidRequestScroll(f32.Pt(rec.X, rec.Y))
	case "touch":
		t, err := rec.touch(p.queue.Now())
		if err != nil {
			return err
		}
		p.handler.DoneWithTouchEvent(t, rec.Handled)
	case "zoomable":
		if rec.Area == nil {
			return errors.New("zoomable record without area")
		}
		p.handler.DidFindZoomableArea(f32.Pt(rec.X, rec.Y), rec.Area.rectangle())
	case "focus":
		if rec.Area == nil || rec.Caret == nil {
			return errors.New("focus record without area or caret")
		}
		p.handler.FocusEditableArea(rec.Caret.rectangle(), rec.Area.rectangle())
	default:
		return fmt.Errorf("unknown record type %q", rec.Type)
	}
	return nil
}

func (rec record) touch(now time.Duration) (pointer.Touch, error) {
	t := pointer.Touch{Time: now}
	switch rec.Phase {
	case "begin":
		t.Phase = pointer.TouchBegin
	case "update":
		t.Phase = pointer.TouchUpdate
	case "end":
		t.Phase = pointer.TouchEnd
	case "cancel":
		t.Phase = pointer.TouchCancel
	default:
		return pointer.Touch{}, fmt.Errorf("invalid touch phase %q", rec.Phase)
	}
	if len(rec.Points) == 0 {
		return pointer.Touch{}, errors.New("touch without points")
	}
	for _, tp := range rec.Points {
		e := pointer.Event{
			PointerID: tp.ID,
			Time:      now,
			Position:  f32.Pt(tp.X, tp.Y),
		}
		// The headless viewport fills the screen.
		e.ScreenPosition = e.Position
		switch tp.Kind {
		case "press":
			e.Kind = pointer.Press
		case "move":
			e.Kind = pointer.Move
		case "release":
			e.Kind = pointer.Release
		default:
			return pointer.Touch{}, fmt.Errorf("invalid touch point kind %q", tp.Kind)
		}
		t.Points = append(t.Points, e)
	}
	return t, nil
}

func (r rect) rectangle() f32.Rectangle {
	return f32.Rect(r[0], r[1], r[2], r[3])
}

// backend is a headless viewport.Backend that renders nothing.
type backend struct {
	log *slog.Logger
}

func (b *backend) Resize(size f32.Point) {
	b.log.Info("resize", "size", size)
}

func (b *backend) SetVisibleContentsRect(r f32.Rectangle, scale float32, trajectory f32.Point) {
	b.log.Info("visible contents", "rect", r, "scale", scale, "trajectory", trajectory)
}

func (b *backend) ScalePage(scale float32, origin f32.Point) {
	b.log.Info("scale page", "scale", scale, "origin", origin)
}

func (b *backend) CommitPageTransition() { b.log.Info("commit page transition") }
func (b *backend) SuspendActivity()      { b.log.Info("suspend") }
func (b *backend) ResumeActivity()       { b.log.Info("resume") }

type presenter struct {
	log *slog.Logger
}

func (p *presenter) SetVisibleRect(origin f32.Point, scale float32) {
	p.log.Info("present", "origin", origin, "scale", scale)
}

type page struct {
	log *slog.Logger
}

func (p *page) HandleTap(e pointer.Event) {
	p.log.Info("tap", "position", e.Position)
}

func (p *page) HandleTapAndHold(e pointer.Event) {
	p.log.Info("tap and hold", "position", e.Position)
}

func (p *page) FindZoomableArea(e pointer.Event) {
	p.log.Info("find zoomable area", "position", e.Position)
}

func (p *page) SetTapHighlight(pos f32.Point, on bool) {
	p.log.Info("tap highlight", "position", pos, "on", on)
}
