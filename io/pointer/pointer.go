// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer implements touch point events.

A touch screen reports one Event per finger for every input frame.
The events of a single frame are collected in a Touch, whose Phase
describes the frame as a whole: the first finger going down begins a
touch sequence, the last finger lifting ends it.

Positions are reported twice: Position is in the coordinate system of
the receiving viewport, ScreenPosition is in screen coordinates and is
unaffected by scrolling or scaling of the viewport. Gesture thresholds
are measured in screen coordinates.
*/
package pointer

import (
	"strings"
	"time"

	"gioui.org/pageview/f32"
)

// Event is a touch point event.
type Event struct {
	Kind Kind
	// PointerID is the id for the pointer and can be used
	// to track a particular pointer from Press to
	// Release or Cancel.
	PointerID ID
	// Time is when the event was received. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Position is the coordinates of the event in the local
	// coordinate system of the viewport.
	Position f32.Point
	// ScreenPosition is the coordinates of the event in
	// screen coordinates.
	ScreenPosition f32.Point
}

// Touch is the set of touch points reported in a single input
// frame.
type Touch struct {
	Phase Phase
	// Time is the timestamp of the frame, in the same base as
	// Event.Time.
	Time time.Duration
	// Points are the touch points of the frame, including the
	// ones released in this frame.
	Points []Event
}

type ID uint16

// Kind of an Event.
type Kind uint8

// Phase of a Touch.
type Phase uint8

const (
	// A Cancel event is generated when the current gesture is
	// interrupted by other handlers or the system.
	Cancel Kind = (1 << iota) >> 1
	// Press of a pointer.
	Press
	// Release of a pointer.
	Release
	// Move of a pressed pointer.
	Move
)

const (
	// TouchBegin is the frame where the first touch point
	// is pressed.
	TouchBegin Phase = iota
	// TouchUpdate is any frame between TouchBegin and
	// TouchEnd.
	TouchUpdate
	// TouchEnd is the frame where the last touch point
	// is released.
	TouchEnd
	// TouchCancel is reported when the system takes over the
	// touch sequence.
	TouchCancel
)

// Active returns the points of t that are still pressed, that is
// every point not released in this frame.
func (t Touch) Active() []Event {
	var active []Event
	for _, p := range t.Points {
		if p.Kind != Release {
			active = append(active, p)
		}
	}
	return active
}

func (t Kind) String() string {
	if t == Cancel {
		return "Cancel"
	}
	var buf strings.Builder
	for tt := Kind(1); tt > 0; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Cancel:
		return "Cancel"
	case Move:
		return "Move"
	default:
		panic("unknown Kind")
	}
}

func (p Phase) String() string {
	switch p {
	case TouchBegin:
		return "TouchBegin"
	case TouchUpdate:
		return "TouchUpdate"
	case TouchEnd:
		return "TouchEnd"
	case TouchCancel:
		return "TouchCancel"
	default:
		panic("unknown Phase")
	}
}
