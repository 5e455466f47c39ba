// Package display shows composed frames and collects keyboard and pointer
// input from the operator.
package display

import (
	"image"
	"time"

	"gocv.io/x/gocv"
)

// Key codes reported by Poll.
const (
	KeyNone  = -1
	KeyQuit  = 'q'
	KeyLeft  = 81 // arrow left on GTK builds, low byte
	KeyRight = 83 // arrow right on GTK builds, low byte
)

// PointerKind classifies a pointer event.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerPress
	PointerRelease
	PointerOther
)

// OpenCV highgui mouse event codes.
const (
	cvEventMouseMove   = 0
	cvEventLButtonDown = 1
	cvEventLButtonUp   = 4
)

func pointerKind(cvEvent int) PointerKind {
	switch cvEvent {
	case cvEventMouseMove:
		return PointerMove
	case cvEventLButtonDown:
		return PointerPress
	case cvEventLButtonUp:
		return PointerRelease
	}
	return PointerOther
}

// PointerEvent is a pointer action at a frame coordinate.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// Point returns the event position.
func (e PointerEvent) Point() image.Point {
	return image.Pt(e.X, e.Y)
}

// Events is what one Poll collected: at most one key and any number of
// pointer events in arrival order.
type Events struct {
	Key     int
	Pointer []PointerEvent
}

// Presses returns only the press events.
func (e Events) Presses() []PointerEvent {
	var out []PointerEvent
	for _, p := range e.Pointer {
		if p.Kind == PointerPress {
			out = append(out, p)
		}
	}
	return out
}

// Surface shows frames and reports operator input.
type Surface interface {
	// Show displays a frame. The surface does not keep frame.
	Show(frame gocv.Mat)

	// Poll waits at most wait for input. The wait also paces the loop.
	Poll(wait time.Duration) Events

	// Close tears the surface down.
	Close() error
}
