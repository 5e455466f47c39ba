package display

import (
	"time"

	"gocv.io/x/gocv"
)

// Window is a Surface backed by an OpenCV highgui window. Mouse callbacks
// run inside WaitKey on the polling goroutine, so the pending queue needs
// no lock.
type Window struct {
	win     *gocv.Window
	pending []PointerEvent
}

// NewWindow opens a named window and starts collecting pointer events.
func NewWindow(title string) *Window {
	w := &Window{win: gocv.NewWindow(title)}
	w.win.SetMouseHandler(w.onMouse, nil)
	return w
}

func (w *Window) onMouse(event, x, y, _ int, _ interface{}) {
	w.pending = append(w.pending, PointerEvent{Kind: pointerKind(event), X: x, Y: y})
}

// Show displays frame.
func (w *Window) Show(frame gocv.Mat) {
	w.win.IMShow(frame)
}

// Poll pumps the window event loop for up to wait and drains input.
func (w *Window) Poll(wait time.Duration) Events {
	ms := int(wait / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	raw := w.win.WaitKey(ms)

	ev := Events{Key: normalizeKey(raw), Pointer: w.pending}
	w.pending = nil
	return ev
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.win.Close()
}

// normalizeKey keeps the low byte of a key code; no key stays KeyNone.
func normalizeKey(raw int) int {
	if raw < 0 {
		return KeyNone
	}
	return raw & 0xFF
}
