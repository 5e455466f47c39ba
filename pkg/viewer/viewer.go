// Package viewer runs the motion overlay loop: read a frame, detect motion,
// compose and show the overlay, poll operator input, advance.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/teslashibe/go-motionview/internal/log"
	"github.com/teslashibe/go-motionview/pkg/camera"
	"github.com/teslashibe/go-motionview/pkg/compositor"
	"github.com/teslashibe/go-motionview/pkg/display"
	"github.com/teslashibe/go-motionview/pkg/motion"
	"github.com/teslashibe/go-motionview/pkg/overlay"
	"github.com/teslashibe/go-motionview/pkg/web"
	"gocv.io/x/gocv"
)

// Detector finds motion between two frames.
type Detector interface {
	Detect(previous, current gocv.Mat, minArea int) ([]motion.Box, error)
}

// Preview receives a copy of every render pass, e.g. the web dashboard.
type Preview interface {
	Publish(snap web.Snapshot)
	WantsFrames() bool
	PublishFrame(frame gocv.Mat) error
}

// Viewer owns the overlay state and drives one capture session.
// All of its methods must be called from a single goroutine.
type Viewer struct {
	config     Config
	detector   Detector
	compositor *compositor.Compositor
	state      *overlay.State
	session    string
	frames     uint64
	log        *slog.Logger

	// Preview, when set, is fed a snapshot after every render pass.
	Preview Preview

	// Clock supplies caption timestamps.
	Clock func() time.Time
}

// New creates a viewer with a fresh overlay state.
func New(cfg Config, det Detector, comp *compositor.Compositor) *Viewer {
	session := uuid.NewString()
	return &Viewer{
		config:     cfg,
		detector:   det,
		compositor: comp,
		state:      overlay.NewState(),
		session:    session,
		log:        log.Component("viewer").With("session", session),
		Clock:      time.Now,
	}
}

// State returns the overlay state.
func (v *Viewer) State() *overlay.State {
	return v.state
}

// Session returns the session id attached to logs and snapshots.
func (v *Viewer) Session() string {
	return v.session
}

// Frames returns how many frames have been shown.
func (v *Viewer) Frames() uint64 {
	return v.frames
}

// Run drives the loop until the quit key, the end of the stream or ctx is
// done. src is closed on every return path. A source that ends, even on the
// seed frames, is a normal termination and returns nil.
func (v *Viewer) Run(ctx context.Context, src camera.Source, surf display.Surface) error {
	defer src.Close()

	pair, ok := v.seed(src)
	if !ok {
		v.log.Warn("source ended before two frames were read")
		return nil
	}
	defer pair.close()

	v.log.Info("session started", "sensitivity", v.state.Sensitivity(), "mode", v.state.Mode().String())

	for {
		if err := ctx.Err(); err != nil {
			v.log.Info("session cancelled", "frames", v.frames)
			return nil
		}

		if err := v.renderPass(pair, surf); err != nil {
			return err
		}

		if quit := v.handle(surf.Poll(v.config.PollWait)); quit {
			v.log.Info("quit requested", "frames", v.frames)
			return nil
		}

		next, err := src.Read()
		if err != nil {
			if !errors.Is(err, camera.ErrEndOfStream) {
				v.log.Warn("frame read failed", "error", err)
			}
			v.log.Info("stream ended", "frames", v.frames)
			return nil
		}
		pair.advance(next)
	}
}

func (v *Viewer) seed(src camera.Source) (*framePair, bool) {
	first, err := src.Read()
	if err != nil {
		return nil, false
	}
	second, err := src.Read()
	if err != nil {
		first.Close()
		return nil, false
	}
	return &framePair{previous: first, current: second}, true
}

// renderPass detects, composes and shows one frame. Composition also
// refreshes the clickable layout used by the following poll.
func (v *Viewer) renderPass(pair *framePair, surf display.Surface) error {
	boxes, err := v.detector.Detect(pair.previous, pair.current, v.state.Sensitivity())
	if err != nil {
		return fmt.Errorf("detect frame %d: %w", v.frames, err)
	}

	ts := v.Clock().Format(compositor.TimestampLayout)
	out := v.compositor.Compose(pair.previous, boxes, v.state, ts)
	defer out.Close()

	surf.Show(out)
	v.frames++
	if len(boxes) > 0 {
		v.log.Debug("motion", "frame", v.frames, "boxes", len(boxes))
	}

	v.publish(out, boxes, ts)
	return nil
}

// handle applies one poll's input. Presses resolve against the layout of the
// last render pass, which is what was on screen when the operator clicked.
func (v *Viewer) handle(ev display.Events) (quit bool) {
	layout := v.state.Layout()
	for _, p := range ev.Presses() {
		in, ok := overlay.Resolve(p.Point(), layout)
		if !ok {
			continue
		}
		v.state.Apply(in)
		v.log.Debug("click", "x", p.X, "y", p.Y, "intent", in.String(),
			"mode", v.state.Mode().String(), "sensitivity", v.state.Sensitivity())
	}

	switch ev.Key {
	case display.KeyQuit:
		return true
	case display.KeyLeft:
		v.state.StepSensitivity(-overlay.SensitivityStep)
		v.log.Debug("sensitivity step", "sensitivity", v.state.Sensitivity())
	case display.KeyRight:
		v.state.StepSensitivity(overlay.SensitivityStep)
		v.log.Debug("sensitivity step", "sensitivity", v.state.Sensitivity())
	}
	return false
}

func (v *Viewer) publish(out gocv.Mat, boxes []motion.Box, ts string) {
	if v.Preview == nil {
		return
	}
	v.Preview.Publish(web.Snapshot{
		Session:     v.session,
		Frame:       v.frames,
		Mode:        v.state.Mode().String(),
		Sensitivity: v.state.Sensitivity(),
		Boxes:       web.BoxesFrom(boxes),
		Timestamp:   ts,
	})
	if !v.Preview.WantsFrames() {
		return
	}
	if err := v.Preview.PublishFrame(out); err != nil {
		v.log.Warn("preview frame dropped", "error", err)
	}
}
