package camera

import (
	"fmt"
	"log/slog"

	"github.com/teslashibe/go-motionview/internal/log"
	"gocv.io/x/gocv"
)

// Source supplies frames in capture order. Each returned Mat is owned by
// the caller, who must Close it.
type Source interface {
	// Read returns the next frame or ErrEndOfStream.
	Read() (gocv.Mat, error)

	// Close releases the device. It is safe to call more than once.
	Close() error
}

// Capture reads frames from a local camera through OpenCV.
type Capture struct {
	dev    *gocv.VideoCapture
	config Config
	closed bool
	log    *slog.Logger
}

// Open opens the device described by cfg and applies its capture settings.
func Open(cfg Config) (*Capture, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("camera config: %v", errs)
	}

	dev, err := gocv.VideoCaptureDevice(cfg.DeviceIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", ErrDeviceUnavailable, cfg.DeviceIndex, err)
	}
	if !dev.IsOpened() {
		dev.Close()
		return nil, fmt.Errorf("%w: device %d not opened", ErrDeviceUnavailable, cfg.DeviceIndex)
	}

	if cfg.Width > 0 {
		dev.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	}
	if cfg.Height > 0 {
		dev.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	}
	if cfg.Framerate > 0 {
		dev.Set(gocv.VideoCaptureFPS, float64(cfg.Framerate))
	}

	c := &Capture{
		dev:    dev,
		config: cfg,
		log:    log.Component("camera").With("device", cfg.DeviceIndex),
	}
	c.log.Info("camera opened",
		"width", int(dev.Get(gocv.VideoCaptureFrameWidth)),
		"height", int(dev.Get(gocv.VideoCaptureFrameHeight)),
		"fps", dev.Get(gocv.VideoCaptureFPS))
	return c, nil
}

// Config returns the settings the capture was opened with.
func (c *Capture) Config() Config {
	return c.config
}

// Read grabs the next frame. There are no retries: any failed read is
// reported as ErrEndOfStream.
func (c *Capture) Read() (gocv.Mat, error) {
	if c.closed {
		return gocv.NewMat(), ErrEndOfStream
	}

	frame := gocv.NewMat()
	if ok := c.dev.Read(&frame); !ok || frame.Empty() {
		frame.Close()
		return gocv.NewMat(), ErrEndOfStream
	}
	return frame, nil
}

// Close releases the device.
func (c *Capture) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.log.Info("camera released")
	return c.dev.Close()
}
