// Package camera provides the frame source for motionview: capture settings,
// named presets and a gocv-backed device reader.
package camera

import "fmt"

// Config holds capture parameters requested from the device.
// Zero Width/Height/Framerate leave the driver default in place.
type Config struct {
	DeviceIndex int `json:"device_index" yaml:"device_index"` // V4L/AVFoundation device number
	Width       int `json:"width" yaml:"width"`               // Frame width in pixels
	Height      int `json:"height" yaml:"height"`             // Frame height in pixels
	Framerate   int `json:"framerate" yaml:"framerate"`       // Requested FPS
}

// Limits accepted by Validate.
const (
	MaxWidth     = 4096
	MaxHeight    = 2160
	MaxFramerate = 120
)

// DefaultConfig returns the 1280x720 capture used by the overlay.
func DefaultConfig() Config {
	return Config{
		DeviceIndex: 0,
		Width:       1280,
		Height:      720,
		Framerate:   30,
	}
}

// Validate checks if the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.DeviceIndex < 0 {
		errors = append(errors, "device_index must not be negative")
	}
	if c.Width != 0 && (c.Width < 160 || c.Width > MaxWidth) {
		errors = append(errors, fmt.Sprintf("width must be 0 (driver default) or between 160 and %d", MaxWidth))
	}
	if c.Height != 0 && (c.Height < 120 || c.Height > MaxHeight) {
		errors = append(errors, fmt.Sprintf("height must be 0 (driver default) or between 120 and %d", MaxHeight))
	}
	if c.Framerate < 0 || c.Framerate > MaxFramerate {
		errors = append(errors, fmt.Sprintf("framerate must be between 0 and %d", MaxFramerate))
	}

	return errors
}
