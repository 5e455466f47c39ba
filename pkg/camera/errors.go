package camera

import "errors"

var (
	// ErrDeviceUnavailable is returned when the capture device cannot be opened.
	ErrDeviceUnavailable = errors.New("camera: device unavailable")

	// ErrEndOfStream is returned when no further frame can be read.
	// A failed read and a finished stream are not distinguished.
	ErrEndOfStream = errors.New("camera: end of stream")
)
