package motion

import "errors"

var (
	// ErrEmptyFrame is returned when either input frame has no pixels.
	ErrEmptyFrame = errors.New("motion: empty frame")

	// ErrSizeMismatch is returned when the two frames differ in size or type.
	ErrSizeMismatch = errors.New("motion: frame size mismatch")
)
