// Package motion finds regions that changed between two consecutive frames
// using frame differencing.
package motion

import "image"

// Box is an axis-aligned bounding box in frame pixels.
type Box struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// BoxFromRect converts an image rectangle into a Box.
func BoxFromRect(r image.Rectangle) Box {
	return Box{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// Rect returns the box as an image rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}

// Area returns the area of the box.
func (b Box) Area() int {
	return b.W * b.H
}
