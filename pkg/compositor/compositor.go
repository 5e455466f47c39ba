// Package compositor assembles the displayed frame: motion boxes, the mode
// filter, the sensitivity slider, the mode buttons and the caption.
package compositor

import (
	"fmt"
	"image"

	"github.com/teslashibe/go-motionview/pkg/motion"
	"github.com/teslashibe/go-motionview/pkg/overlay"
	"github.com/teslashibe/go-motionview/pkg/render"
	"gocv.io/x/gocv"
)

// TimestampLayout is the caption time format.
const TimestampLayout = "2006-01-02 15:04:05"

const (
	boxThickness = 2
	font         = gocv.FontHersheySimplex
)

// Compositor draws the overlay with a fixed theme and geometry.
type Compositor struct {
	theme    Theme
	geometry overlay.Geometry
}

// New creates a compositor.
func New(theme Theme, geometry overlay.Geometry) *Compositor {
	return &Compositor{theme: theme, geometry: geometry}
}

// Geometry returns the layout geometry used for buttons and slider.
func (c *Compositor) Geometry() overlay.Geometry {
	return c.geometry
}

// Compose builds the displayed frame from base. The layers are drawn in
// order boxes, mode filter, slider, buttons, caption, so the widgets are
// never recolored by the filter. Compose recomputes the state's clickable
// layout. base is not modified; the caller owns the result.
func (c *Compositor) Compose(base gocv.Mat, boxes []motion.Box, st *overlay.State, timestamp string) gocv.Mat {
	boxed := base.Clone()
	defer boxed.Close()
	for _, b := range boxes {
		gocv.Rectangle(&boxed, b.Rect(), c.theme.Box, boxThickness)
	}

	out := render.Apply(boxed, st.Mode())

	layout := st.Relayout(c.geometry)
	c.drawSlider(&out, layout, st.Sensitivity())
	c.drawButtons(&out, layout)

	caption := fmt.Sprintf("%s | %s", st.Mode(), timestamp)
	gocv.PutText(&out, caption, image.Pt(10, out.Rows()-10), font, 0.6, c.theme.Caption, 2)

	return out
}

func (c *Compositor) drawSlider(dst *gocv.Mat, l overlay.Layout, value int) {
	track := l.Track
	gocv.Rectangle(dst, track, c.theme.SliderTrack, -1)
	if l.Filled > 0 {
		fill := image.Rect(track.Min.X, track.Min.Y, track.Min.X+l.Filled, track.Max.Y)
		gocv.Rectangle(dst, fill, c.theme.SliderFill, -1)
	}
	label := fmt.Sprintf("Sensitivity: %d", value)
	gocv.PutText(dst, label, track.Min.Add(image.Pt(420, 15)), font, 0.5, c.theme.SliderLabel, 1)
}

func (c *Compositor) drawButtons(dst *gocv.Mat, l overlay.Layout) {
	modes := overlay.Modes()
	for _, b := range l.Buttons() {
		fill := c.theme.ButtonInactive
		if b.Active {
			fill = c.theme.ButtonActive
		}
		gocv.Rectangle(dst, b.Rect, fill, -1)
		gocv.PutText(dst, modes[b.Index].String(), b.Rect.Min.Add(image.Pt(10, 22)),
			font, 0.6, c.theme.ButtonText, 2)
	}
}
