package overlay

import (
	"image"
	"math"
)

// RegionKind tells what a clickable region controls.
type RegionKind int

const (
	RegionButton RegionKind = iota
	RegionSlider
)

// Region is one clickable area of the overlay.
// Rect corners are inclusive on both ends, matching what is drawn.
type Region struct {
	Kind   RegionKind
	Index  int  // mode index, buttons only
	Active bool // button shows the active mode
	Rect   image.Rectangle
}

// Contains reports whether p lies inside the region, edges included.
func (r Region) Contains(p image.Point) bool {
	return p.X >= r.Rect.Min.X && p.X <= r.Rect.Max.X &&
		p.Y >= r.Rect.Min.Y && p.Y <= r.Rect.Max.Y
}

// Geometry holds the fixed placement of the button bar and slider.
type Geometry struct {
	ButtonOrigin image.Point
	ButtonWidth  int
	ButtonHeight int

	SliderOrigin image.Point
	SliderWidth  int
	SliderHeight int
}

// DefaultGeometry returns the standard overlay placement.
func DefaultGeometry() Geometry {
	return Geometry{
		ButtonOrigin: image.Pt(0, 40),
		ButtonWidth:  150,
		ButtonHeight: 30,

		SliderOrigin: image.Pt(10, 10),
		SliderWidth:  400,
		SliderHeight: 20,
	}
}

// SliderTrack returns the rectangle of the full slider track.
func (g Geometry) SliderTrack() image.Rectangle {
	return image.Rect(g.SliderOrigin.X, g.SliderOrigin.Y,
		g.SliderOrigin.X+g.SliderWidth, g.SliderOrigin.Y+g.SliderHeight)
}

// Layout is the full set of clickable regions computed by one render pass.
// Buttons come first in mode order, the slider last.
type Layout struct {
	Regions []Region

	// Track is the slider track; Filled is the width of its filled part.
	Track  image.Rectangle
	Filled int
}

// Empty reports whether no render pass has produced regions yet.
func (l Layout) Empty() bool {
	return len(l.Regions) == 0
}

// Buttons returns the button regions in mode order.
func (l Layout) Buttons() []Region {
	var out []Region
	for _, r := range l.Regions {
		if r.Kind == RegionButton {
			out = append(out, r)
		}
	}
	return out
}

// ComputeLayout lays out one button per mode left to right and the slider
// track with a filled proportion of sensitivity/MaxSensitivity.
func ComputeLayout(g Geometry, active Mode, sensitivity int) Layout {
	modes := Modes()
	regions := make([]Region, 0, len(modes)+1)

	for i, m := range modes {
		x1 := g.ButtonOrigin.X + i*g.ButtonWidth
		y1 := g.ButtonOrigin.Y
		regions = append(regions, Region{
			Kind:   RegionButton,
			Index:  i,
			Active: m == active,
			Rect:   image.Rect(x1, y1, x1+g.ButtonWidth, y1+g.ButtonHeight),
		})
	}

	track := g.SliderTrack()
	regions = append(regions, Region{Kind: RegionSlider, Rect: track})

	return Layout{
		Regions: regions,
		Track:   track,
		Filled:  filledWidth(ClampSensitivity(sensitivity), g.SliderWidth),
	}
}

func filledWidth(sensitivity, width int) int {
	return int(float64(sensitivity) / MaxSensitivity * float64(width))
}

// sliderValue maps x on the track linearly onto [0, MaxSensitivity].
func sliderValue(x int, track image.Rectangle) int {
	w := track.Dx()
	if w <= 0 {
		return MinSensitivity
	}
	rel := float64(x-track.Min.X) / float64(w)
	return int(math.Round(rel * MaxSensitivity))
}
