// Package render applies the per-pixel look of each overlay mode.
package render

import (
	"github.com/teslashibe/go-motionview/pkg/overlay"
	"gocv.io/x/gocv"
)

// Apply returns a new frame rendered in the given mode. base is never
// modified; the caller owns the result and must Close it.
func Apply(base gocv.Mat, mode overlay.Mode) gocv.Mat {
	switch mode {
	case overlay.ModeNightVision:
		return colormap(base, gocv.ColormapSummer)
	case overlay.ModeThermal:
		return colormap(base, gocv.ColormapJet)
	case overlay.ModeInverted:
		out := gocv.NewMat()
		gocv.BitwiseNot(base, &out)
		return out
	case overlay.ModeOriginal:
		return base.Clone()
	}
	// Values outside the enum render unchanged.
	return base.Clone()
}

func colormap(base gocv.Mat, cm gocv.ColormapTypes) gocv.Mat {
	gray := gocv.NewMat()
	defer gray.Close()
	if base.Channels() == 1 {
		base.CopyTo(&gray)
	} else {
		gocv.CvtColor(base, &gray, gocv.ColorBGRToGray)
	}

	out := gocv.NewMat()
	gocv.ApplyColorMap(gray, &out, cm)
	return out
}
