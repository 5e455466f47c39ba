package motion

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Result carries the foreground mask along with the boxes found in it.
// The caller owns Mask and must Close it.
type Result struct {
	Mask  gocv.Mat
	Boxes []Box
}

// Detector compares frame pairs. It keeps no frame data between calls;
// the only resource it holds is the dilation kernel.
type Detector struct {
	config Config
	kernel gocv.Mat
}

// NewDetector builds a detector with the given pipeline settings.
func NewDetector(cfg Config) (*Detector, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("motion config: %v", errs)
	}
	return &Detector{
		config: cfg,
		kernel: gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3)),
	}, nil
}

// Config returns the pipeline settings.
func (d *Detector) Config() Config {
	return d.config
}

// Detect returns the bounding boxes of every changed region whose contour
// area is at least minArea. No qualifying region yields an empty slice.
func (d *Detector) Detect(previous, current gocv.Mat, minArea int) ([]Box, error) {
	res, err := d.Analyze(previous, current, minArea)
	if err != nil {
		return nil, err
	}
	res.Mask.Close()
	return res.Boxes, nil
}

// Analyze runs the full pipeline: absolute difference, grayscale, blur,
// binary threshold, dilation, external contours, area filter.
func (d *Detector) Analyze(previous, current gocv.Mat, minArea int) (Result, error) {
	if previous.Empty() || current.Empty() {
		return Result{}, ErrEmptyFrame
	}
	if previous.Rows() != current.Rows() || previous.Cols() != current.Cols() ||
		previous.Type() != current.Type() {
		return Result{}, fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch,
			previous.Cols(), previous.Rows(), current.Cols(), current.Rows())
	}

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(previous, current, &diff)

	gray := gocv.NewMat()
	defer gray.Close()
	if diff.Channels() == 1 {
		diff.CopyTo(&gray)
	} else {
		gocv.CvtColor(diff, &gray, gocv.ColorBGRToGray)
	}

	blur := gocv.NewMat()
	defer blur.Close()
	k := d.config.BlurSize
	gocv.GaussianBlur(gray, &blur, image.Pt(k, k), 0, 0, gocv.BorderDefault)

	mask := gocv.NewMat()
	gocv.Threshold(blur, &mask, d.config.BinaryThreshold, 255, gocv.ThresholdBinary)

	for i := 0; i < d.config.DilateIterations; i++ {
		gocv.Dilate(mask, &mask, d.kernel)
	}

	return Result{Mask: mask, Boxes: d.boxes(mask, minArea)}, nil
}

func (d *Detector) boxes(mask gocv.Mat, minArea int) []Box {
	// FindContours may modify its input on older OpenCV builds.
	scratch := mask.Clone()
	defer scratch.Close()

	contours := gocv.FindContours(scratch, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	boxes := make([]Box, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		if gocv.ContourArea(c) < float64(minArea) {
			continue
		}
		boxes = append(boxes, BoxFromRect(gocv.BoundingRect(c)))
	}
	return boxes
}

// Close releases the dilation kernel.
func (d *Detector) Close() error {
	return d.kernel.Close()
}
