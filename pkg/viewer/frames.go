package viewer

import "gocv.io/x/gocv"

// framePair owns the two most recent frames. advance hands the current
// frame over to the previous slot; the slots never share a Mat.
type framePair struct {
	previous gocv.Mat
	current  gocv.Mat
}

func (p *framePair) advance(next gocv.Mat) {
	p.previous.Close()
	p.previous = p.current
	p.current = next
}

func (p *framePair) close() {
	p.previous.Close()
	p.current.Close()
}
