package web

import (
	"github.com/teslashibe/go-motionview/pkg/motion"
)

// Box is a detected region as served to dashboard clients.
type Box struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Snapshot is the overlay status after one render pass. It is a copy;
// the dashboard never sees the live overlay state.
type Snapshot struct {
	Session     string `json:"session"`
	Frame       uint64 `json:"frame"`
	Mode        string `json:"mode"`
	Sensitivity int    `json:"sensitivity"`
	Boxes       []Box  `json:"boxes"`
	Timestamp   string `json:"timestamp"`
}

// BoxesFrom converts detector output for a snapshot.
func BoxesFrom(boxes []motion.Box) []Box {
	out := make([]Box, len(boxes))
	for i, b := range boxes {
		out[i] = Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
	}
	return out
}
