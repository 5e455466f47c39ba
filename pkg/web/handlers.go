package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/teslashibe/go-motionview/pkg/hub"
	"github.com/teslashibe/go-motionview/pkg/overlay"
)

// ModeInfo describes one selectable render mode.
type ModeInfo struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// handleStatus returns the latest snapshot
func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(s.Latest())
}

// handleModes returns the button order
func (s *Server) handleModes(c *fiber.Ctx) error {
	modes := overlay.Modes()
	out := make([]ModeInfo, len(modes))
	for i, m := range modes {
		out[i] = ModeInfo{Index: i, Name: m.String()}
	}
	return c.JSON(out)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":         "ok",
		"status_clients": s.statusHub.ClientCount(),
		"frame_clients":  s.frameHub.ClientCount(),
	})
}

// handleWS attaches a websocket connection to h until it closes.
func (s *Server) handleWS(h *hub.Hub) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		hub.NewClient(h, c).Run()
	}
}
