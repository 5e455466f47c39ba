// Package web serves a read-only dashboard mirroring the overlay: the latest
// status snapshot over HTTP and live snapshots and preview frames over
// websockets.
package web

import (
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/teslashibe/go-motionview/internal/log"
	"github.com/teslashibe/go-motionview/pkg/hub"
	"gocv.io/x/gocv"
)

// Config holds dashboard settings.
type Config struct {
	Port         string `yaml:"port"`          // empty disables the dashboard
	PreviewWidth int    `yaml:"preview_width"` // max width of streamed frames
	JPEGQuality  int    `yaml:"jpeg_quality"`  // 1-100
	AccessLog    bool   `yaml:"access_log"`    // log every HTTP request
}

// DefaultConfig returns the dashboard defaults. The port is empty, so the
// dashboard is off unless configured.
func DefaultConfig() Config {
	return Config{
		PreviewWidth: 640,
		JPEGQuality:  75,
	}
}

// Enabled reports whether a port is configured.
func (c Config) Enabled() bool {
	return c.Port != ""
}

// Validate returns a list of problems, or nil.
func (c *Config) Validate() []string {
	var errors []string
	if c.PreviewWidth < 0 {
		errors = append(errors, "preview_width must not be negative")
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		errors = append(errors, "jpeg_quality must be between 1 and 100")
	}
	return errors
}

// Server is the dashboard server.
type Server struct {
	app    *fiber.App
	config Config
	log    *slog.Logger

	latest   Snapshot
	latestMu sync.RWMutex

	statusHub *hub.Hub
	frameHub  *hub.Hub
}

// NewServer creates the dashboard and its routes.
func NewServer(cfg Config) *Server {
	s := &Server{
		config:    cfg,
		log:       log.Component("web"),
		statusHub: hub.New("status"),
		frameHub:  hub.New("frames"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "motionview",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	if cfg.AccessLog {
		app.Use(logger.New())
	}

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/modes", s.handleModes)
	api.Get("/health", s.handleHealth)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/status", websocket.New(s.handleWS(s.statusHub)))
	app.Get("/ws/frames", websocket.New(s.handleWS(s.frameHub)))

	s.app = app
	return s
}

// Start runs the hubs and listens on the configured port. It blocks.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", ":"+s.config.Port)
	if err != nil {
		return fmt.Errorf("web listen: %w", err)
	}
	return s.Serve(ln)
}

// Serve runs the hubs and serves on ln. It blocks.
func (s *Server) Serve(ln net.Listener) error {
	go s.statusHub.Run()
	go s.frameHub.Run()

	s.log.Info("dashboard listening", "addr", ln.Addr().String())
	return s.app.Listener(ln)
}

// StartAsync starts the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			s.log.Error("dashboard stopped", "error", err)
		}
	}()
}

// Publish stores snap as the latest status and broadcasts it.
func (s *Server) Publish(snap Snapshot) {
	s.latestMu.Lock()
	s.latest = snap
	s.latestMu.Unlock()

	if err := s.statusHub.BroadcastJSON(snap); err != nil {
		s.log.Warn("status broadcast failed", "error", err)
	}
}

// Latest returns the most recently published snapshot.
func (s *Server) Latest() Snapshot {
	s.latestMu.RLock()
	defer s.latestMu.RUnlock()
	return s.latest
}

// WantsFrames reports whether any frame client is connected. Encoding is
// skipped otherwise.
func (s *Server) WantsFrames() bool {
	return s.frameHub.ClientCount() > 0
}

// PublishFrame encodes a preview of frame and broadcasts it. frame is only
// read during the call.
func (s *Server) PublishFrame(frame gocv.Mat) error {
	img, err := frame.ToImage()
	if err != nil {
		return fmt.Errorf("preview image: %w", err)
	}
	data, err := EncodePreview(img, s.config.PreviewWidth, s.config.JPEGQuality)
	if err != nil {
		return err
	}
	s.frameHub.BroadcastBinary(data)
	return nil
}

// App exposes the fiber app for in-process requests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Shutdown stops the hubs and the HTTP server.
func (s *Server) Shutdown() error {
	s.statusHub.Stop()
	s.frameHub.Stop()
	return s.app.Shutdown()
}
