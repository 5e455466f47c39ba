// motionview - live camera motion overlay with clickable render modes
// and a sensitivity slider. Optional read-only web dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/teslashibe/go-motionview/internal/config"
	"github.com/teslashibe/go-motionview/internal/log"
	"github.com/teslashibe/go-motionview/pkg/camera"
	"github.com/teslashibe/go-motionview/pkg/compositor"
	"github.com/teslashibe/go-motionview/pkg/display"
	"github.com/teslashibe/go-motionview/pkg/motion"
	"github.com/teslashibe/go-motionview/pkg/overlay"
	"github.com/teslashibe/go-motionview/pkg/viewer"
	"github.com/teslashibe/go-motionview/pkg/web"
)

func main() {
	cfg, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "motionview: %v\n", err)
		os.Exit(2)
	}

	log.Init(cfg.LogLevel)

	if err := run(cfg); err != nil {
		log.Error("motionview failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	theme, err := compositor.ParseTheme(cfg.Theme)
	if err != nil {
		return err
	}

	det, err := motion.NewDetector(cfg.Motion)
	if err != nil {
		return err
	}
	defer det.Close()

	src, err := camera.Open(cfg.Camera)
	if err != nil {
		return err
	}

	win := display.NewWindow(cfg.Viewer.Title)
	defer win.Close()

	v := viewer.New(cfg.Viewer, det, compositor.New(theme, overlay.DefaultGeometry()))

	if cfg.Web.Enabled() {
		srv := web.NewServer(cfg.Web)
		srv.StartAsync()
		defer func() {
			if err := srv.Shutdown(); err != nil {
				log.Warn("dashboard shutdown", "error", err)
			}
		}()
		v.Preview = srv
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("capturing", "device", cfg.Camera.DeviceIndex,
		"width", cfg.Camera.Width, "height", cfg.Camera.Height, "session", v.Session())

	if err := v.Run(ctx, src, win); err != nil {
		return err
	}
	log.Info("done", "frames", v.Frames())
	return nil
}

// parseFlags loads the config file and applies command line overrides.
func parseFlags() (config.Config, error) {
	configPath := flag.String("config", "", "Path to a YAML config file")
	device := flag.Int("camera", 0, "Camera device index (overrides MOTIONVIEW_CAMERA)")
	preset := flag.String("preset", "", "Capture preset: "+strings.Join(camera.PresetNames(), ", "))
	webPort := flag.String("web-port", "", "Serve the dashboard on this port (overrides MOTIONVIEW_WEB_PORT)")
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(*configPath)
	if err != nil {
		return cfg, err
	}

	if *preset != "" {
		p := camera.GetPreset(*preset)
		if p == nil {
			return cfg, fmt.Errorf("%w: unknown preset %q", config.ErrInvalidConfig, *preset)
		}
		idx := cfg.Camera.DeviceIndex
		cfg.Camera = *p
		cfg.Camera.DeviceIndex = idx
	}
	if set["camera"] {
		cfg.Camera.DeviceIndex = *device
	}
	if *webPort != "" {
		cfg.Web.Port = *webPort
	}
	if *debug {
		cfg.LogLevel = "debug"
		cfg.Web.AccessLog = true
	}

	return cfg, cfg.Validate()
}
