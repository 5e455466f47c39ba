// Package config loads motionview settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/teslashibe/go-motionview/pkg/camera"
	"github.com/teslashibe/go-motionview/pkg/compositor"
	"github.com/teslashibe/go-motionview/pkg/motion"
	"github.com/teslashibe/go-motionview/pkg/viewer"
	"github.com/teslashibe/go-motionview/pkg/web"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and Load when a value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Environment variables consulted by ApplyEnv.
const (
	EnvCamera   = "MOTIONVIEW_CAMERA"
	EnvWebPort  = "MOTIONVIEW_WEB_PORT"
	EnvLogLevel = "LOG_LEVEL"
)

// Config is the full motionview configuration.
type Config struct {
	Camera   camera.Config        `yaml:"camera"`
	Motion   motion.Config        `yaml:"motion"`
	Theme    compositor.ThemeSpec `yaml:"theme"`
	Web      web.Config           `yaml:"web"`
	Viewer   viewer.Config        `yaml:"viewer"`
	LogLevel string               `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Camera:   camera.DefaultConfig(),
		Motion:   motion.DefaultConfig(),
		Theme:    compositor.DefaultThemeSpec(),
		Web:      web.DefaultConfig(),
		Viewer:   viewer.DefaultConfig(),
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults, applies environment overrides
// and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from MOTIONVIEW_CAMERA, MOTIONVIEW_WEB_PORT and
// LOG_LEVEL when they are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvCamera); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a device index", ErrInvalidConfig, EnvCamera, v)
		}
		c.Camera.DeviceIndex = idx
	}
	if v := os.Getenv(EnvWebPort); v != "" {
		c.Web.Port = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks every section and joins the problems into one error
// wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	var problems []string
	add := func(section string, errs []string) {
		for _, e := range errs {
			problems = append(problems, section+"."+e)
		}
	}

	add("camera", c.Camera.Validate())
	add("motion", c.Motion.Validate())
	add("web", c.Web.Validate())
	add("viewer", c.Viewer.Validate())

	if _, err := compositor.ParseTheme(c.Theme); err != nil {
		problems = append(problems, "theme: "+err.Error())
	}
	if c.Web.Port != "" {
		if p, err := strconv.Atoi(c.Web.Port); err != nil || p < 1 || p > 65535 {
			problems = append(problems, "web.port must be a number between 1 and 65535")
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("log_level %q is not one of debug, info, warn, error", c.LogLevel))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
