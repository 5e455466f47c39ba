package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "motionview.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default: unexpected error %v", err)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Setenv(EnvCamera, "")
	t.Setenv(EnvWebPort, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Camera.Width != 1280 || cfg.Camera.Height != 720 {
		t.Errorf("camera: got %dx%d, want 1280x720", cfg.Camera.Width, cfg.Camera.Height)
	}
	if cfg.Viewer.PollWait != 10*time.Millisecond {
		t.Errorf("poll_wait: got %v, want 10ms", cfg.Viewer.PollWait)
	}
}

func TestLoad_File(t *testing.T) {
	t.Setenv(EnvCamera, "")
	t.Setenv(EnvWebPort, "")
	t.Setenv(EnvLogLevel, "")

	path := writeFile(t, `
camera:
  device_index: 2
  width: 640
  height: 480
motion:
  binary_threshold: 35
viewer:
  poll_wait: 25ms
theme:
  box: "#00ffff"
web:
  port: "8181"
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Camera.DeviceIndex != 2 {
		t.Errorf("device_index: got %d, want 2", cfg.Camera.DeviceIndex)
	}
	if cfg.Camera.Framerate != 30 {
		t.Errorf("framerate: got %d, want default 30", cfg.Camera.Framerate)
	}
	if cfg.Motion.BinaryThreshold != 35 {
		t.Errorf("binary_threshold: got %v, want 35", cfg.Motion.BinaryThreshold)
	}
	if cfg.Motion.BlurSize != 5 {
		t.Errorf("blur_size: got %d, want default 5", cfg.Motion.BlurSize)
	}
	if cfg.Viewer.PollWait != 25*time.Millisecond {
		t.Errorf("poll_wait: got %v, want 25ms", cfg.Viewer.PollWait)
	}
	if cfg.Viewer.Title != "Motion Detector" {
		t.Errorf("title: got %q, want default", cfg.Viewer.Title)
	}
	if cfg.Theme.Box != "#00ffff" {
		t.Errorf("theme.box: got %q, want #00ffff", cfg.Theme.Box)
	}
	if cfg.Web.Port != "8181" || !cfg.Web.Enabled() {
		t.Errorf("web.port: got %q, want 8181", cfg.Web.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level: got %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv(EnvCamera, "3")
	t.Setenv(EnvWebPort, "9090")
	t.Setenv(EnvLogLevel, "warn")

	path := writeFile(t, "camera:\n  device_index: 1\nweb:\n  port: \"8181\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Camera.DeviceIndex != 3 {
		t.Errorf("device_index: got %d, want 3", cfg.Camera.DeviceIndex)
	}
	if cfg.Web.Port != "9090" {
		t.Errorf("web.port: got %q, want 9090", cfg.Web.Port)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log_level: got %q, want warn", cfg.LogLevel)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		body    string
		invalid bool
	}{
		{name: "bad camera env", env: "front", body: "", invalid: true},
		{name: "bad yaml", body: "camera: [", invalid: false},
		{name: "even blur", body: "motion:\n  blur_size: 4\n", invalid: true},
		{name: "bad theme", body: "theme:\n  box: red\n", invalid: true},
		{name: "bad port", body: "web:\n  port: \"http\"\n", invalid: true},
		{name: "bad log level", body: "log_level: loud\n", invalid: true},
		{name: "zero poll wait", body: "viewer:\n  poll_wait: 0s\n", invalid: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvCamera, tc.env)
			t.Setenv(EnvWebPort, "")
			t.Setenv(EnvLogLevel, "")

			_, err := Load(writeFile(t, tc.body))
			if err == nil {
				t.Fatal("Load: expected error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tc.invalid {
				t.Errorf("errors.Is(ErrInvalidConfig): got %v, want %v (%v)", got, tc.invalid, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load: got %v, want os.ErrNotExist", err)
	}
}
