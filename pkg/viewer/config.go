package viewer

import "time"

// Config holds main loop settings.
type Config struct {
	// PollWait bounds each event poll and paces the loop.
	PollWait time.Duration `yaml:"poll_wait"`

	// Title is the window title.
	Title string `yaml:"title"`
}

// DefaultConfig returns a 10ms poll in a window titled "Motion Detector".
func DefaultConfig() Config {
	return Config{
		PollWait: 10 * time.Millisecond,
		Title:    "Motion Detector",
	}
}

// Validate returns a list of problems, or nil.
func (c *Config) Validate() []string {
	var errors []string
	if c.PollWait < time.Millisecond {
		errors = append(errors, "poll_wait must be at least 1ms")
	}
	if c.Title == "" {
		errors = append(errors, "title must not be empty")
	}
	return errors
}
