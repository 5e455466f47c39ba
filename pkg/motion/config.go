package motion

// Config holds the tunable parameters of the differencing pipeline.
type Config struct {
	BlurSize         int     `yaml:"blur_size"`         // Gaussian kernel side, odd
	BinaryThreshold  float32 `yaml:"binary_threshold"`  // Intensity cut (0-255) separating motion from noise
	DilateIterations int     `yaml:"dilate_iterations"` // Dilation passes merging nearby fragments
}

// DefaultConfig returns the standard pipeline: 5x5 blur, cut at 20, three
// dilation passes.
func DefaultConfig() Config {
	return Config{
		BlurSize:         5,
		BinaryThreshold:  20,
		DilateIterations: 3,
	}
}

// Validate returns a list of problems, or nil if the config is usable.
func (c *Config) Validate() []string {
	var errors []string
	if c.BlurSize < 1 || c.BlurSize%2 == 0 {
		errors = append(errors, "blur_size must be a positive odd number")
	}
	if c.BinaryThreshold < 0 || c.BinaryThreshold > 255 {
		errors = append(errors, "binary_threshold must be between 0 and 255")
	}
	if c.DilateIterations < 0 {
		errors = append(errors, "dilate_iterations must not be negative")
	}
	return errors
}
