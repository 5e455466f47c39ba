package overlay

// Sensitivity limits. The threshold is an opaque contour-area scalar.
const (
	MinSensitivity     = 1
	MaxSensitivity     = 30000
	DefaultSensitivity = 10000
	SensitivityStep    = 1000
)

// ClampSensitivity forces v into [MinSensitivity, MaxSensitivity].
func ClampSensitivity(v int) int {
	if v < MinSensitivity {
		return MinSensitivity
	}
	if v > MaxSensitivity {
		return MaxSensitivity
	}
	return v
}

// State is the overlay state owned by the main loop. It is not safe for
// concurrent use; the loop reads and mutates it from a single goroutine.
type State struct {
	mode        Mode
	sensitivity int
	layout      Layout
}

// NewState returns the startup state: Original mode, default sensitivity
// and an empty layout.
func NewState() *State {
	return &State{
		mode:        ModeOriginal,
		sensitivity: DefaultSensitivity,
	}
}

// Mode returns the active render mode.
func (s *State) Mode() Mode { return s.mode }

// Sensitivity returns the current area threshold.
func (s *State) Sensitivity() int { return s.sensitivity }

// Layout returns the layout computed by the most recent render pass.
func (s *State) Layout() Layout { return s.layout }

// SelectMode activates Modes()[i]. Out of range indices leave the state
// untouched and return false.
func (s *State) SelectMode(i int) bool {
	modes := Modes()
	if i < 0 || i >= len(modes) {
		return false
	}
	s.mode = modes[i]
	return true
}

// SetSensitivity stores v clamped into the valid range.
func (s *State) SetSensitivity(v int) {
	s.sensitivity = ClampSensitivity(v)
}

// StepSensitivity adds delta and clamps.
func (s *State) StepSensitivity(delta int) {
	s.SetSensitivity(s.sensitivity + delta)
}

// Apply performs the mutation described by an intent. It returns false
// when the intent changed nothing it could act on.
func (s *State) Apply(in Intent) bool {
	switch in.Kind {
	case IntentSelectMode:
		return s.SelectMode(in.Mode)
	case IntentSetSensitivity:
		s.SetSensitivity(in.Value)
		return true
	}
	return false
}

// Relayout recomputes the clickable layout from the current mode and
// sensitivity, replacing the previous one, and returns it.
func (s *State) Relayout(g Geometry) Layout {
	s.layout = ComputeLayout(g, s.mode, s.sensitivity)
	return s.layout
}
