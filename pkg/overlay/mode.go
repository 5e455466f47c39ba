// Package overlay holds the interactive UI state drawn on top of the video:
// the active render mode, the sensitivity threshold and the clickable layout
// produced by the last render pass.
package overlay

// Mode selects how the composed frame is rendered.
type Mode int

const (
	ModeOriginal Mode = iota
	ModeNightVision
	ModeThermal
	ModeInverted
)

var modeNames = [...]string{
	ModeOriginal:    "Original",
	ModeNightVision: "NightVision",
	ModeThermal:     "Thermal",
	ModeInverted:    "Inverted",
}

// Modes returns the fixed, ordered mode list. Button i selects Modes()[i].
func Modes() []Mode {
	return []Mode{ModeOriginal, ModeNightVision, ModeThermal, ModeInverted}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m >= ModeOriginal && int(m) < len(modeNames)
}

// String returns the display name of the mode.
func (m Mode) String() string {
	if !m.Valid() {
		return modeNames[ModeOriginal]
	}
	return modeNames[m]
}

// ParseMode converts a display name into a Mode.
// Unknown names yield ModeOriginal and false.
func ParseMode(name string) (Mode, bool) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), true
		}
	}
	return ModeOriginal, false
}
