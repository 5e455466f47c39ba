package overlay

import (
	"fmt"
	"image"
)

// IntentKind names the state mutation a click asks for.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentSelectMode
	IntentSetSensitivity
)

// Intent is a state mutation derived from a pointer press.
type Intent struct {
	Kind  IntentKind
	Mode  int // mode index for IntentSelectMode
	Value int // clamped sensitivity for IntentSetSensitivity
}

func (in Intent) String() string {
	switch in.Kind {
	case IntentSelectMode:
		return fmt.Sprintf("select-mode(%d)", in.Mode)
	case IntentSetSensitivity:
		return fmt.Sprintf("set-sensitivity(%d)", in.Value)
	}
	return "none"
}

// Resolve maps a press at p onto the layout. Regions are tested in layout
// order and the first one containing p wins. A press outside every region
// yields no intent.
func Resolve(p image.Point, l Layout) (Intent, bool) {
	for _, r := range l.Regions {
		if !r.Contains(p) {
			continue
		}
		switch r.Kind {
		case RegionButton:
			return Intent{Kind: IntentSelectMode, Mode: r.Index}, true
		case RegionSlider:
			v := ClampSensitivity(sliderValue(p.X, r.Rect))
			return Intent{Kind: IntentSetSensitivity, Value: v}, true
		}
	}
	return Intent{}, false
}
