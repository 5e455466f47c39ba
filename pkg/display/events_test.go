package display

import (
	"image"
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		raw  int
		want int
	}{
		{"no key", -1, KeyNone},
		{"quit", 'q', KeyQuit},
		{"gtk left arrow", 65361, KeyLeft},
		{"gtk right arrow", 65363, KeyRight},
		{"plain left code", 81, KeyLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeKey(tc.raw); got != tc.want {
				t.Errorf("normalizeKey(%d): got %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

func TestPointerKind(t *testing.T) {
	tests := []struct {
		cv   int
		want PointerKind
	}{
		{0, PointerMove},
		{1, PointerPress},
		{4, PointerRelease},
		{2, PointerOther},
	}

	for _, tc := range tests {
		if got := pointerKind(tc.cv); got != tc.want {
			t.Errorf("pointerKind(%d): got %v, want %v", tc.cv, got, tc.want)
		}
	}
}

func TestEvents_Presses(t *testing.T) {
	ev := Events{
		Key: KeyNone,
		Pointer: []PointerEvent{
			{Kind: PointerMove, X: 1, Y: 1},
			{Kind: PointerPress, X: 75, Y: 55},
			{Kind: PointerRelease, X: 75, Y: 55},
			{Kind: PointerPress, X: 210, Y: 20},
		},
	}

	presses := ev.Presses()
	if len(presses) != 2 {
		t.Fatalf("Presses: got %d, want 2", len(presses))
	}
	if presses[0].Point() != image.Pt(75, 55) || presses[1].Point() != image.Pt(210, 20) {
		t.Errorf("Presses: got %+v", presses)
	}
}
