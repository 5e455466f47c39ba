package compositor

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/teslashibe/go-motionview/pkg/motion"
	"github.com/teslashibe/go-motionview/pkg/overlay"
	"gocv.io/x/gocv"
)

func blankFrame(t *testing.T) gocv.Mat {
	t.Helper()
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 480, 640, gocv.MatTypeCV8UC3)
}

// bgr reads a pixel as an RGBA color for comparison with theme colors.
func bgr(m gocv.Mat, row, col int) color.RGBA {
	v := m.GetVecbAt(row, col)
	return color.RGBA{R: v[2], G: v[1], B: v[0], A: 255}
}

func TestCompose_DoesNotMutateBase(t *testing.T) {
	base := blankFrame(t)
	defer base.Close()
	before := base.ToBytes()

	st := overlay.NewState()
	st.SelectMode(3)

	c := New(DefaultTheme(), overlay.DefaultGeometry())
	out := c.Compose(base, []motion.Box{{X: 100, Y: 100, W: 50, H: 50}}, st, "2026-10-18 12:00:00")
	defer out.Close()

	if !bytes.Equal(base.ToBytes(), before) {
		t.Error("Compose modified base")
	}
	if out.Rows() != base.Rows() || out.Cols() != base.Cols() {
		t.Errorf("output size: got %dx%d, want %dx%d", out.Cols(), out.Rows(), base.Cols(), base.Rows())
	}
}

func TestCompose_DrawsBoxes(t *testing.T) {
	base := blankFrame(t)
	defer base.Close()

	c := New(DefaultTheme(), overlay.DefaultGeometry())
	out := c.Compose(base, []motion.Box{{X: 200, Y: 150, W: 60, H: 50}}, overlay.NewState(), "ts")
	defer out.Close()

	theme := DefaultTheme()
	if got := bgr(out, 150, 230); got != theme.Box {
		t.Errorf("box edge pixel: got %v, want %v", got, theme.Box)
	}
	if got := bgr(out, 175, 230); got == theme.Box {
		t.Error("box interior should not be filled")
	}
}

func TestCompose_WidgetsNotFiltered(t *testing.T) {
	theme := DefaultTheme()

	for _, mode := range overlay.Modes() {
		t.Run(mode.String(), func(t *testing.T) {
			base := blankFrame(t)
			defer base.Close()

			st := overlay.NewState()
			st.SelectMode(int(mode))

			c := New(theme, overlay.DefaultGeometry())
			out := c.Compose(base, nil, st, "ts")
			defer out.Close()

			// Inside the filled part of the slider (10000/30000 of 400px).
			if got := bgr(out, 20, 20); got != theme.SliderFill {
				t.Errorf("slider fill: got %v, want %v", got, theme.SliderFill)
			}
			// Unfilled track.
			if got := bgr(out, 20, 300); got != theme.SliderTrack {
				t.Errorf("slider track: got %v, want %v", got, theme.SliderTrack)
			}

			for i := range overlay.Modes() {
				want := theme.ButtonInactive
				if i == int(mode) {
					want = theme.ButtonActive
				}
				if got := bgr(out, 44, i*150+145); got != want {
					t.Errorf("button %d: got %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestCompose_RecomputesLayout(t *testing.T) {
	base := blankFrame(t)
	defer base.Close()

	st := overlay.NewState()
	if !st.Layout().Empty() {
		t.Fatal("fresh state should have an empty layout")
	}

	c := New(DefaultTheme(), overlay.DefaultGeometry())
	out := c.Compose(base, nil, st, "ts")
	out.Close()

	l := st.Layout()
	if len(l.Buttons()) != len(overlay.Modes()) {
		t.Errorf("buttons: got %d, want %d", len(l.Buttons()), len(overlay.Modes()))
	}
	if !l.Buttons()[0].Active {
		t.Error("button 0 should be active")
	}

	st.SetSensitivity(30000)
	out = c.Compose(base, nil, st, "ts")
	out.Close()
	if st.Layout().Filled != 400 {
		t.Errorf("Filled after relayout: got %d, want 400", st.Layout().Filled)
	}
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme(ThemeSpec{Box: "#00ff00"})
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if th.Box != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("Box: got %v", th.Box)
	}
	if th.SliderFill != DefaultTheme().SliderFill {
		t.Errorf("empty entries should use defaults, got %v", th.SliderFill)
	}

	if _, err := ParseTheme(ThemeSpec{Caption: "white"}); err == nil {
		t.Error("ParseTheme: expected error for non-hex color")
	}
}
