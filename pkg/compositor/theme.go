package compositor

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ThemeSpec lists overlay colors as hex strings, as they appear in config files.
type ThemeSpec struct {
	Box            string `yaml:"box" json:"box"`
	SliderTrack    string `yaml:"slider_track" json:"slider_track"`
	SliderFill     string `yaml:"slider_fill" json:"slider_fill"`
	SliderLabel    string `yaml:"slider_label" json:"slider_label"`
	ButtonActive   string `yaml:"button_active" json:"button_active"`
	ButtonInactive string `yaml:"button_inactive" json:"button_inactive"`
	ButtonText     string `yaml:"button_text" json:"button_text"`
	Caption        string `yaml:"caption" json:"caption"`
}

// DefaultThemeSpec returns the stock palette: red boxes, yellow slider fill,
// green active button.
func DefaultThemeSpec() ThemeSpec {
	return ThemeSpec{
		Box:            "#ff0000",
		SliderTrack:    "#323232",
		SliderFill:     "#ffff00",
		SliderLabel:    "#ffffff",
		ButtonActive:   "#00ff00",
		ButtonInactive: "#505050",
		ButtonText:     "#000000",
		Caption:        "#ffffff",
	}
}

// Theme holds the resolved drawing colors.
type Theme struct {
	Box            color.RGBA
	SliderTrack    color.RGBA
	SliderFill     color.RGBA
	SliderLabel    color.RGBA
	ButtonActive   color.RGBA
	ButtonInactive color.RGBA
	ButtonText     color.RGBA
	Caption        color.RGBA
}

// DefaultTheme returns the resolved stock palette.
func DefaultTheme() Theme {
	th, err := ParseTheme(DefaultThemeSpec())
	if err != nil {
		panic(err)
	}
	return th
}

// ParseTheme resolves every hex color in spec. Empty entries take the
// default color.
func ParseTheme(spec ThemeSpec) (Theme, error) {
	def := DefaultThemeSpec()
	var th Theme

	fields := []struct {
		name string
		hex  string
		dflt string
		dst  *color.RGBA
	}{
		{"box", spec.Box, def.Box, &th.Box},
		{"slider_track", spec.SliderTrack, def.SliderTrack, &th.SliderTrack},
		{"slider_fill", spec.SliderFill, def.SliderFill, &th.SliderFill},
		{"slider_label", spec.SliderLabel, def.SliderLabel, &th.SliderLabel},
		{"button_active", spec.ButtonActive, def.ButtonActive, &th.ButtonActive},
		{"button_inactive", spec.ButtonInactive, def.ButtonInactive, &th.ButtonInactive},
		{"button_text", spec.ButtonText, def.ButtonText, &th.ButtonText},
		{"caption", spec.Caption, def.Caption, &th.Caption},
	}

	for _, f := range fields {
		hex := f.hex
		if hex == "" {
			hex = f.dflt
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", f.name, err)
		}
		r, g, b := c.RGB255()
		*f.dst = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return th, nil
}
