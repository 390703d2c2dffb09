package testutil

import (
	"encoding/json"
	"maps"
)

// ThemeDoc is an importable theme document used in tests.
type ThemeDoc struct {
	Name  string            `json:"name,omitempty"`
	Light map[string]string `json:"light"`
	Dark  map[string]string `json:"dark"`
}

// NewThemeDoc returns a small valid theme with a handful of brand colors.
// Override individual fields after creation as needed.
func NewThemeDoc(opts ...func(*ThemeDoc)) ThemeDoc {
	d := ThemeDoc{
		Name: "Test Theme",
		Light: map[string]string{
			"--background":    "#ffffff",
			"--foreground":    "#0a0a0a",
			"--brand-primary": "#2563eb",
			"--brand-accent":  "oklch(0.97 0 0)",
		},
		Dark: map[string]string{
			"--background":    "#0a0a0a",
			"--foreground":    "#fafafa",
			"--brand-primary": "#3b82f6",
			"--brand-accent":  "oklch(0.269 0 0)",
		},
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// WithThemeName sets the document name.
func WithThemeName(name string) func(*ThemeDoc) {
	return func(d *ThemeDoc) { d.Name = name }
}

// WithLight replaces the light section.
func WithLight(vars map[string]string) func(*ThemeDoc) {
	return func(d *ThemeDoc) { d.Light = maps.Clone(vars) }
}

// WithDark replaces the dark section.
func WithDark(vars map[string]string) func(*ThemeDoc) {
	return func(d *ThemeDoc) { d.Dark = maps.Clone(vars) }
}

// JSON encodes the document in the plain {name, light, dark} form.
func (d ThemeDoc) JSON() []byte {
	b, err := json.Marshal(d)
	if err != nil {
		panic("testutil: marshal theme doc: " + err.Error())
	}
	return b
}
