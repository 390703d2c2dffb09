package importer_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/HerbHall/authdeck/internal/testutil"
	"github.com/HerbHall/authdeck/internal/theme/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_JSONShapes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"plain", `{"name":"Ocean","light":{"--background":"#ffffff"},"dark":{"--background":"#000000"}}`},
		{"cssVars", `{"name":"Ocean","cssVars":{"light":{"background":"#ffffff"},"dark":{"background":"#000000"}}}`},
		{"styles", `{"label":"Ocean","styles":{"light":{"background":"#ffffff"},"dark":{"--background":"#000000"}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := importer.Parse([]byte(tt.doc), importer.Options{})
			require.NoError(t, err)
			assert.Equal(t, "Ocean", th.Name)
			assert.Equal(t, "#ffffff", th.Light["--background"])
			assert.Equal(t, "#000000", th.Dark["--background"])
			assert.True(t, strings.HasPrefix(th.ID, "imported-"), th.ID)
		})
	}
}

func TestParse_YAML(t *testing.T) {
	doc := `
name: Forest
light:
  "--background": "#f0fdf4"
  "--brand-primary": "hsl(142 71% 45%)"
dark:
  "--background": "#052e16"
  "--brand-primary": "hsl(142 69% 58%)"
`
	th, err := importer.Parse([]byte(doc), importer.Options{Source: "forest.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "Forest", th.Name)
	assert.Equal(t, "hsl(142 71% 45%)", th.Light["--brand-primary"])
	assert.Equal(t, "yaml document from forest.yaml", th.Description)
}

func TestParse_CSS(t *testing.T) {
	doc := `
/* exported from a theme editor */
@layer base {
  :root {
    --background: #ffffff;
    --brand-primary: oklch(0.623 0.214 259.815) !important;
    --radius: 0.625rem;
    --font-sans: Inter, sans-serif;
  }
  .dark {
    --background: #0a0a0a;
    --brand-primary: oklch(0.546 0.245 262.881);
  }
  body { color: red; }
}
@theme inline { --color-background: var(--background); }
`
	th, err := importer.Parse([]byte(doc), importer.Options{Name: "Editor export"})
	require.NoError(t, err)
	assert.Equal(t, "Editor export", th.Name)
	assert.Equal(t, map[string]string{
		"--background":    "#ffffff",
		"--brand-primary": "oklch(0.623 0.214 259.815)",
	}, th.Light)
	assert.Len(t, th.Dark, 2)
}

func TestParse_CSSColorSchemeMedia(t *testing.T) {
	doc := `
:root { --background: #ffffff; --foreground: #0a0a0a; }
@media (prefers-color-scheme: dark) {
  :root { --background: #000000; --foreground: #fafafa; }
}
@media (prefers-color-scheme: light) {
  :root { --muted: #f4f4f5; }
}
@media (max-width: 640px) {
  :root { --background: #eeeeee; }
}
`
	th, err := importer.Parse([]byte(doc), importer.Options{Format: importer.FormatCSS})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"--background": "#ffffff",
		"--foreground": "#0a0a0a",
		"--muted":      "#f4f4f5",
	}, th.Light)
	assert.Equal(t, map[string]string{
		"--background": "#000000",
		"--foreground": "#fafafa",
	}, th.Dark)
}

func TestParse_NameFallback(t *testing.T) {
	doc := testutil.NewThemeDoc(testutil.WithThemeName(""))

	th, err := importer.Parse(doc.JSON(), importer.Options{Name: "upload.json"})
	require.NoError(t, err)
	assert.Equal(t, "upload.json", th.Name)

	th, err = importer.Parse(doc.JSON(), importer.Options{})
	require.NoError(t, err)
	assert.Equal(t, "Imported theme", th.Name)

	a, _ := importer.Parse(doc.JSON(), importer.Options{})
	b, _ := importer.Parse(doc.JSON(), importer.Options{})
	assert.NotEqual(t, a.ID, b.ID, "every import gets a fresh id")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		format      importer.Format
		wantSection string
		wantVar     string
	}{
		{name: "malformed json", data: []byte(`{"light":`), format: importer.FormatJSON},
		{name: "section not an object", data: []byte(`{"light":"red","dark":{}}`), format: importer.FormatJSON, wantSection: "light"},
		{name: "missing dark", data: testutil.NewThemeDoc(testutil.WithDark(nil)).JSON()},
		{name: "empty light", data: []byte(`{"light":{},"dark":{"--background":"#000"}}`), wantSection: "light"},
		{
			name:        "bad color",
			data:        testutil.NewThemeDoc(testutil.WithLight(map[string]string{"--background": "bold"})).JSON(),
			wantSection: "light",
			wantVar:     "--background",
		},
		{name: "malformed yaml", data: []byte("light: [unclosed"), format: importer.FormatYAML},
		{name: "unbalanced css", data: []byte(":root { --background: #fff;"), format: importer.FormatCSS},
		{name: "css without dark", data: []byte(":root { --background: #fff; }"), format: importer.FormatCSS, wantSection: "dark"},
		{name: "unsupported format", data: []byte(`{}`), format: "toml"},
		{name: "too large", data: bytes.Repeat([]byte(" "), importer.MaxSize+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := importer.Parse(tt.data, importer.Options{Format: tt.format})
			require.Error(t, err)
			assert.True(t, errors.Is(err, importer.ErrInvalidTheme), "error %v does not match ErrInvalidTheme", err)

			var ve *importer.ValidationError
			require.True(t, errors.As(err, &ve), "error %T is not a ValidationError", err)
			if tt.wantSection != "" {
				assert.Equal(t, tt.wantSection, ve.Section)
			}
			if tt.wantVar != "" {
				assert.Equal(t, tt.wantVar, ve.Variable)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	assert.Equal(t, importer.FormatJSON, importer.Detect(nil, "theme.JSON"))
	assert.Equal(t, importer.FormatYAML, importer.Detect(nil, "theme.yml"))
	assert.Equal(t, importer.FormatCSS, importer.Detect(nil, "globals.css"))
	assert.Equal(t, importer.FormatJSON, importer.Detect([]byte("  {\"light\":{}}"), ""))
	assert.Equal(t, importer.FormatCSS, importer.Detect([]byte(":root { --a: #fff; }"), "upload"))
	assert.Equal(t, importer.FormatYAML, importer.Detect([]byte("name: x"), ""))
}

func TestFormatFromContentType(t *testing.T) {
	assert.Equal(t, importer.FormatJSON, importer.FormatFromContentType("application/json; charset=utf-8"))
	assert.Equal(t, importer.FormatYAML, importer.FormatFromContentType("application/x-yaml"))
	assert.Equal(t, importer.FormatCSS, importer.FormatFromContentType("Text/CSS"))
	assert.Equal(t, importer.Format(""), importer.FormatFromContentType("application/octet-stream"))
}

func TestWrite_ParsesBack(t *testing.T) {
	doc := testutil.NewThemeDoc()
	orig, err := importer.Parse(doc.JSON(), importer.Options{})
	require.NoError(t, err)

	for _, f := range []importer.Format{importer.FormatJSON, importer.FormatYAML, importer.FormatCSS} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, importer.Write(&buf, orig, f))

			back, err := importer.Parse(buf.Bytes(), importer.Options{Format: f, Name: orig.Name})
			require.NoError(t, err)
			assert.Equal(t, orig.Name, back.Name)
			assert.Equal(t, orig.Light, back.Light)
			assert.Equal(t, orig.Dark, back.Dark)
		})
	}

	var buf bytes.Buffer
	assert.Error(t, importer.Write(&buf, orig, "toml"))
}

func TestCSS_SortedBlocks(t *testing.T) {
	css := importer.CSS(importer.Theme{
		Light: map[string]string{"--b": "#222", "--a": "#111"},
		Dark:  map[string]string{"--a": "#000"},
	})
	want := ":root {\n  --a: #111;\n  --b: #222;\n}\n\n.dark {\n  --a: #000;\n}\n"
	assert.Equal(t, want, css)
}
