package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HerbHall/authdeck/internal/auth"
	"github.com/HerbHall/authdeck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenSecret = "themectl-test-secret-of-32-bytes!!"

func execute(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestPresets_Table(t *testing.T) {
	out, err := execute("presets")
	require.NoError(t, err)
	assert.Contains(t, out, "shadcn (8 presets)")
	assert.Contains(t, out, "rose")
	assert.Contains(t, out, "Rose")
	assert.Contains(t, out, "#")
}

func TestPresets_JSON(t *testing.T) {
	out, err := execute("presets", "--family", "tweakcn", "--json")
	require.NoError(t, err)

	var rows []presetRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 5)
	for _, r := range rows {
		assert.Len(t, r.Swatches, 4, r.ID)
	}
}

func TestPresets_UnknownFamily(t *testing.T) {
	_, err := execute("presets", "--family", "material")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown preset family "material"`)
}

func TestValidate(t *testing.T) {
	good := writeFile(t, "good.json", testutil.NewThemeDoc().JSON())
	bad := writeFile(t, "bad.json", testutil.NewThemeDoc(testutil.WithLight(map[string]string{"--background": "bold"})).JSON())

	out, err := execute("validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok   "+good)

	out, err = execute("validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed validation")
	assert.Contains(t, out, "FAIL "+bad+": light --background:")
}

func TestExport_Preset(t *testing.T) {
	out, err := execute("export", "--preset", "rose")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, ":root {\n"), out)
	assert.Contains(t, out, ".dark {")
	assert.Contains(t, out, "--brand-primary: oklch(0.645 0.246 16.439);")

	out, err = execute("export", "--preset", "rose", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Rose")

	out, err = execute("export", "--family", "tweakcn", "--preset", "caffeine", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Caffeine")
}

func TestExport_ConvertsFile(t *testing.T) {
	css := ":root { --background: #ffffff; }\n.dark { --background: #000000; }\n"
	path := writeFile(t, "globals.css", []byte(css))

	out, err := execute("export", path, "--format", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "globals.css", doc["name"])
	assert.Equal(t, map[string]any{"--background": "#ffffff"}, doc["light"])
}

func TestExport_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"nothing", []string{"export"}, "nothing to export"},
		{"unknown preset", []string{"export", "--preset", "nope"}, `preset "nope" not found in shadcn`},
		{"both", []string{"export", "theme.json", "--preset", "rose"}, "not both"},
		{"bad format", []string{"export", "--preset", "rose", "-o", "toml"}, `unsupported format "toml"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestToken(t *testing.T) {
	t.Setenv("AD_AUTH_SECRET", tokenSecret)

	out, err := execute("token", "--profile", "alice")
	require.NoError(t, err)

	claims, err := auth.NewTokenService([]byte(tokenSecret), 0).ValidateAccessToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Profile())
}

func TestToken_RequiresSecret(t *testing.T) {
	t.Setenv("AD_AUTH_SECRET", "short")

	_, err := execute("token", "--profile", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AD_AUTH_SECRET")
}

func TestVersion(t *testing.T) {
	out, err := execute("version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "authdeck "), out)
}
