package theme

import (
	"errors"
	"testing"

	"github.com/HerbHall/authdeck/internal/theme/catalog"
	"github.com/HerbHall/authdeck/internal/theme/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPreset(t *testing.T, f *catalog.Family, id string) catalog.Preset {
	t.Helper()
	p, ok := f.Lookup(id)
	require.True(t, ok, "preset %q missing from %s", id, f.Name())
	return p
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"light", VariantLight, false},
		{"dark", VariantDark, false},
		{"Dark", "", true},
		{"", "", true},
		{"system", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidVariant)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVariant_Toggle(t *testing.T) {
	assert.Equal(t, VariantDark, VariantLight.Toggle())
	assert.Equal(t, VariantLight, VariantDark.Toggle())
}

func TestResolve_Idempotent(t *testing.T) {
	rose := mustPreset(t, catalog.Shadcn(), "rose")
	twitter := mustPreset(t, catalog.Tweakcn(), "twitter")
	imported := importer.Theme{
		ID:    "imported-1",
		Light: map[string]string{"--background": "#fff", catalog.VarAccent: "#eee"},
		Dark:  map[string]string{"--background": "#000"},
	}

	sources := []Source{NoSource(), CatalogSource(rose), AlternateSource(twitter), ImportedSource(imported)}
	overrides := []Overrides{
		nil,
		{},
		{catalog.VarAccent: "#112233"},
		{catalog.VarPrimary: "hsl(210 40% 50%)", catalog.VarMuted: ""},
	}

	for _, src := range sources {
		for _, v := range []Variant{VariantLight, VariantDark} {
			for _, ov := range overrides {
				first := Resolve(src, v, ov)
				second := Resolve(src, v, ov)
				assert.Equal(t, first, second, "source=%s variant=%s overrides=%v", src.Kind, v, ov)
			}
		}
	}
}

func TestResolve_DoesNotMutateSource(t *testing.T) {
	src := CatalogSource(mustPreset(t, catalog.Shadcn(), "blue"))
	before := src.Light[catalog.VarAccent]

	out := Resolve(src, VariantLight, Overrides{catalog.VarAccent: "#010203"})
	out["--background"] = "#abcdef"

	assert.Equal(t, before, src.Light[catalog.VarAccent])
	assert.NotEqual(t, "#abcdef", src.Light["--background"])
}

func TestResolve_NoneUsesOnlyOverrides(t *testing.T) {
	got := Resolve(NoSource(), VariantDark, Overrides{catalog.VarAccent: "#112233", catalog.VarMuted: ""})
	assert.Equal(t, map[string]string{catalog.VarAccent: "#112233"}, got)
}

func TestResolve_OverrideWins(t *testing.T) {
	rose := mustPreset(t, catalog.Shadcn(), "rose")
	got := Resolve(CatalogSource(rose), VariantDark, Overrides{catalog.VarAccent: "#112233"})

	want := make(map[string]string, len(rose.Dark))
	for k, v := range rose.Dark {
		want[k] = v
	}
	want[catalog.VarAccent] = "#112233"
	assert.Equal(t, want, got)
}

func TestSource_Validate(t *testing.T) {
	tests := []struct {
		name    string
		src     Source
		wantErr error
	}{
		{"none", NoSource(), nil},
		{"catalog", CatalogSource(mustPreset(t, catalog.Shadcn(), "neutral")), nil},
		{"empty light", Source{Kind: KindImported, Light: map[string]string{}, Dark: map[string]string{"--x": "#fff"}}, ErrInvalidTheme},
		{"bad color", Source{Kind: KindAlternate, Light: map[string]string{"--x": "nope"}, Dark: map[string]string{"--x": "#fff"}}, ErrInvalidTheme},
		{"unknown kind", Source{Kind: "plugin"}, ErrInvalidTheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.src.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateOverride(t *testing.T) {
	tests := []struct {
		name, variable, value string
		ok                    bool
	}{
		{"hex", catalog.VarAccent, "#112233", true},
		{"oklch", catalog.VarPrimary, "oklch(0.7 0.1 200)", true},
		{"clear", catalog.VarMuted, "", true},
		{"not a brand variable", "--background", "#112233", false},
		{"not a color", catalog.VarAccent, "12px", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOverride(tt.variable, tt.value)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidOverride), "got %v", err)
		})
	}
}

func TestOverrides_With(t *testing.T) {
	var o Overrides
	a := o.With(catalog.VarAccent, "#111111")
	b := a.With(catalog.VarMuted, "#222222")
	c := b.With(catalog.VarAccent, "")

	assert.Nil(t, o)
	assert.Equal(t, Overrides{catalog.VarAccent: "#111111"}, a)
	assert.Len(t, b, 2)
	assert.Equal(t, Overrides{catalog.VarMuted: "#222222"}, c)
}
