package catalog_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/HerbHall/authdeck/internal/theme/catalog"
	"github.com/HerbHall/authdeck/internal/theme/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilies(t *testing.T) {
	shadcn := catalog.Shadcn()
	assert.Equal(t, catalog.FamilyShadcn, shadcn.Name())
	assert.Equal(t, 8, shadcn.Len())
	assert.True(t, slices.IsSorted(shadcn.IDs()))
	assert.Contains(t, shadcn.IDs(), "neutral")
	assert.Contains(t, shadcn.IDs(), "rose")

	tweakcn := catalog.Tweakcn()
	assert.Equal(t, catalog.FamilyTweakcn, tweakcn.Name())
	assert.Equal(t, 5, tweakcn.Len())

	f, ok := catalog.ByName("tweakcn")
	require.True(t, ok)
	assert.Same(t, tweakcn, f)
	_, ok = catalog.ByName("material")
	assert.False(t, ok)
}

func TestPresets_AreComplete(t *testing.T) {
	for _, fam := range []*catalog.Family{catalog.Shadcn(), catalog.Tweakcn()} {
		for _, p := range fam.All() {
			for variant, vars := range map[string]map[string]string{"light": p.Light, "dark": p.Dark} {
				for _, b := range catalog.BrandColors() {
					assert.Contains(t, vars, b.Variable, "%s/%s %s", fam.Name(), p.ID, variant)
				}
				for name, value := range vars {
					assert.True(t, color.Valid(value), "%s/%s %s %s = %q", fam.Name(), p.ID, variant, name, value)
				}
			}
			assert.NotEmpty(t, p.DisplayName)
			assert.Len(t, p.Swatches(), 4)
		}
	}
}

func TestFamily_LookupReturnsCopy(t *testing.T) {
	p, ok := catalog.Shadcn().Lookup("rose")
	require.True(t, ok)
	p.Light[catalog.VarPrimary] = "#000000"

	again, _ := catalog.Shadcn().Lookup("rose")
	assert.NotEqual(t, "#000000", again.Light[catalog.VarPrimary])

	_, ok = catalog.Shadcn().Lookup("does-not-exist")
	assert.False(t, ok)
}

func TestNewFamily_DuplicateReplaces(t *testing.T) {
	f := catalog.NewFamily("test",
		catalog.Preset{ID: "a", DisplayName: "First"},
		catalog.Preset{ID: "b", DisplayName: "B"},
		catalog.Preset{ID: "a", DisplayName: "Second"},
	)
	assert.Equal(t, 2, f.Len())
	p, _ := f.Lookup("a")
	assert.Equal(t, "Second", p.DisplayName)
	assert.Equal(t, "a", f.All()[0].ID, "replacement keeps the original position")
}

func TestFamily_Random(t *testing.T) {
	fam := catalog.Tweakcn()

	r1 := rand.New(rand.NewPCG(1, 2))
	r2 := rand.New(rand.NewPCG(1, 2))
	for range 10 {
		a, ok := fam.Random(r1)
		require.True(t, ok)
		b, _ := fam.Random(r2)
		assert.Equal(t, a.ID, b.ID, "same seed, same pick")
		assert.Contains(t, fam.IDs(), a.ID)
	}

	p, ok := fam.Random(nil)
	require.True(t, ok)
	assert.Contains(t, fam.IDs(), p.ID)

	_, ok = catalog.NewFamily("empty").Random(nil)
	assert.False(t, ok)
}

func TestRadiusOptions(t *testing.T) {
	opts := catalog.RadiusOptions()
	require.Len(t, opts, 5)
	assert.Equal(t, catalog.Radius("0rem"), opts[0].Value)
	assert.Equal(t, catalog.Radius("1rem"), opts[4].Value)

	for _, o := range opts {
		assert.True(t, catalog.ValidRadius(o.Value), o.Value)
	}
	assert.False(t, catalog.ValidRadius("2rem"))
	assert.False(t, catalog.ValidRadius(""))

	opts[0].Value = "9rem"
	assert.Equal(t, catalog.Radius("0rem"), catalog.RadiusOptions()[0].Value, "options are copied")
}

func TestBrandColors(t *testing.T) {
	colors := catalog.BrandColors()
	require.Len(t, colors, 8)
	assert.Equal(t, catalog.VarPrimary, colors[0].Variable)

	assert.True(t, catalog.IsBrandVariable(catalog.VarAccent))
	assert.False(t, catalog.IsBrandVariable(catalog.VarBackground))
	assert.False(t, catalog.IsBrandVariable("brand-primary"))
}
