// Package catalog holds the read-only theme registries: the two preset
// families, the radius choices and the brand variables users may override.
package catalog

import (
	"maps"
	"math/rand/v2"
	"sort"
)

// Family names.
const (
	FamilyShadcn  = "shadcn"
	FamilyTweakcn = "tweakcn"
)

// Preset is a complete color scheme for both variants.
type Preset struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"display_name"`
	Light       map[string]string `json:"light"`
	Dark        map[string]string `json:"dark"`
}

// Swatches returns the preview colors shown next to a preset name: primary,
// secondary, accent and muted from the light map.
func (p Preset) Swatches() []string {
	keys := []string{VarPrimary, VarSecondary, VarAccent, VarMuted}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if v, ok := p.Light[k]; ok {
			out = append(out, v)
		}
	}
	return out
}

func (p Preset) clone() Preset {
	p.Light = maps.Clone(p.Light)
	p.Dark = maps.Clone(p.Dark)
	return p
}

// Family is an ordered, id-indexed set of presets.
type Family struct {
	name    string
	presets []Preset
	index   map[string]int
}

// NewFamily builds a family. Later presets with a duplicate id replace earlier ones.
func NewFamily(name string, presets ...Preset) *Family {
	f := &Family{name: name, index: make(map[string]int, len(presets))}
	for _, p := range presets {
		if i, ok := f.index[p.ID]; ok {
			f.presets[i] = p
			continue
		}
		f.index[p.ID] = len(f.presets)
		f.presets = append(f.presets, p)
	}
	return f
}

// Name returns the family name.
func (f *Family) Name() string { return f.name }

// Len returns the number of presets.
func (f *Family) Len() int { return len(f.presets) }

// Lookup returns a copy of the preset with the given id.
func (f *Family) Lookup(id string) (Preset, bool) {
	i, ok := f.index[id]
	if !ok {
		return Preset{}, false
	}
	return f.presets[i].clone(), true
}

// All returns copies of every preset in registry order.
func (f *Family) All() []Preset {
	out := make([]Preset, len(f.presets))
	for i := range f.presets {
		out[i] = f.presets[i].clone()
	}
	return out
}

// IDs returns the preset ids sorted alphabetically.
func (f *Family) IDs() []string {
	ids := make([]string, 0, len(f.presets))
	for _, p := range f.presets {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return ids
}

// Random picks a preset uniformly. A nil source uses the global generator.
func (f *Family) Random(r *rand.Rand) (Preset, bool) {
	if len(f.presets) == 0 {
		return Preset{}, false
	}
	var i int
	if r != nil {
		i = r.IntN(len(f.presets))
	} else {
		i = rand.IntN(len(f.presets))
	}
	return f.presets[i].clone(), true
}

var (
	shadcn  = NewFamily(FamilyShadcn, shadcnPresets()...)
	tweakcn = NewFamily(FamilyTweakcn, tweakcnPresets()...)
)

// Shadcn returns the primary preset family, keyed by color name.
func Shadcn() *Family { return shadcn }

// Tweakcn returns the alternate preset family.
func Tweakcn() *Family { return tweakcn }

// ByName returns the family with the given name.
func ByName(name string) (*Family, bool) {
	switch name {
	case FamilyShadcn:
		return shadcn, true
	case FamilyTweakcn:
		return tweakcn, true
	}
	return nil, false
}
