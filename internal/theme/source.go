// Package theme resolves and applies the effective color theme: one selected
// source, a sparse layer of brand color overrides, a light/dark variant and a
// corner radius.
package theme

import (
	"errors"
	"fmt"
	"maps"

	"github.com/HerbHall/authdeck/internal/theme/catalog"
	"github.com/HerbHall/authdeck/internal/theme/color"
	"github.com/HerbHall/authdeck/internal/theme/importer"
)

// Validation errors. Operations wrap these with context; callers match with errors.Is.
var (
	ErrUnknownPreset   = errors.New("unknown preset")
	ErrInvalidTheme    = importer.ErrInvalidTheme
	ErrInvalidRadius   = errors.New("invalid radius")
	ErrInvalidOverride = errors.New("invalid color override")
	ErrInvalidVariant  = errors.New("invalid variant")
)

// Variant is the light/dark axis.
type Variant string

const (
	VariantLight Variant = "light"
	VariantDark  Variant = "dark"

	DefaultVariant = VariantLight
)

// ParseVariant accepts "light" or "dark".
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if err := v.Validate(); err != nil {
		return "", err
	}
	return v, nil
}

// Validate reports ErrInvalidVariant for anything but light or dark.
func (v Variant) Validate() error {
	if v != VariantLight && v != VariantDark {
		return fmt.Errorf("%w: %q", ErrInvalidVariant, string(v))
	}
	return nil
}

// Toggle returns the opposite variant.
func (v Variant) Toggle() Variant {
	if v == VariantDark {
		return VariantLight
	}
	return VariantDark
}

// Kind tags the active theme source.
type Kind string

const (
	KindNone      Kind = "none"
	KindCatalog   Kind = "catalog"
	KindAlternate Kind = "alternate"
	KindImported  Kind = "imported"
)

// Source is the selected theme source. Every kind except KindNone carries a
// non-empty variable map for both variants.
type Source struct {
	Kind        Kind
	ID          string
	Name        string
	Description string
	Light       map[string]string
	Dark        map[string]string
}

// SourceInfo describes a source without its variable maps.
type SourceInfo struct {
	Kind        Kind   `json:"kind"`
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// NoSource is the factory default: nothing but overrides applies.
func NoSource() Source { return Source{Kind: KindNone} }

// CatalogSource wraps a preset from the primary family.
func CatalogSource(p catalog.Preset) Source {
	return Source{
		Kind:  KindCatalog,
		ID:    p.ID,
		Name:  p.DisplayName,
		Light: maps.Clone(p.Light),
		Dark:  maps.Clone(p.Dark),
	}
}

// AlternateSource wraps a preset from the alternate family.
func AlternateSource(p catalog.Preset) Source {
	s := CatalogSource(p)
	s.Kind = KindAlternate
	return s
}

// ImportedSource wraps an imported theme.
func ImportedSource(t importer.Theme) Source {
	return Source{
		Kind:        KindImported,
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Light:       maps.Clone(t.Light),
		Dark:        maps.Clone(t.Dark),
	}
}

// Info strips the variable maps.
func (s Source) Info() SourceInfo {
	return SourceInfo{Kind: s.Kind, ID: s.ID, Name: s.Name, Description: s.Description}
}

// Variables returns the source's map for v. KindNone returns nil.
func (s Source) Variables(v Variant) map[string]string {
	if s.Kind == KindNone {
		return nil
	}
	if v == VariantDark {
		return s.Dark
	}
	return s.Light
}

// Validate checks the shape invariant for s.
func (s Source) Validate() error {
	switch s.Kind {
	case KindNone:
		return nil
	case KindCatalog, KindAlternate, KindImported:
		return importer.Validate(importer.Theme{ID: s.ID, Name: s.Name, Light: s.Light, Dark: s.Dark})
	}
	return fmt.Errorf("%w: unknown source kind %q", ErrInvalidTheme, string(s.Kind))
}

// Overrides is the sparse brand color layer. Absent keys do not override.
type Overrides map[string]string

// ValidateOverride checks that name is a brand variable and value a color.
// An empty value is valid and means "clear".
func ValidateOverride(name, value string) error {
	if !catalog.IsBrandVariable(name) {
		return fmt.Errorf("%w: %q is not a brand variable", ErrInvalidOverride, name)
	}
	if value == "" {
		return nil
	}
	if _, err := color.Parse(value); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidOverride, name, err)
	}
	return nil
}

// With returns a copy of o with name set to value, or removed when value is empty.
func (o Overrides) With(name, value string) Overrides {
	out := maps.Clone(o)
	if out == nil {
		out = make(Overrides)
	}
	if value == "" {
		delete(out, name)
	} else {
		out[name] = value
	}
	return out
}

// Resolve computes the effective theme: a copy of the source's map for v (or
// an empty map for KindNone) with every present override written over it.
// Resolve never mutates its inputs, so equal inputs give equal outputs.
func Resolve(src Source, v Variant, o Overrides) map[string]string {
	base := src.Variables(v)
	out := make(map[string]string, len(base)+len(o))
	maps.Copy(out, base)
	for name, value := range o {
		if value == "" {
			continue
		}
		out[name] = value
	}
	return out
}
