// Package layout holds the sidebar configuration: its visual variant, how it
// collapses, which side it sits on, and whether it is currently expanded.
package layout

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidConfig is returned for a field value outside its enumeration.
var ErrInvalidConfig = errors.New("invalid layout configuration")

// Variant is the sidebar's visual style.
type Variant string

const (
	VariantSidebar  Variant = "sidebar"
	VariantFloating Variant = "floating"
	VariantInset    Variant = "inset"
)

// Collapsible is how the sidebar collapses.
type Collapsible string

const (
	CollapsibleOffcanvas Collapsible = "offcanvas"
	CollapsibleIcon      Collapsible = "icon"
	CollapsibleNone      Collapsible = "none"
)

// Side is the edge the sidebar is attached to.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Option values in display order.
var (
	Variants     = []Variant{VariantSidebar, VariantFloating, VariantInset}
	Collapsibles = []Collapsible{CollapsibleOffcanvas, CollapsibleIcon, CollapsibleNone}
	Sides        = []Side{SideLeft, SideRight}
)

// Config is the persisted sidebar configuration.
type Config struct {
	Variant     Variant     `json:"variant"`
	Collapsible Collapsible `json:"collapsible"`
	Side        Side        `json:"side"`
}

// DefaultConfig returns sidebar/offcanvas/left.
func DefaultConfig() Config {
	return Config{Variant: VariantSidebar, Collapsible: CollapsibleOffcanvas, Side: SideLeft}
}

// Validate checks every field against its enumeration.
func (c Config) Validate() error {
	if !slices.Contains(Variants, c.Variant) {
		return fmt.Errorf("%w: variant %q", ErrInvalidConfig, string(c.Variant))
	}
	if !slices.Contains(Collapsibles, c.Collapsible) {
		return fmt.Errorf("%w: collapsible %q", ErrInvalidConfig, string(c.Collapsible))
	}
	if !slices.Contains(Sides, c.Side) {
		return fmt.Errorf("%w: side %q", ErrInvalidConfig, string(c.Side))
	}
	return nil
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Variant     *Variant     `json:"variant,omitempty"`
	Collapsible *Collapsible `json:"collapsible,omitempty"`
	Side        *Side        `json:"side,omitempty"`
}

// Empty reports whether the patch sets nothing.
func (p Patch) Empty() bool {
	return p.Variant == nil && p.Collapsible == nil && p.Side == nil
}

// Merge returns c with the patch's set fields applied.
func (c Config) Merge(p Patch) Config {
	if p.Variant != nil {
		c.Variant = *p.Variant
	}
	if p.Collapsible != nil {
		c.Collapsible = *p.Collapsible
	}
	if p.Side != nil {
		c.Side = *p.Side
	}
	return c
}

// Expansion state names, as written to the document.
const (
	StateExpanded  = "expanded"
	StateCollapsed = "collapsed"
)

// Document attribute names.
const (
	AttrVariant     = "data-sidebar-variant"
	AttrCollapsible = "data-sidebar-collapsible"
	AttrSide        = "data-sidebar-side"
	AttrState       = "data-sidebar-state"
)

// Document receives layout attributes.
type Document interface {
	SetAttribute(name, value string)
}

// Snapshot is a read-only view of the layout.
type Snapshot struct {
	Profile string `json:"profile"`
	Config  Config `json:"config"`
	Open    bool   `json:"open"`
	State   string `json:"state"`
}

func applyTo(doc Document, c Config, open bool) {
	doc.SetAttribute(AttrVariant, string(c.Variant))
	doc.SetAttribute(AttrCollapsible, string(c.Collapsible))
	doc.SetAttribute(AttrSide, string(c.Side))
	doc.SetAttribute(AttrState, expansion(open))
}

func expansion(open bool) string {
	if open {
		return StateExpanded
	}
	return StateCollapsed
}

type nopDocument struct{}

func (nopDocument) SetAttribute(string, string) {}
