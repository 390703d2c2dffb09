// Package document models the root element of a rendered console page: the
// custom properties, classes and data attributes that appearance state is
// applied to. A Root can be rendered as a stylesheet or pushed to browsers
// as a State.
package document

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
)

// State is an immutable copy of a Root.
type State struct {
	Variables  map[string]string `json:"variables"`
	Properties map[string]string `json:"properties,omitempty"`
	Classes    []string          `json:"classes"`
	Attributes map[string]string `json:"attributes"`
	Revision   uint64            `json:"revision"`
}

// Root is the live root element. All methods are safe for concurrent use.
type Root struct {
	mu         sync.RWMutex
	groups     map[string]map[string]string
	variables  map[string]string
	properties map[string]string
	classes    map[string]struct{}
	attributes map[string]string
	revision   uint64
}

// NewRoot returns an empty root element.
func NewRoot() *Root {
	return &Root{
		groups:     make(map[string]map[string]string),
		variables:  make(map[string]string),
		properties: make(map[string]string),
		classes:    make(map[string]struct{}),
		attributes: make(map[string]string),
	}
}

// ReplaceVariables swaps the whole variable group in one step. Variables the
// previous group set and vars does not are gone afterwards.
func (r *Root) ReplaceVariables(group string, vars map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(vars) == 0 {
		delete(r.groups, group)
	} else {
		r.groups[group] = maps.Clone(vars)
	}
	r.revision++
}

// SetVariable sets a single custom property outside any group.
// An empty value removes it.
func (r *Root) SetVariable(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	setOrDelete(r.variables, name, value)
	r.revision++
}

// SetProperty sets a regular (non-custom) style property such as color-scheme.
// An empty value removes it.
func (r *Root) SetProperty(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	setOrDelete(r.properties, name, value)
	r.revision++
}

// ToggleClass adds or removes a class.
func (r *Root) ToggleClass(name string, on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if on {
		r.classes[name] = struct{}{}
	} else {
		delete(r.classes, name)
	}
	r.revision++
}

// SetAttribute sets an attribute. An empty value removes it.
func (r *Root) SetAttribute(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	setOrDelete(r.attributes, name, value)
	r.revision++
}

// HasClass reports whether the class is present.
func (r *Root) HasClass(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.classes[name]
	return ok
}

// Attribute returns an attribute value.
func (r *Root) Attribute(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.attributes[name]
	return v, ok
}

// Variables returns the effective custom properties: groups merged in name
// order, then individually set variables.
func (r *Root) Variables() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.variablesLocked()
}

func (r *Root) variablesLocked() map[string]string {
	out := make(map[string]string)
	for _, g := range slices.Sorted(maps.Keys(r.groups)) {
		maps.Copy(out, r.groups[g])
	}
	maps.Copy(out, r.variables)
	return out
}

// State returns a copy of the root.
func (r *Root) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return State{
		Variables:  r.variablesLocked(),
		Properties: maps.Clone(r.properties),
		Classes:    slices.Sorted(maps.Keys(r.classes)),
		Attributes: maps.Clone(r.attributes),
		Revision:   r.revision,
	}
}

// WriteCSS renders the root as a single :root rule with properties first and
// custom properties in name order. Classes and attributes are not styles and
// are carried as a leading comment so the output stays a valid stylesheet.
func (r *Root) WriteCSS(w io.Writer) error {
	_, err := io.WriteString(w, r.State().CSS())
	return err
}

// CSS renders the state. See Root.WriteCSS.
func (s State) CSS() string {
	var b strings.Builder
	if len(s.Classes) > 0 || len(s.Attributes) > 0 {
		b.WriteString("/*")
		if len(s.Classes) > 0 {
			fmt.Fprintf(&b, " class=%q", strings.Join(s.Classes, " "))
		}
		for _, k := range slices.Sorted(maps.Keys(s.Attributes)) {
			fmt.Fprintf(&b, " %s=%q", k, s.Attributes[k])
		}
		b.WriteString(" */\n")
	}
	b.WriteString(":root {\n")
	for _, k := range slices.Sorted(maps.Keys(s.Properties)) {
		fmt.Fprintf(&b, "  %s: %s;\n", k, s.Properties[k])
	}
	for _, k := range slices.Sorted(maps.Keys(s.Variables)) {
		fmt.Fprintf(&b, "  %s: %s;\n", k, s.Variables[k])
	}
	b.WriteString("}\n")
	return b.String()
}

func setOrDelete(m map[string]string, k, v string) {
	if v == "" {
		delete(m, k)
		return
	}
	m[k] = v
}
