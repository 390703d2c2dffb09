package document

import (
	"strings"
	"testing"
)

func TestReplaceVariables_NoStaleKeys(t *testing.T) {
	r := NewRoot()
	r.ReplaceVariables("theme", map[string]string{"--a": "#111", "--b": "#222"})
	r.ReplaceVariables("theme", map[string]string{"--a": "#333"})

	vars := r.Variables()
	if len(vars) != 1 || vars["--a"] != "#333" {
		t.Errorf("Variables = %v, want only --a=#333", vars)
	}
}

func TestReplaceVariables_InputCopied(t *testing.T) {
	r := NewRoot()
	in := map[string]string{"--a": "#111"}
	r.ReplaceVariables("theme", in)
	in["--a"] = "#999"

	if got := r.Variables()["--a"]; got != "#111" {
		t.Errorf("--a = %q, want #111", got)
	}
}

func TestReplaceVariables_EmptyClearsGroup(t *testing.T) {
	r := NewRoot()
	r.ReplaceVariables("theme", map[string]string{"--a": "#111"})
	r.ReplaceVariables("theme", nil)

	if vars := r.Variables(); len(vars) != 0 {
		t.Errorf("Variables = %v, want empty", vars)
	}
}

func TestSetVariable_OverridesGroups(t *testing.T) {
	r := NewRoot()
	r.ReplaceVariables("theme", map[string]string{"--radius": "1rem"})
	r.SetVariable("--radius", "0.5rem")

	if got := r.Variables()["--radius"]; got != "0.5rem" {
		t.Errorf("--radius = %q, want 0.5rem", got)
	}

	r.SetVariable("--radius", "")
	if got := r.Variables()["--radius"]; got != "1rem" {
		t.Errorf("after removal --radius = %q, want group value 1rem", got)
	}
}

func TestClassesAndAttributes(t *testing.T) {
	r := NewRoot()
	r.ToggleClass("dark", true)
	r.SetAttribute("data-sidebar-side", "right")

	if !r.HasClass("dark") {
		t.Error("expected dark class")
	}
	if v, ok := r.Attribute("data-sidebar-side"); !ok || v != "right" {
		t.Errorf("Attribute = %q, %v", v, ok)
	}

	r.ToggleClass("dark", false)
	r.SetAttribute("data-sidebar-side", "")
	if r.HasClass("dark") {
		t.Error("dark class not removed")
	}
	if _, ok := r.Attribute("data-sidebar-side"); ok {
		t.Error("attribute not removed")
	}
}

func TestState_RevisionAdvances(t *testing.T) {
	r := NewRoot()
	before := r.State().Revision
	r.SetProperty("color-scheme", "dark")
	after := r.State().Revision

	if after <= before {
		t.Errorf("revision did not advance: %d -> %d", before, after)
	}
}

func TestCSS(t *testing.T) {
	r := NewRoot()
	r.ReplaceVariables("theme", map[string]string{"--b": "#222", "--a": "#111"})
	r.SetVariable("--radius", "0.5rem")
	r.SetProperty("color-scheme", "dark")
	r.ToggleClass("dark", true)
	r.SetAttribute("data-sidebar-variant", "inset")

	var b strings.Builder
	if err := r.WriteCSS(&b); err != nil {
		t.Fatalf("WriteCSS: %v", err)
	}
	want := `/* class="dark" data-sidebar-variant="inset" */
:root {
  color-scheme: dark;
  --a: #111;
  --b: #222;
  --radius: 0.5rem;
}
`
	if b.String() != want {
		t.Errorf("CSS =\n%s\nwant\n%s", b.String(), want)
	}
}
