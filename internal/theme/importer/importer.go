// Package importer parses externally supplied theme documents into the same
// shape as a catalog preset and rejects malformed input.
package importer

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/HerbHall/authdeck/internal/theme/color"
)

// MaxSize bounds an imported document.
const MaxSize = 100 * 1024

// Variant section names.
const (
	SectionLight = "light"
	SectionDark  = "dark"
)

// ErrInvalidTheme is matched by every validation failure.
var ErrInvalidTheme = errors.New("invalid theme")

// Format is a supported document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSS  Format = "css"
)

// Theme is a normalized imported preset.
type Theme struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Light       map[string]string `json:"light"`
	Dark        map[string]string `json:"dark"`
}

// ValidationError reports which section (and variable, when known) failed.
type ValidationError struct {
	Section  string
	Variable string
	Err      error
}

func (e *ValidationError) Error() string {
	switch {
	case e.Section == "":
		return fmt.Sprintf("invalid theme: %v", e.Err)
	case e.Variable == "":
		return fmt.Sprintf("invalid theme: %s: %v", e.Section, e.Err)
	default:
		return fmt.Sprintf("invalid theme: %s: %s: %v", e.Section, e.Variable, e.Err)
	}
}

func (e *ValidationError) Unwrap() []error { return []error{ErrInvalidTheme, e.Err} }

// Options tune Parse.
type Options struct {
	// Format forces the decoder; empty means detect.
	Format Format
	// Name is used when the document carries none.
	Name string
	// Source describes where the document came from (file name, "upload").
	Source string
}

var (
	errEmptySection   = errors.New("no color variables")
	errMissingSection = errors.New("section missing")

	// Theme documents routinely ship these alongside colors.
	nonColorVariable = regexp.MustCompile(`^--(radius|font-|shadow|spacing|tracking|letter-spacing)`)
)

// Parse decodes, normalizes and validates a theme document.
func Parse(data []byte, opts Options) (Theme, error) {
	if len(data) > MaxSize {
		return Theme{}, &ValidationError{Err: fmt.Errorf("document exceeds %d bytes", MaxSize)}
	}
	format := opts.Format
	if format == "" {
		format = Detect(data, opts.Source)
	}

	var (
		doc document
		err error
	)
	switch format {
	case FormatJSON:
		doc, err = decodeJSON(data)
	case FormatYAML:
		doc, err = decodeYAML(data)
	case FormatCSS:
		doc, err = decodeCSS(data)
	default:
		err = &ValidationError{Err: fmt.Errorf("unsupported format %q", format)}
	}
	if err != nil {
		return Theme{}, err
	}

	t := Theme{
		ID:          "imported-" + uuid.NewString(),
		Name:        firstNonEmpty(doc.name, opts.Name, "Imported theme"),
		Description: describe(opts.Source, format),
	}
	if !doc.hasLight {
		return Theme{}, &ValidationError{Section: SectionLight, Err: errMissingSection}
	}
	if !doc.hasDark {
		return Theme{}, &ValidationError{Section: SectionDark, Err: errMissingSection}
	}
	t.Light = normalize(doc.light)
	t.Dark = normalize(doc.dark)
	if err := Validate(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Validate checks that both sections are non-empty and every value is a
// color. Variables are checked in name order so errors are stable.
func Validate(t Theme) error {
	for _, sec := range []struct {
		name string
		vars map[string]string
	}{{SectionLight, t.Light}, {SectionDark, t.Dark}} {
		if len(sec.vars) == 0 {
			return &ValidationError{Section: sec.name, Err: errEmptySection}
		}
		names := make([]string, 0, len(sec.vars))
		for k := range sec.vars {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			if !strings.HasPrefix(k, "--") || len(k) < 3 {
				return &ValidationError{Section: sec.name, Variable: k, Err: errors.New("variable names must start with --")}
			}
			if _, err := color.Parse(sec.vars[k]); err != nil {
				return &ValidationError{Section: sec.name, Variable: k, Err: err}
			}
		}
	}
	return nil
}

// Detect guesses the format from a file name extension, falling back to
// sniffing the content.
func Detect(data []byte, name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".css":
		return FormatCSS
	}
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte("{")):
		return FormatJSON
	case bytes.Contains(trimmed, []byte("{")) && bytes.Contains(trimmed, []byte("--")):
		return FormatCSS
	default:
		return FormatYAML
	}
}

// FormatFromContentType maps an HTTP media type to a format; empty when unknown.
func FormatFromContentType(ct string) Format {
	ct = strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
	switch ct {
	case "application/json":
		return FormatJSON
	case "application/yaml", "application/x-yaml", "text/yaml":
		return FormatYAML
	case "text/css":
		return FormatCSS
	}
	return ""
}

// document is the decoder output before normalization.
type document struct {
	name              string
	light, dark       map[string]string
	hasLight, hasDark bool
}

func normalize(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		k = strings.TrimSpace(k)
		if !strings.HasPrefix(k, "--") {
			k = "--" + k
		}
		if nonColorVariable.MatchString(k) {
			continue
		}
		out[k] = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "!important"))
	}
	return out
}

func describe(source string, f Format) string {
	if source == "" {
		return fmt.Sprintf("%s document", f)
	}
	return fmt.Sprintf("%s document from %s", f, source)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
