package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Write encodes t in the given format such that Parse reads it back.
func Write(w io.Writer, t Theme, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(exportDoc{Name: t.Name, Light: t.Light, Dark: t.Dark})
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(exportDoc{Name: t.Name, Light: t.Light, Dark: t.Dark}); err != nil {
			return err
		}
		return enc.Close()
	case FormatCSS:
		_, err := io.WriteString(w, CSS(t))
		return err
	}
	return fmt.Errorf("unsupported format %q", f)
}

type exportDoc struct {
	Name  string            `json:"name" yaml:"name"`
	Light map[string]string `json:"light" yaml:"light"`
	Dark  map[string]string `json:"dark" yaml:"dark"`
}

// CSS renders t as :root and .dark blocks with sorted declarations.
func CSS(t Theme) string {
	var b strings.Builder
	writeBlock(&b, ":root", t.Light)
	b.WriteString("\n")
	writeBlock(&b, ".dark", t.Dark)
	return b.String()
}

func writeBlock(b *strings.Builder, selector string, vars map[string]string) {
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)
	b.WriteString(selector + " {\n")
	for _, k := range names {
		fmt.Fprintf(b, "  %s: %s;\n", k, vars[k])
	}
	b.WriteString("}\n")
}
