package importer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlPair struct {
	Light map[string]string `yaml:"light"`
	Dark  map[string]string `yaml:"dark"`
}

type yamlDocument struct {
	Name    string            `yaml:"name"`
	Light   map[string]string `yaml:"light"`
	Dark    map[string]string `yaml:"dark"`
	CSSVars *yamlPair         `yaml:"cssVars"`
	Styles  *yamlPair         `yaml:"styles"`
}

func decodeYAML(data []byte) (document, error) {
	var raw yamlDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return document{}, &ValidationError{Err: fmt.Errorf("malformed YAML: %w", err)}
	}
	doc := document{name: raw.Name}
	pair := yamlPair{Light: raw.Light, Dark: raw.Dark}
	switch {
	case raw.Light != nil || raw.Dark != nil:
	case raw.CSSVars != nil:
		pair = *raw.CSSVars
	case raw.Styles != nil:
		pair = *raw.Styles
	}
	// A present but empty section decodes to a non-nil empty map only when
	// written as "{}"; "light:" alone decodes to nil and counts as missing.
	doc.light, doc.hasLight = pair.Light, pair.Light != nil
	doc.dark, doc.hasDark = pair.Dark, pair.Dark != nil
	return doc, nil
}
