package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// documentSchema accepts the three shapes themes are published in:
// {"light":{},"dark":{}}, {"cssVars":{...}} and {"styles":{...}}.
const documentSchema = `{
  "type": "object",
  "definitions": {
    "section": {"type": "object", "additionalProperties": {"type": "string"}},
    "pair": {
      "type": "object",
      "properties": {
        "light": {"$ref": "#/definitions/section"},
        "dark": {"$ref": "#/definitions/section"}
      }
    }
  },
  "properties": {
    "name": {"type": "string"},
    "light": {"$ref": "#/definitions/section"},
    "dark": {"$ref": "#/definitions/section"},
    "cssVars": {"$ref": "#/definitions/pair"},
    "styles": {"$ref": "#/definitions/pair"}
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

// sectionRoots are tried in order; the first root holding either section wins.
var sectionRoots = []string{"", "cssVars.", "styles."}

func decodeJSON(data []byte) (document, error) {
	if !gjson.ValidBytes(data) {
		return document{}, &ValidationError{Err: errors.New("malformed JSON")}
	}
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return document{}, &ValidationError{Err: fmt.Errorf("schema check: %w", err)}
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return document{}, &ValidationError{Section: sectionOf(first.Field()), Err: errors.New(first.Description())}
	}

	root := gjson.ParseBytes(data)
	doc := document{name: firstNonEmpty(root.Get("name").String(), root.Get("label").String())}
	for _, prefix := range sectionRoots {
		light, dark := root.Get(prefix+SectionLight), root.Get(prefix+SectionDark)
		if !light.Exists() && !dark.Exists() {
			continue
		}
		doc.light, doc.hasLight = sectionMap(light)
		doc.dark, doc.hasDark = sectionMap(dark)
		break
	}
	return doc, nil
}

func sectionMap(r gjson.Result) (map[string]string, bool) {
	if !r.Exists() {
		return nil, false
	}
	out := make(map[string]string)
	r.ForEach(func(k, v gjson.Result) bool {
		out[k.String()] = v.String()
		return true
	})
	return out, true
}

// sectionOf maps a schema field path like "cssVars.dark.primary" to its section.
func sectionOf(field string) string {
	for _, part := range strings.Split(field, ".") {
		if part == SectionLight || part == SectionDark {
			return part
		}
	}
	return ""
}
