package importer

import (
	"errors"
	"strings"
)

// decodeCSS collects custom property declarations from :root (light) and
// .dark (dark) rule blocks. A :root block inside
// @media (prefers-color-scheme: dark) is dark. @layer and @supports are
// walked; other at-rules and selectors are ignored.
func decodeCSS(data []byte) (document, error) {
	src := stripComments(string(data))
	doc := document{light: map[string]string{}, dark: map[string]string{}}

	var (
		stack []string
		buf   strings.Builder
	)
	flush := func() {
		decl := strings.TrimSpace(buf.String())
		buf.Reset()
		if decl == "" || len(stack) == 0 {
			return
		}
		name, value, ok := strings.Cut(decl, ":")
		name = strings.TrimSpace(name)
		if !ok || !strings.HasPrefix(name, "--") {
			return
		}
		switch sectionFor(stack) {
		case SectionLight:
			doc.light[name] = strings.TrimSpace(value)
		case SectionDark:
			doc.dark[name] = strings.TrimSpace(value)
		}
	}

	for _, r := range src {
		switch r {
		case '{':
			sel := strings.TrimSpace(buf.String())
			buf.Reset()
			stack = append(stack, sel)
			switch sectionFor(stack) {
			case SectionLight:
				doc.hasLight = true
			case SectionDark:
				doc.hasDark = true
			}
		case '}':
			flush()
			if len(stack) == 0 {
				return document{}, &ValidationError{Err: errors.New("unbalanced braces")}
			}
			stack = stack[:len(stack)-1]
		case ';':
			flush()
		default:
			buf.WriteRune(r)
		}
	}
	if len(stack) != 0 {
		return document{}, &ValidationError{Err: errors.New("unbalanced braces")}
	}
	return doc, nil
}

// sectionFor classifies the innermost rule of stack in the context of the
// at-rules wrapping it.
func sectionFor(stack []string) string {
	if len(stack) == 0 {
		return ""
	}
	dark := false
	for _, outer := range stack[:len(stack)-1] {
		switch wrapper(outer) {
		case wrapDark:
			dark = true
		case wrapIgnore:
			return ""
		}
	}
	section := classify(stack[len(stack)-1])
	if dark && section == SectionLight {
		return SectionDark
	}
	return section
}

type wrapKind int

const (
	wrapTransparent wrapKind = iota
	wrapDark
	wrapIgnore
)

// wrapper reports how an enclosing block affects the rules inside it.
func wrapper(selector string) wrapKind {
	s := strings.Join(strings.Fields(strings.ToLower(selector)), "")
	switch {
	case strings.HasPrefix(s, "@layer"), strings.HasPrefix(s, "@supports"):
		return wrapTransparent
	case strings.HasPrefix(s, "@media"):
		switch {
		case strings.Contains(s, "prefers-color-scheme:dark"):
			return wrapDark
		case strings.Contains(s, "prefers-color-scheme:light"):
			return wrapTransparent
		}
	}
	return wrapIgnore
}

func classify(selector string) string {
	s := strings.Join(strings.Fields(strings.ToLower(selector)), "")
	switch s {
	case ":root", "html", ":host":
		return SectionLight
	case ".dark", ":root.dark", "html.dark", ".dark:root", `[data-theme="dark"]`, "[data-theme=dark]", `:root[data-theme="dark"]`:
		return SectionDark
	}
	return ""
}

func stripComments(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "/*")
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		end := strings.Index(s[start+2:], "*/")
		if end < 0 {
			return b.String()
		}
		s = s[start+2+end+2:]
	}
}
