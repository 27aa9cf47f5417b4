package jira

import (
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
)

// TemplateFuncMap returns the helper functions available to resource
// templates: the sprig text helpers plus JIRA-specific ones.
func TemplateFuncMap() template.FuncMap {
	fm := sprig.TxtFuncMap()
	fm["formatJiraDate"] = formatJiraDate
	fm["dig"] = templateDig
	return fm
}

// RenderResource executes a text/template against the raw value of a mapped
// resource, so templates navigate the payload with plain field syntax:
//
//	{{ .fields.summary }} ({{ .fields.status.name }})
func RenderResource(w io.Writer, text string, r *Resource) error {
	tmpl, err := template.New("resource").Funcs(TemplateFuncMap()).Parse(text)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r.Value())
}

// formatJiraDate parses a JIRA timestamp and returns it formatted using the
// provided layout. If parsing fails, the original string is returned.
func formatJiraDate(input, layout string) string {
	input = strings.Replace(input, "Z", "+0000", 1) // normalize timezone
	parsed, err := time.Parse("2006-01-02T15:04:05.000-0700", input)
	if err != nil {
		return input
	}
	return parsed.Format(layout)
}

// templateDig returns the string value of m[key] if it exists and is a string.
// If m is itself a string, it is returned directly.
func templateDig(m any, key string) string {
	switch v := m.(type) {
	case map[string]any:
		if val, ok := v[key]; ok {
			if s, ok := val.(string); ok {
				return s
			}
		}
	case string:
		return v
	}
	return ""
}
