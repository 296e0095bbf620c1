package translate

import (
	"regexp"
	"strings"
)

// Context carries the optional data used to turn opaque IDs and variable
// placeholders into human readable text.
type Context struct {
	AppConfig *AppConfig

	// Elements maps element IDs to their names.
	Elements map[string]string

	// Snippets maps snippet (test) IDs to their names.
	Snippets map[string]string
}

// AppConfig is the application configuration a test runs against.
type AppConfig struct {
	URL       string
	Variables map[string]string
}

// variablePattern matches {{variable-name}} placeholders.
var variablePattern = regexp.MustCompile(`\{\{([A-Za-z0-9_-]+)\}\}`)

// Variables returns the names of the {{name}} placeholders in s, in order
// of appearance.
func Variables(s string) []string {
	var names []string
	for _, m := range variablePattern.FindAllStringSubmatch(s, -1) {
		names = append(names, m[1])
	}
	return names
}

// Substitute replaces {{name}} placeholders with configured variable values.
// Unknown variables are left verbatim.
func (c Context) Substitute(s string) string {
	if c.AppConfig == nil || len(c.AppConfig.Variables) == 0 || !strings.Contains(s, "{{") {
		return s
	}
	return variablePattern.ReplaceAllStringFunc(s, func(m string) string {
		name := variablePattern.FindStringSubmatch(m)[1]
		if v, ok := c.AppConfig.Variables[name]; ok {
			return v
		}
		return m
	})
}

// ElementName resolves an element ID, falling back to the ID itself.
func (c Context) ElementName(id string) string {
	if name, ok := c.Elements[id]; ok && name != "" {
		return name
	}
	return id
}

// SnippetName resolves a snippet ID, falling back to the ID itself.
func (c Context) SnippetName(id string) string {
	if name, ok := c.Snippets[id]; ok && name != "" {
		return name
	}
	return id
}

// AppURL joins the configured application URL with a relative path.
func (c Context) AppURL(relative string) string {
	relative = c.Substitute(relative)
	if c.AppConfig == nil || c.AppConfig.URL == "" {
		return relative
	}
	base := c.Substitute(c.AppConfig.URL)
	if relative == "" {
		return base
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(relative, "/")
}
