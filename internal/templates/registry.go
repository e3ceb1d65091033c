package templates

import (
	"fmt"
	"strings"
)

// DefaultTemplateName is the template used when none is specified.
const DefaultTemplateName = "version-go"

// templates is the internal registry of built-in templates.
var templates = map[string]Template{
	"version-go": {
		Name:        "version-go",
		File:        "version-go.tmpl",
		Target:      "version.go",
		Description: "Go source file with revision, branch and version constants",
	},
	"build-info": {
		Name:        "build-info",
		File:        "build-info.tmpl",
		Target:      "build-info.json",
		Description: "JSON document describing the build commit",
	},
	"release-notes": {
		Name:        "release-notes",
		File:        "release-notes.tmpl",
		Target:      "RELEASE_NOTES.md",
		Description: "Markdown release notes from the last commit",
	},
	"version": {
		Name:        "version",
		File:        "version.tmpl",
		Target:      "VERSION",
		Description: "Single line with the current tag or short revision",
	},
}

// Get returns a built-in template by name.
// Returns an error if the template is not found.
func Get(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: %s", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// List returns all built-in templates in name order.
func List() []Template {
	names := Names()
	list := make([]Template, 0, len(names))
	for _, name := range names {
		list = append(list, templates[name])
	}
	return list
}

// Names returns all template names.
func Names() []string {
	return []string{"build-info", "release-notes", "version", "version-go"}
}
