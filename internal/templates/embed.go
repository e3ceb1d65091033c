package templates

import (
	"embed"
	"fmt"
)

//go:embed builtin/*.tmpl
var builtinFS embed.FS

// Source returns the source text of a built-in template.
func Source(name string) (string, error) {
	t, err := Get(name)
	if err != nil {
		return "", err
	}
	content, err := builtinFS.ReadFile("builtin/" + t.File)
	if err != nil {
		return "", fmt.Errorf("reading built-in template %s: %w", name, err)
	}
	return string(content), nil
}
