// Package web holds the HTML templates rendered by the UI controllers.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var Templates embed.FS

// ParseTemplates parses every page template together with the shared layout
func ParseTemplates() (*template.Template, error) {
	return template.New("").Option("missingkey=zero").ParseFS(Templates, "templates/*.html")
}
