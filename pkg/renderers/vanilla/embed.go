package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const (
	figureTemplate = "templates/figure.tmpl"
	pageTemplate   = "templates/page.tmpl"
)

// TemplatesFS exposes the embedded template bundle so callers can copy or
// override individual templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
