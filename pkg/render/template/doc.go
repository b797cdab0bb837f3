// Package template defines the renderer-agnostic template contract. Renderers
// depend on TemplateRenderer; the gotemplate subpackage provides the default
// pongo2 backed engine.
package template
