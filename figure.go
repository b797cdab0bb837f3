// Package figure renders captioned images. Build turns a FigureInput into a
// structural fragment (figure > img + figcaption); the orchestrator renders
// that fragment as HTML, a DOM serialisation or JSX.
package figure

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-figure/pkg/model"
	"github.com/goliatone/go-figure/pkg/orchestrator"
	"github.com/goliatone/go-figure/pkg/render"
)

// Input aliases model.FigureInput for callers using the root package only.
type Input = model.FigureInput

// Node aliases model.Node, the structural fragment type.
type Node = model.Node

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// Build returns the structural fragment for input. It is pure and never fails.
func Build(input Input) Node {
	return model.Build(input)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML builds and renders a single figure with the named renderer. An
// empty name uses the default vanilla renderer.
func GenerateHTML(ctx context.Context, input Input, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Figure:   input,
		Renderer: rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeManifests registers in-memory theme manifests with the
// orchestrator.
func WithThemeManifests(manifests ...*theme.Manifest) orchestrator.Option {
	return orchestrator.WithThemeManifests(manifests...)
}

// WithThemeProvider constructs a go-theme selector from a ThemeProvider and
// applies the default theme and variant to every request.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) orchestrator.Option {
	return orchestrator.WithThemeProvider(provider, defaultTheme, defaultVariant)
}
