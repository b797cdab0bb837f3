package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-figure/pkg/catalog"
	"github.com/goliatone/go-figure/pkg/model"
	"github.com/goliatone/go-figure/pkg/render"
	"github.com/goliatone/go-figure/pkg/renderers/dom"
	"github.com/goliatone/go-figure/pkg/renderers/jsx"
	"github.com/goliatone/go-figure/pkg/renderers/vanilla"
)

const defaultRendererName = vanilla.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithBuilder injects a custom fragment builder.
func WithBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector registers a go-theme selector used to resolve
// Request.ThemeName and Request.ThemeVariant.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeProvider constructs a go-theme selector from a ThemeProvider. When
// defaultTheme is set the theme is applied to every request, including those
// that do not name one.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		if provider == nil {
			return
		}
		o.themeSelector = theme.Selector{
			Registry:       provider,
			DefaultTheme:   defaultTheme,
			DefaultVariant: defaultVariant,
		}
		o.themeByDefault = defaultTheme != ""
	}
}

// WithThemeManifests registers manifests in a go-theme memory registry. The
// first manifest is the fallback for empty or unknown theme names; themes are
// only applied to requests that name a theme or variant.
func WithThemeManifests(manifests ...*theme.Manifest) Option {
	return func(o *Orchestrator) {
		if len(manifests) == 0 {
			return
		}
		registry := theme.NewRegistry()
		for _, manifest := range manifests {
			if err := render.ValidateManifest(manifest); err != nil {
				o.initialiseErr = fmt.Errorf("orchestrator: theme manifests: %w", err)
				return
			}
			if _, err := registry.Get(manifest.Name); err == nil {
				o.initialiseErr = fmt.Errorf("orchestrator: theme manifests: theme %q registered twice", manifest.Name)
				return
			}
			if err := registry.Register(manifest); err != nil {
				o.initialiseErr = fmt.Errorf("orchestrator: theme manifests: %w", err)
				return
			}
		}
		o.themeSelector = theme.Selector{
			Registry:     registry,
			DefaultTheme: manifests[0].Name,
		}
	}
}

// Orchestrator coordinates fragment building, theme resolution and rendering.
// Missing dependencies fall back to the built-in implementations.
type Orchestrator struct {
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	themeSelector   theme.ThemeSelector
	themeByDefault  bool
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a single figure render.
type Request struct {
	Figure model.FigureInput

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant are resolved through the theme selector when
	// either is set, or always when a default theme provider is configured.
	// An explicit RenderOptions.Theme takes precedence.
	ThemeName    string
	ThemeVariant string

	RenderOptions render.RenderOptions
}

// Generate builds the fragment for req.Figure and renders it.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}
	options, err := o.renderOptions(req)
	if err != nil {
		return nil, err
	}

	fragment := o.builder.Build(req.Figure)
	output, err := renderer.Render(ctx, fragment, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Result is one rendered catalog entry.
type Result struct {
	ID     string
	Output []byte
}

// GenerateCatalog renders every catalog entry in order using template for the
// renderer and theme settings. It stops at the first error.
func (o *Orchestrator) GenerateCatalog(ctx context.Context, c *catalog.Catalog, template Request) ([]Result, error) {
	if c == nil {
		return nil, errors.New("orchestrator: catalog is required")
	}
	results := make([]Result, 0, c.Len())
	for _, entry := range c.Entries {
		req := template
		req.Figure = entry.Figure
		output, err := o.Generate(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: figure %q: %w", entry.ID, err)
		}
		results = append(results, Result{ID: entry.ID, Output: output})
	}
	return results, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

// Renderer resolves name the same way Generate does, so callers can read
// metadata such as the content type before rendering.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	return o.rendererFor(name)
}

func (o *Orchestrator) renderOptions(req Request) (render.RenderOptions, error) {
	options := req.RenderOptions
	if options.Theme != nil {
		if err := options.Theme.Validate(); err != nil {
			return options, fmt.Errorf("orchestrator: %w", err)
		}
		return options, nil
	}
	requested := req.ThemeName != "" || req.ThemeVariant != ""
	if !requested && !o.themeByDefault {
		return options, nil
	}
	if o.themeSelector == nil {
		return options, fmt.Errorf("orchestrator: theme %q requested but no theme selector configured", req.ThemeName)
	}
	selection, err := o.themeSelector.Select(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return options, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	cfg, err := render.ThemeConfigFromSelection(selection)
	if err != nil {
		return options, fmt.Errorf("orchestrator: theme %q: %w", selection.Theme, err)
	}
	options.Theme = cfg
	return options, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.builder == nil {
		o.builder = model.NewBuilder()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry(dom.New(), jsx.New())
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
