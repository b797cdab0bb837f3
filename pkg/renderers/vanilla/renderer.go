package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-figure/pkg/model"
	"github.com/goliatone/go-figure/pkg/render"
	rendertemplate "github.com/goliatone/go-figure/pkg/render/template"
	gotemplate "github.com/goliatone/go-figure/pkg/render/template/gotemplate"
)

// Name is the registry name of the vanilla renderer.
const Name = "vanilla"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	sanitizer        render.Sanitizer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/figure.tmpl and templates/page.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitizer runs the rendered fragment through sanitizer before it is
// returned or embedded in a page.
func WithSanitizer(sanitizer render.Sanitizer) Option {
	return func(cfg *config) {
		cfg.sanitizer = sanitizer
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	sanitizer render.Sanitizer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, sanitizer: cfg.sanitizer}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, fragment model.Node, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	view, err := model.FigureOf(fragment)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: %w", err)
	}

	markup, err := r.templates.RenderTemplate(figureTemplate, map[string]any{
		"figure": map[string]any{
			"hasClass": view.HasClass,
			"class":    view.Class,
			"src":      view.Src,
			"alt":      view.Alt,
			"caption":  view.Caption,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	if r.sanitizer != nil {
		markup = r.sanitizer.Sanitize(markup)
	}
	if !options.Document {
		return []byte(markup), nil
	}

	if err := options.Theme.Validate(); err != nil {
		return nil, fmt.Errorf("vanilla renderer: %w", err)
	}
	page, err := r.templates.RenderTemplate(pageTemplate, map[string]any{
		"fragment": markup,
		"theme":    themeContext(options.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render page: %w", err)
	}
	return []byte(page), nil
}

func themeContext(cfg *render.ThemeConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":       cfg.Name,
		"variant":    cfg.Variant,
		"stylesheet": cfg.Stylesheet,
		"cssVars":    cfg.CSSRule(),
	}
}
