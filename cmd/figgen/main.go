package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-figure/internal/prompt"
	"github.com/goliatone/go-figure/pkg/catalog"
	"github.com/goliatone/go-figure/pkg/model"
	"github.com/goliatone/go-figure/pkg/orchestrator"
	"github.com/goliatone/go-figure/pkg/render"
	"github.com/goliatone/go-figure/pkg/renderers/dom"
	"github.com/goliatone/go-figure/pkg/renderers/jsx"
	"github.com/goliatone/go-figure/pkg/renderers/vanilla"
)

func main() {
	src := flag.String("src", "", "image source (URL or path)")
	caption := flag.String("caption", "", "caption and alt text")
	class := flag.String("class", "", "optional style class for the figure")
	rendererName := flag.String("renderer", vanilla.Name, "renderer to use")
	catalogPath := flag.String("catalog", "", "JSON/YAML catalog of figures (and themes)")
	only := flag.String("id", "", "render a single catalog entry")
	themeName := flag.String("theme", "", "theme name from the catalog")
	variant := flag.String("variant", "", "theme variant")
	document := flag.Bool("document", false, "wrap output in a standalone document")
	sanitize := flag.Bool("sanitize", false, "sanitize HTML output")
	interactive := flag.Bool("interactive", false, "prompt for figure values")
	output := flag.String("output", "", "output file (stdout if empty)")
	list := flag.Bool("list", false, "list renderers and exit")
	flag.Parse()

	ctx := context.Background()

	var options []orchestrator.Option
	options = append(options, orchestrator.WithRegistry(newRegistry(*sanitize)))

	var figures *catalog.Catalog
	if *catalogPath != "" {
		loaded, err := catalog.LoadFile(*catalogPath)
		if err != nil {
			log.Fatalf("catalog: %v", err)
		}
		figures = loaded
		options = append(options, orchestrator.WithThemeManifests(loaded.Manifests()...))
	}

	gen := orchestrator.New(options...)
	if *list {
		fmt.Println(strings.Join(gen.Renderers(), "\n"))
		return
	}

	req := orchestrator.Request{
		Renderer:      *rendererName,
		ThemeName:     *themeName,
		ThemeVariant:  *variant,
		RenderOptions: render.RenderOptions{Document: *document},
	}

	var out []byte
	switch {
	case figures != nil:
		rendered, err := renderCatalog(ctx, gen, figures, *only, req)
		if err != nil {
			log.Fatalf("render catalog: %v", err)
		}
		out = rendered
	default:
		req.Figure = model.FigureInput{Src: *src, Caption: *caption, StyleClass: *class}
		if *interactive {
			collected, err := prompt.Collect(ctx, prompt.NewSurveyDriver(), req.Figure)
			if errors.Is(err, prompt.ErrAborted) {
				os.Exit(130)
			}
			if err != nil {
				log.Fatalf("prompt: %v", err)
			}
			req.Figure = collected
		}
		rendered, err := gen.Generate(ctx, req)
		if err != nil {
			log.Fatalf("render figure: %v", err)
		}
		out = rendered
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		log.Printf("figure written to %s", *output)
		return
	}
	fmt.Println(string(out))
}

func newRegistry(sanitize bool) *render.Registry {
	var (
		vanillaOpts []vanilla.Option
		domOpts     []dom.Option
	)
	if sanitize {
		vanillaOpts = append(vanillaOpts, vanilla.WithSanitizer(render.FigurePolicy()))
		domOpts = append(domOpts, dom.WithSanitizer(render.FigurePolicy()))
	}

	html, err := vanilla.New(vanillaOpts...)
	if err != nil {
		log.Fatalf("vanilla renderer: %v", err)
	}
	return render.NewRegistry(html, dom.New(domOpts...), jsx.New())
}

func renderCatalog(ctx context.Context, gen *orchestrator.Orchestrator, figures *catalog.Catalog, id string, req orchestrator.Request) ([]byte, error) {
	if id != "" {
		entry, ok := figures.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("figure %q not found in catalog", id)
		}
		req.Figure = entry.Figure
		return gen.Generate(ctx, req)
	}

	results, err := gen.GenerateCatalog(ctx, figures, req)
	if err != nil {
		return nil, err
	}
	parts := make([]string, 0, len(results))
	for _, result := range results {
		parts = append(parts, string(result.Output))
	}
	return []byte(strings.Join(parts, "\n")), nil
}
