// Package dom serialises fragments by converting them into golang.org/x/net/html
// nodes and rendering those. Unlike the template renderer it accepts any node
// tree, not only figure fragments.
package dom

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-figure/pkg/model"
	"github.com/goliatone/go-figure/pkg/render"
)

// Name is the registry name of the dom renderer.
const Name = "dom"

type Option func(*Renderer)

// WithSanitizer cleans the serialised fragment before it is returned or
// embedded in a document.
func WithSanitizer(sanitizer render.Sanitizer) Option {
	return func(r *Renderer) {
		r.sanitizer = sanitizer
	}
}

// WithLang sets the lang attribute used in document mode.
func WithLang(lang string) Option {
	return func(r *Renderer) {
		if lang = strings.TrimSpace(lang); lang != "" {
			r.lang = lang
		}
	}
}

type Renderer struct {
	sanitizer render.Sanitizer
	lang      string
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{lang: "en"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
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
	if fragment.Tag == "" {
		return nil, fmt.Errorf("dom renderer: %w: empty tag", model.ErrUnsupportedFragment)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, Convert(fragment)); err != nil {
		return nil, fmt.Errorf("dom renderer: render fragment: %w", err)
	}
	markup := buf.String()
	if r.sanitizer != nil {
		markup = r.sanitizer.Sanitize(markup)
	}
	if !options.Document {
		return []byte(markup), nil
	}

	doc, err := r.document(markup, options.Theme)
	if err != nil {
		return nil, err
	}
	buf.Reset()
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("dom renderer: render document: %w", err)
	}
	return buf.Bytes(), nil
}

// Convert maps a fragment onto an x/net/html element tree.
func Convert(node model.Node) *html.Node {
	el := element(node.Tag)
	for _, attr := range node.Attrs {
		el.Attr = append(el.Attr, html.Attribute{Key: attr.Name, Val: attr.Value})
	}
	if node.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: node.Text})
	}
	for _, child := range node.Children {
		el.AppendChild(Convert(child))
	}
	return el
}

func (r *Renderer) document(markup string, theme *render.ThemeConfig) (*html.Node, error) {
	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("dom renderer: %w", err)
	}

	body := element("body")
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return nil, fmt.Errorf("dom renderer: parse fragment: %w", err)
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}

	head := element("head")
	meta := element("meta")
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)

	root := element("html")
	root.Attr = []html.Attribute{{Key: "lang", Val: r.lang}}
	if theme != nil {
		if theme.Name != "" {
			root.Attr = append(root.Attr, html.Attribute{Key: "data-theme", Val: theme.Name})
		}
		if theme.Variant != "" {
			root.Attr = append(root.Attr, html.Attribute{Key: "data-theme-variant", Val: theme.Variant})
		}
		if theme.Stylesheet != "" {
			link := element("link")
			link.Attr = []html.Attribute{{Key: "rel", Val: "stylesheet"}, {Key: "href", Val: theme.Stylesheet}}
			head.AppendChild(link)
		}
		if rule := theme.CSSRule(); rule != "" {
			style := element("style")
			style.AppendChild(&html.Node{Type: html.TextNode, Data: rule})
			head.AppendChild(style)
		}
	}
	root.AppendChild(head)
	root.AppendChild(body)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)
	return doc, nil
}

func element(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}
