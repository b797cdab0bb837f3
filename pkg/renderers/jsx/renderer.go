// Package jsx emits fragments as JSX markup for Preact or React sources.
package jsx

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-figure/pkg/model"
	"github.com/goliatone/go-figure/pkg/render"
)

// Name is the registry name of the jsx renderer.
const Name = "jsx"

const defaultComponent = "Figure"

var (
	attrNames = map[string]string{
		"class": "className",
		"for":   "htmlFor",
	}
	voidElements = map[string]struct{}{
		"area": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
		"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
	}
	componentName = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)
)

type Option func(*Renderer)

// WithIndent sets the indentation unit. An empty string renders on one line.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// WithComponentName names the exported component emitted in document mode.
func WithComponentName(name string) Option {
	return func(r *Renderer) {
		if componentName.MatchString(name) {
			r.component = name
		}
	}
}

type Renderer struct {
	indent    string
	component string
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{indent: "  ", component: defaultComponent}
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
	return "text/jsx; charset=utf-8"
}

// Render writes the fragment as JSX. In document mode the markup is wrapped in
// an exported function component; the theme is not used.
func (r *Renderer) Render(ctx context.Context, fragment model.Node, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if fragment.Tag == "" {
		return nil, fmt.Errorf("jsx renderer: %w: empty tag", model.ErrUnsupportedFragment)
	}

	var b strings.Builder
	if !options.Document {
		r.writeNode(&b, fragment, 0)
		return []byte(b.String()), nil
	}

	b.WriteString("export default function ")
	b.WriteString(r.component)
	b.WriteString("() {\n")
	b.WriteString(r.indent)
	b.WriteString("return (\n")
	r.writeNode(&b, fragment, 2)
	b.WriteString("\n")
	b.WriteString(r.indent)
	b.WriteString(");\n}\n")
	return []byte(b.String()), nil
}

func (r *Renderer) writeNode(b *strings.Builder, node model.Node, depth int) {
	pad := strings.Repeat(r.indent, depth)
	b.WriteString(pad)
	b.WriteString("<")
	b.WriteString(node.Tag)
	for _, attr := range node.Attrs {
		b.WriteString(" ")
		b.WriteString(attrName(attr.Name))
		b.WriteString("=")
		b.WriteString(attrValue(attr.Value))
	}

	if _, void := voidElements[node.Tag]; void && node.Text == "" && len(node.Children) == 0 {
		b.WriteString(" />")
		return
	}
	b.WriteString(">")

	if node.Text != "" {
		b.WriteString(textValue(node.Text))
	}
	if len(node.Children) > 0 {
		for _, child := range node.Children {
			r.newline(b)
			r.writeNode(b, child, depth+1)
		}
		r.newline(b)
		b.WriteString(pad)
	}

	b.WriteString("</")
	b.WriteString(node.Tag)
	b.WriteString(">")
}

func (r *Renderer) newline(b *strings.Builder) {
	if r.indent != "" {
		b.WriteString("\n")
	}
}

func attrName(name string) string {
	if mapped, ok := attrNames[name]; ok {
		return mapped
	}
	return name
}

// attrValue uses a plain string literal when JSX can carry the value as-is and
// a JS expression otherwise. JSX decodes HTML entities in string literals, so
// '&' forces the expression form.
func attrValue(value string) string {
	if strings.ContainsAny(value, "\"&\\\n\r") {
		return "{" + jsString(value) + "}"
	}
	return `"` + value + `"`
}

// textValue keeps plain text literal unless it holds characters JSX treats as
// syntax or it would lose leading/trailing whitespace.
func textValue(text string) string {
	if strings.ContainsAny(text, "{}<>&\n\r") || strings.TrimSpace(text) != text {
		return "{" + jsString(text) + "}"
	}
	return text
}

func jsString(value string) string {
	raw, err := json.Marshal(value)
	if err != nil {
		return `""`
	}
	return string(raw)
}
