package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-figure/pkg/model"
)

// Scenario pairs a figure input with a readable name for table tests.
type Scenario struct {
	Name  string
	Input model.FigureInput
}

// Scenarios returns the reference inputs every renderer is exercised with.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "plain", Input: model.FigureInput{Src: "cat.png", Caption: "A cat"}},
		{Name: "styled", Input: model.FigureInput{Src: "chart.svg", Caption: "Revenue by quarter", StyleClass: "wide"}},
		{Name: "empty", Input: model.FigureInput{}},
		{Name: "markup", Input: model.FigureInput{Src: "a.png?x=1&y=2", Caption: `Tom & "Jerry" <3`, StyleClass: "a b"}},
	}
}

// ParseHTML parses rendered markup into a goquery document.
func ParseHTML(t *testing.T, output []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(output))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// AssertFigureMarkup checks the rendered HTML holds exactly one figure with one
// img and one figcaption, in that order, carrying the input's values.
func AssertFigureMarkup(t *testing.T, output []byte, input model.FigureInput) {
	t.Helper()

	doc := ParseHTML(t, output)
	figures := doc.Find("figure")
	if figures.Length() != 1 {
		t.Fatalf("expected one figure, got %d in %s", figures.Length(), output)
	}

	class, hasClass := figures.Attr("class")
	if input.HasStyleClass() {
		if !hasClass || class != input.StyleClass {
			t.Fatalf("expected class %q, got %q (present=%v)", input.StyleClass, class, hasClass)
		}
	} else if hasClass {
		t.Fatalf("expected no class attribute, got %q", class)
	}

	children := figures.Children()
	if children.Length() != 2 {
		t.Fatalf("expected two children, got %d", children.Length())
	}
	img, caption := children.Eq(0), children.Eq(1)
	if goquery.NodeName(img) != "img" || goquery.NodeName(caption) != "figcaption" {
		t.Fatalf("unexpected children %s, %s", goquery.NodeName(img), goquery.NodeName(caption))
	}

	src, _ := img.Attr("src")
	alt, hasAlt := img.Attr("alt")
	if src != input.Src {
		t.Fatalf("src mismatch: want %q, got %q", input.Src, src)
	}
	if !hasAlt || alt != input.Caption {
		t.Fatalf("alt mismatch: want %q, got %q (present=%v)", input.Caption, alt, hasAlt)
	}
	if text := caption.Text(); text != input.Caption {
		t.Fatalf("caption mismatch: want %q, got %q", input.Caption, text)
	}
	if alt != caption.Text() {
		t.Fatalf("alt %q and caption %q diverged", alt, caption.Text())
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
