package render_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-figure/pkg/render"
)

func TestFigurePolicy(t *testing.T) {
	policy := render.FigurePolicy()
	if policy != render.FigurePolicy() {
		t.Fatalf("expected shared policy instance")
	}

	input := `<figure class="wide" onclick="x()"><img src="https://example.com/cat.png" alt="A cat" onerror="y()"><figcaption>A cat<script>alert(1)</script></figcaption></figure><p>extra</p>`
	cleaned := policy.Sanitize(input)

	for _, unwanted := range []string{"onclick", "onerror", "<script", "<p>"} {
		if strings.Contains(cleaned, unwanted) {
			t.Fatalf("expected %q stripped, got %s", unwanted, cleaned)
		}
	}
	for _, wanted := range []string{`class="wide"`, `src="https://example.com/cat.png"`, `alt="A cat"`, "<figcaption>"} {
		if !strings.Contains(cleaned, wanted) {
			t.Fatalf("expected %q kept, got %s", wanted, cleaned)
		}
	}
}

func TestSanitizerFunc(t *testing.T) {
	var s render.Sanitizer = render.SanitizerFunc(strings.ToUpper)
	if got := s.Sanitize("a"); got != "A" {
		t.Fatalf("unexpected output %q", got)
	}
}
