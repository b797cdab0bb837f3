package render

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans serialised markup before it leaves a renderer.
type Sanitizer interface {
	Sanitize(markup string) string
}

// SanitizerFunc adapts a function into a Sanitizer.
type SanitizerFunc func(string) string

// Sanitize calls the underlying function.
func (fn SanitizerFunc) Sanitize(markup string) string {
	return fn(markup)
}

var (
	figurePolicyOnce sync.Once
	figurePolicy     *bluemonday.Policy
)

// FigurePolicy returns a shared bluemonday policy that keeps figure markup and
// drops everything else. Image sources are limited to http(s), relative URLs
// and data URI images.
func FigurePolicy() *bluemonday.Policy {
	figurePolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("figure", "figcaption", "img")
		policy.AllowNoAttrs().OnElements("figure", "figcaption")
		policy.AllowAttrs("class").OnElements("figure")
		policy.AllowAttrs("src", "alt").OnElements("img")
		policy.AllowStandardURLs()
		policy.AllowDataURIImages()
		figurePolicy = policy
	})
	return figurePolicy
}
