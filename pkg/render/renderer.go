package render

import (
	"context"

	"github.com/goliatone/go-figure/pkg/model"
)

// Renderer converts a structural fragment into a byte representation (HTML,
// JSX, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, fragment model.Node, options RenderOptions) ([]byte, error)
}
