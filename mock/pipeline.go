package mock

import (
	"context"
	"io"

	"github.com/bookbind/bookbind"
)

var _ bookbind.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of bookbind.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*bookbind.Extraction, error)
}

func (e *Extractor) Extract(html string) (*bookbind.Extraction, error) {
	return e.ExtractFn(html)
}

var _ bookbind.Transformer = (*Transformer)(nil)

// Transformer is a mock implementation of bookbind.Transformer.
type Transformer struct {
	TransformFn func(ctx context.Context, contentHTML, pageURL string) (string, error)
}

func (t *Transformer) Transform(ctx context.Context, contentHTML, pageURL string) (string, error) {
	return t.TransformFn(ctx, contentHTML, pageURL)
}

var _ bookbind.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of bookbind.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, contentHTML string) error
}

func (r *Renderer) Render(w io.Writer, contentHTML string) error {
	return r.RenderFn(w, contentHTML)
}

var _ bookbind.StrategyRegistry = (*StrategyRegistry)(nil)

// StrategyRegistry is a mock implementation of bookbind.StrategyRegistry.
type StrategyRegistry struct {
	ForURLFn func(url string) *bookbind.Strategy
	ListFn   func() []bookbind.Site
}

func (r *StrategyRegistry) ForURL(url string) *bookbind.Strategy {
	return r.ForURLFn(url)
}

func (r *StrategyRegistry) List() []bookbind.Site {
	if r.ListFn == nil {
		return nil
	}
	return r.ListFn()
}
