package htmltomarkdown

import (
	"context"

	"github.com/bookbind/bookbind"
)

// Ensure Transformer implements bookbind.Transformer at compile time.
var _ bookbind.Transformer = (*Transformer)(nil)

// Transformer passes the content through unchanged. The Markdown converter
// handles emphasis, links and images natively, so the inline rewrite passes
// used for AsciiDoc output must not run; images keep their remote URLs.
type Transformer struct{}

// NewTransformer creates a new Transformer.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform returns the content unchanged.
func (t *Transformer) Transform(_ context.Context, contentHTML, _ string) (string, error) {
	return contentHTML, nil
}
