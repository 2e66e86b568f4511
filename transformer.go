package bookbind

import "context"

// Transformer rewrites inline elements (emphasis, links, images) of the
// extracted content into markup-ready text nodes. Image elements are
// resolved against pageURL and materialized through an ImageStore before
// being replaced.
type Transformer interface {
	Transform(ctx context.Context, contentHTML, pageURL string) (string, error)
}
