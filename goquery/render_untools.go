package goquery

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bookbind/bookbind"
	"golang.org/x/net/html"
)

// Ensure UntoolsRenderer implements bookbind.Renderer at compile time.
var _ bookbind.Renderer = (*UntoolsRenderer)(nil)

// UntoolsRenderer renders untools.co content. After transformation the
// site's containers hold text-only content, so the container handler emits
// the flattened text directly instead of recursing.
type UntoolsRenderer struct {
	*Renderer
}

// NewUntoolsRenderer creates a new UntoolsRenderer.
func NewUntoolsRenderer(logger *slog.Logger) *UntoolsRenderer {
	r := NewRenderer(logger)
	r.handlers["div"] = func(w io.Writer, n *html.Node) error {
		_, err := fmt.Fprintf(w, "%s\n\n", nodeText(n))
		return err
	}
	return &UntoolsRenderer{Renderer: r}
}
