package goquery

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/bookbind/bookbind"
)

// Ensure UntoolsTransformer implements bookbind.Transformer at compile time.
var _ bookbind.Transformer = (*UntoolsTransformer)(nil)

// UntoolsTransformer runs the shared passes and then unwraps the article's
// sources container so its children merge into the parent and render as
// regular blocks.
type UntoolsTransformer struct {
	*Transformer
}

// NewUntoolsTransformer creates a new UntoolsTransformer.
func NewUntoolsTransformer(images bookbind.ImageStore) *UntoolsTransformer {
	return &UntoolsTransformer{Transformer: NewTransformer(images)}
}

// Transform applies the shared passes, then the sources unwrap.
func (t *UntoolsTransformer) Transform(ctx context.Context, contentHTML, pageURL string) (string, error) {
	out, err := t.Transformer.Transform(ctx, contentHTML, pageURL)
	if err != nil {
		return "", err
	}

	doc, err := parseDocument(out)
	if err != nil {
		return "", err
	}
	unwrapFirst(doc.Selection, "div[class*='article-module--sources--']")

	return innerHTML(doc.Find("body").First())
}

// unwrapFirst replaces the first element matching the selector with its
// own children. A missing element is a no-op, which also keeps the pass
// idempotent.
func unwrapFirst(root *goquery.Selection, selector string) {
	sel := root.Find(selector).First()
	for _, n := range sel.Nodes {
		parent := n.Parent
		if parent == nil {
			continue
		}
		for c := n.FirstChild; c != nil; {
			next := c.NextSibling
			n.RemoveChild(c)
			parent.InsertBefore(c, n)
			c = next
		}
		parent.RemoveChild(n)
	}
}
