// Package goquery implements the site-specific extraction, transformation,
// and rendering strategies on top of parsed HTML documents. One file per
// site variant; shared behavior lives here.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bookbind/bookbind"
)

// boilerplateSelectors lists the known boilerplate elements stripped from
// every page before extraction. Only the first match of each selector is
// removed; absence of any one is not an error.
var boilerplateSelectors = []string{
	"div.site-branding",
	"div.navigation-top",
	"footer.site-footer",
	"div.searchsettings",
	"section#ajaxsearchlitewidget-2",
	"aside#secondary",
	"nav.post-navigation",
	"header#masthead",
}

func parseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, bookbind.Errorf(bookbind.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// cleanup strips the boilerplate elements from the working root.
func cleanup(root *goquery.Selection) {
	for _, selector := range boilerplateSelectors {
		root.Find(selector).First().Remove()
	}
}

// published returns the text of the well-known publish date element, or
// the empty string when the page has none. Shared by all site variants.
func published(doc *goquery.Document) string {
	sel := doc.Find("time.entry-date.published").First()
	if sel.Length() == 0 {
		return ""
	}
	return sel.Text()
}

// innerHTML returns the inner HTML of the selection's first element. The
// content root is passed between pipeline stages as its inner HTML so that
// downstream stages walk its children, not the root element itself.
func innerHTML(sel *goquery.Selection) (string, error) {
	htm, err := sel.Html()
	if err != nil {
		return "", bookbind.Errorf(bookbind.EINTERNAL, "failed to serialize content: %v", err)
	}
	return htm, nil
}

// Ensure GenericExtractor implements bookbind.Extractor at compile time.
var _ bookbind.Extractor = (*GenericExtractor)(nil)

// GenericExtractor handles pages from sites with no registered variant.
// It requires a top-level heading element for the title and uses the whole
// page body, post-cleanup, as the content root.
type GenericExtractor struct{}

// NewGenericExtractor creates a new GenericExtractor.
func NewGenericExtractor() *GenericExtractor {
	return &GenericExtractor{}
}

// Extract isolates the article content and metadata from the page.
func (e *GenericExtractor) Extract(html string) (*bookbind.Extraction, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	title := doc.Find("h1").First()
	if title.Length() == 0 {
		return nil, bookbind.Errorf(bookbind.ENOTFOUND, "page has no top-level heading element")
	}

	cleanup(doc.Selection)

	content, err := innerHTML(doc.Find("body").First())
	if err != nil {
		return nil, err
	}

	return &bookbind.Extraction{
		Title:       strings.TrimSpace(title.Text()),
		Published:   published(doc),
		ContentHTML: content,
	}, nil
}
