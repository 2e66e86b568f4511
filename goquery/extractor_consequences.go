package goquery

import (
	"strings"

	"github.com/bookbind/bookbind"
)

// Ensure ConsequencesExtractor implements bookbind.Extractor at compile time.
var _ bookbind.Extractor = (*ConsequencesExtractor)(nil)

// ConsequencesExtractor handles unintendedconsequenc.es articles, a
// WordPress site. The working root is the #page container and the content
// narrows further to the entry-content block.
type ConsequencesExtractor struct{}

// NewConsequencesExtractor creates a new ConsequencesExtractor.
func NewConsequencesExtractor() *ConsequencesExtractor {
	return &ConsequencesExtractor{}
}

// Extract isolates the article content and metadata from the page.
func (e *ConsequencesExtractor) Extract(html string) (*bookbind.Extraction, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	title := doc.Find("h1").First()
	if title.Length() == 0 {
		return nil, bookbind.Errorf(bookbind.ENOTFOUND, "page has no top-level heading element")
	}

	root := doc.Find("#page").First()
	if root.Length() == 0 {
		return nil, bookbind.Errorf(bookbind.ENOTFOUND, "page has no #page container")
	}
	cleanup(root)

	entry := root.Find(".entry-content").First()
	if entry.Length() == 0 {
		return nil, bookbind.Errorf(bookbind.ENOTFOUND, "page has no entry-content container")
	}

	content, err := innerHTML(entry)
	if err != nil {
		return nil, err
	}

	return &bookbind.Extraction{
		Title:       strings.TrimSpace(title.Text()),
		Published:   published(doc),
		ContentHTML: content,
	}, nil
}
