package goquery

import (
	"strings"

	"github.com/bookbind/bookbind"
)

// Ensure MorningPaperExtractor implements bookbind.Extractor at compile time.
var _ bookbind.Extractor = (*MorningPaperExtractor)(nil)

// MorningPaperExtractor handles blog.acolyer.org (The Morning Paper)
// articles.
type MorningPaperExtractor struct{}

// NewMorningPaperExtractor creates a new MorningPaperExtractor.
func NewMorningPaperExtractor() *MorningPaperExtractor {
	return &MorningPaperExtractor{}
}

// Extract isolates the article content and metadata from the page.
func (e *MorningPaperExtractor) Extract(html string) (*bookbind.Extraction, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	title := doc.Find("h1.entry-title").First()
	if title.Length() == 0 {
		return nil, bookbind.Errorf(bookbind.ENOTFOUND, "page has no entry-title heading")
	}

	root := doc.Find("div.entry-content").First()
	if root.Length() == 0 {
		return nil, bookbind.Errorf(bookbind.ENOTFOUND, "page has no entry-content container")
	}
	cleanup(root)

	content, err := innerHTML(root)
	if err != nil {
		return nil, err
	}

	return &bookbind.Extraction{
		Title:       strings.TrimSpace(title.Text()),
		Published:   published(doc),
		ContentHTML: content,
	}, nil
}
