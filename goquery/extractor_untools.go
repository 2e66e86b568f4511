package goquery

import (
	"fmt"
	"strings"

	"github.com/bookbind/bookbind"
)

// Ensure UntoolsExtractor implements bookbind.Extractor at compile time.
var _ bookbind.Extractor = (*UntoolsExtractor)(nil)

// UntoolsExtractor handles untools.co articles. The site is generated with
// hashed CSS module class names, so every lookup matches on the stable
// class-name prefix.
type UntoolsExtractor struct{}

// NewUntoolsExtractor creates a new UntoolsExtractor.
func NewUntoolsExtractor() *UntoolsExtractor {
	return &UntoolsExtractor{}
}

// Extract isolates the article content and metadata from the page.
// The metadata block carries the article's tag label and its
// "when useful" note wrapped in sidebar delimiters.
func (e *UntoolsExtractor) Extract(html string) (*bookbind.Extraction, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	header := doc.Find("div[class*='article-module--top--']").First()
	if header.Length() == 0 {
		return nil, bookbind.Errorf(bookbind.ENOTFOUND, "untools page has no article header")
	}

	title := header.Find("h2").First()
	if title.Length() == 0 {
		return nil, bookbind.Errorf(bookbind.ENOTFOUND, "untools article header has no heading")
	}

	tag := header.Find("span[class*='tag-module--tag--']").First().Text()
	usage := header.Find("div[class*='article-module--when-useful--']").First().Text()
	metadata := fmt.Sprintf(".%s\n****\n%s\n****\n\n", strings.TrimSpace(tag), strings.TrimSpace(usage))

	root := doc.Find("[class*='article-module--content--']").First()
	if root.Length() == 0 {
		return nil, bookbind.Errorf(bookbind.ENOTFOUND, "untools page has no content container")
	}
	cleanup(root)

	content, err := innerHTML(root)
	if err != nil {
		return nil, err
	}

	return &bookbind.Extraction{
		Title:       strings.TrimSpace(title.Text()),
		Published:   published(doc),
		Metadata:    metadata,
		ContentHTML: content,
	}, nil
}
