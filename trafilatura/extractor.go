// Package trafilatura provides a readability-based bookbind.Extractor used
// as the fallback for sites with no registered strategy.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/bookbind/bookbind"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements bookbind.Extractor at compile time.
var _ bookbind.Extractor = (*Extractor)(nil)

// Extractor extracts the main content of arbitrary pages. Unlike the
// site-specific extractors it needs no heading element and produces no
// site metadata block; the title comes from page metadata.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract isolates the article content and metadata from the page.
func (e *Extractor) Extract(rawHTML string) (*bookbind.Extraction, error) {
	if rawHTML == "" {
		return nil, bookbind.Errorf(bookbind.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	title := result.Metadata.Title
	if title == "" {
		return nil, bookbind.Errorf(bookbind.ENOTFOUND, "page has no extractable title")
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	published := ""
	if !result.Metadata.Date.IsZero() {
		published = result.Metadata.Date.Format("January 2, 2006")
	}

	return &bookbind.Extraction{
		Title:       title,
		Published:   published,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
