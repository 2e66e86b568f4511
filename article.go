package bookbind

import (
	"context"
	"time"
)

// Article represents one converted web article, ready to be written as a
// chapter of the book.
type Article struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Published   string    `json:"published"` // empty when the page has no date
	Metadata    string    `json:"metadata"`  // site-specific block, often empty
	Content     string    `json:"content"`   // rendered markup body
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	OutputPath  string    `json:"outputPath"`
	ConvertedAt time.Time `json:"convertedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	return nil
}

// BookWriter persists converted articles and the surrounding book scaffolding.
type BookWriter interface {
	// WriteArticle writes one article file and returns its path relative
	// to the output directory.
	WriteArticle(a *Article) (string, error)

	// WriteIndex writes the master index document referencing the given
	// relative paths in order.
	WriteIndex(cfg *Config, relPaths []string) error

	// WriteBuildFile emits the static build helper for compiling the book.
	WriteBuildFile() error
}

// Manifest records completed conversions for later inspection.
type Manifest interface {
	// RecordConversion stores one conversion, replacing any prior record
	// for the same source URL.
	RecordConversion(ctx context.Context, a *Article) error

	// FindConversions returns recorded conversions ordered by position.
	FindConversions(ctx context.Context) ([]*Article, error)
}
