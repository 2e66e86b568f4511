package bookbind

// Extraction holds the article parts isolated from a downloaded page.
type Extraction struct {
	// Title is the article heading text.
	Title string

	// Published is the publish date text, empty when the page has none.
	Published string

	// Metadata is a pre-formatted site-specific block, usually empty.
	Metadata string

	// ContentHTML is the article body as clean HTML. Boilerplate
	// (navigation, footers, widgets) has been removed.
	ContentHTML string
}

// Extractor isolates the article content and metadata from a full page.
// Implementations are site-specific; a missing expected element (such as
// the title heading) is an ENOTFOUND error that aborts the conversion.
type Extractor interface {
	Extract(html string) (*Extraction, error)
}
