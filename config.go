package bookbind

// Output formats for rendered articles.
const (
	FormatAsciiDoc = "asciidoc"
	FormatMarkdown = "markdown"
)

// Fallback strategies for URLs that match no known site.
const (
	// FallbackStrict uses the generic extractor, which requires the page
	// to carry a top-level heading element.
	FallbackStrict = "strict"

	// FallbackAuto uses readability-based extraction for unknown sites.
	FallbackAuto = "auto"
)

// Config describes one book: its front matter and the ordered list of
// article URLs to convert.
type Config struct {
	Title     string   `json:"title" yaml:"title"`
	Author    string   `json:"author" yaml:"author"`
	Version   string   `json:"version" yaml:"version"`
	Homepage  string   `json:"homepage" yaml:"homepage"`
	OutputDir string   `json:"output_dir" yaml:"output_dir"`
	URLs      []string `json:"urls" yaml:"urls"`

	// Format selects the output markup; defaults to FormatAsciiDoc.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Fallback selects extraction behavior for unknown sites; defaults
	// to FallbackStrict.
	Fallback string `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.Title == "" {
		return Errorf(EINVALID, "book title required")
	}
	if c.OutputDir == "" {
		return Errorf(EINVALID, "output directory required")
	}
	if len(c.URLs) == 0 {
		return Errorf(EINVALID, "at least one article URL required")
	}
	switch c.Format {
	case "", FormatAsciiDoc, FormatMarkdown:
	default:
		return Errorf(EINVALID, "unknown output format %q", c.Format)
	}
	switch c.Fallback {
	case "", FallbackStrict, FallbackAuto:
	default:
		return Errorf(EINVALID, "unknown fallback mode %q", c.Fallback)
	}
	return nil
}

// OutputFormat returns the configured format, defaulting to AsciiDoc.
func (c *Config) OutputFormat() string {
	if c.Format == "" {
		return FormatAsciiDoc
	}
	return c.Format
}
