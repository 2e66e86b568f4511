package fs

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bookbind/bookbind"
)

// makefileTemplate is the static build helper emitted next to the index.
// It drives asciidoctor; the converter itself never invokes it.
const makefileTemplate = `html:
	asciidoctor index.asciidoc -d book -b html5 -D output
	cp -r images output/

epub:
	asciidoctor-epub3 index.asciidoc -d book -D output
`

// Ensure BookWriter implements bookbind.BookWriter at compile time.
var _ bookbind.BookWriter = (*BookWriter)(nil)

// BookWriter writes article chapters, the master index, and the build
// helper under the output directory. Output files are regenerated on every
// run; only the caches prevent re-downloading, never re-rendering.
type BookWriter struct {
	root   string
	format string
}

// NewBookWriter creates a BookWriter for the given output directory and
// format (bookbind.FormatAsciiDoc or bookbind.FormatMarkdown).
func NewBookWriter(root, format string) *BookWriter {
	return &BookWriter{root: root, format: format}
}

// ArticleSlug returns the directory name for an article: the last path
// segment of its URL. Root URLs fall back to "index".
func ArticleSlug(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", bookbind.Errorf(bookbind.EINVALID, "invalid article URL %q: %v", rawURL, err)
	}
	slug := path.Base(strings.TrimRight(u.Path, "/"))
	if slug == "." || slug == "/" || slug == "" {
		slug = "index"
	}
	return slug, nil
}

func (w *BookWriter) fileName() string {
	if w.format == bookbind.FormatMarkdown {
		return "index.md"
	}
	return "index.asciidoc"
}

// FormatArticle renders the complete chapter file: title heading, the
// original-article link with optional publish date, the site-specific
// metadata block, then the rendered content body.
func (w *BookWriter) FormatArticle(a *bookbind.Article) string {
	var b strings.Builder
	if w.format == bookbind.FormatMarkdown {
		b.WriteString("# ")
		b.WriteString(a.Title)
		b.WriteString("\n\n[original article](")
		b.WriteString(a.SourceURL)
		b.WriteString(")")
	} else {
		b.WriteString("== ")
		b.WriteString(a.Title)
		b.WriteString("\n\nlink:")
		b.WriteString(a.SourceURL)
		b.WriteString("[original article]")
	}
	if a.Published != "" {
		b.WriteString(" published on ")
		b.WriteString(a.Published)
	}
	b.WriteString("\n\n")
	b.WriteString(a.Metadata)
	b.WriteString(a.Content)
	return b.String()
}

// WriteArticle writes one chapter at <root>/<slug>/index.<ext> and returns
// the path relative to the output directory.
func (w *BookWriter) WriteArticle(a *bookbind.Article) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}

	slug, err := ArticleSlug(a.SourceURL)
	if err != nil {
		return "", err
	}

	relPath := filepath.Join(slug, w.fileName())
	fullPath := filepath.Join(w.root, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, []byte(w.FormatArticle(a)), 0644); err != nil {
		return "", err
	}

	return relPath, nil
}

// FormatIndex renders the master index document: the configured preamble
// followed by one include directive per chapter, in configured order.
func FormatIndex(cfg *bookbind.Config, relPaths []string) string {
	var b strings.Builder
	b.WriteString("= ")
	b.WriteString(cfg.Title)
	b.WriteString("\n")
	b.WriteString(cfg.Author)
	b.WriteString("\n")
	b.WriteString(cfg.Version)
	b.WriteString("\n:toc:\n:imagesdir: ")
	b.WriteString(ImageDirName)
	b.WriteString("\n:homepage: ")
	b.WriteString(cfg.Homepage)
	b.WriteString("\n\n")
	for _, p := range relPaths {
		b.WriteString("include::")
		b.WriteString(filepath.ToSlash(p))
		b.WriteString("[]\n")
	}
	return b.String()
}

// FormatIndexMarkdown renders the Markdown table of contents used instead
// of the AsciiDoc master index when the book is built in markdown format.
func FormatIndexMarkdown(cfg *bookbind.Config, relPaths []string) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(cfg.Title)
	b.WriteString("\n\n")
	b.WriteString(cfg.Author)
	b.WriteString("\n")
	b.WriteString(cfg.Version)
	b.WriteString("\n\n[homepage](")
	b.WriteString(cfg.Homepage)
	b.WriteString(")\n\n")
	for i, p := range relPaths {
		fmt.Fprintf(&b, "%d. [%s](%s)\n", i+1, path.Dir(filepath.ToSlash(p)), filepath.ToSlash(p))
	}
	return b.String()
}

// WriteIndex writes the master index at <root>/index.asciidoc, or a
// Markdown table of contents at <root>/index.md in markdown format.
func (w *BookWriter) WriteIndex(cfg *bookbind.Config, relPaths []string) error {
	if w.format == bookbind.FormatMarkdown {
		return os.WriteFile(filepath.Join(w.root, "index.md"), []byte(FormatIndexMarkdown(cfg, relPaths)), 0644)
	}
	return os.WriteFile(filepath.Join(w.root, "index.asciidoc"), []byte(FormatIndex(cfg, relPaths)), 0644)
}

// WriteBuildFile emits the Makefile that compiles the book with asciidoctor.
func (w *BookWriter) WriteBuildFile() error {
	return os.WriteFile(filepath.Join(w.root, "Makefile"), []byte(makefileTemplate), 0644)
}
