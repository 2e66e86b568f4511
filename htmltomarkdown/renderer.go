// Package htmltomarkdown provides a Markdown bookbind.Renderer for runs
// configured with the markdown output format.
package htmltomarkdown

import (
	"io"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/bookbind/bookbind"
)

// Ensure Renderer implements bookbind.Renderer at compile time.
var _ bookbind.Renderer = (*Renderer)(nil)

// Renderer converts the content HTML to Markdown instead of AsciiDoc. It
// replaces the tag-dispatch renderer wholesale, so the AsciiDoc-specific
// inline substitutions do not apply in this mode.
type Renderer struct {
	conv *converter.Converter
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Renderer{conv: conv}
}

// Render writes the Markdown representation of the content.
func (r *Renderer) Render(w io.Writer, contentHTML string) error {
	if strings.TrimSpace(contentHTML) == "" {
		return bookbind.Errorf(bookbind.EINVALID, "empty HTML input")
	}

	result, err := r.conv.ConvertString(contentHTML)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}

	_, err = io.WriteString(w, result)
	return err
}
