package goquery

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"github.com/bookbind/bookbind"
	"golang.org/x/net/html"
)

// codeBlockPattern matches the [code lang=X]...[/code] wrapper some sites
// put inside preformatted blocks. The content group is greedy to the end
// of the block.
var codeBlockPattern = regexp.MustCompile(`(?ms)^\[code\s+lang=(.*?)\](.*)\[/code\]$`)

// Ensure Renderer implements bookbind.Renderer at compile time.
var _ bookbind.Renderer = (*Renderer)(nil)

type handlerFunc func(w io.Writer, n *html.Node) error

// Renderer emits AsciiDoc for the transformed content root. It dispatches
// on tag names through a handler table; tags without a handler are logged
// with their raw markup and skipped, so a novel tag never aborts a
// conversion.
type Renderer struct {
	logger   *slog.Logger
	handlers map[string]handlerFunc
}

// NewRenderer creates a Renderer that reports unknown tags to the logger.
func NewRenderer(logger *slog.Logger) *Renderer {
	r := &Renderer{logger: logger}
	r.handlers = map[string]handlerFunc{
		"p":          r.renderParagraph,
		"h1":         r.renderHeading("=== "),
		"h2":         r.renderHeading("=== "),
		"h3":         r.renderHeading("==== "),
		"h4":         r.renderHeading("===== "),
		"ul":         r.renderList("- "),
		"ol":         r.renderList("* "),
		"div":        r.renderContainer,
		"blockquote": r.renderQuote,
		"figure":     r.renderParagraph,
		"table":      r.renderTable,
		"pre":        r.renderPre,
	}
	return r
}

// Render walks the direct children of the content root and emits markup
// for each element node. Text-only nodes between blocks are skipped.
func (r *Renderer) Render(w io.Writer, contentHTML string) error {
	doc, err := parseDocument(contentHTML)
	if err != nil {
		return err
	}
	body := doc.Find("body").First()
	if len(body.Nodes) == 0 {
		return nil
	}
	return r.renderChildren(w, body.Nodes[0])
}

func (r *Renderer) renderChildren(w io.Writer, n *html.Node) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		handler, ok := r.handlers[c.Data]
		if !ok {
			r.logger.Warn("unknown tag", "tag", c.Data, "html", renderHTML(c))
			continue
		}
		if err := handler(w, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderParagraph(w io.Writer, n *html.Node) error {
	_, err := fmt.Fprintf(w, "%s\n\n", nodeText(n))
	return err
}

func (r *Renderer) renderHeading(prefix string) handlerFunc {
	return func(w io.Writer, n *html.Node) error {
		_, err := fmt.Fprintf(w, "%s%s\n\n", prefix, nodeText(n))
		return err
	}
}

func (r *Renderer) renderList(marker string) handlerFunc {
	return func(w io.Writer, n *html.Node) error {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || c.Data != "li" {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s%s\n", marker, nodeText(c)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
}

func (r *Renderer) renderContainer(w io.Writer, n *html.Node) error {
	return r.renderChildren(w, n)
}

func (r *Renderer) renderQuote(w io.Writer, n *html.Node) error {
	if _, err := io.WriteString(w, "[quote]\n____\n"); err != nil {
		return err
	}
	if err := r.renderChildren(w, n); err != nil {
		return err
	}
	_, err := io.WriteString(w, "____\n")
	return err
}

// renderTable passes the table through untouched, pretty-printed inside a
// raw block for the downstream document compiler.
func (r *Renderer) renderTable(w io.Writer, n *html.Node) error {
	raw := renderHTML(n)
	pretty := raw
	d := etree.NewDocument()
	if err := d.ReadFromString(raw); err == nil {
		d.Indent(2)
		if s, err := d.WriteToString(); err == nil {
			pretty = s
		}
	}
	if !strings.HasSuffix(pretty, "\n") {
		pretty += "\n"
	}
	_, err := fmt.Fprintf(w, "++++\n%s++++\n", pretty)
	return err
}

// renderPre emits a [source, lang] block for each [code lang=X]...[/code]
// wrapper found in the block's text, or a generic [listing] block when the
// wrapper pattern is absent.
func (r *Renderer) renderPre(w io.Writer, n *html.Node) error {
	text := nodeText(n)

	matches := codeBlockPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		_, err := fmt.Fprintf(w, "[listing]\n....\n%s\n....\n\n", text)
		return err
	}

	for _, m := range matches {
		if _, err := fmt.Fprintf(w, "[source, %s]\n----\n%s\n----\n", m[1], m[2]); err != nil {
			return err
		}
	}
	return nil
}

// nodeText returns the concatenated text of the node's subtree.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// renderHTML serializes a node back to markup, for table passthrough and
// unknown-tag diagnostics.
func renderHTML(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}
