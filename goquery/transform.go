package goquery

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bookbind/bookbind"
	"golang.org/x/net/html"
)

// Ensure Transformer implements bookbind.Transformer at compile time.
var _ bookbind.Transformer = (*Transformer)(nil)

// Transformer rewrites inline elements into markup-ready text nodes. The
// passes run in a fixed order: emphasis first (so link text reads the
// already-rewritten markers), then images, then links.
type Transformer struct {
	images bookbind.ImageStore
}

// NewTransformer creates a Transformer that materializes images through
// the given store.
func NewTransformer(images bookbind.ImageStore) *Transformer {
	return &Transformer{images: images}
}

// Transform applies all rewrite passes to the content and returns the
// resulting HTML. Each pass is idempotent.
func (t *Transformer) Transform(ctx context.Context, contentHTML, pageURL string) (string, error) {
	doc, err := parseDocument(contentHTML)
	if err != nil {
		return "", err
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", bookbind.Errorf(bookbind.EINVALID, "invalid page URL %q: %v", pageURL, err)
	}

	root := doc.Find("body").First()
	transformStrong(root)
	transformItalic(root)
	if err := t.transformImages(ctx, root, base); err != nil {
		return "", err
	}
	if err := transformLinks(root); err != nil {
		return "", err
	}

	return innerHTML(root)
}

// replaceWithText replaces every element of the selection with a plain
// text node carrying the given text.
func replaceWithText(sel *goquery.Selection, text string) {
	for _, n := range sel.Nodes {
		if n.Parent == nil {
			continue
		}
		n.Parent.InsertBefore(&html.Node{Type: html.TextNode, Data: text}, n)
		n.Parent.RemoveChild(n)
	}
}

func transformStrong(root *goquery.Selection) {
	root.Find("strong, b").Each(func(_ int, s *goquery.Selection) {
		replaceWithText(s, "**"+s.Text()+"**")
	})
}

func transformItalic(root *goquery.Selection) {
	root.Find("italic, i, em").Each(func(_ int, s *goquery.Selection) {
		replaceWithText(s, "__"+s.Text()+"__")
	})
}

// transformLinks rewrites every hyperlink into a link: substitution. A
// hyperlink without an href attribute is an EINVALID error.
func transformLinks(root *goquery.Selection) error {
	var terr error
	root.Find("a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if !ok {
			terr = bookbind.Errorf(bookbind.EINVALID, "link element missing href attribute")
			return false
		}
		replaceWithText(s, fmt.Sprintf("link:%s[%s]", href, s.Text()))
		return true
	})
	return terr
}

// transformImages resolves each image element to exactly one source URL,
// downloads it through the image store, and replaces the element with an
// image: substitution referencing the cached file name.
func (t *Transformer) transformImages(ctx context.Context, root *goquery.Selection, base *url.URL) error {
	var terr error
	root.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		alt := s.AttrOr("alt", "")
		width := s.AttrOr("width", "")
		height := s.AttrOr("height", "")
		src, hasSrc := s.Attr("src")

		if srcset, ok := s.Attr("srcset"); ok {
			candidates := make(map[string]string)
			for _, c := range strings.Split(srcset, ",") {
				fields := strings.Fields(strings.TrimSpace(c))
				if len(fields) < 2 {
					continue
				}
				candidates[fields[1]] = fields[0]
			}
			if len(candidates) > 0 {
				descriptors := make([]string, 0, len(candidates))
				for d := range candidates {
					descriptors = append(descriptors, d)
				}
				// The "largest" candidate is the lexicographically
				// smallest descriptor string. The ordering is literal,
				// not numeric: "1024w" sorts before "320w".
				sort.Strings(descriptors)
				largest := descriptors[0]
				src, hasSrc = candidates[largest], true
				if strings.Contains(largest, "w") {
					width = strings.ReplaceAll(largest, "w", "")
				}
				if strings.Contains(largest, "h") {
					height = strings.ReplaceAll(largest, "h", "")
				}
			}
		}

		if !hasSrc || src == "" {
			terr = bookbind.Errorf(bookbind.EINVALID, "image element missing src attribute")
			return false
		}

		ref, err := url.Parse(src)
		if err != nil {
			terr = bookbind.Errorf(bookbind.EINVALID, "invalid image source %q: %v", src, err)
			return false
		}
		resolved := base.ResolveReference(ref).String()

		name, err := t.images.Download(ctx, resolved)
		if err != nil {
			terr = err
			return false
		}

		replaceWithText(s, fmt.Sprintf("image:%s[%s,%s,%s]", name, alt, width, height))
		return true
	})
	return terr
}
