package goquery

import (
	"log/slog"
	"strings"

	"github.com/bookbind/bookbind"
)

// Ensure Registry implements bookbind.StrategyRegistry at compile time.
var _ bookbind.StrategyRegistry = (*Registry)(nil)

// Registry resolves the conversion strategy for a URL by matching
// substrings against an ordered list of known site identifiers. The first
// match wins; unmatched URLs get the generic strategy. New sites are added
// here as a new variant plus a new match entry, never by branching on site
// names inside shared logic.
type Registry struct {
	matches  []siteMatch
	fallback *bookbind.Strategy
}

type siteMatch struct {
	substr   string
	strategy *bookbind.Strategy
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithFallbackExtractor replaces the strict generic extractor used for
// unmatched URLs (e.g. with a readability-based one).
func WithFallbackExtractor(e bookbind.Extractor) RegistryOption {
	return func(r *Registry) {
		r.fallback.Extractor = e
	}
}

// WithFallbackRenderer replaces the AsciiDoc renderer used for unmatched
// URLs (e.g. with a Markdown one).
func WithFallbackRenderer(rend bookbind.Renderer) RegistryOption {
	return func(r *Registry) {
		r.fallback.Renderer = rend
	}
}

// WithTransformer replaces the transformer of every strategy, for output
// modes whose renderer handles inline elements itself.
func WithTransformer(t bookbind.Transformer) RegistryOption {
	return func(r *Registry) {
		for _, m := range r.matches {
			m.strategy.Transformer = t
		}
		r.fallback.Transformer = t
	}
}

// WithRenderer replaces the renderer of every strategy, for output modes
// that do not emit AsciiDoc.
func WithRenderer(rend bookbind.Renderer) RegistryOption {
	return func(r *Registry) {
		for _, m := range r.matches {
			m.strategy.Renderer = rend
		}
		r.fallback.Renderer = rend
	}
}

// NewRegistry creates a Registry with the built-in site strategies.
func NewRegistry(images bookbind.ImageStore, logger *slog.Logger, opts ...RegistryOption) *Registry {
	shared := NewTransformer(images)
	renderer := NewRenderer(logger)

	r := &Registry{
		matches: []siteMatch{
			{substr: "untools.co", strategy: &bookbind.Strategy{
				Site:        bookbind.SiteUntools,
				Extractor:   NewUntoolsExtractor(),
				Transformer: NewUntoolsTransformer(images),
				Renderer:    NewUntoolsRenderer(logger),
			}},
			{substr: "unintendedconsequenc", strategy: &bookbind.Strategy{
				Site:        bookbind.SiteConsequences,
				Extractor:   NewConsequencesExtractor(),
				Transformer: shared,
				Renderer:    renderer,
			}},
			{substr: "blog.acolyer.org", strategy: &bookbind.Strategy{
				Site:        bookbind.SiteMorningPaper,
				Extractor:   NewMorningPaperExtractor(),
				Transformer: shared,
				Renderer:    renderer,
			}},
		},
		fallback: &bookbind.Strategy{
			Site:        bookbind.SiteGeneric,
			Extractor:   NewGenericExtractor(),
			Transformer: shared,
			Renderer:    renderer,
		},
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ForURL returns the strategy for the URL; first match wins.
func (r *Registry) ForURL(url string) *bookbind.Strategy {
	for _, m := range r.matches {
		if strings.Contains(url, m.substr) {
			return m.strategy
		}
	}
	return r.fallback
}

// List returns the registered sites in match order, ending with the
// generic fallback.
func (r *Registry) List() []bookbind.Site {
	sites := make([]bookbind.Site, 0, len(r.matches)+1)
	for _, m := range r.matches {
		sites = append(sites, m.strategy.Site)
	}
	return append(sites, r.fallback.Site)
}
