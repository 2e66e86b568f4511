package bookbind

// Site identifies a known source website with a distinct page layout.
type Site string

// Known sites. SiteGeneric is the fallback for unmatched URLs.
const (
	SiteUntools      Site = "untools"
	SiteConsequences Site = "consequences"
	SiteMorningPaper Site = "morningpaper"
	SiteGeneric      Site = "generic"
)

// Strategy is the (Extractor, Transformer, Renderer) triple used to convert
// articles from one site.
type Strategy struct {
	Site        Site
	Extractor   Extractor
	Transformer Transformer
	Renderer    Renderer
}

// StrategyRegistry resolves the conversion strategy for a URL. Resolution
// matches URL substrings against an ordered list of known site identifiers;
// the first match wins and unmatched URLs get a generic strategy.
type StrategyRegistry interface {
	// ForURL returns the strategy for the URL. Never returns nil.
	ForURL(url string) *Strategy

	// List returns the sites with a registered strategy, in match order.
	List() []Site
}
