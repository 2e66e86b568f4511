// Package bloom tracks already-processed URLs using a Bloom filter, so a
// configuration with duplicate entries converts each article once.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// SeenFilter remembers URL strings handled during a run.
type SeenFilter struct {
	f *bloom.BloomFilter
}

// NewSeenFilter creates a filter sized for n expected URLs with the given
// false positive rate. A false positive skips a duplicate-looking URL; a
// false negative cannot happen.
func NewSeenFilter(n uint, fpRate float64) *SeenFilter {
	return &SeenFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether the URL might already have been processed and marks
// it as processed.
func (s *SeenFilter) Seen(url string) bool {
	seen := s.f.TestString(url)
	s.f.AddString(url)
	return seen
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (s *SeenFilter) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}
