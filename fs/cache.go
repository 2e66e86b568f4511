// Package fs provides file-based implementations of the bookbind storage
// interfaces: the content-addressed page and image caches, the book writer,
// and configuration file loading.
package fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/bookbind/bookbind"
)

// CacheDirName is the subdirectory of the output root holding raw page bytes.
const CacheDirName = ".cached"

// CacheKey returns the content address for a URL: the hex SHA-256 of the
// exact URL string. Two URL strings that differ in any byte get different
// keys; hash collisions are not resolved.
func CacheKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

// Ensure PageCache implements bookbind.PageCache at compile time.
var _ bookbind.PageCache = (*PageCache)(nil)

// PageCache stores raw page HTML under <root>/.cached/<sha256(url)>.html.
// Entries persist across runs and are never invalidated; once a URL string
// has been fetched, the network is never consulted for it again.
type PageCache struct {
	root    string
	fetcher bookbind.Fetcher
}

// NewPageCache creates a PageCache rooted at the output directory.
func NewPageCache(root string, fetcher bookbind.Fetcher) *PageCache {
	return &PageCache{root: root, fetcher: fetcher}
}

// Load returns the cached page, fetching and persisting it on first use.
func (c *PageCache) Load(ctx context.Context, url string) (string, error) {
	dir := filepath.Join(c.root, CacheDirName)
	path := filepath.Join(dir, CacheKey(url)+".html")

	if data, err := os.ReadFile(path); err == nil {
		return string(data), nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, body, 0644); err != nil {
		return "", err
	}

	return string(body), nil
}
