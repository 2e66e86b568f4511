package bookbind

import "context"

// Fetcher retrieves raw content from URLs.
// Implementations may use plain HTTP or browser automation for
// JavaScript-rendered pages.
type Fetcher interface {
	// Fetch retrieves the body of the URL.
	// A non-200 response is an EUNAVAILABLE error.
	Fetch(ctx context.Context, url string) (body []byte, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// PageCache returns page HTML, fetching and persisting it on first use.
// A URL string is never fetched twice; the cached bytes are returned
// verbatim on every subsequent load, across process runs.
type PageCache interface {
	Load(ctx context.Context, url string) (string, error)
}

// ImageStore materializes remote images into a local directory keyed by a
// content address of the source URL.
type ImageStore interface {
	// Download returns the local file name for the image, downloading it
	// first unless the file already exists.
	Download(ctx context.Context, url string) (string, error)
}
