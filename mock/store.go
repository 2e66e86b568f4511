package mock

import (
	"context"

	"github.com/bookbind/bookbind"
)

var _ bookbind.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of bookbind.PageCache.
type PageCache struct {
	LoadFn func(ctx context.Context, url string) (string, error)
}

func (c *PageCache) Load(ctx context.Context, url string) (string, error) {
	return c.LoadFn(ctx, url)
}

var _ bookbind.ImageStore = (*ImageStore)(nil)

// ImageStore is a mock implementation of bookbind.ImageStore.
type ImageStore struct {
	DownloadFn func(ctx context.Context, url string) (string, error)
}

func (s *ImageStore) Download(ctx context.Context, url string) (string, error) {
	return s.DownloadFn(ctx, url)
}

var _ bookbind.BookWriter = (*BookWriter)(nil)

// BookWriter is a mock implementation of bookbind.BookWriter.
type BookWriter struct {
	WriteArticleFn   func(a *bookbind.Article) (string, error)
	WriteIndexFn     func(cfg *bookbind.Config, relPaths []string) error
	WriteBuildFileFn func() error
}

func (w *BookWriter) WriteArticle(a *bookbind.Article) (string, error) {
	return w.WriteArticleFn(a)
}

func (w *BookWriter) WriteIndex(cfg *bookbind.Config, relPaths []string) error {
	return w.WriteIndexFn(cfg, relPaths)
}

func (w *BookWriter) WriteBuildFile() error {
	if w.WriteBuildFileFn == nil {
		return nil
	}
	return w.WriteBuildFileFn()
}

var _ bookbind.Manifest = (*Manifest)(nil)

// Manifest is a mock implementation of bookbind.Manifest.
type Manifest struct {
	RecordConversionFn func(ctx context.Context, a *bookbind.Article) error
	FindConversionsFn  func(ctx context.Context) ([]*bookbind.Article, error)
}

func (m *Manifest) RecordConversion(ctx context.Context, a *bookbind.Article) error {
	return m.RecordConversionFn(ctx, a)
}

func (m *Manifest) FindConversions(ctx context.Context) ([]*bookbind.Article, error) {
	return m.FindConversionsFn(ctx)
}
