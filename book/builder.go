// Package book orchestrates the conversion of a configured list of article
// URLs into a complete book tree: one chapter file per article, a master
// index document, and a build helper.
package book

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bookbind/bookbind"
	"github.com/bookbind/bookbind/bloom"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithManifest records each completed conversion in the given manifest.
func WithManifest(m bookbind.Manifest) BuilderOption {
	return func(b *Builder) {
		b.manifest = m
	}
}

// Builder converts the articles named by a book configuration, one URL at a
// time in configured order.
type Builder struct {
	cache    bookbind.PageCache
	registry bookbind.StrategyRegistry
	writer   bookbind.BookWriter
	manifest bookbind.Manifest
	logger   *slog.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(cache bookbind.PageCache, registry bookbind.StrategyRegistry, writer bookbind.BookWriter, logger *slog.Logger, opts ...BuilderOption) *Builder {
	b := &Builder{
		cache:    cache,
		registry: registry,
		writer:   writer,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build converts every URL in the configuration and writes the book tree.
// URLs are processed sequentially in configured order; the first failing
// conversion aborts the whole run, leaving already-written chapters in
// place. Duplicate URLs are converted once.
func (b *Builder) Build(ctx context.Context, cfg *bookbind.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.New().String()
	logger := b.logger.With("run_id", runID, "book", cfg.Title)
	logger.Info("build started", "urls", len(cfg.URLs))

	seen := bloom.NewSeenFilter(uint(len(cfg.URLs)), 0.001)
	relPaths := make([]string, 0, len(cfg.URLs))

	for _, url := range cfg.URLs {
		if seen.Seen(url) {
			logger.Info("skipping duplicate url", "url", url)
			continue
		}

		article, err := b.convert(ctx, url)
		if err != nil {
			return fmt.Errorf("failed to convert %s: %w", url, err)
		}
		article.Position = len(relPaths)

		relPath, err := b.writer.WriteArticle(article)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", url, err)
		}
		article.OutputPath = relPath
		relPaths = append(relPaths, relPath)

		if b.manifest != nil {
			if err := b.manifest.RecordConversion(ctx, article); err != nil {
				return fmt.Errorf("failed to record conversion of %s: %w", url, err)
			}
		}

		logger.Info("article converted", "url", url, "title", article.Title, "path", relPath)
	}

	if err := b.writer.WriteIndex(cfg, relPaths); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}

	// Markdown books are compiled by other toolchains and get no Makefile.
	if cfg.OutputFormat() == bookbind.FormatAsciiDoc {
		if err := b.writer.WriteBuildFile(); err != nil {
			return fmt.Errorf("failed to write build file: %w", err)
		}
	}

	logger.Info("build finished", "articles", len(relPaths))
	return nil
}

// convert runs the extract, transform and render stages for one URL.
func (b *Builder) convert(ctx context.Context, url string) (*bookbind.Article, error) {
	strategy := b.registry.ForURL(url)

	page, err := b.cache.Load(ctx, url)
	if err != nil {
		return nil, err
	}

	extraction, err := strategy.Extractor.Extract(page)
	if err != nil {
		return nil, err
	}

	transformed, err := strategy.Transformer.Transform(ctx, extraction.ContentHTML, url)
	if err != nil {
		return nil, err
	}

	var content bytes.Buffer
	if err := strategy.Renderer.Render(&content, transformed); err != nil {
		return nil, err
	}

	return &bookbind.Article{
		SourceURL:   url,
		Title:       extraction.Title,
		Published:   extraction.Published,
		Metadata:    extraction.Metadata,
		Content:     content.String(),
		ContentHash: hashContent(content.String()),
		ConvertedAt: time.Now().UTC(),
	}, nil
}

// hashContent returns a hex digest of the rendered body, used to detect
// upstream content changes between runs.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
