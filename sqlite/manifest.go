package sqlite

import (
	"context"
	"time"

	"github.com/bookbind/bookbind"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ bookbind.Manifest = (*ManifestService)(nil)

// ManifestService implements bookbind.Manifest using SQLite.
type ManifestService struct {
	db *DB
}

// NewManifestService creates a new ManifestService.
func NewManifestService(db *DB) *ManifestService {
	return &ManifestService{db: db}
}

// RecordConversion stores one conversion, replacing any prior record for
// the same source URL.
func (s *ManifestService) RecordConversion(ctx context.Context, a *bookbind.Article) error {
	if err := a.Validate(); err != nil {
		return err
	}

	a.ID = uuid.New().String()
	a.ConvertedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, source_url, title, published, output_path, content_hash, position, converted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_url) DO UPDATE SET
			title = excluded.title,
			published = excluded.published,
			output_path = excluded.output_path,
			content_hash = excluded.content_hash,
			position = excluded.position,
			converted_at = excluded.converted_at
	`, a.ID, a.SourceURL, a.Title, a.Published, a.OutputPath, a.ContentHash,
		a.Position, a.ConvertedAt.Format(time.RFC3339))

	return err
}

// FindConversions returns recorded conversions ordered by position.
// Content is not stored in the manifest, so returned articles carry
// everything except their rendered body.
func (s *ManifestService) FindConversions(ctx context.Context) ([]*bookbind.Article, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_url, title, published, output_path, content_hash, position, converted_at
		FROM conversions
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*bookbind.Article
	for rows.Next() {
		var a bookbind.Article
		var convertedAt string
		if err := rows.Scan(&a.ID, &a.SourceURL, &a.Title, &a.Published,
			&a.OutputPath, &a.ContentHash, &a.Position, &convertedAt); err != nil {
			return nil, err
		}
		a.ConvertedAt, err = time.Parse(time.RFC3339, convertedAt)
		if err != nil {
			return nil, bookbind.Errorf(bookbind.EINTERNAL, "failed to parse converted_at: %v", err)
		}
		articles = append(articles, &a)
	}
	return articles, rows.Err()
}
