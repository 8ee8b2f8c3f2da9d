package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"ArticleDigest/internal/domain"
	"ArticleDigest/internal/ports"
)

// Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// PostgresCache persists finished summary/translation pairs keyed by URL.
// Rows are insert-only; the unique constraint on original_url is the sole
// defense against duplicate work under concurrent requests.
type PostgresCache struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.CacheStore = (*PostgresCache)(nil)

// NewPostgresCache wires a sql.DB handle.
func NewPostgresCache(db *sql.DB) *PostgresCache {
	return &PostgresCache{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// EnsureSchema creates the summaries table with its unique URL constraint.
func (c *PostgresCache) EnsureSchema(ctx context.Context) error {
	const ddl = `CREATE TABLE IF NOT EXISTS summaries (
		id BIGSERIAL PRIMARY KEY,
		original_url TEXT NOT NULL UNIQUE,
		summary_text TEXT NOT NULL,
		translation_text TEXT NOT NULL,
		archive_ref_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return &domain.StoreError{Store: "cache", Err: fmt.Errorf("ensure schema: %w", err)}
	}

	return nil
}

// Lookup returns the cache entry for url, or nil when the URL is unseen.
func (c *PostgresCache) Lookup(ctx context.Context, url string) (*domain.CacheEntry, error) {
	query, args, err := c.builder.
		Select("original_url", "summary_text", "translation_text", "archive_ref_id").
		From("summaries").
		Where(sq.Eq{"original_url": url}).
		ToSql()
	if err != nil {
		return nil, &domain.StoreError{Store: "cache", Err: fmt.Errorf("build lookup: %w", err)}
	}

	var entry domain.CacheEntry
	row := c.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&entry.OriginalURL, &entry.SummaryText, &entry.TranslationText, &entry.ArchiveRefID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StoreError{Store: "cache", Err: fmt.Errorf("lookup %s: %w", url, err)}
	}

	return &entry, nil
}

// Insert stores a new entry. A unique violation on original_url is surfaced
// as DuplicateError so the caller can tell a lost race from a store outage.
func (c *PostgresCache) Insert(ctx context.Context, entry domain.CacheEntry) error {
	query, args, err := c.builder.
		Insert("summaries").
		Columns("original_url", "summary_text", "translation_text", "archive_ref_id").
		Values(entry.OriginalURL, entry.SummaryText, entry.TranslationText, entry.ArchiveRefID).
		ToSql()
	if err != nil {
		return &domain.StoreError{Store: "cache", Err: fmt.Errorf("build insert: %w", err)}
	}

	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return &domain.DuplicateError{URL: entry.OriginalURL}
		}
		return &domain.StoreError{Store: "cache", Err: fmt.Errorf("insert %s: %w", entry.OriginalURL, err)}
	}

	return nil
}
