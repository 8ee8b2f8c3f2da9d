package ports

import (
	"context"

	"ArticleDigest/internal/domain"
)

// Extractor derives clean article title and text from a URL.
type Extractor interface {
	Extract(ctx context.Context, url string) (domain.ExtractedArticle, error)
}

// Generator converts a text prompt into generated text. A single blocking
// call per invocation; no retry, no streaming.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CacheStore keeps finished summary/translation pairs keyed by source URL.
// Lookup returns nil on a miss. Insert fails with domain.DuplicateError when
// the URL is already present.
type CacheStore interface {
	Lookup(ctx context.Context, url string) (*domain.CacheEntry, error)
	Insert(ctx context.Context, entry domain.CacheEntry) error
}

// ArchiveStore appends full extracted text and returns an opaque record id.
type ArchiveStore interface {
	Insert(ctx context.Context, url, fullText string) (string, error)
}
