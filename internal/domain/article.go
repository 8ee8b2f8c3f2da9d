package domain

import "time"

// ExtractedArticle is the transient product of extraction. It is never
// persisted on its own; the full text is folded into an ArchiveRecord.
type ExtractedArticle struct {
	Title    string
	FullText string
}

// ArchiveRecord is the append-only full-text document owned by the archive
// store. Records are created once per processed URL and never mutated.
type ArchiveRecord struct {
	ID        string
	URL       string
	FullText  string
	CreatedAt time.Time
}

// CacheEntry is a finished summary/translation pair owned by the cache store,
// keyed uniquely by source URL. Inserted once, immutable afterwards.
// ArchiveRefID is a weak reference to the matching ArchiveRecord.
type CacheEntry struct {
	OriginalURL     string
	SummaryText     string
	TranslationText string
	ArchiveRefID    string
}
