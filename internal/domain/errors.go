package domain

import "fmt"

// Extraction failure kinds.
const (
	ExtractNoArticleContainer = "no-article-container"
	ExtractNoMainContent      = "no-main-content"
	ExtractEmptyContent       = "empty-content"
	ExtractNetworkBlocked     = "network-blocked"
	ExtractNetworkFailed      = "network-failed"
)

// Generation stages.
const (
	StageSummary     = "summary"
	StageTranslation = "translation"
)

// ValidationError rejects malformed input before any I/O is performed.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

// ExtractionError reports why article content could not be derived from a
// URL. StatusCode is set when an HTTP status is known, zero otherwise.
type ExtractionError struct {
	Kind       string
	StatusCode int
	Err        error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("extraction failed (%s)", e.Kind)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Blocked reports whether the failure looks like an anti-bot rejection.
func (e *ExtractionError) Blocked() bool { return e.Kind == ExtractNetworkBlocked }

// GenerationError reports a failed or empty response from the text generator.
// A nil Err means the generator answered with empty text.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s generation failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s generation returned empty text", e.Stage)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// StoreError wraps an unreachable or otherwise failing backing store.
type StoreError struct {
	Store string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s store: %v", e.Store, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// DuplicateError is returned when a concurrent request already inserted a
// cache entry for the same URL. The caller must re-request to read the
// winning entry; the losing insert is never retried or merged.
type DuplicateError struct {
	URL string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("summary for %s already exists", e.URL)
}
