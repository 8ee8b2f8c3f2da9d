package usecase

import (
	"context"
	"log/slog"
	"strings"

	"ArticleDigest/internal/domain"
	"ArticleDigest/internal/ports"
)

// maxPromptChars bounds how much article text is embedded into the
// summarization prompt. Longer texts are truncated silently.
const maxPromptChars = 30000

// Result carries the derived artifacts returned to the caller.
type Result struct {
	Summary     string
	Translation string
}

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Extractor ports.Extractor
	Generator ports.Generator
	Cache     ports.CacheStore
	Archive   ports.ArchiveStore
	Logger    *slog.Logger
}

// Pipeline implements the summarize-and-translate workflow for a single URL.
type Pipeline struct {
	extractor ports.Extractor
	generator ports.Generator
	cache     ports.CacheStore
	archive   ports.ArchiveStore
	logger    *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		extractor: deps.Extractor,
		generator: deps.Generator,
		cache:     deps.Cache,
		archive:   deps.Archive,
		logger:    deps.Logger,
	}
}

// Process runs the cache lookup, extraction, the two generation stages and
// the two store writes for one URL. The archive write precedes the cache
// write so a cache entry never references a missing archive record. A unique
// violation on the cache insert surfaces as domain.DuplicateError; the
// winning entry is not read back.
func (p *Pipeline) Process(ctx context.Context, url string) (Result, error) {
	if err := validateURL(url); err != nil {
		return Result{}, err
	}

	cached, err := p.cache.Lookup(ctx, url)
	if err != nil {
		return Result{}, err
	}
	if cached != nil {
		p.debug("cache hit", "url", url)
		return Result{Summary: cached.SummaryText, Translation: cached.TranslationText}, nil
	}

	p.debug("cache miss, processing new url", "url", url)

	article, err := p.extractor.Extract(ctx, url)
	if err != nil {
		return Result{}, err
	}

	summary, err := p.generate(ctx, domain.StageSummary, summaryPrompt(article.FullText))
	if err != nil {
		return Result{}, err
	}

	translation, err := p.generate(ctx, domain.StageTranslation, translationPrompt(summary))
	if err != nil {
		return Result{}, err
	}

	archiveID, err := p.archive.Insert(ctx, url, article.FullText)
	if err != nil {
		return Result{}, err
	}

	entry := domain.CacheEntry{
		OriginalURL:     url,
		SummaryText:     summary,
		TranslationText: translation,
		ArchiveRefID:    archiveID,
	}
	if err := p.cache.Insert(ctx, entry); err != nil {
		return Result{}, err
	}

	p.debug("stored new summary", "url", url, "archive_id", archiveID)
	return Result{Summary: summary, Translation: translation}, nil
}

func (p *Pipeline) generate(ctx context.Context, stage, prompt string) (string, error) {
	text, err := p.generator.Generate(ctx, prompt)
	if err != nil {
		return "", &domain.GenerationError{Stage: stage, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &domain.GenerationError{Stage: stage}
	}
	return text, nil
}

func validateURL(url string) error {
	if strings.TrimSpace(url) == "" {
		return &domain.ValidationError{Reason: "url is required"}
	}
	if !strings.HasPrefix(url, "http") {
		return &domain.ValidationError{Reason: "url must use an http(s) scheme"}
	}
	return nil
}

func summaryPrompt(fullText string) string {
	return "Summarize this article concisely in English:\n\n" + truncate(fullText, maxPromptChars)
}

func translationPrompt(summary string) string {
	return "Translate this English text to Urdu (write in Urdu script, not Roman Urdu):\n\n" + summary
}

// truncate cuts s to at most limit characters without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
