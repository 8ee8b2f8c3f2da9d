package extractor

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"ArticleDigest/internal/domain"
	"ArticleDigest/internal/ports"
)

// ReadabilityExtractor applies a boilerplate-removal heuristic to the whole
// document instead of requiring a dedicated article container. Alternative
// strategy for pages that keep their content outside an article element.
type ReadabilityExtractor struct {
	fetcher *fetcher
}

var _ ports.Extractor = (*ReadabilityExtractor)(nil)

// NewReadabilityExtractor wires an HTTP client; nil gets a default with timeout.
func NewReadabilityExtractor(client *http.Client) *ReadabilityExtractor {
	return &ReadabilityExtractor{fetcher: newFetcher(client)}
}

// Extract fetches the URL and selects the highest-scoring content node.
// Pages where the heuristic finds nothing fail with no-main-content; a
// selected node whose text trims to nothing fails with empty-content.
func (e *ReadabilityExtractor) Extract(ctx context.Context, pageURL string) (domain.ExtractedArticle, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return domain.ExtractedArticle{}, &domain.ExtractionError{Kind: domain.ExtractNetworkFailed, Err: err}
	}

	body, err := e.fetcher.fetch(ctx, pageURL)
	if err != nil {
		return domain.ExtractedArticle{}, err
	}
	defer body.Close()

	article, err := readability.FromReader(body, parsed)
	if err != nil {
		return domain.ExtractedArticle{}, &domain.ExtractionError{Kind: domain.ExtractNoMainContent, Err: err}
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return domain.ExtractedArticle{}, &domain.ExtractionError{Kind: domain.ExtractEmptyContent}
	}

	title := strings.TrimSpace(article.Title)
	fullText := text
	if title != "" && !strings.HasPrefix(text, title) {
		fullText = title + "\n\n" + text
	}

	return domain.ExtractedArticle{Title: title, FullText: fullText}, nil
}
