package extractor

import (
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"ArticleDigest/internal/domain"
	"ArticleDigest/internal/ports"
)

// StructuralExtractor looks for a dedicated article container, takes its
// first level-1 heading as title and concatenates all paragraph blocks in
// document order. Default strategy.
type StructuralExtractor struct {
	fetcher *fetcher
}

var _ ports.Extractor = (*StructuralExtractor)(nil)

// NewStructuralExtractor wires an HTTP client; nil gets a default with timeout.
func NewStructuralExtractor(client *http.Client) *StructuralExtractor {
	return &StructuralExtractor{fetcher: newFetcher(client)}
}

// Extract fetches the URL and derives title plus blank-line-separated text.
// A page without an article container fails with no-article-container; a
// container whose paragraphs trim to nothing fails with empty-content, even
// when a title was found.
func (e *StructuralExtractor) Extract(ctx context.Context, url string) (domain.ExtractedArticle, error) {
	body, err := e.fetcher.fetch(ctx, url)
	if err != nil {
		return domain.ExtractedArticle{}, err
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return domain.ExtractedArticle{}, &domain.ExtractionError{Kind: domain.ExtractNoArticleContainer, Err: err}
	}

	container := doc.Find("article").First()
	if container.Length() == 0 {
		return domain.ExtractedArticle{}, &domain.ExtractionError{Kind: domain.ExtractNoArticleContainer}
	}

	title := strings.TrimSpace(container.Find("h1").First().Text())

	var blocks []string
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(p.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	text := strings.Join(blocks, "\n\n")
	if text == "" {
		return domain.ExtractedArticle{}, &domain.ExtractionError{Kind: domain.ExtractEmptyContent}
	}

	fullText := text
	if title != "" {
		fullText = title + "\n\n" + text
	}

	return domain.ExtractedArticle{Title: title, FullText: fullText}, nil
}
