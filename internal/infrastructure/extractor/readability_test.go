package extractor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ArticleDigest/internal/domain"
)

func TestReadabilityExtract(t *testing.T) {
	t.Parallel()

	// Enough text density for the readability scoring to pick the content
	// div over the boilerplate around it.
	para := strings.Repeat("The committee reviewed the measure in detail and published its findings. ", 12)
	server := serveHTML(t, `<html><head><title>Budget Review</title></head><body>
		<nav><a href="/">Home</a><a href="/news">News</a></nav>
		<div id="content">
			<h1>Budget Review</h1>
			<p>`+para+`</p>
			<p>`+para+`</p>
		</div>
		<footer><a href="/imprint">Imprint</a></footer>
	</body></html>`)
	defer server.Close()

	ext := NewReadabilityExtractor(server.Client())
	article, err := ext.Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if !strings.Contains(article.FullText, "The committee reviewed the measure") {
		t.Fatalf("extracted text lost the content: %q", article.FullText)
	}
	if strings.Contains(article.FullText, "Imprint") {
		t.Fatalf("extracted text kept boilerplate: %q", article.FullText)
	}
}

func TestReadabilityExtractNoMainContent(t *testing.T) {
	t.Parallel()

	server := serveHTML(t, `<html><body><nav><a href="/">Home</a></nav></body></html>`)
	defer server.Close()

	ext := NewReadabilityExtractor(server.Client())
	_, err := ext.Extract(context.Background(), server.URL)

	var extractErr *domain.ExtractionError
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if extractErr.Kind != domain.ExtractNoMainContent && extractErr.Kind != domain.ExtractEmptyContent {
		t.Fatalf("unexpected kind %q", extractErr.Kind)
	}
}

func TestReadabilityExtractPropagatesFetchError(t *testing.T) {
	t.Parallel()

	ext := NewReadabilityExtractor(nil)
	_, err := ext.Extract(context.Background(), "http://127.0.0.1:1/nope")

	var extractErr *domain.ExtractionError
	if !errors.As(err, &extractErr) || extractErr.Kind != domain.ExtractNetworkFailed {
		t.Fatalf("expected network-failed, got %v", err)
	}
}
