package extractor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ArticleDigest/internal/domain"
)

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}))
}

func TestStructuralExtract(t *testing.T) {
	t.Parallel()

	server := serveHTML(t, `<html><body>
		<nav>Menu</nav>
		<article>
			<h1>Title</h1>
			<p>Para one.</p>
			<p>Para two.</p>
		</article>
		<footer>About us</footer>
	</body></html>`)
	defer server.Close()

	ext := NewStructuralExtractor(server.Client())
	article, err := ext.Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if article.Title != "Title" {
		t.Fatalf("unexpected title: %q", article.Title)
	}
	if article.FullText != "Title\n\nPara one.\n\nPara two." {
		t.Fatalf("unexpected full text: %q", article.FullText)
	}
}

func TestStructuralExtractNoArticleContainer(t *testing.T) {
	t.Parallel()

	server := serveHTML(t, `<html><body><div><p>Loose text.</p></div></body></html>`)
	defer server.Close()

	ext := NewStructuralExtractor(server.Client())
	_, err := ext.Extract(context.Background(), server.URL)

	var extractErr *domain.ExtractionError
	if !errors.As(err, &extractErr) || extractErr.Kind != domain.ExtractNoArticleContainer {
		t.Fatalf("expected no-article-container, got %v", err)
	}
}

func TestStructuralExtractWhitespaceOnlyContent(t *testing.T) {
	t.Parallel()

	// A title alone is not article content.
	server := serveHTML(t, `<html><body><article><h1>Title</h1><p>   </p><p>
	</p></article></body></html>`)
	defer server.Close()

	ext := NewStructuralExtractor(server.Client())
	_, err := ext.Extract(context.Background(), server.URL)

	var extractErr *domain.ExtractionError
	if !errors.As(err, &extractErr) || extractErr.Kind != domain.ExtractEmptyContent {
		t.Fatalf("expected empty-content, got %v", err)
	}
}

func TestStructuralExtractBlockedByBotProtection(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	ext := NewStructuralExtractor(server.Client())
	_, err := ext.Extract(context.Background(), server.URL)

	var extractErr *domain.ExtractionError
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if !extractErr.Blocked() {
		t.Fatalf("expected network-blocked, got kind %q", extractErr.Kind)
	}
	if extractErr.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", extractErr.StatusCode)
	}
}

func TestStructuralExtractServerFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	ext := NewStructuralExtractor(server.Client())
	_, err := ext.Extract(context.Background(), server.URL)

	var extractErr *domain.ExtractionError
	if !errors.As(err, &extractErr) || extractErr.Kind != domain.ExtractNetworkFailed {
		t.Fatalf("expected network-failed, got %v", err)
	}
	if extractErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", extractErr.StatusCode)
	}
}

func TestFetcherSendsBrowserIdentity(t *testing.T) {
	t.Parallel()

	var gotUA, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`<article><h1>T</h1><p>Body.</p></article>`))
	}))
	defer server.Close()

	ext := NewStructuralExtractor(server.Client())
	if _, err := ext.Extract(context.Background(), server.URL); err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if gotUA != userAgent {
		t.Fatalf("unexpected user agent: %q", gotUA)
	}
	if gotAccept != "text/html,application/xhtml+xml" {
		t.Fatalf("unexpected accept header: %q", gotAccept)
	}
}
