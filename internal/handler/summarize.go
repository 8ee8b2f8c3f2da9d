package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ArticleDigest/internal/domain"
	"ArticleDigest/internal/usecase"
)

// Summarizer is the single pipeline operation the handler depends on.
type Summarizer interface {
	Process(ctx context.Context, url string) (usecase.Result, error)
}

// SummarizeHandler exposes the pipeline over HTTP.
type SummarizeHandler struct {
	pipeline Summarizer
	logger   *slog.Logger
}

// NewSummarizeHandler wires the pipeline and a component logger.
func NewSummarizeHandler(pipeline Summarizer, logger *slog.Logger) *SummarizeHandler {
	return &SummarizeHandler{pipeline: pipeline, logger: logger}
}

// SummarizeRequest is the JSON body accepted by POST /api/summarize.
type SummarizeRequest struct {
	URL string `json:"url"`
}

// SummarizeResponse carries the derived artifacts back to the frontend.
type SummarizeResponse struct {
	Summary     string `json:"summary"`
	Translation string `json:"translation"`
}

// Summarize handles POST /api/summarize.
func (h *SummarizeHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a valid URL."})
		return
	}

	result, err := h.pipeline.Process(c.Request.Context(), req.URL)
	if err != nil {
		h.respondError(c, req.URL, err)
		return
	}

	c.JSON(http.StatusOK, SummarizeResponse{Summary: result.Summary, Translation: result.Translation})
}

// Health reports liveness for the frontend.
func (h *SummarizeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *SummarizeHandler) respondError(c *gin.Context, url string, err error) {
	var (
		validationErr *domain.ValidationError
		duplicateErr  *domain.DuplicateError
		extractErr    *domain.ExtractionError
		generateErr   *domain.GenerationError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a valid URL."})

	case errors.As(err, &duplicateErr):
		c.JSON(http.StatusConflict, gin.H{"error": "This URL has already been summarized."})

	case errors.As(err, &extractErr):
		h.logger.Warn("extraction failed", "url", url, "kind", extractErr.Kind, "status", extractErr.StatusCode)
		switch {
		case extractErr.Kind == domain.ExtractNoArticleContainer || extractErr.Kind == domain.ExtractNoMainContent:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not find the main article content."})
		case extractErr.Kind == domain.ExtractEmptyContent:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Extracted text was empty."})
		case extractErr.Blocked():
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scrape the URL. The website is blocking automated requests."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch the URL."})
		}

	case errors.As(err, &generateErr):
		h.logger.Error("generation failed", "url", url, "stage", generateErr.Stage, "error", err)
		if generateErr.Stage == domain.StageTranslation {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate translation."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary."})
		}

	default:
		h.logger.Error("summarize failed", "url", url, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred."})
	}
}
