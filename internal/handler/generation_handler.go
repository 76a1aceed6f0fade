package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"technews/internal/model"
	"technews/pkg/llm"

	"github.com/gin-gonic/gin"
)

type PublishedWriter interface {
	SavePublished(article *model.PublishedArticle) (bool, error)
}

type GenerationHandler struct {
	generator  llm.ArticleGenerator
	repository PublishedWriter
}

func NewGenerationHandler(generator llm.ArticleGenerator, repository PublishedWriter) *GenerationHandler {
	return &GenerationHandler{generator: generator, repository: repository}
}

// GenerateArticle writes an original article for a topic query and persists
// it to the published feed. A title collision keeps the generated article
// in the response but leaves the feed untouched.
func (h *GenerationHandler) GenerateArticle(c *gin.Context) {
	var req GenerateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.generator.GenerateArticle(c.Request.Context(), llm.GenerateInput{
		Query:        req.Query,
		InputText:    req.InputText,
		ArticleType:  req.ArticleType,
		Length:       req.Length,
		Tone:         req.Tone,
		OutputFormat: req.OutputFormat,
	})
	if errors.Is(err, llm.ErrEmptyQuery) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}
	if err != nil {
		slog.Error("error generating article", "query", req.Query, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Article generation failed"})
		return
	}

	article := &model.PublishedArticle{
		Title:    result.Title,
		Abstract: result.Abstract,
		Content:  result.Content,
		Tags:     result.Tags,
	}

	saved, err := h.repository.SavePublished(article)
	if err != nil {
		slog.Error("error saving generated article", "title", article.Title, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !saved {
		slog.Info("duplicate generated article not saved", "title", article.Title)
	}

	res := GeneratedArticleResponse{
		Title:    article.Title,
		Abstract: article.Abstract,
		Content:  article.Content,
		Tags:     article.Tags,
		Saved:    saved,
	}
	if saved {
		res.ID = article.ID
	}

	c.JSON(http.StatusCreated, res)
}

func (h *GenerationHandler) GetSuggestions(c *gin.Context) {
	var req SuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	suggestions, err := h.generator.SuggestTopics(c.Request.Context(), req.Query)
	if errors.Is(err, llm.ErrEmptyQuery) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}
	if err != nil {
		slog.Error("error generating suggestions", "query", req.Query, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Suggestion generation failed"})
		return
	}

	res := make([]SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		res = append(res, SuggestionResponse{
			Title:           s.Title,
			Description:     s.Description,
			ArticleType:     s.ArticleType,
			EstimatedLength: s.EstimatedLength,
			TargetAudience:  s.TargetAudience,
		})
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": res})
}

func (h *GenerationHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"article_types":       llm.GenerationOptions.ArticleTypes,
		"lengths":             llm.GenerationOptions.Lengths,
		"tones":               llm.GenerationOptions.Tones,
		"output_formats":      llm.GenerationOptions.OutputFormats,
		"length_descriptions": llm.LengthDescriptions,
		"tone_descriptions":   llm.ToneDescriptions,
	})
}
