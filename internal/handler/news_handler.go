package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"technews/internal/model"

	"github.com/gin-gonic/gin"
)

type BatchRunner interface {
	RunBatch(ctx context.Context) []model.ProcessedArticle
}

type Stager interface {
	Save(ctx context.Context, batch []model.ProcessedArticle) []model.StagedArticle
	GetAll(ctx context.Context) []model.StagedArticle
	DeleteOne(ctx context.Context, id string) bool
}

type ArticleStore interface {
	GetPublished(limit, offset int) ([]model.PublishedArticle, error)
	GetPublishedTotal() (int, error)
}

type NewsHandler struct {
	pipeline   BatchRunner
	staging    Stager
	repository ArticleStore
}

func NewNewsHandler(pipeline BatchRunner, staging Stager, repository ArticleStore) *NewsHandler {
	return &NewsHandler{pipeline: pipeline, staging: staging, repository: repository}
}

func toStagedResponse(staged []model.StagedArticle) []StagedArticleResponse {
	res := make([]StagedArticleResponse, 0, len(staged))
	for _, a := range staged {
		res = append(res, StagedArticleResponse{
			ID:       a.ID,
			Title:    a.Title,
			Abstract: a.Abstract,
			Content:  a.Content,
			Tags:     a.Tags,
			ImageURL: a.ImageURL,
		})
	}
	return res
}

// FetchNews runs the ingestion batch on demand, stages the survivors and
// returns the freshly staged items.
func (h *NewsHandler) FetchNews(c *gin.Context) {
	processed := h.pipeline.RunBatch(c.Request.Context())
	staged := h.staging.Save(c.Request.Context(), processed)

	slog.Info("on-demand batch finished", "processed", len(processed), "staged", len(staged))

	c.JSON(http.StatusOK, gin.H{"items": toStagedResponse(staged), "count": len(staged)})
}

func (h *NewsHandler) GetPending(c *gin.Context) {
	page := getQueryInt("page", 1, c)
	if page < 1 {
		page = 1
	}
	limit := getQueryLimit(c)

	staged := h.staging.GetAll(c.Request.Context())
	total := len(staged)

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	res := PendingResponse{
		Items:      toStagedResponse(staged[start:end]),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) DeletePending(c *gin.Context) {
	id := c.Param("id")

	if !h.staging.DeleteOne(c.Request.Context(), id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *NewsHandler) GetArticles(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	articles, err := h.repository.GetPublished(limit, offset)
	if err != nil {
		slog.Error("error fetching published articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetPublishedTotal()
	if err != nil {
		slog.Error("error fetching published total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	articleRes := make([]PublishedArticleResponse, 0, len(articles))
	for _, a := range articles {
		articleRes = append(articleRes, PublishedArticleResponse{
			ID:        a.ID,
			Title:     a.Title,
			Abstract:  a.Abstract,
			Content:   a.Content,
			Tags:      a.Tags,
			ImageURL:  a.ImageURL,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		})
	}

	res := PublishedFeedResponse{
		Articles: articleRes,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) Health(c *gin.Context) {
	if _, err := h.repository.GetPublishedTotal(); err != nil {
		slog.Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
