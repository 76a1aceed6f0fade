package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"technews/internal/model"
	"technews/pkg/llm"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeArticleGenerator struct {
	result      *llm.GenerateResult
	suggestions []llm.Suggestion
	err         error
}

func (f *fakeArticleGenerator) GenerateArticle(ctx context.Context, input llm.GenerateInput) (*llm.GenerateResult, error) {
	return f.result, f.err
}

func (f *fakeArticleGenerator) SuggestTopics(ctx context.Context, query string) ([]llm.Suggestion, error) {
	return f.suggestions, f.err
}

type fakePublishedWriter struct {
	saved     []model.PublishedArticle
	duplicate bool
	err       error
}

func (f *fakePublishedWriter) SavePublished(article *model.PublishedArticle) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.duplicate {
		return false, nil
	}
	article.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, *article)
	return true, nil
}

func newTestGenerationRouter(generator llm.ArticleGenerator, store PublishedWriter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewGenerationHandler(generator, store)
	r.POST("/api/article-generation/generate", h.GenerateArticle)
	r.POST("/api/article-generation/suggestions", h.GetSuggestions)
	r.GET("/api/article-generation/config", h.GetConfig)
	return r
}

func generatedFixture() *llm.GenerateResult {
	return &llm.GenerateResult{
		Title:    "The State of RISC-V",
		Abstract: "RISC-V adoption is accelerating. This article surveys where it stands.",
		Content:  "## Adoption\nRISC-V cores now ship in...",
		Tags:     []string{"risc-v", "hardware"},
	}
}

func TestGenerateArticle_SavesToFeed(t *testing.T) {
	generator := &fakeArticleGenerator{result: generatedFixture()}
	store := &fakePublishedWriter{}

	r := newTestGenerationRouter(generator, store)

	w := postJSON(r, "/api/article-generation/generate", GenerateArticleRequest{
		Query:  "risc-v adoption",
		Length: "short",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, len(store.saved))
	assert.Equal(t, "The State of RISC-V", store.saved[0].Title)

	var res GeneratedArticleResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, true, res.Saved)
	assert.NotEqual(t, int64(0), res.ID)
	assert.Equal(t, 2, len(res.Tags))
}

func TestGenerateArticle_DuplicateTitleNotSaved(t *testing.T) {
	generator := &fakeArticleGenerator{result: generatedFixture()}
	store := &fakePublishedWriter{duplicate: true}

	r := newTestGenerationRouter(generator, store)

	w := postJSON(r, "/api/article-generation/generate", GenerateArticleRequest{
		Query: "risc-v adoption",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0, len(store.saved))

	var res GeneratedArticleResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, false, res.Saved)
	assert.Equal(t, int64(0), res.ID)
	assert.Equal(t, "The State of RISC-V", res.Title)
}

func TestGenerateArticle_EmptyQuery(t *testing.T) {
	generator := &fakeArticleGenerator{err: llm.ErrEmptyQuery}

	r := newTestGenerationRouter(generator, &fakePublishedWriter{})

	w := postJSON(r, "/api/article-generation/generate", GenerateArticleRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateArticle_GeneratorError(t *testing.T) {
	generator := &fakeArticleGenerator{err: errors.New("model unavailable")}

	r := newTestGenerationRouter(generator, &fakePublishedWriter{})

	w := postJSON(r, "/api/article-generation/generate", GenerateArticleRequest{
		Query: "risc-v adoption",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGenerateArticle_SaveError(t *testing.T) {
	generator := &fakeArticleGenerator{result: generatedFixture()}
	store := &fakePublishedWriter{err: errors.New("DB down")}

	r := newTestGenerationRouter(generator, store)

	w := postJSON(r, "/api/article-generation/generate", GenerateArticleRequest{
		Query: "risc-v adoption",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetSuggestions(t *testing.T) {
	generator := &fakeArticleGenerator{suggestions: []llm.Suggestion{
		{
			Title:           "RISC-V in the Datacenter",
			Description:     "Server-side adoption",
			ArticleType:     "informative",
			EstimatedLength: "medium",
			TargetAudience:  "Infrastructure engineers",
		},
	}}

	r := newTestGenerationRouter(generator, &fakePublishedWriter{})

	w := postJSON(r, "/api/article-generation/suggestions", SuggestionsRequest{Query: "risc-v"})

	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Suggestions []SuggestionResponse `json:"suggestions"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 1, len(res.Suggestions))
	assert.Equal(t, "RISC-V in the Datacenter", res.Suggestions[0].Title)
}

func TestGetConfig(t *testing.T) {
	r := newTestGenerationRouter(&fakeArticleGenerator{}, &fakePublishedWriter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/article-generation/config", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		ArticleTypes  []string          `json:"article_types"`
		Lengths       []string          `json:"lengths"`
		Tones         []string          `json:"tones"`
		OutputFormats []string          `json:"output_formats"`
		LengthDesc    map[string]string `json:"length_descriptions"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 5, len(res.ArticleTypes))
	assert.Equal(t, 3, len(res.Lengths))
	assert.Equal(t, 5, len(res.Tones))
	assert.Equal(t, 2, len(res.OutputFormats))
	assert.NotEqual(t, "", res.LengthDesc["short"])
}
