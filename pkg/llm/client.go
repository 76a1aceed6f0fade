package llm

import (
	"context"
	"errors"
)

// minContentChars is the shortest extracted content worth paraphrasing.
const minContentChars = 100

var (
	// ErrTooShort means the extracted content carries too little signal to
	// paraphrase; the model is not called.
	ErrTooShort = errors.New("content too short to rewrite")

	// ErrInvalidResponse means the model reply could not be decoded or is
	// missing a required field. No partial result is returned.
	ErrInvalidResponse = errors.New("invalid model response")

	// ErrEmptyQuery means article generation was asked for without a topic.
	ErrEmptyQuery = errors.New("query is required")
)

type RewriteInput struct {
	Title      string
	Abstract   string
	Content    string
	Keywords   []string
	SourceName string
	SourceURL  string
}

type RewriteResult struct {
	Title     string   `json:"title"`
	Tags      []string `json:"tags"`
	Abstract  string   `json:"abstract"`
	Content   string   `json:"content"`
	ModelUsed string   `json:"-"`
}

type Rewriter interface {
	Rewrite(ctx context.Context, input RewriteInput) (*RewriteResult, error)
}

type QuizInput struct {
	Title        string
	Abstract     string
	Content      string
	NumQuestions int
}

type QuizQuestion struct {
	Question      string `json:"question"`
	AnswerA       string `json:"answer_a"`
	AnswerB       string `json:"answer_b"`
	AnswerC       string `json:"answer_c"`
	AnswerD       string `json:"answer_d"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

type QuizResult struct {
	Questions []QuizQuestion
	ModelUsed string
}

type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, input QuizInput) (*QuizResult, error)
}

type GenerateInput struct {
	Query        string
	InputText    string
	ArticleType  string
	Length       string
	Tone         string
	OutputFormat string
}

type GenerateResult struct {
	Title     string   `json:"title"`
	Abstract  string   `json:"abstract"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	ModelUsed string   `json:"-"`
}

// Suggestion is one proposed article angle for a topic query.
type Suggestion struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ArticleType     string `json:"article_type"`
	EstimatedLength string `json:"estimated_length"`
	TargetAudience  string `json:"target_audience"`
}

// ArticleGenerator produces original articles from a topic query rather
// than paraphrasing fetched content.
type ArticleGenerator interface {
	GenerateArticle(ctx context.Context, input GenerateInput) (*GenerateResult, error)
	SuggestTopics(ctx context.Context, query string) ([]Suggestion, error)
}
