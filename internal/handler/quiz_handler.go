package handler

import (
	"log/slog"
	"net/http"
	"time"

	"technews/internal/model"
	"technews/pkg/llm"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuizStore interface {
	SaveQuiz(quiz *model.Quiz) error
	GetQuizByID(id string) (*model.Quiz, error)
	GetQuizByArticleID(articleID string) (*model.Quiz, error)
	GetQuizzes(limit, offset int) ([]model.Quiz, error)
	GetQuizTotal() (int, error)
	UpdateQuiz(quiz *model.Quiz) (bool, error)
	DeleteQuiz(id string) (bool, error)
	SaveResult(result *model.QuizResult) error
	GetResults(userID string, limit, offset int) ([]model.QuizResult, error)
}

type QuizHandler struct {
	generator  llm.QuizGenerator
	repository QuizStore
}

func NewQuizHandler(generator llm.QuizGenerator, repository QuizStore) *QuizHandler {
	return &QuizHandler{generator: generator, repository: repository}
}

func toQuizResponse(q model.Quiz) QuizResponse {
	questions := make([]QuestionResponse, 0, len(q.Questions))
	for _, question := range q.Questions {
		questions = append(questions, QuestionResponse{
			QuestionID:  question.QuestionID,
			Question:    question.Question,
			AnswerA:     question.AnswerA,
			AnswerB:     question.AnswerB,
			AnswerC:     question.AnswerC,
			AnswerD:     question.AnswerD,
			Explanation: question.Explanation,
		})
	}

	return QuizResponse{
		ID:        q.ID,
		ArticleID: q.ArticleID,
		Title:     q.Title,
		Questions: questions,
		CreatedAt: q.CreatedAt.Format(time.RFC3339),
	}
}

func toQuizResultResponse(r model.QuizResult) QuizResultResponse {
	questions := make([]QuestionResultResponse, 0, len(r.Questions))
	for _, q := range r.Questions {
		questions = append(questions, QuestionResultResponse{
			QuestionID:     q.QuestionID,
			Question:       q.Question.Question,
			AnswerA:        q.AnswerA,
			AnswerB:        q.AnswerB,
			AnswerC:        q.AnswerC,
			AnswerD:        q.AnswerD,
			CorrectAnswer:  q.CorrectAnswer,
			SelectedAnswer: q.SelectedAnswer,
			IsCorrect:      q.IsCorrect,
			Explanation:    q.Explanation,
		})
	}

	return QuizResultResponse{
		ID:        r.ID,
		QuizID:    r.QuizID,
		UserID:    r.UserID,
		Questions: questions,
		Score:     r.Score,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	var req GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	generated, err := h.generator.GenerateQuiz(c.Request.Context(), llm.QuizInput{
		Title:        req.Title,
		Abstract:     req.Abstract,
		Content:      req.Content,
		NumQuestions: req.NumQuestions,
	})
	if err != nil {
		slog.Error("error generating quiz", "title", req.Title, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Quiz generation failed"})
		return
	}

	questions := make([]model.Question, 0, len(generated.Questions))
	for _, q := range generated.Questions {
		questions = append(questions, model.Question{
			QuestionID:    uuid.NewString(),
			Question:      q.Question,
			AnswerA:       q.AnswerA,
			AnswerB:       q.AnswerB,
			AnswerC:       q.AnswerC,
			AnswerD:       q.AnswerD,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	quiz := &model.Quiz{
		ID:        uuid.NewString(),
		ArticleID: req.ArticleID,
		Title:     req.Title,
		Questions: questions,
	}

	if err := h.repository.SaveQuiz(quiz); err != nil {
		slog.Error("error saving quiz", "quiz_id", quiz.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	slog.Info("quiz generated", "quiz_id", quiz.ID, "questions", len(questions), "model", generated.ModelUsed)

	c.JSON(http.StatusCreated, toQuizResponse(*quiz))
}

func (h *QuizHandler) GetQuizzes(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	quizzes, err := h.repository.GetQuizzes(limit, offset)
	if err != nil {
		slog.Error("error fetching quizzes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetQuizTotal()
	if err != nil {
		slog.Error("error fetching quiz total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	quizRes := make([]QuizResponse, 0, len(quizzes))
	for _, q := range quizzes {
		quizRes = append(quizRes, toQuizResponse(q))
	}

	res := QuizListResponse{
		Quizzes: quizRes,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}

	c.JSON(http.StatusOK, res)
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	id := c.Param("id")

	quiz, err := h.repository.GetQuizByID(id)
	if err != nil {
		slog.Error("error fetching quiz", "quiz_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if quiz == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}

	c.JSON(http.StatusOK, toQuizResponse(*quiz))
}

func (h *QuizHandler) GetQuizByArticle(c *gin.Context) {
	articleID := c.Param("article_id")

	quiz, err := h.repository.GetQuizByArticleID(articleID)
	if err != nil {
		slog.Error("error fetching quiz by article", "article_id", articleID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if quiz == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}

	c.JSON(http.StatusOK, toQuizResponse(*quiz))
}

// UpdateQuiz replaces a quiz's title and questions. Questions arriving
// without an id get a fresh one; correct answers must name a valid option.
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	id := c.Param("id")

	var req UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Title == "" || len(req.Questions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and questions are required"})
		return
	}

	questions := make([]model.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		switch q.CorrectAnswer {
		case model.AnswerA, model.AnswerB, model.AnswerC, model.AnswerD:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid correct answer"})
			return
		}

		questionID := q.QuestionID
		if questionID == "" {
			questionID = uuid.NewString()
		}

		questions = append(questions, model.Question{
			QuestionID:    questionID,
			Question:      q.Question,
			AnswerA:       q.AnswerA,
			AnswerB:       q.AnswerB,
			AnswerC:       q.AnswerC,
			AnswerD:       q.AnswerD,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	quiz := &model.Quiz{
		ID:        id,
		Title:     req.Title,
		Questions: questions,
	}

	updated, err := h.repository.UpdateQuiz(quiz)
	if err != nil {
		slog.Error("error updating quiz", "quiz_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}

	c.JSON(http.StatusOK, toQuizResponse(*quiz))
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.repository.DeleteQuiz(id)
	if err != nil {
		slog.Error("error deleting quiz", "quiz_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	id := c.Param("id")

	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	quiz, err := h.repository.GetQuizByID(id)
	if err != nil {
		slog.Error("error fetching quiz", "quiz_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if quiz == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}

	graded, score := model.ScoreAttempt(quiz.Questions, req.Answers)

	result := &model.QuizResult{
		ID:        uuid.NewString(),
		QuizID:    quiz.ID,
		UserID:    req.UserID,
		Questions: graded,
		Score:     score,
	}

	if err := h.repository.SaveResult(result); err != nil {
		slog.Error("error saving quiz result", "quiz_id", quiz.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, toQuizResultResponse(*result))
}

func (h *QuizHandler) GetResults(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)
	userID := c.Query("user_id")

	results, err := h.repository.GetResults(userID, limit, offset)
	if err != nil {
		slog.Error("error fetching quiz results", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	resultRes := make([]QuizResultResponse, 0, len(results))
	for _, r := range results {
		resultRes = append(resultRes, toQuizResultResponse(r))
	}

	res := QuizResultListResponse{
		Results: resultRes,
		Limit:   limit,
		Offset:  offset,
	}

	c.JSON(http.StatusOK, res)
}
