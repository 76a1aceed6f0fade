package handler

type StagedArticleResponse struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Abstract string   `json:"abstract"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	ImageURL string   `json:"image_url"`
}

type PendingResponse struct {
	Items      []StagedArticleResponse `json:"items"`
	Total      int                     `json:"total"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"total_pages"`
}

type PublishedArticleResponse struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Abstract  string   `json:"abstract"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	ImageURL  string   `json:"image_url"`
	CreatedAt string   `json:"created_at"`
}

type PublishedFeedResponse struct {
	Articles []PublishedArticleResponse `json:"articles"`
	Total    int                        `json:"total"`
	Limit    int                        `json:"limit"`
	Offset   int                        `json:"offset"`
}

type GenerateArticleRequest struct {
	Query        string `json:"query"`
	InputText    string `json:"input_text"`
	ArticleType  string `json:"article_type"`
	Length       string `json:"length"`
	Tone         string `json:"tone"`
	OutputFormat string `json:"output_format"`
}

type GeneratedArticleResponse struct {
	ID       int64    `json:"id,omitempty"`
	Title    string   `json:"title"`
	Abstract string   `json:"abstract"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Saved    bool     `json:"saved"`
}

type SuggestionsRequest struct {
	Query string `json:"query"`
}

type SuggestionResponse struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ArticleType     string `json:"article_type"`
	EstimatedLength string `json:"estimated_length"`
	TargetAudience  string `json:"target_audience"`
}

type GenerateQuizRequest struct {
	ArticleID    string `json:"article_id"`
	Title        string `json:"title"`
	Abstract     string `json:"abstract"`
	Content      string `json:"content"`
	NumQuestions int    `json:"num_questions"`
}

type QuestionPayload struct {
	QuestionID    string `json:"question_id"`
	Question      string `json:"question"`
	AnswerA       string `json:"answer_a"`
	AnswerB       string `json:"answer_b"`
	AnswerC       string `json:"answer_c"`
	AnswerD       string `json:"answer_d"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

type UpdateQuizRequest struct {
	Title     string            `json:"title"`
	Questions []QuestionPayload `json:"questions"`
}

type QuestionResponse struct {
	QuestionID  string `json:"question_id"`
	Question    string `json:"question"`
	AnswerA     string `json:"answer_a"`
	AnswerB     string `json:"answer_b"`
	AnswerC     string `json:"answer_c"`
	AnswerD     string `json:"answer_d"`
	Explanation string `json:"explanation"`
}

type QuizResponse struct {
	ID        string             `json:"id"`
	ArticleID string             `json:"article_id,omitempty"`
	Title     string             `json:"title"`
	Questions []QuestionResponse `json:"questions"`
	CreatedAt string             `json:"created_at"`
}

type QuizListResponse struct {
	Quizzes []QuizResponse `json:"quizzes"`
	Total   int            `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

type SubmitQuizRequest struct {
	UserID  string            `json:"user_id"`
	Answers map[string]string `json:"answers"`
}

type QuestionResultResponse struct {
	QuestionID     string `json:"question_id"`
	Question       string `json:"question"`
	AnswerA        string `json:"answer_a"`
	AnswerB        string `json:"answer_b"`
	AnswerC        string `json:"answer_c"`
	AnswerD        string `json:"answer_d"`
	CorrectAnswer  string `json:"correct_answer"`
	SelectedAnswer string `json:"selected_answer"`
	IsCorrect      bool   `json:"is_correct"`
	Explanation    string `json:"explanation"`
}

type QuizResultResponse struct {
	ID        string                   `json:"id"`
	QuizID    string                   `json:"quiz_id"`
	UserID    string                   `json:"user_id"`
	Questions []QuestionResultResponse `json:"questions"`
	Score     float64                  `json:"score"`
	CreatedAt string                   `json:"created_at"`
}

type QuizResultListResponse struct {
	Results []QuizResultResponse `json:"results"`
	Limit   int                  `json:"limit"`
	Offset  int                  `json:"offset"`
}
