package model

import "time"

const (
	AnswerA = "answer_a"
	AnswerB = "answer_b"
	AnswerC = "answer_c"
	AnswerD = "answer_d"
)

type Question struct {
	QuestionID    string `json:"question_id"`
	Question      string `json:"question"`
	AnswerA       string `json:"answer_a"`
	AnswerB       string `json:"answer_b"`
	AnswerC       string `json:"answer_c"`
	AnswerD       string `json:"answer_d"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

type Quiz struct {
	ID        string
	ArticleID string
	Title     string
	Questions []Question
	CreatedAt time.Time
}

// QuestionResult is one graded question inside a quiz attempt.
type QuestionResult struct {
	Question
	SelectedAnswer string `json:"selected_answer"`
	IsCorrect      bool   `json:"is_correct"`
}

type QuizResult struct {
	ID        string
	QuizID    string
	UserID    string
	Questions []QuestionResult
	Score     float64
	CreatedAt time.Time
}

// ScoreAttempt grades selected answers (keyed by question id) against the
// quiz questions. Unanswered questions count as wrong.
func ScoreAttempt(questions []Question, answers map[string]string) ([]QuestionResult, float64) {
	if len(questions) == 0 {
		return nil, 0
	}

	results := make([]QuestionResult, 0, len(questions))
	correct := 0
	for _, q := range questions {
		selected := answers[q.QuestionID]
		isCorrect := selected != "" && selected == q.CorrectAnswer
		if isCorrect {
			correct++
		}
		results = append(results, QuestionResult{
			Question:       q,
			SelectedAnswer: selected,
			IsCorrect:      isCorrect,
		})
	}

	score := float64(correct) / float64(len(questions)) * 100
	return results, score
}
