package model

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func sampleQuestions() []Question {
	return []Question{
		{QuestionID: "q1", Question: "First?", CorrectAnswer: AnswerA},
		{QuestionID: "q2", Question: "Second?", CorrectAnswer: AnswerC},
		{QuestionID: "q3", Question: "Third?", CorrectAnswer: AnswerB},
	}
}

func TestScoreAttempt_AllCorrect(t *testing.T) {
	results, score := ScoreAttempt(sampleQuestions(), map[string]string{
		"q1": AnswerA,
		"q2": AnswerC,
		"q3": AnswerB,
	})

	assert.Equal(t, 3, len(results))
	assert.Equal(t, float64(100), score)
	for _, r := range results {
		assert.Equal(t, true, r.IsCorrect)
	}
}

func TestScoreAttempt_Partial(t *testing.T) {
	results, score := ScoreAttempt(sampleQuestions(), map[string]string{
		"q1": AnswerA,
		"q2": AnswerB,
	})

	assert.Equal(t, 3, len(results))
	assert.Equal(t, true, results[0].IsCorrect)
	assert.Equal(t, false, results[1].IsCorrect)

	// q3 unanswered counts as wrong
	assert.Equal(t, false, results[2].IsCorrect)
	assert.Equal(t, "", results[2].SelectedAnswer)

	if score < 33.3 || score > 33.4 {
		t.Errorf("score = %f, want one third", score)
	}
}

func TestScoreAttempt_Empty(t *testing.T) {
	results, score := ScoreAttempt(nil, map[string]string{"q1": AnswerA})
	assert.Equal(t, 0, len(results))
	assert.Equal(t, float64(0), score)
}
