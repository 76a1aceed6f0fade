package llm

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func validQuizJSON() string {
	return `{
		"questions": [
			{
				"question": "What did the startup ship?",
				"answer_a": "An AI chip",
				"answer_b": "A phone",
				"answer_c": "A drone",
				"answer_d": "A satellite",
				"correct_answer": "answer_a",
				"explanation": "The article says the startup shipped its first AI chip."
			},
			{
				"question": "Which workloads does the chip target?",
				"answer_a": "Gaming",
				"answer_b": "Optimization",
				"answer_c": "Streaming",
				"answer_d": "Rendering",
				"correct_answer": "answer_b",
				"explanation": "The chip targets optimization workloads in logistics and finance."
			}
		]
	}`
}

func TestParseQuizResponse(t *testing.T) {
	questions, err := parseQuizResponse("```json\n" + validQuizJSON() + "\n```")

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(questions))
	assert.Equal(t, "answer_a", questions[0].CorrectAnswer)
	assert.Equal(t, "Optimization", questions[1].AnswerB)
}

func TestParseQuizResponse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "no questions",
			content: `{"questions": []}`,
		},
		{
			name:    "bad correct_answer key",
			content: `{"questions":[{"question":"Q","answer_a":"a","answer_b":"b","answer_c":"c","answer_d":"d","correct_answer":"answer_e"}]}`,
		},
		{
			name:    "missing option",
			content: `{"questions":[{"question":"Q","answer_a":"a","answer_b":"b","answer_c":"c","correct_answer":"answer_a"}]}`,
		},
		{
			name:    "not JSON",
			content: "I could not generate questions.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := parseQuizResponse(tt.content)
			assert.Equal(t, 0, len(questions))
			assert.Equal(t, true, errors.Is(err, ErrInvalidResponse))
		})
	}
}

func TestCleanQuizText(t *testing.T) {
	got := cleanQuizText("<p>Hello   <strong>world</strong></p>\n<h3>Heading</h3>", 100)
	assert.Equal(t, "Hello world Heading", got)

	long := strings.Repeat("a", 200)
	assert.Equal(t, 50, len(cleanQuizText(long, 50)))
}

func TestClampQuestionCount(t *testing.T) {
	assert.Equal(t, minQuestions, clampQuestionCount(0))
	assert.Equal(t, 5, clampQuestionCount(5))
	assert.Equal(t, maxQuestions, clampQuestionCount(100))
}
