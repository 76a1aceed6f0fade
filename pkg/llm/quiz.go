package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const (
	minQuestions = 3
	maxQuestions = 20

	maxQuizContentChars  = 8000
	maxQuizTitleChars    = 1000
	maxQuizAbstractChars = 4000
)

const quizSystemPrompt = `You are an expert educational content creator. Always return only valid JSON with no markdown fences or extra commentary.`

const quizPromptTemplate = `You are an expert educational content creator. Generate high-quality multiple-choice questions based on the provided article content.

ARTICLE INFORMATION:
Title: %s
Abstract: %s
Content: %s

TASK: Create %d multiple-choice questions that test comprehension of this article.

REQUIREMENTS:
- Questions should cover different aspects of the article (main ideas, specific details, implications)
- Each question must have exactly 4 answer options
- Only ONE answer should be definitively correct
- Distractors should be plausible but clearly wrong to someone who understood the content
- Avoid trick questions or overly complex wording
- Mix difficulty levels
- Include explanations that reference specific parts of the article
- Avoid questions that can be answered without reading the article
- DO NOT include any hints or indicators showing which answer is correct

OUTPUT FORMAT - return ONLY a valid JSON object with this exact structure:
{
  "questions": [
    {
      "question": "Clear, specific question text",
      "answer_a": "First option",
      "answer_b": "Second option",
      "answer_c": "Third option",
      "answer_d": "Fourth option",
      "correct_answer": "answer_a|answer_b|answer_c|answer_d",
      "explanation": "Why the correct answer is right and how it relates to the article"
    }
  ]
}`

var (
	htmlTagExpr    = regexp.MustCompile(`<[^>]+>`)
	whitespaceExpr = regexp.MustCompile(`\s+`)
)

func buildQuizPrompt(input QuizInput) string {
	return fmt.Sprintf(quizPromptTemplate,
		cleanQuizText(input.Title, maxQuizTitleChars),
		cleanQuizText(input.Abstract, maxQuizAbstractChars),
		cleanQuizText(input.Content, maxQuizContentChars),
		clampQuestionCount(input.NumQuestions),
	)
}

func clampQuestionCount(n int) int {
	if n < minQuestions {
		return minQuestions
	}
	if n > maxQuestions {
		return maxQuestions
	}
	return n
}

// cleanQuizText strips HTML tags, collapses whitespace, and caps the length
// so article markup never leaks into the prompt.
func cleanQuizText(text string, maxChars int) string {
	text = htmlTagExpr.ReplaceAllString(text, " ")
	text = whitespaceExpr.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	if len(text) > maxChars {
		text = text[:maxChars]
	}
	return text
}

func parseQuizResponse(content string) ([]QuizQuestion, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Questions []QuizQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v, content: %s", ErrInvalidResponse, err, content)
	}

	if len(parsed.Questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidResponse)
	}

	for i, q := range parsed.Questions {
		if !validQuestion(q) {
			return nil, fmt.Errorf("%w: malformed question at index %d", ErrInvalidResponse, i)
		}
	}

	return parsed.Questions, nil
}

func validQuestion(q QuizQuestion) bool {
	if q.Question == "" || q.AnswerA == "" || q.AnswerB == "" || q.AnswerC == "" || q.AnswerD == "" {
		return false
	}
	switch q.CorrectAnswer {
	case "answer_a", "answer_b", "answer_c", "answer_d":
		return true
	}
	return false
}
