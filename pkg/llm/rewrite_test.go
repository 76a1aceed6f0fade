package llm

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestParseRewriteResponse(t *testing.T) {
	content := "```json\n" + `{
		"title": "AI Chips Reach Customers",
		"tags": ["artificial-intelligence", "hardware", "startup"],
		"abstract": "A startup shipped its first AI chip. Early customers run optimization workloads.",
		"content": "<p>The chip shipped on Friday.</p><p><strong>Source:</strong> <a href=\"https://example.com/a\" target=\"_blank\">TechCrunch</a></p>"
	}` + "\n```"

	result, err := parseRewriteResponse(content)

	assert.Equal(t, nil, err)
	assert.Equal(t, "AI Chips Reach Customers", result.Title)
	assert.Equal(t, 3, len(result.Tags))
	assert.NotEqual(t, "", result.Abstract)
	assert.NotEqual(t, "", result.Content)
}

func TestParseRewriteResponse_MissingField(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing title",
			content: `{"tags":["ai"],"abstract":"A.","content":"<p>B</p>"}`,
		},
		{
			name:    "missing tags",
			content: `{"title":"T","abstract":"A.","content":"<p>B</p>"}`,
		},
		{
			name:    "missing abstract",
			content: `{"title":"T","tags":["ai"],"content":"<p>B</p>"}`,
		},
		{
			name:    "missing content",
			content: `{"title":"T","tags":["ai"],"abstract":"A."}`,
		},
		{
			name:    "not JSON at all",
			content: "Sorry, I cannot help with that.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseRewriteResponse(tt.content)
			assert.Equal(t, (*RewriteResult)(nil), result)
			assert.Equal(t, true, errors.Is(err, ErrInvalidResponse))
		})
	}
}

func TestBuildRewritePrompt(t *testing.T) {
	prompt := buildRewritePrompt(RewriteInput{
		Title:      "Original Title",
		Abstract:   "Original abstract.",
		Content:    "Original body text.",
		Keywords:   []string{"ai", "chips"},
		SourceName: "TechCrunch",
		SourceURL:  "https://example.com/a",
	})

	for _, want := range []string{
		"Original Title",
		"Original abstract.",
		"Original body text.",
		"ai, chips",
		"https://example.com/a",
		"TechCrunch",
	} {
		assert.Equal(t, true, strings.Contains(prompt, want))
	}
}
