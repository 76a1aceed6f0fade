package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

const rewriteSystemPrompt = `You are a professional journalist and senior editor with deep expertise in multilingual content adaptation. Always strictly adhere to the required JSON format. Never add markdown, comments, or any text other than standard JSON.`

const rewritePromptTemplate = `You are a professional journalist and experienced editor. Your task is to paraphrase the given article while maintaining accuracy and adapting it for readers.

PARAPHRASING PRINCIPLES:
- Maintain the accuracy and objectivity of the original information
- Use the SAME LANGUAGE as the input article
- Preserve proper names, company names, numbers, and technical terms
- Create well-structured HTML content with appropriate formatting tags
- Return the exact JSON format as required

ORIGINAL ARTICLE:
Title: %s
Abstract: %s
Content: %s
Original Keywords: %s

TAG GENERATION GUIDELINES:
- Create 3-7 relevant tags that match the content topic
- Tags are 1-3 words maximum
- Use lowercase with hyphens between words (e.g., "machine-learning", "data-science", "ai")
- Complement the existing keywords, avoid duplicates
- Examples: "artificial-intelligence", "blockchain", "startup", "cybersecurity", "fintech"

REQUIRED JSON FORMAT (MANDATORY):
{
  "title": "Concise and engaging title in the same language as input (max 80 characters)",
  "tags": ["tag1", "tag2", "tag3", "tag4", "tag5"],
  "abstract": "Brief 2-3 sentence summary in the same language as input, highlighting key points",
  "content": "<p>Engaging opening paragraph introducing the topic...</p><h3>Subheading if needed</h3><p>Detailed content completely paraphrased in the same language as input, using HTML tags like <strong>, <em>, <h3> for formatting. Split into multiple <p> paragraphs for readability.</p><p><strong>Source:</strong> <a href=\"%s\" target=\"_blank\">%s</a></p>"
}`

func buildRewritePrompt(input RewriteInput) string {
	return fmt.Sprintf(rewritePromptTemplate,
		input.Title,
		input.Abstract,
		input.Content,
		strings.Join(input.Keywords, ", "),
		input.SourceURL,
		input.SourceName,
	)
}

// parseRewriteResponse decodes the model reply into a RewriteResult. A reply
// missing any required field is rejected whole; no best-effort record.
func parseRewriteResponse(content string) (*RewriteResult, error) {
	content = cleanJSONResponse(content)

	var parsed RewriteResult
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v, content: %s", ErrInvalidResponse, err, content)
	}

	if parsed.Title == "" || parsed.Abstract == "" || parsed.Content == "" || len(parsed.Tags) == 0 {
		return nil, fmt.Errorf("%w: missing required field", ErrInvalidResponse)
	}

	return &parsed, nil
}
