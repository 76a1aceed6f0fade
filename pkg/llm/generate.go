package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	maxGenerateQueryChars = 1000
	maxGenerateInputChars = 5000
)

// GenerationOptions lists the accepted values for each generation knob.
// Unknown values fall back to the defaults below.
var GenerationOptions = struct {
	ArticleTypes  []string
	Lengths       []string
	Tones         []string
	OutputFormats []string
}{
	ArticleTypes:  []string{"informative", "tutorial", "opinion", "review", "news"},
	Lengths:       []string{"short", "medium", "long"},
	Tones:         []string{"professional", "casual", "academic", "conversational", "technical"},
	OutputFormats: []string{"markdown", "html"},
}

const (
	defaultArticleType  = "informative"
	defaultLength       = "medium"
	defaultTone         = "professional"
	defaultOutputFormat = "markdown"
)

// LengthDescriptions and ToneDescriptions back the config endpoint.
var (
	LengthDescriptions = map[string]string{
		"short":  "300-600 words (quick read)",
		"medium": "600-1200 words (comprehensive)",
		"long":   "1200-2500 words (in-depth)",
	}
	ToneDescriptions = map[string]string{
		"professional":   "Formal, authoritative, business-appropriate",
		"casual":         "Friendly, conversational, approachable",
		"academic":       "Scholarly, research-focused, detailed",
		"conversational": "Personal, engaging, friendly",
		"technical":      "Precise, detailed, industry-specific",
	}
)

const generateSystemPrompt = `You are an expert content creator. Generate high-quality articles based on user input. Always return valid JSON.`

const generatePromptTemplate = `You are an expert content writer. Generate a high-quality English article based on the user's requirements.

INPUT:
Topic/Query: %s
Additional Content: %s
Article Type: %s
Length: %s
Tone: %s
Format: %s

TASK: Create a well-structured article with the following requirements:

LENGTH GUIDELINES:
- Short: 500-800 words
- Medium: 1000-1500 words
- Long: 2000-3000 words

OUTPUT: Return ONLY a valid JSON object with this exact structure:
{
  "title": "Engaging article title",
  "abstract": "Brief 2-3 sentence summary of the article",
  "content": "Full article content in %[6]s format with proper headings and structure",
  "tags": ["relevant", "topic", "tags"]
}

RULES:
- Do NOT include any text outside the JSON.
- Content must be original, well-structured, and engaging.
- Use proper %[6]s formatting with headings and subheadings in the content.
- Abstract must be 2-3 sentences summarizing the key points.
- Tags should be 3-5 relevant keywords.

Generate the article now:`

const suggestionsSystemPrompt = `You are a content strategy expert. Generate diverse article suggestions. Always return valid JSON.`

const suggestionsPromptTemplate = `Based on the topic: "%s"

Generate 5 related article suggestions with different angles and approaches.

Return ONLY a valid JSON object with this structure:
{
  "suggestions": [
    {
      "title": "Suggested Article Title",
      "description": "Brief description of the article approach",
      "article_type": "informative|tutorial|opinion|review|news",
      "estimated_length": "short|medium|long",
      "target_audience": "Brief description of target readers"
    }
  ]
}`

// normalizeGenerateInput trims oversized text and replaces unknown option
// values with their defaults instead of rejecting the request.
func normalizeGenerateInput(input GenerateInput) (GenerateInput, error) {
	input.Query = strings.TrimSpace(input.Query)
	if input.Query == "" {
		return input, ErrEmptyQuery
	}

	if len(input.Query) > maxGenerateQueryChars {
		input.Query = input.Query[:maxGenerateQueryChars]
	}
	if len(input.InputText) > maxGenerateInputChars {
		input.InputText = input.InputText[:maxGenerateInputChars]
	}

	input.ArticleType = pickOption(input.ArticleType, GenerationOptions.ArticleTypes, defaultArticleType)
	input.Length = pickOption(input.Length, GenerationOptions.Lengths, defaultLength)
	input.Tone = pickOption(input.Tone, GenerationOptions.Tones, defaultTone)
	input.OutputFormat = pickOption(input.OutputFormat, GenerationOptions.OutputFormats, defaultOutputFormat)

	return input, nil
}

func pickOption(value string, allowed []string, fallback string) string {
	for _, option := range allowed {
		if value == option {
			return value
		}
	}
	return fallback
}

func buildGeneratePrompt(input GenerateInput) string {
	return fmt.Sprintf(generatePromptTemplate,
		input.Query,
		input.InputText,
		input.ArticleType,
		input.Length,
		input.Tone,
		input.OutputFormat,
	)
}

func buildSuggestionsPrompt(query string) string {
	return fmt.Sprintf(suggestionsPromptTemplate, query)
}

func parseGenerateResponse(content string) (*GenerateResult, error) {
	content = cleanJSONResponse(content)

	var result GenerateResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("%w: %v, content: %s", ErrInvalidResponse, err, content)
	}

	if result.Title == "" || result.Abstract == "" || result.Content == "" {
		return nil, fmt.Errorf("%w: missing required field", ErrInvalidResponse)
	}

	// Missing tags are tolerated, unlike the rewrite contract: a generated
	// article is still usable untagged.
	if result.Tags == nil {
		result.Tags = []string{}
	}

	return &result, nil
}

func parseSuggestionsResponse(content string) ([]Suggestion, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v, content: %s", ErrInvalidResponse, err, content)
	}

	if len(parsed.Suggestions) == 0 {
		return nil, fmt.Errorf("%w: no suggestions", ErrInvalidResponse)
	}

	return parsed.Suggestions, nil
}
