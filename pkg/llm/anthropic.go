package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.ModelClaudeHaiku4_5,
		modelName: "claude-4.5-haiku",
	}
}

func (c *AnthropicClient) Rewrite(ctx context.Context, input RewriteInput) (*RewriteResult, error) {
	if len(strings.TrimSpace(input.Content)) < minContentChars {
		return nil, ErrTooShort
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   3000,
		Temperature: anthropic.Float(0.3),
		System: []anthropic.TextBlockParam{
			{Text: rewriteSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildRewritePrompt(input))),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("no response from anthropic")
	}

	result, err := parseRewriteResponse(resp.Content[0].Text)
	if err != nil {
		return nil, err
	}

	result.ModelUsed = c.modelName
	return result, nil
}

func (c *AnthropicClient) GenerateQuiz(ctx context.Context, input QuizInput) (*QuizResult, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   4000,
		Temperature: anthropic.Float(0.3),
		System: []anthropic.TextBlockParam{
			{Text: quizSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildQuizPrompt(input))),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("no response from anthropic")
	}

	questions, err := parseQuizResponse(resp.Content[0].Text)
	if err != nil {
		return nil, err
	}

	return &QuizResult{
		Questions: questions,
		ModelUsed: c.modelName,
	}, nil
}

func (c *AnthropicClient) GenerateArticle(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	input, err := normalizeGenerateInput(input)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   4000,
		Temperature: anthropic.Float(0.7),
		TopP:        anthropic.Float(0.9),
		System: []anthropic.TextBlockParam{
			{Text: generateSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildGeneratePrompt(input))),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("no response from anthropic")
	}

	result, err := parseGenerateResponse(resp.Content[0].Text)
	if err != nil {
		return nil, err
	}

	result.ModelUsed = c.modelName
	return result, nil
}

func (c *AnthropicClient) SuggestTopics(ctx context.Context, query string) ([]Suggestion, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   1000,
		Temperature: anthropic.Float(0.8),
		System: []anthropic.TextBlockParam{
			{Text: suggestionsSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildSuggestionsPrompt(query))),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("no response from anthropic")
	}

	return parseSuggestionsResponse(resp.Content[0].Text)
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
