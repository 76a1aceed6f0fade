package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (c *OpenAIClient) Rewrite(ctx context.Context, input RewriteInput) (*RewriteResult, error) {
	if len(strings.TrimSpace(input.Content)) < minContentChars {
		return nil, ErrTooShort
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(rewriteSystemPrompt),
			openai.UserMessage(buildRewritePrompt(input)),
		},
		MaxTokens: openai.Int(3000),
		// Low temperature keeps the output close to the required structure.
		Temperature: openai.Float(0.3),
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	result, err := parseRewriteResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	result.ModelUsed = c.modelName
	return result, nil
}

func (c *OpenAIClient) GenerateArticle(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	input, err := normalizeGenerateInput(input)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(generateSystemPrompt),
			openai.UserMessage(buildGeneratePrompt(input)),
		},
		MaxTokens: openai.Int(4000),
		// Higher temperature than the rewrite path: original writing, not
		// paraphrasing.
		Temperature:      openai.Float(0.7),
		TopP:             openai.Float(0.9),
		FrequencyPenalty: openai.Float(0.3),
		PresencePenalty:  openai.Float(0.3),
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	result, err := parseGenerateResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	result.ModelUsed = c.modelName
	return result, nil
}

func (c *OpenAIClient) SuggestTopics(ctx context.Context, query string) ([]Suggestion, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(suggestionsSystemPrompt),
			openai.UserMessage(buildSuggestionsPrompt(query)),
		},
		MaxTokens:   openai.Int(1000),
		Temperature: openai.Float(0.8),
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	return parseSuggestionsResponse(resp.Choices[0].Message.Content)
}

func (c *OpenAIClient) GenerateQuiz(ctx context.Context, input QuizInput) (*QuizResult, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(quizSystemPrompt),
			openai.UserMessage(buildQuizPrompt(input)),
		},
		MaxTokens:   openai.Int(4000),
		Temperature: openai.Float(0.3),
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	questions, err := parseQuizResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	return &QuizResult{
		Questions: questions,
		ModelUsed: c.modelName,
	}, nil
}
