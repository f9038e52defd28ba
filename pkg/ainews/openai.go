package ainews

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/domain"
)

// OpenAIGenerator talks to OpenAI and OpenAI-compatible APIs (DeepSeek)
type OpenAIGenerator struct {
	id          string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	client      *openai.Client
}

// NewOpenAIGenerator creates generator for openai or deepseek id
func NewOpenAIGenerator(id string, cfg config.GeneratorConfig, opts GeneratorOptions) *OpenAIGenerator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	model := cfg.Model
	if id == GeneratorDeepSeek {
		clientConfig.BaseURL = "https://api.deepseek.com/v1"
		if model == "" {
			model = "deepseek-chat"
		}
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if opts.Client != nil {
		clientConfig.HTTPClient = opts.Client
	}

	return &OpenAIGenerator{
		id:          id,
		apiKey:      cfg.APIKey,
		model:       model,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		client:      openai.NewClientWithConfig(clientConfig),
	}
}

// ID returns generator id
func (g *OpenAIGenerator) ID() string { return g.id }

// Generate asks chat completion for news of the category
func (g *OpenAIGenerator) Generate(ctx context.Context, category string, date time.Time) (string, error) {
	if g.apiKey == "" {
		return "", missingKey(g.id)
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: float32(g.temperature),
		MaxTokens:   g.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(category, date)},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &domain.ProviderError{Provider: g.id, StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message, Err: err}
		}
		return "", &domain.ProviderError{Provider: g.id, Err: fmt.Errorf("llm request failed: %w", err)}
	}
	if len(resp.Choices) == 0 {
		return "", &domain.ProviderError{Provider: g.id, Err: fmt.Errorf("%w: no choices in response", domain.ErrMalformedPayload)}
	}
	return resp.Choices[0].Message.Content, nil
}
