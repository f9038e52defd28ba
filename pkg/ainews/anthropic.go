package ainews

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/domain"
)

// AnthropicGenerator calls the Anthropic Messages API
type AnthropicGenerator struct {
	apiKey    string
	model     string
	endpoint  string
	maxTokens int
	client    *http.Client
}

// NewAnthropicGenerator creates Anthropic generator
func NewAnthropicGenerator(cfg config.GeneratorConfig, opts GeneratorOptions) *AnthropicGenerator {
	res := &AnthropicGenerator{apiKey: cfg.APIKey, model: cfg.Model, endpoint: cfg.Endpoint,
		maxTokens: opts.MaxTokens, client: opts.Client}
	if res.model == "" {
		res.model = "claude-3-5-haiku-latest"
	}
	if res.endpoint == "" {
		res.endpoint = "https://api.anthropic.com"
	}
	if res.maxTokens <= 0 {
		res.maxTokens = 1500
	}
	if res.client == nil {
		res.client = &http.Client{Timeout: 60 * time.Second}
	}
	return res
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// ID returns generator id
func (g *AnthropicGenerator) ID() string { return GeneratorAnthropic }

// Generate asks Claude for news of the category
func (g *AnthropicGenerator) Generate(ctx context.Context, category string, date time.Time) (string, error) {
	if g.apiKey == "" {
		return "", missingKey(GeneratorAnthropic)
	}

	req := anthropicRequest{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		System:    systemPrompt,
		Messages:  []anthropicMessage{{Role: "user", Content: buildPrompt(category, date)}},
	}
	headers := map[string]string{"x-api-key": g.apiKey, "anthropic-version": "2023-06-01"}

	var resp anthropicResponse
	if err := postJSON(ctx, g.client, GeneratorAnthropic, g.endpoint+"/v1/messages", headers, req, &resp); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, c := range resp.Content {
		sb.WriteString(c.Text)
	}
	if sb.Len() == 0 {
		return "", &domain.ProviderError{Provider: GeneratorAnthropic,
			Err: fmt.Errorf("%w: empty content", domain.ErrMalformedPayload)}
	}
	return sb.String(), nil
}
