package ainews

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/domain"
)

// GeminiGenerator calls Google Gemini generateContent API
type GeminiGenerator struct {
	apiKey      string
	model       string
	endpoint    string
	maxTokens   int
	temperature float64
	client      *http.Client
}

// NewGeminiGenerator creates Gemini generator
func NewGeminiGenerator(cfg config.GeneratorConfig, opts GeneratorOptions) *GeminiGenerator {
	res := &GeminiGenerator{apiKey: cfg.APIKey, model: cfg.Model, endpoint: cfg.Endpoint,
		maxTokens: opts.MaxTokens, temperature: opts.Temperature, client: opts.Client}
	if res.model == "" {
		res.model = "gemini-1.5-flash"
	}
	if res.endpoint == "" {
		res.endpoint = "https://generativelanguage.googleapis.com"
	}
	if res.client == nil {
		res.client = &http.Client{Timeout: 60 * time.Second}
	}
	return res
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// ID returns generator id
func (g *GeminiGenerator) ID() string { return GeneratorGemini }

// Generate asks Gemini for news of the category
func (g *GeminiGenerator) Generate(ctx context.Context, category string, date time.Time) (string, error) {
	if g.apiKey == "" {
		return "", missingKey(GeneratorGemini)
	}

	req := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		Contents:          []geminiContent{{Role: "user", Parts: []geminiPart{{Text: buildPrompt(category, date)}}}},
	}
	req.GenerationConfig.Temperature = g.temperature
	req.GenerationConfig.MaxOutputTokens = g.maxTokens

	reqURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		g.endpoint, url.PathEscape(g.model), url.QueryEscape(g.apiKey))

	var resp geminiResponse
	if err := postJSON(ctx, g.client, GeneratorGemini, reqURL, nil, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", &domain.ProviderError{Provider: GeneratorGemini,
			Err: fmt.Errorf("%w: no candidates", domain.ErrMalformedPayload)}
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
