package ainews

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/domain"
)

//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator

// Generator is a generative AI provider writing news for one category.
// It returns the raw text of the response, parsing is done by the caller.
type Generator interface {
	ID() string
	Generate(ctx context.Context, category string, date time.Time) (string, error)
}

// generator ids
const (
	GeneratorOpenAI    = "openai"
	GeneratorDeepSeek  = "deepseek"
	GeneratorAnthropic = "anthropic"
	GeneratorGemini    = "gemini"
)

// GeneratorOptions are shared by all generators
type GeneratorOptions struct {
	MaxTokens   int
	Temperature float64
	Client      *http.Client // used by raw HTTP generators
}

// NewGenerators makes generators for configured ids in fixed order: openai, deepseek, anthropic, gemini
func NewGenerators(cfgs map[string]config.GeneratorConfig, opts GeneratorOptions) ([]Generator, error) {
	known := []string{GeneratorOpenAI, GeneratorDeepSeek, GeneratorAnthropic, GeneratorGemini}
	for id := range cfgs {
		if !contains(known, id) {
			return nil, fmt.Errorf("unknown generator %q", id)
		}
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 60 * time.Second}
	}

	var res []Generator
	for _, id := range known {
		cfg, ok := cfgs[id]
		if !ok {
			continue
		}
		switch id {
		case GeneratorOpenAI, GeneratorDeepSeek:
			res = append(res, NewOpenAIGenerator(id, cfg, opts))
		case GeneratorAnthropic:
			res = append(res, NewAnthropicGenerator(cfg, opts))
		case GeneratorGemini:
			res = append(res, NewGeminiGenerator(cfg, opts))
		}
	}
	return res, nil
}

const systemPrompt = `You are a news editor writing short, factual news briefs. Reply with JSON only, no commentary.`

const userPrompt = `Write up to %d of the most important %s news stories for %s.
Reply with a JSON array of objects with fields:
- headline: short headline (max 120 chars)
- summary: 2-3 sentence summary of the story
- url: link to a source if you know one, empty string otherwise`

func buildPrompt(category string, date time.Time) string {
	return fmt.Sprintf(userPrompt, perCategoryLimit, category, date.UTC().Format("January 2, 2006"))
}

// postJSON sends JSON request and decodes JSON response, non-2xx statuses reported as *domain.ProviderError
func postJSON(ctx context.Context, client *http.Client, provider, url string, headers map[string]string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &domain.ProviderError{Provider: provider, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return &domain.ProviderError{Provider: provider, Err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.NewStatusError(provider, resp.StatusCode, b)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.ProviderError{Provider: provider, Err: fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)}
	}
	return nil
}

func missingKey(id string) error {
	return &domain.ConfigError{Provider: id, Reason: "api key is not set"}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
