package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorInfo(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		kind       string
		statusCode int
	}{
		{name: "config", err: &ConfigError{Provider: "gnews", Reason: "missing api key"}, kind: ErrKindConfig},
		{name: "status", err: NewStatusError("newsapi", 401, []byte(`{"status":"error"}`)), kind: ErrKindProvider, statusCode: 401},
		{name: "timeout", err: &ProviderError{Provider: "guardian", Err: fmt.Errorf("do: %w", context.DeadlineExceeded)},
			kind: ErrKindTimeout},
		{name: "parse", err: &ParseError{Source: "openai", Err: errors.New("no json")}, kind: ErrKindParse},
		{name: "empty", err: fmt.Errorf("aggregate: %w", ErrNoArticles), kind: ErrKindEmpty},
		{name: "plain", err: errors.New("boom"), kind: ErrKindProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewErrorInfo(tt.err)
			require.NotNil(t, info)
			assert.Equal(t, tt.kind, info.Kind)
			assert.Equal(t, tt.statusCode, info.StatusCode)
			assert.Equal(t, tt.err.Error(), info.Message)
		})
	}

	assert.Nil(t, NewErrorInfo(nil))
}

func TestProviderError(t *testing.T) {
	long := strings.Repeat("x", 2000)
	err := NewStatusError("newsapi", 500, []byte(long))
	assert.Len(t, err.Body, maxErrorBody)
	assert.True(t, err.Transient())
	assert.True(t, NewStatusError("newsapi", 429, nil).Transient())
	assert.False(t, NewStatusError("newsapi", 401, nil).Transient())
	assert.True(t, (&ProviderError{Provider: "x", Err: errors.New("conn refused")}).Transient())
	malformed := &ProviderError{Provider: "x", Err: fmt.Errorf("%w: unexpected EOF", ErrMalformedPayload)}
	assert.False(t, malformed.Transient())
	assert.Contains(t, NewStatusError("gnews", 403, []byte("forbidden")).Error(), "gnews: unexpected status 403: forbidden")
}

func TestFeedItem_MarshalJSON(t *testing.T) {
	pub := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	items := []FeedItem{
		NewsItem(Article{ID: "a1", Headline: "Headline", Summary: "s", PublishedAt: pub, SourceProvider: "gnews"}),
		AdItem(Advertisement{ID: 7, Title: "Buy", Active: true}),
	}

	data, err := json.Marshal(items)
	require.NoError(t, err)

	var decoded []struct {
		Type    string         `json:"type"`
		Content map[string]any `json:"content"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "news", decoded[0].Type)
	assert.Equal(t, "Headline", decoded[0].Content["headline"])
	assert.Equal(t, "2025-05-01T10:00:00Z", decoded[0].Content["publishedAt"])
	assert.Equal(t, "ad", decoded[1].Type)
	assert.Equal(t, "Buy", decoded[1].Content["title"])
}

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	assert.Equal(t, "2025-03-01", DateKey(time.Date(2025, 3, 2, 2, 0, 0, 0, loc)))
	assert.Equal(t, "2025-03-02", DateKey(time.Date(2025, 3, 2, 23, 59, 0, 0, time.UTC)))
}

func TestProviderResultConstructors(t *testing.T) {
	ok := NewProviderResult("gnews", nil)
	assert.True(t, ok.OK())
	assert.NotNil(t, ok.Articles)
	assert.Nil(t, ok.Error)

	failed := FailedProviderResult("gnews", &ConfigError{Provider: "gnews", Reason: "missing api key"})
	assert.False(t, failed.OK())
	assert.Empty(t, failed.Articles)
	require.NotNil(t, failed.Error)
	assert.Equal(t, ErrKindConfig, failed.Error.Kind)
}
