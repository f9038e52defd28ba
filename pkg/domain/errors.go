package domain

import (
	"context"
	"errors"
	"fmt"
)

// maxErrorBody limits the provider response body kept in ProviderError
const maxErrorBody = 512

var (
	// ErrNoArticles is reported when a fan-out produced zero articles
	ErrNoArticles = errors.New("no articles found")
	// ErrUnknownProvider is returned for a provider selector that names no known adapter
	ErrUnknownProvider = errors.New("unknown provider")
	// ErrMalformedPayload marks a provider response that could not be decoded
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrRejected marks a request refused by provider in the response body, not by HTTP status
	ErrRejected = errors.New("request rejected")
)

// ConfigError signals a missing or invalid credential for one provider. Never retried.
type ConfigError struct {
	Provider string
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: configuration error: %s", e.Provider, e.Reason)
}

// ProviderError signals a non-2xx response, a transport failure or a malformed payload from one provider
type ProviderError struct {
	Provider   string
	StatusCode int    // zero for transport and decode failures
	Body       string // truncated response body
	Err        error
}

// NewStatusError makes a ProviderError from an unexpected HTTP status
func NewStatusError(provider string, code int, body []byte) *ProviderError {
	b := string(body)
	if len(b) > maxErrorBody {
		b = b[:maxErrorBody]
	}
	return &ProviderError{Provider: provider, StatusCode: code, Body: b}
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Transient reports whether retrying the call may succeed
func (e *ProviderError) Transient() bool {
	if errors.Is(e.Err, ErrMalformedPayload) || errors.Is(e.Err, ErrRejected) {
		return false
	}
	if e.StatusCode == 0 {
		return true
	}
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// ParseError signals AI free-text output without locatable JSON
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s response: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// error kinds used in ErrorInfo
const (
	ErrKindConfig   = "config"
	ErrKindProvider = "provider"
	ErrKindTimeout  = "timeout"
	ErrKindParse    = "parse"
	ErrKindEmpty    = "empty"
)

// ErrorInfo is the serializable projection of an error
type ErrorInfo struct {
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode,omitempty"`
}

// NewErrorInfo classifies err into ErrorInfo, nil for nil error
func NewErrorInfo(err error) *ErrorInfo {
	if err == nil {
		return nil
	}
	info := &ErrorInfo{Kind: ErrKindProvider, Message: err.Error()}

	var cfgErr *ConfigError
	var provErr *ProviderError
	var parseErr *ParseError
	switch {
	case errors.As(err, &cfgErr):
		info.Kind = ErrKindConfig
	case errors.Is(err, context.DeadlineExceeded):
		info.Kind = ErrKindTimeout
	case errors.As(err, &parseErr):
		info.Kind = ErrKindParse
	case errors.Is(err, ErrNoArticles):
		info.Kind = ErrKindEmpty
	case errors.As(err, &provErr):
		info.StatusCode = provErr.StatusCode
	}
	return info
}
