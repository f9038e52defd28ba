package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdeck/pkg/domain"
)

func TestMetrics_ProviderCall(t *testing.T) {
	m := New()
	m.ProviderCall("newsapi", 100*time.Millisecond, nil)
	m.ProviderCall("newsapi", 200*time.Millisecond, nil)
	m.ProviderCall("gnews", time.Second, &domain.ConfigError{Provider: "gnews", Reason: "api key is not set"})
	m.ProviderCall("guardian", time.Second, fmt.Errorf("call: %w", context.DeadlineExceeded))
	m.ProviderCall("nytimes", time.Second, domain.NewStatusError("nytimes", 500, nil))

	assert.InDelta(t, 2, testutil.ToFloat64(m.providerCalls.WithLabelValues("newsapi", statusOK)), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.providerCalls.WithLabelValues("gnews", statusConfigError)), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.providerCalls.WithLabelValues("guardian", statusTimeout)), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.providerCalls.WithLabelValues("nytimes", statusError)), 0.001)
	assert.Equal(t, 4, testutil.CollectAndCount(m.providerDuration))
}

func TestMetrics_Generation(t *testing.T) {
	m := New()
	m.GenerationCall("openai", time.Second, nil)
	m.GenerationCall("gemini", time.Second, errors.New("boom"))
	m.AINewsRefresh(12, false)
	m.AINewsRefresh(10, true)

	assert.InDelta(t, 1, testutil.ToFloat64(m.generatorCalls.WithLabelValues("openai", statusOK)), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.generatorCalls.WithLabelValues("gemini", statusError)), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.aiRefreshes.WithLabelValues("true")), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.aiRefreshes.WithLabelValues("false")), 0.001)
	assert.InDelta(t, 10, testutil.ToFloat64(m.aiItems), 0.001)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ProviderCall("newsapi", 100*time.Millisecond, nil)

	ts := httptest.NewServer(m.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `newsdeck_provider_calls_total{provider="newsapi",status="ok"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	m1, m2 := New(), New()
	m1.ProviderCall("newsapi", time.Millisecond, nil)
	assert.InDelta(t, 0, testutil.ToFloat64(m2.providerCalls.WithLabelValues("newsapi", statusOK)), 0.001)
	assert.NotSame(t, m1.Registry(), m2.Registry())
}
