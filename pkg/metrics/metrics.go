// Package metrics exposes prometheus counters and histograms for provider fan-out and AI news generation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umputun/newsdeck/pkg/domain"
)

const namespace = "newsdeck"

// call statuses
const (
	statusOK          = "ok"
	statusConfigError = "config_error"
	statusError       = "error"
	statusTimeout     = "timeout"
)

// Metrics holds all collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	providerCalls    *prometheus.CounterVec
	providerDuration *prometheus.HistogramVec
	generatorCalls   *prometheus.CounterVec
	generatorLatency *prometheus.HistogramVec
	aiRefreshes      *prometheus.CounterVec
	aiItems          prometheus.Gauge
}

// New makes Metrics with go and process collectors registered
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "Total number of news provider calls",
		}, []string{"provider", "status"}),
		providerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_call_duration_seconds",
			Help:      "Duration of news provider calls in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"provider"}),
		generatorCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_generation_calls_total",
			Help:      "Total number of AI generation calls",
		}, []string{"generator", "status"}),
		generatorLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ai_generation_duration_seconds",
			Help:      "Duration of AI generation calls in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"generator"}),
		aiRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_news_refresh_total",
			Help:      "Total number of AI news refreshes",
		}, []string{"placeholder"}),
		aiItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ai_news_items",
			Help:      "Number of AI news items produced by the last refresh",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.providerCalls, m.providerDuration, m.generatorCalls, m.generatorLatency, m.aiRefreshes, m.aiItems,
	)
	return m
}

// ProviderCall records one provider call of the aggregator
func (m *Metrics) ProviderCall(provider string, duration time.Duration, err error) {
	m.providerCalls.WithLabelValues(provider, status(err)).Inc()
	m.providerDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// GenerationCall records one AI generator call
func (m *Metrics) GenerationCall(generator string, duration time.Duration, err error) {
	m.generatorCalls.WithLabelValues(generator, status(err)).Inc()
	m.generatorLatency.WithLabelValues(generator).Observe(duration.Seconds())
}

// AINewsRefresh records the outcome of an AI news refresh
func (m *Metrics) AINewsRefresh(items int, placeholder bool) {
	label := "false"
	if placeholder {
		label = "true"
	}
	m.aiRefreshes.WithLabelValues(label).Inc()
	m.aiItems.Set(float64(items))
}

// Handler returns http handler serving the registry in prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func status(err error) string {
	info := domain.NewErrorInfo(err)
	if info == nil {
		return statusOK
	}
	switch info.Kind {
	case domain.ErrKindConfig:
		return statusConfigError
	case domain.ErrKindTimeout:
		return statusTimeout
	}
	return statusError
}
