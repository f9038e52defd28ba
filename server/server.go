package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newsdeck/pkg/aggregator"
	"github.com/umputun/newsdeck/pkg/domain"
	"github.com/umputun/newsdeck/pkg/feed"
	"github.com/umputun/newsdeck/pkg/provider"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/aggregator.go -pkg mocks -skip-ensure -fmt goimports . Aggregator
//go:generate moq -out mocks/ainews.go -pkg mocks -skip-ensure -fmt goimports . AINews
//go:generate moq -out mocks/ad_store.go -pkg mocks -skip-ensure -fmt goimports . AdStore
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config     ConfigProvider
	aggregator Aggregator
	aiNews     AINews
	ads        AdStore
	scheduler  Scheduler
	metrics    http.Handler
	rss        *feed.Generator
	version    string
	debug      bool
	now        func() time.Time

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Aggregator collects news from providers
type Aggregator interface {
	Aggregate(ctx context.Context, category, selector string, pageSize int) aggregator.Result
	Providers() []provider.Provider
}

// AINews serves AI-generated news of the day
type AINews interface {
	GetOrRefresh(ctx context.Context, today time.Time) (*domain.AINewsCache, error)
	Categories() []string
}

// AdStore provides active advertisements
type AdStore interface {
	ListActive(ctx context.Context) ([]domain.Advertisement, error)
}

// Scheduler reports background warm-up state
type Scheduler interface {
	LastWarmup(ctx context.Context) time.Time
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Params for server creation
type Params struct {
	Config     ConfigProvider
	Aggregator Aggregator
	AINews     AINews
	Ads        AdStore
	Scheduler  Scheduler    // optional
	Metrics    http.Handler // optional, served on /metrics
	BaseURL    string       // public url used in RSS links
	Version    string
	Debug      bool
}

// New initializes a new server instance
func New(params Params) *Server {
	s := &Server{
		config:     params.Config,
		aggregator: params.Aggregator,
		aiNews:     params.AINews,
		ads:        params.Ads,
		scheduler:  params.Scheduler,
		metrics:    params.Metrics,
		rss:        feed.NewGenerator(params.BaseURL),
		version:    params.Version,
		debug:      params.Debug,
		now:        time.Now,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// Handler returns the router, used by tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsdeck", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /news", s.newsHandler)
		r.HandleFunc("GET /feed", s.feedHandler)
		r.HandleFunc("GET /ai-news", s.aiNewsHandler)
		r.HandleFunc("GET /ai-news/feed", s.aiNewsFeedHandler)
		r.HandleFunc("GET /providers", s.providersHandler)
		r.HandleFunc("GET /categories", s.categoriesHandler)
	})

	s.router.HandleFunc("GET /rss/ai-news", s.aiNewsRSSHandler)
	s.router.HandleFunc("GET /rss/{category}", s.rssHandler)
	s.router.HandleFunc("GET /rss", s.rssHandler)
	s.router.HandleFunc("GET /opml", s.opmlHandler)

	if s.metrics != nil {
		s.router.Handle("GET /metrics", s.metrics)
	}
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":    "ok",
		"version":   s.version,
		"time":      s.now().UTC(),
		"providers": len(s.aggregator.Providers()),
	}
	if s.scheduler != nil {
		if ts := s.scheduler.LastWarmup(r.Context()); !ts.IsZero() {
			status["lastWarmup"] = ts.UTC()
		}
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
