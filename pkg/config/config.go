package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/newsdeck/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used in RSS links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsdeck.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Aggregator AggregatorConfig `yaml:"aggregator" json:"aggregator" jsonschema:"description=News fan-out settings"`

	Providers map[domain.ProviderID]ProviderConfig `yaml:"providers" json:"providers" jsonschema:"description=Per-provider credentials keyed by provider id"`

	AI AIConfig `yaml:"ai" json:"ai" jsonschema:"description=AI-generated news settings"`
}

// AggregatorConfig holds news fan-out settings
type AggregatorConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=12s,description=Upper bound for one provider call"`
	MaxWorkers    int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=10,description=Maximum concurrent provider calls"`
	RetryAttempts int           `yaml:"retry_attempts" json:"retry_attempts" jsonschema:"default=2,minimum=1,description=Attempts per provider for transient failures"`
	RetryDelay    time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=300ms,description=Initial backoff delay between attempts"`
	PageSize      int           `yaml:"page_size" json:"page_size" jsonschema:"default=20,description=Default requested page size"`
}

// ProviderConfig holds credentials and overrides for one news provider
type ProviderConfig struct {
	APIKey      string `yaml:"api_key" json:"api_key" jsonschema:"description=API key (use environment variable expansion)"`
	Endpoint    string `yaml:"endpoint" json:"endpoint" jsonschema:"description=Base URL override"`
	MaxPageSize int    `yaml:"max_page_size" json:"max_page_size" jsonschema:"description=Hard ceiling override for page size"`
	Enabled     bool   `yaml:"enabled" json:"enabled" jsonschema:"description=Enable keyless providers (googlenews)"`
	Language    string `yaml:"language" json:"language" jsonschema:"description=Language or locale override"`
	Country     string `yaml:"country" json:"country" jsonschema:"description=Country override"`
}

// GeneratorConfig holds credentials for one AI generation provider
type GeneratorConfig struct {
	APIKey   string `yaml:"api_key" json:"api_key" jsonschema:"description=API key (use environment variable expansion)"`
	Model    string `yaml:"model" json:"model" jsonschema:"description=Model name"`
	Endpoint string `yaml:"endpoint" json:"endpoint" jsonschema:"description=API base URL override"`
}

// AIConfig holds AI-news generation settings
type AIConfig struct {
	Categories     []string                   `yaml:"categories" json:"categories" jsonschema:"description=Categories generated every day"`
	Timeout        time.Duration              `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Upper bound for one generation call"`
	RateLimit      time.Duration              `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=200ms,description=Minimum interval between calls to one generator"`
	MaxTokens      int                        `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=1500,description=Maximum tokens in generation response"`
	Temperature    float64                    `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Generation temperature"`
	RetentionDays  int                        `yaml:"retention_days" json:"retention_days" jsonschema:"default=30,description=Days of AI news kept in storage"`
	WarmupInterval time.Duration              `yaml:"warmup_interval" json:"warmup_interval" jsonschema:"description=Background cache warm-up interval, e.g. 1h (0 disables)"`
	MaxRefreshes   int                        `yaml:"max_refreshes" json:"max_refreshes" jsonschema:"default=3,description=Warm-up regenerations of a placeholder day, per day"`
	Generators     map[string]GeneratorConfig `yaml:"generators" json:"generators" jsonschema:"description=Generation providers keyed by id (openai, deepseek, anthropic, gemini)"`
}

// default AI categories
var defaultAICategories = []string{
	domain.CategoryTechnology, domain.CategoryBusiness, domain.CategoryScience, domain.CategoryHealth, domain.CategoryWorld,
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:newsdeck.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// aggregator
	if c.Aggregator.Timeout == 0 {
		c.Aggregator.Timeout = 12 * time.Second
	}
	if c.Aggregator.MaxWorkers == 0 {
		c.Aggregator.MaxWorkers = 10
	}
	if c.Aggregator.RetryAttempts == 0 {
		c.Aggregator.RetryAttempts = 2
	}
	if c.Aggregator.RetryDelay == 0 {
		c.Aggregator.RetryDelay = 300 * time.Millisecond
	}
	if c.Aggregator.PageSize == 0 {
		c.Aggregator.PageSize = 20
	}
	if c.Providers == nil {
		c.Providers = map[domain.ProviderID]ProviderConfig{}
	}

	// ai
	if len(c.AI.Categories) == 0 {
		c.AI.Categories = append([]string{}, defaultAICategories...)
	}
	if c.AI.Timeout == 0 {
		c.AI.Timeout = 15 * time.Second
	}
	if c.AI.RateLimit == 0 {
		c.AI.RateLimit = 200 * time.Millisecond
	}
	if c.AI.MaxTokens == 0 {
		c.AI.MaxTokens = 1500
	}
	if c.AI.Temperature == 0 {
		c.AI.Temperature = 0.7
	}
	if c.AI.RetentionDays == 0 {
		c.AI.RetentionDays = 30
	}
	if c.AI.MaxRefreshes == 0 {
		c.AI.MaxRefreshes = 3
	}
	if c.AI.Generators == nil {
		c.AI.Generators = map[string]GeneratorConfig{}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Aggregator.Timeout < time.Second {
		return fmt.Errorf("aggregator.timeout must be at least 1 second")
	}
	if cfg.Aggregator.MaxWorkers < 1 {
		return fmt.Errorf("aggregator.max_workers must be at least 1")
	}
	if cfg.Aggregator.RetryAttempts < 1 {
		return fmt.Errorf("aggregator.retry_attempts must be at least 1")
	}
	if cfg.Aggregator.PageSize < 1 {
		return fmt.Errorf("aggregator.page_size must be at least 1")
	}

	known := map[domain.ProviderID]bool{}
	for _, id := range domain.AllProviders() {
		known[id] = true
	}
	for id, p := range cfg.Providers {
		if !known[id] {
			return fmt.Errorf("providers.%s: unknown provider", id)
		}
		if p.MaxPageSize < 0 {
			return fmt.Errorf("providers.%s.max_page_size must be non-negative", id)
		}
	}

	if cfg.AI.Timeout < time.Second {
		return fmt.Errorf("ai.timeout must be at least 1 second")
	}
	if cfg.AI.RetentionDays < 0 {
		return fmt.Errorf("ai.retention_days must be non-negative")
	}
	if cfg.AI.WarmupInterval < 0 {
		return fmt.Errorf("ai.warmup_interval must be non-negative")
	}
	if cfg.AI.MaxRefreshes < 0 {
		return fmt.Errorf("ai.max_refreshes must be non-negative")
	}
	if cfg.AI.Temperature < 0 || cfg.AI.Temperature > 2 {
		return fmt.Errorf("ai.temperature must be between 0 and 2")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// Provider returns configuration of the given news provider, zero value if not configured
func (c *Config) Provider(id domain.ProviderID) ProviderConfig {
	return c.Providers[id]
}

// Secrets returns all configured API keys, used to mask them in logs
func (c *Config) Secrets() []string {
	var res []string
	for _, p := range c.Providers {
		if p.APIKey != "" {
			res = append(res, p.APIKey)
		}
	}
	for _, g := range c.AI.Generators {
		if g.APIKey != "" {
			res = append(res, g.APIKey)
		}
	}
	return res
}
