package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdeck/pkg/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		t.Setenv("TEST_GNEWS_KEY", "gnews-secret")
		configPath := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
aggregator:
  timeout: 10s
  max_workers: 4
  page_size: 15
providers:
  gnews:
    api_key: ${TEST_GNEWS_KEY}
  newsapi:
    api_key: newsapi-secret
    max_page_size: 50
  googlenews:
    enabled: true
ai:
  categories: [Technology, Sports]
  retention_days: 7
  generators:
    openai:
      api_key: sk-test
      model: gpt-4o-mini
`)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 10*time.Second, cfg.Aggregator.Timeout)
		assert.Equal(t, 4, cfg.Aggregator.MaxWorkers)
		assert.Equal(t, 15, cfg.Aggregator.PageSize)

		assert.Equal(t, "gnews-secret", cfg.Provider(domain.ProviderGNews).APIKey)
		assert.Equal(t, 50, cfg.Provider(domain.ProviderNewsAPI).MaxPageSize)
		assert.True(t, cfg.Provider(domain.ProviderGoogleNews).Enabled)
		assert.Empty(t, cfg.Provider(domain.ProviderGuardian).APIKey, "unconfigured provider is a zero value")

		assert.Equal(t, []string{"Technology", "Sports"}, cfg.AI.Categories)
		assert.Equal(t, 7, cfg.AI.RetentionDays)
		assert.Equal(t, "gpt-4o-mini", cfg.AI.Generators["openai"].Model)
		assert.ElementsMatch(t, []string{"gnews-secret", "newsapi-secret", "sk-test"}, cfg.Secrets())
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8081\"\n"))
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
		assert.Equal(t, 12*time.Second, cfg.Aggregator.Timeout)
		assert.Equal(t, 10, cfg.Aggregator.MaxWorkers)
		assert.Equal(t, 2, cfg.Aggregator.RetryAttempts)
		assert.Equal(t, 300*time.Millisecond, cfg.Aggregator.RetryDelay)
		assert.Equal(t, 20, cfg.Aggregator.PageSize)
		assert.Equal(t, 15*time.Second, cfg.AI.Timeout)
		assert.Equal(t, 30, cfg.AI.RetentionDays)
		assert.Equal(t, 3, cfg.AI.MaxRefreshes)
		assert.Equal(t, defaultAICategories, cfg.AI.Categories)
		assert.NotNil(t, cfg.Providers)
		assert.NotNil(t, cfg.AI.Generators)
		assert.Empty(t, cfg.Secrets())
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "invalid yaml content\n  with bad indentation\n    and no structure\n"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "providers:\n  bbc:\n    api_key: x\n"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "providers.bbc: unknown provider")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{name: "server timeout", modify: func(c *Config) { c.Server.Timeout = time.Millisecond },
			errMsg: "server timeout must be at least 1 second"},
		{name: "aggregator timeout", modify: func(c *Config) { c.Aggregator.Timeout = 500 * time.Millisecond },
			errMsg: "aggregator.timeout must be at least 1 second"},
		{name: "retry attempts", modify: func(c *Config) { c.Aggregator.RetryAttempts = -1 },
			errMsg: "aggregator.retry_attempts must be at least 1"},
		{name: "negative page limit", modify: func(c *Config) {
			c.Providers[domain.ProviderGNews] = ProviderConfig{MaxPageSize: -5}
		}, errMsg: "providers.gnews.max_page_size must be non-negative"},
		{name: "negative retention", modify: func(c *Config) { c.AI.RetentionDays = -1 },
			errMsg: "ai.retention_days must be non-negative"},
		{name: "negative max refreshes", modify: func(c *Config) { c.AI.MaxRefreshes = -1 },
			errMsg: "ai.max_refreshes must be non-negative"},
		{name: "temperature", modify: func(c *Config) { c.AI.Temperature = 3 },
			errMsg: "ai.temperature must be between 0 and 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.setDefaults()
			tt.modify(cfg)
			err := validate(cfg)
			require.Error(t, err)
			assert.Equal(t, tt.errMsg, err.Error())
		})
	}
}

func TestConfig_GetServerConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Listen = ":9090"
	cfg.Server.Timeout = 45 * time.Second

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
}
