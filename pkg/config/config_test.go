package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s
  page: /srv/index.html

fetch:
  timeout: 10s
  user_agent: test-agent

cache:
  type: sqlite
  ttl: 5m
  dsn: file:test.db

widget:
  limit: 12
  title: News
  area: robotics
  skeletons: 3
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "/srv/index.html", cfg.Server.Page)
		assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
		assert.Equal(t, "test-agent", cfg.Fetch.UserAgent)
		assert.Equal(t, CacheSQLite, cfg.Cache.Type)
		assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, "file:test.db", cfg.Cache.DSN)
		assert.Equal(t, 12, cfg.Widget.Limit)
		assert.Equal(t, "News", cfg.Widget.Title)
		assert.Equal(t, "robotics", cfg.Widget.Area)
		assert.Equal(t, 3, cfg.Widget.Skeletons)
		assert.Equal(t, 180, cfg.Widget.DescriptionLen)
	})

	t.Run("defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte("server:\n  page: index.html\n"), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
		assert.Empty(t, cfg.Server.APIFeeds)
		assert.Equal(t, int64(5*1024*1024), cfg.Fetch.MaxBody)
		assert.Equal(t, CacheMemory, cfg.Cache.Type)
		assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, 9, cfg.Widget.Limit)
		assert.Equal(t, "Latest", cfg.Widget.Title)
		assert.Equal(t, 6, cfg.Widget.Skeletons)
	})

	t.Run("zero skeletons and api feeds", func(t *testing.T) {
		configContent := `
server:
  api_feeds:
    - https://x/rss.xml
    - https://y/feed.json
widget:
  skeletons: 0
`
		configPath := filepath.Join(t.TempDir(), "test-config.yml")
		require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

		cfg, err := Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Widget.Skeletons)
		assert.Equal(t, 9, cfg.Widget.Limit, "missing keys keep defaults")
		assert.Equal(t, []string{"https://x/rss.xml", "https://y/feed.json"}, cfg.Server.APIFeeds)
	})

	t.Run("fetch timeout not below server timeout", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "test-config.yml")
		require.NoError(t, os.WriteFile(configPath, []byte("server:\n  timeout: 10s\nfetch:\n  timeout: 10s\n"), 0o644))

		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "must be below server timeout")
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("FEEDS_TEST_LISTEN", ":7070")
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte("server:\n  listen: ${FEEDS_TEST_LISTEN}\n"), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Server.Listen)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "invalid.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("unknown cache type", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "bad-cache.yml")
		err := os.WriteFile(configPath, []byte("cache:\n  type: redis\n"), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), `unknown cache type "redis"`)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{name: "defaults are valid", modify: func(*Config) {}},
		{name: "short server timeout", modify: func(c *Config) { c.Server.Timeout = time.Millisecond },
			errMsg: "server timeout must be at least 1 second"},
		{name: "negative fetch timeout", modify: func(c *Config) { c.Fetch.Timeout = -time.Second },
			errMsg: "fetch timeout must be positive"},
		{name: "fetch timeout equals server timeout", modify: func(c *Config) { c.Fetch.Timeout = c.Server.Timeout },
			errMsg: "must be below server timeout"},
		{name: "fetch timeout above server timeout", modify: func(c *Config) {
			c.Server.Timeout = 5 * time.Second
			c.Fetch.Timeout = 10 * time.Second
		}, errMsg: "fetch timeout 10s must be below server timeout 5s"},
		{name: "no skeletons", modify: func(c *Config) { c.Widget.Skeletons = 0 }},
		{name: "too many skeletons", modify: func(c *Config) { c.Widget.Skeletons = 7 },
			errMsg: "widget skeletons must be between 0 and 6"},
		{name: "zero limit", modify: func(c *Config) { c.Widget.Limit = 0 },
			errMsg: "widget limit must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := validate(cfg)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_Getters(t *testing.T) {
	cfg := Default()
	cfg.Server.Listen = ":9090"
	cfg.Server.Timeout = 45 * time.Second

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
	assert.Equal(t, cfg.Widget, cfg.GetWidgetConfig())

	cfg.Server.APIFeeds = []string{"https://x/feed.json"}
	assert.Equal(t, []string{"https://x/feed.json"}, cfg.GetAPIFeeds())
}
