package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// cache backends
const (
	CacheMemory = "memory"
	CacheSQLite = "sqlite"
)

// Config holds the application configuration
type Config struct {
	Server ServerConfig `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Fetch  FetchConfig  `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`
	Cache  CacheConfig  `yaml:"cache" json:"cache" jsonschema:"description=Feed text cache configuration"`
	Widget WidgetConfig `yaml:"widget" json:"widget" jsonschema:"description=Gallery widget defaults"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen   string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	Page     string        `yaml:"page" json:"page" jsonschema:"description=Host page with gallery containers served at /"`
	APIFeeds []string      `yaml:"api_feeds" json:"api_feeds" jsonschema:"description=Extra feed URLs the items and gallery API may load besides the host page feeds"`
}

// FetchConfig holds feed fetching settings
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Per-request timeout for feed downloads, must be below the server timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=4thWaveAI-Feeds/1.0,description=User agent for feed requests"`
	MaxBody   int64         `yaml:"max_body" json:"max_body" jsonschema:"default=5242880,description=Maximum feed body size in bytes, a bigger body is a fetch error"`
}

// CacheConfig holds feed cache settings
type CacheConfig struct {
	Type string        `yaml:"type" json:"type" jsonschema:"enum=memory,enum=sqlite,default=memory,description=Cache backend"`
	TTL  time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=15m,description=Lifetime of a cached feed"`
	DSN  string        `yaml:"dsn" json:"dsn" jsonschema:"default=file:feeds-cache.db?cache=shared&mode=rwc,description=SQLite DSN for the sqlite backend"`
}

// WidgetConfig holds defaults for gallery widgets
type WidgetConfig struct {
	Limit          int    `yaml:"limit" json:"limit" jsonschema:"default=9,minimum=1,description=Default number of cards per gallery"`
	Title          string `yaml:"title" json:"title" jsonschema:"default=Latest,description=Default gallery title"`
	Area           string `yaml:"area" json:"area" jsonschema:"description=Default area label"`
	Skeletons      int    `yaml:"skeletons" json:"skeletons" jsonschema:"default=6,minimum=0,maximum=6,description=Placeholder cards shown before data arrives"`
	DescriptionLen int    `yaml:"description_len" json:"description_len" jsonschema:"default=180,minimum=1,description=Card description length before truncation"`
}

// Default returns configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.Widget.Skeletons = 6 // zero is a valid setting, so it is only defaulted here
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	// decode over defaults, keys missing from the file keep them
	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 10 * time.Second
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "4thWaveAI-Feeds/1.0"
	}
	if cfg.Fetch.MaxBody == 0 {
		cfg.Fetch.MaxBody = 5 * 1024 * 1024
	}

	if cfg.Cache.Type == "" {
		cfg.Cache.Type = CacheMemory
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 15 * time.Minute
	}
	if cfg.Cache.DSN == "" {
		cfg.Cache.DSN = "file:feeds-cache.db?cache=shared&mode=rwc&_txlock=immediate"
	}

	if cfg.Widget.Limit == 0 {
		cfg.Widget.Limit = 9
	}
	if cfg.Widget.Title == "" {
		cfg.Widget.Title = "Latest"
	}
	if cfg.Widget.DescriptionLen == 0 {
		cfg.Widget.DescriptionLen = 180
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive")
	}
	// the host page waits for its feeds before anything is written
	if cfg.Fetch.Timeout >= cfg.Server.Timeout {
		return fmt.Errorf("fetch timeout %v must be below server timeout %v", cfg.Fetch.Timeout, cfg.Server.Timeout)
	}
	if cfg.Fetch.MaxBody < 0 {
		return fmt.Errorf("fetch max_body must be non-negative")
	}
	switch cfg.Cache.Type {
	case CacheMemory, CacheSQLite:
	default:
		return fmt.Errorf("unknown cache type %q", cfg.Cache.Type)
	}
	if cfg.Cache.TTL < 0 {
		return fmt.Errorf("cache ttl must be non-negative")
	}
	if cfg.Widget.Limit < 1 {
		return fmt.Errorf("widget limit must be at least 1")
	}
	if cfg.Widget.Skeletons < 0 || cfg.Widget.Skeletons > 6 {
		return fmt.Errorf("widget skeletons must be between 0 and 6")
	}
	if cfg.Widget.DescriptionLen < 1 {
		return fmt.Errorf("widget description_len must be at least 1")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetAPIFeeds returns feed URLs the API may load besides those of the host page
func (c *Config) GetAPIFeeds() []string {
	return c.Server.APIFeeds
}

// GetWidgetConfig returns widget defaults
func (c *Config) GetWidgetConfig() WidgetConfig {
	return c.Widget
}
