package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		config  func() *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			config: Default,
		},
		{
			name: "missing listen",
			config: func() *Config {
				c := Default()
				c.Server.Listen = ""
				return c
			},
			wantErr: true,
			errMsg:  "server.listen is required",
		},
		{
			name: "sqlite without dsn",
			config: func() *Config {
				c := Default()
				c.Cache.Type = CacheSQLite
				c.Cache.DSN = ""
				return c
			},
			wantErr: true,
			errMsg:  "cache.dsn is required for sqlite cache",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyAgainstEmbeddedSchema(tt.config())
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
	assert.NotEmpty(t, schema.Definitions)
	assert.Contains(t, schema.Definitions, "Config")
	assert.Contains(t, schema.Definitions, "CacheConfig")
}
