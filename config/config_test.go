package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, e := range []string{"OPENAI_API_KEY", "FINCON_LLM_API_KEY", "FINCON_SERVER_PORT", "FINCON_RATELIMIT_BACKEND"} {
		t.Setenv(e, "")
	}
}

func TestLoadReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 0.7, cfg.LLM.Temperature)
	assert.Equal(t, 400, cfg.LLM.MaxTokens)
	assert.Equal(t, 15*time.Second, cfg.LLM.Timeout)
	assert.Empty(t, cfg.LLM.APIKey)

	assert.Equal(t, "memory", cfg.RateLimit.Backend)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Equal(t, time.Hour, cfg.RateLimit.Window)

	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.False(t, cfg.UsesRedis())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "fincon.yaml")
	yaml := `
server:
  port: 9090
  cors_origins: ["https://fincon.example"]
llm:
  model: gpt-4o
  timeout: 5s
ratelimit:
  backend: redis
  requests: 3
  window: 30m
cache:
  backend: none
redis:
  addr: redis:6379
  db: 2
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://fincon.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "redis", cfg.RateLimit.Backend)
	assert.Equal(t, 3, cfg.RateLimit.Requests)
	assert.Equal(t, 30*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "none", cfg.Cache.Backend)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.UsesRedis())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FINCON_SERVER_PORT", "7070")
	t.Setenv("FINCON_RATELIMIT_BACKEND", "redis")
	t.Setenv("OPENAI_API_KEY", "sk-plain")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.RateLimit.Backend)
	assert.Equal(t, "sk-plain", cfg.LLM.APIKey)

	t.Setenv("FINCON_LLM_API_KEY", "sk-prefixed")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-prefixed", cfg.LLM.APIKey)
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "ollama" }},
		{"zero llm timeout", func(c *Config) { c.LLM.Timeout = 0 }},
		{"temperature out of range", func(c *Config) { c.LLM.Temperature = 3 }},
		{"zero quota", func(c *Config) { c.RateLimit.Requests = 0 }},
		{"zero window", func(c *Config) { c.RateLimit.Window = 0 }},
		{"unknown limiter backend", func(c *Config) { c.RateLimit.Backend = "etcd" }},
		{"unknown cache backend", func(c *Config) { c.Cache.Backend = "disk" }},
		{"redis without address", func(c *Config) { c.Cache.Backend = "redis"; c.Redis.Addr = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
