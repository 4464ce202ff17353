// Package config loads server settings from an optional YAML file, a .env
// file and environment variables.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "FINCON"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"    yaml:"server"`
	LLM       LLMConfig       `mapstructure:"llm"       yaml:"llm"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit" yaml:"ratelimit"`
	Cache     CacheConfig     `mapstructure:"cache"     yaml:"cache"`
	Redis     RedisConfig     `mapstructure:"redis"     yaml:"redis"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"             yaml:"host"`
	Port            int           `mapstructure:"port"             yaml:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    yaml:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"     yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"     yaml:"cors_origins"`
}

// Addr is the listen address, e.g. "0.0.0.0:8080".
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LLMConfig configures the explanation model. An empty APIKey disables it.
type LLMConfig struct {
	Provider    string        `mapstructure:"provider"    yaml:"provider"` // only "openai"
	APIKey      string        `mapstructure:"api_key"     yaml:"api_key"`
	BaseURL     string        `mapstructure:"base_url"    yaml:"base_url"`
	Model       string        `mapstructure:"model"       yaml:"model"`
	Temperature float64       `mapstructure:"temperature" yaml:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"  yaml:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"     yaml:"timeout"`
}

type RateLimitConfig struct {
	Backend  string        `mapstructure:"backend"  yaml:"backend"` // "memory" or "redis"
	Requests int           `mapstructure:"requests" yaml:"requests"`
	Window   time.Duration `mapstructure:"window"   yaml:"window"`
}

type CacheConfig struct {
	Backend string        `mapstructure:"backend" yaml:"backend"` // "none", "memory" or "redis"
	TTL     time.Duration `mapstructure:"ttl"     yaml:"ttl"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"     yaml:"addr"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db"       yaml:"db"`
}

// UsesRedis reports whether any component needs a Redis connection.
func (c *Config) UsesRedis() bool {
	return c.RateLimit.Backend == "redis" || c.Cache.Backend == "redis"
}

// Load reads the configuration. Search order for config.yaml:
//  1. ./config
//  2. ~/.fincon
//  3. /etc/fincon
//
// A .env file in the working directory is loaded first. Environment
// variables override the file, e.g. FINCON_SERVER_PORT or FINCON_LLM_API_KEY.
func Load() (*Config, error) {
	loadDotEnv()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".fincon"))
	v.AddConfigPath("/etc/fincon")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadDotEnv()

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	overrideFromEnv(&cfg)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 400)
	v.SetDefault("llm.timeout", 15*time.Second)

	// 10 explanations per caller per hour
	v.SetDefault("ratelimit.backend", "memory")
	v.SetDefault("ratelimit.requests", 10)
	v.SetDefault("ratelimit.window", time.Hour)

	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.ttl", 24*time.Hour)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
}

// overrideFromEnv reads the model credential under its conventional name
// when no prefixed variable set it.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv(envPrefix + "_LLM_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
		return
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = key
	}
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.LLM.Provider != "openai" {
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}
	if c.LLM.Timeout <= 0 {
		return errors.New("llm.timeout must be positive")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2, got %g", c.LLM.Temperature)
	}
	if c.RateLimit.Requests <= 0 {
		return errors.New("ratelimit.requests must be positive")
	}
	if c.RateLimit.Window <= 0 {
		return errors.New("ratelimit.window must be positive")
	}
	switch c.RateLimit.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("ratelimit.backend %q is not one of memory, redis", c.RateLimit.Backend)
	}
	switch c.Cache.Backend {
	case "none", "memory", "redis":
	default:
		return fmt.Errorf("cache.backend %q is not one of none, memory, redis", c.Cache.Backend)
	}
	if c.UsesRedis() && c.Redis.Addr == "" {
		return errors.New("redis.addr is required when a redis backend is selected")
	}
	return nil
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
