package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"fincon/config"
	httpLayer "fincon/http"
	"fincon/llm"
	"fincon/repository"
	"fincon/service"
)

// Set via -ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "fincon",
	Short:         "Retirement, loan and EPF RIA calculators with plain-language explanations",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			cfg.Server.Port = port
		}
		return cfg.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fincon %s (commit %s)\n", version, commit)
	},
}

func init() {
	serveCmd.Flags().String("config", "", "config file path (default: ./config/config.yaml)")
	serveCmd.Flags().Int("port", 0, "listen port, overrides server.port")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func serve(cfg *config.Config) error {
	var rdb *redis.Client
	if cfg.UsesRedis() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("Warning: redis at %s unreachable, cache and quota will degrade: %v", cfg.Redis.Addr, err)
		}
		cancel()
	}

	provider, err := newProvider(cfg.LLM)
	if err != nil {
		return err
	}
	if provider == nil {
		log.Println("No LLM API key configured, explanations will be static")
	}

	explainer := service.NewExplanationService(provider, newCache(cfg.Cache, rdb), service.ExplanationOptions{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
		CacheTTL:    cfg.Cache.TTL,
	})

	var limiter httpLayer.Limiter
	if cfg.RateLimit.Backend == "redis" {
		limiter = httpLayer.NewRedisLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	} else {
		memLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		defer memLimiter.Stop()
		limiter = memLimiter
	}

	server := &http.Server{
		Addr: cfg.Server.Addr(),
		Handler: httpLayer.NewRouter(httpLayer.RouterConfig{
			Explainer:      explainer,
			Limiter:        limiter,
			CORSOrigins:    cfg.Server.CORSOrigins,
			Version:        version,
			RequestTimeout: cfg.Server.WriteTimeout,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API listening on http://%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("error starting server: %w", err)
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
	return nil
}

// newProvider returns nil when no credential is configured.
func newProvider(c config.LLMConfig) (llm.Provider, error) {
	if c.APIKey == "" {
		return nil, nil
	}
	opts := []llm.OpenAIOption{llm.WithOpenAIModel(c.Model)}
	if c.BaseURL != "" {
		opts = append(opts, llm.WithOpenAIBaseURL(c.BaseURL))
	}
	p, err := llm.NewOpenAIProvider(c.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("LLM setup failed: %w", err)
	}
	return p, nil
}

func newCache(c config.CacheConfig, rdb *redis.Client) repository.CacheRepository {
	switch c.Backend {
	case "redis":
		return repository.NewRedisCache(rdb)
	case "memory":
		return repository.NewMemoryCache()
	default:
		return repository.NopCache{}
	}
}
