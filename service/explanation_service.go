package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"

	"fincon/domain"
	"fincon/llm"
	"fincon/repository"
)

type ExplanationOptions struct {
	Model       string
	Temperature float64
	MaxTokens   int
	// Timeout bounds a single model call.
	Timeout  time.Duration
	CacheTTL time.Duration
}

// ExplanationService asks a language model to explain a calculation and
// falls back to a static explanation when it cannot.
type ExplanationService struct {
	provider llm.Provider
	cache    repository.CacheRepository
	opts     ExplanationOptions
	group    singleflight.Group
}

// NewExplanationService wires the service. A nil provider disables the model
// and every explanation is static; a nil cache disables caching.
func NewExplanationService(
	provider llm.Provider,
	cache repository.CacheRepository,
	opts ExplanationOptions,
) *ExplanationService {
	if cache == nil {
		cache = repository.NopCache{}
	}
	if opts.Model == "" {
		opts.Model = DefaultExplanationModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultExplanationMaxTokens
	}
	if opts.Temperature <= 0 {
		opts.Temperature = DefaultExplanationTemperature
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultExplanationTimeout
	}
	return &ExplanationService{provider: provider, cache: cache, opts: opts}
}

func (s *ExplanationService) Enabled() bool {
	return s.provider != nil
}

// Explain returns the model's explanation, or the static one if the model
// fails for any reason. The only error is *domain.InvalidInputError for a
// malformed request.
func (s *ExplanationService) Explain(ctx context.Context, req domain.ExplanationRequest) (domain.Explanation, error) {
	if err := req.Validate(); err != nil {
		return domain.Explanation{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	content, err := s.Generate(ctx, req)
	if err != nil {
		log.Printf("Warning: %s explanation unavailable, using static fallback: %v", req.Type, err)
		return domain.Explanation{Content: StaticExplanation(req), Source: domain.SourceStatic}, nil
	}
	return domain.Explanation{Content: content, Source: domain.SourceAI}, nil
}

// Generate calls the model without any fallback. Failures other than a
// malformed request are *domain.ExternalServiceError. Identical concurrent
// requests share one model call.
func (s *ExplanationService) Generate(ctx context.Context, req domain.ExplanationRequest) (string, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return "", err
	}
	if s.provider == nil {
		return "", &domain.ExternalServiceError{Op: "credential", Err: llm.ErrNoAPIKey}
	}

	key, err := s.cacheKey(req)
	if err != nil {
		return "", &domain.ExternalServiceError{Op: "encode", Err: err}
	}
	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached, nil
	}

	ch := s.group.DoChan(key, func() (interface{}, error) {
		// The shared call outlives any single caller's cancellation.
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.Timeout)
		defer cancel()
		return s.complete(callCtx, key, prompt)
	})

	select {
	case <-ctx.Done():
		return "", &domain.ExternalServiceError{Op: "chat", Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (s *ExplanationService) complete(ctx context.Context, key, prompt string) (string, error) {
	resp, err := s.provider.Chat(ctx,
		[]llm.Message{llm.SystemMessage(explanationSystemPrompt), llm.UserMessage(prompt)},
		&llm.ChatOptions{
			Model:       s.opts.Model,
			Temperature: s.opts.Temperature,
			MaxTokens:   s.opts.MaxTokens,
		},
	)
	if err != nil {
		return "", &domain.ExternalServiceError{Op: "chat", Err: err}
	}

	content, err := sanitizeFragment(resp.Content)
	if err != nil {
		return "", &domain.ExternalServiceError{Op: "parse", Err: err}
	}

	if err := s.cache.Set(ctx, key, content, s.opts.CacheTTL); err != nil {
		log.Printf("Warning: failed to cache explanation: %v", err)
	}
	return content, nil
}

// cacheKey digests the model and the summary; the same numbers with the same
// model always map to the same key.
func (s *ExplanationService) cacheKey(req domain.ExplanationRequest) (string, error) {
	var payload interface{}
	switch req.Type {
	case domain.CalculationRetirement:
		payload = req.Retirement
	case domain.CalculationLoan:
		payload = req.Loan
	default:
		payload = req.EPFRIA
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	h := xxhash.New()
	h.WriteString(s.opts.Model)
	h.WriteString("\x00")
	h.WriteString(string(req.Type))
	h.WriteString("\x00")
	h.Write(data)
	return fmt.Sprintf("%s:%016x", req.Type, h.Sum64()), nil
}
