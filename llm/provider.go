// Package llm is a small chat-completion client used to turn calculation
// summaries into prose.
package llm

import (
	"context"
	"errors"
	"time"
)

const ProviderOpenAI = "openai"

var (
	ErrNoAPIKey     = errors.New("llm: API key not configured")
	ErrRateLimit    = errors.New("llm: upstream rate limit exceeded")
	ErrProviderDown = errors.New("llm: provider unavailable")
	ErrEmptyContent = errors.New("llm: response had no content")
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

func SystemMessage(content string) Message { return Message{Role: RoleSystem, Content: content} }
func UserMessage(content string) Message   { return Message{Role: RoleUser, Content: content} }

type ChatOptions struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type Response struct {
	Content  string
	Model    string
	Provider string
	Usage    Usage
	Latency  time.Duration
}

// Provider is a chat completion backend.
type Provider interface {
	Name() string
	Chat(ctx context.Context, messages []Message, opts *ChatOptions) (*Response, error)
}
