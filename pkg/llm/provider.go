package llm

import (
	"context"
	"errors"
)

// Classified failures. Callers are expected to absorb both into
// deterministic fallback content rather than surfacing them.
var (
	// ErrBackendUnavailable covers transport errors, non-2xx responses
	// and missing credentials.
	ErrBackendUnavailable = errors.New("language backend unavailable")

	// ErrEmptyResponse means the call succeeded but no candidate text
	// could be extracted.
	ErrEmptyResponse = errors.New("language backend returned no content")
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature  float64
	MaxTokens    int
	Model        string // Override default model
	SystemPrompt string // Instruction carried alongside a single-prompt generation
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithSystemPrompt(system string) Option {
	return func(o *Options) {
		o.SystemPrompt = system
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model. An optional system
	// instruction is attached via WithSystemPrompt.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
