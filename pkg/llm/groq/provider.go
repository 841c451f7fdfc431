package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-interview-be/pkg/llm"
)

const defaultModel = "llama3-70b-8192"

// GroqProvider talks to the Groq OpenAI-compatible chat completions API.
// Groq's free tier makes it the preferred backend for code-assist calls,
// keeping interview traffic on the primary provider.
type GroqProvider struct {
	APIKey    string
	ModelName string
	BaseURL   string
	Client    *http.Client
}

var _ llm.LLMProvider = &GroqProvider{}

func NewGroqProvider(apiKey string) *GroqProvider {
	return &GroqProvider{
		APIKey:    apiKey,
		ModelName: defaultModel,
		BaseURL:   "https://api.groq.com/openai/v1",
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type groqChoice struct {
	Message groqMessage `json:"message"`
}

type groqResponse struct {
	Choices []groqChoice `json:"choices"`
}

func (g *GroqProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := applyOptions(opts)

	messages := make([]groqMessage, 0, len(history)+1)
	if options.SystemPrompt != "" {
		messages = append(messages, groqMessage{Role: "system", Content: options.SystemPrompt})
	}
	for _, msg := range history {
		role := msg.Role
		// OpenAI-style APIs use "assistant" for the model side
		if role == "model" || role == "ai" {
			role = "assistant"
		}
		messages = append(messages, groqMessage{Role: role, Content: msg.Content})
	}

	return g.call(ctx, messages, options)
}

func (g *GroqProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	options := applyOptions(opts)

	messages := make([]groqMessage, 0, 2)
	if options.SystemPrompt != "" {
		messages = append(messages, groqMessage{Role: "system", Content: options.SystemPrompt})
	}
	messages = append(messages, groqMessage{Role: "user", Content: prompt})

	return g.call(ctx, messages, options)
}

func (g *GroqProvider) call(ctx context.Context, messages []groqMessage, options *llm.Options) (string, error) {
	if g.APIKey == "" {
		return "", fmt.Errorf("%w: api key not configured", llm.ErrBackendUnavailable)
	}

	model := g.ModelName
	if options.Model != "" {
		model = options.Model
	}

	reqPayload := groqRequest{
		Model:       model,
		Messages:    messages,
		Temperature: options.Temperature,
		MaxTokens:   options.MaxTokens,
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := g.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", llm.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", llm.ErrBackendUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d, body: %s", llm.ErrBackendUnavailable, resp.StatusCode, string(bodyBytes))
	}

	var groqResp groqResponse
	if err := json.Unmarshal(bodyBytes, &groqResp); err != nil {
		return "", fmt.Errorf("%w: unmarshal: %v", llm.ErrEmptyResponse, err)
	}

	if len(groqResp.Choices) == 0 || groqResp.Choices[0].Message.Content == "" {
		return "", llm.ErrEmptyResponse
	}

	return groqResp.Choices[0].Message.Content, nil
}

func applyOptions(opts []llm.Option) *llm.Options {
	options := &llm.Options{
		Temperature: 0.3,
		MaxTokens:   1024,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
