package factory

import (
	"fmt"

	"ai-interview-be/pkg/llm"
	"ai-interview-be/pkg/llm/gemini"
	"ai-interview-be/pkg/llm/groq"
	"ai-interview-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL, geminiAPIKey, groqAPIKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		p := gemini.NewGeminiProvider(geminiAPIKey)
		if modelName != "" {
			p.ModelName = modelName
		}
		return p, nil
	case "groq":
		p := groq.NewGroqProvider(groqAPIKey)
		if modelName != "" {
			p.ModelName = modelName
		}
		return p, nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
