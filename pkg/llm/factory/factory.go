package factory

import (
	"fmt"

	"site-chatbot-be/pkg/llm"
	"site-chatbot-be/pkg/llm/gemini"
	"site-chatbot-be/pkg/llm/ollama"
)

// NewProvider selects the generation backend by name.
func NewProvider(providerName, modelName, ollamaBaseURL, geminiApiKey string) (llm.Provider, error) {
	switch providerName {
	case "gemini":
		if geminiApiKey == "" {
			return nil, fmt.Errorf("gemini provider requires GOOGLE_GEMINI_API_KEY")
		}
		return gemini.NewGeminiProvider(geminiApiKey, modelName), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", providerName)
	}
}
