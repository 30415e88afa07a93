package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/airgraph/airgraph/internal/config"
)

func NewClassifier(ctx context.Context, cfg config.LLMConfig, prompt string) (Classifier, error) {
	provider := strings.ToLower(cfg.Provider)

	switch provider {
	case "openai":
		return NewOpenAIClassifier(cfg.APIKey, cfg.Model, cfg.BaseURL, prompt), nil

	case "gemini":
		return NewGeminiClassifier(ctx, cfg.APIKey, cfg.Model, prompt)

	case "claude":
		return NewClaudeClassifier(cfg.APIKey, cfg.Model, cfg.BaseURL, prompt), nil

	case "ollama":
		// Ollama speaks the OpenAI-compatible API; the key is ignored
		// server-side but the client config requires one.
		baseURL := cfg.BaseURL
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}

		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}

		return NewOpenAIClassifier(apiKey, cfg.Model, baseURL, prompt), nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
