package factory

import (
	"fmt"
	"time"

	"wellness-be/pkg/llm"
	"wellness-be/pkg/llm/ollama"
	"wellness-be/pkg/llm/venice"
)

type Config struct {
	Provider      string
	BaseURL       string
	APIKey        string
	ModelName     string
	OllamaBaseURL string
	Timeout       time.Duration
}

func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "venice", "":
		return venice.NewVeniceProvider(cfg.BaseURL, cfg.APIKey, cfg.ModelName, cfg.Timeout), nil
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, cfg.ModelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
