package provider

import (
	"fmt"

	"github.com/lollo21x/willpro-doot-inc/chat"
)

// NewClient creates a completion backend based on configuration.
//
// This is the centralized factory for all backend types; it dispatches on
// Config.Type and returns an error for unknown types or when the selected
// backend's constructor fails (missing API key, invalid host URL).
func NewClient(cfg Config) (chat.CompletionClient, error) {
	switch cfg.Type {
	case ClientTypeOpenRouter:
		return NewOpenRouterClient(cfg.BaseURL, cfg.APIKey)
	case ClientTypeAnthropic:
		return NewAnthropicClient(cfg.BaseURL, cfg.APIKey)
	case ClientTypeOllama:
		return NewOllamaClient(cfg.Host)
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}
