// Package provider implements chat-completion backends behind the
// chat.CompletionClient contract: OpenRouter (OpenAI-compatible), Anthropic,
// and a local Ollama server.
//
// Each backend converts the neutral request history into its SDK's message
// shapes, issues one non-streaming completion call, and normalizes the reply
// text. HTTP failures surface as *chat.RemoteError so the caller can classify
// them by status code.
package provider

// ClientType identifies a completion backend.
type ClientType string

const (
	ClientTypeOpenRouter ClientType = "openrouter"
	ClientTypeAnthropic  ClientType = "anthropic"
	ClientTypeOllama     ClientType = "ollama"
)

// Config carries the connection settings for a backend. Only the fields
// relevant to the selected Type are consulted.
type Config struct {
	Type    ClientType
	BaseURL string // OpenRouter/Anthropic API base URL
	APIKey  string // OpenRouter/Anthropic API key
	Host    string // Ollama server URL
}
