package provider

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"github.com/lollo21x/willpro-doot-inc/chat"
	"github.com/lollo21x/willpro-doot-inc/config"
)

// OllamaClient implements chat.CompletionClient against a local Ollama
// server.
type OllamaClient struct {
	client *api.Client
	host   string
}

// NewOllamaClient creates a new Ollama client. host defaults to
// "http://localhost:11434" when empty.
func NewOllamaClient(host string) (*OllamaClient, error) {
	if host == "" {
		host = "http://localhost:11434"
	}

	parsedURL, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}

	return &OllamaClient{
		client: api.NewClient(parsedURL, http.DefaultClient),
		host:   host,
	}, nil
}

// Complete implements chat.CompletionClient with a single non-streaming call.
func (c *OllamaClient) Complete(ctx context.Context, messages []chat.PromptMessage, modelID string) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model:    modelID,
		Messages: convertToOllamaMessages(messages),
		Stream:   &stream,
		Options: map[string]any{
			"temperature": requestTemperature,
			"num_predict": requestMaxTokens,
		},
	}

	var b strings.Builder
	err := c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		b.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		var statusErr api.StatusError
		if errors.As(err, &statusErr) {
			if config.DebugLog != nil {
				config.DebugLog.Printf("[Ollama] API error %d: %s", statusErr.StatusCode, statusErr.ErrorMessage)
			}
			return "", &chat.RemoteError{StatusCode: statusErr.StatusCode, Message: statusErr.ErrorMessage}
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if b.Len() == 0 {
		return "", chat.ErrEmptyResponse
	}

	return normalizeReply(b.String()), nil
}

// convertToOllamaMessages converts the neutral history to Ollama messages.
// Inline data-URL images decode to raw bytes; non-decodable image parts are
// skipped.
func convertToOllamaMessages(messages []chat.PromptMessage) []api.Message {
	result := make([]api.Message, 0, len(messages))
	for _, msg := range messages {
		out := api.Message{Role: msg.Role, Content: msg.Text()}
		for _, p := range msg.Parts {
			if p.Type != chat.PartTypeImageURL {
				continue
			}
			_, payload, ok := parseDataURL(p.ImageURL)
			if !ok {
				continue
			}
			raw, err := base64.StdEncoding.DecodeString(payload)
			if err != nil {
				continue
			}
			out.Images = append(out.Images, api.ImageData(raw))
		}
		result = append(result, out)
	}
	return result
}
