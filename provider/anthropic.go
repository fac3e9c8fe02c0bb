package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/lollo21x/willpro-doot-inc/chat"
	"github.com/lollo21x/willpro-doot-inc/config"
)

// AnthropicClient implements chat.CompletionClient using the official
// Anthropic Go SDK.
type AnthropicClient struct {
	client  *anthropic.Client
	baseURL string
}

// NewAnthropicClient creates a new Anthropic client.
//
// baseURL defaults to "https://api.anthropic.com" when empty; the API key is
// required.
func NewAnthropicClient(baseURL, apiKey string) (*AnthropicClient, error) {
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	if apiKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required")
	}

	client := anthropic.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &AnthropicClient{
		client:  &client,
		baseURL: baseURL,
	}, nil
}

// Complete implements chat.CompletionClient with a single non-streaming call.
func (c *AnthropicClient) Complete(ctx context.Context, messages []chat.PromptMessage, modelID string) (string, error) {
	converted, system := convertToAnthropicMessages(messages)

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(modelID),
		MaxTokens:   requestMaxTokens,
		Temperature: anthropic.Float(requestTemperature),
		Messages:    converted,
	}
	if len(system) > 0 {
		params.System = system
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			if config.DebugLog != nil {
				config.DebugLog.Printf("[Anthropic] API error %d: %v", apierr.StatusCode, apierr)
			}
			return "", &chat.RemoteError{StatusCode: apierr.StatusCode, Message: apierr.Error()}
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	var b strings.Builder
	for _, block := range message.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(variant.Text)
		}
	}
	if b.Len() == 0 {
		return "", chat.ErrEmptyResponse
	}

	return normalizeReply(b.String()), nil
}

// convertToAnthropicMessages splits the neutral history into the Anthropic
// shape: system entries move into the dedicated System field, everything else
// becomes user/assistant turns. Image parts are sent as base64 blocks.
func convertToAnthropicMessages(messages []chat.PromptMessage) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var system []anthropic.TextBlockParam
	converted := make([]anthropic.MessageParam, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case chat.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: msg.Text()})
		case chat.RoleAssistant:
			converted = append(converted, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Text())))
		default:
			if msg.Parts == nil {
				converted = append(converted, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
				continue
			}
			blocks := make([]anthropic.ContentBlockParamUnion, 0, len(msg.Parts))
			for _, p := range msg.Parts {
				switch p.Type {
				case chat.PartTypeImageURL:
					mediaType, data, ok := parseDataURL(p.ImageURL)
					if !ok {
						// Not an inline image, nothing the API can ingest.
						continue
					}
					blocks = append(blocks, anthropic.NewImageBlockBase64(mediaType, data))
				default:
					blocks = append(blocks, anthropic.NewTextBlock(p.Text))
				}
			}
			converted = append(converted, anthropic.NewUserMessage(blocks...))
		}
	}
	return converted, system
}

// parseDataURL splits a "data:<media-type>;base64,<data>" URL into its media
// type and payload.
func parseDataURL(u string) (mediaType, data string, ok bool) {
	rest, found := strings.CutPrefix(u, "data:")
	if !found {
		return "", "", false
	}
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", "", false
	}
	mediaType, found = strings.CutSuffix(meta, ";base64")
	if !found {
		return "", "", false
	}
	return mediaType, payload, true
}
