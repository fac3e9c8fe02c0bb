package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/lollo21x/willpro-doot-inc/chat"
	"github.com/lollo21x/willpro-doot-inc/config"
)

// Sampling settings applied to every completion request.
const (
	requestTemperature = 0.7
	requestMaxTokens   = 1000
)

// OpenRouterClient implements chat.CompletionClient using OpenAI's official
// Go SDK. It connects to OpenRouter's API which is 100% OpenAI-compatible.
type OpenRouterClient struct {
	client  openai.Client
	baseURL string
}

// NewOpenRouterClient creates a new OpenRouter client.
//
// baseURL defaults to "https://openrouter.ai/api/v1" when empty; the API key
// is required.
func NewOpenRouterClient(baseURL, apiKey string) (*OpenRouterClient, error) {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenRouter API key is required")
	}

	// Create OpenAI client with custom base URL for OpenRouter
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &OpenRouterClient{
		client:  client,
		baseURL: baseURL,
	}, nil
}

// Complete implements chat.CompletionClient with a single non-streaming call.
func (c *OpenRouterClient) Complete(ctx context.Context, messages []chat.PromptMessage, modelID string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages:    convertToOpenAIMessages(messages),
		Model:       openai.ChatModel(modelID),
		Temperature: openai.Float(requestTemperature),
		MaxTokens:   openai.Int(requestMaxTokens),
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			if config.DebugLog != nil {
				config.DebugLog.Printf("[OpenRouter] API error %d: %s", apierr.StatusCode, apierr.Message)
			}
			return "", &chat.RemoteError{StatusCode: apierr.StatusCode, Message: apierr.Message}
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", chat.ErrEmptyResponse
	}

	return normalizeReply(completion.Choices[0].Message.Content), nil
}

// convertToOpenAIMessages converts the neutral request history to OpenAI
// message unions. Structured part lists (multimodal user messages) map to
// content-part unions; assistant messages are always flattened to text.
func convertToOpenAIMessages(messages []chat.PromptMessage) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case chat.RoleSystem:
			result = append(result, openai.SystemMessage(msg.Text()))
		case chat.RoleAssistant:
			result = append(result, openai.AssistantMessage(msg.Text()))
		default:
			if msg.Parts == nil {
				result = append(result, openai.UserMessage(msg.Content))
				continue
			}
			parts := make([]openai.ChatCompletionContentPartUnionParam, 0, len(msg.Parts))
			for _, p := range msg.Parts {
				switch p.Type {
				case chat.PartTypeImageURL:
					parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
						URL: p.ImageURL,
					}))
				default:
					parts = append(parts, openai.TextContentPart(p.Text))
				}
			}
			result = append(result, openai.UserMessage(parts))
		}
	}
	return result
}
