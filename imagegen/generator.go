// Package imagegen turns prompts into image references through models that
// answer chat completions with an image payload instead of prose.
package imagegen

import (
	"context"
	"fmt"
	"strings"

	"github.com/lollo21x/willpro-doot-inc/chat"
)

// Generator implements chat.ImageGenerator on top of a completion backend.
type Generator struct {
	client chat.CompletionClient
}

// NewGenerator creates an image generator backed by client.
func NewGenerator(client chat.CompletionClient) *Generator {
	return &Generator{client: client}
}

// Generate asks modelID for an image of prompt and returns the image
// reference (a data URL or a hosted URL). A reply that is not an image
// reference is an error; the caller renders it as a failed turn.
func (g *Generator) Generate(ctx context.Context, prompt, modelID string) (string, error) {
	messages := []chat.PromptMessage{
		{Role: chat.RoleUser, Content: prompt},
	}

	reply, err := g.client.Complete(ctx, messages, modelID)
	if err != nil {
		return "", fmt.Errorf("image completion failed: %w", err)
	}

	ref := strings.TrimSpace(reply)
	if !isImageRef(ref) {
		return "", fmt.Errorf("model returned no image reference")
	}
	return ref, nil
}

func isImageRef(s string) bool {
	return strings.HasPrefix(s, "data:image/") ||
		strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://")
}
