package chat

import (
	"context"
	"errors"
	"fmt"
)

// Wire roles for outgoing request history.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Content part types for multimodal request entries.
const (
	PartTypeText     = "text"
	PartTypeImageURL = "image_url"
)

// ContentPart is one element of a structured message content list.
type ContentPart struct {
	Type     string
	Text     string
	ImageURL string
}

// PromptMessage is a role-tagged entry of the outgoing request history.
// Content carries plain text; a non-nil Parts list replaces it with structured
// content (used only for multimodal models with attached images).
type PromptMessage struct {
	Role    string
	Content string
	Parts   []ContentPart
}

// Text returns the plain-text rendition of the message content, flattening a
// part list to its text parts.
func (m PromptMessage) Text() string {
	if m.Parts == nil {
		return m.Content
	}
	var out string
	for _, p := range m.Parts {
		if p.Type == PartTypeText {
			out += p.Text
		}
	}
	return out
}

// CompletionClient is the contract of a chat-completion backend. A single
// attempt per call: retry policy, if any, belongs to the caller.
//
// Implementations must normalize the returned text (strip leading whitespace
// and one stray leading ".") and fail with RemoteError for non-success HTTP
// statuses and ErrEmptyResponse when the backend returns no choices.
type CompletionClient interface {
	Complete(ctx context.Context, messages []PromptMessage, modelID string) (string, error)
}

// RemoteError reports a non-success response from a completion backend.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote service error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote service error: status %d: %s", e.StatusCode, e.Message)
}

// ErrEmptyResponse is returned when the backend answers successfully but
// carries no choices.
var ErrEmptyResponse = errors.New("empty response from completion backend")
