package chat

import (
	"testing"

	"github.com/lollo21x/willpro-doot-inc/catalog"
)

func TestBuildHistoryRoleMapping(t *testing.T) {
	messages := []Message{
		{Content: "q", Sender: SenderUser},
		{Content: "r", Sender: SenderAssistant},
	}

	history := buildHistory(messages, catalog.ByID(catalog.DefaultModel))

	if len(history) != 3 {
		t.Fatalf("expected system + 2 messages, got %d", len(history))
	}
	if history[0].Role != RoleSystem || history[0].Content == "" {
		t.Errorf("first entry must be the non-empty system prompt, got %+v", history[0].Role)
	}
	if history[1].Role != RoleUser || history[2].Role != RoleAssistant {
		t.Errorf("unexpected role mapping: %q, %q", history[1].Role, history[2].Role)
	}
}

func TestBuildHistoryKeepsTextWithImages(t *testing.T) {
	messages := []Message{
		{Content: "what is this?", Sender: SenderUser, Images: []string{"data:image/png;base64,xx"}},
	}
	info := &catalog.ModelInfo{ID: "test/vision", Multimodal: true}

	history := buildHistory(messages, info)
	parts := history[1].Parts
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if parts[0].Text != "what is this?" {
		t.Errorf("non-empty text must not be replaced by the placeholder, got %q", parts[0].Text)
	}
}

func TestBuildHistoryNilModelInfo(t *testing.T) {
	messages := []Message{
		{Content: "hi", Sender: SenderUser, Images: []string{"data:image/png;base64,xx"}},
	}

	history := buildHistory(messages, nil)
	if history[1].Parts != nil {
		t.Error("unknown model must be treated as non-multimodal")
	}
}

func TestPromptMessageText(t *testing.T) {
	plain := PromptMessage{Content: "plain"}
	if plain.Text() != "plain" {
		t.Errorf("expected %q, got %q", "plain", plain.Text())
	}

	parts := PromptMessage{Parts: []ContentPart{
		{Type: PartTypeText, Text: "a"},
		{Type: PartTypeImageURL, ImageURL: "data:image/png;base64,xx"},
		{Type: PartTypeText, Text: "b"},
	}}
	if parts.Text() != "ab" {
		t.Errorf("expected flattened text %q, got %q", "ab", parts.Text())
	}
}
