package imagegen

import (
	"context"
	"errors"
	"testing"

	"github.com/lollo21x/willpro-doot-inc/chat"
)

type fakeClient struct {
	reply string
	err   error
	model string
}

func (c *fakeClient) Complete(ctx context.Context, messages []chat.PromptMessage, modelID string) (string, error) {
	c.model = modelID
	return c.reply, c.err
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		err       error
		expected  string
		expectErr bool
	}{
		{"data url", "data:image/png;base64,aGVsbG8=", nil, "data:image/png;base64,aGVsbG8=", false},
		{"hosted url", "https://img.example.com/cat.png", nil, "https://img.example.com/cat.png", false},
		{"surrounding whitespace", "  data:image/png;base64,xx\n", nil, "data:image/png;base64,xx", false},
		{"prose reply", "Sorry, I can only describe images.", nil, "", true},
		{"completion error", "", errors.New("offline"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{reply: tt.reply, err: tt.err}
			gen := NewGenerator(client)

			ref, err := gen.Generate(context.Background(), "a cat", "test/image-model")
			if tt.expectErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ref != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, ref)
			}
			if client.model != "test/image-model" {
				t.Errorf("generation must use the requested model, got %q", client.model)
			}
		})
	}
}
